package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	require.Equal(t, "http://localhost:8081/api/v1", cfg.APIBaseURL)
	require.Equal(t, "userhub.db", cfg.DBPath)
	require.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("USERHUB_API_BASE_URL", "https://api.example.org/v1")
	t.Setenv("USERHUB_DB_PATH", "/tmp/sessions.db")
	t.Setenv("USERHUB_LOG_LEVEL", "debug")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	require.Equal(t, "https://api.example.org/v1", cfg.APIBaseURL)
	require.Equal(t, "/tmp/sessions.db", cfg.DBPath)
	require.Equal(t, "debug", cfg.LogLevel)
}

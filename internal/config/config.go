// Package config loads runtime settings for the userhub CLI.
//
// Sources are layered, later ones winning: struct defaults, a .env file in
// the working directory (if present), process environment variables, and
// finally command-line flags.
package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds runtime settings for the userhub CLI.
type Config struct {
	// APIBaseURL is the base endpoint of the backend REST API.
	APIBaseURL string `env:"USERHUB_API_BASE_URL" envDefault:"http://localhost:8081/api/v1"`
	// DBPath is the sqlite file holding the persisted session artifacts.
	DBPath string `env:"USERHUB_DB_PATH" envDefault:"userhub.db"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"USERHUB_LOG_LEVEL" envDefault:"info"`
}

// LoadConfig builds the Config from all sources. A missing .env file is not
// an error.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	parseFlags(cfg)
	return cfg, nil
}

package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/userhub/internal/flagx"
)

// parseFlags overlays selected Config fields with command-line flags.
//
// Supported flags:
//
//	-a string   base URL of the backend REST API
//	-d string   path to the local session database
//
// The function filters os.Args to only the flags it knows about, using
// flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the backend REST API")
	fs.StringVar(&cfg.DBPath, "d", cfg.DBPath, "path to the local session database")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}

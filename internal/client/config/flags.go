package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/econdash/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   base URL of the dashboard API
//	-t int      request timeout in seconds
//	-i int      dashboard refresh interval in seconds
//	-d string   path to the local client database
//
// Arguments are filtered through flagx.FilterArgs so this parser never
// trips over flags owned by other components (e.g. -c/-config).
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t", "-i", "-d"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIEndpointURL, "a", cfg.APIEndpointURL, "base URL of the dashboard API")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	refresh := fs.Int("i", int(cfg.RefreshInterval.Seconds()), "dashboard refresh interval (in seconds)")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the local client database")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
	cfg.RefreshInterval = time.Duration(*refresh) * time.Second
}

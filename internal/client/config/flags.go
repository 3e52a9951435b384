package config

import (
	"flag"
	"time"

	"github.com/dmitrijs2005/classroom/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the entry API
//	-t int      request timeout in seconds
//	-d string   path of the local SQLite database
//	-l string   log level
//
// Arguments the client does not define (e.g. -c) are skipped.
func parseFlags(cfg *Config, args []string) {
	timeout := int(cfg.RequestTimeout.Seconds())

	err := flagx.Parse("client", args, func(fs *flag.FlagSet) {
		fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the entry API")
		fs.IntVar(&timeout, "t", timeout, "request timeout (in seconds)")
		fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "local database path")
		fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	})
	if err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(timeout) * time.Second
}

package config

import "time"

// Config holds runtime settings for the Classroom Manager CLI.
//
// Fields:
//   - APIBaseURL: base URL of the entry API, including the /api prefix.
//   - RequestTimeout: upper bound for a single HTTP call.
//   - DatabasePath: SQLite file keeping the session token.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	DatabasePath   string
	LogLevel       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:5000/api"
	c.RequestTimeout = 30 * time.Second
	c.DatabasePath = "classroom.db"
	c.LogLevel = "warn"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, args)
	parseFlags(cfg, args)
	return cfg
}

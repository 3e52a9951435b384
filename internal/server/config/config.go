package config

import (
	"strings"
	"time"
)

// Config holds runtime settings for the Classroom Manager API server.
//
// Fields:
//   - ListenAddr: bind address of the HTTP endpoint.
//   - DatabaseDSN: postgres:// or mongodb:// connection string.
//   - MongoDatabase: database name used when DatabaseDSN points at MongoDB.
//   - SecretKey: HMAC secret for signing JWTs (HS256). Do not use the default in prod.
//   - TokenValidity: lifetime of issued access tokens.
//   - CORSOrigins: browser origins allowed to call the API.
//   - ShutdownTimeout: grace period for in-flight requests on stop.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	ListenAddr      string
	DatabaseDSN     string
	MongoDatabase   string
	SecretKey       string
	TokenValidity   time.Duration
	CORSOrigins     []string
	ShutdownTimeout time.Duration
	LogLevel        string
}

// LoadDefaults populates Config with development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.ListenAddr = ":5000"
	c.DatabaseDSN = "mongodb://localhost:27017/"
	c.MongoDatabase = "classroom_manager"
	c.SecretKey = "secretKey"
	c.TokenValidity = 60 * time.Minute
	c.CORSOrigins = []string{"http://localhost:8080"}
	c.ShutdownTimeout = 5 * time.Second
	c.LogLevel = "info"
}

// CORSAllowOrigins renders CORSOrigins in the comma separated form the CORS
// middleware expects.
func (c *Config) CORSAllowOrigins() string {
	return strings.Join(c.CORSOrigins, ",")
}

// LoadConfig builds a Config by applying defaults, then the environment
// (optionally seeded from a .env file), an optional JSON file and finally
// command-line flags. Later sources take precedence.
func LoadConfig(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg, args)
	parseFlags(cfg, args)
	return cfg
}

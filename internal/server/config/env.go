package config

import (
	"os"

	"github.com/joho/godotenv"
)

// envFile is loaded into the process environment before variables are read.
// Variables that are already set are not overridden.
var envFile = ".env"

// parseEnv overlays Config with DATABASE_DSN (or MONGO_URI), SECRET_KEY and
// MONGO_DATABASE. A missing .env file is not an error.
func parseEnv(cfg *Config) {
	if _, err := os.Stat(envFile); err == nil {
		if err := godotenv.Load(envFile); err != nil {
			panic(err)
		}
	}

	if v := os.Getenv("DATABASE_DSN"); v != "" {
		cfg.DatabaseDSN = v
	} else if v := os.Getenv("MONGO_URI"); v != "" {
		cfg.DatabaseDSN = v
	}
	if v := os.Getenv("MONGO_DATABASE"); v != "" {
		cfg.MongoDatabase = v
	}
	if v := os.Getenv("SECRET_KEY"); v != "" {
		cfg.SecretKey = v
	}
}

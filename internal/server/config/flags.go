package config

import (
	"flag"
	"time"

	"github.com/dmitrijs2005/classroom/internal/common"
	"github.com/dmitrijs2005/classroom/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":5000")
//	-d string   database DSN (postgres:// or mongodb://)
//	-m string   MongoDB database name
//	-s string   JWT HMAC secret key
//	-t int      access token validity, minutes
//	-o string   comma separated CORS origins
//	-l string   log level
//
// Token validity is accepted in minutes and converted to time.Duration.
func parseFlags(cfg *Config, args []string) {
	validity := int(cfg.TokenValidity.Minutes())
	origins := ""

	err := flagx.Parse("server", args, func(fs *flag.FlagSet) {
		fs.StringVar(&cfg.ListenAddr, "a", cfg.ListenAddr, "address and port to run server")
		fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "database DSN")
		fs.StringVar(&cfg.MongoDatabase, "m", cfg.MongoDatabase, "mongo database name")
		fs.StringVar(&cfg.SecretKey, "s", cfg.SecretKey, "secret key")
		fs.IntVar(&validity, "t", validity, "token validity (in minutes)")
		fs.StringVar(&origins, "o", "", "allowed CORS origins, comma separated")
		fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	})
	if err != nil {
		panic(err)
	}

	cfg.TokenValidity = time.Duration(validity) * time.Minute
	if origins != "" {
		cfg.CORSOrigins = common.SplitList(origins)
	}
}

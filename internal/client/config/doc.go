// Package config loads runtime configuration for the Classroom Manager CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the entry API (default http://127.0.0.1:5000/api)
//	-t int      request timeout in seconds (default 30)
//	-d string   local SQLite database path (default classroom.db)
//	-l string   log level: debug, info, warn, error (default warn)
//
// # JSON schema
//
//	{
//	  "api_base_url": "http://127.0.0.1:5000/api",
//	  "request_timeout": "30s",
//	  "database_path": "classroom.db",
//	  "log_level": "warn"
//	}
package config

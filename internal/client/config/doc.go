// Package config loads runtime configuration for the account client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment, optionally seeded from a dotenv file (see parseEnv):
//     API_URL, LOG_LEVEL, DARK_MODE. The file is ".env" unless -env is given.
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the user service
//	-t int      request timeout (seconds)
//	-n int      notification banner lifetime (milliseconds)
//	-l string   log level (debug, info, warn, error)
//	-dark       start in dark mode
//
// # JSON schema
//
// Durations use timex.Duration, so values can be either strings like "2s" or
// integer nanoseconds:
//
//	{
//	  "api_url": "http://127.0.0.1:8080",
//	  "request_timeout": "10s",
//	  "notification_ttl": "2s",
//	  "log_level": "info",
//	  "dark_mode": false
//	}
package config

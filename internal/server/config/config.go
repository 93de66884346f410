// Package config handles configuration for the development user service,
// including defaults, environment (with optional .env), JSON overlay, and
// command-line flags.
package config

import "time"

// Config holds runtime settings for the user service.
//
// Fields:
//   - EndpointAddr: bind address of the HTTP API.
//   - DatabaseDSN: PostgreSQL DSN (pgx). Empty keeps users in memory.
//   - LogLevel: level of the JSON logger on stdout.
//   - ShutdownTimeout: grace period for in-flight requests on stop.
//   - BcryptCost: work factor for password hashes.
type Config struct {
	EndpointAddr    string
	DatabaseDSN     string
	LogLevel        string
	ShutdownTimeout time.Duration
	BcryptCost      int
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":8080"
	c.DatabaseDSN = ""
	c.LogLevel = "info"
	c.ShutdownTimeout = 5 * time.Second
	c.BcryptCost = 10
}

// LoadConfig builds a Config by applying defaults, then overlaying the
// environment, an optional JSON file and finally command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}

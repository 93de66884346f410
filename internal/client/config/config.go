package config

import "time"

// Config holds runtime settings for the account client.
//
// Fields:
//   - APIURL: base URL of the user service (API_URL).
//   - RequestTimeout: upper bound for a single HTTP request.
//   - NotificationTTL: how long the settings banner stays visible.
//   - LogLevel: diagnostics level for the stderr logger.
//   - DarkMode: initial value of the dark-mode switch.
type Config struct {
	APIURL          string
	RequestTimeout  time.Duration
	NotificationTTL time.Duration
	LogLevel        string
	DarkMode        bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIURL = "http://127.0.0.1:8080"
	c.RequestTimeout = 10 * time.Second
	c.NotificationTTL = 2000 * time.Millisecond
	c.LogLevel = "warn"
	c.DarkMode = false
}

// LoadConfig constructs a Config, applies defaults, then overlays the
// environment, JSON (if present) and command-line flags (if present). Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}

package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/gophaccount/internal/flagx"
	"github.com/dmitrijs2005/gophaccount/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Absent
// fields leave the corresponding Config value alone.
type JsonConfig struct {
	APIURL          string          `json:"api_url"`
	RequestTimeout  *timex.Duration `json:"request_timeout"`
	NotificationTTL *timex.Duration `json:"notification_ttl"`
	LogLevel        string          `json:"log_level"`
	DarkMode        *bool           `json:"dark_mode"`
}

// parseJson overlays Config with values loaded from the file named by -c or
// -config. Without that flag it does nothing. Panics on read or unmarshal
// errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigFileFlag(os.Args[1:])
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIURL != "" {
		cfg.APIURL = jc.APIURL
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.NotificationTTL != nil {
		cfg.NotificationTTL = jc.NotificationTTL.Duration
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
	if jc.DarkMode != nil {
		cfg.DarkMode = *jc.DarkMode
	}
}

package config

import (
	"os"
	"strconv"

	"github.com/dmitrijs2005/gophaccount/internal/flagx"
	"github.com/joho/godotenv"
)

// parseEnv overlays Config with API_URL, LOG_LEVEL and DARK_MODE.
//
// A dotenv file is loaded first if it exists: the one named by -env, or
// ".env" in the working directory. Variables already present in the process
// environment win over the file.
func parseEnv(cfg *Config) {
	if path := flagx.EnvFileFlag(os.Args[1:]); path != "" {
		_ = godotenv.Load(path)
	} else {
		_ = godotenv.Load()
	}

	if v := os.Getenv("API_URL"); v != "" {
		cfg.APIURL = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("DARK_MODE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.DarkMode = b
		}
	}
}

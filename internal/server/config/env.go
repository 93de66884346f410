package config

import (
	"os"
	"strconv"

	"github.com/dmitrijs2005/gophaccount/internal/flagx"
	"github.com/joho/godotenv"
)

// parseEnv reads ADDRESS, DATABASE_DSN, LOG_LEVEL and BCRYPT_COST, after
// loading the dotenv file named by -env (default ".env") if it exists.
func parseEnv(cfg *Config) {
	if path := flagx.EnvFileFlag(os.Args[1:]); path != "" {
		_ = godotenv.Load(path)
	} else {
		_ = godotenv.Load()
	}

	if v := os.Getenv("ADDRESS"); v != "" {
		cfg.EndpointAddr = v
	}
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		cfg.DatabaseDSN = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("BCRYPT_COST"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.BcryptCost = n
		}
	}
}

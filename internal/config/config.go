package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDriver          string
	DBDSN             string
	DBConnectAttempts int
	ServerPort        string
	SessionSecret     string
	AdminUsername     string
	AdminPassword     string
	SeedDemo          bool
	LogLevel          string
}

// Load reads .env (if present) and the process environment.
// An empty DB_DSN is allowed: the ledger then runs on in-process storage.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		DBDriver:          getenv("DB_DRIVER", "postgres"),
		DBDSN:             os.Getenv("DB_DSN"),
		DBConnectAttempts: getInt("DB_CONNECT_ATTEMPTS", 5),
		ServerPort:        getenv("SERVER_PORT", "8080"),
		SessionSecret:     os.Getenv("SESSION_SECRET"),
		AdminUsername:     getenv("ADMIN_USERNAME", "admin@haccp.local"),
		AdminPassword:     os.Getenv("ADMIN_PASSWORD"),
		SeedDemo:          getBool("SEED_DEMO", true),
		LogLevel:          getenv("LOG_LEVEL", "info"),
	}

	switch cfg.DBDriver {
	case "postgres", "sqlite":
	default:
		return nil, errors.New("DB_DRIVER must be postgres or sqlite")
	}
	if cfg.DBConnectAttempts < 1 {
		cfg.DBConnectAttempts = 1
	}

	return cfg, nil
}

// RequireServer checks the settings only the HTTP server needs.
func (c *Config) RequireServer() error {
	if c.SessionSecret == "" {
		return errors.New("SESSION_SECRET is not set")
	}
	if c.AdminPassword == "" {
		return errors.New("ADMIN_PASSWORD is not set")
	}
	return nil
}

func getenv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	if v, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func getBool(key string, def bool) bool {
	if v, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

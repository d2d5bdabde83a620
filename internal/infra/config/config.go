package config

import (
	"fmt"
	"os"
	"time"
)

// Config aggregates application configuration values loaded from
// environment variables.
type Config struct {
	Env          string
	HTTPAddr     string
	DatabaseURL  string
	DatabaseName string
	StoreTimeout time.Duration
}

// Load parses configuration from the current environment. A missing
// DATABASE_URL is not an error: the process starts with the store
// gateway permanently unavailable and every store-backed endpoint
// reports that condition.
func Load() (Config, error) {
	cfg := Config{
		Env:          getEnv("APP_ENV", "dev"),
		HTTPAddr:     os.Getenv("HTTP_ADDR"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		DatabaseName: getEnv("DATABASE_NAME", "rental"),
	}
	if cfg.HTTPAddr == "" {
		cfg.HTTPAddr = ":" + getEnv("PORT", "8000")
	}
	timeout, err := parseDurationEnv("MONGO_TIMEOUT", 10*time.Second)
	if err != nil {
		return Config{}, err
	}
	cfg.StoreTimeout = timeout
	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseDurationEnv(key string, def time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s duration: %w", key, err)
	}
	return d, nil
}

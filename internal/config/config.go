// Package config loads toolkit configuration from the environment, with a
// .env file honored when present in the working directory.
package config

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/fortuna/gridiron/internal/store"
)

// Config holds the runtime configuration for the toolkit.
type Config struct {
	OurladsBaseURL string
	OverridePath   string
	DatabasePath   string
}

// Load reads configuration from the environment. A missing .env file is
// not an error.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		OurladsBaseURL: getEnv("OURLADS_BASE_URL", ""),
		OverridePath:   getEnv("STARTERS_OVERRIDE_PATH", "starters_override.csv"),
		DatabasePath:   getEnv("NFLVERSE_DB_PATH", store.DefaultDatabasePath),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

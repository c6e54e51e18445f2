// Package config loads server configuration from the environment,
// with optional .env file support for local development.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	// Port is the HTTP listen port.
	Port string

	// DBPath is the SQLite database file path.
	DBPath string
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first if present; real environment variables win.
func Load() *Config {
	// Missing .env is fine; env vars may be set directly.
	_ = godotenv.Load()

	return &Config{
		Port:   getEnv("PORT", "8080"),
		DBPath: getEnv("DB_PATH", "./data/groups.db"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

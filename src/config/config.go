// config.go - Environment-driven configuration for the legal aid client.
// Values are read from the process environment, optionally seeded from a
// .env file in the working directory.

package config

import (
	"os"

	"github.com/joho/godotenv"
)

// DefaultAPIBaseURL is where the Remote Case Service listens when nothing
// else is configured.
const DefaultAPIBaseURL = "http://localhost:8000"

// Config holds all client configuration.
type Config struct {
	// APIBaseURL is the base address of the Remote Case Service.
	APIBaseURL string
	// LogFile receives slog output; empty means logging is discarded
	// (stderr belongs to the terminal UI).
	LogFile string
	// LogLevel is the slog level name ("debug", "info", "warn", "error").
	LogLevel string
}

// Load reads configuration from the environment. A .env file is loaded
// first if present; a missing .env is not an error.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		APIBaseURL: getEnv("API_BASE_URL", DefaultAPIBaseURL),
		LogFile:    getEnv("LEGALAID_LOG_FILE", ""),
		LogLevel:   getEnv("LEGALAID_LOG_LEVEL", "info"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// Server
	Port string
	Env  string // "development", "production"

	// Database
	DatabasePath string

	// CORS
	AllowedOrigins []string

	// Month auto-close
	AutoCloseEnabled  bool
	AutoCloseSchedule string        // Cron expression (e.g., "5 0 1 * *" for the 1st of each month)
	AutoCloseTimeout  time.Duration // Timeout for a close run
}

func Load() *Config {
	return &Config{
		// Server
		Port: getEnv("PORT", "8080"),
		Env:  getEnv("ENV", "development"),

		// Database
		DatabasePath: getEnv("DATABASE_PATH", "zerobudget.db"),

		// CORS
		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "http://localhost:3000"), ","),

		// Month auto-close
		AutoCloseEnabled:  getBoolEnv("AUTO_CLOSE_ENABLED", false),
		AutoCloseSchedule: getEnv("AUTO_CLOSE_SCHEDULE", "5 0 1 * *"), // Default: 00:05 on the 1st
		AutoCloseTimeout:  getDurationEnv("AUTO_CLOSE_TIMEOUT", time.Minute),
	}
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

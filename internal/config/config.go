// Package config loads and validates application configuration from
// environment variables, with optional .env file support.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// MongoURL is the MongoDB connection string. Required.
	MongoURL string

	// DBName is the MongoDB database holding the favorites, custom tour,
	// and museum mirror collections. Required.
	DBName string

	// AdminPIN gates the admin mutation endpoints. Defaults to "1234".
	// A static shared secret compared in plaintext — a placeholder, not a
	// security boundary; see the Authorizer abstraction in service.
	AdminPIN string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["*"] — the catalogue is public and read-mostly.
	// Set CORS_ORIGINS to a comma-separated list to restrict.
	CORSOrigins []string
}

// Load reads configuration from the environment and returns a Config.
// A .env file in the working directory is loaded first when present, which
// keeps local development config out of shell profiles.
// Returns an error listing any required variables that are not set.
func Load() (Config, error) {
	// Ignore the error: a missing .env file is the normal production case.
	_ = godotenv.Load()

	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		AdminPIN:    getEnv("ADMIN_PIN", "1234"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		CORSOrigins: splitCSV(getEnv("CORS_ORIGINS", "*")),
	}

	var missing []string

	cfg.MongoURL = os.Getenv("MONGO_URL")
	if cfg.MongoURL == "" {
		missing = append(missing, "MONGO_URL")
	}
	cfg.DBName = os.Getenv("DB_NAME")
	if cfg.DBName == "" {
		missing = append(missing, "DB_NAME")
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}

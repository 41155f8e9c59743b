// Package config loads and validates application configuration from
// environment variables.
package config

import (
	"fmt"
	"os"
	"time"
)

// Storage backend selectors for STORAGE_BACKEND.
const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendPostgres = "postgres"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// StorageBackend selects the durable store: memory, file, or postgres.
	// Defaults to "memory".
	StorageBackend string

	// DataDir is where the file backend keeps its entries.
	// Required when StorageBackend is "file"; defaults to "./data".
	DataDir string

	// DatabaseURL is the Postgres connection string.
	// Required when StorageBackend is "postgres".
	DatabaseURL string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// StoreTimeout bounds each durable-store call. Defaults to 5s.
	StoreTimeout time.Duration

	// AuthLatency is the simulated auth-backend delay, for exercising the
	// app shell's loading states. Defaults to 0.
	AuthLatency time.Duration
}

// Load reads configuration from environment variables and returns a Config.
func Load() (Config, error) {
	cfg := Config{
		Port:           getEnv("PORT", "8080"),
		StorageBackend: getEnv("STORAGE_BACKEND", BackendMemory),
		DataDir:        getEnv("DATA_DIR", "./data"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		StoreTimeout:   5 * time.Second,
	}

	switch cfg.StorageBackend {
	case BackendMemory, BackendFile:
	case BackendPostgres:
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
		if cfg.DatabaseURL == "" {
			return Config{}, fmt.Errorf("STORAGE_BACKEND=postgres requires DATABASE_URL")
		}
	default:
		return Config{}, fmt.Errorf("STORAGE_BACKEND must be one of memory, file, postgres (got %q)", cfg.StorageBackend)
	}

	if v := os.Getenv("STORE_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("STORE_TIMEOUT must be a duration (e.g. 5s): %w", err)
		}
		cfg.StoreTimeout = d
	}
	if v := os.Getenv("AUTH_LATENCY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("AUTH_LATENCY must be a duration (e.g. 800ms): %w", err)
		}
		cfg.AuthLatency = d
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

package config

import (
	"log"
	"os"
	"strconv"
)

// Config holds application configuration values.
type Config struct {
	DatabasePath string
	SeedCSV      string
	HTTPPort     string
}

// Load reads configuration from environment variables with reasonable defaults.
func Load() Config {
	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080"
	}

	path := os.Getenv("DATABASE_PATH")
	if path == "" {
		path = "medstock.db"
	}

	// Optional; empty means no seed import.
	seed := os.Getenv("SEED_CSV")

	// Validate that port is numeric.
	if _, err := strconv.Atoi(port); err != nil {
		log.Printf("invalid HTTP_PORT value %q, defaulting to 8080", port)
		port = "8080"
	}

	return Config{DatabasePath: path, SeedCSV: seed, HTTPPort: port}
}

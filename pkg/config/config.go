package config

import (
	"errors"
	"os"
	"strconv"
)

type Config struct {
	SessionSecret  string
	Port           string
	PuzzleBankFile string
	MaxGridArea    int
}

// Load loads configuration from environment variables.
// Returns an error if SESSION_SECRET is not set, equals "changeme", or is
// too short to be a usable HMAC key.
func Load() (*Config, error) {
	secret := os.Getenv("SESSION_SECRET")

	if secret == "" {
		return nil, errors.New("SECURITY ERROR: SESSION_SECRET environment variable is required but not set")
	}

	if secret == "changeme" {
		return nil, errors.New("SECURITY ERROR: SESSION_SECRET cannot be 'changeme' - please set a secure secret")
	}

	if len(secret) < 32 {
		return nil, errors.New("SECURITY ERROR: SESSION_SECRET must be at least 32 characters long")
	}

	maxArea, err := strconv.Atoi(getEnv("MAX_GRID_AREA", "99"))
	if err != nil || maxArea <= 0 {
		return nil, errors.New("MAX_GRID_AREA must be a positive integer")
	}

	return &Config{
		SessionSecret:  secret,
		Port:           getEnv("PORT", "8080"),
		PuzzleBankFile: getEnv("PUZZLE_BANK_FILE", "/data/puzzles.json"),
		MaxGridArea:    maxArea,
	}, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultBaseURL        = "https://aerodatabox.p.rapidapi.com/flights/airports"
	DefaultAPIHost        = "aerodatabox.p.rapidapi.com"
	DefaultRequestTimeout = 40 * time.Second
)

// Config holds the application configuration
type Config struct {
	BaseURL        string
	APIHost        string
	RequestTimeout time.Duration
	NATSURL        string
}

// Load loads the configuration from environment variables and .env file.
// The API key is not part of it: it is only ever entered interactively.
func Load() (*Config, error) {
	// Try to load .env file, but don't fail if it doesn't exist
	_ = godotenv.Load()

	baseURL := os.Getenv("AERODATABOX_BASE_URL")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	apiHost := os.Getenv("AERODATABOX_HOST")
	if apiHost == "" {
		apiHost = DefaultAPIHost
	}

	timeout := DefaultRequestTimeout
	if raw := os.Getenv("REQUEST_TIMEOUT"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid REQUEST_TIMEOUT: %w", err)
		}
		if parsed <= 0 {
			return nil, fmt.Errorf("REQUEST_TIMEOUT must be positive, got %s", raw)
		}
		timeout = parsed
	}

	return &Config{
		BaseURL:        baseURL,
		APIHost:        apiHost,
		RequestTimeout: timeout,
		// Empty disables route publishing
		NATSURL: os.Getenv("NATS_URL"),
	}, nil
}

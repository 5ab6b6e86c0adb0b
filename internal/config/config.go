package config

import (
	"os"
	"time"
)

// Config holds environment-driven configuration.
type Config struct {
	Addr           string
	BackendBaseURL string
	JWTSecret      string
	UseMockBackend bool
	RequestTimeout time.Duration
}

// Load reads configuration from environment variables.
func Load() Config {
	addr := os.Getenv("STOREFRONT_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	baseURL := os.Getenv("BACKEND_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:3001"
	}

	timeout := 10 * time.Second
	if v := os.Getenv("BACKEND_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			timeout = d
		}
	}

	return Config{
		Addr:           addr,
		BackendBaseURL: baseURL,
		JWTSecret:      os.Getenv("JWT_SECRET"),
		UseMockBackend: os.Getenv("USE_MOCK_BACKEND") == "1",
		RequestTimeout: timeout,
	}
}

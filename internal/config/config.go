package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const defaultBaseURL = "http://localhost:8000"

type Config struct {
	BaseURL     string
	HTTPTimeout time.Duration
	DocumentDir string
}

// Load reads configuration from the environment. A .env file is honored when
// present but never overrides variables already set in the real environment.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		BaseURL:     defaultBaseURL,
		HTTPTimeout: 30 * time.Second,
		DocumentDir: ".",
	}

	if v := os.Getenv("CMMS_API_URL"); v != "" {
		cfg.BaseURL = strings.TrimRight(v, "/")
	}
	if v := os.Getenv("CMMS_HTTP_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.HTTPTimeout = d
		}
	}
	if v := os.Getenv("CMMS_DOCUMENT_DIR"); v != "" {
		cfg.DocumentDir = v
	}

	return cfg
}

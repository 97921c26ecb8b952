package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CMMS_API_URL", "")
	t.Setenv("CMMS_HTTP_TIMEOUT", "")
	t.Setenv("CMMS_DOCUMENT_DIR", "")

	cfg := Load()

	assert.Equal(t, "http://localhost:8000", cfg.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, ".", cfg.DocumentDir)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("CMMS_API_URL", "https://cmms.example.com/api/")
	t.Setenv("CMMS_HTTP_TIMEOUT", "5s")
	t.Setenv("CMMS_DOCUMENT_DIR", "/tmp/docs")

	cfg := Load()

	assert.Equal(t, "https://cmms.example.com/api", cfg.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "/tmp/docs", cfg.DocumentDir)
}

func TestInvalidTimeoutKeepsDefault(t *testing.T) {
	t.Setenv("CMMS_HTTP_TIMEOUT", "soon")

	cfg := Load()

	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
}

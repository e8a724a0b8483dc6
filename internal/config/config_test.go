package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, ":8080", cfg.HTTPAddress)
	assert.Equal(t, "web/static", cfg.StaticDir)
	assert.Equal(t, []string{"http://localhost:5173", "http://127.0.0.1:5173"}, cfg.CORSOrigins)
	assert.Equal(t, 15*time.Second, cfg.ShutdownTimeout)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("HTTP_ADDRESS", ":9090")
	t.Setenv("STATIC_DIR", "/srv/static")
	t.Setenv("CORS_ORIGINS", "https://school.example, https://other.example ,")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")

	cfg := Load()

	assert.Equal(t, ":9090", cfg.HTTPAddress)
	assert.Equal(t, "/srv/static", cfg.StaticDir)
	assert.Equal(t, []string{"https://school.example", "https://other.example"}, cfg.CORSOrigins)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
}

func TestInvalidDurationFallsBack(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "not-a-duration")

	cfg := Load()
	assert.Equal(t, 15*time.Second, cfg.ShutdownTimeout)
}

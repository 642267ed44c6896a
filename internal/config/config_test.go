package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, int64(1<<20), cfg.Lexer.MaxSourceBytes)
	assert.Equal(t, []string{"https://*", "http://*"}, cfg.CORS.AllowedOrigins)
}

func TestLoadHonorsEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "4780")
	t.Setenv("MAX_SOURCE_BYTES", "2048")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://tinta.example")

	cfg := Load()

	assert.Equal(t, "4780", cfg.Server.Port)
	assert.Equal(t, int64(2048), cfg.Lexer.MaxSourceBytes)
	assert.Equal(t, []string{"https://tinta.example"}, cfg.CORS.AllowedOrigins)
}

func TestLoadIgnoresUnparsableSizes(t *testing.T) {
	t.Setenv("MAX_SOURCE_BYTES", "not-a-number")

	cfg := Load()
	assert.Equal(t, int64(1<<20), cfg.Lexer.MaxSourceBytes)
}

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "MONGODB_URI", "DB_NAME", "LOG_LEVEL", "LOG_FILE", "GIN_MODE", "CORS_ORIGINS", "RATE_LIMIT"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "mongodb://127.0.0.1:27017", cfg.MongoURI)
	assert.Equal(t, "bugtrail", cfg.DatabaseName)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.ReleaseMode)
	assert.Equal(t, 60, cfg.RateLimit)
	assert.NotEmpty(t, cfg.AllowOrigins)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("GIN_MODE", "release")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("RATE_LIMIT", "5")

	cfg := Load()
	assert.Equal(t, "9000", cfg.Port)
	assert.True(t, cfg.ReleaseMode)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowOrigins)
	assert.Equal(t, 5, cfg.RateLimit)
}

func TestLoadRejectsGarbageRateLimit(t *testing.T) {
	t.Setenv("RATE_LIMIT", "not-a-number")
	assert.Equal(t, 60, Load().RateLimit)
}

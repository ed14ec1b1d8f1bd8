package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "gemini-1.5-flash", cfg.GeminiModel)
	assert.Equal(t, "168h0m0s", cfg.SessionExpiry.String())
}

func TestDSN(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_USER", "para")
	t.Setenv("DB_PASSWORD", "hunter22")
	t.Setenv("DB_NAME", "para_db")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_SSLMODE", "require")

	cfg := Load()
	assert.Equal(t,
		"host=db.internal user=para password=hunter22 dbname=para_db port=5433 sslmode=require TimeZone=UTC",
		cfg.DSN())
}

func TestParseDurationFallback(t *testing.T) {
	t.Setenv("AI_TIMEOUT", "not-a-duration")
	cfg := Load()
	assert.Equal(t, "1m0s", cfg.AITimeout.String())
}

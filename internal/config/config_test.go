package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("SUPABASE_DB_URL", "")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/fantasy")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.APIPort)
	assert.Equal(t, "development", cfg.Environment)
	assert.False(t, cfg.IsProduction())

	assert.Equal(t, 3, cfg.RetryMaxAttempts)
	assert.Equal(t, time.Second, cfg.RetryInitialDelay)
	assert.Equal(t, 4*time.Second, cfg.RetryMaxDelay)
	assert.Equal(t, 2.0, cfg.RetryMultiplier)

	assert.Equal(t, time.Hour, cfg.PlayerCacheTTL)
	assert.Equal(t, 100, cfg.PlayerLookupBatchSize)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/fantasy")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("RETRY_MAX_ATTEMPTS", "5")
	t.Setenv("RETRY_INITIAL_DELAY_MS", "250")
	t.Setenv("RETRY_MAX_DELAY_MS", "2000")
	t.Setenv("RETRY_BACKOFF_MULTIPLIER", "1.5")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 5, cfg.RetryMaxAttempts)
	assert.Equal(t, 250*time.Millisecond, cfg.RetryInitialDelay)
	assert.Equal(t, 2*time.Second, cfg.RetryMaxDelay)
	assert.Equal(t, 1.5, cfg.RetryMultiplier)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowOrigins)
}

func TestEnvHelpersFallBackOnGarbage(t *testing.T) {
	t.Setenv("SOME_INT", "not-a-number")
	t.Setenv("SOME_FLOAT", "nan-ish")
	t.Setenv("SOME_BOOL", "maybe")

	assert.Equal(t, 7, envInt("SOME_INT", 7))
	assert.Equal(t, 1.5, envFloat("SOME_FLOAT", 1.5))
	assert.True(t, envBool("SOME_BOOL", true))
}

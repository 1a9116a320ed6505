// Package config provides centralized configuration loaded from environment
// variables. Shared by both cmd/api and cmd/fantasyctl.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// CurrentSeason is the default NFL season assumed when a request does not
// name one.
const CurrentSeason = 2025

// --------------------------------------------------------------------------
// Config struct — populated from environment variables
// --------------------------------------------------------------------------

type Config struct {
	// Database
	DatabaseURL    string
	DBPoolMinConns int
	DBPoolMaxConns int
	DBPoolMaxLife  time.Duration

	// API server
	APIHost     string
	APIPort     int
	Environment string // development, staging, production
	Debug       bool

	// CORS
	CORSAllowOrigins []string

	// Rate limiting
	RateLimitEnabled  bool
	RateLimitRequests int
	RateLimitWindow   time.Duration

	// Sleeper platform API
	SleeperBaseURL           string
	SleeperRequestsPerMinute int

	// Upstream retry policy
	RetryMaxAttempts  int
	RetryInitialDelay time.Duration
	RetryMaxDelay     time.Duration
	RetryMultiplier   float64

	// Player resolution cache
	PlayerCacheTTL        time.Duration
	PlayerLookupBatchSize int

	// Composite report assembly
	DeepDiveWorkers int
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	dbURL := envOr("DATABASE_URL", envOr("SUPABASE_DB_URL", ""))
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL or SUPABASE_DB_URL must be set")
	}

	return &Config{
		DatabaseURL:    dbURL,
		DBPoolMinConns: envInt("DB_POOL_MIN_CONNS", 2),
		DBPoolMaxConns: envInt("DB_POOL_MAX_CONNS", 10),
		DBPoolMaxLife:  time.Duration(envInt("DB_POOL_MAX_LIFE_MINUTES", 30)) * time.Minute,

		APIHost:     envOr("API_HOST", "0.0.0.0"),
		APIPort:     envInt("API_PORT", envInt("PORT", 8000)),
		Environment: envOr("ENVIRONMENT", "development"),
		Debug:       envBool("DEBUG", false),

		CORSAllowOrigins: envList("CORS_ALLOW_ORIGINS", []string{
			"http://localhost:3000",
			"http://localhost:5173",
		}),

		RateLimitEnabled:  envBool("RATE_LIMIT_ENABLED", true),
		RateLimitRequests: envInt("RATE_LIMIT_REQUESTS", 100),
		RateLimitWindow:   time.Duration(envInt("RATE_LIMIT_WINDOW", 60)) * time.Second,

		SleeperBaseURL:           envOr("SLEEPER_BASE_URL", ""),
		SleeperRequestsPerMinute: envInt("SLEEPER_REQUESTS_PER_MINUTE", 600),

		RetryMaxAttempts:  envInt("RETRY_MAX_ATTEMPTS", 3),
		RetryInitialDelay: time.Duration(envInt("RETRY_INITIAL_DELAY_MS", 1000)) * time.Millisecond,
		RetryMaxDelay:     time.Duration(envInt("RETRY_MAX_DELAY_MS", 4000)) * time.Millisecond,
		RetryMultiplier:   envFloat("RETRY_BACKOFF_MULTIPLIER", 2),

		PlayerCacheTTL:        time.Duration(envInt("PLAYER_CACHE_TTL_MINUTES", 60)) * time.Minute,
		PlayerLookupBatchSize: envInt("PLAYER_LOOKUP_BATCH_SIZE", 100),

		DeepDiveWorkers: envInt("DEEPDIVE_WORKERS", 6),
	}, nil
}

// IsProduction returns true if running in production environment.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// --------------------------------------------------------------------------
// Env helpers
// --------------------------------------------------------------------------

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return fallback
}

func envList(key string, fallback []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return fallback
}

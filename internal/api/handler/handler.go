// Package handler provides HTTP handlers for all API endpoints.
// Handlers parse request parameters, delegate to the query, resolve, and
// bundle layers, and encode JSON responses.
package handler

import (
	"net/http"
	"time"

	"github.com/gridironlab/fantasy-data/internal/api/respond"
	"github.com/gridironlab/fantasy-data/internal/bundle"
	"github.com/gridironlab/fantasy-data/internal/config"
	"github.com/gridironlab/fantasy-data/internal/db"
	"github.com/gridironlab/fantasy-data/internal/resolve"
	"github.com/gridironlab/fantasy-data/internal/sleeper"
)

// Handler holds shared dependencies for all endpoint handlers.
type Handler struct {
	pool     *db.Pool
	cache    *resolve.Cache
	resolver *resolve.Resolver
	bundles  *bundle.Service
	sleeper  *sleeper.Client
	cfg      *config.Config
}

// New creates a Handler with shared dependencies.
func New(pool *db.Pool, cache *resolve.Cache, resolver *resolve.Resolver, bundles *bundle.Service, sl *sleeper.Client, cfg *config.Config) *Handler {
	return &Handler{
		pool:     pool,
		cache:    cache,
		resolver: resolver,
		bundles:  bundles,
		sleeper:  sl,
		cfg:      cfg,
	}
}

// Root serves API info at /.
// @Summary API root info
// @Description Returns API name, version, and status.
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"name":    "Fantasy Data API",
		"version": "1.0.0",
		"status":  "running",
		"docs":    "/docs",
		"optimizations": []string{
			"pgxpool_connection_pooling",
			"prepared_statements",
			"player_resolution_cache",
			"bounded_fanout",
			"gzip_compression",
		},
	})
}

// HealthCheck returns basic health status.
// @Summary Health check
// @Description Returns basic health status and timestamp.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HealthCheckDB verifies database connectivity.
// @Summary Database health check
// @Description Verifies warehouse connectivity.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health/db [get]
func (h *Handler) HealthCheckDB(w http.ResponseWriter, r *http.Request) {
	if err := h.pool.HealthCheck(r.Context()); err != nil {
		respond.WriteJSONObject(w, http.StatusServiceUnavailable, map[string]interface{}{
			"status":    "unhealthy",
			"database":  "disconnected",
			"error":     "Database connection check failed",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"database":  "connected",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HealthCheckCache returns player-resolution cache statistics.
// @Summary Cache health check
// @Description Returns resolution cache statistics (active keys, expired keys).
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health/cache [get]
func (h *Handler) HealthCheckCache(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"cache":     h.cache.Stats(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	corslib "github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/gridironlab/fantasy-data/internal/api/handler"
	"github.com/gridironlab/fantasy-data/internal/bundle"
	"github.com/gridironlab/fantasy-data/internal/config"
	"github.com/gridironlab/fantasy-data/internal/db"
	"github.com/gridironlab/fantasy-data/internal/resolve"
	"github.com/gridironlab/fantasy-data/internal/sleeper"
)

// NewRouter creates and configures the Chi router with all middleware and routes.
func NewRouter(pool *db.Pool, cache *resolve.Cache, resolver *resolve.Resolver, bundles *bundle.Service, sl *sleeper.Client, cfg *config.Config) *chi.Mux {
	r := chi.NewRouter()

	// --- Middleware stack ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(TimingMiddleware)
	r.Use(middleware.Compress(5)) // gzip

	// CORS
	c := corslib.New(corslib.Options{
		AllowedOrigins:   cfg.CORSAllowOrigins,
		AllowedMethods:   []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Accept-Encoding", "Content-Type", "If-None-Match", "Cache-Control"},
		ExposedHeaders:   []string{"X-Process-Time", "Link", "ETag"},
		AllowCredentials: false,
	})
	r.Use(c.Handler)

	// Rate limiting
	if cfg.RateLimitEnabled {
		r.Use(RateLimitMiddleware(cfg.RateLimitRequests, cfg.RateLimitWindow))
	}

	// --- Handler dependencies ---
	h := handler.New(pool, cache, resolver, bundles, sl, cfg)

	// --- Routes ---

	// Root
	r.Get("/", h.Root)

	// Health checks
	r.Route("/health", func(r chi.Router) {
		r.Get("/", h.HealthCheck)
		r.Get("/db", h.HealthCheckDB)
		r.Get("/cache", h.HealthCheckCache)
	})

	// Prometheus metrics
	r.Handle("/metrics", promhttp.Handler())

	// Swagger UI
	r.Get("/docs/*", httpSwagger.Handler(
		httpSwagger.URL("/docs/doc.json"),
	))

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Warehouse datasets
		r.Get("/datasets", h.ListDatasets)
		r.Get("/dictionary", h.GetDictionary)
		r.Get("/stats/{dataset}", h.GetDatasetStats)

		// Players
		r.Get("/players/resolve", h.ResolvePlayers)
		r.Get("/players/deepdive", h.PlayerDeepDive)
		r.Get("/players/trending", h.GetTrendingPlayers)

		// Sleeper leagues
		r.Get("/users/{username}/leagues", h.GetUserLeagues)
		r.Get("/leagues/{leagueID}/rosters", h.GetLeagueRosters)
		r.Get("/leagues/{leagueID}/users", h.GetLeagueUsers)
		r.Get("/leagues/{leagueID}/matchups/{week}", h.GetLeagueMatchups)
	})

	return r
}

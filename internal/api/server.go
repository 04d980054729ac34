package api

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	corslib "github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/albapepper/auf-analytics/internal/api/handler"
	"github.com/albapepper/auf-analytics/internal/config"
	"github.com/albapepper/auf-analytics/internal/league"
	"github.com/albapepper/auf-analytics/internal/query"
)

// NewRouter creates and configures the Chi router with all middleware and routes.
func NewRouter(store league.ReadWriter, rules query.Rules, cfg *config.Config, reseed handler.ReseedFunc, logger *slog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// --- Middleware stack ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(TimingMiddleware)
	r.Use(LoggingMiddleware(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5)) // gzip

	// CORS
	c := corslib.New(corslib.Options{
		AllowedOrigins:   cfg.CORSAllowOrigins,
		AllowedMethods:   []string{"GET", "HEAD", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Accept-Encoding", "Content-Type", "If-None-Match", "Cache-Control"},
		ExposedHeaders:   []string{"X-Process-Time", "ETag"},
		AllowCredentials: false,
	})
	r.Use(c.Handler)

	// Rate limiting
	if cfg.RateLimitEnabled {
		r.Use(RateLimitMiddleware(cfg.RateLimitRequests, cfg.RateLimitWindow))
	}

	// --- Handler dependencies ---
	h := handler.New(store, rules, cfg, reseed, logger)

	// --- Routes ---

	// Root
	r.Get("/", h.Root)

	// Health checks
	r.Route("/health", func(r chi.Router) {
		r.Get("/", h.HealthCheck)
		r.Get("/db", h.HealthCheckDB)
	})

	// Swagger UI
	r.Get("/docs/*", httpSwagger.Handler(
		httpSwagger.URL("/docs/doc.json"),
	))

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/meta", h.GetMeta)

		// Teams and fixtures
		r.Get("/teams", h.ListTeams)
		r.Get("/teams/search", h.SearchTeams)
		r.Get("/teams/summary", h.GetTeamSummaries)
		r.Get("/fixtures", h.ListFixtures)
		r.Get("/fixtures/{matchID}/events", h.GetMatchEvents)

		// Standings
		r.Get("/standings", h.GetStandings)
		r.Get("/standings/attacks", h.GetBestAttacks)

		// Players
		r.Get("/scorers", h.GetScorers)
		r.Get("/players", h.GetPlayers)

		// Stats
		r.Get("/stats/insights", h.GetInsights)
		r.Get("/stats/discipline", h.GetDiscipline)

		// Advisor and free query
		r.Post("/matchup", h.PostMatchup)
		r.Post("/query", h.PostQuery)

		// Admin
		r.Post("/admin/reseed", h.PostReseed)
	})

	return r
}

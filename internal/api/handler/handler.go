// Package handler provides HTTP handlers for all API endpoints. Handlers
// resolve the period from the request, call the analytics service or the
// free-query router and write JSON through package respond.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/albapepper/auf-analytics/internal/analytics"
	"github.com/albapepper/auf-analytics/internal/api/respond"
	"github.com/albapepper/auf-analytics/internal/config"
	"github.com/albapepper/auf-analytics/internal/league"
	"github.com/albapepper/auf-analytics/internal/query"
	"github.com/albapepper/auf-analytics/internal/seed"
)

// ReseedFunc replaces the served dataset from the configured seed source.
type ReseedFunc func(ctx context.Context) (seed.SeedResult, error)

// Handler holds shared dependencies for all endpoint handlers.
type Handler struct {
	store  league.ReadWriter
	svc    *analytics.Service
	router *query.Router
	cfg    *config.Config
	reseed ReseedFunc
	logger *slog.Logger
}

// New creates a Handler with shared dependencies.
func New(store league.ReadWriter, rules query.Rules, cfg *config.Config, reseed ReseedFunc, logger *slog.Logger) *Handler {
	svc := analytics.NewService(store)
	return &Handler{
		store:  store,
		svc:    svc,
		router: query.NewRouter(store, svc, rules, logger),
		cfg:    cfg,
		reseed: reseed,
		logger: logger,
	}
}

// Root serves API info at /.
// @Summary API root info
// @Description Returns API name, version, status and the default period.
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"name":           "AUF Analytics API",
		"version":        "1.0.0",
		"status":         "running",
		"docs":           "/docs",
		"default_season": h.cfg.DefaultSeason,
		"default_stage":  h.cfg.DefaultStage,
		"store":          h.cfg.StoreDriver,
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

// HealthCheckDB verifies store connectivity.
// @Summary Store health check
// @Description Verifies the backing store (SQLite or Postgres) answers.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health/db [get]
func (h *Handler) HealthCheckDB(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Ping(r.Context()); err != nil {
		h.logger.Warn("Store health check failed", "error", err)
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
		"driver":    h.cfg.StoreDriver,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// --------------------------------------------------------------------------
// Shared helpers
// --------------------------------------------------------------------------

// Period echoes the resolved season and stage of a response.
type Period struct {
	Season    int    `json:"season"`
	Stage     string `json:"stage"`
	StageName string `json:"stage_name"`
}

type paramError struct {
	code, message, detail string
}

func (e *paramError) write(w http.ResponseWriter) {
	respond.WriteErrorDetail(w, http.StatusBadRequest, e.code, e.message, e.detail)
}

// resolvePeriod applies the configured defaults. season 0 and stage "" mean
// "use the default".
func (h *Handler) resolvePeriod(season int, stage string) (Period, *paramError) {
	if season == 0 {
		season = h.cfg.DefaultSeason
	}
	if season < 0 {
		return Period{}, &paramError{"INVALID_SEASON", "season must be a positive year", strconv.Itoa(season)}
	}
	stage = strings.ToLower(strings.TrimSpace(stage))
	if stage == "" {
		stage = h.cfg.DefaultStage
	}
	if !league.IsKnownStage(stage) {
		return Period{}, &paramError{"INVALID_STAGE", "Unsupported stage", stage}
	}
	return Period{Season: season, Stage: stage, StageName: league.StageNames[stage]}, nil
}

// periodFromQuery reads ?season= and ?stage=. On failure the 400 has already
// been written.
func (h *Handler) periodFromQuery(w http.ResponseWriter, r *http.Request) (Period, bool) {
	season, perr := intParam(r, "season")
	if perr != nil {
		perr.write(w)
		return Period{}, false
	}
	p, perr := h.resolvePeriod(deref(season), r.URL.Query().Get("stage"))
	if perr != nil {
		perr.write(w)
		return Period{}, false
	}
	return p, true
}

// intParam parses an optional integer query parameter.
func intParam(r *http.Request, name string) (*int, *paramError) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, &paramError{"INVALID_PARAM", name + " must be an integer", raw}
	}
	return &n, nil
}

func deref(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

// writeFailure maps service errors: a missing team is a 404, anything else
// is logged and reported as a 500.
func (h *Handler) writeFailure(w http.ResponseWriter, r *http.Request, err error) {
	var nf *analytics.NotFoundError
	if errors.As(err, &nf) {
		msg := "Team has no standings row in this period"
		if nf.Name != "" {
			msg = "No team matches the given name"
		}
		respond.WriteErrorDetail(w, http.StatusNotFound, "NOT_FOUND", msg, nf.Ref())
		return
	}
	h.logger.Error("Request failed", "path", r.URL.Path, "error", err)
	respond.WriteError(w, http.StatusInternalServerError, "INTERNAL", "Internal server error")
}

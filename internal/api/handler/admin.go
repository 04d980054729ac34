package handler

import (
	"net/http"

	"github.com/albapepper/auf-analytics/internal/api/respond"
)

// ReseedResponse reports what a reseed loaded.
type ReseedResponse struct {
	Message     string   `json:"message"`
	Source      string   `json:"source"`
	Teams       int      `json:"teams"`
	Fixtures    int      `json:"fixtures"`
	PlayerStats int      `json:"player_stats"`
	Events      int      `json:"events"`
	Errors      []string `json:"errors"`
}

// PostReseed replaces the dataset from the seed source.
// @Summary Reseed the dataset
// @Description Reloads the dataset through the seed chain (SEED_DATA_DIR, generated, sample, simulated). Disabled unless ALLOW_RESEED=true.
// @Tags admin
// @Produce json
// @Success 200 {object} ReseedResponse
// @Failure 403 {object} respond.ErrorResponse
// @Failure 500 {object} respond.ErrorResponse
// @Router /admin/reseed [post]
func (h *Handler) PostReseed(w http.ResponseWriter, r *http.Request) {
	if !h.cfg.AllowReseed || h.reseed == nil {
		respond.WriteError(w, http.StatusForbidden, "RESEED_DISABLED", "Reseed is not enabled")
		return
	}

	res, err := h.reseed(r.Context())
	if err != nil {
		h.writeFailure(w, r, err)
		return
	}
	h.logger.Info("Reseed via API", "summary", res.Summary())

	errs := res.Errors
	if errs == nil {
		errs = []string{}
	}
	respond.WriteJSONObject(w, http.StatusOK, ReseedResponse{
		Message:     "Reseed completed",
		Source:      res.Source,
		Teams:       res.TeamsLoaded,
		Fixtures:    res.FixturesLoaded,
		PlayerStats: res.PlayerStatsLoaded,
		Events:      res.EventsLoaded,
		Errors:      errs,
	})
}

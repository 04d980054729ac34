package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/albapepper/auf-analytics/internal/analytics"
	"github.com/albapepper/auf-analytics/internal/api/respond"
)

// DefaultAttacks is how many rows the best-attacks ranking returns by default.
const DefaultAttacks = 5

// StandingsResponse is a ranked table.
type StandingsResponse struct {
	Period
	Rows []analytics.StandingsRow `json:"rows"`
}

// ScorersResponse is the top scorer list.
type ScorersResponse struct {
	Period
	Count   int                `json:"count"`
	Scorers []analytics.Scorer `json:"scorers"`
}

// PlayersResponse is the aggregated player table.
type PlayersResponse struct {
	Period
	Count   int                    `json:"count"`
	Players []analytics.PlayerLine `json:"players"`
}

// InsightsResponse carries the chart series of a period.
type InsightsResponse struct {
	Period
	analytics.Insights
}

// DisciplineResponse is the cards table.
type DisciplineResponse struct {
	Period
	Count int                       `json:"count"`
	Teams []analytics.DisciplineRow `json:"teams"`
}

// TeamSummaryResponse lists one overview card per team.
type TeamSummaryResponse struct {
	Period
	Count int                     `json:"count"`
	Teams []analytics.TeamSummary `json:"teams"`
}

// MatchupRequest names two teams by id or by name. Ids win when both are set.
type MatchupRequest struct {
	TeamAID *int   `json:"team_a_id"`
	TeamBID *int   `json:"team_b_id"`
	TeamA   string `json:"team_a"`
	TeamB   string `json:"team_b"`
	Season  int    `json:"season"`
	Stage   string `json:"stage"`
}

// GetStandings returns the standings table of a period.
// @Summary Standings table
// @Description Teams ranked by points, goal difference, goals for and name. Includes last-5 form, average home attendance and cards.
// @Tags standings
// @Produce json
// @Param season query int false "Season (defaults to DEFAULT_SEASON)"
// @Param stage query string false "Stage" Enums(apertura, intermedio, clausura, anual)
// @Success 200 {object} StandingsResponse
// @Failure 400 {object} respond.ErrorResponse
// @Failure 500 {object} respond.ErrorResponse
// @Router /standings [get]
func (h *Handler) GetStandings(w http.ResponseWriter, r *http.Request) {
	p, ok := h.periodFromQuery(w, r)
	if !ok {
		return
	}
	rows, err := h.svc.Standings(r.Context(), p.Season, p.Stage)
	if err != nil {
		h.writeFailure(w, r, err)
		return
	}
	respond.WriteJSON(w, r, StandingsResponse{Period: p, Rows: rows})
}

// GetBestAttacks returns the standings re-sorted by goals scored.
// @Summary Best attacks
// @Tags standings
// @Produce json
// @Param season query int false "Season (defaults to DEFAULT_SEASON)"
// @Param stage query string false "Stage" Enums(apertura, intermedio, clausura, anual)
// @Param top query int false "Number of teams" default(5)
// @Success 200 {object} StandingsResponse
// @Failure 400 {object} respond.ErrorResponse
// @Failure 500 {object} respond.ErrorResponse
// @Router /standings/attacks [get]
func (h *Handler) GetBestAttacks(w http.ResponseWriter, r *http.Request) {
	p, ok := h.periodFromQuery(w, r)
	if !ok {
		return
	}
	top, ok := positiveParam(w, r, "top", DefaultAttacks)
	if !ok {
		return
	}
	rows, err := h.svc.Attacks(r.Context(), p.Season, p.Stage, top)
	if err != nil {
		h.writeFailure(w, r, err)
		return
	}
	respond.WriteJSON(w, r, StandingsResponse{Period: p, Rows: rows})
}

// GetScorers returns the top scorers of a period.
// @Summary Top scorers
// @Description Players with at least one goal, goals descending. At most 20 rows.
// @Tags players
// @Produce json
// @Param season query int false "Season (defaults to DEFAULT_SEASON)"
// @Param stage query string false "Stage" Enums(apertura, intermedio, clausura, anual)
// @Param top query int false "Number of scorers (max 20)" default(20)
// @Success 200 {object} ScorersResponse
// @Failure 400 {object} respond.ErrorResponse
// @Failure 500 {object} respond.ErrorResponse
// @Router /scorers [get]
func (h *Handler) GetScorers(w http.ResponseWriter, r *http.Request) {
	p, ok := h.periodFromQuery(w, r)
	if !ok {
		return
	}
	top, ok := positiveParam(w, r, "top", analytics.MaxScorers)
	if !ok {
		return
	}
	list, err := h.svc.Scorers(r.Context(), p.Season, p.Stage, top)
	if err != nil {
		h.writeFailure(w, r, err)
		return
	}
	respond.WriteJSON(w, r, ScorersResponse{Period: p, Count: len(list), Scorers: list})
}

// GetPlayers returns per-player totals.
// @Summary Player table
// @Description Player statistics aggregated per player and team, sorted by goals, assists and minutes.
// @Tags players
// @Produce json
// @Param season query int false "Season (defaults to DEFAULT_SEASON)"
// @Param stage query string false "Stage" Enums(apertura, intermedio, clausura, anual)
// @Param team_id query int false "Only players of this team"
// @Success 200 {object} PlayersResponse
// @Failure 400 {object} respond.ErrorResponse
// @Failure 500 {object} respond.ErrorResponse
// @Router /players [get]
func (h *Handler) GetPlayers(w http.ResponseWriter, r *http.Request) {
	p, ok := h.periodFromQuery(w, r)
	if !ok {
		return
	}
	teamID, perr := intParam(r, "team_id")
	if perr != nil {
		perr.write(w)
		return
	}
	lines, err := h.svc.Players(r.Context(), p.Season, p.Stage, teamID)
	if err != nil {
		h.writeFailure(w, r, err)
		return
	}
	respond.WriteJSON(w, r, PlayersResponse{Period: p, Count: len(lines), Players: lines})
}

// GetInsights returns the chart series of a period.
// @Summary Stats insights
// @Description Points, goals for, cards and average attendance series, each capped at eight teams.
// @Tags stats
// @Produce json
// @Param season query int false "Season (defaults to DEFAULT_SEASON)"
// @Param stage query string false "Stage" Enums(apertura, intermedio, clausura, anual)
// @Success 200 {object} InsightsResponse
// @Failure 400 {object} respond.ErrorResponse
// @Failure 500 {object} respond.ErrorResponse
// @Router /stats/insights [get]
func (h *Handler) GetInsights(w http.ResponseWriter, r *http.Request) {
	p, ok := h.periodFromQuery(w, r)
	if !ok {
		return
	}
	ins, err := h.svc.Insights(r.Context(), p.Season, p.Stage)
	if err != nil {
		h.writeFailure(w, r, err)
		return
	}
	respond.WriteJSON(w, r, InsightsResponse{Period: p, Insights: ins})
}

// GetDiscipline returns the cards table of a period.
// @Summary Discipline table
// @Tags stats
// @Produce json
// @Param season query int false "Season (defaults to DEFAULT_SEASON)"
// @Param stage query string false "Stage" Enums(apertura, intermedio, clausura, anual)
// @Success 200 {object} DisciplineResponse
// @Failure 400 {object} respond.ErrorResponse
// @Failure 500 {object} respond.ErrorResponse
// @Router /stats/discipline [get]
func (h *Handler) GetDiscipline(w http.ResponseWriter, r *http.Request) {
	p, ok := h.periodFromQuery(w, r)
	if !ok {
		return
	}
	rows, err := h.svc.Discipline(r.Context(), p.Season, p.Stage)
	if err != nil {
		h.writeFailure(w, r, err)
		return
	}
	respond.WriteJSON(w, r, DisciplineResponse{Period: p, Count: len(rows), Teams: rows})
}

// GetTeamSummaries returns the per-team overview of a period.
// @Summary Team summaries
// @Description Average home attendance, primary goalkeeper by minutes and top scorer of every team, ordered by name.
// @Tags teams
// @Produce json
// @Param season query int false "Season (defaults to DEFAULT_SEASON)"
// @Param stage query string false "Stage" Enums(apertura, intermedio, clausura, anual)
// @Success 200 {object} TeamSummaryResponse
// @Failure 400 {object} respond.ErrorResponse
// @Failure 500 {object} respond.ErrorResponse
// @Router /teams/summary [get]
func (h *Handler) GetTeamSummaries(w http.ResponseWriter, r *http.Request) {
	p, ok := h.periodFromQuery(w, r)
	if !ok {
		return
	}
	teams, err := h.svc.TeamSummaries(r.Context(), p.Season, p.Stage)
	if err != nil {
		h.writeFailure(w, r, err)
		return
	}
	respond.WriteJSON(w, r, TeamSummaryResponse{Period: p, Count: len(teams), Teams: teams})
}

// PostMatchup compares two teams.
// @Summary Matchup advice
// @Description Compares two teams on points, form, goal difference and discipline and returns a recommendation text.
// @Tags matchup
// @Accept json
// @Produce json
// @Param request body MatchupRequest true "Teams and period"
// @Success 200 {object} analytics.Matchup
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Failure 500 {object} respond.ErrorResponse
// @Router /matchup [post]
func (h *Handler) PostMatchup(w http.ResponseWriter, r *http.Request) {
	var req MatchupRequest
	if !decodeBody(w, r, &req) {
		return
	}
	p, perr := h.resolvePeriod(req.Season, req.Stage)
	if perr != nil {
		perr.write(w)
		return
	}

	a, okA, err := h.teamRef(r, req.TeamAID, req.TeamA)
	if err != nil {
		h.writeFailure(w, r, err)
		return
	}
	b, okB, err := h.teamRef(r, req.TeamBID, req.TeamB)
	if err != nil {
		h.writeFailure(w, r, err)
		return
	}
	if !okA || !okB {
		respond.WriteError(w, http.StatusBadRequest, "TEAMS_REQUIRED", "Two teams are required")
		return
	}
	if a == b {
		respond.WriteErrorDetail(w, http.StatusBadRequest, "SAME_TEAM", "A team cannot be compared with itself", strconv.Itoa(a))
		return
	}

	m, err := h.svc.AdviseMatchup(r.Context(), a, b, p.Season, p.Stage)
	if err != nil {
		h.writeFailure(w, r, err)
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, m)
}

// teamRef resolves a team given by id or by name. ok is false when neither
// is set; a name that matches no team is a *analytics.NotFoundError.
func (h *Handler) teamRef(r *http.Request, id *int, name string) (int, bool, error) {
	if id != nil {
		return *id, true, nil
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, false, nil
	}
	e, found, err := h.router.ResolveTeam(r.Context(), name)
	if err != nil {
		return 0, false, err
	}
	if !found {
		return 0, false, &analytics.NotFoundError{Name: name}
	}
	return e.TeamID, true, nil
}

// positiveParam reads an optional positive integer, falling back to def.
func positiveParam(w http.ResponseWriter, r *http.Request, name string, def int) (int, bool) {
	v, perr := intParam(r, name)
	if perr != nil {
		perr.write(w)
		return 0, false
	}
	if v == nil {
		return def, true
	}
	if *v < 1 {
		respond.WriteErrorDetail(w, http.StatusBadRequest, "INVALID_PARAM", name+" must be at least 1", strconv.Itoa(*v))
		return 0, false
	}
	return *v, true
}

const maxBodyBytes = 1 << 16

// decodeBody reads a JSON request body into v. On failure the 400 has
// already been written.
func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		respond.WriteErrorDetail(w, http.StatusBadRequest, "INVALID_BODY", "Request body must be a JSON object", fmt.Sprint(err))
		return false
	}
	return true
}

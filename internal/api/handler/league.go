package handler

import (
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/albapepper/auf-analytics/internal/api/respond"
	"github.com/albapepper/auf-analytics/internal/league"
)

// StageInfo is one selectable stage.
type StageInfo struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// MetaResponse lists what a client can ask for.
type MetaResponse struct {
	Seasons       []int         `json:"seasons"`
	Stages        []StageInfo   `json:"stages"`
	DefaultSeason int           `json:"default_season"`
	DefaultStage  string        `json:"default_stage"`
	Teams         []league.Team `json:"teams"`
}

// TeamsResponse wraps a team list.
type TeamsResponse struct {
	Count int           `json:"count"`
	Teams []league.Team `json:"teams"`
}

// FixtureView is a fixture with both team names resolved.
type FixtureView struct {
	league.Fixture
	HomeTeam string `json:"home_team"`
	AwayTeam string `json:"away_team"`
}

// FixturesResponse lists fixtures of a period.
type FixturesResponse struct {
	Period
	Count    int           `json:"count"`
	Fixtures []FixtureView `json:"fixtures"`
}

// EventView is a timeline entry with its team name resolved.
type EventView struct {
	league.MatchEvent
	Team string `json:"team"`
}

// MatchEventsResponse is the timeline of one fixture.
type MatchEventsResponse struct {
	MatchID int         `json:"match_id"`
	Count   int         `json:"count"`
	Events  []EventView `json:"events"`
}

// GetMeta returns seasons, stages, defaults and teams.
// @Summary League metadata
// @Description Seasons present in the store, the stage registry, the configured default period and all teams.
// @Tags meta
// @Produce json
// @Success 200 {object} MetaResponse
// @Failure 500 {object} respond.ErrorResponse
// @Router /meta [get]
func (h *Handler) GetMeta(w http.ResponseWriter, r *http.Request) {
	seasons, err := h.store.ListSeasons(r.Context())
	if err != nil {
		h.writeFailure(w, r, fmt.Errorf("list seasons: %w", err))
		return
	}
	teams, err := h.store.ListTeams(r.Context())
	if err != nil {
		h.writeFailure(w, r, fmt.Errorf("list teams: %w", err))
		return
	}

	stages := make([]StageInfo, 0, len(league.StageCodes))
	for _, code := range league.StageCodes {
		stages = append(stages, StageInfo{Code: code, Name: league.StageNames[code]})
	}
	if seasons == nil {
		seasons = []int{}
	}
	respond.WriteJSON(w, r, MetaResponse{
		Seasons:       seasons,
		Stages:        stages,
		DefaultSeason: h.cfg.DefaultSeason,
		DefaultStage:  h.cfg.DefaultStage,
		Teams:         teams,
	})
}

// ListTeams returns every team.
// @Summary List teams
// @Tags teams
// @Produce json
// @Success 200 {object} TeamsResponse
// @Failure 500 {object} respond.ErrorResponse
// @Router /teams [get]
func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := h.store.ListTeams(r.Context())
	if err != nil {
		h.writeFailure(w, r, fmt.Errorf("list teams: %w", err))
		return
	}
	respond.WriteJSON(w, r, TeamsResponse{Count: len(teams), Teams: teams})
}

// SearchTeams finds teams by a loose name match.
// @Summary Search teams by name
// @Description Case and accent insensitive fuzzy match on team names, best matches first.
// @Tags teams
// @Produce json
// @Param name query string true "Part of a team name"
// @Success 200 {object} TeamsResponse
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Router /teams/search [get]
func (h *Handler) SearchTeams(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.URL.Query().Get("name"))
	if name == "" {
		respond.WriteError(w, http.StatusBadRequest, "MISSING_NAME", "name query parameter is required")
		return
	}
	teams, err := h.store.ListTeams(r.Context())
	if err != nil {
		h.writeFailure(w, r, fmt.Errorf("list teams: %w", err))
		return
	}

	names := make([]string, len(teams))
	for i, t := range teams {
		names[i] = t.Name
	}
	ranks := fuzzy.RankFindNormalizedFold(name, names)
	sort.SliceStable(ranks, func(i, j int) bool { return ranks[i].Distance < ranks[j].Distance })

	found := make([]league.Team, 0, len(ranks))
	for _, rk := range ranks {
		found = append(found, teams[rk.OriginalIndex])
	}
	if len(found) == 0 {
		respond.WriteErrorDetail(w, http.StatusNotFound, "NOT_FOUND", "No team matches", name)
		return
	}
	respond.WriteJSON(w, r, TeamsResponse{Count: len(found), Teams: found})
}

// ListFixtures returns the fixtures of a period.
// @Summary List fixtures
// @Description Fixtures of a season and stage ordered by date, optionally filtered by team or round.
// @Tags fixtures
// @Produce json
// @Param season query int false "Season (defaults to DEFAULT_SEASON)"
// @Param stage query string false "Stage" Enums(apertura, intermedio, clausura, anual)
// @Param team_id query int false "Only fixtures involving this team"
// @Param round query string false "Only this round"
// @Success 200 {object} FixturesResponse
// @Failure 400 {object} respond.ErrorResponse
// @Failure 500 {object} respond.ErrorResponse
// @Router /fixtures [get]
func (h *Handler) ListFixtures(w http.ResponseWriter, r *http.Request) {
	p, ok := h.periodFromQuery(w, r)
	if !ok {
		return
	}
	teamID, perr := intParam(r, "team_id")
	if perr != nil {
		perr.write(w)
		return
	}
	round := strings.TrimSpace(r.URL.Query().Get("round"))

	teams, err := h.store.ListTeams(r.Context())
	if err != nil {
		h.writeFailure(w, r, fmt.Errorf("list teams: %w", err))
		return
	}
	idx := league.TeamIndex(teams)

	views := make([]FixtureView, 0)
	for _, stage := range league.StagesFor(p.Stage) {
		fixtures, err := h.store.ListFixtures(r.Context(), p.Season, stage)
		if err != nil {
			h.writeFailure(w, r, fmt.Errorf("list fixtures: %w", err))
			return
		}
		for _, f := range fixtures {
			if teamID != nil && f.HomeTeamID != *teamID && f.AwayTeamID != *teamID {
				continue
			}
			if round != "" && !strings.EqualFold(f.Round, round) {
				continue
			}
			views = append(views, FixtureView{
				Fixture:  f,
				HomeTeam: teamName(idx, f.HomeTeamID),
				AwayTeam: teamName(idx, f.AwayTeamID),
			})
		}
	}
	sort.SliceStable(views, func(i, j int) bool {
		a, b := views[i], views[j]
		if a.Date != b.Date {
			return a.Date < b.Date
		}
		if a.Time != b.Time {
			return a.Time < b.Time
		}
		return a.ID < b.ID
	})

	respond.WriteJSON(w, r, FixturesResponse{Period: p, Count: len(views), Fixtures: views})
}

// GetMatchEvents returns the goal and card timeline of a fixture.
// @Summary Match timeline
// @Description Goals and cards of one fixture ordered by minute. A fixture without recorded events yields an empty list.
// @Tags fixtures
// @Produce json
// @Param matchID path int true "Fixture id"
// @Success 200 {object} MatchEventsResponse
// @Failure 400 {object} respond.ErrorResponse
// @Failure 500 {object} respond.ErrorResponse
// @Router /fixtures/{matchID}/events [get]
func (h *Handler) GetMatchEvents(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "matchID")
	matchID, err := strconv.Atoi(raw)
	if err != nil || matchID <= 0 {
		respond.WriteErrorDetail(w, http.StatusBadRequest, "INVALID_PARAM", "matchID must be a positive integer", raw)
		return
	}

	events, err := h.store.ListMatchEvents(r.Context(), matchID)
	if err != nil {
		h.writeFailure(w, r, fmt.Errorf("list match events: %w", err))
		return
	}
	teams, err := h.store.ListTeams(r.Context())
	if err != nil {
		h.writeFailure(w, r, fmt.Errorf("list teams: %w", err))
		return
	}
	idx := league.TeamIndex(teams)

	views := make([]EventView, 0, len(events))
	for _, e := range events {
		views = append(views, EventView{MatchEvent: e, Team: teamName(idx, e.TeamID)})
	}
	respond.WriteJSON(w, r, MatchEventsResponse{MatchID: matchID, Count: len(views), Events: views})
}

func teamName(idx map[int]league.Team, id int) string {
	if t, ok := idx[id]; ok {
		return t.Name
	}
	return fmt.Sprintf("Team %d", id)
}

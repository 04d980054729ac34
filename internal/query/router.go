// Package query answers free-text questions about a league period. A question
// is normalized, scanned for team aliases, classified against an ordered rule
// table and dispatched to the analytics service; the result is rendered into
// a short text answer.
package query

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/albapepper/auf-analytics/internal/analytics"
	"github.com/albapepper/auf-analytics/internal/league"
)

// Default and maximum sizes of a plural scorer answer.
const (
	DefaultTopN = 5
	MaxTopN     = analytics.MaxScorers
)

// Analytics is the slice of analytics.Service the router dispatches to.
type Analytics interface {
	Standings(ctx context.Context, season int, stage string) ([]analytics.StandingsRow, error)
	Scorers(ctx context.Context, season int, stage string, limit int) ([]analytics.Scorer, error)
	AdviseMatchup(ctx context.Context, teamA, teamB, season int, stage string) (analytics.Matchup, error)
}

// TeamLister supplies the reference teams aliases are built from.
type TeamLister interface {
	ListTeams(ctx context.Context) ([]league.Team, error)
}

// Answer is the router's response. Intent and Entities are echoed for
// debugging clients.
type Answer struct {
	Query    string   `json:"query"`
	Text     string   `json:"answer"`
	Intent   Intent   `json:"intent"`
	Entities []Entity `json:"entities"`
	Season   int      `json:"season"`
	Stage    string   `json:"stage"`
}

// Router classifies and answers free-text questions.
type Router struct {
	teams  TeamLister
	svc    Analytics
	rules  Rules
	logger *slog.Logger
}

// NewRouter creates a Router.
func NewRouter(teams TeamLister, svc Analytics, rules Rules, logger *slog.Logger) *Router {
	return &Router{teams: teams, svc: svc, rules: rules, logger: logger}
}

// Answer resolves a question for a (season, stage). Unmatched input is not an
// error: it yields IntentUnknown with a clarification text. Only store
// failures are returned as errors.
func (r *Router) Answer(ctx context.Context, text string, season int, stage string) (Answer, error) {
	teams, err := r.teams.ListTeams(ctx)
	if err != nil {
		return Answer{}, fmt.Errorf("list teams: %w", err)
	}

	toks := tokens(Normalize(text))
	entities := BuildAliasTable(teams, r.rules).Extract(text)
	intent := r.rules.Classify(toks, len(entities))

	ids := make([]int, len(entities))
	for i, e := range entities {
		ids[i] = e.TeamID
	}
	r.logger.Debug("free query classified",
		"query", text,
		"intent", intent,
		"team_ids", ids,
		"season", season,
		"stage", stage,
	)

	ans := Answer{
		Query:    text,
		Intent:   intent,
		Entities: entities,
		Season:   season,
		Stage:    stage,
	}

	switch intent {
	case IntentComparison:
		ans.Text, err = r.comparison(ctx, entities, season, stage)
	case IntentTeamStatus:
		ans.Text, err = r.teamStatus(ctx, entities[0], season, stage)
	case IntentTopScorer:
		ans.Text, err = r.topScorer(ctx, toks, season, stage)
	case IntentTable:
		ans.Text, err = r.table(ctx, season, stage)
	default:
		ans.Text = clarification
	}
	if err != nil {
		return Answer{}, err
	}
	return ans, nil
}

func (r *Router) comparison(ctx context.Context, e []Entity, season int, stage string) (string, error) {
	m, err := r.svc.AdviseMatchup(ctx, e[0].TeamID, e[1].TeamID, season, stage)
	if errors.Is(err, analytics.ErrNotFound) {
		return fmt.Sprintf("There is not enough data in %s to compare %s and %s.",
			periodLabel(season, stage), e[0].Name, e[1].Name), nil
	}
	if err != nil {
		return "", fmt.Errorf("advise matchup: %w", err)
	}
	return m.Recommendation, nil
}

func (r *Router) teamStatus(ctx context.Context, e Entity, season int, stage string) (string, error) {
	rows, err := r.svc.Standings(ctx, season, stage)
	if err != nil {
		return "", fmt.Errorf("standings: %w", err)
	}
	row, ok := analytics.FindRow(rows, e.TeamID)
	if !ok {
		return fmt.Sprintf("There is no data for %s in %s.", e.Name, periodLabel(season, stage)), nil
	}
	return renderTeamStatus(row, season, stage), nil
}

func (r *Router) topScorer(ctx context.Context, toks []string, season int, stage string) (string, error) {
	n := r.scorerCount(toks)
	list, err := r.svc.Scorers(ctx, season, stage, n)
	if err != nil {
		return "", fmt.Errorf("scorers: %w", err)
	}
	if len(list) == 0 {
		return noDataText(season, stage), nil
	}
	if n == 1 {
		return renderTopScorer(list[0], season, stage), nil
	}
	return renderScorers(list, season, stage), nil
}

func (r *Router) table(ctx context.Context, season int, stage string) (string, error) {
	rows, err := r.svc.Standings(ctx, season, stage)
	if err != nil {
		return "", fmt.Errorf("standings: %w", err)
	}
	if len(rows) == 0 {
		return noDataText(season, stage), nil
	}
	return renderTable(rows, season, stage), nil
}

// scorerCount reads how many scorers a question asks for: "top N" wins,
// plural phrasing means DefaultTopN, otherwise one.
func (r *Router) scorerCount(toks []string) int {
	for i := 0; i+1 < len(toks); i++ {
		if toks[i] != "top" {
			continue
		}
		if n, err := strconv.Atoi(toks[i+1]); err == nil && n > 0 {
			return min(n, MaxTopN)
		}
	}
	for _, t := range toks {
		for _, p := range r.rules.Plural {
			if t == p {
				return DefaultTopN
			}
		}
	}
	return 1
}

// ResolveTeam maps a free-form team name ("peñarol", "bolso", "Defensor")
// to a team through the same alias table questions use.
func (r *Router) ResolveTeam(ctx context.Context, name string) (Entity, bool, error) {
	teams, err := r.teams.ListTeams(ctx)
	if err != nil {
		return Entity{}, false, fmt.Errorf("list teams: %w", err)
	}
	e, ok := BuildAliasTable(teams, r.rules).Lookup(name)
	return e, ok, nil
}

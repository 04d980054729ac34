package analytics

import (
	"context"
	"fmt"

	"github.com/albapepper/auf-analytics/internal/league"
)

// Service binds the pure aggregations to a store. Every call reads a fresh
// snapshot; aggregate stages such as "anual" are expanded before folding.
type Service struct {
	store league.Store
}

// NewService creates a Service reading from store.
func NewService(store league.Store) *Service {
	return &Service{store: store}
}

// Store exposes the underlying read store.
func (s *Service) Store() league.Store { return s.store }

func (s *Service) teamIndex(ctx context.Context) (map[int]league.Team, error) {
	teams, err := s.store.ListTeams(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	return league.TeamIndex(teams), nil
}

func (s *Service) fixtures(ctx context.Context, season int, stage string) ([]league.Fixture, error) {
	var out []league.Fixture
	for _, st := range league.StagesFor(stage) {
		fx, err := s.store.ListFixtures(ctx, season, st)
		if err != nil {
			return nil, fmt.Errorf("list fixtures %d/%s: %w", season, st, err)
		}
		out = append(out, fx...)
	}
	return out, nil
}

func (s *Service) playerStats(ctx context.Context, season int, stage string, teamID *int) ([]league.PlayerStat, error) {
	var out []league.PlayerStat
	for _, st := range league.StagesFor(stage) {
		ps, err := s.store.ListPlayerStats(ctx, season, st, teamID)
		if err != nil {
			return nil, fmt.Errorf("list player stats %d/%s: %w", season, st, err)
		}
		out = append(out, ps...)
	}
	return out, nil
}

// Standings returns the ranked table of a period.
func (s *Service) Standings(ctx context.Context, season int, stage string) ([]StandingsRow, error) {
	teams, err := s.teamIndex(ctx)
	if err != nil {
		return nil, err
	}
	fx, err := s.fixtures(ctx, season, stage)
	if err != nil {
		return nil, err
	}
	return BuildStandings(fx, teams), nil
}

// Scorers returns up to limit top scorers of a period.
func (s *Service) Scorers(ctx context.Context, season int, stage string, limit int) ([]Scorer, error) {
	teams, err := s.teamIndex(ctx)
	if err != nil {
		return nil, err
	}
	stats, err := s.playerStats(ctx, season, stage, nil)
	if err != nil {
		return nil, err
	}
	return TopScorers(stats, teams, limit), nil
}

// Players returns the aggregated player table, optionally for one team.
func (s *Service) Players(ctx context.Context, season int, stage string, teamID *int) ([]PlayerLine, error) {
	teams, err := s.teamIndex(ctx)
	if err != nil {
		return nil, err
	}
	stats, err := s.playerStats(ctx, season, stage, teamID)
	if err != nil {
		return nil, err
	}
	return PlayerTable(stats, teams), nil
}

// Insights returns the chart bundle of a period.
func (s *Service) Insights(ctx context.Context, season int, stage string) (Insights, error) {
	rows, err := s.Standings(ctx, season, stage)
	if err != nil {
		return Insights{}, err
	}
	return BuildInsights(rows), nil
}

// Discipline returns the card table of a period.
func (s *Service) Discipline(ctx context.Context, season int, stage string) ([]DisciplineRow, error) {
	rows, err := s.Standings(ctx, season, stage)
	if err != nil {
		return nil, err
	}
	return BuildDiscipline(rows), nil
}

// Attacks returns the n highest-scoring teams of a period.
func (s *Service) Attacks(ctx context.Context, season int, stage string, n int) ([]StandingsRow, error) {
	rows, err := s.Standings(ctx, season, stage)
	if err != nil {
		return nil, err
	}
	return BestAttacks(rows, n), nil
}

// AdviseMatchup compares two teams over a period. A team missing from that
// period's standings yields a *NotFoundError.
func (s *Service) AdviseMatchup(ctx context.Context, teamA, teamB, season int, stage string) (Matchup, error) {
	rows, err := s.Standings(ctx, season, stage)
	if err != nil {
		return Matchup{}, err
	}
	m, err := CompareTeams(rows, teamA, teamB)
	if err != nil {
		return Matchup{}, err
	}
	m.Season = season
	m.Stage = stage
	return m, nil
}

// TeamSummaries returns the per-team overview of a period.
func (s *Service) TeamSummaries(ctx context.Context, season int, stage string) ([]TeamSummary, error) {
	teams, err := s.store.ListTeams(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	fixtures, err := s.fixtures(ctx, season, stage)
	if err != nil {
		return nil, err
	}
	stats, err := s.playerStats(ctx, season, stage, nil)
	if err != nil {
		return nil, err
	}
	return BuildTeamSummaries(teams, fixtures, stats), nil
}

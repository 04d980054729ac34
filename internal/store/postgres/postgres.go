// Package postgres implements league.ReadWriter on a pgx pool. Reads go
// through the statements prepared in internal/db; a reseed truncates the
// tables and bulk-loads the new snapshot with COPY inside one transaction.
package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/albapepper/auf-analytics/internal/db"
	"github.com/albapepper/auf-analytics/internal/league"
)

// Store is the Postgres-backed league store.
type Store struct {
	pool *db.Pool
}

// New wraps an open pool.
func New(pool *db.Pool) *Store {
	return &Store{pool: pool}
}

// Ping runs the pool health check.
func (s *Store) Ping(ctx context.Context) error {
	return s.pool.HealthCheck(ctx)
}

// Close closes the pool.
func (s *Store) Close() error {
	s.pool.Close()
	return nil
}

// ListTeams returns every team ordered by name.
func (s *Store) ListTeams(ctx context.Context) ([]league.Team, error) {
	rows, err := s.pool.Query(ctx, db.StmtListTeams)
	if err != nil {
		return nil, fmt.Errorf("query teams: %w", err)
	}
	defer rows.Close()

	teams := make([]league.Team, 0)
	for rows.Next() {
		var t league.Team
		if err := rows.Scan(&t.ID, &t.Name, &t.ShortName, &t.LogoKey, &t.City, &t.Stadium); err != nil {
			return nil, fmt.Errorf("scan team: %w", err)
		}
		teams = append(teams, t)
	}
	return teams, rows.Err()
}

// ListSeasons returns the distinct seasons, newest first.
func (s *Store) ListSeasons(ctx context.Context) ([]int, error) {
	rows, err := s.pool.Query(ctx, db.StmtListSeasons)
	if err != nil {
		return nil, fmt.Errorf("query seasons: %w", err)
	}
	seasons, err := pgx.CollectRows(rows, pgx.RowTo[int])
	if err != nil {
		return nil, fmt.Errorf("collect seasons: %w", err)
	}
	return seasons, nil
}

// ListFixtures returns a period's fixtures in chronological order.
func (s *Store) ListFixtures(ctx context.Context, season int, stage string) ([]league.Fixture, error) {
	rows, err := s.pool.Query(ctx, db.StmtListFixtures, season, stage)
	if err != nil {
		return nil, fmt.Errorf("query fixtures: %w", err)
	}
	defer rows.Close()

	fixtures := make([]league.Fixture, 0)
	for rows.Next() {
		var f league.Fixture
		if err := rows.Scan(
			&f.ID, &f.Season, &f.Stage, &f.Round, &f.Date, &f.Time,
			&f.HomeTeamID, &f.AwayTeamID,
			&f.HomeGoals, &f.AwayGoals, &f.Attendance, &f.Venue, &f.Referee,
			&f.HomeYellow, &f.HomeRed, &f.AwayYellow, &f.AwayRed,
		); err != nil {
			return nil, fmt.Errorf("scan fixture: %w", err)
		}
		fixtures = append(fixtures, f)
	}
	return fixtures, rows.Err()
}

// ListPlayerStats returns a period's stat lines, optionally for one team.
func (s *Store) ListPlayerStats(ctx context.Context, season int, stage string, teamID *int) ([]league.PlayerStat, error) {
	rows, err := s.pool.Query(ctx, db.StmtListPlayerStats, season, stage, teamID)
	if err != nil {
		return nil, fmt.Errorf("query player stats: %w", err)
	}
	defer rows.Close()

	stats := make([]league.PlayerStat, 0)
	for rows.Next() {
		var p league.PlayerStat
		if err := rows.Scan(
			&p.PlayerID, &p.Player, &p.TeamID, &p.Season, &p.Stage, &p.Position,
			&p.Minutes, &p.Goals, &p.Assists, &p.Shots, &p.ShotsOnTarget,
			&p.Yellow, &p.Red, &p.XG, &p.XA,
		); err != nil {
			return nil, fmt.Errorf("scan player stat: %w", err)
		}
		stats = append(stats, p)
	}
	return stats, rows.Err()
}

// ListMatchEvents returns a fixture's timeline.
func (s *Store) ListMatchEvents(ctx context.Context, matchID int) ([]league.MatchEvent, error) {
	rows, err := s.pool.Query(ctx, db.StmtListMatchEvents, matchID)
	if err != nil {
		return nil, fmt.Errorf("query match events: %w", err)
	}
	defer rows.Close()

	events := make([]league.MatchEvent, 0)
	for rows.Next() {
		var e league.MatchEvent
		if err := rows.Scan(&e.MatchID, &e.Minute, &e.TeamID, &e.PlayerID, &e.Player, &e.Type, &e.Detail); err != nil {
			return nil, fmt.Errorf("scan match event: %w", err)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// ReplaceDataset swaps the whole snapshot. Readers see either the old or the
// new dataset, never a mix.
func (s *Store) ReplaceDataset(ctx context.Context, ds league.Dataset) error {
	if err := ds.Validate(); err != nil {
		return err
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, "TRUNCATE match_events, player_stats, matches, teams"); err != nil {
		return fmt.Errorf("truncate: %w", err)
	}

	teamRows := make([][]any, len(ds.Teams))
	for i, t := range ds.Teams {
		teamRows[i] = []any{t.ID, t.Name, t.ShortName, t.LogoKey, t.City, t.Stadium}
	}
	if _, err := tx.CopyFrom(ctx, pgx.Identifier{"teams"},
		[]string{"id", "name", "short_name", "logo_key", "city", "stadium"},
		pgx.CopyFromRows(teamRows)); err != nil {
		return fmt.Errorf("copy teams: %w", err)
	}

	if _, err := tx.CopyFrom(ctx, pgx.Identifier{"matches"},
		[]string{"id", "season", "stage", "round", "match_date", "kickoff", "home_team_id", "away_team_id",
			"home_goals", "away_goals", "attendance", "venue", "referee",
			"home_yellow", "home_red", "away_yellow", "away_red"},
		pgx.CopyFromSlice(len(ds.Fixtures), func(i int) ([]any, error) {
			f := ds.Fixtures[i]
			return []any{f.ID, f.Season, f.Stage, f.Round, f.Date, f.Time, f.HomeTeamID, f.AwayTeamID,
				f.HomeGoals, f.AwayGoals, f.Attendance, f.Venue, f.Referee,
				f.HomeYellow, f.HomeRed, f.AwayYellow, f.AwayRed}, nil
		})); err != nil {
		return fmt.Errorf("copy matches: %w", err)
	}

	if _, err := tx.CopyFrom(ctx, pgx.Identifier{"player_stats"},
		[]string{"player_id", "player", "team_id", "season", "stage", "position",
			"minutes", "goals", "assists", "shots", "shots_on_target", "yellow", "red", "xg", "xa"},
		pgx.CopyFromSlice(len(ds.PlayerStats), func(i int) ([]any, error) {
			p := ds.PlayerStats[i]
			return []any{p.PlayerID, p.Player, p.TeamID, p.Season, p.Stage, p.Position,
				p.Minutes, p.Goals, p.Assists, p.Shots, p.ShotsOnTarget, p.Yellow, p.Red, p.XG, p.XA}, nil
		})); err != nil {
		return fmt.Errorf("copy player stats: %w", err)
	}

	if _, err := tx.CopyFrom(ctx, pgx.Identifier{"match_events"},
		[]string{"seq", "match_id", "minute", "team_id", "player_id", "player", "type", "detail"},
		pgx.CopyFromSlice(len(ds.Events), func(i int) ([]any, error) {
			e := ds.Events[i]
			return []any{i + 1, e.MatchID, e.Minute, e.TeamID, e.PlayerID, e.Player, e.Type, e.Detail}, nil
		})); err != nil {
		return fmt.Errorf("copy match events: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

var _ league.ReadWriter = (*Store)(nil)

// Package sqlite implements league.ReadWriter on an embedded SQLite file
// using the pure-Go modernc driver. It is the default store: a fresh
// checkout runs without any external database.
package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/albapepper/auf-analytics/internal/league"
)

//go:embed schema.sql
var schema string

// Store provides database access.
type Store struct {
	db *sql.DB
}

// Open opens (and creates, if needed) the database at path. ":memory:" gives
// a private in-memory database.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// SQLite only supports one writer at a time, and an in-memory database
	// lives exactly as long as its single connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if _, err := db.Exec("PRAGMA foreign_keys = ON; PRAGMA journal_mode = WAL; PRAGMA busy_timeout = 5000;"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting pragmas: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Ping checks the database answers.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// ListTeams returns every team ordered by name.
func (s *Store) ListTeams(ctx context.Context) ([]league.Team, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, short_name, logo_key, city, stadium FROM teams ORDER BY name, id
	`)
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
	rows, err := s.db.QueryContext(ctx, "SELECT DISTINCT season FROM matches ORDER BY season DESC")
	if err != nil {
		return nil, fmt.Errorf("query seasons: %w", err)
	}
	defer rows.Close()

	seasons := make([]int, 0)
	for rows.Next() {
		var y int
		if err := rows.Scan(&y); err != nil {
			return nil, fmt.Errorf("scan season: %w", err)
		}
		seasons = append(seasons, y)
	}
	return seasons, rows.Err()
}

// ListFixtures returns a period's fixtures in chronological order.
func (s *Store) ListFixtures(ctx context.Context, season int, stage string) ([]league.Fixture, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, season, stage, round, match_date, kickoff, home_team_id, away_team_id,
			home_goals, away_goals, attendance, venue, referee,
			home_yellow, home_red, away_yellow, away_red
		FROM matches
		WHERE season = ? AND stage = ?
		ORDER BY match_date, kickoff, id
	`, season, stage)
	if err != nil {
		return nil, fmt.Errorf("query fixtures: %w", err)
	}
	defer rows.Close()

	fixtures := make([]league.Fixture, 0)
	for rows.Next() {
		var f league.Fixture
		var hg, ag, att sql.NullInt64
		if err := rows.Scan(
			&f.ID, &f.Season, &f.Stage, &f.Round, &f.Date, &f.Time,
			&f.HomeTeamID, &f.AwayTeamID,
			&hg, &ag, &att, &f.Venue, &f.Referee,
			&f.HomeYellow, &f.HomeRed, &f.AwayYellow, &f.AwayRed,
		); err != nil {
			return nil, fmt.Errorf("scan fixture: %w", err)
		}
		f.HomeGoals = nullInt(hg)
		f.AwayGoals = nullInt(ag)
		f.Attendance = nullInt(att)
		fixtures = append(fixtures, f)
	}
	return fixtures, rows.Err()
}

// ListPlayerStats returns a period's stat lines, optionally for one team.
func (s *Store) ListPlayerStats(ctx context.Context, season int, stage string, teamID *int) ([]league.PlayerStat, error) {
	var team sql.NullInt64
	if teamID != nil {
		team = sql.NullInt64{Int64: int64(*teamID), Valid: true}
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT player_id, player, team_id, season, stage, position,
			minutes, goals, assists, shots, shots_on_target, yellow, red, xg, xa
		FROM player_stats
		WHERE season = ? AND stage = ? AND (? IS NULL OR team_id = ?)
		ORDER BY player_id, team_id
	`, season, stage, team, team)
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
	rows, err := s.db.QueryContext(ctx, `
		SELECT match_id, minute, team_id, player_id, player, type, detail
		FROM match_events
		WHERE match_id = ?
		ORDER BY minute, seq
	`, matchID)
	if err != nil {
		return nil, fmt.Errorf("query match events: %w", err)
	}
	defer rows.Close()

	events := make([]league.MatchEvent, 0)
	for rows.Next() {
		var e league.MatchEvent
		var player sql.NullInt64
		if err := rows.Scan(&e.MatchID, &e.Minute, &e.TeamID, &player, &e.Player, &e.Type, &e.Detail); err != nil {
			return nil, fmt.Errorf("scan match event: %w", err)
		}
		e.PlayerID = nullInt(player)
		events = append(events, e)
	}
	return events, rows.Err()
}

// ReplaceDataset swaps the whole snapshot inside one transaction.
func (s *Store) ReplaceDataset(ctx context.Context, ds league.Dataset) error {
	if err := ds.Validate(); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"match_events", "player_stats", "matches", "teams"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	teamStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO teams (id, name, short_name, logo_key, city, stadium) VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("prepare teams: %w", err)
	}
	defer teamStmt.Close()
	for _, t := range ds.Teams {
		if _, err := teamStmt.ExecContext(ctx, t.ID, t.Name, t.ShortName, t.LogoKey, t.City, t.Stadium); err != nil {
			return fmt.Errorf("insert team %d: %w", t.ID, err)
		}
	}

	matchStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO matches (id, season, stage, round, match_date, kickoff, home_team_id, away_team_id,
			home_goals, away_goals, attendance, venue, referee,
			home_yellow, home_red, away_yellow, away_red)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("prepare matches: %w", err)
	}
	defer matchStmt.Close()
	for _, f := range ds.Fixtures {
		if _, err := matchStmt.ExecContext(ctx,
			f.ID, f.Season, f.Stage, f.Round, f.Date, f.Time, f.HomeTeamID, f.AwayTeamID,
			intOrNull(f.HomeGoals), intOrNull(f.AwayGoals), intOrNull(f.Attendance), f.Venue, f.Referee,
			f.HomeYellow, f.HomeRed, f.AwayYellow, f.AwayRed,
		); err != nil {
			return fmt.Errorf("insert fixture %d: %w", f.ID, err)
		}
	}

	statStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO player_stats (player_id, player, team_id, season, stage, position,
			minutes, goals, assists, shots, shots_on_target, yellow, red, xg, xa)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("prepare player stats: %w", err)
	}
	defer statStmt.Close()
	for _, p := range ds.PlayerStats {
		if _, err := statStmt.ExecContext(ctx,
			p.PlayerID, p.Player, p.TeamID, p.Season, p.Stage, p.Position,
			p.Minutes, p.Goals, p.Assists, p.Shots, p.ShotsOnTarget, p.Yellow, p.Red, p.XG, p.XA,
		); err != nil {
			return fmt.Errorf("insert player stat %d: %w", p.PlayerID, err)
		}
	}

	eventStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO match_events (seq, match_id, minute, team_id, player_id, player, type, detail)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("prepare match events: %w", err)
	}
	defer eventStmt.Close()
	for i, e := range ds.Events {
		if _, err := eventStmt.ExecContext(ctx,
			i+1, e.MatchID, e.Minute, e.TeamID, intOrNull(e.PlayerID), e.Player, e.Type, e.Detail,
		); err != nil {
			return fmt.Errorf("insert event %d of match %d: %w", i+1, e.MatchID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func nullInt(n sql.NullInt64) *int {
	if !n.Valid {
		return nil
	}
	v := int(n.Int64)
	return &v
}

func intOrNull(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}

var _ league.ReadWriter = (*Store)(nil)

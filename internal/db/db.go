// Package db provides a pgxpool-based connection pool with prepared statement
// registration and health checking.
package db

import (
	"context"
	_ "embed"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/albapepper/auf-analytics/internal/config"
)

// Prepared statement names shared with the Postgres store.
const (
	StmtHealthCheck     = "health_check"
	StmtListTeams       = "list_teams"
	StmtListSeasons     = "list_seasons"
	StmtListFixtures    = "list_fixtures"
	StmtListPlayerStats = "list_player_stats"
	StmtListMatchEvents = "list_match_events"
)

//go:embed schema.sql
var schema string

// Pool wraps pgxpool.Pool with application-specific helpers.
type Pool struct {
	*pgxpool.Pool
}

// New creates and validates a new connection pool.
func New(ctx context.Context, cfg *config.Config) (*Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database URL: %w", err)
	}

	poolCfg.MinConns = int32(cfg.DBPoolMinConns)
	poolCfg.MaxConns = int32(cfg.DBPoolMaxConns)
	poolCfg.MaxConnLifetime = cfg.DBPoolMaxLife
	poolCfg.MaxConnIdleTime = 5 * time.Minute

	// Tables must exist before statements can be prepared against them.
	if err := migrate(ctx, poolCfg.ConnConfig); err != nil {
		return nil, err
	}

	// Register prepared statements on every new connection.
	poolCfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		return registerPreparedStatements(ctx, conn)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	// Verify connectivity
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &Pool{Pool: pool}, nil
}

// migrate applies the idempotent schema over a dedicated connection.
func migrate(ctx context.Context, connCfg *pgx.ConnConfig) error {
	conn, err := pgx.ConnectConfig(ctx, connCfg)
	if err != nil {
		return fmt.Errorf("connect for migration: %w", err)
	}
	defer conn.Close(ctx)

	if _, err := conn.Exec(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

// HealthCheck runs a trivial query to verify the database is reachable.
func (p *Pool) HealthCheck(ctx context.Context) error {
	var n int
	return p.QueryRow(ctx, StmtHealthCheck).Scan(&n)
}

// registerPreparedStatements registers the read statements the API uses on
// every request. Writes happen only on reseed and go through COPY.
func registerPreparedStatements(ctx context.Context, conn *pgx.Conn) error {
	stmts := map[string]string{
		StmtHealthCheck: "SELECT 1",

		StmtListTeams: `SELECT id, name, short_name, logo_key, city, stadium
			FROM teams ORDER BY name, id`,

		StmtListSeasons: "SELECT DISTINCT season FROM matches ORDER BY season DESC",

		StmtListFixtures: `SELECT id, season, stage, round, match_date, kickoff, home_team_id, away_team_id,
				home_goals, away_goals, attendance, venue, referee,
				home_yellow, home_red, away_yellow, away_red
			FROM matches
			WHERE season = $1 AND stage = $2
			ORDER BY match_date, kickoff, id`,

		StmtListPlayerStats: `SELECT player_id, player, team_id, season, stage, position,
				minutes, goals, assists, shots, shots_on_target, yellow, red, xg, xa
			FROM player_stats
			WHERE season = $1 AND stage = $2 AND ($3::int IS NULL OR team_id = $3)
			ORDER BY player_id, team_id`,

		StmtListMatchEvents: `SELECT match_id, minute, team_id, player_id, player, type, detail
			FROM match_events
			WHERE match_id = $1
			ORDER BY minute, seq`,
	}

	for name, sql := range stmts {
		if _, err := conn.Prepare(ctx, name, sql); err != nil {
			return fmt.Errorf("prepare %q: %w", name, err)
		}
	}
	return nil
}

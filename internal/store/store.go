// Package store opens the configured league.ReadWriter implementation.
package store

import (
	"context"
	"fmt"

	"github.com/albapepper/auf-analytics/internal/config"
	"github.com/albapepper/auf-analytics/internal/db"
	"github.com/albapepper/auf-analytics/internal/league"
	"github.com/albapepper/auf-analytics/internal/store/postgres"
	"github.com/albapepper/auf-analytics/internal/store/sqlite"
)

// Open connects to the store selected by cfg.StoreDriver. The schema is
// created when missing.
func Open(ctx context.Context, cfg *config.Config) (league.ReadWriter, error) {
	switch cfg.StoreDriver {
	case config.DriverPostgres:
		pool, err := db.New(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		return postgres.New(pool), nil
	case config.DriverSQLite:
		s, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite %s: %w", cfg.SQLitePath, err)
		}
		return s, nil
	}
	return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}

// IsEmpty reports whether the store holds no teams yet.
func IsEmpty(ctx context.Context, s league.Store) (bool, error) {
	teams, err := s.ListTeams(ctx)
	if err != nil {
		return false, fmt.Errorf("list teams: %w", err)
	}
	return len(teams) == 0, nil
}

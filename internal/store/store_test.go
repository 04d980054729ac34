package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albapepper/auf-analytics/internal/config"
	"github.com/albapepper/auf-analytics/internal/league"
	lt "github.com/albapepper/auf-analytics/internal/league/leaguetest"
)

func TestOpen_SQLite(t *testing.T) {
	cfg := &config.Config{StoreDriver: config.DriverSQLite, SQLitePath: filepath.Join(t.TempDir(), "auf.db")}
	ctx := context.Background()

	s, err := Open(ctx, cfg)
	require.NoError(t, err)
	defer s.Close()
	require.NoError(t, s.Ping(ctx))

	empty, err := IsEmpty(ctx, s)
	require.NoError(t, err)
	assert.True(t, empty)

	require.NoError(t, s.ReplaceDataset(ctx, league.Dataset{Teams: lt.Teams()}))
	empty, err = IsEmpty(ctx, s)
	require.NoError(t, err)
	assert.False(t, empty)
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), &config.Config{StoreDriver: "mysql"})
	assert.Error(t, err)
}

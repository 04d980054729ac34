package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albapepper/auf-analytics/internal/league"
	lt "github.com/albapepper/auf-analytics/internal/league/leaguetest"
)

func openMemory(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	require.NoError(t, err, "open in-memory database")
	t.Cleanup(func() { s.Close() })
	return s
}

func dataset() league.Dataset {
	played := lt.Played(2, "2024-02-01", 1, 2, 2, 1)
	played.Attendance = league.IntPtr(12000)
	played.Time = "19:00"
	played.HomeYellow = 3

	later := lt.Played(3, "2024-02-08", 3, 4, 0, 0)
	clausura := lt.Scheduled(4, "2024-08-01", 2, 1)
	clausura.Stage = league.StageClausura
	old := lt.Played(5, "2023-03-01", 1, 3, 1, 0)
	old.Season = 2023

	ana := lt.Stat(10, "Ana", 1, 2)
	ana.XG = 1.25
	return league.Dataset{
		Teams: lt.Teams(),
		Fixtures: []league.Fixture{
			later,
			lt.Scheduled(1, "2024-02-15", 1, 3),
			played,
			clausura,
			old,
		},
		PlayerStats: []league.PlayerStat{ana, lt.Stat(11, "Bruno", 2, 1)},
		Events: []league.MatchEvent{
			lt.Goal(2, 55, 1, 10, "Ana"),
			{MatchID: 2, Minute: 30, TeamID: 2, Type: league.EventYellow, Detail: "bench"},
			lt.Goal(2, 55, 2, 11, "Bruno"),
			lt.Goal(2, 80, 1, 10, "Ana"),
		},
	}
}

func TestStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := openMemory(t)
	require.NoError(t, s.ReplaceDataset(ctx, dataset()))
	require.NoError(t, s.Ping(ctx))

	teams, err := s.ListTeams(ctx)
	require.NoError(t, err)
	assert.Len(t, teams, 4)
	assert.Equal(t, "Defensor Sporting", teams[0].Name, "ordered by name")

	fixtures, err := s.ListFixtures(ctx, 2024, league.StageApertura)
	require.NoError(t, err)
	require.Len(t, fixtures, 3)
	assert.Equal(t, []int{2, 3, 1}, []int{fixtures[0].ID, fixtures[1].ID, fixtures[2].ID}, "ordered by date")

	got := fixtures[0]
	require.NotNil(t, got.HomeGoals)
	assert.Equal(t, 2, *got.HomeGoals)
	assert.Equal(t, 1, *got.AwayGoals)
	require.NotNil(t, got.Attendance)
	assert.Equal(t, 12000, *got.Attendance)
	assert.Equal(t, "19:00", got.Time)
	assert.Equal(t, 3, got.HomeYellow)

	pending := fixtures[2]
	assert.False(t, pending.Played())
	assert.Nil(t, pending.Attendance)

	seasons, err := s.ListSeasons(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{2024, 2023}, seasons)
}

func TestStore_PlayerStatsFilter(t *testing.T) {
	ctx := context.Background()
	s := openMemory(t)
	require.NoError(t, s.ReplaceDataset(ctx, dataset()))

	all, err := s.ListPlayerStats(ctx, 2024, league.StageApertura, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Equal(t, 1.25, all[0].XG)

	team := 2
	one, err := s.ListPlayerStats(ctx, 2024, league.StageApertura, &team)
	require.NoError(t, err)
	require.Len(t, one, 1)
	assert.Equal(t, "Bruno", one[0].Player)
}

func TestStore_MatchEvents(t *testing.T) {
	ctx := context.Background()
	s := openMemory(t)
	require.NoError(t, s.ReplaceDataset(ctx, dataset()))

	events, err := s.ListMatchEvents(ctx, 2)
	require.NoError(t, err)
	require.Len(t, events, 4)

	assert.Equal(t, league.EventYellow, events[0].Type)
	assert.Nil(t, events[0].PlayerID)
	assert.Equal(t, "bench", events[0].Detail)
	assert.Equal(t, "Ana", events[1].Player, "same minute keeps write order")
	assert.Equal(t, "Bruno", events[2].Player)
	require.NotNil(t, events[3].PlayerID)
	assert.Equal(t, 10, *events[3].PlayerID)

	none, err := s.ListMatchEvents(ctx, 404)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestStore_RejectsUnknownEvent(t *testing.T) {
	ctx := context.Background()
	s := openMemory(t)

	ds := dataset()
	ds.Events = append(ds.Events, league.MatchEvent{MatchID: 2, Minute: 10, TeamID: 1, Type: "corner"})
	assert.ErrorIs(t, s.ReplaceDataset(ctx, ds), league.ErrUnknownEvent)
}

func TestStore_UnknownPeriodIsEmpty(t *testing.T) {
	ctx := context.Background()
	s := openMemory(t)
	require.NoError(t, s.ReplaceDataset(ctx, dataset()))

	fixtures, err := s.ListFixtures(ctx, 1990, "liguilla")
	require.NoError(t, err)
	assert.NotNil(t, fixtures)
	assert.Empty(t, fixtures)

	stats, err := s.ListPlayerStats(ctx, 1990, "liguilla", nil)
	require.NoError(t, err)
	assert.Empty(t, stats)
}

func TestStore_ReplaceDiscardsPrevious(t *testing.T) {
	ctx := context.Background()
	s := openMemory(t)
	require.NoError(t, s.ReplaceDataset(ctx, dataset()))

	smaller := league.Dataset{
		Teams:    lt.Teams()[:2],
		Fixtures: []league.Fixture{lt.Played(9, "2024-03-01", 2, 1, 0, 0)},
	}
	require.NoError(t, s.ReplaceDataset(ctx, smaller))

	fixtures, err := s.ListFixtures(ctx, 2024, league.StageApertura)
	require.NoError(t, err)
	require.Len(t, fixtures, 1)
	assert.Equal(t, 9, fixtures[0].ID)

	stats, err := s.ListPlayerStats(ctx, 2024, league.StageApertura, nil)
	require.NoError(t, err)
	assert.Empty(t, stats)

	events, err := s.ListMatchEvents(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestStore_RejectsInvalidFixture(t *testing.T) {
	ctx := context.Background()
	s := openMemory(t)
	require.NoError(t, s.ReplaceDataset(ctx, dataset()))

	bad := league.Dataset{
		Teams:    lt.Teams(),
		Fixtures: []league.Fixture{lt.Played(1, "2024-02-01", 1, 1, 0, 0)},
	}
	err := s.ReplaceDataset(ctx, bad)
	assert.ErrorIs(t, err, league.ErrSameTeam)

	fixtures, err := s.ListFixtures(ctx, 2024, league.StageApertura)
	require.NoError(t, err)
	assert.Len(t, fixtures, 3, "failed reseed keeps the old snapshot")
}

func TestStore_FileDatabasePersists(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "auf.db")

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.ReplaceDataset(ctx, dataset()))
	require.NoError(t, s.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	teams, err := reopened.ListTeams(ctx)
	require.NoError(t, err)
	assert.Len(t, teams, 4)
}

package analytics

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albapepper/auf-analytics/internal/league"
	lt "github.com/albapepper/auf-analytics/internal/league/leaguetest"
)

func seasonDataset() league.Dataset {
	fixtures := twoRounds()
	clausura := lt.Played(10, "2024-08-01", 2, 1, 4, 0)
	clausura.Stage = league.StageClausura
	fixtures = append(fixtures, clausura)

	intermedio := lt.Played(20, "2024-06-01", 3, 1, 5, 0)
	intermedio.Stage = league.StageIntermedio
	fixtures = append(fixtures, intermedio)

	stats := []league.PlayerStat{
		lt.Stat(10, "Ana", 1, 3),
		lt.Stat(11, "Bruno", 2, 2),
	}
	late := lt.Stat(11, "Bruno", 2, 4)
	late.Stage = league.StageClausura
	stats = append(stats, late)

	return league.Dataset{Teams: lt.Teams(), Fixtures: fixtures, PlayerStats: stats}
}

func TestService_AnualCombinesApertura(t *testing.T) {
	svc := NewService(lt.NewMemory(seasonDataset()))
	ctx := context.Background()

	apertura, err := svc.Standings(ctx, 2024, league.StageApertura)
	require.NoError(t, err)
	assert.Equal(t, "Nacional", apertura[0].Team)

	anual, err := svc.Standings(ctx, 2024, league.StageAnual)
	require.NoError(t, err)
	pen, ok := FindRow(anual, 2)
	require.True(t, ok)
	assert.Equal(t, 6, pen.Points, "apertura 3 + clausura 3")
	assert.Equal(t, 3, pen.Played)
	nac, _ := FindRow(anual, 1)
	assert.Equal(t, 6, nac.Points, "intermedio is not part of the annual table")

	scorers, err := svc.Scorers(ctx, 2024, league.StageAnual, 5)
	require.NoError(t, err)
	require.Len(t, scorers, 2)
	assert.Equal(t, "Bruno", scorers[0].Player)
	assert.Equal(t, 6, scorers[0].Goals)
}

func TestService_UnknownPeriodIsEmpty(t *testing.T) {
	svc := NewService(lt.NewMemory(seasonDataset()))
	ctx := context.Background()

	rows, err := svc.Standings(ctx, 1999, league.StageApertura)
	require.NoError(t, err)
	assert.Empty(t, rows)

	in, err := svc.Insights(ctx, 2024, "playoffs")
	require.NoError(t, err)
	assert.Empty(t, in.Points)

	_, err = svc.AdviseMatchup(ctx, 1, 2, 1999, league.StageApertura)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_AdviseMatchup(t *testing.T) {
	svc := NewService(lt.NewMemory(seasonDataset()))

	m, err := svc.AdviseMatchup(context.Background(), 1, 2, 2024, league.StageApertura)
	require.NoError(t, err)
	assert.Equal(t, 2024, m.Season)
	assert.Equal(t, league.StageApertura, m.Stage)
	assert.Equal(t, "Nacional", m.TeamA.Team)
}

func TestService_PlayersFilterByTeam(t *testing.T) {
	svc := NewService(lt.NewMemory(seasonDataset()))
	team := 2

	lines, err := svc.Players(context.Background(), 2024, league.StageAnual, &team)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 6, lines[0].Goals)
}

func TestService_StoreErrorPropagates(t *testing.T) {
	mem := lt.NewMemory(seasonDataset())
	mem.Err = errors.New("connection refused")
	svc := NewService(mem)

	_, err := svc.Standings(context.Background(), 2024, league.StageApertura)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
	assert.NotErrorIs(t, err, ErrNotFound)
}

package analytics

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albapepper/auf-analytics/internal/league"
	lt "github.com/albapepper/auf-analytics/internal/league/leaguetest"
)

func TestBuildInsights_Series(t *testing.T) {
	rows := BuildStandings(twoRounds(), league.TeamIndex(lt.Teams()))
	in := BuildInsights(rows)

	require.Len(t, in.Points, 4)
	assert.Equal(t, "Nacional", in.Points[0].Team)
	assert.Equal(t, 6, in.Points[0].Value)
	assert.Equal(t, "Defensor Sporting", in.Points[2].Team)
	assert.Equal(t, "Liverpool", in.Points[3].Team)

	require.Len(t, in.GoalsFor, 4)
	assert.Equal(t, "Nacional", in.GoalsFor[0].Team, "3 goals each, name decides")
	assert.Equal(t, "Peñarol", in.GoalsFor[1].Team)
	assert.Equal(t, 2, in.GoalsFor[2].Value)

	assert.Len(t, in.Cards, 4)
	assert.NotNil(t, in.Attendance)
	assert.Empty(t, in.Attendance, "no attendance recorded")
}

func TestBuildInsights_CardsKeepColours(t *testing.T) {
	rows := []StandingsRow{
		{TeamID: 1, Team: "A", Yellow: 5, Red: 0},
		{TeamID: 2, Team: "B", Yellow: 3, Red: 3},
		{TeamID: 3, Team: "C", Yellow: 1, Red: 0},
	}
	in := BuildInsights(rows)
	require.Len(t, in.Cards, 3)
	assert.Equal(t, CardsEntry{TeamID: 2, Team: "B", Yellow: 3, Red: 3}, in.Cards[0])
	assert.Equal(t, 5, in.Cards[1].Total())
}

func TestBuildInsights_Cap(t *testing.T) {
	var rows []StandingsRow
	for i := 0; i < 12; i++ {
		att := float64(1000 * i)
		rows = append(rows, StandingsRow{TeamID: i + 1, Team: fmt.Sprintf("Club %02d", i), Points: i, AvgAttendance: &att})
	}
	in := BuildInsights(rows)
	assert.Len(t, in.Points, InsightSeriesCap)
	assert.Len(t, in.GoalsFor, InsightSeriesCap)
	assert.Len(t, in.Cards, InsightSeriesCap)
	assert.Len(t, in.Attendance, InsightSeriesCap)
	assert.Equal(t, 11, in.Points[0].Value)
	assert.Equal(t, 11000.0, in.Attendance[0].Value)
}

func TestBuildInsights_Empty(t *testing.T) {
	in := BuildInsights(nil)
	assert.NotNil(t, in.Points)
	assert.NotNil(t, in.GoalsFor)
	assert.NotNil(t, in.Cards)
	assert.NotNil(t, in.Attendance)
	assert.Empty(t, in.Points)
}

func TestBuildDiscipline(t *testing.T) {
	rows := []StandingsRow{
		{TeamID: 1, Team: "A", Played: 2, Yellow: 4, Red: 0},
		{TeamID: 2, Team: "B", Played: 2, Yellow: 3, Red: 1},
		{TeamID: 3, Team: "C", Played: 0},
	}
	got := BuildDiscipline(rows)
	require.Len(t, got, 3)
	assert.Equal(t, "B", got[0].Team, "reds break total ties")
	assert.Equal(t, 2.0, got[0].CardsPerMatch)
	assert.Equal(t, "A", got[1].Team)
	assert.Zero(t, got[2].CardsPerMatch)
}

func TestBestAttacks(t *testing.T) {
	rows := BuildStandings(twoRounds(), league.TeamIndex(lt.Teams()))
	got := BestAttacks(rows, 2)
	require.Len(t, got, 2)
	assert.Equal(t, "Nacional", got[0].Team)
	assert.Equal(t, "Peñarol", got[1].Team)
	assert.Equal(t, 1, rows[0].Position, "input order untouched")
}

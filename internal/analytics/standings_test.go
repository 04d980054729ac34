package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albapepper/auf-analytics/internal/league"
	lt "github.com/albapepper/auf-analytics/internal/league/leaguetest"
)

func twoRounds() []league.Fixture {
	return []league.Fixture{
		// Round 1: NAC 2-0 PEN, LIV 1-1 DEF
		lt.Played(1, "2024-02-01", 1, 2, 2, 0),
		lt.Played(2, "2024-02-01", 3, 4, 1, 1),
		// Round 2: PEN 3-1 LIV, DEF 0-1 NAC
		lt.Played(3, "2024-02-08", 2, 3, 3, 1),
		lt.Played(4, "2024-02-08", 4, 1, 0, 1),
		// Round 3 not played yet
		lt.Scheduled(5, "2024-02-15", 1, 3),
	}
}

func TestBuildStandings_TwoRounds(t *testing.T) {
	rows := BuildStandings(twoRounds(), league.TeamIndex(lt.Teams()))
	require.Len(t, rows, 4)

	// NAC: W W  GF3 GA0 Pts6
	// PEN: W L  GF3 GA3 Pts3
	// DEF: D L  GF1 GA2 Pts1
	// LIV: D L  GF2 GA4 Pts1
	names := []string{rows[0].Team, rows[1].Team, rows[2].Team, rows[3].Team}
	assert.Equal(t, []string{"Nacional", "Peñarol", "Defensor Sporting", "Liverpool"}, names)

	top := rows[0]
	assert.Equal(t, 1, top.Position)
	assert.Equal(t, 2, top.Played)
	assert.Equal(t, 2, top.Won)
	assert.Equal(t, 6, top.Points)
	assert.Equal(t, 3, top.GoalDifference)
	assert.Equal(t, 3.0, top.PointsPerMatch)
	require.NotNil(t, top.Last5)
	assert.Equal(t, "WW---", *top.Last5)

	pen := rows[1]
	require.NotNil(t, pen.Last5)
	assert.Equal(t, "WL---", *pen.Last5, "newest result comes first")
	assert.Equal(t, 1.5, pen.PointsPerMatch)

	for i, r := range rows {
		assert.Equal(t, i+1, r.Position)
		assert.Equal(t, r.GoalsFor-r.GoalsAgainst, r.GoalDifference)
		assert.Equal(t, r.Won+r.Drawn+r.Lost, r.Played)
	}
}

func TestBuildStandings_PointsConservation(t *testing.T) {
	fixtures := twoRounds()
	rows := BuildStandings(fixtures, league.TeamIndex(lt.Teams()))

	decisive, draws := 0, 0
	for _, f := range fixtures {
		if !f.Played() {
			continue
		}
		if *f.HomeGoals == *f.AwayGoals {
			draws++
		} else {
			decisive++
		}
	}

	total := 0
	for _, r := range rows {
		total += r.Points
	}
	assert.Equal(t, 3*decisive+2*draws, total)
}

func TestBuildStandings_NoPlayedFixtures(t *testing.T) {
	fixtures := []league.Fixture{
		lt.Scheduled(1, "2024-02-01", 2, 1),
	}
	rows := BuildStandings(fixtures, league.TeamIndex(lt.Teams()))
	require.Len(t, rows, 2)

	assert.Equal(t, "Nacional", rows[0].Team, "ties fall back to name order")
	assert.Equal(t, "Peñarol", rows[1].Team)
	for _, r := range rows {
		assert.Zero(t, r.Played)
		assert.Zero(t, r.Points)
		assert.Zero(t, r.PointsPerMatch)
		assert.Nil(t, r.Last5)
		assert.Nil(t, r.AvgAttendance)
	}
}

func TestBuildStandings_EmptyPeriod(t *testing.T) {
	rows := BuildStandings(nil, league.TeamIndex(lt.Teams()))
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestBuildStandings_FormKeepsLatestFive(t *testing.T) {
	var fixtures []league.Fixture
	dates := []string{"2024-02-01", "2024-02-08", "2024-02-15", "2024-02-22", "2024-03-01"}
	for i, d := range dates {
		fixtures = append(fixtures, lt.Played(i+1, d, 1, 2, 1, 0))
	}
	fixtures = append(fixtures, lt.Played(6, "2024-03-08", 2, 1, 2, 0))

	// Feed newest first; the fold must still run chronologically.
	reversed := make([]league.Fixture, len(fixtures))
	for i, f := range fixtures {
		reversed[len(fixtures)-1-i] = f
	}

	rows := BuildStandings(reversed, league.TeamIndex(lt.Teams()))
	nac, ok := FindRow(rows, 1)
	require.True(t, ok)
	require.NotNil(t, nac.Last5)
	assert.Len(t, *nac.Last5, FormLength)
	assert.Equal(t, "LWWWW", *nac.Last5)
	assert.Equal(t, 6, nac.Played)

	pen, ok := FindRow(rows, 2)
	require.True(t, ok)
	assert.Equal(t, "WLLLL", *pen.Last5)
}

func TestBuildStandings_AttendanceAndCards(t *testing.T) {
	f1 := lt.Played(1, "2024-02-01", 1, 2, 1, 1)
	f1.Attendance = league.IntPtr(1000)
	f1.HomeYellow, f1.AwayYellow, f1.AwayRed = 2, 3, 1

	f2 := lt.Played(2, "2024-02-08", 1, 3, 0, 0)
	f2.Attendance = league.IntPtr(2001)

	f3 := lt.Played(3, "2024-02-15", 1, 4, 2, 0) // no attendance recorded

	f4 := lt.Played(4, "2024-02-22", 2, 1, 0, 1)
	f4.Attendance = league.IntPtr(50000) // away for Nacional

	rows := BuildStandings([]league.Fixture{f1, f2, f3, f4}, league.TeamIndex(lt.Teams()))

	nac, _ := FindRow(rows, 1)
	require.NotNil(t, nac.AvgAttendance)
	assert.Equal(t, 1500.5, *nac.AvgAttendance)
	assert.Equal(t, 2, nac.Yellow)

	pen, _ := FindRow(rows, 2)
	require.NotNil(t, pen.AvgAttendance)
	assert.Equal(t, 50000.0, *pen.AvgAttendance)
	assert.Equal(t, 3, pen.Yellow)
	assert.Equal(t, 1, pen.Red)

	liv, _ := FindRow(rows, 3)
	assert.Nil(t, liv.AvgAttendance, "away-only teams have no home attendance")
}

func TestBuildStandings_UnknownTeamGetsPlaceholder(t *testing.T) {
	rows := BuildStandings([]league.Fixture{lt.Played(1, "2024-02-01", 1, 99, 0, 2)}, league.TeamIndex(lt.Teams()))
	require.Len(t, rows, 2)
	assert.Equal(t, "Team 99", rows[0].Team)
}

func TestBuildStandings_Deterministic(t *testing.T) {
	teams := league.TeamIndex(lt.Teams())
	first := BuildStandings(twoRounds(), teams)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, BuildStandings(twoRounds(), teams))
	}
}

func TestFormStrength(t *testing.T) {
	form := "WDL-W"
	assert.Equal(t, 7, FormStrength(&form))
	assert.Zero(t, FormStrength(nil))
}

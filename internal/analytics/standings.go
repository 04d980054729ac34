// Package analytics derives standings, scorer rankings, insights and matchup
// recommendations from raw fixture and player rows. Every function here is a
// pure fold over a snapshot read from the store; nothing is cached between
// calls because a reseed can replace the dataset at any time.
package analytics

import (
	"math"
	"sort"
	"strconv"

	"github.com/albapepper/auf-analytics/internal/league"
)

// Points awarded per result.
const (
	pointsWin  = 3
	pointsDraw = 1
)

// FormLength is the number of recent results kept in the form string.
const FormLength = 5

// formPad marks a slot with no played match.
const formPad = '-'

// StandingsRow is one team's line in a derived table.
type StandingsRow struct {
	Position       int      `json:"pos"`
	TeamID         int      `json:"team_id"`
	Team           string   `json:"team"`
	ShortName      string   `json:"short_name,omitempty"`
	LogoKey        string   `json:"logo_key,omitempty"`
	Played         int      `json:"mp"`
	Won            int      `json:"w"`
	Drawn          int      `json:"d"`
	Lost           int      `json:"l"`
	GoalsFor       int      `json:"gf"`
	GoalsAgainst   int      `json:"ga"`
	GoalDifference int      `json:"gd"`
	Points         int      `json:"pts"`
	PointsPerMatch float64  `json:"ppg"`
	Last5          *string  `json:"last5"`
	AvgAttendance  *float64 `json:"avg_attendance"`
	Yellow         int      `json:"yellow"`
	Red            int      `json:"red"`
}

// formRing holds the latest results, newest at index 0.
type formRing [FormLength]byte

func emptyForm() formRing {
	var r formRing
	for i := range r {
		r[i] = formPad
	}
	return r
}

func (r formRing) push(result byte) formRing {
	copy(r[1:], r[:FormLength-1])
	r[0] = result
	return r
}

// tally is the per-team accumulator. It is passed and returned by value so
// each fold step yields a new record.
type tally struct {
	won, drawn, lost       int
	goalsFor, goalsAgainst int
	yellow, red            int
	attendanceSum          int
	attendanceCount        int
	form                   formRing
}

func (t tally) played() int { return t.won + t.drawn + t.lost }

func (t tally) points() int { return t.won*pointsWin + t.drawn*pointsDraw }

func (t tally) record(gf, ga, yellow, red int) tally {
	t.goalsFor += gf
	t.goalsAgainst += ga
	t.yellow += yellow
	t.red += red
	switch {
	case gf > ga:
		t.won++
		t.form = t.form.push('W')
	case gf == ga:
		t.drawn++
		t.form = t.form.push('D')
	default:
		t.lost++
		t.form = t.form.push('L')
	}
	return t
}

func (t tally) withAttendance(att *int) tally {
	if att != nil {
		t.attendanceSum += *att
		t.attendanceCount++
	}
	return t
}

// BuildStandings folds the fixtures of a period into a ranked table. Only
// teams that appear in at least one fixture get a row; only played fixtures
// change the counters. Ordering is points, goal difference, goals for (all
// descending) and then team name ascending, so the result is a total order.
func BuildStandings(fixtures []league.Fixture, teams map[int]league.Team) []StandingsRow {
	ordered := chronological(fixtures)

	tallies := make(map[int]tally)
	seen := func(id int) {
		if _, ok := tallies[id]; !ok {
			tallies[id] = tally{form: emptyForm()}
		}
	}

	for _, f := range ordered {
		seen(f.HomeTeamID)
		seen(f.AwayTeamID)
		if !f.Played() {
			continue
		}
		hg, ag := *f.HomeGoals, *f.AwayGoals
		tallies[f.HomeTeamID] = tallies[f.HomeTeamID].
			record(hg, ag, f.HomeYellow, f.HomeRed).
			withAttendance(f.Attendance)
		tallies[f.AwayTeamID] = tallies[f.AwayTeamID].record(ag, hg, f.AwayYellow, f.AwayRed)
	}

	rows := make([]StandingsRow, 0, len(tallies))
	for id, t := range tallies {
		rows = append(rows, newRow(id, t, teams))
	}

	sort.Slice(rows, func(i, j int) bool { return rankLess(rows[i], rows[j]) })
	for i := range rows {
		rows[i].Position = i + 1
	}
	return rows
}

func newRow(id int, t tally, teams map[int]league.Team) StandingsRow {
	team := teamOrPlaceholder(id, teams)
	row := StandingsRow{
		TeamID:         id,
		Team:           team.Name,
		ShortName:      team.ShortName,
		LogoKey:        team.LogoKey,
		Played:         t.played(),
		Won:            t.won,
		Drawn:          t.drawn,
		Lost:           t.lost,
		GoalsFor:       t.goalsFor,
		GoalsAgainst:   t.goalsAgainst,
		GoalDifference: t.goalsFor - t.goalsAgainst,
		Points:         t.points(),
		Yellow:         t.yellow,
		Red:            t.red,
	}
	if row.Played > 0 {
		row.PointsPerMatch = round2(float64(row.Points) / float64(row.Played))
		form := string(t.form[:])
		row.Last5 = &form
	}
	if t.attendanceCount > 0 {
		avg := round2(float64(t.attendanceSum) / float64(t.attendanceCount))
		row.AvgAttendance = &avg
	}
	return row
}

func rankLess(a, b StandingsRow) bool {
	if a.Points != b.Points {
		return a.Points > b.Points
	}
	if a.GoalDifference != b.GoalDifference {
		return a.GoalDifference > b.GoalDifference
	}
	if a.GoalsFor != b.GoalsFor {
		return a.GoalsFor > b.GoalsFor
	}
	if a.Team != b.Team {
		return a.Team < b.Team
	}
	return a.TeamID < b.TeamID
}

// chronological returns a copy of fixtures sorted by date, kickoff time and id.
func chronological(fixtures []league.Fixture) []league.Fixture {
	out := make([]league.Fixture, len(fixtures))
	copy(out, fixtures)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		if out[i].Time != out[j].Time {
			return out[i].Time < out[j].Time
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// FormStrength scores a form string: W=3, D=1, L=0, padding 0.
func FormStrength(form *string) int {
	if form == nil {
		return 0
	}
	score := 0
	for _, c := range *form {
		switch c {
		case 'W':
			score += pointsWin
		case 'D':
			score += pointsDraw
		}
	}
	return score
}

// FindRow returns the row of teamID, if present.
func FindRow(rows []StandingsRow, teamID int) (StandingsRow, bool) {
	for _, r := range rows {
		if r.TeamID == teamID {
			return r, true
		}
	}
	return StandingsRow{}, false
}

func teamOrPlaceholder(id int, teams map[int]league.Team) league.Team {
	if t, ok := teams[id]; ok {
		return t
	}
	return league.Team{ID: id, Name: placeholderName(id)}
}

func placeholderName(id int) string {
	return "Team " + strconv.Itoa(id)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

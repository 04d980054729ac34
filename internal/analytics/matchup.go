package analytics

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrNotFound is matched by every *NotFoundError.
var ErrNotFound = errors.New("team not found in standings")

// NotFoundError reports a team reference that cannot be served: an id with
// no row in the requested period, or a name that matches no team.
type NotFoundError struct {
	TeamID int
	Name   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("team %s: %s", e.Ref(), ErrNotFound.Error())
}

// Ref is the offending identifier as the caller gave it.
func (e *NotFoundError) Ref() string {
	if e.Name != "" {
		return strconv.Quote(e.Name)
	}
	return strconv.Itoa(e.TeamID)
}

// Is lets errors.Is(err, ErrNotFound) match.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// TeamSnapshot is the slice of a standings row a matchup compares.
type TeamSnapshot struct {
	TeamID         int     `json:"team_id"`
	Team           string  `json:"team"`
	Position       int     `json:"pos"`
	Played         int     `json:"mp"`
	Points         int     `json:"pts"`
	GoalDifference int     `json:"gd"`
	GoalsFor       int     `json:"gf"`
	GoalsAgainst   int     `json:"ga"`
	Yellow         int     `json:"yellow"`
	Red            int     `json:"red"`
	Form           *string `json:"last5"`
	FormStrength   int     `json:"form_strength"`
}

func snapshotOf(r StandingsRow) TeamSnapshot {
	return TeamSnapshot{
		TeamID:         r.TeamID,
		Team:           r.Team,
		Position:       r.Position,
		Played:         r.Played,
		Points:         r.Points,
		GoalDifference: r.GoalDifference,
		GoalsFor:       r.GoalsFor,
		GoalsAgainst:   r.GoalsAgainst,
		Yellow:         r.Yellow,
		Red:            r.Red,
		Form:           r.Last5,
		FormStrength:   FormStrength(r.Last5),
	}
}

// Matchup is the advisor's output for a pair of teams.
type Matchup struct {
	Season         int          `json:"season"`
	Stage          string       `json:"stage"`
	TeamA          TeamSnapshot `json:"team_a"`
	TeamB          TeamSnapshot `json:"team_b"`
	FavouriteID    *int         `json:"favourite_team_id"`
	Even           bool         `json:"even"`
	Recommendation string       `json:"recommendation"`
}

// CompareTeams builds a recommendation for teamA against teamB from a
// standings table. It returns a *NotFoundError naming the first team that has
// no row.
func CompareTeams(rows []StandingsRow, teamA, teamB int) (Matchup, error) {
	ra, ok := FindRow(rows, teamA)
	if !ok {
		return Matchup{}, &NotFoundError{TeamID: teamA}
	}
	rb, ok := FindRow(rows, teamB)
	if !ok {
		return Matchup{}, &NotFoundError{TeamID: teamB}
	}

	a, b := snapshotOf(ra), snapshotOf(rb)
	m := Matchup{TeamA: a, TeamB: b}

	var text strings.Builder
	switch fav, under, even := pickFavourite(a, b); {
	case even:
		m.Even = true
		fmt.Fprintf(&text, "%s vs %s looks like an even matchup: %d to %d points, form strength %d to %d.",
			a.Team, b.Team, a.Points, b.Points, a.FormStrength, b.FormStrength)
	default:
		id := fav.TeamID
		m.FavouriteID = &id
		fmt.Fprintf(&text, "%s comes in as favourite over %s: %s on points and %s on form.",
			fav.Team, under.Team, margin(fav.Points-under.Points), margin(fav.FormStrength-under.FormStrength))
	}

	if hint := disciplineHint(a, b); hint != "" {
		text.WriteString(" ")
		text.WriteString(hint)
	}
	if a.Form != nil && b.Form != nil {
		fmt.Fprintf(&text, " Recent form: %s %s vs %s %s.", a.Team, *a.Form, b.Team, *b.Form)
	}

	m.Recommendation = text.String()
	return m, nil
}

// pickFavourite applies the comparison rule: equal points and equal form is
// even; otherwise 2*points gap plus form gap decides, then goal difference.
func pickFavourite(a, b TeamSnapshot) (fav, under TeamSnapshot, even bool) {
	if a.Points == b.Points && a.FormStrength == b.FormStrength {
		return a, b, true
	}
	score := 2*(a.Points-b.Points) + (a.FormStrength - b.FormStrength)
	if score == 0 {
		score = a.GoalDifference - b.GoalDifference
	}
	switch {
	case score > 0:
		return a, b, false
	case score < 0:
		return b, a, false
	default:
		return a, b, true
	}
}

func disciplineHint(a, b TeamSnapshot) string {
	ca, cb := a.Yellow+a.Red, b.Yellow+b.Red
	switch {
	case ca > cb:
		return a.Team + " needs to watch its discipline."
	case cb > ca:
		return b.Team + " needs to watch its discipline."
	}
	return ""
}

func margin(n int) string {
	switch {
	case n > 0:
		return fmt.Sprintf("+%d", n)
	case n < 0:
		return fmt.Sprintf("%d", n)
	}
	return "level"
}

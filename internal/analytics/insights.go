package analytics

import "sort"

// InsightSeriesCap limits every insight series.
const InsightSeriesCap = 8

// MetricEntry is one team's value in a single-metric series.
type MetricEntry struct {
	TeamID int    `json:"team_id"`
	Team   string `json:"team"`
	Value  int    `json:"value"`
}

// CardsEntry keeps yellow and red apart; the series sorts by their sum.
type CardsEntry struct {
	TeamID int    `json:"team_id"`
	Team   string `json:"team"`
	Yellow int    `json:"yellow"`
	Red    int    `json:"red"`
}

// Total is yellow plus red.
func (c CardsEntry) Total() int { return c.Yellow + c.Red }

// AttendanceEntry is a team's average home attendance.
type AttendanceEntry struct {
	TeamID int     `json:"team_id"`
	Team   string  `json:"team"`
	Value  float64 `json:"value"`
}

// Insights is the chart bundle derived from a standings table.
type Insights struct {
	Points     []MetricEntry     `json:"points"`
	GoalsFor   []MetricEntry     `json:"goals_for"`
	Cards      []CardsEntry      `json:"cards"`
	Attendance []AttendanceEntry `json:"attendance"`
}

// BuildInsights derives the four ranked series from standings rows. Each
// series is ordered by its own metric, descending, with team name as the
// tie-break. Series are never nil.
func BuildInsights(rows []StandingsRow) Insights {
	in := Insights{
		Points:     make([]MetricEntry, 0, len(rows)),
		GoalsFor:   make([]MetricEntry, 0, len(rows)),
		Cards:      make([]CardsEntry, 0, len(rows)),
		Attendance: make([]AttendanceEntry, 0, len(rows)),
	}

	for _, r := range rows {
		in.Points = append(in.Points, MetricEntry{TeamID: r.TeamID, Team: r.Team, Value: r.Points})
		in.GoalsFor = append(in.GoalsFor, MetricEntry{TeamID: r.TeamID, Team: r.Team, Value: r.GoalsFor})
		in.Cards = append(in.Cards, CardsEntry{TeamID: r.TeamID, Team: r.Team, Yellow: r.Yellow, Red: r.Red})
		if r.AvgAttendance != nil {
			in.Attendance = append(in.Attendance, AttendanceEntry{TeamID: r.TeamID, Team: r.Team, Value: *r.AvgAttendance})
		}
	}

	sortMetric(in.Points)
	sortMetric(in.GoalsFor)
	sort.Slice(in.Cards, func(i, j int) bool {
		a, b := in.Cards[i], in.Cards[j]
		if a.Total() != b.Total() {
			return a.Total() > b.Total()
		}
		return nameLess(a.Team, a.TeamID, b.Team, b.TeamID)
	})
	sort.Slice(in.Attendance, func(i, j int) bool {
		a, b := in.Attendance[i], in.Attendance[j]
		if a.Value != b.Value {
			return a.Value > b.Value
		}
		return nameLess(a.Team, a.TeamID, b.Team, b.TeamID)
	})

	in.Points = capSlice(in.Points, InsightSeriesCap)
	in.GoalsFor = capSlice(in.GoalsFor, InsightSeriesCap)
	in.Cards = capSlice(in.Cards, InsightSeriesCap)
	in.Attendance = capSlice(in.Attendance, InsightSeriesCap)
	return in
}

func sortMetric(s []MetricEntry) {
	sort.Slice(s, func(i, j int) bool {
		if s[i].Value != s[j].Value {
			return s[i].Value > s[j].Value
		}
		return nameLess(s[i].Team, s[i].TeamID, s[j].Team, s[j].TeamID)
	})
}

func nameLess(a string, aID int, b string, bID int) bool {
	if a != b {
		return a < b
	}
	return aID < bID
}

func capSlice[T any](s []T, n int) []T {
	if len(s) > n {
		return s[:n]
	}
	return s
}

package analytics

import "sort"

// DisciplineRow is a team's card record over a period.
type DisciplineRow struct {
	TeamID        int     `json:"team_id"`
	Team          string  `json:"team"`
	Played        int     `json:"mp"`
	Yellow        int     `json:"yellow"`
	Red           int     `json:"red"`
	Total         int     `json:"total"`
	CardsPerMatch float64 `json:"cards_per_match"`
}

// BuildDiscipline ranks teams by total cards, most booked first, then by red
// cards and name.
func BuildDiscipline(rows []StandingsRow) []DisciplineRow {
	out := make([]DisciplineRow, 0, len(rows))
	for _, r := range rows {
		d := DisciplineRow{
			TeamID: r.TeamID,
			Team:   r.Team,
			Played: r.Played,
			Yellow: r.Yellow,
			Red:    r.Red,
			Total:  r.Yellow + r.Red,
		}
		if r.Played > 0 {
			d.CardsPerMatch = round2(float64(d.Total) / float64(r.Played))
		}
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Total != b.Total {
			return a.Total > b.Total
		}
		if a.Red != b.Red {
			return a.Red > b.Red
		}
		return nameLess(a.Team, a.TeamID, b.Team, b.TeamID)
	})
	return out
}

// BestAttacks re-sorts standings rows by goals scored and keeps the top n.
// The input slice is not modified.
func BestAttacks(rows []StandingsRow, n int) []StandingsRow {
	out := make([]StandingsRow, len(rows))
	copy(out, rows)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].GoalsFor != out[j].GoalsFor {
			return out[i].GoalsFor > out[j].GoalsFor
		}
		return nameLess(out[i].Team, out[i].TeamID, out[j].Team, out[j].TeamID)
	})
	if n > 0 {
		out = capSlice(out, n)
	}
	return out
}

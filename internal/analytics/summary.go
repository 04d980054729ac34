package analytics

import (
	"sort"

	"github.com/albapepper/auf-analytics/internal/league"
)

// Goalkeeper is the keeper who played the most minutes for a team.
type Goalkeeper struct {
	PlayerID int    `json:"player_id"`
	Player   string `json:"player"`
	Minutes  int    `json:"minutes"`
}

// TeamSummary is the one-card overview of a club over a period.
type TeamSummary struct {
	TeamID        int         `json:"team_id"`
	Team          string      `json:"team"`
	LogoKey       string      `json:"logo_key,omitempty"`
	AvgAttendance float64     `json:"avg_attendance"`
	PrimaryGK     *Goalkeeper `json:"primary_gk"`
	TopScorer     *Scorer     `json:"top_scorer"`
}

const positionGK = "GK"

// BuildTeamSummaries returns one summary per team, ordered by name. Average
// attendance covers the team's home fixtures that report a crowd; a team
// with none gets 0. The primary keeper and top scorer stay nil when no
// player line qualifies.
func BuildTeamSummaries(teams []league.Team, fixtures []league.Fixture, stats []league.PlayerStat) []TeamSummary {
	type crowd struct{ sum, n int }
	crowds := make(map[int]crowd)
	for _, f := range fixtures {
		if f.Attendance == nil {
			continue
		}
		c := crowds[f.HomeTeamID]
		c.sum += *f.Attendance
		c.n++
		crowds[f.HomeTeamID] = c
	}

	keepers := make(map[int]*Goalkeeper)
	scorers := make(map[int]*Scorer)
	for _, line := range aggregatePlayers(stats, league.TeamIndex(teams)) {
		if line.Position == positionGK && line.Minutes > 0 {
			gk := keepers[line.TeamID]
			if gk == nil || line.Minutes > gk.Minutes || (line.Minutes == gk.Minutes && line.Player < gk.Player) {
				keepers[line.TeamID] = &Goalkeeper{PlayerID: line.PlayerID, Player: line.Player, Minutes: line.Minutes}
			}
		}
		if line.Goals > 0 {
			top := scorers[line.TeamID]
			if top == nil || line.Goals > top.Goals || (line.Goals == top.Goals && line.Player < top.Player) {
				scorers[line.TeamID] = &Scorer{
					PlayerID: line.PlayerID,
					Player:   line.Player,
					TeamID:   line.TeamID,
					Team:     line.Team,
					Goals:    line.Goals,
				}
			}
		}
	}

	out := make([]TeamSummary, 0, len(teams))
	for _, t := range teams {
		s := TeamSummary{
			TeamID:    t.ID,
			Team:      t.Name,
			LogoKey:   t.LogoKey,
			PrimaryGK: keepers[t.ID],
			TopScorer: scorers[t.ID],
		}
		if c := crowds[t.ID]; c.n > 0 {
			s.AvgAttendance = round2(float64(c.sum) / float64(c.n))
		}
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		return nameLess(out[i].Team, out[i].TeamID, out[j].Team, out[j].TeamID)
	})
	return out
}

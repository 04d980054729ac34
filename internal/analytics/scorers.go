package analytics

import (
	"sort"

	"github.com/albapepper/auf-analytics/internal/league"
)

// MaxScorers caps every scorer ranking.
const MaxScorers = 20

// Scorer is one line of the scorer ranking.
type Scorer struct {
	PlayerID int    `json:"player_id"`
	Player   string `json:"player"`
	TeamID   int    `json:"team_id"`
	Team     string `json:"team"`
	Goals    int    `json:"goals"`
}

// PlayerLine is a player's aggregated statistics over a period.
type PlayerLine struct {
	PlayerID      int     `json:"player_id"`
	Player        string  `json:"player"`
	TeamID        int     `json:"team_id"`
	Team          string  `json:"team"`
	Position      string  `json:"position,omitempty"`
	Minutes       int     `json:"minutes"`
	Goals         int     `json:"goals"`
	Assists       int     `json:"assists"`
	Shots         int     `json:"shots"`
	ShotsOnTarget int     `json:"shots_on_target"`
	Yellow        int     `json:"yellow"`
	Red           int     `json:"red"`
	XG            float64 `json:"xg"`
	XA            float64 `json:"xa"`
}

type playerKey struct {
	player int
	team   int
}

// aggregatePlayers sums stat lines per (player, team). A player who moved
// clubs mid-season yields one line per club.
func aggregatePlayers(stats []league.PlayerStat, teams map[int]league.Team) []PlayerLine {
	sums := make(map[playerKey]PlayerLine)
	order := make([]playerKey, 0)
	for _, s := range stats {
		k := playerKey{player: s.PlayerID, team: s.TeamID}
		line, ok := sums[k]
		if !ok {
			line = PlayerLine{
				PlayerID: s.PlayerID,
				Player:   s.Player,
				TeamID:   s.TeamID,
				Team:     teamOrPlaceholder(s.TeamID, teams).Name,
				Position: s.Position,
			}
			order = append(order, k)
		}
		line.Minutes += s.Minutes
		line.Goals += s.Goals
		line.Assists += s.Assists
		line.Shots += s.Shots
		line.ShotsOnTarget += s.ShotsOnTarget
		line.Yellow += s.Yellow
		line.Red += s.Red
		line.XG += s.XG
		line.XA += s.XA
		sums[k] = line
	}

	out := make([]PlayerLine, 0, len(order))
	for _, k := range order {
		line := sums[k]
		line.XG = round2(line.XG)
		line.XA = round2(line.XA)
		out = append(out, line)
	}
	return out
}

// TopScorers ranks players by goals. Zero-goal players are dropped; ties
// break on player name then id. limit is clamped to 1..MaxScorers, with
// zero or negative meaning MaxScorers.
func TopScorers(stats []league.PlayerStat, teams map[int]league.Team, limit int) []Scorer {
	if limit <= 0 || limit > MaxScorers {
		limit = MaxScorers
	}

	out := make([]Scorer, 0)
	for _, p := range aggregatePlayers(stats, teams) {
		if p.Goals <= 0 {
			continue
		}
		out = append(out, Scorer{
			PlayerID: p.PlayerID,
			Player:   p.Player,
			TeamID:   p.TeamID,
			Team:     p.Team,
			Goals:    p.Goals,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Goals != out[j].Goals {
			return out[i].Goals > out[j].Goals
		}
		if out[i].Player != out[j].Player {
			return out[i].Player < out[j].Player
		}
		return out[i].PlayerID < out[j].PlayerID
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// PlayerTable lists every player's aggregated line ordered by goals, assists
// and minutes (descending), then name.
func PlayerTable(stats []league.PlayerStat, teams map[int]league.Team) []PlayerLine {
	out := aggregatePlayers(stats, teams)
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Goals != b.Goals {
			return a.Goals > b.Goals
		}
		if a.Assists != b.Assists {
			return a.Assists > b.Assists
		}
		if a.Minutes != b.Minutes {
			return a.Minutes > b.Minutes
		}
		if a.Player != b.Player {
			return a.Player < b.Player
		}
		return a.PlayerID < b.PlayerID
	})
	return out
}

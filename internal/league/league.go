// Package league defines the reference and raw data types of a league season
// and the read contract every store implements. These structs are the
// contract between the stores (Postgres, SQLite), the seeders that write
// them and the analytics core that reads them.
package league

import (
	"context"
	"errors"
	"fmt"
)

// Team is the immutable reference row for a club.
type Team struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"short_name,omitempty"`
	LogoKey   string `json:"logo_key,omitempty"`
	City      string `json:"city,omitempty"`
	Stadium   string `json:"stadium,omitempty"`
}

// Fixture is one match of a (season, stage). Goals are nil until the match
// has been played. Card counts are fixture-level totals per side.
type Fixture struct {
	ID         int    `json:"match_id"`
	Season     int    `json:"season"`
	Stage      string `json:"stage"`
	Round      string `json:"round"`
	Date       string `json:"date"` // "YYYY-MM-DD"
	Time       string `json:"time,omitempty"`
	HomeTeamID int    `json:"home_team_id"`
	AwayTeamID int    `json:"away_team_id"`
	HomeGoals  *int   `json:"home_goals"`
	AwayGoals  *int   `json:"away_goals"`
	Attendance *int   `json:"attendance"`
	Venue      string `json:"venue,omitempty"`
	Referee    string `json:"referee,omitempty"`
	HomeYellow int    `json:"home_yellow"`
	HomeRed    int    `json:"home_red"`
	AwayYellow int    `json:"away_yellow"`
	AwayRed    int    `json:"away_red"`
}

// Played reports whether both goal counts are present.
func (f Fixture) Played() bool {
	return f.HomeGoals != nil && f.AwayGoals != nil
}

// ErrSameTeam is returned by Validate for a fixture whose sides are equal.
var ErrSameTeam = errors.New("home and away team must differ")

// Validate checks the fixture invariants enforced on write.
func (f Fixture) Validate() error {
	if f.HomeTeamID == f.AwayTeamID {
		return fmt.Errorf("fixture %d: %w (team %d)", f.ID, ErrSameTeam, f.HomeTeamID)
	}
	if f.Season == 0 || f.Stage == "" {
		return fmt.Errorf("fixture %d: season and stage are required", f.ID)
	}
	if (f.HomeGoals == nil) != (f.AwayGoals == nil) {
		return fmt.Errorf("fixture %d: both goal counts must be set or both empty", f.ID)
	}
	return nil
}

// PlayerStat is a player's statistics line for a (season, stage). xG and xA
// are pass-through values computed upstream.
type PlayerStat struct {
	PlayerID      int     `json:"player_id"`
	Player        string  `json:"player"`
	TeamID        int     `json:"team_id"`
	Season        int     `json:"season"`
	Stage         string  `json:"stage"`
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

// Match event types.
const (
	EventGoal   = "goal"
	EventYellow = "yellow"
	EventRed    = "red"
)

// MatchEvent is one entry of a fixture's timeline. PlayerID is nil for
// events not attributed to a player.
type MatchEvent struct {
	MatchID  int    `json:"match_id"`
	Minute   int    `json:"minute"`
	TeamID   int    `json:"team_id"`
	PlayerID *int   `json:"player_id"`
	Player   string `json:"player,omitempty"`
	Type     string `json:"type"`
	Detail   string `json:"detail,omitempty"`
}

// ErrUnknownEvent is returned by Validate for an unsupported event type.
var ErrUnknownEvent = errors.New("unknown event type")

// Validate checks the event invariants enforced on write.
func (e MatchEvent) Validate() error {
	switch e.Type {
	case EventGoal, EventYellow, EventRed:
	default:
		return fmt.Errorf("match %d: %w %q", e.MatchID, ErrUnknownEvent, e.Type)
	}
	if e.Minute < 0 || e.Minute > 150 {
		return fmt.Errorf("match %d: minute %d out of range", e.MatchID, e.Minute)
	}
	return nil
}

// Store is the read side of the dataset. Unknown season/stage combinations
// return empty slices, not errors. ListFixtures orders by date ascending.
type Store interface {
	ListFixtures(ctx context.Context, season int, stage string) ([]Fixture, error)
	ListPlayerStats(ctx context.Context, season int, stage string, teamID *int) ([]PlayerStat, error)
	ListTeams(ctx context.Context) ([]Team, error)
}

// Dataset is a full snapshot as produced by a seeder.
type Dataset struct {
	Teams       []Team
	Fixtures    []Fixture
	PlayerStats []PlayerStat
	Events      []MatchEvent
}

// Validate checks every fixture and event.
func (ds Dataset) Validate() error {
	for _, f := range ds.Fixtures {
		if err := f.Validate(); err != nil {
			return err
		}
	}
	for _, e := range ds.Events {
		if err := e.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Writer replaces the whole dataset atomically. A reseed never merges: the
// previous snapshot is discarded.
type Writer interface {
	ReplaceDataset(ctx context.Context, ds Dataset) error
}

// Seasons lists the distinct seasons present in a store.
type Seasons interface {
	ListSeasons(ctx context.Context) ([]int, error)
}

// Timeline lists a fixture's events ordered by minute, then in the order
// they were written. An unknown match yields an empty slice.
type Timeline interface {
	ListMatchEvents(ctx context.Context, matchID int) ([]MatchEvent, error)
}

// ReadWriter is what the API server and the ingest CLI hold.
type ReadWriter interface {
	Store
	Writer
	Seasons
	Timeline
	Ping(ctx context.Context) error
	Close() error
}

// TeamIndex maps team id to team.
func TeamIndex(teams []Team) map[int]Team {
	idx := make(map[int]Team, len(teams))
	for _, t := range teams {
		idx[t.ID] = t
	}
	return idx
}

// IntPtr returns a pointer to v.
func IntPtr(v int) *int { return &v }

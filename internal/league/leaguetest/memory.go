// Package leaguetest provides an in-memory league.Store and fixture builders
// for tests.
package leaguetest

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/albapepper/auf-analytics/internal/league"
)

// Memory is a league.ReadWriter backed by slices. Err, when set, is returned
// from every read.
type Memory struct {
	mu  sync.RWMutex
	ds  league.Dataset
	Err error
}

// NewMemory returns a store holding ds.
func NewMemory(ds league.Dataset) *Memory {
	return &Memory{ds: ds}
}

func (m *Memory) ListFixtures(_ context.Context, season int, stage string) ([]league.Fixture, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.Err != nil {
		return nil, m.Err
	}
	out := make([]league.Fixture, 0)
	for _, f := range m.ds.Fixtures {
		if f.Season == season && f.Stage == stage {
			out = append(out, f)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (m *Memory) ListPlayerStats(_ context.Context, season int, stage string, teamID *int) ([]league.PlayerStat, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.Err != nil {
		return nil, m.Err
	}
	out := make([]league.PlayerStat, 0)
	for _, p := range m.ds.PlayerStats {
		if p.Season != season || p.Stage != stage {
			continue
		}
		if teamID != nil && p.TeamID != *teamID {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (m *Memory) ListTeams(context.Context) ([]league.Team, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.Err != nil {
		return nil, m.Err
	}
	out := make([]league.Team, len(m.ds.Teams))
	copy(out, m.ds.Teams)
	return out, nil
}

func (m *Memory) ListMatchEvents(_ context.Context, matchID int) ([]league.MatchEvent, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.Err != nil {
		return nil, m.Err
	}
	out := make([]league.MatchEvent, 0)
	for _, e := range m.ds.Events {
		if e.MatchID == matchID {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Minute < out[j].Minute })
	return out, nil
}

func (m *Memory) ListSeasons(context.Context) ([]int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	seen := map[int]bool{}
	var out []int
	for _, f := range m.ds.Fixtures {
		if !seen[f.Season] {
			seen[f.Season] = true
			out = append(out, f.Season)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(out)))
	return out, nil
}

func (m *Memory) ReplaceDataset(_ context.Context, ds league.Dataset) error {
	if err := ds.Validate(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ds = ds
	return nil
}

func (m *Memory) Ping(context.Context) error {
	if m.Err != nil {
		return errors.Join(errors.New("memory store unavailable"), m.Err)
	}
	return nil
}

func (m *Memory) Close() error { return nil }

// ---------------------------------------------------------------------------
// Builders
// ---------------------------------------------------------------------------

// Played builds a played fixture.
func Played(id int, date string, home, away, hg, ag int) league.Fixture {
	return league.Fixture{
		ID:         id,
		Season:     2024,
		Stage:      league.StageApertura,
		Round:      "1",
		Date:       date,
		HomeTeamID: home,
		AwayTeamID: away,
		HomeGoals:  league.IntPtr(hg),
		AwayGoals:  league.IntPtr(ag),
	}
}

// Scheduled builds a fixture with no result yet.
func Scheduled(id int, date string, home, away int) league.Fixture {
	return league.Fixture{
		ID:         id,
		Season:     2024,
		Stage:      league.StageApertura,
		Round:      "1",
		Date:       date,
		HomeTeamID: home,
		AwayTeamID: away,
	}
}

// Stat builds a player stat line for the 2024 apertura.
func Stat(playerID int, player string, teamID, goals int) league.PlayerStat {
	return league.PlayerStat{
		PlayerID: playerID,
		Player:   player,
		TeamID:   teamID,
		Season:   2024,
		Stage:    league.StageApertura,
		Minutes:  90,
		Goals:    goals,
	}
}

// Goal builds a goal event for player in match.
func Goal(matchID, minute, teamID, playerID int, player string) league.MatchEvent {
	return league.MatchEvent{
		MatchID:  matchID,
		Minute:   minute,
		TeamID:   teamID,
		PlayerID: league.IntPtr(playerID),
		Player:   player,
		Type:     league.EventGoal,
	}
}

// Teams returns four Uruguayan clubs with ids 1..4.
func Teams() []league.Team {
	return []league.Team{
		{ID: 1, Name: "Nacional", ShortName: "NAC", LogoKey: "nacional"},
		{ID: 2, Name: "Peñarol", ShortName: "PEN", LogoKey: "penarol"},
		{ID: 3, Name: "Liverpool", ShortName: "LIV", LogoKey: "liverpool"},
		{ID: 4, Name: "Defensor Sporting", ShortName: "DEF", LogoKey: "defensor-sporting"},
	}
}

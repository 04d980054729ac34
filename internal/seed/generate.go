package seed

import (
	"fmt"
	"math"
	"math/rand/v2"
	"sort"
	"time"

	"github.com/albapepper/auf-analytics/internal/league"
)

// --------------------------------------------------------------------------
// Simulated season
// --------------------------------------------------------------------------

const squadSize = 18

var kickoffTimes = []string{"15:00", "15:30", "17:00", "19:00", "20:30"}

var referees = []string{
	"Andrés Matonte", "Esteban Ostojich", "Gustavo Tejera", "Leodán González",
	"Christian Ferreyra", "Javier Feres", "Hernán Heras", "Santiago Fernández",
}

var firstNames = []string{
	"Agustín", "Bruno", "Carlos", "Diego", "Emiliano", "Facundo", "Gonzalo", "Héctor", "Ignacio",
	"Joaquín", "Kevin", "Leandro", "Matías", "Nicolás", "Óscar", "Pablo", "Rodrigo", "Santiago",
}

var lastNames = []string{
	"Álvarez", "Benítez", "Cabrera", "De León", "Espino", "Fernández", "García", "Hernández",
	"Ibarra", "Jara", "López", "Martínez", "Núñez", "Olivera", "Pereira", "Rodríguez",
	"Suárez", "Torres",
}

type squadPlayer struct {
	id       int
	name     string
	position string
}

type pairing struct {
	home, away int
}

type statKey struct {
	player int
	stage  string
}

// simulator holds the state of one generated season.
type simulator struct {
	season int
	rng    *rand.Rand
	teams  map[int]league.Team
	squads map[int][]squadPlayer
	stats  map[statKey]*league.PlayerStat
	events []league.MatchEvent
	nextID int
}

// Generate simulates a complete season (apertura, intermedio, clausura) over
// DefaultTeams, with a goal and card timeline for every match. The same (season, rngSeed) always yields the same dataset.
func Generate(season int, rngSeed uint64) league.Dataset {
	teams := DefaultTeams()
	sim := &simulator{
		season: season,
		rng:    rand.New(rand.NewPCG(rngSeed, uint64(season))),
		teams:  league.TeamIndex(teams),
		squads: make(map[int][]squadPlayer),
		stats:  make(map[statKey]*league.PlayerStat),
		nextID: season*1000 + 1,
	}

	ids := make([]int, 0, len(teams))
	for _, t := range teams {
		ids = append(ids, t.ID)
		sim.squads[t.ID] = buildSquad(t.ID)
	}
	sort.Ints(ids)

	var fixtures []league.Fixture
	fixtures = append(fixtures, sim.roundRobin(league.StageApertura, ids, date(season, time.February, 10))...)
	fixtures = append(fixtures, sim.intermedio(ids, date(season, time.June, 5))...)
	fixtures = append(fixtures, sim.roundRobin(league.StageClausura, ids, date(season, time.August, 10))...)

	return league.Dataset{
		Teams:       teams,
		Fixtures:    fixtures,
		PlayerStats: sim.playerStats(),
		Events:      sim.events,
	}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func buildSquad(teamID int) []squadPlayer {
	squad := make([]squadPlayer, squadSize)
	for k := range squad {
		pos := "FW"
		switch {
		case k < 2:
			pos = "GK"
		case k < 8:
			pos = "DF"
		case k < 14:
			pos = "MF"
		}
		first := firstNames[(teamID*7+k)%len(firstNames)]
		last := lastNames[(teamID*5+k*3)%len(lastNames)]
		squad[k] = squadPlayer{
			id:       teamID*100 + k + 1,
			name:     first + " " + last,
			position: pos,
		}
	}
	return squad
}

// rounds returns the circle-method pairings for ids, alternating home and
// away between rounds. An odd team count gets a bye.
func rounds(ids []int) [][]pairing {
	ring := append([]int(nil), ids...)
	if len(ring)%2 == 1 {
		ring = append(ring, 0)
	}
	n := len(ring)
	var out [][]pairing
	for r := 0; r < n-1; r++ {
		var round []pairing
		for j := 0; j < n/2; j++ {
			home, away := ring[j], ring[n-1-j]
			if home == 0 || away == 0 {
				continue
			}
			if r%2 == 1 {
				home, away = away, home
			}
			round = append(round, pairing{home: home, away: away})
		}
		out = append(out, round)
		// Keep the first slot fixed and rotate the rest clockwise.
		ring = append([]int{ring[0], ring[n-1]}, ring[1:n-1]...)
	}
	return out
}

func (s *simulator) roundRobin(stage string, ids []int, start time.Time) []league.Fixture {
	var out []league.Fixture
	for i, round := range rounds(ids) {
		day := start.AddDate(0, 0, 7*i)
		for _, p := range round {
			out = append(out, s.play(stage, fmt.Sprint(i+1), day, p))
		}
	}
	return out
}

// intermedio plays two single round-robin groups of eight and a final
// between the first seeds of each group.
func (s *simulator) intermedio(ids []int, start time.Time) []league.Fixture {
	half := len(ids) / 2
	groups := [][]int{ids[:half], ids[half:]}

	var out []league.Fixture
	for _, g := range groups {
		for i, round := range rounds(g) {
			day := start.AddDate(0, 0, 7*i)
			for _, p := range round {
				out = append(out, s.play(league.StageIntermedio, fmt.Sprint(i+1), day, p))
			}
		}
	}
	final := pairing{home: groups[0][0], away: groups[1][0]}
	out = append(out, s.play(league.StageIntermedio, "Final", start.AddDate(0, 0, 7*8), final))
	return out
}

// attendanceRange mirrors the crowd sizes of the big two, the established
// clubs and everyone else.
func attendanceRange(teamID int) (lo, hi int) {
	switch teamID {
	case 1, 2:
		return 18000, 35000
	case 3, 4, 5, 6, 10:
		return 8000, 18000
	}
	return 500, 12000
}

func (s *simulator) between(lo, hi int) int {
	return lo + s.rng.IntN(hi-lo+1)
}

func (s *simulator) play(stage, round string, day time.Time, p pairing) league.Fixture {
	homeGoals := s.between(0, 3)
	if s.rng.Float64() > 0.6 {
		homeGoals++
	}
	awayGoals := s.between(0, 3)
	lo, hi := attendanceRange(p.home)

	f := league.Fixture{
		ID:         s.nextID,
		Season:     s.season,
		Stage:      stage,
		Round:      round,
		Date:       day.Format("2006-01-02"),
		Time:       kickoffTimes[s.rng.IntN(len(kickoffTimes))],
		HomeTeamID: p.home,
		AwayTeamID: p.away,
		HomeGoals:  league.IntPtr(homeGoals),
		AwayGoals:  league.IntPtr(awayGoals),
		Attendance: league.IntPtr(s.between(lo, hi)),
		Venue:      s.teams[p.home].Stadium,
		Referee:    referees[s.rng.IntN(len(referees))],
	}
	s.nextID++

	homeXG := round2(float64(homeGoals)*0.7 + s.rng.Float64()*1.5)
	awayXG := round2(float64(awayGoals)*0.7 + s.rng.Float64()*1.4)
	first := len(s.events)
	f.HomeYellow, f.HomeRed = s.lineup(stage, f.ID, p.home, homeGoals, homeXG)
	f.AwayYellow, f.AwayRed = s.lineup(stage, f.ID, p.away, awayGoals, awayXG)
	timeline := s.events[first:]
	sort.SliceStable(timeline, func(i, j int) bool { return timeline[i].Minute < timeline[j].Minute })
	return f
}

// lineup picks eleven starters, spreads goals, assists and cards among them,
// records the match events and accumulates their stage totals. It returns
// the team's card counts.
func (s *simulator) lineup(stage string, matchID, teamID, goals int, teamXG float64) (yellow, red int) {
	squad := s.squads[teamID]
	perm := s.rng.Perm(len(squad))[:11]
	starters := make([]squadPlayer, 0, 11)
	for _, i := range perm {
		starters = append(starters, squad[i])
	}

	scored := make(map[int]int)
	assisted := make(map[int]int)
	for g := 0; g < goals; g++ {
		scorer := starters[s.rng.IntN(len(starters))]
		if scorer.position == "GK" {
			scorer = starters[s.rng.IntN(len(starters))]
		}
		scored[scorer.id]++
		detail := ""
		if helper := starters[s.rng.IntN(len(starters))]; helper.id != scorer.id {
			assisted[helper.id]++
			detail = "assist: " + helper.name
		}
		s.event(matchID, s.between(1, 90), teamID, scorer, league.EventGoal, detail)
	}

	booked := make(map[int]int)
	sent := make(map[int]int)
	yellow = s.between(0, 3)
	red = s.between(0, 1)
	for i := 0; i < yellow; i++ {
		pl := starters[s.rng.IntN(len(starters))]
		booked[pl.id]++
		s.event(matchID, s.between(1, 90), teamID, pl, league.EventYellow, "")
	}
	for i := 0; i < red; i++ {
		pl := starters[s.rng.IntN(len(starters))]
		sent[pl.id]++
		s.event(matchID, s.between(20, 90), teamID, pl, league.EventRed, "")
	}

	perPlayerXG := teamXG / float64(len(starters))
	for _, pl := range starters {
		key := statKey{player: pl.id, stage: stage}
		st, ok := s.stats[key]
		if !ok {
			st = &league.PlayerStat{
				PlayerID: pl.id,
				Player:   pl.name,
				TeamID:   teamID,
				Season:   s.season,
				Stage:    stage,
				Position: pl.position,
			}
			s.stats[key] = st
		}
		g := scored[pl.id]
		shots := g + s.between(0, 3)
		st.Minutes += s.between(70, 95)
		st.Goals += g
		st.Assists += assisted[pl.id]
		st.Shots += shots
		st.ShotsOnTarget += max(g, s.between(0, shots))
		st.Yellow += booked[pl.id]
		st.Red += sent[pl.id]
		st.XG = round2(st.XG + perPlayerXG + s.rng.Float64()*0.3)
		st.XA = round2(st.XA + float64(assisted[pl.id])*0.15)
	}
	return yellow, red
}

func (s *simulator) event(matchID, minute, teamID int, pl squadPlayer, kind, detail string) {
	s.events = append(s.events, league.MatchEvent{
		MatchID:  matchID,
		Minute:   minute,
		TeamID:   teamID,
		PlayerID: league.IntPtr(pl.id),
		Player:   pl.name,
		Type:     kind,
		Detail:   detail,
	})
}

func (s *simulator) playerStats() []league.PlayerStat {
	out := make([]league.PlayerStat, 0, len(s.stats))
	for _, st := range s.stats {
		out = append(out, *st)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Stage != out[j].Stage {
			return out[i].Stage < out[j].Stage
		}
		return out[i].PlayerID < out[j].PlayerID
	})
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

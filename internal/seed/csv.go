package seed

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/albapepper/auf-analytics/internal/league"
)

// CSV file names inside a data directory.
const (
	TeamsFile       = "teams.csv"
	FixturesFile    = "fixtures.csv"
	PlayerStatsFile = "player_stats.csv"
	EventsFile      = "events.csv"
)

var (
	teamColumns    = []string{"id", "name", "short_name", "logo_key", "city", "stadium"}
	fixtureColumns = []string{
		"match_id", "season", "stage", "round", "date", "time", "home_team_id", "away_team_id",
		"home_goals", "away_goals", "attendance", "venue", "referee",
		"home_yellow", "home_red", "away_yellow", "away_red",
	}
	playerStatColumns = []string{
		"player_id", "player", "team_id", "season", "stage", "position",
		"minutes", "goals", "assists", "shots", "shots_on_target", "yellow", "red", "xg", "xa",
	}
	eventColumns = []string{"match_id", "minute", "team_id", "player_id", "player", "type", "detail"}
)

// ErrNoData is returned when a directory holds no teams.csv.
var ErrNoData = errors.New("no seed data")

// --------------------------------------------------------------------------
// Reading
// --------------------------------------------------------------------------

// table is a header-indexed CSV file. Columns are looked up by name so files
// may reorder or omit optional columns.
type table struct {
	file   string
	header map[string]int
	rows   [][]string
}

func readTable(path string, required ...string) (*table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	head, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read header of %s: %w", path, err)
	}
	t := &table{file: filepath.Base(path), header: make(map[string]int, len(head))}
	for i, h := range head {
		t.header[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))] = i
	}
	for _, col := range required {
		if _, ok := t.header[col]; !ok {
			return nil, fmt.Errorf("%s: missing column %q", t.file, col)
		}
	}

	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		t.rows = append(t.rows, rec)
	}
	return t, nil
}

// row wraps one record; the first conversion error sticks.
type row struct {
	t   *table
	rec []string
	err error
}

func (r *row) str(col string) string {
	i, ok := r.t.header[col]
	if !ok || i >= len(r.rec) {
		return ""
	}
	return strings.TrimSpace(r.rec[i])
}

func (r *row) num(col string) int {
	v := r.optInt(col)
	if v == nil {
		return 0
	}
	return *v
}

func (r *row) optInt(col string) *int {
	s := r.str(col)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		// Some exports write integers as floats ("12000.0").
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil || f != float64(int(f)) {
			if r.err == nil {
				r.err = fmt.Errorf("column %s: %q is not an integer", col, s)
			}
			return nil
		}
		n = int(f)
	}
	return &n
}

func (r *row) float(col string) float64 {
	s := r.str(col)
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && r.err == nil {
		r.err = fmt.Errorf("column %s: %q is not a number", col, s)
	}
	return f
}

// LoadCSV reads teams.csv, fixtures.csv, player_stats.csv and events.csv
// from dir. Bad rows are skipped and reported in the result; a missing
// teams.csv yields ErrNoData. Teams without a logo key get one derived from
// their name.
func LoadCSV(dir string) (league.Dataset, SeedResult, error) {
	res := SeedResult{Source: dir}
	var ds league.Dataset

	teams, err := readTable(filepath.Join(dir, TeamsFile), "id", "name")
	if errors.Is(err, os.ErrNotExist) {
		return ds, res, fmt.Errorf("%s: %w", dir, ErrNoData)
	}
	if err != nil {
		return ds, res, err
	}
	known := make(map[int]bool)
	for i, rec := range teams.rows {
		r := &row{t: teams, rec: rec}
		t := league.Team{
			ID:        r.num("id"),
			Name:      r.str("name"),
			ShortName: r.str("short_name"),
			LogoKey:   r.str("logo_key"),
			City:      r.str("city"),
			Stadium:   r.str("stadium"),
		}
		if r.err == nil && (t.ID == 0 || t.Name == "") {
			r.err = errors.New("id and name are required")
		}
		if r.err != nil {
			res.AddErrorf("%s line %d: %v", TeamsFile, i+2, r.err)
			continue
		}
		if t.LogoKey == "" {
			t.LogoKey = LogoKey(t.Name)
		}
		known[t.ID] = true
		ds.Teams = append(ds.Teams, t)
	}

	matches := make(map[int]bool)
	fixtures, err := readTable(filepath.Join(dir, FixturesFile), "match_id", "season", "stage", "date", "home_team_id", "away_team_id")
	switch {
	case errors.Is(err, os.ErrNotExist):
		res.AddErrorf("%s missing in %s", FixturesFile, dir)
	case err != nil:
		return ds, res, err
	default:
		for i, rec := range fixtures.rows {
			f, err := parseFixture(&row{t: fixtures, rec: rec})
			if err == nil && (!known[f.HomeTeamID] || !known[f.AwayTeamID]) {
				err = fmt.Errorf("unknown team in %d vs %d", f.HomeTeamID, f.AwayTeamID)
			}
			if err != nil {
				res.AddErrorf("%s line %d: %v", FixturesFile, i+2, err)
				continue
			}
			matches[f.ID] = true
			ds.Fixtures = append(ds.Fixtures, f)
		}
	}

	stats, err := readTable(filepath.Join(dir, PlayerStatsFile), "player_id", "player", "team_id", "season", "stage")
	switch {
	case errors.Is(err, os.ErrNotExist):
		// Player data is optional; standings work without it.
	case err != nil:
		return ds, res, err
	default:
		for i, rec := range stats.rows {
			p, err := parsePlayerStat(&row{t: stats, rec: rec})
			if err == nil && !known[p.TeamID] {
				err = fmt.Errorf("unknown team %d", p.TeamID)
			}
			if err != nil {
				res.AddErrorf("%s line %d: %v", PlayerStatsFile, i+2, err)
				continue
			}
			ds.PlayerStats = append(ds.PlayerStats, p)
		}
	}

	events, err := readTable(filepath.Join(dir, EventsFile), "match_id", "minute", "team_id", "type")
	switch {
	case errors.Is(err, os.ErrNotExist):
		// Timelines are optional.
	case err != nil:
		return ds, res, err
	default:
		for i, rec := range events.rows {
			e, err := parseEvent(&row{t: events, rec: rec})
			if err == nil && (!matches[e.MatchID] || !known[e.TeamID]) {
				err = fmt.Errorf("unknown match %d or team %d", e.MatchID, e.TeamID)
			}
			if err != nil {
				res.AddErrorf("%s line %d: %v", EventsFile, i+2, err)
				continue
			}
			ds.Events = append(ds.Events, e)
		}
	}

	res.TeamsLoaded = len(ds.Teams)
	res.FixturesLoaded = len(ds.Fixtures)
	res.PlayerStatsLoaded = len(ds.PlayerStats)
	res.EventsLoaded = len(ds.Events)
	return ds, res, nil
}

func parseFixture(r *row) (league.Fixture, error) {
	f := league.Fixture{
		ID:         r.num("match_id"),
		Season:     r.num("season"),
		Stage:      strings.ToLower(r.str("stage")),
		Round:      r.str("round"),
		Date:       r.str("date"),
		Time:       r.str("time"),
		HomeTeamID: r.num("home_team_id"),
		AwayTeamID: r.num("away_team_id"),
		HomeGoals:  r.optInt("home_goals"),
		AwayGoals:  r.optInt("away_goals"),
		Attendance: r.optInt("attendance"),
		Venue:      r.str("venue"),
		Referee:    r.str("referee"),
		HomeYellow: r.num("home_yellow"),
		HomeRed:    r.num("home_red"),
		AwayYellow: r.num("away_yellow"),
		AwayRed:    r.num("away_red"),
	}
	if r.err != nil {
		return f, r.err
	}
	return f, f.Validate()
}

func parsePlayerStat(r *row) (league.PlayerStat, error) {
	p := league.PlayerStat{
		PlayerID:      r.num("player_id"),
		Player:        r.str("player"),
		TeamID:        r.num("team_id"),
		Season:        r.num("season"),
		Stage:         strings.ToLower(r.str("stage")),
		Position:      r.str("position"),
		Minutes:       r.num("minutes"),
		Goals:         r.num("goals"),
		Assists:       r.num("assists"),
		Shots:         r.num("shots"),
		ShotsOnTarget: r.num("shots_on_target"),
		Yellow:        r.num("yellow"),
		Red:           r.num("red"),
		XG:            r.float("xg"),
		XA:            r.float("xa"),
	}
	return p, r.err
}

func parseEvent(r *row) (league.MatchEvent, error) {
	e := league.MatchEvent{
		MatchID:  r.num("match_id"),
		Minute:   r.num("minute"),
		TeamID:   r.num("team_id"),
		PlayerID: r.optInt("player_id"),
		Player:   r.str("player"),
		Type:     strings.ToLower(r.str("type")),
		Detail:   r.str("detail"),
	}
	if r.err != nil {
		return e, r.err
	}
	return e, e.Validate()
}

// --------------------------------------------------------------------------
// Writing
// --------------------------------------------------------------------------

// WriteCSV exports ds into dir in the layout LoadCSV reads.
func WriteCSV(dir string, ds league.Dataset) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	teamRows := make([][]string, 0, len(ds.Teams))
	for _, t := range ds.Teams {
		teamRows = append(teamRows, []string{itoa(t.ID), t.Name, t.ShortName, t.LogoKey, t.City, t.Stadium})
	}
	if err := writeFile(filepath.Join(dir, TeamsFile), teamColumns, teamRows); err != nil {
		return err
	}

	fixtureRows := make([][]string, 0, len(ds.Fixtures))
	for _, f := range ds.Fixtures {
		fixtureRows = append(fixtureRows, []string{
			itoa(f.ID), itoa(f.Season), f.Stage, f.Round, f.Date, f.Time,
			itoa(f.HomeTeamID), itoa(f.AwayTeamID),
			optItoa(f.HomeGoals), optItoa(f.AwayGoals), optItoa(f.Attendance), f.Venue, f.Referee,
			itoa(f.HomeYellow), itoa(f.HomeRed), itoa(f.AwayYellow), itoa(f.AwayRed),
		})
	}
	if err := writeFile(filepath.Join(dir, FixturesFile), fixtureColumns, fixtureRows); err != nil {
		return err
	}

	statRows := make([][]string, 0, len(ds.PlayerStats))
	for _, p := range ds.PlayerStats {
		statRows = append(statRows, []string{
			itoa(p.PlayerID), p.Player, itoa(p.TeamID), itoa(p.Season), p.Stage, p.Position,
			itoa(p.Minutes), itoa(p.Goals), itoa(p.Assists), itoa(p.Shots), itoa(p.ShotsOnTarget),
			itoa(p.Yellow), itoa(p.Red),
			strconv.FormatFloat(p.XG, 'f', 2, 64), strconv.FormatFloat(p.XA, 'f', 2, 64),
		})
	}
	if err := writeFile(filepath.Join(dir, PlayerStatsFile), playerStatColumns, statRows); err != nil {
		return err
	}

	eventRows := make([][]string, 0, len(ds.Events))
	for _, e := range ds.Events {
		eventRows = append(eventRows, []string{
			itoa(e.MatchID), itoa(e.Minute), itoa(e.TeamID), optItoa(e.PlayerID), e.Player, e.Type, e.Detail,
		})
	}
	return writeFile(filepath.Join(dir, EventsFile), eventColumns, eventRows)
}

func writeFile(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

func itoa(n int) string { return strconv.Itoa(n) }

func optItoa(n *int) string {
	if n == nil {
		return ""
	}
	return strconv.Itoa(*n)
}

package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albapepper/auf-analytics/internal/analytics"
	"github.com/albapepper/auf-analytics/internal/api/handler"
	"github.com/albapepper/auf-analytics/internal/api/respond"
	"github.com/albapepper/auf-analytics/internal/config"
	"github.com/albapepper/auf-analytics/internal/league"
	lt "github.com/albapepper/auf-analytics/internal/league/leaguetest"
	"github.com/albapepper/auf-analytics/internal/query"
	"github.com/albapepper/auf-analytics/internal/seed"
	"github.com/albapepper/auf-analytics/internal/store/sqlite"
)

func testConfig() *config.Config {
	return &config.Config{
		StoreDriver:      config.DriverSQLite,
		CORSAllowOrigins: []string{"*"},
		DefaultSeason:    2024,
		DefaultStage:     league.StageApertura,
	}
}

func testDataset() league.Dataset {
	opener := lt.Played(1, "2024-02-01", 1, 2, 2, 0)
	opener.Attendance = league.IntPtr(34000)
	return league.Dataset{
		Teams: lt.Teams(),
		Fixtures: []league.Fixture{
			opener,
			lt.Played(2, "2024-02-01", 3, 4, 1, 1),
			lt.Played(3, "2024-02-08", 2, 3, 3, 1),
			lt.Played(4, "2024-02-08", 4, 1, 0, 1),
		},
		PlayerStats: []league.PlayerStat{
			lt.Stat(10, "Ana", 1, 3),
			lt.Stat(11, "Bruno", 2, 2),
			lt.Stat(12, "Carla", 3, 1),
		},
		Events: []league.MatchEvent{
			lt.Goal(1, 71, 1, 10, "Ana"),
			{MatchID: 1, Minute: 40, TeamID: 2, PlayerID: league.IntPtr(11), Player: "Bruno", Type: league.EventYellow},
			lt.Goal(1, 12, 1, 10, "Ana"),
		},
	}
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestServer serves testDataset from an in-memory SQLite store.
func newTestServer(t *testing.T, cfg *config.Config, reseed handler.ReseedFunc) http.Handler {
	t.Helper()
	store, err := sqlite.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	require.NoError(t, store.ReplaceDataset(context.Background(), testDataset()))
	return NewRouter(store, query.DefaultRules(), cfg, reseed, quietLogger())
}

func do(t *testing.T, h http.Handler, method, path, body string, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	return decode[respond.ErrorResponse](t, rec).Error.Code
}

// --------------------------------------------------------------------------
// Health and meta
// --------------------------------------------------------------------------

func TestHealth(t *testing.T) {
	srv := newTestServer(t, testConfig(), nil)

	rec := do(t, srv, http.MethodGet, "/health/", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Process-Time"))

	rec = do(t, srv, http.MethodGet, "/health/db", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"connected"`)
}

func TestHealthDB_Unavailable(t *testing.T) {
	mem := lt.NewMemory(testDataset())
	mem.Err = errors.New("gone")
	srv := NewRouter(mem, query.DefaultRules(), testConfig(), nil, quietLogger())

	rec := do(t, srv, http.MethodGet, "/health/db", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestMeta(t *testing.T) {
	srv := newTestServer(t, testConfig(), nil)

	rec := do(t, srv, http.MethodGet, "/api/v1/meta", "")
	require.Equal(t, http.StatusOK, rec.Code)
	meta := decode[handler.MetaResponse](t, rec)
	assert.Equal(t, []int{2024}, meta.Seasons)
	require.Len(t, meta.Stages, 4)
	assert.Equal(t, handler.StageInfo{Code: "apertura", Name: "Torneo Apertura"}, meta.Stages[0])
	assert.Equal(t, 2024, meta.DefaultSeason)
	assert.Len(t, meta.Teams, 4)
}

// --------------------------------------------------------------------------
// Standings and stats
// --------------------------------------------------------------------------

func TestStandings(t *testing.T) {
	srv := newTestServer(t, testConfig(), nil)

	rec := do(t, srv, http.MethodGet, "/api/v1/standings?season=2024&stage=Apertura", "")
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[handler.StandingsResponse](t, rec)
	assert.Equal(t, "apertura", resp.Stage)
	assert.Equal(t, "Torneo Apertura", resp.StageName)
	require.Len(t, resp.Rows, 4)

	var order []string
	for _, row := range resp.Rows {
		order = append(order, row.Team)
	}
	assert.Equal(t, []string{"Nacional", "Peñarol", "Defensor Sporting", "Liverpool"}, order)
	assert.Equal(t, 6, resp.Rows[0].Points)
}

func TestStandings_ConditionalGet(t *testing.T) {
	srv := newTestServer(t, testConfig(), nil)

	first := do(t, srv, http.MethodGet, "/api/v1/standings", "")
	require.Equal(t, http.StatusOK, first.Code)
	etag := first.Header().Get("ETag")
	require.NotEmpty(t, etag)

	again := do(t, srv, http.MethodGet, "/api/v1/standings", "", "If-None-Match", etag)
	assert.Equal(t, http.StatusNotModified, again.Code)
	assert.Empty(t, again.Body.String())
}

func TestStandings_EmptyPeriod(t *testing.T) {
	srv := newTestServer(t, testConfig(), nil)

	rec := do(t, srv, http.MethodGet, "/api/v1/standings?season=1999", "")
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[handler.StandingsResponse](t, rec)
	assert.NotNil(t, resp.Rows)
	assert.Empty(t, resp.Rows)
}

func TestStandings_BadParams(t *testing.T) {
	srv := newTestServer(t, testConfig(), nil)

	rec := do(t, srv, http.MethodGet, "/api/v1/standings?stage=liguilla", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_STAGE", errorCode(t, rec))

	rec = do(t, srv, http.MethodGet, "/api/v1/standings?season=twenty", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_PARAM", errorCode(t, rec))
}

func TestStandings_StoreFailure(t *testing.T) {
	mem := lt.NewMemory(testDataset())
	mem.Err = errors.New("disk on fire")
	srv := NewRouter(mem, query.DefaultRules(), testConfig(), nil, quietLogger())

	rec := do(t, srv, http.MethodGet, "/api/v1/standings", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "INTERNAL", errorCode(t, rec))
	assert.NotContains(t, rec.Body.String(), "disk on fire")
}

func TestBestAttacks(t *testing.T) {
	srv := newTestServer(t, testConfig(), nil)

	rec := do(t, srv, http.MethodGet, "/api/v1/standings/attacks?top=2", "")
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[handler.StandingsResponse](t, rec)
	require.Len(t, resp.Rows, 2)
	// Nacional and Peñarol both scored three; name breaks the tie.
	assert.Equal(t, "Nacional", resp.Rows[0].Team)
	assert.Equal(t, "Peñarol", resp.Rows[1].Team)
}

func TestScorers(t *testing.T) {
	srv := newTestServer(t, testConfig(), nil)

	rec := do(t, srv, http.MethodGet, "/api/v1/scorers?top=2", "")
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[handler.ScorersResponse](t, rec)
	require.Equal(t, 2, resp.Count)
	assert.Equal(t, "Ana", resp.Scorers[0].Player)
	assert.Equal(t, 3, resp.Scorers[0].Goals)

	rec = do(t, srv, http.MethodGet, "/api/v1/scorers?top=0", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPlayers_FilterByTeam(t *testing.T) {
	srv := newTestServer(t, testConfig(), nil)

	rec := do(t, srv, http.MethodGet, "/api/v1/players?team_id=2", "")
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[handler.PlayersResponse](t, rec)
	require.Equal(t, 1, resp.Count)
	assert.Equal(t, "Bruno", resp.Players[0].Player)
}

func TestInsightsAndDiscipline(t *testing.T) {
	srv := newTestServer(t, testConfig(), nil)

	rec := do(t, srv, http.MethodGet, "/api/v1/stats/insights", "")
	require.Equal(t, http.StatusOK, rec.Code)
	ins := decode[handler.InsightsResponse](t, rec)
	require.NotEmpty(t, ins.Points)
	assert.Equal(t, "Nacional", ins.Points[0].Team)

	rec = do(t, srv, http.MethodGet, "/api/v1/stats/discipline", "")
	require.Equal(t, http.StatusOK, rec.Code)
	disc := decode[handler.DisciplineResponse](t, rec)
	assert.Equal(t, 4, disc.Count)
}

// --------------------------------------------------------------------------
// Teams and fixtures
// --------------------------------------------------------------------------

func TestSearchTeams(t *testing.T) {
	srv := newTestServer(t, testConfig(), nil)

	rec := do(t, srv, http.MethodGet, "/api/v1/teams/search?name=penarol", "")
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[handler.TeamsResponse](t, rec)
	require.NotEmpty(t, resp.Teams)
	assert.Equal(t, "Peñarol", resp.Teams[0].Name)

	rec = do(t, srv, http.MethodGet, "/api/v1/teams/search?name=xyzzy", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, srv, http.MethodGet, "/api/v1/teams/search", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFixtures_Filters(t *testing.T) {
	srv := newTestServer(t, testConfig(), nil)

	rec := do(t, srv, http.MethodGet, "/api/v1/fixtures?team_id=4", "")
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[handler.FixturesResponse](t, rec)
	require.Equal(t, 2, resp.Count)
	assert.Equal(t, "Liverpool", resp.Fixtures[0].HomeTeam)
	assert.Equal(t, "Defensor Sporting", resp.Fixtures[0].AwayTeam)
	assert.Equal(t, "2024-02-08", resp.Fixtures[1].Date)

	rec = do(t, srv, http.MethodGet, "/api/v1/fixtures?round=2", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, decode[handler.FixturesResponse](t, rec).Count)
}

func TestMatchEvents(t *testing.T) {
	srv := newTestServer(t, testConfig(), nil)

	rec := do(t, srv, http.MethodGet, "/api/v1/fixtures/1/events", "")
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[handler.MatchEventsResponse](t, rec)
	assert.Equal(t, 1, resp.MatchID)
	require.Equal(t, 3, resp.Count)
	assert.Equal(t, []int{12, 40, 71}, []int{resp.Events[0].Minute, resp.Events[1].Minute, resp.Events[2].Minute})
	assert.Equal(t, "Nacional", resp.Events[0].Team)
	assert.Equal(t, league.EventYellow, resp.Events[1].Type)
	assert.Equal(t, "Peñarol", resp.Events[1].Team)

	rec = do(t, srv, http.MethodGet, "/api/v1/fixtures/3/events", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"events":[]`)

	rec = do(t, srv, http.MethodGet, "/api/v1/fixtures/999/events", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, decode[handler.MatchEventsResponse](t, rec).Count)
}

func TestMatchEvents_BadID(t *testing.T) {
	srv := newTestServer(t, testConfig(), nil)

	for _, id := range []string{"abc", "0", "-3"} {
		rec := do(t, srv, http.MethodGet, "/api/v1/fixtures/"+id+"/events", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, id)
		assert.Equal(t, "INVALID_PARAM", errorCode(t, rec), id)
	}
}

func TestTeamSummaries(t *testing.T) {
	srv := newTestServer(t, testConfig(), nil)

	rec := do(t, srv, http.MethodGet, "/api/v1/teams/summary", "")
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[handler.TeamSummaryResponse](t, rec)
	assert.Equal(t, 2024, resp.Season)
	require.Equal(t, 4, resp.Count)
	assert.Equal(t, "Defensor Sporting", resp.Teams[0].Team)

	nac := resp.Teams[2]
	require.Equal(t, "Nacional", nac.Team)
	assert.Equal(t, 34000.0, nac.AvgAttendance)
	require.NotNil(t, nac.TopScorer)
	assert.Equal(t, "Ana", nac.TopScorer.Player)
	assert.Nil(t, nac.PrimaryGK)

	assert.Nil(t, resp.Teams[0].TopScorer)
	assert.Zero(t, resp.Teams[3].AvgAttendance)

	rec = do(t, srv, http.MethodGet, "/api/v1/teams/summary?stage=verano", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_STAGE", errorCode(t, rec))
}

// --------------------------------------------------------------------------
// Matchup and free query
// --------------------------------------------------------------------------

func TestMatchup(t *testing.T) {
	srv := newTestServer(t, testConfig(), nil)

	rec := do(t, srv, http.MethodPost, "/api/v1/matchup", `{"team_a":"nacional","team_b_id":3}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	m := decode[analytics.Matchup](t, rec)
	require.NotNil(t, m.FavouriteID)
	assert.Equal(t, 1, *m.FavouriteID)
	assert.Equal(t, 2024, m.Season)
	assert.Contains(t, m.Recommendation, "Nacional comes in as favourite over Liverpool")
}

func TestMatchup_Errors(t *testing.T) {
	srv := newTestServer(t, testConfig(), nil)

	cases := []struct {
		name   string
		body   string
		status int
		code   string
		detail string
	}{
		{"same team", `{"team_a_id":1,"team_b_id":1}`, http.StatusBadRequest, "SAME_TEAM", "1"},
		{"missing team", `{"team_a_id":1}`, http.StatusBadRequest, "TEAMS_REQUIRED", ""},
		{"blank name", `{"team_a":"  ","team_b_id":2}`, http.StatusBadRequest, "TEAMS_REQUIRED", ""},
		{"unknown name", `{"team_a":"Boca","team_b_id":2}`, http.StatusNotFound, "NOT_FOUND", `"Boca"`},
		{"no standings row", `{"team_a_id":1,"team_b_id":99}`, http.StatusNotFound, "NOT_FOUND", "99"},
		{"bad json", `{"team_a_id":`, http.StatusBadRequest, "INVALID_BODY", ""},
		{"bad stage", `{"team_a_id":1,"team_b_id":2,"stage":"x"}`, http.StatusBadRequest, "INVALID_STAGE", "x"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := do(t, srv, http.MethodPost, "/api/v1/matchup", tc.body)
			assert.Equal(t, tc.status, rec.Code)
			body := decode[respond.ErrorResponse](t, rec)
			assert.Equal(t, tc.code, body.Error.Code)
			if tc.detail != "" {
				assert.Equal(t, tc.detail, body.Error.Detail)
			}
		})
	}
}

func TestQuery(t *testing.T) {
	srv := newTestServer(t, testConfig(), nil)

	rec := do(t, srv, http.MethodPost, "/api/v1/query", `{"question":"Compara Nacional vs Liverpool"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	ans := decode[query.Answer](t, rec)
	assert.Equal(t, query.IntentComparison, ans.Intent)
	assert.Equal(t, "Compara Nacional vs Liverpool", ans.Query)
	assert.Equal(t, league.StageApertura, ans.Stage)
	assert.Len(t, ans.Entities, 2)

	rec = do(t, srv, http.MethodPost, "/api/v1/query", `{"question":"¿Quién es el goleador?"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	ans = decode[query.Answer](t, rec)
	assert.Equal(t, query.IntentTopScorer, ans.Intent)
	assert.Contains(t, ans.Text, "Ana")

	rec = do(t, srv, http.MethodPost, "/api/v1/query", `{"question":"   "}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "MISSING_QUESTION", errorCode(t, rec))
}

// --------------------------------------------------------------------------
// Admin and middleware
// --------------------------------------------------------------------------

func TestReseed_Disabled(t *testing.T) {
	srv := newTestServer(t, testConfig(), func(context.Context) (seed.SeedResult, error) {
		t.Fatal("reseed must not run")
		return seed.SeedResult{}, nil
	})

	rec := do(t, srv, http.MethodPost, "/api/v1/admin/reseed", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "RESEED_DISABLED", errorCode(t, rec))
}

func TestReseed_Enabled(t *testing.T) {
	cfg := testConfig()
	cfg.AllowReseed = true
	called := false
	srv := newTestServer(t, cfg, func(context.Context) (seed.SeedResult, error) {
		called = true
		return seed.SeedResult{Source: "simulated:2024", TeamsLoaded: 16, FixturesLoaded: 297}, nil
	})

	rec := do(t, srv, http.MethodPost, "/api/v1/admin/reseed", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
	resp := decode[handler.ReseedResponse](t, rec)
	assert.Equal(t, 297, resp.Fixtures)
	assert.Equal(t, []string{}, resp.Errors)
}

func TestRateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimitEnabled = true
	cfg.RateLimitRequests = 2
	cfg.RateLimitWindow = time.Minute
	srv := newTestServer(t, cfg, nil)

	assert.Equal(t, http.StatusOK, do(t, srv, http.MethodGet, "/health/", "").Code)
	rec := do(t, srv, http.MethodGet, "/health/", "")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "60", rec.Header().Get("Retry-After"))
}

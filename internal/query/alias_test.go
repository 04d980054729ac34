package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albapepper/auf-analytics/internal/league"
	"github.com/albapepper/auf-analytics/internal/seed"
)

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"¿Quién es el GOLEADOR?":  "quien es el goleador",
		"Peñarol-Nacional":        "penarol nacional",
		"  Defensor   Sporting  ": "defensor sporting",
		"¡¡!!":                    "",
		"Top 10":                  "top 10",
	}
	for in, want := range cases {
		assert.Equal(t, want, Normalize(in), in)
	}
}

func montevideoTeams() []league.Team {
	return []league.Team{
		{ID: 1, Name: "Montevideo Wanderers", ShortName: "MWA"},
		{ID: 2, Name: "Montevideo City Torque", ShortName: "MCT"},
		{ID: 3, Name: "River Plate", ShortName: "RIV"},
		{ID: 4, Name: "Plaza Colonia", ShortName: "PLA"},
	}
}

func TestExtract_AmbiguousWordIsDropped(t *testing.T) {
	tbl := BuildAliasTable(montevideoTeams(), Rules{})

	assert.Empty(t, tbl.Extract("como esta montevideo"))

	got := tbl.Extract("Wanderers vs Torque")
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].TeamID)
	assert.Equal(t, 2, got[1].TeamID)
}

func TestExtract_LongestAliasClaimsSpan(t *testing.T) {
	tbl := BuildAliasTable(montevideoTeams(), Rules{})

	got := tbl.Extract("river plate contra plaza colonia")
	require.Len(t, got, 2)
	assert.Equal(t, "River Plate", got[0].Name)
	assert.Equal(t, "Plaza Colonia", got[1].Name)
}

func TestExtract_CapsAtTwoDistinct(t *testing.T) {
	tbl := BuildAliasTable(montevideoTeams(), Rules{Nicknames: map[string][]string{"montevideo wanderers": {"bohemios"}}})

	got := tbl.Extract("bohemios wanderers river colonia")
	require.Len(t, got, MaxEntities)
	assert.Equal(t, 1, got[0].TeamID, "the same team twice counts once")
	assert.Equal(t, 3, got[1].TeamID)
}

func TestExtract_WholeWordsOnly(t *testing.T) {
	tbl := BuildAliasTable(montevideoTeams(), Rules{})
	assert.Empty(t, tbl.Extract("riverside plates"))
}

func TestClassify_RuleOrder(t *testing.T) {
	rules := DefaultRules()
	cases := []struct {
		query    string
		entities int
		want     Intent
	}{
		{"nacional vs penarol", 2, IntentComparison},
		{"nacional y penarol", 2, IntentUnknown},
		{"goleador de nacional", 1, IntentTeamStatus},
		{"goleadores", 0, IntentTopScorer},
		{"tabla de goleadores", 0, IntentTopScorer},
		{"tabla", 0, IntentTable},
		{"vs", 1, IntentTeamStatus},
		{"hola", 0, IntentUnknown},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, rules.Classify(tokens(c.query), c.entities), c.query)
	}
}

func TestExtract_FullNameBeatsSharedWord(t *testing.T) {
	teams := []league.Team{
		{ID: 8, Name: "Cerro"},
		{ID: 12, Name: "Cerro Largo"},
	}
	tbl := BuildAliasTable(teams, Rules{})

	got := tbl.Extract("cerro vs cerro largo")
	require.Len(t, got, 2)
	assert.Equal(t, 8, got[0].TeamID)
	assert.Equal(t, 12, got[1].TeamID)

	got = tbl.Extract("como viene largo")
	require.Len(t, got, 1)
	assert.Equal(t, 12, got[0].TeamID)
}

func TestExtract_ShortNamesNeedCapitals(t *testing.T) {
	tbl := BuildAliasTable(seed.DefaultTeams(), DefaultRules())

	got := tbl.Extract("PEN vs MAL")
	require.Len(t, got, 2)
	assert.Equal(t, "Peñarol", got[0].Name)
	assert.Equal(t, "Deportivo Maldonado", got[1].Name)

	assert.Empty(t, tbl.Extract("pen y mal"))
}

func TestExtract_CommonWordsNeedCapital(t *testing.T) {
	tbl := BuildAliasTable(seed.DefaultTeams(), DefaultRules())

	got := tbl.Extract("Progreso contra Cerro")
	require.Len(t, got, 2)
	assert.Equal(t, 15, got[0].TeamID)
	assert.Equal(t, 8, got[1].TeamID)

	assert.Empty(t, tbl.Extract("el progreso del cerro"))
	assert.Empty(t, tbl.Extract("progresso"), "typos of common words stay unmatched")

	got = tbl.Extract("como viene cerro largo")
	require.Len(t, got, 1)
	assert.Equal(t, 12, got[0].TeamID, "a full name is never a common word")
}

func TestExtract_EverydayWordsKeepSingleTeam(t *testing.T) {
	rules := DefaultRules()
	tbl := BuildAliasTable(seed.DefaultTeams(), rules)

	cases := []struct {
		question string
		team     string
	}{
		{"¿Por qué Peñarol juega tan mal?", "Peñarol"},
		{"¿Cómo le fue a Nacional, bien o mal?", "Nacional"},
		{"¿Cómo viene el progreso de Nacional?", "Nacional"},
	}
	for _, c := range cases {
		got := tbl.Extract(c.question)
		require.Len(t, got, 1, c.question)
		assert.Equal(t, c.team, got[0].Name, c.question)
		assert.Equal(t, IntentTeamStatus, rules.Classify(tokens(Normalize(c.question)), len(got)), c.question)
	}
}

func TestLookup_IgnoresCapitalization(t *testing.T) {
	tbl := BuildAliasTable(seed.DefaultTeams(), DefaultRules())

	for name, id := range map[string]int{"progreso": 15, "mal": 13, "cerro": 8, "bolso": 1} {
		e, ok := tbl.Lookup(name)
		require.True(t, ok, name)
		assert.Equal(t, id, e.TeamID, name)
	}

	_, ok := tbl.Lookup("Boca")
	assert.False(t, ok)
}

package query

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v2"
)

// Intent is the classified purpose of a free-text question.
type Intent string

const (
	IntentComparison Intent = "comparison"
	IntentTeamStatus Intent = "team_status"
	IntentTopScorer  Intent = "top_scorer"
	IntentTable      Intent = "table"
	IntentUnknown    Intent = "unknown"
)

// Rules holds the keyword sets and nicknames the router matches against.
// Keywords are matched as prefixes of normalized tokens, so "compara" also
// matches "comparame". Nicknames are keyed by the normalized team name.
// CommonWords lists team names and nicknames that are also everyday words;
// in a question they only count as a team when capitalized.
type Rules struct {
	Comparison  []string            `yaml:"comparison"`
	Scorer      []string            `yaml:"scorer"`
	Table       []string            `yaml:"table"`
	Plural      []string            `yaml:"plural"`
	Nicknames   map[string][]string `yaml:"nicknames"`
	CommonWords []string            `yaml:"common_words"`
}

// DefaultRules returns the built-in keyword sets.
func DefaultRules() Rules {
	return Rules{
		Comparison: []string{"vs", "versus", "compar", "contra", "enfrent"},
		Scorer:     []string{"goleador", "goles", "scorer", "anotador"},
		Table:      []string{"tabla", "posicion", "clasificacion", "standings", "ranking"},
		Plural:     []string{"goleadores", "scorers", "anotadores", "maximos", "mejores", "top"},
		Nicknames: map[string][]string{
			"nacional":             {"bolso", "bolsilludo", "tricolor", "albo"},
			"penarol":              {"manya", "carbonero", "aurinegro", "mirasol"},
			"danubio":              {"franja", "franjeado"},
			"defensor sporting":    {"violeta", "tuerto"},
			"liverpool":            {"negriazul", "pool"},
			"montevideo wanderers": {"bohemio", "bohemios"},
			"river plate":          {"darsenero"},
			"cerro":                {"villero"},
			"racing":               {"cervecero"},
			"boston river":         {"sastre"},
		},
		CommonWords: []string{
			"progreso", "cerro", "largo", "defensor", "fenix", "rampla",
			"franja", "violeta", "albo", "tricolor", "sastre", "pool",
		},
	}
}

// LoadRules reads a YAML rules file. Sections present in the file replace
// the defaults; nicknames are merged per team. An empty path returns the
// defaults.
func LoadRules(path string) (Rules, error) {
	rules := DefaultRules()
	if path == "" {
		return rules, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Rules{}, fmt.Errorf("read rules file: %w", err)
	}

	var override Rules
	if err := yaml.Unmarshal(raw, &override); err != nil {
		return Rules{}, fmt.Errorf("parse rules file %s: %w", path, err)
	}

	if len(override.Comparison) > 0 {
		rules.Comparison = normalizeAll(override.Comparison)
	}
	if len(override.Scorer) > 0 {
		rules.Scorer = normalizeAll(override.Scorer)
	}
	if len(override.Table) > 0 {
		rules.Table = normalizeAll(override.Table)
	}
	if len(override.Plural) > 0 {
		rules.Plural = normalizeAll(override.Plural)
	}
	if len(override.CommonWords) > 0 {
		rules.CommonWords = normalizeAll(override.CommonWords)
	}
	for team, names := range override.Nicknames {
		rules.Nicknames[Normalize(team)] = normalizeAll(names)
	}
	return rules, nil
}

func normalizeAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if n := Normalize(s); n != "" {
			out = append(out, n)
		}
	}
	return out
}

// ---------------------------------------------------------------------------
// Classification
// ---------------------------------------------------------------------------

// anyEntities marks a rule with no entity requirement.
const anyEntities = -1

type rule struct {
	intent   Intent
	keywords []string
	entities int
}

// table returns the ordered rule list. The first rule whose keyword set and
// entity count both match wins.
func (r Rules) table() []rule {
	return []rule{
		{intent: IntentComparison, keywords: r.Comparison, entities: 2},
		{intent: IntentTeamStatus, entities: 1},
		{intent: IntentTopScorer, keywords: r.Scorer, entities: anyEntities},
		{intent: IntentTable, keywords: r.Table, entities: anyEntities},
	}
}

// Classify picks the intent for a tokenized question with the given number
// of distinct team matches.
func (r Rules) Classify(toks []string, entityCount int) Intent {
	for _, ru := range r.table() {
		if ru.entities != anyEntities && ru.entities != entityCount {
			continue
		}
		if ru.keywords != nil && !hasKeyword(toks, ru.keywords) {
			continue
		}
		return ru.intent
	}
	return IntentUnknown
}

func hasKeyword(toks, keywords []string) bool {
	for _, t := range toks {
		for _, k := range keywords {
			if strings.HasPrefix(t, k) {
				return true
			}
		}
	}
	return false
}

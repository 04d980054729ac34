package query

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/albapepper/auf-analytics/internal/league"
)

// MaxEntities is the most distinct teams a question can reference.
const MaxEntities = 2

// Tokens shorter than this are never fuzzy-matched; short words produce too
// many accidental hits at distance one.
const (
	fuzzyMinLen      = 6
	fuzzyMaxDistance = 1
)

// Words that never become a single-word alias on their own.
var aliasStopwords = map[string]bool{
	"club": true, "atletico": true, "deportivo": true, "sport": true,
	"fc": true, "cf": true, "de": true, "del": true, "la": true,
	"el": true, "los": true, "city": true,
}

// Entity is a team resolved from a question.
type Entity struct {
	TeamID int    `json:"team_id"`
	Name   string `json:"name"`
}

// caseRule restricts an alias to a capitalization of the typed text.
type caseRule int

const (
	// anyCase matches however the question is typed.
	anyCase caseRule = iota
	// titleCase needs a capital first letter: "Progreso" is the club,
	// "el progreso" is not.
	titleCase
	// upperCase needs every letter in capitals: "MAL" is Deportivo
	// Maldonado, "mal" is not.
	upperCase
)

func (c caseRule) admits(tok string) bool {
	switch c {
	case titleCase:
		r, _ := utf8.DecodeRuneInString(tok)
		return unicode.IsUpper(r)
	case upperCase:
		return strings.ToUpper(tok) == tok && strings.IndexFunc(tok, unicode.IsLetter) >= 0
	}
	return true
}

type alias struct {
	words  []string
	teamID int
	rule   caseRule
}

// AliasTable maps normalized aliases to team ids.
type AliasTable struct {
	entries []alias
	names   map[int]string
}

// BuildAliasTable derives aliases from the team list: full name, short name,
// configured nicknames and each significant word of the name. Name words are
// weak aliases: a full name or nickname owning the same text wins, and a
// word shared by two teams is dropped as ambiguous. Short names only match
// when typed in capitals and rules.CommonWords only when capitalized.
func BuildAliasTable(teams []league.Team, rules Rules) *AliasTable {
	common := make(map[string]bool, len(rules.CommonWords))
	for _, w := range rules.CommonWords {
		common[Normalize(w)] = true
	}

	strong := make(map[string]map[int]bool)
	weak := make(map[string]map[int]bool)
	caseOf := make(map[string]caseRule)
	add := func(set map[string]map[int]bool, a string, id int, rule caseRule) {
		a = Normalize(a)
		if a == "" {
			return
		}
		if rule == anyCase && common[a] {
			rule = titleCase
		}
		if set[a] == nil {
			set[a] = make(map[int]bool)
		}
		set[a][id] = true
		if prev, ok := caseOf[a]; !ok || rule < prev {
			caseOf[a] = rule
		}
	}

	names := make(map[int]string, len(teams))
	for _, t := range teams {
		names[t.ID] = t.Name
		full := Normalize(t.Name)
		add(strong, full, t.ID, anyCase)
		if len(t.ShortName) >= 3 {
			add(strong, t.ShortName, t.ID, upperCase)
		}
		for _, nick := range rules.Nicknames[full] {
			add(strong, nick, t.ID, anyCase)
		}
		for _, w := range tokens(full) {
			if len(w) >= 4 && !aliasStopwords[w] {
				add(weak, w, t.ID, anyCase)
			}
		}
	}

	tbl := &AliasTable{names: names}
	appendUnique := func(a string, ids map[int]bool) {
		if len(ids) != 1 {
			return
		}
		for id := range ids {
			tbl.entries = append(tbl.entries, alias{words: tokens(a), teamID: id, rule: caseOf[a]})
		}
	}
	for a, ids := range strong {
		appendUnique(a, ids)
	}
	for a, ids := range weak {
		if _, ok := strong[a]; ok {
			continue
		}
		appendUnique(a, ids)
	}

	// Longest alias first so "river plate" claims its span before "plate".
	sort.Slice(tbl.entries, func(i, j int) bool {
		a, b := tbl.entries[i], tbl.entries[j]
		if len(a.words) != len(b.words) {
			return len(a.words) > len(b.words)
		}
		la, lb := len(strings.Join(a.words, " ")), len(strings.Join(b.words, " "))
		if la != lb {
			return la > lb
		}
		return strings.Join(a.words, " ") < strings.Join(b.words, " ")
	})
	return tbl
}

type hit struct {
	teamID int
	start  int
}

// Extract finds up to MaxEntities distinct teams in a question, in the order
// they appear. Aliases match on whole tokens; overlapping spans are claimed
// by the longer alias. Long tokens left unclaimed get a second chance
// against single-word aliases within one edit.
func (t *AliasTable) Extract(text string) []Entity {
	return t.extract(parseQuestion(text), true)
}

// Lookup resolves a string that is known to name a team, such as a form
// field. Capitalization rules do not apply.
func (t *AliasTable) Lookup(name string) (Entity, bool) {
	found := t.extract(parseQuestion(name), false)
	if len(found) == 0 {
		return Entity{}, false
	}
	return found[0], true
}

func (t *AliasTable) extract(q question, strict bool) []Entity {
	toks := q.toks
	admits := func(a alias, start int) bool {
		if !strict || a.rule == anyCase {
			return true
		}
		if q.cased == nil {
			return false
		}
		for k := start; k < start+len(a.words); k++ {
			if !a.rule.admits(q.cased[k]) {
				return false
			}
		}
		return true
	}

	claimed := make([]bool, len(toks))
	var hits []hit

	for _, a := range t.entries {
		n := len(a.words)
		for i := 0; i+n <= len(toks); i++ {
			if !spanFree(claimed, i, n) || !wordsEqual(toks[i:i+n], a.words) || !admits(a, i) {
				continue
			}
			for k := i; k < i+n; k++ {
				claimed[k] = true
			}
			hits = append(hits, hit{teamID: a.teamID, start: i})
		}
	}

	for i, tok := range toks {
		if claimed[i] || len(tok) < fuzzyMinLen {
			continue
		}
		if id, ok := t.fuzzyMatch(tok, func(a alias) bool { return admits(a, i) }); ok {
			claimed[i] = true
			hits = append(hits, hit{teamID: id, start: i})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].start < hits[j].start })

	out := make([]Entity, 0, MaxEntities)
	seen := make(map[int]bool)
	for _, h := range hits {
		if seen[h.teamID] {
			continue
		}
		seen[h.teamID] = true
		out = append(out, Entity{TeamID: h.teamID, Name: t.names[h.teamID]})
		if len(out) == MaxEntities {
			break
		}
	}
	return out
}

func (t *AliasTable) fuzzyMatch(tok string, admits func(alias) bool) (int, bool) {
	best, bestID := fuzzyMaxDistance+1, 0
	for _, a := range t.entries {
		if len(a.words) != 1 || len(a.words[0]) < fuzzyMinLen || !admits(a) {
			continue
		}
		d := fuzzy.LevenshteinDistance(tok, a.words[0])
		if d < best {
			best, bestID = d, a.teamID
		}
	}
	return bestID, best <= fuzzyMaxDistance
}

func spanFree(claimed []bool, start, n int) bool {
	for k := start; k < start+n; k++ {
		if claimed[k] {
			return false
		}
	}
	return true
}

func wordsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

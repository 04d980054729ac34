package query

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize lowercases s, strips diacritics and replaces everything that is
// not a letter or digit with a single space. "¿Peñarol-Nacional?" becomes
// "penarol nacional".
func Normalize(s string) string {
	return fold(s, true)
}

// foldCased is Normalize without the lowercasing. Its tokens line up one to
// one with the tokens of Normalize(s).
func foldCased(s string) string {
	return fold(s, false)
}

func fold(s string, lower bool) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}

	var b strings.Builder
	b.Grow(len(folded))
	space := true
	for _, r := range folded {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if lower {
				r = unicode.ToLower(r)
			}
			b.WriteRune(r)
			space = false
			continue
		}
		if !space {
			b.WriteByte(' ')
			space = true
		}
	}
	return strings.TrimRight(b.String(), " ")
}

// tokens splits a normalized string on spaces.
func tokens(normalized string) []string {
	return strings.Fields(normalized)
}

// question is a tokenized question. cased holds the same tokens as typed,
// minus diacritics, for aliases that only match a given capitalization.
type question struct {
	toks  []string
	cased []string
}

func parseQuestion(text string) question {
	q := question{toks: tokens(Normalize(text)), cased: tokens(foldCased(text))}
	if len(q.cased) != len(q.toks) {
		q.cased = nil
	}
	return q
}

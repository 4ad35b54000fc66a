package recipex

import (
	"regexp"
	"sort"
	"strings"
)

// Locale holds the parsing vocabulary for one language. The parsing
// algorithm itself is locale-independent; everything language-specific
// lives here as data (see the locale package for the shipped
// vocabularies).
type Locale struct {
	// Code is the ISO 639-1 language code ("it", "sv", ...).
	Code string

	// Units are the recognized unit tokens ("g", "cucchiai", "msk").
	// Multi-word units are allowed. Matching is longest-first, so a
	// short token like "l" never shadows "litro".
	Units []string

	// Prepositions are tokens stripped from the front of an ingredient
	// name after the unit ("di", "de", "d'", "of").
	Prepositions []string

	// Qualifiers are trailing phrases stripped during name cleanup
	// ("to taste", "a piacere", "podle chuti").
	Qualifiers []string

	// QuantityPhrases are leading qualitative quantities that replace a
	// numeric amount ("una manciata", "a handful of", "une pincée de").
	QuantityPhrases []string

	// Idioms rewrite compound quantity phrases that don't fit the
	// generic "amount unit name" shape before parsing, e.g. Italian
	// "1 cucchiaio e mezzo" -> "1.5 cucchiai".
	Idioms []Idiom
}

// Idiom rewrites a compound quantity phrase to a plain decimal quantity,
// followed by Unit when one is set. Pattern may capture a leading whole
// number as group 1; Add is the fraction the phrase contributes.
type Idiom struct {
	Pattern *regexp.Regexp
	Add     float64
	Unit    string
}

// Normalize prepares the locale for matching: unit, preposition and
// quantity-phrase lists are sorted longest-first. Load paths call this
// once; calling it again is harmless.
func (l *Locale) Normalize() {
	sortLongestFirst(l.Units)
	sortLongestFirst(l.Prepositions)
	sortLongestFirst(l.Qualifiers)
	sortLongestFirst(l.QuantityPhrases)
}

func sortLongestFirst(tokens []string) {
	sort.SliceStable(tokens, func(i, j int) bool {
		return len(tokens[i]) > len(tokens[j])
	})
}

// matchToken reports whether s starts with token (ASCII case-insensitive)
// followed by a token boundary, and returns the remainder after the token
// and any trailing abbreviation dot.
func matchToken(s, token string) (rest string, ok bool) {
	if len(s) < len(token) || !strings.EqualFold(s[:len(token)], token) {
		return "", false
	}
	rest = s[len(token):]

	// Tokens that end with an apostrophe ("d'") bind directly to the
	// following word.
	if strings.HasSuffix(token, "'") {
		return rest, true
	}

	// Allow an abbreviation dot ("msk.", "lb.").
	rest = strings.TrimPrefix(rest, ".")

	if rest == "" {
		return "", true
	}
	switch rest[0] {
	case ' ', '\t', ',', ';', ')':
		return strings.TrimLeft(rest, " \t"), true
	}
	return "", false
}

// matchAny tries tokens in order (callers pass longest-first lists) and
// returns the first match.
func matchAny(s string, tokens []string) (token, rest string, ok bool) {
	for _, t := range tokens {
		if r, matched := matchToken(s, t); matched {
			return t, r, true
		}
	}
	return "", "", false
}

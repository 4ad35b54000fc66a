// Package locale ships the per-language parsing vocabularies as embedded
// YAML files. The files are declarative data: adding a language means
// adding a file, not code.
package locale

import (
	"embed"
	"fmt"
	"path"
	"regexp"
	"sort"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/fwojciec/recipex"
)

//go:embed data/*.yaml
var dataFS embed.FS

// file mirrors the YAML document shape.
type file struct {
	Code            string   `yaml:"code"`
	Units           []string `yaml:"units"`
	Prepositions    []string `yaml:"prepositions"`
	Qualifiers      []string `yaml:"qualifiers"`
	QuantityPhrases []string `yaml:"quantity_phrases"`
	Idioms          []struct {
		Pattern string  `yaml:"pattern"`
		Add     float64 `yaml:"add"`
		Unit    string  `yaml:"unit"`
	} `yaml:"idioms"`
}

// Load reads the vocabulary for a language code and returns a normalized
// Locale ready for parsing. Returns ENOTFOUND for unknown codes.
func Load(code string) (*recipex.Locale, error) {
	raw, err := dataFS.ReadFile("data/" + code + ".yaml")
	if err != nil {
		return nil, recipex.Errorf(recipex.ENOTFOUND, "no vocabulary for locale %q", code)
	}

	var f file
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("locale %s: %w", code, err)
	}
	if f.Code != code {
		return nil, recipex.Errorf(recipex.EINVALID, "locale file %s declares code %q", code, f.Code)
	}

	loc := &recipex.Locale{
		Code:            f.Code,
		Units:           f.Units,
		Prepositions:    f.Prepositions,
		Qualifiers:      f.Qualifiers,
		QuantityPhrases: f.QuantityPhrases,
	}
	for _, idiom := range f.Idioms {
		re, err := regexp.Compile("(?i)" + idiom.Pattern)
		if err != nil {
			return nil, fmt.Errorf("locale %s: idiom %q: %w", code, idiom.Pattern, err)
		}
		loc.Idioms = append(loc.Idioms, recipex.Idiom{Pattern: re, Add: idiom.Add, Unit: idiom.Unit})
	}

	loc.Normalize()
	return loc, nil
}

// MustLoad is Load for vocabularies known to be embedded. It panics on
// error and exists for wiring and tests.
func MustLoad(code string) *recipex.Locale {
	loc, err := Load(code)
	if err != nil {
		panic(err)
	}
	return loc
}

// Codes returns the embedded language codes, sorted.
func Codes() []string {
	entries, err := dataFS.ReadDir("data")
	if err != nil {
		return nil
	}
	codes := make([]string, 0, len(entries))
	for _, e := range entries {
		codes = append(codes, strings.TrimSuffix(path.Base(e.Name()), ".yaml"))
	}
	sort.Strings(codes)
	return codes
}

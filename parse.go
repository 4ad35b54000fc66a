package recipex

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// minNameLength guards against section-header fragments slipping through
// name cleanup.
const minNameLength = 2

// Vulgar fraction glyphs don't tokenize cleanly with word boundaries, so
// they are substituted with decimal strings before any matching happens.
var vulgarFractions = map[rune]string{
	'½': "0.5", '¼': "0.25", '¾': "0.75",
	'⅓': "0.333", '⅔': "0.667",
	'⅛': "0.125", '⅜': "0.375", '⅝': "0.625", '⅞': "0.875",
	'⅕': "0.2", '⅖': "0.4", '⅗': "0.6", '⅘': "0.8",
}

var (
	quantityTokenRe = regexp.MustCompile(`^(\d+\s*/\s*\d+|\d+(?:[.,]\d+)?)\s*`)
	rangeRe         = regexp.MustCompile(`^(\d+(?:[.,]\d+)?)\s*[-–—]\s*(\d+(?:[.,]\d+)?)\s*`)
	parentheticalRe = regexp.MustCompile(`\([^)]*\)`)
	whitespaceRe    = regexp.MustCompile(`\s+`)
)

// ParseIngredient converts one raw ingredient text line into a structured
// Ingredient using the locale's vocabulary. It returns nil when the line
// is empty, a section header, or cleans down to nothing. It never fails:
// unrecognized units stay part of the name and unresolvable quantities
// leave the amount unset.
func ParseIngredient(line string, loc *Locale) *Ingredient {
	text := strings.TrimSpace(line)
	if text == "" {
		return nil
	}
	// Section headers ("Ingredienti:", "För degen:") are not ingredients.
	if strings.HasSuffix(text, ":") {
		return nil
	}

	// Fraction glyphs must be substituted before NFKC, which would
	// otherwise decompose them into digit + U+2044 sequences ("½" becomes
	// "1⁄2", and glued "1½" becomes "11⁄2").
	text = substituteFractions(text)
	text = norm.NFKC.String(text)
	// Pages that publish pre-decomposed fractions use U+2044, which the
	// quantity tokenizer reads as a plain fraction slash.
	text = strings.ReplaceAll(text, "⁄", "/")
	text = rewriteIdioms(text, loc)
	text = strings.TrimSpace(whitespaceRe.ReplaceAllString(text, " "))

	amount, rest := parseQuantity(text)

	// No numeric quantity: the line may open with a qualitative quantity
	// phrase ("una manciata di prezzemolo").
	if amount.IsZero() {
		if phrase, r, ok := matchAny(rest, loc.QuantityPhrases); ok {
			amount = QualitativeAmount(strings.ToLower(phrase))
			rest = r
		}
	}

	var units string
	if u, r, ok := matchAny(rest, loc.Units); ok {
		units = strings.ToLower(u)
		rest = r
	}

	name, qualifier := cleanName(rest, loc)
	if utf8.RuneCountInString(name) < minNameLength {
		return nil
	}

	// A trailing qualifier ("to taste", "q.b.") becomes the unit when the
	// line carries no real unit, and is dropped otherwise.
	if qualifier != "" && units == "" && amount.IsZero() {
		units = qualifier
	}

	return &Ingredient{Name: name, Amount: amount, Units: units}
}

// CleanName runs ingredient name cleanup on its own: parentheticals,
// trailing qualifier phrases, leading prepositions and trailing
// punctuation are removed and whitespace is collapsed. It is idempotent.
func CleanName(s string, loc *Locale) string {
	name, _ := cleanName(s, loc)
	return name
}

func cleanName(s string, loc *Locale) (name, qualifier string) {
	s = parentheticalRe.ReplaceAllString(s, " ")
	s = strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))

	s, qualifier = stripQualifiers(s, loc)

	// Prepositions can stack ("o di "), so strip repeatedly.
	for {
		if _, rest, ok := matchAny(s, loc.Prepositions); ok {
			s = rest
			continue
		}
		break
	}

	s = strings.TrimRight(s, " \t,;.")
	s = strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
	return s, qualifier
}

// stripQualifiers removes qualifier phrases anywhere in the string and
// returns the first one found, lowercased.
func stripQualifiers(s string, loc *Locale) (string, string) {
	var found string
	for _, q := range loc.Qualifiers {
		idx := indexFold(s, q)
		if idx < 0 {
			continue
		}
		// Phrase boundaries only: "qb" must not eat into "rabarber".
		if !isBoundary(s, idx, len(q)) {
			continue
		}
		if found == "" {
			found = strings.ToLower(s[idx : idx+len(q)])
		}
		s = strings.TrimSpace(s[:idx]) + " " + strings.TrimSpace(s[idx+len(q):])
		s = strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
	}
	return s, found
}

func indexFold(s, substr string) int {
	return strings.Index(strings.ToLower(s), strings.ToLower(substr))
}

func isBoundary(s string, idx, length int) bool {
	if idx > 0 && isWordByte(s[idx-1]) {
		return false
	}
	end := idx + length
	if end < len(s) && isWordByte(s[end]) {
		return false
	}
	return true
}

func isWordByte(b byte) bool {
	return b == '_' || b >= 0x80 ||
		('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z') || ('0' <= b && b <= '9')
}

// substituteFractions replaces Unicode vulgar fractions with decimal
// strings. A glyph glued to a preceding digit ("1½") becomes a mixed
// number ("1 0.5") which parseQuantity sums.
func substituteFractions(s string) string {
	var b strings.Builder
	prevDigit := false
	for _, r := range s {
		if dec, ok := vulgarFractions[r]; ok {
			if prevDigit {
				b.WriteByte(' ')
			}
			b.WriteString(dec)
			prevDigit = false
			continue
		}
		b.WriteRune(r)
		prevDigit = r >= '0' && r <= '9'
	}
	return b.String()
}

func rewriteIdioms(s string, loc *Locale) string {
	for _, idiom := range loc.Idioms {
		add, unit := idiom.Add, idiom.Unit
		s = idiom.Pattern.ReplaceAllStringFunc(s, func(m string) string {
			base := 0.0
			groups := idiom.Pattern.FindStringSubmatch(m)
			if len(groups) > 1 && groups[1] != "" {
				if n, err := strconv.ParseFloat(groups[1], 64); err == nil {
					base = n
				}
			}
			out := strconv.FormatFloat(base+add, 'g', -1, 64)
			if unit != "" {
				out += " " + unit
			}
			return out
		})
	}
	return s
}

// parseQuantity matches a leading quantity segment and resolves it to a
// single number: decimals (comma or period separator), fractions a/b,
// mixed numbers ("1 1/2", and "1 0.5" from glyph substitution) and ranges
// ("2-3", resolved to the midpoint). Resolution failures leave the amount
// unset and the text untouched.
func parseQuantity(s string) (Amount, string) {
	if m := rangeRe.FindStringSubmatch(s); m != nil {
		lo, err1 := parseDecimal(m[1])
		hi, err2 := parseDecimal(m[2])
		if err1 == nil && err2 == nil {
			return AmountOf((lo + hi) / 2), s[len(m[0]):]
		}
		return Amount{}, s
	}

	total := 0.0
	matched := false
	rest := s
	for {
		m := quantityTokenRe.FindStringSubmatch(rest)
		if m == nil {
			break
		}
		v, err := parseNumberToken(m[1])
		if err != nil {
			// A malformed token (like "1/0") poisons the whole segment.
			return Amount{}, s
		}
		total += v
		matched = true
		rest = rest[len(m[0]):]
	}
	if !matched {
		return Amount{}, s
	}
	return AmountOf(total), rest
}

func parseNumberToken(tok string) (float64, error) {
	if num, denom, ok := strings.Cut(tok, "/"); ok {
		n, err := parseDecimal(strings.TrimSpace(num))
		if err != nil {
			return 0, err
		}
		d, err := parseDecimal(strings.TrimSpace(denom))
		if err != nil {
			return 0, err
		}
		if d == 0 {
			return 0, Errorf(EUNPROCESSABLE, "zero denominator in %q", tok)
		}
		return n / d, nil
	}
	return parseDecimal(tok)
}

func parseDecimal(s string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
}

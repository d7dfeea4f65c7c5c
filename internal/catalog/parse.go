package catalog

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"carquiz/internal/lexicon"
)

var yearPattern = regexp.MustCompile(`^(19|20)\d{2}$`)

const (
	minYear = 1950
	maxYear = 2035
)

// ParseStem extracts make, model, and year from a filename stem such as
// "ford_mustang_gt_2018_01". The stem is split on underscores; the first
// in-range year token ends the metadata region. Returns false when the
// stem carries no year, the year leads the stem, or no model tokens
// remain after the make.
func ParseStem(stem string, lex *lexicon.Lexicon) (Record, bool) {
	tokens := strings.Split(stem, "_")
	yearIdx := findYearIndex(tokens)
	if yearIdx <= 0 {
		return Record{}, false
	}

	preYear := tokens[:yearIdx]
	makeName, consumed := lex.Resolve(preYear)
	if makeName == "" {
		// Unresolvable manufacturers keep the first token verbatim,
		// humanized. This can fabricate a make that matches no alias.
		makeName = humanizeToken(preYear[0])
		consumed = 1
	}

	modelTokens := preYear[consumed:]
	if len(modelTokens) == 0 {
		return Record{}, false
	}

	year, err := strconv.Atoi(tokens[yearIdx])
	if err != nil {
		return Record{}, false
	}
	return Record{
		Make:  makeName,
		Model: humanizeTokens(modelTokens),
		Year:  year,
	}, true
}

// findYearIndex returns the index of the first token that looks like a
// model year within [1950, 2035], or -1 when none qualifies.
func findYearIndex(tokens []string) int {
	for idx, token := range tokens {
		if !yearPattern.MatchString(token) {
			continue
		}
		year, err := strconv.Atoi(token)
		if err != nil {
			continue
		}
		if year >= minYear && year <= maxYear {
			return idx
		}
	}
	return -1
}

func humanizeTokens(tokens []string) string {
	parts := make([]string, 0, len(tokens))
	for _, token := range tokens {
		parts = append(parts, humanizeToken(token))
	}
	return strings.Join(parts, " ")
}

// humanizeToken converts a raw filename token into display case.
// Acronyms, numbers, and short all-caps trim levels pass through
// unchanged; everything else drops hyphens and capitalizes each part.
func humanizeToken(token string) string {
	if isUpperToken(token) || isDigitToken(token) {
		return token
	}
	if len(token) <= 3 && token == strings.ToUpper(token) {
		return token
	}
	cleaned := strings.ReplaceAll(token, "-", " ")
	parts := strings.Split(cleaned, " ")
	for i, part := range parts {
		parts[i] = capitalize(part)
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}

// isUpperToken reports whether a token has at least one cased rune and
// no lowercase runes, mirroring a case-insensitive acronym check.
func isUpperToken(token string) bool {
	cased := false
	for _, r := range token {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			cased = true
		}
	}
	return cased
}

func isDigitToken(token string) bool {
	if token == "" {
		return false
	}
	for _, r := range token {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// capitalize upper-cases the first rune and lower-cases the remainder.
func capitalize(part string) string {
	if part == "" {
		return ""
	}
	first, size := utf8.DecodeRuneInString(part)
	return string(unicode.ToUpper(first)) + strings.ToLower(part[size:])
}

package lexicon

import (
	"regexp"
	"strings"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// NormalizeName lowercases a name and collapses runs of non-alphanumeric
// characters into single spaces, trimming the ends.
func NormalizeName(value string) string {
	return strings.TrimSpace(nonAlphanumeric.ReplaceAllString(strings.ToLower(value), " "))
}

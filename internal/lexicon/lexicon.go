// Package lexicon maps manufacturer aliases to canonical make names.
package lexicon

import "strings"

// Lexicon resolves manufacturer aliases to canonical make names. The
// alias lookup is derived once at construction and never mutated.
type Lexicon struct {
	makes       map[string][]string
	aliasLookup map[string]string
}

// maxWindow bounds the number of consecutive tokens a make name can span.
const maxWindow = 3

// New builds a lexicon from a canonical-make to alias-list mapping.
// Every canonical name registers as its own alias so direct matches
// always resolve. Unknown names are accepted verbatim.
func New(makes map[string][]string) *Lexicon {
	lookup := make(map[string]string)
	for canonical, aliases := range makes {
		for _, alias := range aliases {
			lookup[NormalizeName(alias)] = canonical
		}
		lookup[NormalizeName(canonical)] = canonical
	}
	return &Lexicon{makes: makes, aliasLookup: lookup}
}

// Resolve attempts to match a manufacturer over a sequence of tokens.
// It tries consecutive-token windows of decreasing size, so a two-token
// brand ("land rover") is never shadowed by a shorter partial match.
// Returns the canonical make and the number of tokens consumed, or
// ("", 0) when no window matches.
func (l *Lexicon) Resolve(tokens []string) (string, int) {
	window := len(tokens)
	if window > maxWindow {
		window = maxWindow
	}
	for size := window; size >= 1; size-- {
		candidate := NormalizeName(strings.Join(tokens[:size], " "))
		if canonical, ok := l.aliasLookup[candidate]; ok {
			return canonical, size
		}
	}
	return "", 0
}

// Makes returns the canonical-make to alias-list mapping backing the lexicon.
func (l *Lexicon) Makes() map[string][]string {
	return l.makes
}

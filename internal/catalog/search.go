package catalog

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// maxNameDistance is the edit-distance ratio above which a name is not
// considered a typo of the query.
const maxNameDistance = 0.4

// SearchByName returns providers whose name matches the query, preserving
// input order. Matching is case-insensitive: substring matches first, with
// an edit-distance fallback so small typos still hit. An empty query
// matches everything.
func SearchByName(providers []Provider, query string) []Provider {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		out := make([]Provider, len(providers))
		copy(out, providers)
		return out
	}
	out := make([]Provider, 0, len(providers))
	for _, p := range providers {
		if nameMatches(strings.ToLower(p.Name), q) {
			out = append(out, p)
		}
	}
	return out
}

func nameMatches(name, query string) bool {
	if strings.Contains(name, query) {
		return true
	}
	// Compare against each word so "plumbr" still finds "Ace Plumbing Co".
	for _, word := range strings.Fields(name) {
		dist := levenshtein.ComputeDistance(word, query)
		maxlen := len(word)
		if len(query) > maxlen {
			maxlen = len(query)
		}
		if maxlen > 0 && float64(dist)/float64(maxlen) < maxNameDistance {
			return true
		}
	}
	return false
}

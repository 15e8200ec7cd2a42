package tui

import (
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"

	"github.com/jask/scholarmatch/internal/api"
)

// maxEditDistance bounds the fuzzy match. Two edits absorbs most typos
// without matching everything in the list.
const maxEditDistance = 2

// minFuzzyLen is the shortest query eligible for fuzzy matching. Below this
// the filter is substring-only, since one- and two-letter queries sit within
// two edits of nearly every word.
const minFuzzyLen = 3

// filteredRecs returns the recommendations matching the active filter query,
// or the full set when the query is empty.
func (a *App) filteredRecs() []api.Recommendation {
	q := strings.TrimSpace(a.filterQuery)
	if q == "" {
		return a.recs
	}
	out := make([]api.Recommendation, 0, len(a.recs))
	for _, r := range a.recs {
		if matchesQuery(r, q) {
			out = append(out, r)
		}
	}
	return out
}

// matchesQuery checks the title and field of a recommendation against the
// query, first by substring, then fuzzily per word.
func matchesQuery(r api.Recommendation, q string) bool {
	q = strings.ToLower(q)
	for _, text := range []string{r.Title, r.Field} {
		text = strings.ToLower(text)
		if strings.Contains(text, q) {
			return true
		}
		if fuzzyWordMatch(text, q) {
			return true
		}
	}
	return false
}

func fuzzyWordMatch(text, q string) bool {
	if len(q) < minFuzzyLen {
		return false
	}
	words := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
	for _, w := range words {
		if levenshtein.ComputeDistance(w, q) <= maxEditDistance {
			return true
		}
	}
	return false
}

package match

import (
	"cmp"
	"slices"
)

// DefaultThreshold is the minimum similarity for a suggestion.
const DefaultThreshold = 0.6

// Candidate is a scored name.
type Candidate struct {
	Name  string
	Score float64
}

// Rank scores every candidate against target, best first. Ties keep the
// candidates' input order. Duplicates are scored once.
func Rank(target string, candidates []string) []Candidate {
	out := make([]Candidate, 0, len(candidates))
	seen := make(map[string]bool, len(candidates))

	for _, c := range candidates {
		if seen[c] {
			continue
		}

		seen[c] = true

		out = append(out, Candidate{Name: c, Score: Similarity(target, c)})
	}

	slices.SortStableFunc(out, func(a, b Candidate) int {
		return cmp.Compare(b.Score, a.Score)
	})

	return out
}

// Closest returns the best candidate scoring at least threshold. An exact
// match of target itself is never suggested.
func Closest(target string, candidates []string, threshold float64) (string, bool) {
	for _, c := range Rank(target, candidates) {
		if c.Name == target {
			continue
		}

		if c.Score < threshold {
			return "", false
		}

		return c.Name, true
	}

	return "", false
}

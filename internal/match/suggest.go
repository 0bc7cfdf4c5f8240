package match

import (
	"cmp"
	"slices"
)

// DefaultMinScore is the similarity below which Suggest drops a candidate.
const DefaultMinScore = 0.6

// Suggest returns the candidates resembling name, best match first.
// Candidates scoring under minScore are left out; ties keep input order.
func Suggest(name string, candidates []string, minScore float64) []string {
	type scored struct {
		value string
		score float64
	}

	var ranked []scored

	for _, c := range candidates {
		if s := Similarity(name, c); s >= minScore {
			ranked = append(ranked, scored{value: c, score: s})
		}
	}

	slices.SortStableFunc(ranked, func(a, b scored) int {
		return cmp.Compare(b.score, a.score)
	})

	out := make([]string, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, r.value)
	}

	return out
}

package result

import (
	"cmp"
	"slices"
)

// ByCategory returns the recommendations of category c in generation order.
func (r Result) ByCategory(c Category) []Recommendation {
	return filter(r.Recommendations, func(rec Recommendation) bool { return rec.Category == c })
}

// ByPriority returns the recommendations of priority p in generation order.
func (r Result) ByPriority(p Priority) []Recommendation {
	return filter(r.Recommendations, func(rec Recommendation) bool { return rec.Priority == p })
}

// Critical returns the critical recommendations in generation order.
func (r Result) Critical() []Recommendation { return r.ByPriority(Critical) }

// HighPriority returns the high priority recommendations in generation order.
func (r Result) HighPriority() []Recommendation { return r.ByPriority(High) }

// Sorted returns all recommendations ordered by priority, then impact.
func (r Result) Sorted() []Recommendation {
	return SortRecommendations(r.Recommendations)
}

// ImprovementsByTimeframe returns the improvements planned for tf.
func (r Result) ImprovementsByTimeframe(tf Timeframe) []Improvement {
	return filter(r.Improvements, func(imp Improvement) bool { return imp.Timeframe == tf })
}

// SortRecommendations returns a copy of recs, stably sorted by priority
// descending and then impact score descending.
func SortRecommendations(recs []Recommendation) []Recommendation {
	out := slices.Clone(recs)
	slices.SortStableFunc(out, func(a, b Recommendation) int {
		if c := cmp.Compare(b.Priority.Rank(), a.Priority.Rank()); c != 0 {
			return c
		}
		return cmp.Compare(b.ImpactScore, a.ImpactScore)
	})
	return out
}

func filter[T any](in []T, keep func(T) bool) []T {
	var out []T
	for _, v := range in {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}

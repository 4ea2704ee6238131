// Package evaluator turns a taxonomy into a Result: it scores every
// dimension, runs the recommendation and improvement rules and renders the
// summary.
package evaluator

import (
	"time"

	"github.com/google/uuid"

	"github.com/idlab-discover/dt-taxonomy-cli/internal/result"
	"github.com/idlab-discover/dt-taxonomy-cli/internal/rules"
	"github.com/idlab-discover/dt-taxonomy-cli/internal/scoring"
	"github.com/idlab-discover/dt-taxonomy-cli/internal/taxonomy"
)

// Evaluator holds the only two impure inputs of an evaluation. Nil fields
// fall back to time.Now and uuid.NewString.
type Evaluator struct {
	Now   func() time.Time
	NewID func() string
}

// Evaluate builds the Result for t.
func (e Evaluator) Evaluate(t taxonomy.Taxonomy) result.Result {
	now, newID := e.Now, e.NewID
	if now == nil {
		now = time.Now
	}
	if newID == nil {
		newID = uuid.NewString
	}

	res := result.Result{
		DimensionScores: scoring.ScoreAll(t),
		Recommendations: rules.Recommend(t, newID),
		Improvements:    rules.Improve(t, newID),
		GeneratedAt:     now(),
	}
	res.RecalculateOverall()
	res.GenerateSummary()

	logf("overall %.1f, %d recommendations, %d improvements",
		res.OverallMaturityScore, len(res.Recommendations), len(res.Improvements))
	return res
}

// Evaluate builds the Result for t using the wall clock and random ids.
func Evaluate(t taxonomy.Taxonomy) result.Result {
	return Evaluator{}.Evaluate(t)
}

// Package result holds the outcome of evaluating a taxonomy: per-dimension
// scores, the overall maturity score, recommendations and improvements.
//
// A Result is built once by the evaluator and then only read. The query
// methods return fresh slices and never modify the receiver.
package result

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/idlab-discover/dt-taxonomy-cli/internal/scoring"
	"github.com/idlab-discover/dt-taxonomy-cli/internal/taxonomy"
)

// Category classifies a recommendation.
type Category string

const (
	Technical   Category = "Technical"
	Operational Category = "Operational"
	Strategic   Category = "Strategic"
	Security    Category = "Security"
	Compliance  Category = "Compliance"
	Investment  Category = "Investment"
)

// Priority of a recommendation. Higher Rank sorts first.
type Priority string

const (
	Critical Priority = "Critical"
	High     Priority = "High"
	Medium   Priority = "Medium"
	Low      Priority = "Low"
)

// Rank orders priorities: Critical 4, High 3, Medium 2, Low 1, unknown 0.
func (p Priority) Rank() int {
	switch p {
	case Critical:
		return 4
	case High:
		return 3
	case Medium:
		return 2
	case Low:
		return 1
	}
	return 0
}

// Timeframe is the intervention horizon of a recommendation or improvement.
type Timeframe string

const (
	Immediate Timeframe = "Immediate"
	ShortTerm Timeframe = "Short-term"
	MidTerm   Timeframe = "Mid-term"
	LongTerm  Timeframe = "Long-term"
)

// Recommendation is an action suggested for a taxonomy.
type Recommendation struct {
	ID                  string               `json:"id"`
	Title               string               `json:"title"`
	Description         string               `json:"description"`
	Category            Category             `json:"category"`
	Priority            Priority             `json:"priority"`
	InterventionType    Timeframe            `json:"interventionType"`
	EstimatedCost       string               `json:"estimatedCost,omitempty"`
	ExpectedBenefits    []string             `json:"expectedBenefits"`
	ImplementationSteps []string             `json:"implementationSteps"`
	RiskFactors         []string             `json:"riskFactors"`
	RelatedDimensions   []taxonomy.Dimension `json:"relatedDimensions"`
	FeasibilityScore    float64              `json:"feasibilityScore"`
	ImpactScore         float64              `json:"impactScore"`
}

// Improvement proposes moving one dimension from its current state to a
// better one.
type Improvement struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	TargetDimension string    `json:"targetDimension"`
	CurrentState    string    `json:"currentState"`
	ProposedState   string    `json:"proposedState"`
	Justification   string    `json:"justification"`
	Prerequisites   []string  `json:"prerequisites"`
	SuccessMetrics  []string  `json:"successMetrics"`
	Timeframe       Timeframe `json:"timeframe"`
}

// Result is the evaluation of one taxonomy.
type Result struct {
	DimensionScores      map[taxonomy.Dimension]float64 `json:"dimensionScores"`
	OverallMaturityScore float64                        `json:"overallMaturityScore"`
	Recommendations      []Recommendation               `json:"recommendations"`
	Improvements         []Improvement                  `json:"improvements"`
	Summary              string                         `json:"summary"`
	GeneratedAt          time.Time                      `json:"generatedAt"`
}

// RecalculateOverall sets OverallMaturityScore to the mean of DimensionScores,
// or 0 when there are none.
func (r *Result) RecalculateOverall() {
	r.OverallMaturityScore = scoring.Overall(r.DimensionScores)
}

const overallTolerance = 1e-9

// Validate checks that every dimension is scored exactly once within
// [0,100] and that the overall score is their mean.
func (r Result) Validate() error {
	var errs []error
	if len(r.DimensionScores) != len(taxonomy.Dimensions()) {
		errs = append(errs, fmt.Errorf("expected %d dimension scores, got %d", len(taxonomy.Dimensions()), len(r.DimensionScores)))
	}
	for _, d := range taxonomy.Dimensions() {
		s, ok := r.DimensionScores[d]
		if !ok {
			errs = append(errs, fmt.Errorf("missing score for %s", d))
			continue
		}
		if s < 0 || s > 100 || math.IsNaN(s) {
			errs = append(errs, fmt.Errorf("score for %s out of range: %v", d, s))
		}
	}
	for d := range r.DimensionScores {
		if !d.Known() {
			errs = append(errs, fmt.Errorf("unknown dimension %q", d))
		}
	}
	if len(r.DimensionScores) > 0 {
		mean := scoring.Overall(r.DimensionScores)
		if math.Abs(mean-r.OverallMaturityScore) > overallTolerance {
			errs = append(errs, fmt.Errorf("overall score %v does not match mean %v", r.OverallMaturityScore, mean))
		}
	}
	return errors.Join(errs...)
}

// Package assess gates a taxonomy evaluation against acceptance criteria so
// it can be used from scripts and CI pipelines.
package assess

import (
	"fmt"

	"github.com/idlab-discover/dt-taxonomy-cli/internal/evaluator"
	"github.com/idlab-discover/dt-taxonomy-cli/internal/result"
	"github.com/idlab-discover/dt-taxonomy-cli/internal/taxonomy"
)

type Assessment struct {
	Valid    bool
	Errors   []string
	Warnings []string

	Result result.Result

	// Dimensions left without a selection.
	Unset []taxonomy.Dimension
}

type Options struct {
	StrictMode      bool    // Fail on unset dimensions and critical recommendations
	MinOverallScore float64 // Minimum acceptable overall maturity (0-100)
}

// Assess evaluates t and checks the result against opts.
func Assess(t taxonomy.Taxonomy, opts Options) Assessment {
	return Check(t, evaluator.Evaluate(t), opts)
}

// Check applies opts to an existing evaluation of t.
func Check(t taxonomy.Taxonomy, res result.Result, opts Options) Assessment {
	a := Assessment{
		Valid:    true,
		Errors:   []string{},
		Warnings: []string{},
		Result:   res,
	}

	if err := t.Validate(); err != nil {
		a.Valid = false
		a.Errors = append(a.Errors, fmt.Sprintf("invalid taxonomy: %v", err))
		return a
	}

	for _, d := range taxonomy.Dimensions() {
		if len(t.Selected(d)) == 0 {
			a.Unset = append(a.Unset, d)
		}
	}

	if res.OverallMaturityScore < opts.MinOverallScore {
		a.Valid = false
		a.Errors = append(a.Errors, fmt.Sprintf("overall maturity %.1f below minimum %.1f", res.OverallMaturityScore, opts.MinOverallScore))
	}

	for _, d := range a.Unset {
		msg := fmt.Sprintf("dimension not set: %s", d)
		if opts.StrictMode {
			a.Valid = false
			a.Errors = append(a.Errors, msg)
		} else {
			a.Warnings = append(a.Warnings, msg)
		}
	}

	for _, rec := range res.Critical() {
		msg := fmt.Sprintf("critical recommendation: %s", rec.Title)
		if opts.StrictMode {
			a.Valid = false
			a.Errors = append(a.Errors, msg)
		} else {
			a.Warnings = append(a.Warnings, msg)
		}
	}

	return a
}

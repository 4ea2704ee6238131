package scoring

import (
	"math"
	"slices"

	"github.com/idlab-discover/dt-taxonomy-cli/internal/taxonomy"
)

// MaxScore is the upper bound of every dimension score.
const MaxScore = 100.0

// DimensionSpec is the scoring rule of one dimension: a pure function from a
// Taxonomy to a maturity score in [0, MaxScore].
type DimensionSpec struct {
	Dimension taxonomy.Dimension
	Score     func(t taxonomy.Taxonomy) float64
}

// Registry is the single source of truth for how each dimension is scored.
// Specs are listed in dimension order.
func Registry() []DimensionSpec {
	return []DimensionSpec{
		{
			Dimension: taxonomy.DimDataLink,
			Score: func(t taxonomy.Taxonomy) float64 {
				return level(t.DataLink, 50, map[taxonomy.DataLink]float64{
					taxonomy.ClosedLoopActuation: 100,
					taxonomy.BiDirectional:       80,
				})
			},
		},
		{
			Dimension: taxonomy.DimFunctionalRole,
			Score: func(t taxonomy.Taxonomy) float64 {
				bonus := 0.0
				if slices.Contains(t.FunctionalRole, taxonomy.CybersecurityAndThreatDetection) {
					bonus = 20
				}
				return coverage(len(t.FunctionalRole), 5, bonus)
			},
		},
		{
			Dimension: taxonomy.DimSynchronizationFrequency,
			Score: func(t taxonomy.Taxonomy) float64 {
				return level(t.SynchronizationFrequency, 40, map[taxonomy.SynchronizationFrequency]float64{
					taxonomy.RealTime:     100,
					taxonomy.NearRealTime: 80,
					taxonomy.Asynchronous: 60,
				})
			},
		},
		{
			Dimension: taxonomy.DimIntelligenceLevel,
			Score: func(t taxonomy.Taxonomy) float64 {
				return level(t.IntelligenceLevel, 30, map[taxonomy.IntelligenceLevel]float64{
					taxonomy.CognitiveDT:             100,
					taxonomy.SelfLearningDT:          85,
					taxonomy.DataDrivenAdaptiveModel: 65,
				})
			},
		},
		{
			Dimension: taxonomy.DimModelGranularity,
			Score: func(t taxonomy.Taxonomy) float64 {
				return level(t.ModelGranularity, 40, map[taxonomy.ModelGranularity]float64{
					taxonomy.MultiLayered:    100,
					taxonomy.EnterpriseLevel: 80,
					taxonomy.SystemLevel:     60,
				})
			},
		},
		{
			Dimension: taxonomy.DimDataArchitecture,
			Score: func(t taxonomy.Taxonomy) float64 {
				return level(t.DataArchitecture, 50, map[taxonomy.DataArchitecture]float64{
					taxonomy.BlockchainEnabledDataGovernance: 100,
					taxonomy.FederatedDTArchitecture:         90,
					taxonomy.CloudIntegratedDT:               70,
				})
			},
		},
		{
			Dimension: taxonomy.DimInterfaceTypes,
			Score: func(t taxonomy.Taxonomy) float64 {
				bonus := 0.0
				if slices.Contains(t.InterfaceTypes, taxonomy.MultiAgentInteraction) {
					bonus = 15
				}
				return coverage(len(t.InterfaceTypes), 3, bonus)
			},
		},
		{
			Dimension: taxonomy.DimLifecyclePositioning,
			Score: func(t taxonomy.Taxonomy) float64 {
				return level(t.LifecyclePositioning, 50, map[taxonomy.LifecyclePositioning]float64{
					taxonomy.LifecycleIntegratedDT:   100,
					taxonomy.SimultaneousDevelopment: 85,
					taxonomy.DTBeforePhysical:        70,
				})
			},
		},
		{
			Dimension: taxonomy.DimApplicationDomain,
			Score: func(t taxonomy.Taxonomy) float64 {
				return coverage(len(t.ApplicationDomain), 6, 0)
			},
		},
		{
			Dimension: taxonomy.DimSecurityIntegration,
			Score: func(t taxonomy.Taxonomy) float64 {
				bonus := 0.0
				if slices.Contains(t.SecurityIntegration, taxonomy.ActiveDefence) ||
					slices.Contains(t.SecurityIntegration, taxonomy.ResilienceTestingAndRecoveryPlanning) {
					bonus = 20
				}
				return coverage(len(t.SecurityIntegration), 3, bonus)
			},
		},
	}
}

var specByDimension = func() map[taxonomy.Dimension]DimensionSpec {
	m := make(map[taxonomy.Dimension]DimensionSpec)
	for _, spec := range Registry() {
		m[spec.Dimension] = spec
	}
	return m
}()

// Score returns the maturity score of one dimension. It is defined for every
// Taxonomy; a dimension outside the vocabulary scores 0.
func Score(t taxonomy.Taxonomy, d taxonomy.Dimension) float64 {
	spec, ok := specByDimension[d]
	if !ok {
		logf("unknown dimension %q scored 0", d)
		return 0
	}
	return spec.Score(t)
}

// ScoreAll scores every dimension. The map always holds all ten keys.
func ScoreAll(t taxonomy.Taxonomy) map[taxonomy.Dimension]float64 {
	scores := make(map[taxonomy.Dimension]float64, len(specByDimension))
	for _, spec := range Registry() {
		scores[spec.Dimension] = spec.Score(t)
	}
	return scores
}

// Overall is the arithmetic mean of the given scores, 0 when there are none.
// Scores are summed in dimension order so the result is bit-for-bit stable.
func Overall(scores map[taxonomy.Dimension]float64) float64 {
	if len(scores) == 0 {
		return 0
	}
	var sum float64
	for _, d := range orderedKeys(scores) {
		sum += scores[d]
	}
	return sum / float64(len(scores))
}

// orderedKeys lists the known dimensions of scores in dimension order,
// followed by any unknown keys sorted by name.
func orderedKeys(scores map[taxonomy.Dimension]float64) []taxonomy.Dimension {
	keys := make([]taxonomy.Dimension, 0, len(scores))
	for _, d := range taxonomy.Dimensions() {
		if _, ok := scores[d]; ok {
			keys = append(keys, d)
		}
	}
	if len(keys) == len(scores) {
		return keys
	}
	var extra []taxonomy.Dimension
	for d := range scores {
		if !d.Known() {
			extra = append(extra, d)
		}
	}
	slices.Sort(extra)
	return append(keys, extra...)
}

// level scores a single-select dimension: unset is 0, listed values take
// their table score, any other set value takes fallback.
func level[T ~int](v T, fallback float64, table map[T]float64) float64 {
	if v == 0 {
		return 0
	}
	if s, ok := table[v]; ok {
		return s
	}
	return fallback
}

// coverage scores a multi-select dimension by the share of values selected,
// adding bonus when the selection is non-empty. The result is capped.
func coverage(selected, total int, bonus float64) float64 {
	base := math.Min(MaxScore*float64(selected)/float64(total), MaxScore)
	if bonus == 0 {
		return base
	}
	return math.Min(base+bonus, MaxScore)
}

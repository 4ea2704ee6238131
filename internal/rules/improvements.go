package rules

import (
	"slices"

	"github.com/idlab-discover/dt-taxonomy-cli/internal/result"
	"github.com/idlab-discover/dt-taxonomy-cli/internal/taxonomy"
)

// ImprovementRule emits Template when When holds. CurrentState, when set,
// computes the current-state label from the taxonomy instead of using the
// template's fixed text.
type ImprovementRule struct {
	Key          string
	When         func(t taxonomy.Taxonomy) bool
	Template     result.Improvement
	CurrentState func(t taxonomy.Taxonomy) string
}

// ImprovementRegistry returns the improvement rules in emission order. Their
// predicates are disjoint per dimension, so at most one improvement targets
// each dimension.
func ImprovementRegistry() []ImprovementRule {
	return []ImprovementRule{
		{
			Key:  "bidirectional-communication",
			When: func(t taxonomy.Taxonomy) bool { return t.DataLink == taxonomy.OneDirectional },
			Template: result.Improvement{
				Title:           "Enable Bidirectional Communication",
				Description:     "Upgrade data link to support bidirectional communication for enhanced control capabilities.",
				TargetDimension: taxonomy.DimDataLink.Label(),
				CurrentState:    taxonomy.OneDirectional.Label(),
				ProposedState:   taxonomy.BiDirectional.Label(),
				Justification:   "Bidirectional communication enables control feedback loops and advanced automation capabilities.",
				Prerequisites:   []string{"Network infrastructure upgrade", "Security framework implementation"},
				SuccessMetrics:  []string{"Control response time < 100ms", "Successful feedback loop implementation", "99.9% communication reliability"},
				Timeframe:       result.ShortTerm,
			},
		},
		{
			Key:  "machine-learning",
			When: staticOrUnsetIntelligence,
			Template: result.Improvement{
				Title:           "Implement Machine Learning Capabilities",
				Description:     "Upgrade from static models to adaptive machine learning-based intelligence.",
				TargetDimension: taxonomy.DimIntelligenceLevel.Label(),
				ProposedState:   taxonomy.DataDrivenAdaptiveModel.Label(),
				Justification:   "ML capabilities enable dynamic adaptation to changing conditions and improved prediction accuracy.",
				Prerequisites:   []string{"Data collection infrastructure", "ML platform setup", "Training data preparation"},
				SuccessMetrics:  []string{"Model adaptation frequency daily", "Prediction accuracy > 95%", "Autonomous learning cycles"},
				Timeframe:       result.MidTerm,
			},
			CurrentState: func(t taxonomy.Taxonomy) string {
				if t.IntelligenceLevel == 0 {
					return "Not defined"
				}
				return t.IntelligenceLevel.Label()
			},
		},
		{
			Key:  "security-monitoring",
			When: func(t taxonomy.Taxonomy) bool { return len(t.SecurityIntegration) == 0 },
			Template: result.Improvement{
				Title:           "Establish Security Monitoring",
				Description:     "Implement comprehensive cyber-physical security monitoring and threat detection.",
				TargetDimension: taxonomy.DimSecurityIntegration.Label(),
				CurrentState:    "No security integration",
				ProposedState:   "Passive monitoring with active defense",
				Justification:   "Security integration is critical for protecting against cyber-physical threats in power grid systems.",
				Prerequisites:   []string{"Security assessment", "Monitoring infrastructure", "Response procedures"},
				SuccessMetrics:  []string{"24/7 monitoring coverage", "Threat detection accuracy > 98%", "Response time < 5 minutes"},
				Timeframe:       result.Immediate,
			},
		},
	}
}

// Improve returns the improvements of every matching rule. newID is called
// once per emitted improvement.
func Improve(t taxonomy.Taxonomy, newID func() string) []result.Improvement {
	var out []result.Improvement
	for _, rule := range ImprovementRegistry() {
		if !rule.When(t) {
			continue
		}
		imp := rule.Template
		imp.Prerequisites = slices.Clone(imp.Prerequisites)
		imp.SuccessMetrics = slices.Clone(imp.SuccessMetrics)
		if rule.CurrentState != nil {
			imp.CurrentState = rule.CurrentState(t)
		}
		imp.ID = newID()
		logf("rule %s matched: %s (id=%s)", rule.Key, imp.Title, imp.ID)
		out = append(out, imp)
	}
	return out
}

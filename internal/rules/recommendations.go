// Package rules derives recommendations and improvements from a taxonomy.
//
// Each rule pairs a predicate over the taxonomy with a fixed template. Rules
// are independent: none reads the output of another, so the result of
// Recommend or Improve is the templates of every matching rule, in registry
// order, each stamped with a fresh identifier.
package rules

import (
	"slices"

	"github.com/idlab-discover/dt-taxonomy-cli/internal/result"
	"github.com/idlab-discover/dt-taxonomy-cli/internal/taxonomy"
)

// Group names the dimension a recommendation rule belongs to.
type Group string

const (
	GroupDataLink     Group = "data-link"
	GroupIntelligence Group = "intelligence"
	GroupSecurity     Group = "security"
	GroupArchitecture Group = "architecture"
)

// RecommendationRule emits Template when When holds.
type RecommendationRule struct {
	Key      string
	Group    Group
	When     func(t taxonomy.Taxonomy) bool
	Template result.Recommendation
}

// RecommendationRegistry returns the recommendation rules in emission order.
func RecommendationRegistry() []RecommendationRule {
	return []RecommendationRule{
		{
			Key:   "establish-data-link",
			Group: GroupDataLink,
			When:  func(t taxonomy.Taxonomy) bool { return t.DataLink == 0 },
			Template: result.Recommendation{
				Title:               "Establish Data Link Architecture",
				Description:         "Define and implement a data communication strategy between physical and digital systems.",
				Category:            result.Technical,
				Priority:            result.Critical,
				InterventionType:    result.Immediate,
				EstimatedCost:       "$50,000 - $200,000",
				ExpectedBenefits:    []string{"Enable basic digital twin functionality", "Establish foundation for advanced features"},
				ImplementationSteps: []string{"Assess current data infrastructure", "Design communication protocols", "Implement data links"},
				RiskFactors:         []string{"Integration complexity", "Legacy system compatibility"},
				RelatedDimensions:   []taxonomy.Dimension{taxonomy.DimDataLink},
				FeasibilityScore:    80,
				ImpactScore:         90,
			},
		},
		{
			Key:   "upgrade-bidirectional",
			Group: GroupDataLink,
			When:  func(t taxonomy.Taxonomy) bool { return t.DataLink == taxonomy.OneDirectional },
			Template: result.Recommendation{
				Title:               "Upgrade to Bi-directional Data Communication",
				Description:         "Enhance current one-directional setup to enable feedback control and closed-loop operations.",
				Category:            result.Technical,
				Priority:            result.High,
				InterventionType:    result.ShortTerm,
				EstimatedCost:       "$100,000 - $300,000",
				ExpectedBenefits:    []string{"Enable control capabilities", "Improve system responsiveness", "Support advanced automation"},
				ImplementationSteps: []string{"Design control interfaces", "Implement actuator systems", "Test feedback loops"},
				RiskFactors:         []string{"Control system stability", "Cybersecurity vulnerabilities"},
				RelatedDimensions:   []taxonomy.Dimension{taxonomy.DimDataLink, taxonomy.DimFunctionalRole},
				FeasibilityScore:    70,
				ImpactScore:         85,
			},
		},
		{
			Key:   "adaptive-intelligence",
			Group: GroupIntelligence,
			When:  staticOrUnsetIntelligence,
			Template: result.Recommendation{
				Title:               "Implement Adaptive Intelligence",
				Description:         "Upgrade from static models to data-driven adaptive systems with machine learning capabilities.",
				Category:            result.Technical,
				Priority:            result.High,
				InterventionType:    result.MidTerm,
				EstimatedCost:       "$200,000 - $500,000",
				ExpectedBenefits:    []string{"Dynamic model adaptation", "Improved prediction accuracy", "Automated optimization"},
				ImplementationSteps: []string{"Implement ML infrastructure", "Develop adaptive algorithms", "Train initial models"},
				RiskFactors:         []string{"Data quality requirements", "Algorithm complexity", "Performance validation"},
				RelatedDimensions:   []taxonomy.Dimension{taxonomy.DimIntelligenceLevel, taxonomy.DimDataArchitecture},
				FeasibilityScore:    65,
				ImpactScore:         90,
			},
		},
		{
			Key:   "self-learning",
			Group: GroupIntelligence,
			When:  func(t taxonomy.Taxonomy) bool { return t.IntelligenceLevel == taxonomy.DataDrivenAdaptiveModel },
			Template: result.Recommendation{
				Title:               "Develop Self-Learning Capabilities",
				Description:         "Advance to self-learning digital twin with continuous improvement and autonomous adaptation.",
				Category:            result.Technical,
				Priority:            result.Medium,
				InterventionType:    result.LongTerm,
				EstimatedCost:       "$500,000 - $1,000,000",
				ExpectedBenefits:    []string{"Autonomous learning", "Reduced manual intervention", "Continuous optimization"},
				ImplementationSteps: []string{"Implement reinforcement learning", "Develop autonomous training pipelines", "Create validation frameworks"},
				RiskFactors:         []string{"Algorithm stability", "Training data requirements", "Validation complexity"},
				RelatedDimensions:   []taxonomy.Dimension{taxonomy.DimIntelligenceLevel, taxonomy.DimFunctionalRole},
				FeasibilityScore:    50,
				ImpactScore:         95,
			},
		},
		{
			Key:   "cybersecurity-framework",
			Group: GroupSecurity,
			When:  func(t taxonomy.Taxonomy) bool { return len(t.SecurityIntegration) == 0 },
			Template: result.Recommendation{
				Title:               "Implement Cybersecurity Framework",
				Description:         "Establish comprehensive cyber-physical security monitoring and protection systems.",
				Category:            result.Security,
				Priority:            result.Critical,
				InterventionType:    result.Immediate,
				EstimatedCost:       "$150,000 - $400,000",
				ExpectedBenefits:    []string{"Enhanced system security", "Threat detection capabilities", "Compliance readiness"},
				ImplementationSteps: []string{"Security assessment", "Implement monitoring systems", "Develop response procedures"},
				RiskFactors:         []string{"Complex threat landscape", "Integration challenges", "False positive rates"},
				RelatedDimensions:   []taxonomy.Dimension{taxonomy.DimSecurityIntegration, taxonomy.DimFunctionalRole},
				FeasibilityScore:    75,
				ImpactScore:         95,
			},
		},
		{
			// Fires alongside cybersecurity-framework on an empty selection.
			Key:   "active-defense",
			Group: GroupSecurity,
			When: func(t taxonomy.Taxonomy) bool {
				return !slices.Contains(t.SecurityIntegration, taxonomy.ActiveDefence)
			},
			Template: result.Recommendation{
				Title:               "Deploy Active Defense Systems",
				Description:         "Implement proactive security measures with automated threat response capabilities.",
				Category:            result.Security,
				Priority:            result.High,
				InterventionType:    result.ShortTerm,
				EstimatedCost:       "$200,000 - $600,000",
				ExpectedBenefits:    []string{"Proactive threat mitigation", "Reduced response time", "Automated defense"},
				ImplementationSteps: []string{"Design active defense architecture", "Implement automated responses", "Test defense scenarios"},
				RiskFactors:         []string{"False positive actions", "System complexity", "Coordination challenges"},
				RelatedDimensions:   []taxonomy.Dimension{taxonomy.DimSecurityIntegration, taxonomy.DimIntelligenceLevel},
				FeasibilityScore:    60,
				ImpactScore:         85,
			},
		},
		{
			Key:   "data-architecture-strategy",
			Group: GroupArchitecture,
			When:  func(t taxonomy.Taxonomy) bool { return t.DataArchitecture == 0 },
			Template: result.Recommendation{
				Title:               "Design Data Architecture Strategy",
				Description:         "Establish a comprehensive data architecture aligned with operational requirements.",
				Category:            result.Technical,
				Priority:            result.High,
				InterventionType:    result.ShortTerm,
				EstimatedCost:       "$100,000 - $300,000",
				ExpectedBenefits:    []string{"Scalable data management", "Improved performance", "Better integration"},
				ImplementationSteps: []string{"Architecture assessment", "Design data flows", "Implement infrastructure"},
				RiskFactors:         []string{"Scalability challenges", "Integration complexity", "Performance bottlenecks"},
				RelatedDimensions:   []taxonomy.Dimension{taxonomy.DimDataArchitecture, taxonomy.DimModelGranularity},
				FeasibilityScore:    80,
				ImpactScore:         80,
			},
		},
		{
			Key:   "hybrid-cloud-edge",
			Group: GroupArchitecture,
			When:  func(t taxonomy.Taxonomy) bool { return t.DataArchitecture == taxonomy.EdgeBasedProcessing },
			Template: result.Recommendation{
				Title:               "Implement Hybrid Cloud-Edge Architecture",
				Description:         "Extend edge processing with cloud integration for enhanced capabilities and scalability.",
				Category:            result.Technical,
				Priority:            result.Medium,
				InterventionType:    result.MidTerm,
				EstimatedCost:       "$250,000 - $700,000",
				ExpectedBenefits:    []string{"Hybrid processing capabilities", "Improved scalability", "Enhanced analytics"},
				ImplementationSteps: []string{"Design hybrid architecture", "Implement cloud integration", "Optimize data flows"},
				RiskFactors:         []string{"Network dependencies", "Data governance complexity", "Cost management"},
				RelatedDimensions:   []taxonomy.Dimension{taxonomy.DimDataArchitecture, taxonomy.DimSynchronizationFrequency},
				FeasibilityScore:    70,
				ImpactScore:         75,
			},
		},
	}
}

func staticOrUnsetIntelligence(t taxonomy.Taxonomy) bool {
	return t.IntelligenceLevel == 0 || t.IntelligenceLevel == taxonomy.StaticModel
}

// Recommend returns the recommendations of every matching rule. newID is
// called once per emitted recommendation.
func Recommend(t taxonomy.Taxonomy, newID func() string) []result.Recommendation {
	var out []result.Recommendation
	for _, rule := range RecommendationRegistry() {
		if !rule.When(t) {
			continue
		}
		rec := cloneRecommendation(rule.Template)
		rec.ID = newID()
		logf("rule %s matched: %s (id=%s)", rule.Key, rec.Title, rec.ID)
		out = append(out, rec)
	}
	return out
}

// SortRecommendations orders recs by priority then impact, both descending.
func SortRecommendations(recs []result.Recommendation) []result.Recommendation {
	return result.SortRecommendations(recs)
}

func cloneRecommendation(r result.Recommendation) result.Recommendation {
	r.ExpectedBenefits = slices.Clone(r.ExpectedBenefits)
	r.ImplementationSteps = slices.Clone(r.ImplementationSteps)
	r.RiskFactors = slices.Clone(r.RiskFactors)
	r.RelatedDimensions = slices.Clone(r.RelatedDimensions)
	return r
}

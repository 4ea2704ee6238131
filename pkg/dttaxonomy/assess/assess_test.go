package assess

import (
	"strings"
	"testing"

	"github.com/idlab-discover/dt-taxonomy-cli/internal/taxonomy"
)

func TestAssess_EmptyTaxonomy(t *testing.T) {
	a := Assess(taxonomy.Taxonomy{}, Options{})
	if !a.Valid {
		t.Fatalf("expected valid without criteria, got errors %v", a.Errors)
	}
	if len(a.Unset) != len(taxonomy.Dimensions()) {
		t.Fatalf("unset = %d, want %d", len(a.Unset), len(taxonomy.Dimensions()))
	}
	// one warning per unset dimension plus the two critical recommendations
	if want := len(taxonomy.Dimensions()) + 2; len(a.Warnings) != want {
		t.Fatalf("warnings = %d, want %d: %v", len(a.Warnings), want, a.Warnings)
	}
}

func TestAssess_StrictMode(t *testing.T) {
	a := Assess(taxonomy.Taxonomy{}, Options{StrictMode: true})
	if a.Valid {
		t.Fatalf("expected invalid in strict mode")
	}
	if len(a.Warnings) != 0 {
		t.Fatalf("strict mode should turn warnings into errors, got %v", a.Warnings)
	}
	found := false
	for _, e := range a.Errors {
		if strings.Contains(e, "Establish Data Link Architecture") {
			found = true
		}
	}
	if !found {
		t.Fatalf("missing critical recommendation error in %v", a.Errors)
	}
}

func TestAssess_MinOverallScore(t *testing.T) {
	tx := taxonomy.Taxonomy{
		DataLink:                 taxonomy.ClosedLoopActuation,
		SynchronizationFrequency: taxonomy.RealTime,
		IntelligenceLevel:        taxonomy.SelfLearningDT,
		DataArchitecture:         taxonomy.CloudIntegratedDT,
		SecurityIntegration:      []taxonomy.SecurityIntegration{taxonomy.PassiveMonitoring, taxonomy.ActiveDefence},
	}

	tests := []struct {
		name      string
		min       float64
		wantValid bool
	}{
		{name: "no minimum", min: 0, wantValid: true},
		{name: "below minimum", min: 100, wantValid: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Assess(tx, Options{MinOverallScore: tt.min})
			if a.Valid != tt.wantValid {
				t.Fatalf("valid = %v, want %v (overall %.1f, errors %v)", a.Valid, tt.wantValid, a.Result.OverallMaturityScore, a.Errors)
			}
		})
	}
}

func TestCheck_InvalidTaxonomy(t *testing.T) {
	tx := taxonomy.Taxonomy{DataLink: taxonomy.DataLink(99)}
	a := Check(tx, Assess(taxonomy.Taxonomy{}, Options{}).Result, Options{})
	if a.Valid || len(a.Errors) != 1 {
		t.Fatalf("expected a single invalid taxonomy error, got valid=%v errors=%v", a.Valid, a.Errors)
	}
}

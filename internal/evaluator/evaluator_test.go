package evaluator

import (
	"fmt"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/idlab-discover/dt-taxonomy-cli/internal/result"
	"github.com/idlab-discover/dt-taxonomy-cli/internal/taxonomy"
)

func fixed() Evaluator {
	n := 0
	return Evaluator{
		Now: func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) },
		NewID: func() string {
			n++
			return fmt.Sprintf("id-%d", n)
		},
	}
}

func TestEvaluate_EmptyTaxonomy(t *testing.T) {
	res := fixed().Evaluate(taxonomy.Taxonomy{})

	if err := res.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if res.OverallMaturityScore != 0 {
		t.Fatalf("overall = %v, want 0", res.OverallMaturityScore)
	}
	if len(res.Recommendations) != 5 || len(res.Improvements) != 2 {
		t.Fatalf("got %d recommendations, %d improvements", len(res.Recommendations), len(res.Improvements))
	}
	if len(res.Critical()) != 2 {
		t.Fatalf("critical = %d, want 2", len(res.Critical()))
	}
	want := "Digital Twin Maturity Assessment\n" +
		"Overall maturity score: 0.0/100\n" +
		"Recommendations: 5 total (2 critical, 3 high priority)\n" +
		"Improvements: 2 identified\n" +
		"Generated: 2025-06-01"
	if res.Summary != want {
		t.Fatalf("summary = %q", res.Summary)
	}
}

func TestEvaluate_IDsUniqueAcrossRecommendationsAndImprovements(t *testing.T) {
	res := fixed().Evaluate(taxonomy.Taxonomy{DataLink: taxonomy.OneDirectional})
	seen := map[string]bool{}
	for _, r := range res.Recommendations {
		seen[r.ID] = true
	}
	for _, i := range res.Improvements {
		if seen[i.ID] {
			t.Fatalf("duplicate id %s", i.ID)
		}
		seen[i.ID] = true
	}
}

func TestEvaluate_OverallIsMean(t *testing.T) {
	tax := taxonomy.Taxonomy{
		DataLink:          taxonomy.BiDirectional,
		IntelligenceLevel: taxonomy.SelfLearningDT,
		FunctionalRole:    []taxonomy.FunctionalRole{taxonomy.OperationalControl},
	}
	res := fixed().Evaluate(tax)
	// 80 + 85 + 20 over ten dimensions
	if math.Abs(res.OverallMaturityScore-18.5) > 1e-9 {
		t.Fatalf("overall = %v, want 18.5", res.OverallMaturityScore)
	}
	if err := res.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestEvaluate_DefaultsUseClockAndUUID(t *testing.T) {
	before := time.Now()
	res := Evaluate(taxonomy.Taxonomy{})
	if res.GeneratedAt.Before(before) {
		t.Fatalf("GeneratedAt %v before %v", res.GeneratedAt, before)
	}
	if len(res.Recommendations[0].ID) != 36 {
		t.Fatalf("expected uuid id, got %q", res.Recommendations[0].ID)
	}
	if !strings.Contains(res.Summary, "Generated: "+res.GeneratedAt.Format("2006-01-02")) {
		t.Fatalf("summary missing date: %q", res.Summary)
	}
}

func TestEvaluate_SortedViewPutsCriticalFirst(t *testing.T) {
	res := fixed().Evaluate(taxonomy.Taxonomy{})
	sorted := res.Sorted()
	if sorted[0].Priority != result.Critical || sorted[1].Priority != result.Critical {
		t.Fatalf("expected two critical first, got %s, %s", sorted[0].Priority, sorted[1].Priority)
	}
}

func TestEvaluate_OverallIsDeterministic(t *testing.T) {
	tax := taxonomy.Taxonomy{
		DataLink:          taxonomy.BiDirectional,
		FunctionalRole:    []taxonomy.FunctionalRole{taxonomy.OperationalControl},
		IntelligenceLevel: taxonomy.SelfLearningDT,
		ModelGranularity:  taxonomy.SystemLevel,
		InterfaceTypes:    []taxonomy.InterfaceType{taxonomy.HumanMachine},
		ApplicationDomain: []taxonomy.ApplicationDomain{
			taxonomy.Generation, taxonomy.Transmission, taxonomy.Distribution,
			taxonomy.MicrogridDERIntegration, taxonomy.DemandResponse,
		},
		SecurityIntegration: []taxonomy.SecurityIntegration{taxonomy.PassiveMonitoring},
	}

	first := fixed().Evaluate(tax).OverallMaturityScore
	for i := 0; i < 2000; i++ {
		if got := fixed().Evaluate(tax).OverallMaturityScore; got != first {
			t.Fatalf("run %d: overall = %v, first run gave %v", i, got, first)
		}
	}
}

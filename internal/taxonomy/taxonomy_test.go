package taxonomy

import (
	"encoding/json"
	"slices"
	"strings"
	"testing"

	yaml "go.yaml.in/yaml/v3"
)

func TestDimensions_FixedOrderAndCopy(t *testing.T) {
	got := Dimensions()
	if len(got) != 10 {
		t.Fatalf("len(Dimensions()) = %d, want 10", len(got))
	}
	if got[0] != DimDataLink || got[9] != DimSecurityIntegration {
		t.Fatalf("unexpected order: %v", got)
	}

	got[0] = "mutated"
	if Dimensions()[0] != DimDataLink {
		t.Fatalf("Dimensions() must return a copy")
	}
}

func TestDimension_Metadata(t *testing.T) {
	tests := []struct {
		dim      Dimension
		label    string
		multiple bool
		options  int
	}{
		{DimDataLink, "Data Link", false, 3},
		{DimFunctionalRole, "Functional Role", true, 5},
		{DimSynchronizationFrequency, "Synchronization Frequency", false, 4},
		{DimIntelligenceLevel, "Intelligence Level", false, 4},
		{DimModelGranularity, "Model Granularity", false, 4},
		{DimDataArchitecture, "Data Architecture", false, 4},
		{DimInterfaceTypes, "Interface Types", true, 3},
		{DimLifecyclePositioning, "Lifecycle Positioning", false, 4},
		{DimApplicationDomain, "Application Domain", true, 6},
		{DimSecurityIntegration, "Cyber-Physical Security Integration", true, 3},
	}
	for _, tt := range tests {
		t.Run(string(tt.dim), func(t *testing.T) {
			if got := tt.dim.Label(); got != tt.label {
				t.Errorf("Label() = %q, want %q", got, tt.label)
			}
			if got := tt.dim.Multiple(); got != tt.multiple {
				t.Errorf("Multiple() = %v, want %v", got, tt.multiple)
			}
			if got := len(tt.dim.Options()); got != tt.options {
				t.Errorf("len(Options()) = %d, want %d", got, tt.options)
			}
		})
	}
}

func TestParseDimension_Unknown(t *testing.T) {
	if _, ok := ParseDimension("colour"); ok {
		t.Fatalf("expected unknown dimension to be rejected")
	}
	if d, ok := ParseDimension("dataLink"); !ok || d != DimDataLink {
		t.Fatalf("ParseDimension(dataLink) = %q, %v", d, ok)
	}
}

func TestEnum_KeyAndLabel(t *testing.T) {
	if got := ClosedLoopActuation.String(); got != "ClosedLoopActuation" {
		t.Errorf("String() = %q", got)
	}
	if got := ClosedLoopActuation.Label(); got != "Closed-loop actuation" {
		t.Errorf("Label() = %q", got)
	}
	if got := DataLink(0).String(); got != "" {
		t.Errorf("unset String() = %q, want empty", got)
	}
	if got := ResilienceTestingAndRecoveryPlanning.Label(); got != "Resilience testing & recovery planning" {
		t.Errorf("Label() = %q", got)
	}
}

func TestEnum_UnmarshalAcceptsKeyOrLabel(t *testing.T) {
	for _, in := range []string{"BiDirectional", "Bi-directional", "bi-directional", "  BIDIRECTIONAL "} {
		var d DataLink
		if err := d.UnmarshalText([]byte(in)); err != nil {
			t.Fatalf("UnmarshalText(%q) err = %v", in, err)
		}
		if d != BiDirectional {
			t.Fatalf("UnmarshalText(%q) = %v, want BiDirectional", in, d)
		}
	}

	var d DataLink
	if err := d.UnmarshalText([]byte("Telepathic")); err == nil {
		t.Fatalf("expected error for unknown value")
	}
}

func TestWith_ReplacesExactlyOneFieldWithoutSharing(t *testing.T) {
	base := Taxonomy{
		DataLink:       OneDirectional,
		FunctionalRole: []FunctionalRole{MonitoringAndVisualization},
		InterfaceTypes: []InterfaceType{HumanMachine},
	}

	next, err := base.With(DimDataLink, "ClosedLoopActuation")
	if err != nil {
		t.Fatalf("With err = %v", err)
	}
	if next.DataLink != ClosedLoopActuation {
		t.Fatalf("DataLink = %v", next.DataLink)
	}
	if base.DataLink != OneDirectional {
		t.Fatalf("receiver was modified")
	}

	// multi-select slices must not alias the receiver's
	next.FunctionalRole[0] = OperationalControl
	if base.FunctionalRole[0] != MonitoringAndVisualization {
		t.Fatalf("With shared the FunctionalRole slice with the receiver")
	}
}

func TestWith_MultiSelectDropsDuplicates(t *testing.T) {
	got, err := Taxonomy{}.With(DimApplicationDomain, "Generation", "Transmission", "generation")
	if err != nil {
		t.Fatalf("With err = %v", err)
	}
	want := []ApplicationDomain{Generation, Transmission}
	if !slices.Equal(got.ApplicationDomain, want) {
		t.Fatalf("ApplicationDomain = %v, want %v", got.ApplicationDomain, want)
	}
}

func TestWith_Errors(t *testing.T) {
	base := Taxonomy{DataLink: BiDirectional}
	if _, err := base.With(DimDataLink, "BiDirectional", "OneDirectional"); err == nil {
		t.Errorf("expected error for two values on single-select dimension")
	}
	if _, err := base.With("nonsense", "x"); err == nil {
		t.Errorf("expected error for unknown dimension")
	}
	got, err := base.With(DimIntelligenceLevel, "Clairvoyant")
	if err == nil {
		t.Errorf("expected error for unknown value")
	}
	if got.DataLink != BiDirectional {
		t.Errorf("failed With must return the receiver unchanged")
	}
}

func TestWith_NoValuesUnsets(t *testing.T) {
	base := Taxonomy{DataLink: BiDirectional, InterfaceTypes: []InterfaceType{HumanMachine}}
	next, err := base.With(DimDataLink)
	if err != nil {
		t.Fatalf("With err = %v", err)
	}
	if next.DataLink != 0 {
		t.Fatalf("DataLink = %v, want unset", next.DataLink)
	}
	next, err = next.With(DimInterfaceTypes)
	if err != nil {
		t.Fatalf("With err = %v", err)
	}
	if len(next.InterfaceTypes) != 0 {
		t.Fatalf("InterfaceTypes = %v, want empty", next.InterfaceTypes)
	}
}

func TestToggle_MultiSelect(t *testing.T) {
	base := Taxonomy{SecurityIntegration: []SecurityIntegration{PassiveMonitoring}}

	added, err := base.Toggle(DimSecurityIntegration, "ActiveDefence")
	if err != nil {
		t.Fatalf("Toggle err = %v", err)
	}
	if !slices.Equal(added.SecurityIntegration, []SecurityIntegration{PassiveMonitoring, ActiveDefence}) {
		t.Fatalf("after add = %v", added.SecurityIntegration)
	}
	if len(base.SecurityIntegration) != 1 {
		t.Fatalf("receiver modified: %v", base.SecurityIntegration)
	}

	removed, err := added.Toggle(DimSecurityIntegration, "Passive monitoring")
	if err != nil {
		t.Fatalf("Toggle err = %v", err)
	}
	if !slices.Equal(removed.SecurityIntegration, []SecurityIntegration{ActiveDefence}) {
		t.Fatalf("after remove = %v", removed.SecurityIntegration)
	}
}

func TestToggle_SingleSelect(t *testing.T) {
	set, err := Taxonomy{}.Toggle(DimModelGranularity, "SystemLevel")
	if err != nil {
		t.Fatalf("Toggle err = %v", err)
	}
	if set.ModelGranularity != SystemLevel {
		t.Fatalf("ModelGranularity = %v", set.ModelGranularity)
	}
	cleared, err := set.Toggle(DimModelGranularity, "SystemLevel")
	if err != nil {
		t.Fatalf("Toggle err = %v", err)
	}
	if cleared.ModelGranularity != 0 {
		t.Fatalf("second toggle should clear, got %v", cleared.ModelGranularity)
	}
}

func TestIsEmptyAndSelected(t *testing.T) {
	if !(Taxonomy{}).IsEmpty() {
		t.Fatalf("zero Taxonomy should be empty")
	}
	tx := Taxonomy{ApplicationDomain: []ApplicationDomain{DemandResponse}}
	if tx.IsEmpty() {
		t.Fatalf("taxonomy with a selection is not empty")
	}
	if got := tx.Selected(DimApplicationDomain); !slices.Equal(got, []string{"DemandResponse"}) {
		t.Fatalf("Selected = %v", got)
	}
	if got := tx.Selected(DimDataLink); got != nil {
		t.Fatalf("Selected(unset) = %v, want nil", got)
	}
}

func TestValidateAndNormalize(t *testing.T) {
	tx := Taxonomy{InterfaceTypes: []InterfaceType{HumanMachine, HumanMachine}}
	if err := tx.Validate(); err == nil {
		t.Fatalf("expected duplicate to be reported")
	}
	if err := tx.Normalize().Validate(); err != nil {
		t.Fatalf("Normalize().Validate() err = %v", err)
	}
	if err := (Taxonomy{DataLink: DataLink(42)}).Validate(); err == nil {
		t.Fatalf("expected out-of-range value to be reported")
	}
}

func TestTaxonomy_JSONUsesKeys(t *testing.T) {
	tx := Taxonomy{
		DataLink:            ClosedLoopActuation,
		SecurityIntegration: []SecurityIntegration{ActiveDefence},
	}
	b, err := json.Marshal(tx)
	if err != nil {
		t.Fatalf("Marshal err = %v", err)
	}
	s := string(b)
	if !strings.Contains(s, `"dataLink":"ClosedLoopActuation"`) {
		t.Fatalf("unexpected JSON %s", s)
	}
	if strings.Contains(s, "synchronizationFrequency") {
		t.Fatalf("unset single-select should be omitted: %s", s)
	}

	var back Taxonomy
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("Unmarshal err = %v", err)
	}
	if back.DataLink != ClosedLoopActuation || !slices.Equal(back.SecurityIntegration, tx.SecurityIntegration) {
		t.Fatalf("round trip mismatch: %+v", back)
	}
}

func TestTaxonomy_JSONAcceptsLegacyLabels(t *testing.T) {
	legacy := `{"dataLink":"One-directional","functionalRole":["Operational Control"],"cyberPhysicalSecurityIntegration":[]}`
	var tx Taxonomy
	if err := json.Unmarshal([]byte(legacy), &tx); err != nil {
		t.Fatalf("Unmarshal err = %v", err)
	}
	if tx.DataLink != OneDirectional || !slices.Equal(tx.FunctionalRole, []FunctionalRole{OperationalControl}) {
		t.Fatalf("decoded %+v", tx)
	}
}

func TestTaxonomy_YAML(t *testing.T) {
	doc := `
dataLink: BiDirectional
intelligenceLevel: Cognitive DT
interfaceTypes:
  - HumanMachine
  - MultiAgentInteraction
`
	var tx Taxonomy
	if err := yaml.Unmarshal([]byte(doc), &tx); err != nil {
		t.Fatalf("yaml.Unmarshal err = %v", err)
	}
	if tx.DataLink != BiDirectional || tx.IntelligenceLevel != CognitiveDT {
		t.Fatalf("decoded %+v", tx)
	}
	if !slices.Equal(tx.InterfaceTypes, []InterfaceType{HumanMachine, MultiAgentInteraction}) {
		t.Fatalf("InterfaceTypes = %v", tx.InterfaceTypes)
	}
}

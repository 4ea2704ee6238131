package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"

	"github.com/idlab-discover/dt-taxonomy-cli/internal/apperr"
	"github.com/idlab-discover/dt-taxonomy-cli/internal/evaluator"
	"github.com/idlab-discover/dt-taxonomy-cli/internal/result"
	"github.com/idlab-discover/dt-taxonomy-cli/internal/store"
	"github.com/idlab-discover/dt-taxonomy-cli/internal/taxonomy"
)

func TestApplyAssignments(t *testing.T) {
	tx, err := applyAssignments(taxonomy.Taxonomy{}, []string{
		"dataLink=BiDirectional",
		"applicationDomain = Generation, Demand response",
		"intelligenceLevel=StaticModel",
		"intelligenceLevel=",
	})
	if err != nil {
		t.Fatalf("applyAssignments: %v", err)
	}
	if tx.DataLink != taxonomy.BiDirectional {
		t.Fatalf("dataLink = %v", tx.DataLink)
	}
	want := []taxonomy.ApplicationDomain{taxonomy.Generation, taxonomy.DemandResponse}
	if len(tx.ApplicationDomain) != 2 || tx.ApplicationDomain[0] != want[0] || tx.ApplicationDomain[1] != want[1] {
		t.Fatalf("applicationDomain = %v, want %v", tx.ApplicationDomain, want)
	}
	if tx.IntelligenceLevel != 0 {
		t.Fatalf("empty assignment should unset, got %v", tx.IntelligenceLevel)
	}
}

func TestApplyAssignments_Errors(t *testing.T) {
	tests := []string{
		"dataLink",
		"colour=Red",
		"dataLink=Sideways",
		"dataLink=OneDirectional,BiDirectional",
	}
	for _, a := range tests {
		_, err := applyAssignments(taxonomy.Taxonomy{}, []string{a})
		if err == nil {
			t.Fatalf("applyAssignments(%q) expected error", a)
		}
		if !apperr.IsUser(err) {
			t.Fatalf("applyAssignments(%q) error %v is not a user error", a, err)
		}
	}
}

func TestResolveLogLevel(t *testing.T) {
	t.Cleanup(func() { viper.Set("sample.log-level", nil) })

	tests := []struct {
		value   string
		want    string
		wantErr bool
	}{
		{value: "", want: "standard"},
		{value: " Debug ", want: "debug"},
		{value: "quiet", want: "quiet"},
		{value: "verbose", wantErr: true},
	}
	for _, tt := range tests {
		viper.Set("sample.log-level", tt.value)
		var logs bytes.Buffer
		got, err := resolveLogLevel("sample", &logs)
		if tt.wantErr {
			if err == nil {
				t.Fatalf("resolveLogLevel(%q) expected error", tt.value)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Fatalf("resolveLogLevel(%q) = %q, %v; want %q", tt.value, got, err, tt.want)
		}
	}
	// leave the package loggers disabled for other tests
	viper.Set("sample.log-level", "standard")
	if _, err := resolveLogLevel("sample", nil); err != nil {
		t.Fatalf("reset: %v", err)
	}
}

func TestStorageConfig(t *testing.T) {
	t.Cleanup(func() {
		viper.Set("storage.driver", nil)
		viper.Set("storage.path", nil)
	})
	viper.Set("storage.driver", "sqlite")
	viper.Set("storage.path", "/tmp/x.db")

	cfg := storageConfig()
	if cfg.Driver != "sqlite" || cfg.Path != "/tmp/x.db" {
		t.Fatalf("storageConfig() = %+v", cfg)
	}
}

func TestEvaluateCommand_JSON(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"evaluate", "--set", "dataLink=OneDirectional", "--json", "--log-level", "quiet"})
	t.Cleanup(func() { rootCmd.SetArgs(nil); rootCmd.SetOut(nil); rootCmd.SetErr(nil) })

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("evaluate: %v", err)
	}

	var res result.Result
	if err := json.Unmarshal(out.Bytes(), &res); err != nil {
		t.Fatalf("output is not a result: %v\n%s", err, out.String())
	}
	if err := res.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if got := res.DimensionScores[taxonomy.DimDataLink]; got != 50 {
		t.Fatalf("dataLink score = %v, want 50", got)
	}
}

func TestDimensionsCommand(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"dimensions"})
	t.Cleanup(func() { rootCmd.SetArgs(nil); rootCmd.SetOut(nil); rootCmd.SetErr(nil) })

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("dimensions: %v", err)
	}
	for _, d := range taxonomy.Dimensions() {
		if !strings.Contains(out.String(), string(d)) {
			t.Fatalf("output missing dimension %s", d)
		}
	}
}

func TestEvaluateCommand_MinScore(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	rootCmd.SetOut(&bytes.Buffer{})
	var errOut bytes.Buffer
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs([]string{"evaluate", "--set", "dataLink=OneDirectional", "--json", "--min-score", "90", "--log-level", "quiet"})
	t.Cleanup(func() {
		evaluateCmd.Flags().Set("min-score", "0")
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	err := rootCmd.Execute()
	if err == nil {
		t.Fatalf("expected the gate to fail")
	}
	if !apperr.IsUser(err) {
		t.Fatalf("gate error %v is not a user error", err)
	}
	if !strings.Contains(errOut.String(), "below minimum 90.0") {
		t.Fatalf("stderr missing gate error:\n%s", errOut.String())
	}
}

func TestCompareCommand_IgnoresIDsPastTheCap(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dbPath := filepath.Join(t.TempDir(), "taxonomies.db")
	viper.Set("storage.driver", store.DriverSQLite)
	viper.Set("storage.path", dbPath)
	t.Cleanup(func() {
		viper.Set("storage.driver", nil)
		viper.Set("storage.path", nil)
	})

	ctx := context.Background()
	s, err := store.Open(ctx, storageConfig())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	links := []taxonomy.DataLink{taxonomy.OneDirectional, taxonomy.BiDirectional, taxonomy.ClosedLoopActuation}
	var ids []string
	for i := 0; i < 6; i++ {
		tx := taxonomy.Taxonomy{DataLink: links[i%len(links)]}
		res := evaluator.Evaluate(tx)
		id, err := s.Save(ctx, fmt.Sprintf("Twin %d", i+1), tx, &res, "")
		if err != nil {
			t.Fatalf("Save: %v", err)
		}
		ids = append(ids, id)
	}
	s.Close()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(append(append([]string{"compare"}, ids...), "--log-level", "quiet"))
	t.Cleanup(func() { rootCmd.SetArgs(nil); rootCmd.SetOut(nil); rootCmd.SetErr(nil) })

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("compare with 6 ids: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	header := strings.Split(lines[0], "\t")
	if len(header) != 1+5 {
		t.Fatalf("header has %d columns, want dimension plus 5: %q", len(header), lines[0])
	}
	if strings.Contains(out.String(), ids[5]) {
		t.Fatalf("sixth id %s should be ignored:\n%s", ids[5], out.String())
	}
	for _, id := range ids[:5] {
		if !strings.Contains(lines[0], id) {
			t.Fatalf("header missing %s: %q", id, lines[0])
		}
	}
}

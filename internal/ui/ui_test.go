package ui

import (
	"bytes"
	"fmt"
	"image/color"
	"strings"
	"testing"
	"time"

	"github.com/idlab-discover/dt-taxonomy-cli/internal/comparison"
	"github.com/idlab-discover/dt-taxonomy-cli/internal/evaluator"
	"github.com/idlab-discover/dt-taxonomy-cli/internal/result"
	"github.com/idlab-discover/dt-taxonomy-cli/internal/store"
	"github.com/idlab-discover/dt-taxonomy-cli/internal/taxonomy"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func evaluate(tx taxonomy.Taxonomy) result.Result {
	n := 0
	e := evaluator.Evaluator{
		Now: func() time.Time { return testNow },
		NewID: func() string {
			n++
			return fmt.Sprintf("id-%d", n)
		},
	}
	return e.Evaluate(tx)
}

func mature() taxonomy.Taxonomy {
	return taxonomy.Taxonomy{
		DataLink:                 taxonomy.ClosedLoopActuation,
		SynchronizationFrequency: taxonomy.RealTime,
		IntelligenceLevel:        taxonomy.SelfLearningDT,
		DataArchitecture:         taxonomy.CloudIntegratedDT,
		SecurityIntegration:      []taxonomy.SecurityIntegration{taxonomy.PassiveMonitoring, taxonomy.ActiveDefence},
	}
}

func record(id, title string, tx taxonomy.Taxonomy, withResult bool) store.SavedTaxonomy {
	rec := store.SavedTaxonomy{ID: id, Title: title, Taxonomy: tx, SavedAt: testNow, UpdatedAt: testNow}
	if withResult {
		res := evaluate(tx)
		rec.Result = &res
	}
	return rec
}

func assertContains(t *testing.T, output string, want ...string) {
	t.Helper()
	for _, w := range want {
		if !strings.Contains(output, w) {
			t.Errorf("output missing expected string %q.\nGot:\n%s", w, output)
		}
	}
}

func TestResultUI_PrintReport(t *testing.T) {
	tests := []struct {
		name  string
		tx    taxonomy.Taxonomy
		quiet bool
		want  []string
	}{
		{
			name: "empty taxonomy",
			tx:   taxonomy.Taxonomy{},
			want: []string{
				"Digital Twin Maturity Assessment",
				"Dimension Scores",
				"Data Link",
				"Cyber-Physical Security Integration",
				"Recommendations (5)",
				"Implement Cybersecurity Framework",
				"[Critical]",
				"Improvements (2)",
				"Establish Security Monitoring",
			},
		},
		{
			name: "mature taxonomy has no recommendations",
			tx:   mature(),
			want: []string{"Dimension Scores", "No recommendations"},
		},
		{
			name:  "quiet mode produces no output",
			tx:    taxonomy.Taxonomy{},
			quiet: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			NewResultUI(&buf, tt.quiet).PrintReport(evaluate(tt.tx))

			if tt.quiet {
				if buf.Len() != 0 {
					t.Fatalf("expected no output in quiet mode, got: %q", buf.String())
				}
				return
			}
			assertContains(t, buf.String(), tt.want...)
		})
	}
}

func TestResultUI_PrintSimpleReport_SortedRecommendations(t *testing.T) {
	var buf bytes.Buffer
	NewResultUI(&buf, false).PrintSimpleReport(evaluate(taxonomy.Taxonomy{}))

	out := buf.String()
	assertContains(t, out, "Overall maturity: 0.0/100", "  Data Link: 0.0", "Recommendations:", "Improvements:")

	first := strings.Index(out, "[Critical] Implement Cybersecurity Framework")
	second := strings.Index(out, "[Critical] Establish Data Link Architecture")
	high := strings.Index(out, "[High]")
	if first < 0 || second < 0 || high < 0 || !(first < second && second < high) {
		t.Fatalf("recommendations not in priority order:\n%s", out)
	}
}

func TestResultUI_PrintSummary(t *testing.T) {
	var buf bytes.Buffer
	res := evaluate(taxonomy.Taxonomy{})
	NewResultUI(&buf, true).PrintSummary(res)
	if buf.String() != res.Summary+"\n" {
		t.Fatalf("summary output = %q", buf.String())
	}
}

func TestScoreColor_Bands(t *testing.T) {
	tests := []struct {
		score float64
		want  color.Color
	}{
		{100, ColorSuccess},
		{80, ColorSuccess},
		{79.9, ColorSecondary},
		{60, ColorSecondary},
		{40, ColorWarning},
		{39.9, ColorError},
		{0, ColorError},
	}
	for _, tt := range tests {
		if got := scoreColor(tt.score).GetForeground(); got != tt.want {
			t.Fatalf("scoreColor(%v) = %v, want %v", tt.score, got, tt.want)
		}
	}
}

func TestRenderScoreBar_Clamped(t *testing.T) {
	for _, score := range []float64{-10, 0, 55, 100, 150} {
		bar := renderScoreBar(score, 10)
		if n := strings.Count(bar, "█") + strings.Count(bar, "░"); n != 10 {
			t.Fatalf("renderScoreBar(%v) has %d cells, want 10", score, n)
		}
	}
	if got := strings.Count(renderScoreBar(50, 10), "█"); got != 5 {
		t.Fatalf("filled cells at 50 = %d, want 5", got)
	}
}

func TestListUI_PrintList(t *testing.T) {
	items := []store.SavedTaxonomy{
		record("taxonomy_1_a", "Plant A", mature(), true),
		record("taxonomy_2_b", "Plant B", taxonomy.Taxonomy{}, false),
	}
	items[0].Description = "pilot line"

	var buf bytes.Buffer
	NewListUI(&buf, false).PrintList(items)
	assertContains(t, buf.String(), "Saved Taxonomies (2)", "Plant A", "taxonomy_1_a", "pilot line", "not evaluated")

	buf.Reset()
	NewListUI(&buf, true).PrintList(items)
	if got := buf.String(); got != "taxonomy_1_a\tPlant A\ntaxonomy_2_b\tPlant B\n" {
		t.Fatalf("quiet list = %q", got)
	}

	buf.Reset()
	NewListUI(&buf, false).PrintList(nil)
	assertContains(t, buf.String(), "No saved taxonomies")
}

func TestListUI_PrintRecordShowsLabels(t *testing.T) {
	tx := taxonomy.Taxonomy{
		DataLink:          taxonomy.BiDirectional,
		ApplicationDomain: []taxonomy.ApplicationDomain{taxonomy.Generation, taxonomy.DemandResponse},
	}
	var buf bytes.Buffer
	NewListUI(&buf, false).PrintRecord(record("taxonomy_1_a", "Plant A", tx, false))
	assertContains(t, buf.String(), "Plant A", "Selections", "Bi-directional", "Generation, Demand response", "not set")
}

func TestListUI_PrintStats(t *testing.T) {
	var buf bytes.Buffer
	NewListUI(&buf, true).PrintStats(store.Stats{})
	if got := buf.String(); got != "total=0 with_results=0 last_saved=\"never\"\n" {
		t.Fatalf("quiet stats = %q", got)
	}

	buf.Reset()
	last := testNow
	NewListUI(&buf, false).PrintStats(store.Stats{Total: 3, WithResults: 2, LastSaved: &last})
	assertContains(t, buf.String(), "Saved taxonomies", "3", "With results", "2", "Last saved")
}

func TestPrintDimensions(t *testing.T) {
	var buf bytes.Buffer
	PrintDimensions(&buf)
	out := buf.String()
	for _, d := range taxonomy.Dimensions() {
		assertContains(t, out, d.Label(), string(d))
		for _, o := range d.Options() {
			assertContains(t, out, o.Key, o.Label)
		}
	}
}

func TestComparisonUI_PrintMatrix(t *testing.T) {
	stale := record("taxonomy_2_b", "Plant B", taxonomy.Taxonomy{}, true)
	stale.Result.DimensionScores[taxonomy.DimDataLink] = 42

	m := comparison.Build([]store.SavedTaxonomy{
		record("taxonomy_1_a", "Plant A", mature(), true),
		stale,
	})

	var buf bytes.Buffer
	NewComparisonUI(&buf).PrintMatrix(m)
	assertContains(t, buf.String(), "Taxonomy Comparison", "Plant A", "Plant B", "Data Link", "Overall", "100.0", "0.0*", "stored result differs")

	buf.Reset()
	NewComparisonUI(&buf).PrintMatrix(comparison.Build(nil))
	assertContains(t, buf.String(), "Select between 2 and 5")
}

func TestComparisonUI_PrintSimpleMatrix(t *testing.T) {
	m := comparison.Build([]store.SavedTaxonomy{
		record("a", "A", mature(), false),
		record("b", "B", taxonomy.Taxonomy{}, false),
	})
	var buf bytes.Buffer
	NewComparisonUI(&buf).PrintSimpleMatrix(m)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 12 {
		t.Fatalf("got %d lines, want header + 10 dimensions + overall:\n%s", len(lines), buf.String())
	}
	if lines[0] != "dimension\ta\tb" {
		t.Fatalf("header = %q", lines[0])
	}
	if lines[1] != "dataLink\t100.0\t0.0" {
		t.Fatalf("first row = %q", lines[1])
	}
}

func TestSelector_ToggleEnforcesCap(t *testing.T) {
	var records []store.SavedTaxonomy
	for i := range comparison.MaxSelected + 1 {
		records = append(records, record(fmt.Sprintf("t%d", i), fmt.Sprintf("Twin %d", i), taxonomy.Taxonomy{}, false))
	}
	m := NewSelector(records)

	for _, r := range records[:comparison.MaxSelected] {
		m.toggle(r.ID)
	}
	if m.notice != "" {
		t.Fatalf("unexpected notice %q", m.notice)
	}
	m.toggle(records[comparison.MaxSelected].ID)
	if !strings.Contains(m.notice, "At most 5") {
		t.Fatalf("notice = %q, want cap warning", m.notice)
	}
	if got := len(m.Selected()); got != comparison.MaxSelected {
		t.Fatalf("selected %d, want %d", got, comparison.MaxSelected)
	}

	m.toggle("t0")
	if got := m.Selected(); len(got) != comparison.MaxSelected-1 || got[0] != "t1" {
		t.Fatalf("after deselect = %v", got)
	}
}

func TestSelector_ConfirmNeedsTwo(t *testing.T) {
	records := []store.SavedTaxonomy{
		record("a", "Alpha", taxonomy.Taxonomy{}, false),
		record("b", "Beta", taxonomy.Taxonomy{}, false),
	}
	m := NewSelector(records, "a", "missing")
	if got := m.Selected(); len(got) != 1 || got[0] != "a" {
		t.Fatalf("preselected = %v", got)
	}
	if m.confirm() || m.WasConfirmed() {
		t.Fatalf("confirm with one selection should be refused")
	}
	m.toggle("b")
	if !m.confirm() || !m.WasConfirmed() {
		t.Fatalf("confirm with two selections should succeed")
	}
}

func TestSelector_Filter(t *testing.T) {
	records := []store.SavedTaxonomy{
		record("a", "Wind farm", taxonomy.Taxonomy{}, false),
		record("b", "Substation", taxonomy.Taxonomy{}, false),
	}
	m := NewSelector(records, "b")
	m.setFilter("WIND")
	items := m.list.Items()
	if len(items) != 1 || items[0].(recordItem).rec.ID != "a" {
		t.Fatalf("filtered items = %v", items)
	}
	// filtering hides records without dropping their selection
	if got := m.Selected(); len(got) != 1 || got[0] != "b" {
		t.Fatalf("selection after filter = %v", got)
	}
	m.setFilter("")
	if len(m.list.Items()) != 2 {
		t.Fatalf("clearing the filter should show every record")
	}
}

func TestFormatStatus(t *testing.T) {
	for _, status := range []string{"success", "error", "warning", "info", "other"} {
		if got := FormatStatus(status, "msg"); !strings.HasSuffix(got, " msg") {
			t.Fatalf("FormatStatus(%q) = %q", status, got)
		}
	}
}

func TestTransferUI(t *testing.T) {
	tests := []struct {
		name  string
		quiet bool
		print func(u *TransferUI)
		want  []string
	}{
		{"export styled", false, func(u *TransferUI) { u.PrintExported("out.json", 3) }, []string{"Export complete", "out.json", "Taxonomies", "3", "╭"}},
		{"export quiet", true, func(u *TransferUI) { u.PrintExported("out.json", 3) }, []string{"exported=3 path=out.json"}},
		{"import styled", false, func(u *TransferUI) { u.PrintImported("in.json", 7, 2) }, []string{"Import complete", "in.json", "Saved taxonomies", "7", "New", "2"}},
		{"import quiet", true, func(u *TransferUI) { u.PrintImported("in.json", 7, 2) }, []string{"imported path=in.json total=7 new=2"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.print(NewTransferUI(&buf, tt.quiet))
			assertContains(t, buf.String(), tt.want...)
		})
	}
}

func TestResultUI_PrintFindings(t *testing.T) {
	var buf bytes.Buffer
	NewResultUI(&buf, false).PrintFindings(
		[]string{"dimension not set: dataLink"},
		[]string{"overall maturity 10.0 below minimum 50.0"},
	)
	assertContains(t, buf.String(), "dimension not set: dataLink", "Assessment failed (1)", "below minimum 50.0", "╭")

	buf.Reset()
	NewResultUI(&buf, true).PrintFindings([]string{"w"}, []string{"e"})
	if got := buf.String(); got != "warning: w\nerror: e\n" {
		t.Fatalf("quiet findings = %q", got)
	}

	buf.Reset()
	NewResultUI(&buf, false).PrintFindings(nil, nil)
	if buf.Len() != 0 {
		t.Fatalf("expected no output without findings, got %q", buf.String())
	}
}

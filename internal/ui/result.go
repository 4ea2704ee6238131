package ui

import (
	"fmt"
	"io"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/idlab-discover/dt-taxonomy-cli/internal/result"
	"github.com/idlab-discover/dt-taxonomy-cli/internal/taxonomy"
)

const scoreBarWidth = 30

// ResultUI renders an evaluation result
type ResultUI struct {
	writer io.Writer
	quiet  bool
}

// NewResultUI creates a new UI handler for evaluation results
func NewResultUI(w io.Writer, quiet bool) *ResultUI {
	return &ResultUI{writer: w, quiet: quiet}
}

// PrintReport renders the full maturity report: dimension scores,
// recommendations in priority order and improvements.
func (r *ResultUI) PrintReport(res result.Result) {
	if r.quiet {
		return
	}

	var output strings.Builder

	output.WriteString(Title.Render("Digital Twin Maturity Assessment"))
	output.WriteString("\n\n")
	output.WriteString(FormatKeyValue("Overall", renderScoreBar(res.OverallMaturityScore, scoreBarWidth)+" "+renderScoreValue(res.OverallMaturityScore)))
	output.WriteString("\n")
	output.WriteString(Dim.Render("Generated " + res.GeneratedAt.Format("2006-01-02 15:04 MST")))
	output.WriteString("\n\n")

	output.WriteString(r.renderScores(res))
	output.WriteString("\n\n")

	if len(res.Recommendations) > 0 {
		output.WriteString(r.renderRecommendations(res.Sorted()))
		output.WriteString("\n\n")
	}
	if len(res.Improvements) > 0 {
		output.WriteString(r.renderImprovements(res.Improvements))
		output.WriteString("\n")
	}
	if len(res.Recommendations) == 0 && len(res.Improvements) == 0 {
		output.WriteString(FormatStatus("success", "No recommendations: every rule is satisfied"))
		output.WriteString("\n")
	}

	fmt.Fprintln(r.writer, HighlightBox.Render(strings.TrimRight(output.String(), "\n")))
}

func (r *ResultUI) renderScores(res result.Result) string {
	var sb strings.Builder
	sb.WriteString(SectionHeader.Render("Dimension Scores"))
	sb.WriteString("\n")

	width := 0
	for _, d := range taxonomy.Dimensions() {
		width = max(width, lipgloss.Width(d.Label()))
	}
	label := lipgloss.NewStyle().Width(width + 1)
	for _, d := range taxonomy.Dimensions() {
		score := res.DimensionScores[d]
		sb.WriteString(Dim.Render(label.Render(d.Label())))
		sb.WriteString(" ")
		sb.WriteString(renderScoreBar(score, scoreBarWidth))
		sb.WriteString(" ")
		sb.WriteString(renderScoreValue(score))
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (r *ResultUI) renderRecommendations(recs []result.Recommendation) string {
	var sb strings.Builder
	sb.WriteString(SectionHeader.Render(fmt.Sprintf("Recommendations (%d)", len(recs))))
	sb.WriteString("\n")

	for i, rec := range recs {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(priorityStyle(rec.Priority).Render(fmt.Sprintf("▼ [%s] ", rec.Priority)))
		sb.WriteString(Bold.Render(rec.Title))
		sb.WriteString("\n")
		sb.WriteString("  " + Dim.Render(rec.Description))
		sb.WriteString("\n")
		sb.WriteString("  " + FormatKeyValue("Category", string(rec.Category)))
		sb.WriteString(Muted.Render(" · "))
		sb.WriteString(FormatKeyValue("Impact", fmt.Sprintf("%.0f", rec.ImpactScore)))
		sb.WriteString(Muted.Render(" · "))
		sb.WriteString(FormatKeyValue("Feasibility", fmt.Sprintf("%.0f", rec.FeasibilityScore)))
		if rec.EstimatedCost != "" {
			sb.WriteString(Muted.Render(" · "))
			sb.WriteString(FormatKeyValue("Cost", rec.EstimatedCost))
		}
		sb.WriteString("\n")
		for n, step := range rec.ImplementationSteps {
			sb.WriteString(fmt.Sprintf("    %s %s\n", Muted.Render(fmt.Sprintf("%d.", n+1)), step))
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (r *ResultUI) renderImprovements(imps []result.Improvement) string {
	var sb strings.Builder
	sb.WriteString(SectionHeader.Render(fmt.Sprintf("Improvements (%d)", len(imps))))
	sb.WriteString("\n")

	for i, imp := range imps {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(GetInfoMark() + " " + Bold.Render(imp.Title))
		sb.WriteString(Muted.Render(" (" + string(imp.Timeframe) + ")"))
		sb.WriteString("\n")
		sb.WriteString("  " + FormatKeyValue(imp.TargetDimension, imp.CurrentState+" → "+Success.Render(imp.ProposedState)))
		sb.WriteString("\n")
		sb.WriteString("  " + Dim.Render(imp.Justification))
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

// PrintSimpleReport prints the result without styling.
func (r *ResultUI) PrintSimpleReport(res result.Result) {
	fmt.Fprintf(r.writer, "Overall maturity: %.1f/100\n", res.OverallMaturityScore)
	for _, d := range taxonomy.Dimensions() {
		fmt.Fprintf(r.writer, "  %s: %.1f\n", d.Label(), res.DimensionScores[d])
	}
	if recs := res.Sorted(); len(recs) > 0 {
		fmt.Fprintln(r.writer, "\nRecommendations:")
		for _, rec := range recs {
			fmt.Fprintf(r.writer, "  [%s] %s\n", rec.Priority, rec.Title)
		}
	}
	if len(res.Improvements) > 0 {
		fmt.Fprintln(r.writer, "\nImprovements:")
		for _, imp := range res.Improvements {
			fmt.Fprintf(r.writer, "  %s (%s): %s -> %s\n", imp.Title, imp.TargetDimension, imp.CurrentState, imp.ProposedState)
		}
	}
}

// PrintSummary prints the plain-text summary stored on the result.
func (r *ResultUI) PrintSummary(res result.Result) {
	fmt.Fprintln(r.writer, res.Summary)
}

// PrintFindings prints acceptance warnings, then the errors in an error box.
func (r *ResultUI) PrintFindings(warnings, errs []string) {
	if r.quiet {
		for _, w := range warnings {
			fmt.Fprintf(r.writer, "warning: %s\n", w)
		}
		for _, e := range errs {
			fmt.Fprintf(r.writer, "error: %s\n", e)
		}
		return
	}
	for _, w := range warnings {
		fmt.Fprintln(r.writer, FormatStatus("warning", w))
	}
	if len(errs) == 0 {
		return
	}
	var sb strings.Builder
	sb.WriteString(Title.Render(fmt.Sprintf("Assessment failed (%d)", len(errs))))
	for _, e := range errs {
		sb.WriteString("\n" + FormatStatus("error", e))
	}
	fmt.Fprintln(r.writer, ErrorBox.Render(sb.String()))
}

func priorityStyle(p result.Priority) styleWrapper {
	switch p {
	case result.Critical:
		return Error.Bold(true)
	case result.High:
		return Warning
	case result.Medium:
		return Secondary
	}
	return Muted
}

// scoreColor maps a 0..100 score onto its band: ≥80, ≥60, ≥40 and below.
func scoreColor(score float64) lipgloss.Style {
	switch {
	case score >= 80:
		return lipgloss.NewStyle().Foreground(ColorSuccess)
	case score >= 60:
		return lipgloss.NewStyle().Foreground(ColorSecondary)
	case score >= 40:
		return lipgloss.NewStyle().Foreground(ColorWarning)
	}
	return lipgloss.NewStyle().Foreground(ColorError)
}

// renderScoreBar draws a 0..100 score as a bar of the given width
func renderScoreBar(score float64, width int) string {
	filled := int(score / 100 * float64(width))
	filled = min(max(filled, 0), width)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return scoreColor(score).Render(bar)
}

func renderScoreValue(score float64) string {
	return scoreColor(score).Render(fmt.Sprintf("%5.1f", score))
}

// selectionLabels resolves the keys selected on d to their display labels.
func selectionLabels(t taxonomy.Taxonomy, d taxonomy.Dimension) []string {
	keys := t.Selected(d)
	if len(keys) == 0 {
		return nil
	}
	labels := make(map[string]string)
	for _, o := range d.Options() {
		labels[o.Key] = o.Label
	}
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = labels[k]
	}
	return out
}

package ui

import (
	"fmt"
	"io"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/idlab-discover/dt-taxonomy-cli/internal/comparison"
)

const (
	heatCellWidth  = 9
	heatTitleWidth = 40
)

// ComparisonUI renders a comparison matrix as a heat map: one row per
// dimension, one column per record, each cell colored by its score band.
type ComparisonUI struct {
	writer io.Writer
}

// NewComparisonUI creates a new UI handler for the compare command
func NewComparisonUI(w io.Writer) *ComparisonUI {
	return &ComparisonUI{writer: w}
}

// PrintMatrix renders m. An empty matrix prints a hint instead.
func (c *ComparisonUI) PrintMatrix(m comparison.Matrix) {
	if m.Empty() {
		fmt.Fprintln(c.writer, FormatStatus("warning",
			fmt.Sprintf("Select between %d and %d saved taxonomies to compare", comparison.MinSelected, comparison.MaxSelected)))
		return
	}

	series := m.Series()
	labelWidth := 0
	for _, row := range m.Rows {
		labelWidth = max(labelWidth, lipgloss.Width(row.Label))
	}
	labelStyle := lipgloss.NewStyle().Width(labelWidth + 2)
	headStyle := lipgloss.NewStyle().Width(heatCellWidth).Align(lipgloss.Center).Bold(true).Foreground(ColorPrimary)

	var sb strings.Builder
	sb.WriteString(Title.Render("Taxonomy Comparison"))
	sb.WriteString("\n\n")

	for i, s := range series {
		sb.WriteString(fmt.Sprintf("%s %s %s\n", headStyle.Render(columnName(i)), Bold.Render(truncate(s.Title, heatTitleWidth)), Muted.Render(s.ID)))
	}
	sb.WriteString("\n")

	sb.WriteString(labelStyle.Render(""))
	for i := range series {
		sb.WriteString(headStyle.Render(columnName(i)) + " ")
	}
	sb.WriteString("\n")

	drift := false
	for _, row := range m.Rows {
		sb.WriteString(Dim.Render(labelStyle.Render(row.Label)))
		for _, e := range row.Entries {
			sb.WriteString(heatCell(e.Score, e.Drift))
			sb.WriteString(" ")
			drift = drift || e.Drift
		}
		sb.WriteString("\n")
	}

	sb.WriteString(Bold.Render(labelStyle.Render("Overall")))
	for _, s := range series {
		sb.WriteString(heatCell(s.Overall, false))
		sb.WriteString(" ")
	}

	if drift {
		sb.WriteString("\n\n")
		sb.WriteString(FormatStatus("warning", "* stored result differs from the recomputed score"))
	}

	fmt.Fprintln(c.writer, Box.Render(sb.String()))
}

// PrintSimpleMatrix prints the matrix as tab-separated text.
func (c *ComparisonUI) PrintSimpleMatrix(m comparison.Matrix) {
	if m.Empty() {
		fmt.Fprintln(c.writer, "nothing to compare")
		return
	}
	series := m.Series()
	header := []string{"dimension"}
	for _, s := range series {
		header = append(header, s.ID)
	}
	fmt.Fprintln(c.writer, strings.Join(header, "\t"))
	for _, row := range m.Rows {
		cols := []string{string(row.Dimension)}
		for _, e := range row.Entries {
			cell := fmt.Sprintf("%.1f", e.Score)
			if e.Drift {
				cell += "*"
			}
			cols = append(cols, cell)
		}
		fmt.Fprintln(c.writer, strings.Join(cols, "\t"))
	}
	cols := []string{"overall"}
	for _, s := range series {
		cols = append(cols, fmt.Sprintf("%.1f", s.Overall))
	}
	fmt.Fprintln(c.writer, strings.Join(cols, "\t"))
}

func heatCell(score float64, drift bool) string {
	text := fmt.Sprintf("%.1f", score)
	if drift {
		text += "*"
	}
	bg := scoreColor(score).GetForeground()
	return lipgloss.NewStyle().
		Width(heatCellWidth).
		Align(lipgloss.Center).
		Foreground(lipgloss.Color("#111827")).
		Background(bg).
		Render(text)
}

// columnName labels the i-th compared record: A, B, C...
func columnName(i int) string {
	return string(rune('A' + i))
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

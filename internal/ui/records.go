package ui

import (
	"fmt"
	"io"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/idlab-discover/dt-taxonomy-cli/internal/store"
	"github.com/idlab-discover/dt-taxonomy-cli/internal/taxonomy"
)

const timeLayout = "2006-01-02 15:04"

// ListUI renders saved taxonomies and collection statistics
type ListUI struct {
	writer io.Writer
	quiet  bool
}

// NewListUI creates a new UI handler for the store commands
func NewListUI(w io.Writer, quiet bool) *ListUI {
	return &ListUI{writer: w, quiet: quiet}
}

// PrintList renders one line per record, newest last.
func (l *ListUI) PrintList(items []store.SavedTaxonomy) {
	if len(items) == 0 {
		fmt.Fprintln(l.writer, FormatStatus("info", "No saved taxonomies"))
		return
	}
	if l.quiet {
		for _, it := range items {
			fmt.Fprintf(l.writer, "%s\t%s\n", it.ID, it.Title)
		}
		return
	}

	var sb strings.Builder
	sb.WriteString(Title.Render(fmt.Sprintf("Saved Taxonomies (%d)", len(items))))
	sb.WriteString("\n\n")
	for _, it := range items {
		sb.WriteString(GetBullet() + " " + Bold.Render(it.Title))
		if it.Result != nil {
			sb.WriteString("  " + renderScoreValue(it.Result.OverallMaturityScore))
		} else {
			sb.WriteString("  " + Muted.Render("not evaluated"))
		}
		sb.WriteString("\n")
		sb.WriteString("  " + Highlight.Render(it.ID))
		sb.WriteString(Muted.Render(" · updated " + it.UpdatedAt.Local().Format(timeLayout)))
		sb.WriteString("\n")
		if it.Description != "" {
			sb.WriteString("  " + Dim.Render(it.Description))
			sb.WriteString("\n")
		}
	}
	fmt.Fprintln(l.writer, Box.Render(strings.TrimRight(sb.String(), "\n")))
}

// PrintRecord renders one record with its selections. The stored result,
// when present, is rendered separately by ResultUI.
func (l *ListUI) PrintRecord(it store.SavedTaxonomy) {
	var sb strings.Builder
	sb.WriteString(Title.Render(it.Title))
	sb.WriteString("\n")
	if it.Description != "" {
		sb.WriteString(Subtitle.Render(it.Description))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(FormatKeyValue("ID", Highlight.Render(it.ID)))
	sb.WriteString("\n")
	sb.WriteString(FormatKeyValue("Saved", it.SavedAt.Local().Format(timeLayout)))
	sb.WriteString("\n")
	sb.WriteString(FormatKeyValue("Updated", it.UpdatedAt.Local().Format(timeLayout)))
	sb.WriteString("\n\n")
	sb.WriteString(renderSelections(it.Taxonomy))

	fmt.Fprintln(l.writer, Box.Render(sb.String()))
}

// PrintStats renders the collection summary.
func (l *ListUI) PrintStats(st store.Stats) {
	last := "never"
	if st.LastSaved != nil {
		last = st.LastSaved.Local().Format(timeLayout)
	}
	if l.quiet {
		fmt.Fprintf(l.writer, "total=%d with_results=%d last_saved=%q\n", st.Total, st.WithResults, last)
		return
	}

	var sb strings.Builder
	sb.WriteString(SectionHeader.Render("Collection"))
	sb.WriteString("\n")
	sb.WriteString(FormatKeyValue("Saved taxonomies", fmt.Sprintf("%d", st.Total)))
	sb.WriteString("\n")
	sb.WriteString(FormatKeyValue("With results", fmt.Sprintf("%d", st.WithResults)))
	sb.WriteString("\n")
	sb.WriteString(FormatKeyValue("Last saved", last))
	fmt.Fprintln(l.writer, Box.Render(sb.String()))
}

// renderSelections lists every dimension with its selected labels.
func renderSelections(t taxonomy.Taxonomy) string {
	var sb strings.Builder
	sb.WriteString(SectionHeader.Render("Selections"))
	sb.WriteString("\n")

	width := 0
	for _, d := range taxonomy.Dimensions() {
		width = max(width, lipgloss.Width(d.Label()))
	}
	label := lipgloss.NewStyle().Width(width + 1)
	for _, d := range taxonomy.Dimensions() {
		sb.WriteString(Dim.Render(label.Render(d.Label())))
		sb.WriteString(" ")
		if values := selectionLabels(t, d); len(values) > 0 {
			sb.WriteString(strings.Join(values, ", "))
		} else {
			sb.WriteString(Muted.Render("not set"))
		}
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

// PrintDimensions renders the vocabulary: every dimension with its keys and
// labels.
func PrintDimensions(w io.Writer) {
	var sb strings.Builder
	for i, d := range taxonomy.Dimensions() {
		if i > 0 {
			sb.WriteString("\n")
		}
		kind := "single"
		if d.Multiple() {
			kind = "multiple"
		}
		sb.WriteString(SectionHeader.Render(d.Label()))
		sb.WriteString(Muted.Render(fmt.Sprintf(" %s (%s)", d, kind)))
		sb.WriteString("\n")
		for _, o := range d.Options() {
			sb.WriteString(fmt.Sprintf("  %s %s %s\n", GetBullet(), Primary.Render(o.Key), Dim.Render(o.Label)))
		}
	}
	fmt.Fprint(w, sb.String())
}

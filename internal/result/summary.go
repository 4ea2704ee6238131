package result

import (
	"fmt"
	"strings"
)

const summaryDateLayout = "2006-01-02"

// GenerateSummary renders the fixed-format summary, stores it in Summary and
// returns it.
func (r *Result) GenerateSummary() string {
	var b strings.Builder
	b.WriteString("Digital Twin Maturity Assessment\n")
	fmt.Fprintf(&b, "Overall maturity score: %.1f/100\n", r.OverallMaturityScore)
	fmt.Fprintf(&b, "Recommendations: %d total (%d critical, %d high priority)\n",
		len(r.Recommendations), len(r.Critical()), len(r.HighPriority()))
	fmt.Fprintf(&b, "Improvements: %d identified\n", len(r.Improvements))
	fmt.Fprintf(&b, "Generated: %s", r.GeneratedAt.Format(summaryDateLayout))
	r.Summary = b.String()
	return r.Summary
}

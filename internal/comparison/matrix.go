package comparison

import (
	"math"

	"github.com/idlab-discover/dt-taxonomy-cli/internal/scoring"
	"github.com/idlab-discover/dt-taxonomy-cli/internal/store"
	"github.com/idlab-discover/dt-taxonomy-cli/internal/taxonomy"
)

const driftTolerance = 1e-9

// Entry is one record's score on one dimension. Score is always recomputed
// from the record's taxonomy. When the record carries a stored result whose
// score differs, Drift is set and Stored holds the saved value.
type Entry struct {
	ID     string
	Title  string
	Score  float64
	Stored float64
	Drift  bool
}

// Row holds every compared record's score for one dimension.
type Row struct {
	Dimension taxonomy.Dimension
	Label     string
	Entries   []Entry
}

// Matrix is the comparison of up to MaxSelected records, one row per
// dimension in dimension order.
type Matrix struct {
	Rows []Row
}

// Series is one record's scores across every dimension, in row order.
type Series struct {
	ID      string
	Title   string
	Scores  []float64
	Overall float64
	Drift   bool
}

// Build compares records. Only the first MaxSelected are used; fewer than
// MinSelected yield an empty matrix.
func Build(records []store.SavedTaxonomy) Matrix {
	if len(records) > MaxSelected {
		logf("comparing the first %d of %d records", MaxSelected, len(records))
		records = records[:MaxSelected]
	}
	if len(records) < MinSelected {
		return Matrix{}
	}

	dims := taxonomy.Dimensions()
	rows := make([]Row, 0, len(dims))
	for _, d := range dims {
		row := Row{Dimension: d, Label: d.Label(), Entries: make([]Entry, 0, len(records))}
		for _, rec := range records {
			e := Entry{ID: rec.ID, Title: rec.Title, Score: scoring.Score(rec.Taxonomy, d)}
			if rec.Result != nil {
				if stored, ok := rec.Result.DimensionScores[d]; ok {
					e.Stored = stored
					e.Drift = math.Abs(stored-e.Score) > driftTolerance
				}
			}
			if e.Drift {
				logf("%s: stored %s score %.1f differs from recomputed %.1f", rec.ID, d, e.Stored, e.Score)
			}
			row.Entries = append(row.Entries, e)
		}
		rows = append(rows, row)
	}
	return Matrix{Rows: rows}
}

// Empty reports whether the matrix has no rows.
func (m Matrix) Empty() bool { return len(m.Rows) == 0 }

// Series returns the matrix by column: one entry per record.
func (m Matrix) Series() []Series {
	if m.Empty() {
		return nil
	}
	out := make([]Series, len(m.Rows[0].Entries))
	for i, e := range m.Rows[0].Entries {
		out[i] = Series{ID: e.ID, Title: e.Title, Scores: make([]float64, 0, len(m.Rows))}
	}
	for _, row := range m.Rows {
		for i, e := range row.Entries {
			out[i].Scores = append(out[i].Scores, e.Score)
			out[i].Drift = out[i].Drift || e.Drift
		}
	}
	for i := range out {
		var sum float64
		for _, s := range out[i].Scores {
			sum += s
		}
		out[i].Overall = sum / float64(len(out[i].Scores))
	}
	return out
}

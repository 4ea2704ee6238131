// Package comparison lines up the dimension scores of several saved
// taxonomies side by side.
package comparison

import "slices"

// MaxSelected is the largest number of taxonomies compared at once.
const MaxSelected = 5

// MinSelected is the smallest number of taxonomies that yields a comparison.
const MinSelected = 2

// Selection is an ordered set of record ids capped at MaxSelected. The zero
// value is empty and ready to use.
type Selection struct {
	ids []string
}

// NewSelection adds ids in order, ignoring duplicates and anything past the
// cap.
func NewSelection(ids ...string) *Selection {
	s := &Selection{}
	for _, id := range ids {
		if !s.Add(id) && !s.Contains(id) {
			logf("selection full, ignoring %s", id)
		}
	}
	return s
}

// Add appends id. It reports false, leaving the selection unchanged, when id
// is already selected or the selection is full.
func (s *Selection) Add(id string) bool {
	if s.Contains(id) || len(s.ids) >= MaxSelected {
		return false
	}
	s.ids = append(s.ids, id)
	return true
}

// Remove drops id, reporting whether it was selected.
func (s *Selection) Remove(id string) bool {
	i := slices.Index(s.ids, id)
	if i < 0 {
		return false
	}
	s.ids = slices.Delete(s.ids, i, i+1)
	return true
}

// Toggle removes id when selected and adds it otherwise. It reports whether
// id is selected afterwards.
func (s *Selection) Toggle(id string) bool {
	if s.Remove(id) {
		return false
	}
	return s.Add(id)
}

func (s *Selection) Contains(id string) bool { return slices.Contains(s.ids, id) }

func (s *Selection) Len() int { return len(s.ids) }

func (s *Selection) Full() bool { return len(s.ids) >= MaxSelected }

// Ready reports whether enough ids are selected to compare.
func (s *Selection) Ready() bool { return len(s.ids) >= MinSelected }

// IDs returns the selected ids in selection order.
func (s *Selection) IDs() []string { return slices.Clone(s.ids) }

func (s *Selection) Clear() { s.ids = nil }

// Package selection tracks the set of code points selected for bulk
// export. The set is independent of the filter state: it persists across
// filter and search changes so a user can multi-select across several
// searches, and is cleared when selection mode is exited.
package selection

import (
	"github.com/runegrid/runegrid/internal/codepoint"
)

// Set is an insertion-ordered set of selected code points. It is owned by
// a single control point and mutated only through its methods; it is not
// safe for concurrent use and does not need to be.
type Set struct {
	order   []rune
	members map[rune]bool
}

// NewSet returns an empty selection set.
func NewSet() *Set {
	return &Set{members: make(map[rune]bool)}
}

// Toggle flips membership of r. Newly added code points go to the end of
// the order; removal keeps the relative order of the rest.
func (s *Set) Toggle(r rune) {
	if s.members[r] {
		delete(s.members, r)
		for i, existing := range s.order {
			if existing == r {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
		return
	}
	s.members[r] = true
	s.order = append(s.order, r)
}

// Contains reports whether r is selected.
func (s *Set) Contains(r rune) bool {
	return s.members[r]
}

// Len returns the number of selected code points.
func (s *Set) Len() int {
	return len(s.order)
}

// SelectAll adds every record of the currently visible filtered list, in
// list order, skipping already-selected code points. It operates over the
// visible list, never the global character space.
func (s *Set) SelectAll(visible []codepoint.Record) {
	for _, rec := range visible {
		if !s.members[rec.Rune] {
			s.members[rec.Rune] = true
			s.order = append(s.order, rec.Rune)
		}
	}
}

// Clear empties the selection. Called when selection mode is exited.
func (s *Set) Clear() {
	s.order = nil
	s.members = make(map[rune]bool)
}

// Runes returns the selected code points in insertion order.
func (s *Set) Runes() []rune {
	out := make([]rune, len(s.order))
	copy(out, s.order)
	return out
}

// Records returns the display records of the selection in insertion
// order, skipping any code point that fails conversion. This is the only
// contract the export side depends on.
func (s *Set) Records() []codepoint.Record {
	var records []codepoint.Record
	for _, r := range s.order {
		rec, err := codepoint.NewRecord(r)
		if err != nil {
			continue
		}
		records = append(records, rec)
	}
	return records
}

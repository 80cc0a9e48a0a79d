// Package filter implements the pipeline that turns the session's filter
// state into the ordered list of visible display records.
//
// The base candidate list comes from exactly one of three sources, in
// precedence order: drawn characters, the text query, or category
// enumeration. The type filter is applied afterwards, with the emoji axis
// overriding the other three types: emoji are always appended when the
// emoji type is selected, regardless of how the non-emoji candidates were
// narrowed.
package filter

import (
	"github.com/runegrid/runegrid/internal/codepoint"
)

// Type identifiers for the four type toggles.
const (
	TypeCharacters = "characters"
	TypeSymbols    = "symbols"
	TypeNumbers    = "numbers"
	TypeEmojis     = "emojis"
)

// Types is the standard set of type toggles, in display order.
var Types = []struct {
	ID    string
	Label string
}{
	{TypeCharacters, "Characters"},
	{TypeSymbols, "Symbols"},
	{TypeNumbers, "Numbers"},
	{TypeEmojis, "Emojis"},
}

// State is the complete, serializable filter state. It is owned by a
// single control point (the TUI model) and mutated only through the
// toggle methods; Apply never modifies it.
type State struct {
	// CategoryIDs is the set of selected category identifiers.
	// Empty means "all categories".
	CategoryIDs map[string]bool
	// TypeIDs is the set of selected type identifiers.
	TypeIDs map[string]bool
	// Query is the free-text search query. Empty means "no search".
	Query string
	// Drawn is the ordered sequence of code points produced by drawn-glyph
	// recognition. Non-empty Drawn takes precedence over Query, which
	// takes precedence over category browsing.
	Drawn []rune
}

// NewState returns an empty filter state: all categories, no type filter,
// no query, no drawn characters.
func NewState() State {
	return State{
		CategoryIDs: make(map[string]bool),
		TypeIDs:     make(map[string]bool),
	}
}

// ToggleCategory toggles membership of a category in the selected set.
func (s *State) ToggleCategory(id string) {
	if s.CategoryIDs == nil {
		s.CategoryIDs = make(map[string]bool)
	}
	if s.CategoryIDs[id] {
		delete(s.CategoryIDs, id)
	} else {
		s.CategoryIDs[id] = true
	}
}

// ToggleType toggles membership of a type in the selected set.
func (s *State) ToggleType(id string) {
	if s.TypeIDs == nil {
		s.TypeIDs = make(map[string]bool)
	}
	if s.TypeIDs[id] {
		delete(s.TypeIDs, id)
	} else {
		s.TypeIDs[id] = true
	}
}

// ClearDrawn discards the drawn-character results.
func (s *State) ClearDrawn() {
	s.Drawn = nil
}

// HasActiveFilter reports whether any narrowing is in effect.
func (s *State) HasActiveFilter() bool {
	return len(s.Drawn) > 0 || s.Query != "" || len(s.CategoryIDs) > 0 || len(s.TypeIDs) > 0
}

// Searcher produces search results for a query, restricted to an optional
// category set. *search.Index satisfies it.
type Searcher interface {
	Search(query string, allowed map[string]bool) []codepoint.Record
}

// Apply runs the pipeline and returns the final ordered candidate list.
// selected is the current selection in insertion order; when a search is
// active, selected records absent from the results are prepended so a
// multi-selection survives a narrowing search. Apply is a pure function of
// its inputs and the static category table.
func Apply(s State, idx Searcher, selected []codepoint.Record) []codepoint.Record {
	base := baseList(s, idx, selected)

	// Partition on the emoji axis before any type checks.
	var emoji, rest []codepoint.Record
	for _, rec := range base {
		if codepoint.IsEmoji(rec.Rune) {
			emoji = append(emoji, rec)
		} else {
			rest = append(rest, rec)
		}
	}

	rest = applyTypeFilter(s.TypeIDs, rest)

	if s.TypeIDs[TypeEmojis] {
		return append(rest, emoji...)
	}
	return rest
}

// baseList selects the base candidates: drawn results, search results, or
// category enumeration, in that precedence order.
func baseList(s State, idx Searcher, selected []codepoint.Record) []codepoint.Record {
	if len(s.Drawn) > 0 {
		var records []codepoint.Record
		for _, r := range s.Drawn {
			rec, err := codepoint.NewRecord(r)
			if err != nil {
				continue
			}
			records = append(records, rec)
		}
		return records
	}

	if s.Query != "" {
		results := idx.Search(s.Query, s.CategoryIDs)
		return prependAbsent(selected, results)
	}

	var records []codepoint.Record
	for _, cat := range codepoint.Categories {
		if len(s.CategoryIDs) > 0 && !s.CategoryIDs[cat.ID] {
			continue
		}
		records = append(records, codepoint.RecordsForCategory(cat.ID)...)
	}
	return records
}

// prependAbsent puts selected records that a narrowing search dropped back
// at the front, in selection order, so the active multi-selection stays
// visible.
func prependAbsent(selected, results []codepoint.Record) []codepoint.Record {
	if len(selected) == 0 {
		return results
	}

	present := make(map[rune]bool, len(results))
	for _, rec := range results {
		present[rec.Rune] = true
	}

	var absent []codepoint.Record
	for _, rec := range selected {
		if !present[rec.Rune] {
			absent = append(absent, rec)
		}
	}
	if len(absent) == 0 {
		return results
	}
	return append(absent, results...)
}

// applyTypeFilter narrows non-emoji records to those matching at least one
// selected type predicate.
//
// An empty type set means no type filtering at all; with three mutually
// exhaustive non-emoji types, selecting all of them is observably the same
// thing, so both pass records through unchanged. A non-empty type set that
// selects no non-emoji type (the emoji toggle alone) is a live filter whose
// predicate disjunction is empty: no non-emoji record survives it.
func applyTypeFilter(typeIDs map[string]bool, records []codepoint.Record) []codepoint.Record {
	if len(typeIDs) == 0 {
		return records
	}
	selected := 0
	for _, id := range []string{TypeCharacters, TypeSymbols, TypeNumbers} {
		if typeIDs[id] {
			selected++
		}
	}
	if selected == 3 {
		return records
	}
	if selected == 0 {
		return nil
	}

	var kept []codepoint.Record
	for _, rec := range records {
		if typeIDs[TypeCharacters] && codepoint.IsCharacter(rec.Rune) {
			kept = append(kept, rec)
			continue
		}
		if typeIDs[TypeSymbols] && codepoint.IsSymbol(rec.Rune) {
			kept = append(kept, rec)
			continue
		}
		if typeIDs[TypeNumbers] && codepoint.IsNumber(rec.Rune) {
			kept = append(kept, rec)
		}
	}
	return kept
}

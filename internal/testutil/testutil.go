// Package testutil provides testing utilities for Runegrid tests.
package testutil

import (
	"testing"

	"github.com/runegrid/runegrid/internal/codepoint"
)

// Record builds a character record for the given rune, failing the test
// if the rune is not a valid code point.
func Record(t *testing.T, r rune) codepoint.Record {
	t.Helper()

	rec, err := codepoint.NewRecord(r)
	if err != nil {
		t.Fatalf("failed to build record for U+%04X: %v", r, err)
	}
	return rec
}

// Records builds character records for the given runes in order.
func Records(t *testing.T, runes ...rune) []codepoint.Record {
	t.Helper()

	recs := make([]codepoint.Record, 0, len(runes))
	for _, r := range runes {
		recs = append(recs, Record(t, r))
	}
	return recs
}

// RecordRange builds records for every code point in [lo, hi] inclusive.
// Unassigned code points are still valid runes and get placeholder names.
func RecordRange(t *testing.T, lo, hi rune) []codepoint.Record {
	t.Helper()

	if hi < lo {
		t.Fatalf("invalid range U+%04X..U+%04X", lo, hi)
	}
	recs := make([]codepoint.Record, 0, int(hi-lo)+1)
	for r := lo; r <= hi; r++ {
		recs = append(recs, Record(t, r))
	}
	return recs
}

// Runes extracts the rune of each record, preserving order. Handy for
// asserting list contents without comparing full records.
func Runes(recs []codepoint.Record) []rune {
	out := make([]rune, 0, len(recs))
	for _, rec := range recs {
		out = append(out, rec.Rune)
	}
	return out
}

// Glyphs extracts the glyph of each record, preserving order.
func Glyphs(recs []codepoint.Record) []string {
	out := make([]string, 0, len(recs))
	for _, rec := range recs {
		out = append(out, rec.Glyph)
	}
	return out
}

// Package search implements the query side of the explorer: matching free
// text against code point glyphs, hex and decimal forms, and character
// names, optionally restricted to a set of categories.
package search

import (
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/runegrid/runegrid/internal/codepoint"
)

// Index holds the searchable universe: every display record reachable
// through the category table, in table order, deduplicated by code point.
// Building it walks the full table once; an Index is read-only afterwards
// and safe for concurrent use.
type Index struct {
	records []codepoint.Record
}

// NewIndex builds the index over the static category table.
func NewIndex() *Index {
	seen := make(map[rune]bool)
	var records []codepoint.Record

	for _, cat := range codepoint.Categories {
		for _, rec := range codepoint.RecordsForCategory(cat.ID) {
			if seen[rec.Rune] {
				continue
			}
			seen[rec.Rune] = true
			records = append(records, rec)
		}
	}

	return &Index{records: records}
}

// Len returns the number of indexed records.
func (ix *Index) Len() int {
	return len(ix.records)
}

// Search returns the records matching query, case-insensitively, against
// the literal glyph, the hex form ("U+XXXX" or raw hex), the decimal code
// point, and the generated and common names. A non-empty allowed set
// restricts results to those categories.
//
// Ordering is stable for identical inputs: exact glyph, hex, and decimal
// matches first, then name and partial matches, each group in ascending
// code point order. Empty queries are the caller's responsibility to
// special-case; Search returns nil for them.
func (ix *Index) Search(query string, allowed map[string]bool) []codepoint.Record {
	q := normalize(query)
	if q == "" {
		return nil
	}

	hexValue, hexOK := parseHex(q)
	decValue, decErr := strconv.Atoi(q)

	var exact, partial []codepoint.Record
	for _, rec := range ix.records {
		if len(allowed) > 0 && !allowed[rec.CategoryID] {
			continue
		}

		switch {
		case normalize(rec.Glyph) == q,
			hexOK && rec.Rune == hexValue,
			decErr == nil && rec.Decimal == decValue:
			exact = append(exact, rec)
		case matchesPartial(rec, q):
			partial = append(partial, rec)
		}
	}

	byRune := func(recs []codepoint.Record) func(i, j int) bool {
		return func(i, j int) bool { return recs[i].Rune < recs[j].Rune }
	}
	sort.SliceStable(exact, byRune(exact))
	sort.SliceStable(partial, byRune(partial))

	return append(exact, partial...)
}

// matchesPartial reports whether q is a substring of the record's hex form
// or either of its names.
func matchesPartial(rec codepoint.Record, q string) bool {
	if strings.Contains(strings.ToLower(rec.Hex), q) {
		return true
	}
	if strings.Contains(strings.ToLower(rec.Name), q) {
		return true
	}
	return rec.CommonName != "" && strings.Contains(strings.ToLower(rec.CommonName), q)
}

// parseHex interprets q as a code point in hex, with or without the "u+"
// prefix. Pure decimal digit strings are left to the decimal match so "65"
// finds 'A' rather than 'e'.
func parseHex(q string) (rune, bool) {
	s := q
	prefixed := false
	if strings.HasPrefix(s, "u+") {
		s = s[2:]
		prefixed = true
	}
	if s == "" {
		return 0, false
	}
	if !prefixed && isDecimal(s) {
		return 0, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, false
	}
	return rune(v), true
}

func isDecimal(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// normalize lowercases and NFC-normalizes a query or glyph so composed and
// decomposed forms compare equal.
func normalize(s string) string {
	return strings.ToLower(norm.NFC.String(strings.TrimSpace(s)))
}

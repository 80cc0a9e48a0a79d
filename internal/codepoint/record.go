package codepoint

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/runenames"

	"github.com/runegrid/runegrid/internal/errors"
)

// Record is the display record for a single code point. Records are value
// types: they carry everything a view needs and are regenerated on demand
// rather than cached or mutated.
type Record struct {
	// Rune is the code point itself, the sole identity key.
	Rune rune
	// Glyph is the rendered character.
	Glyph string
	// Hex is the "U+XXXX" form with at least four uppercase hex digits.
	Hex string
	// Decimal is the code point value in base ten.
	Decimal int
	// Name is the synthesized name, "Unicode U+XXXX".
	Name string
	// CommonName is the official Unicode character name, empty when the
	// code point has none.
	CommonName string
	// CategoryID and CategoryName identify the owning category, empty when
	// no category in the table claims the code point.
	CategoryID   string
	CategoryName string
	// HTMLEntity is the numeric character reference, "&#nnn;".
	HTMLEntity string
	// CSSEscape is the CSS escape sequence, `\XXXX`.
	CSSEscape string
}

// NewRecord builds the display record for r. It fails for code points that
// cannot be converted to a glyph (surrogates, values outside the Unicode
// range); callers skip such entries rather than abort the batch.
func NewRecord(r rune) (Record, error) {
	if !utf8.ValidRune(r) {
		return Record{}, errors.NewRecordError(r, errors.ErrInvalidCodePoint)
	}

	hex := FormatHex(r)
	rec := Record{
		Rune:       r,
		Glyph:      string(r),
		Hex:        hex,
		Decimal:    int(r),
		Name:       "Unicode " + hex,
		CommonName: commonName(r),
		HTMLEntity: fmt.Sprintf("&#%d;", r),
		CSSEscape:  fmt.Sprintf(`\%04X`, r),
	}
	if cat, ok := Classify(r); ok {
		rec.CategoryID = cat.ID
		rec.CategoryName = cat.Name
	}
	return rec, nil
}

// RecordsForCategory enumerates the display records of a category in
// ascending code point order, skipping code points that fail conversion.
func RecordsForCategory(id string) []Record {
	cat, ok := CategoryByID(id)
	if !ok {
		return nil
	}

	var records []Record
	for _, rg := range cat.Ranges {
		for r := rg.Lo; r <= rg.Hi; r++ {
			rec, err := NewRecord(r)
			if err != nil {
				continue
			}
			records = append(records, rec)
		}
	}
	return records
}

// FormatHex renders r in the "U+XXXX" form with at least four uppercase
// hex digits.
func FormatHex(r rune) string {
	return fmt.Sprintf("U+%04X", r)
}

// commonName returns the official Unicode name for r, or "" when the code
// point is unnamed. runenames reports placeholder names like "<control>"
// for unnamed ranges; those are treated as absent.
func commonName(r rune) string {
	name := runenames.Name(r)
	if name == "" || strings.HasPrefix(name, "<") {
		return ""
	}
	return name
}

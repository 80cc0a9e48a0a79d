// Package similar resolves visually similar characters for the detail
// view. A precomputed confusables table answers immediately; misses and
// forced recomputes rasterize the glyph and ask the recognition service.
//
// Results are session-scoped: nothing is cached beyond the current detail
// view, and a result arriving for a code point the user has already moved
// away from is discarded rather than applied.
package similar

import (
	"context"
	"sync"
	"unicode/utf8"

	"github.com/runegrid/runegrid/internal/codepoint"
	"github.com/runegrid/runegrid/internal/errors"
	"github.com/runegrid/runegrid/internal/logging"
	"github.com/runegrid/runegrid/internal/recognition"
)

// Recognizer is the recognition service dependency.
// *recognition.Client satisfies it.
type Recognizer interface {
	Recognize(ctx context.Context, bitmap []byte) ([]string, error)
}

// Resolver finds similar characters for a display record. It tracks the
// code point the detail view currently shows; resolutions for any other
// code point are stale and dropped. Safe for concurrent use.
type Resolver struct {
	recognizer Recognizer
	log        *logging.Logger

	mu      sync.Mutex
	current rune
}

// NewResolver creates a resolver backed by the given recognizer.
func NewResolver(recognizer Recognizer, log *logging.Logger) *Resolver {
	if log == nil {
		log = logging.NopLogger()
	}
	return &Resolver{
		recognizer: recognizer,
		log:        log.WithComponent("similar"),
	}
}

// SetCurrent records the code point the detail view is now showing.
// Last-requested-character wins: any in-flight resolution for a different
// code point resolves as stale.
func (r *Resolver) SetCurrent(cp rune) {
	r.mu.Lock()
	r.current = cp
	r.mu.Unlock()
}

// isCurrent checks staleness at the moment of resolution, not at request
// time.
func (r *Resolver) isCurrent(cp rune) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current == cp
}

// Resolve returns similar characters for rec, ranked by visual
// similarity, excluding rec itself.
//
// With force false, a precomputed table hit returns immediately.
// Otherwise the glyph is rasterized and sent to the recognition service;
// the first response entry (an echo of the query) is dropped and the rest
// are converted, skipping failures. Service failure yields an empty list
// and a nil error. A stale resolution returns ErrStaleResult for the
// caller to discard.
func (r *Resolver) Resolve(ctx context.Context, rec codepoint.Record, force bool) ([]codepoint.Record, error) {
	if !force {
		if similar, ok := Precomputed(rec.Rune); ok {
			return r.toRecords(similar, rec.Rune), nil
		}
	}

	if r.recognizer == nil {
		// No recognition service configured: the table is all we have.
		return nil, nil
	}

	bitmap, err := recognition.RasterizeGlyph(rec.Rune)
	if err != nil {
		r.log.Warn("rasterization failed", "code_point", rec.Hex, "error", err)
		return nil, nil
	}

	candidates, err := r.recognizer.Recognize(ctx, bitmap)
	if err != nil {
		// External failure degrades to "none found", never a hard error.
		r.log.Warn("recognition failed", "code_point", rec.Hex, "error", err)
		return nil, nil
	}

	if !r.isCurrent(rec.Rune) {
		r.log.Debug("discarding stale result", "code_point", rec.Hex)
		return nil, errors.ErrStaleResult
	}

	// The first candidate is defined to echo the query glyph.
	if len(candidates) > 0 {
		candidates = candidates[1:]
	}

	var runes []rune
	for _, glyph := range candidates {
		cp, ok := toRune(glyph)
		if !ok || cp == rec.Rune {
			continue
		}
		runes = append(runes, cp)
	}
	return r.toRecords(runes, rec.Rune), nil
}

// toRecords maps code points to display records, excluding the query code
// point and skipping conversion failures.
func (r *Resolver) toRecords(runes []rune, query rune) []codepoint.Record {
	var records []codepoint.Record
	for _, cp := range runes {
		if cp == query {
			continue
		}
		rec, err := codepoint.NewRecord(cp)
		if err != nil {
			continue
		}
		records = append(records, rec)
	}
	return records
}

// toRune converts a candidate glyph string to its code point. Candidates
// that are empty or longer than a single code point fail conversion.
func toRune(glyph string) (rune, bool) {
	if glyph == "" {
		return 0, false
	}
	cp, size := utf8.DecodeRuneInString(glyph)
	if cp == utf8.RuneError || size != len(glyph) {
		return 0, false
	}
	return cp, true
}

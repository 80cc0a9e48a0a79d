// Package grid implements the incremental list renderer: a state machine
// over {visible count, scroll offset} that presents a possibly-large
// candidate list in growing batches, and preserves the scroll position
// across filter-driven list replacements while fully resetting on genuine
// list changes.
//
// The reset-vs-filter-change classification is heuristic and approximate;
// its thresholds are configuration, not load-bearing precision.
package grid

import (
	"github.com/runegrid/runegrid/internal/codepoint"
)

// Config holds the renderer thresholds. All values have working defaults;
// they are surfaced through the config file because they are tuning knobs,
// not contracts.
type Config struct {
	// BatchSize is the number of records made visible per growth step and
	// the initial visible count after a reset.
	BatchSize int
	// BottomMargin is how close to the end of the rendered region, in
	// scroll units, a scroll event must come to trigger growth.
	BottomMargin int
	// FilterChangeRatio bounds how much the list length may change while
	// still being classified as a filter change: |new-old| < ratio*old.
	FilterChangeRatio float64
	// OffsetThreshold is the minimum recorded scroll offset for a
	// replacement to count as a filter change rather than a reset.
	OffsetThreshold int
}

// DefaultConfig returns the standard thresholds.
func DefaultConfig() Config {
	return Config{
		BatchSize:         200,
		BottomMargin:      300,
		FilterChangeRatio: 0.8,
		OffsetThreshold:   100,
	}
}

// Transition describes how the renderer handled a list replacement.
type Transition int

const (
	// TransitionReset restarts at one batch with the scroll at the top.
	TransitionReset Transition = iota
	// TransitionFilterChange keeps the visible count and restores the
	// previously recorded scroll offset after the next paint.
	TransitionFilterChange
)

// Renderer is the incremental list renderer. It is owned by the UI event
// loop and is not safe for concurrent use.
type Renderer struct {
	cfg        Config
	candidates []codepoint.Record

	visibleCount int
	scrollOffset int

	// growthPending debounces scroll-driven growth: overlapping requests
	// are ignored until the prior growth settles (next paint).
	growthPending bool
}

// NewRenderer creates a renderer with the given thresholds. Zero values
// in cfg fall back to the defaults.
func NewRenderer(cfg Config) *Renderer {
	def := DefaultConfig()
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = def.BatchSize
	}
	if cfg.BottomMargin <= 0 {
		cfg.BottomMargin = def.BottomMargin
	}
	if cfg.FilterChangeRatio <= 0 {
		cfg.FilterChangeRatio = def.FilterChangeRatio
	}
	if cfg.OffsetThreshold <= 0 {
		cfg.OffsetThreshold = def.OffsetThreshold
	}
	return &Renderer{cfg: cfg}
}

// SetCandidates replaces the candidate list and classifies the transition.
//
// The replacement counts as a filter change when both lengths are positive,
// the new length is within FilterChangeRatio of the old, and the recorded
// scroll offset exceeds OffsetThreshold; the visible count then survives
// and the caller restores the returned offset after the next paint.
// Anything else is a reset: one batch visible, scroll at the top.
func (r *Renderer) SetCandidates(candidates []codepoint.Record) (Transition, int) {
	prevLen := len(r.candidates)
	newLen := len(candidates)
	r.candidates = candidates
	r.growthPending = false

	diff := newLen - prevLen
	if diff < 0 {
		diff = -diff
	}

	if prevLen > 0 && newLen > 0 &&
		float64(diff) < r.cfg.FilterChangeRatio*float64(prevLen) &&
		r.scrollOffset > r.cfg.OffsetThreshold {
		return TransitionFilterChange, r.scrollOffset
	}

	r.visibleCount = min(r.cfg.BatchSize, newLen)
	r.scrollOffset = 0
	return TransitionReset, 0
}

// Visible returns the rendered prefix, always candidates[0:visibleCount].
// No reordering, no deduplication.
func (r *Renderer) Visible() []codepoint.Record {
	n := min(r.visibleCount, len(r.candidates))
	return r.candidates[:n]
}

// VisibleCount returns the current visible count, clamped to the
// candidate list.
func (r *Renderer) VisibleCount() int {
	return min(r.visibleCount, len(r.candidates))
}

// TotalCount returns the full candidate count.
func (r *Renderer) TotalCount() int {
	return len(r.candidates)
}

// RecordScroll stores the current scroll offset. The offset feeds the
// filter-change classification of the next list replacement.
func (r *Renderer) RecordScroll(offset int) {
	r.scrollOffset = offset
}

// ScrollOffset returns the last recorded scroll offset.
func (r *Renderer) ScrollOffset() int {
	return r.scrollOffset
}

// HandleScroll processes a scroll event. offset is the top of the
// viewport, viewportExtent its height, and contentExtent the height of the
// rendered region, all in the same units. When the event lands within
// BottomMargin of the bottom while unrendered candidates remain, the
// visible count grows by one batch, capped at the candidate count.
// Overlapping growth requests are ignored until SettleGrowth is called.
// Returns true when the visible count grew.
func (r *Renderer) HandleScroll(offset, viewportExtent, contentExtent int) bool {
	r.scrollOffset = offset

	if r.growthPending {
		return false
	}
	if r.visibleCount >= len(r.candidates) {
		return false
	}
	if offset+viewportExtent < contentExtent-r.cfg.BottomMargin {
		return false
	}

	r.visibleCount = min(r.visibleCount+r.cfg.BatchSize, len(r.candidates))
	r.growthPending = true
	return true
}

// SettleGrowth clears the growth debounce. The UI calls it once the grown
// region has painted.
func (r *Renderer) SettleGrowth() {
	r.growthPending = false
}

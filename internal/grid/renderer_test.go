package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runegrid/runegrid/internal/codepoint"
	"github.com/runegrid/runegrid/internal/testutil"
)

// fakeList builds n distinct records without touching the category table.
func fakeList(t *testing.T, n int) []codepoint.Record {
	t.Helper()
	return testutil.RecordRange(t, 0x4E00, rune(0x4E00+n-1))
}

func TestSetCandidates_InitialReset(t *testing.T) {
	r := NewRenderer(DefaultConfig())

	tr, offset := r.SetCandidates(fakeList(t, 1000))
	assert.Equal(t, TransitionReset, tr)
	assert.Equal(t, 0, offset)
	assert.Equal(t, 200, r.VisibleCount())
	assert.Len(t, r.Visible(), 200)
}

func TestSetCandidates_ShortListClampsBatch(t *testing.T) {
	r := NewRenderer(DefaultConfig())

	_, _ = r.SetCandidates(fakeList(t, 50))
	assert.Equal(t, 50, r.VisibleCount())
}

func TestSetCandidates_FilterChangeKeepsPosition(t *testing.T) {
	r := NewRenderer(DefaultConfig())
	_, _ = r.SetCandidates(fakeList(t, 1000))
	r.RecordScroll(500)

	// 900 is within 80% of 1000 and the offset exceeds the threshold.
	tr, offset := r.SetCandidates(fakeList(t, 900))
	assert.Equal(t, TransitionFilterChange, tr)
	assert.Equal(t, 500, offset, "recorded offset is restored after the next paint")
	assert.Equal(t, 200, r.VisibleCount(), "visible count unchanged")
}

func TestSetCandidates_LargeChangeResets(t *testing.T) {
	r := NewRenderer(DefaultConfig())
	_, _ = r.SetCandidates(fakeList(t, 1000))
	r.RecordScroll(500)

	// |100 - 1000| = 900 >= 0.8*1000: a different list, reset.
	tr, offset := r.SetCandidates(fakeList(t, 100))
	assert.Equal(t, TransitionReset, tr)
	assert.Equal(t, 0, offset)
	assert.Equal(t, 0, r.ScrollOffset())
}

func TestSetCandidates_SmallOffsetResets(t *testing.T) {
	r := NewRenderer(DefaultConfig())
	_, _ = r.SetCandidates(fakeList(t, 1000))
	r.RecordScroll(50) // below the 100-unit threshold

	tr, _ := r.SetCandidates(fakeList(t, 900))
	assert.Equal(t, TransitionReset, tr)
}

func TestSetCandidates_EmptyToNonEmptyResets(t *testing.T) {
	r := NewRenderer(DefaultConfig())
	_, _ = r.SetCandidates(nil)
	r.RecordScroll(500)

	tr, _ := r.SetCandidates(fakeList(t, 400))
	assert.Equal(t, TransitionReset, tr, "prev length zero is never a filter change")
}

func TestHandleScroll_BatchGrowth(t *testing.T) {
	r := NewRenderer(DefaultConfig())
	_, _ = r.SetCandidates(fakeList(t, 1000))

	// Within 300 units of the bottom of the rendered region.
	grew := r.HandleScroll(3500, 40, 3800)
	assert.True(t, grew)
	assert.Equal(t, 400, r.VisibleCount())

	// Debounced until the growth settles.
	grew = r.HandleScroll(3600, 40, 3800)
	assert.False(t, grew)
	assert.Equal(t, 400, r.VisibleCount())

	r.SettleGrowth()
	grew = r.HandleScroll(7300, 40, 7600)
	assert.True(t, grew)
	assert.Equal(t, 600, r.VisibleCount())
}

func TestHandleScroll_NeverExceedsCandidates(t *testing.T) {
	r := NewRenderer(DefaultConfig())
	_, _ = r.SetCandidates(fakeList(t, 450))

	r.HandleScroll(1000, 40, 1100)
	r.SettleGrowth()
	assert.Equal(t, 400, r.VisibleCount())

	r.HandleScroll(1500, 40, 1600)
	r.SettleGrowth()
	assert.Equal(t, 450, r.VisibleCount())

	// Fully rendered: no further growth.
	assert.False(t, r.HandleScroll(1700, 40, 1750))
}

func TestHandleScroll_FarFromBottom(t *testing.T) {
	r := NewRenderer(DefaultConfig())
	_, _ = r.SetCandidates(fakeList(t, 1000))

	assert.False(t, r.HandleScroll(100, 40, 3800))
	assert.Equal(t, 200, r.VisibleCount())
	assert.Equal(t, 100, r.ScrollOffset(), "offset is recorded even without growth")
}

func TestVisible_AlwaysPrefix(t *testing.T) {
	r := NewRenderer(Config{BatchSize: 3})
	list := fakeList(t, 10)
	_, _ = r.SetCandidates(list)

	visible := r.Visible()
	require.Len(t, visible, 3)
	assert.Equal(t, list[:3], visible, "visible region is the untouched prefix")
}

func TestConfigDefaults(t *testing.T) {
	r := NewRenderer(Config{})
	assert.Equal(t, DefaultConfig(), r.cfg)
}

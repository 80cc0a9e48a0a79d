package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runegrid/runegrid/internal/codepoint"
)

func TestToggle(t *testing.T) {
	s := NewSet()

	s.Toggle('A')
	s.Toggle('€')
	assert.True(t, s.Contains('A'))
	assert.True(t, s.Contains('€'))
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []rune{'A', '€'}, s.Runes())

	s.Toggle('A')
	assert.False(t, s.Contains('A'))
	assert.Equal(t, []rune{'€'}, s.Runes())

	// Re-adding goes to the end.
	s.Toggle('A')
	assert.Equal(t, []rune{'€', 'A'}, s.Runes())
}

func TestSelectAll_VisibleListOnly(t *testing.T) {
	s := NewSet()
	s.Toggle('Z')

	visible := codepoint.RecordsForCategory("currency")
	s.SelectAll(visible)

	assert.Equal(t, 1+len(visible), s.Len())
	assert.Equal(t, 'Z', s.Runes()[0], "earlier selection keeps its position")
	assert.True(t, s.Contains(0x20AC))

	// Selecting all twice does not duplicate.
	s.SelectAll(visible)
	assert.Equal(t, 1+len(visible), s.Len())
}

func TestClear(t *testing.T) {
	s := NewSet()
	s.Toggle('A')
	s.Toggle('B')

	s.Clear()
	assert.Equal(t, 0, s.Len())
	assert.False(t, s.Contains('A'))
	assert.Empty(t, s.Runes())
}

func TestRecords_InsertionOrder(t *testing.T) {
	s := NewSet()
	s.Toggle(0x1F600)
	s.Toggle('A')

	records := s.Records()
	require.Len(t, records, 2)
	assert.Equal(t, rune(0x1F600), records[0].Rune)
	assert.Equal(t, 'A', records[1].Rune)
}

func TestSelectionIndependentOfFilters(t *testing.T) {
	// The set has no knowledge of filter state; membership persists until
	// explicitly toggled or cleared.
	s := NewSet()
	s.Toggle(0x4E2D)

	// A "filter change" is just the caller showing different records;
	// nothing here reacts to it.
	assert.True(t, s.Contains(0x4E2D))
	s.Clear()
	assert.False(t, s.Contains(0x4E2D))
}

package codepoint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_RangeTotality(t *testing.T) {
	// Every code point within a category's ranges must classify to that
	// category and no other. Overlaps resolve by table order, so the first
	// owner in the table is the answer.
	for _, cat := range Categories {
		for _, rg := range cat.Ranges {
			for r := rg.Lo; r <= rg.Hi; r++ {
				got, ok := Classify(r)
				require.Truef(t, ok, "U+%04X should classify", r)
				first := firstOwner(r)
				assert.Equalf(t, first.ID, got.ID, "U+%04X classified as %s, table order says %s", r, got.ID, first.ID)
			}
		}
	}
}

// firstOwner scans the table in order, mirroring Classify's contract.
func firstOwner(r rune) Category {
	for _, c := range Categories {
		if c.Contains(r) {
			return c
		}
	}
	return Category{}
}

func TestClassify_Unclaimed(t *testing.T) {
	_, ok := Classify(0xE000) // private use area, not in the table
	assert.False(t, ok)
}

func TestCategoryByID(t *testing.T) {
	cat, ok := CategoryByID("arrows")
	require.True(t, ok)
	assert.Equal(t, "Arrows", cat.Name)
	assert.True(t, cat.Contains(0x2192)) // RIGHTWARDS ARROW
	assert.True(t, cat.Contains(0x27F6)) // LONG RIGHTWARDS ARROW, disjoint range
	assert.False(t, cat.Contains('A'))

	_, ok = CategoryByID("nope")
	assert.False(t, ok)
}

func TestCategories_StableIdentifiers(t *testing.T) {
	seen := make(map[string]bool)
	for _, c := range Categories {
		require.NotEmpty(t, c.ID)
		require.NotEmpty(t, c.Name)
		require.NotEmpty(t, c.Ranges)
		assert.Falsef(t, seen[c.ID], "duplicate category id %q", c.ID)
		seen[c.ID] = true
	}
}

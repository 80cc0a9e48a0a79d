package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The index is immutable; build it once for the package.
var ix = NewIndex()

func TestSearch_LiteralGlyph(t *testing.T) {
	results := ix.Search("€", nil)
	require.NotEmpty(t, results)
	assert.Equal(t, rune(0x20AC), results[0].Rune)
}

func TestSearch_HexForms(t *testing.T) {
	for _, q := range []string{"U+20AC", "u+20ac", "20AC"} {
		results := ix.Search(q, nil)
		require.NotEmptyf(t, results, "query %q", q)
		assert.Equalf(t, rune(0x20AC), results[0].Rune, "query %q", q)
	}
}

func TestSearch_Decimal(t *testing.T) {
	results := ix.Search("8364", nil) // 0x20AC
	require.NotEmpty(t, results)
	assert.Equal(t, rune(0x20AC), results[0].Rune)
}

func TestSearch_DecimalBeatsHexForDigitQueries(t *testing.T) {
	// "65" is both decimal 65 ('A') and hex 0x65 ('e'); the decimal
	// reading wins for unprefixed digit strings.
	results := ix.Search("65", nil)
	require.NotEmpty(t, results)
	assert.Equal(t, 'A', results[0].Rune)
}

func TestSearch_CommonName(t *testing.T) {
	results := ix.Search("euro sign", nil)
	require.NotEmpty(t, results)

	found := false
	for _, rec := range results {
		if rec.Rune == 0x20AC {
			found = true
		}
	}
	assert.True(t, found, "EURO SIGN should match its common name")
}

func TestSearch_CategoryRestriction(t *testing.T) {
	unrestricted := ix.Search("arrow", nil)
	require.NotEmpty(t, unrestricted)

	restricted := ix.Search("arrow", map[string]bool{"dingbats": true})
	require.NotEmpty(t, restricted)
	assert.Less(t, len(restricted), len(unrestricted))
	for _, rec := range restricted {
		assert.Equal(t, "dingbats", rec.CategoryID)
	}
}

func TestSearch_StableOrdering(t *testing.T) {
	a := ix.Search("arrow", nil)
	b := ix.Search("arrow", nil)
	require.Equal(t, a, b, "identical inputs must produce identical output")

	// Partial matches are in ascending code point order.
	for i := 1; i < len(a); i++ {
		assert.LessOrEqual(t, a[i-1].Rune, a[i].Rune)
	}
}

func TestSearch_EmptyQuery(t *testing.T) {
	assert.Nil(t, ix.Search("", nil))
	assert.Nil(t, ix.Search("   ", nil))
}

func TestSearch_CaseInsensitive(t *testing.T) {
	upper := ix.Search("EURO", nil)
	lower := ix.Search("euro", nil)
	assert.Equal(t, upper, lower)
}

// Package internal contains integration tests that verify the explorer
// packages work together correctly: classification feeding the search
// index, the filter pipeline feeding the incremental renderer, and the
// selection set feeding export.
package internal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runegrid/runegrid/internal/codepoint"
	"github.com/runegrid/runegrid/internal/export"
	"github.com/runegrid/runegrid/internal/filter"
	"github.com/runegrid/runegrid/internal/grid"
	"github.com/runegrid/runegrid/internal/logging"
	"github.com/runegrid/runegrid/internal/search"
	"github.com/runegrid/runegrid/internal/selection"
)

// TestSearchToGridPipeline drives a query through the filter pipeline
// into the renderer, the way the TUI does on every keystroke.
func TestSearchToGridPipeline(t *testing.T) {
	idx := search.NewIndex()
	state := filter.NewState()
	renderer := grid.NewRenderer(grid.DefaultConfig())

	// Initial unfiltered list: one batch visible
	candidates := filter.Apply(state, idx, nil)
	require.NotEmpty(t, candidates)
	transition, _ := renderer.SetCandidates(candidates)
	assert.Equal(t, grid.TransitionReset, transition)
	assert.Equal(t, grid.DefaultConfig().BatchSize, renderer.VisibleCount())

	// A query narrows the list to search results
	state.Query = "arrow"
	narrowed := filter.Apply(state, idx, nil)
	require.NotEmpty(t, narrowed)
	assert.Less(t, len(narrowed), len(candidates))
	for _, rec := range narrowed {
		found := false
		for _, hit := range idx.Search("arrow", nil) {
			if hit.Rune == rec.Rune {
				found = true
				break
			}
		}
		assert.True(t, found, "unexpected record %s in results", rec.Hex)
	}

	// Clearing the query restores the original list exactly
	state.Query = ""
	restored := filter.Apply(state, idx, nil)
	assert.Equal(t, candidates, restored)
}

// TestSelectionSurvivesSearch verifies that selected characters are
// prepended to search results they would otherwise vanish from.
func TestSelectionSurvivesSearch(t *testing.T) {
	idx := search.NewIndex()
	state := filter.NewState()
	sel := selection.NewSet()

	sel.Toggle('A')

	state.Query = "euro"
	results := filter.Apply(state, idx, sel.Records())
	require.NotEmpty(t, results)
	assert.Equal(t, 'A', results[0].Rune, "selected record should lead the list")
}

// TestSelectionToExport walks a selection through bulk export.
func TestSelectionToExport(t *testing.T) {
	dir := t.TempDir()
	sel := selection.NewSet()
	sel.Toggle('A')
	sel.Toggle('€')

	exporter := export.New(dir, "", logging.NopLogger())
	paths, err := exporter.Bulk(sel.Records())
	require.NoError(t, err)
	assert.Len(t, paths, 4) // SVG and PNG per character

	for _, path := range paths {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
		assert.Equal(t, dir, filepath.Dir(path))
	}
}

// TestCategoryEnumerationMatchesClassification checks that every record
// a category enumerates classifies back to that category.
func TestCategoryEnumerationMatchesClassification(t *testing.T) {
	for _, cat := range codepoint.Categories {
		records := codepoint.RecordsForCategory(cat.ID)
		require.NotEmpty(t, records, "category %s is empty", cat.ID)

		for _, rec := range records {
			got, ok := codepoint.Classify(rec.Rune)
			require.True(t, ok)
			// First-match-wins classification: the owner is the first
			// category in table order whose ranges contain the rune.
			if got.ID != cat.ID {
				owns := false
				for _, earlier := range codepoint.Categories {
					if earlier.ID == got.ID {
						owns = earlier.Contains(rec.Rune)
						break
					}
				}
				assert.True(t, owns, "rune %s claimed by %s but classified %s", rec.Hex, cat.ID, got.ID)
			}
		}
	}
}

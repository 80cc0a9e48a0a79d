package msg

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/runegrid/runegrid/internal/codepoint"
	"github.com/runegrid/runegrid/internal/export"
	"github.com/runegrid/runegrid/internal/meta"
	"github.com/runegrid/runegrid/internal/recognition"
	"github.com/runegrid/runegrid/internal/similar"
)

// ScrollSettleDelay is how long the grid waits after the last scroll
// event before allowing another growth step.
const ScrollSettleDelay = 150 * time.Millisecond

// ResolveSimilarAsync returns a command that resolves look-alike
// characters in a goroutine, avoiding blocking the UI event loop with
// a possible network round trip.
func ResolveSimilarAsync(resolver *similar.Resolver, rec codepoint.Record, force bool) tea.Cmd {
	return func() tea.Msg {
		records, err := resolver.Resolve(context.Background(), rec, force)
		return SimilarResultMsg{ForRune: rec.Rune, Records: records, Err: err}
	}
}

// RecognizeCanvasAsync returns a command that rasterizes a canvas sketch
// and sends it to the recognition service in a goroutine.
func RecognizeCanvasAsync(client *recognition.Client, cells [][]bool, token int) tea.Cmd {
	return func() tea.Msg {
		bitmap, err := recognition.RasterizeCanvas(cells)
		if err != nil {
			return DrawRecognizedMsg{Token: token, Err: err}
		}

		glyphs, err := client.Recognize(context.Background(), bitmap)
		if err != nil {
			return DrawRecognizedMsg{Token: token, Err: err}
		}

		var candidates []codepoint.Record
		for _, glyph := range glyphs {
			runes := []rune(glyph)
			if len(runes) != 1 {
				continue
			}
			rec, err := codepoint.NewRecord(runes[0])
			if err != nil {
				continue
			}
			candidates = append(candidates, rec)
		}
		return DrawRecognizedMsg{Token: token, Candidates: candidates}
	}
}

// CheckArticleAsync returns a command that checks for a reference
// article in a goroutine. Lookup failures read as "no article".
func CheckArticleAsync(client *meta.Client, rec codepoint.Record) tea.Cmd {
	return func() tea.Msg {
		exists := client.ArticleExists(context.Background(), rec)
		return ArticleMsg{ForRune: rec.Rune, Exists: exists}
	}
}

// FetchStarsAsync returns a command that fetches the project star count
// in a goroutine.
func FetchStarsAsync(client *meta.Client) tea.Cmd {
	return func() tea.Msg {
		count, ok := client.Stars(context.Background())
		return StarsMsg{Count: count, OK: ok}
	}
}

// ExportBulkAsync returns a command that writes glyph images for every
// selected record in a goroutine.
func ExportBulkAsync(exporter *export.Exporter, records []codepoint.Record) tea.Cmd {
	return func() tea.Msg {
		paths, err := exporter.Bulk(records)
		return ExportDoneMsg{Paths: paths, Err: err}
	}
}

// ExportOneAsync returns a command that writes a single glyph image in
// the given format ("svg" or "png") in a goroutine.
func ExportOneAsync(exporter *export.Exporter, rec codepoint.Record, format string) tea.Cmd {
	return func() tea.Msg {
		var (
			path string
			err  error
		)
		if format == "png" {
			path, err = exporter.PNG(rec)
		} else {
			path, err = exporter.SVG(rec)
		}
		if err != nil {
			return ExportDoneMsg{Err: err}
		}
		return ExportDoneMsg{Paths: []string{path}}
	}
}

// SettleScroll returns a command that fires ScrollSettledMsg after the
// debounce interval.
func SettleScroll() tea.Cmd {
	return tea.Tick(ScrollSettleDelay, func(time.Time) tea.Msg {
		return ScrollSettledMsg{}
	})
}

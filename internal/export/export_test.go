package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runegrid/runegrid/internal/codepoint"
	"github.com/runegrid/runegrid/internal/errors"
)

func mustRecord(t *testing.T, r rune) codepoint.Record {
	t.Helper()
	rec, err := codepoint.NewRecord(r)
	require.NoError(t, err)
	return rec
}

func TestSVG(t *testing.T) {
	dir := t.TempDir()
	e := New(dir, "Noto Sans Mono", nil)

	path, err := e.SVG(mustRecord(t, 0x1F600))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "u1f600.svg"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "<svg")
	assert.Contains(t, content, "😀")
	assert.Contains(t, content, `font-family="Noto Sans Mono"`)
}

func TestSVG_EscapesMarkupGlyphs(t *testing.T) {
	dir := t.TempDir()
	e := New(dir, "", nil)

	path, err := e.SVG(mustRecord(t, '<'))
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "&lt;")
	assert.NotContains(t, string(data), "><<")
}

func TestPNG(t *testing.T) {
	dir := t.TempDir()
	e := New(dir, "Noto Sans Mono", nil)

	path, err := e.PNG(mustRecord(t, 'A'))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "u0041-noto-sans-mono.png"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "\x89PNG"), "PNG magic bytes")
}

func TestPNG_NoFontOmitsSlug(t *testing.T) {
	dir := t.TempDir()
	e := New(dir, "", nil)

	path, err := e.PNG(mustRecord(t, 'A'))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "u0041.png"), path)
}

func TestBulk(t *testing.T) {
	dir := t.TempDir()
	e := New(dir, "", nil)

	records := []codepoint.Record{
		mustRecord(t, 'A'),
		mustRecord(t, 0x20AC),
	}
	written, err := e.Bulk(records)
	require.NoError(t, err)
	assert.Len(t, written, 4, "svg and png per record")

	for _, path := range written {
		_, err := os.Stat(path)
		assert.NoErrorf(t, err, "missing %s", path)
	}
}

func TestBulk_EmptySelection(t *testing.T) {
	e := New(t.TempDir(), "", nil)
	_, err := e.Bulk(nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrNothingSelected))
}

func TestFileName(t *testing.T) {
	rec := mustRecord(t, 0x1F600)
	assert.Equal(t, "u1f600.svg", FileName(rec, "svg", ""))
	assert.Equal(t, "u1f600-fira-code.png", FileName(rec, "png", "Fira Code"))
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Noto Sans Mono":  "noto-sans-mono",
		"Fira Code":       "fira-code",
		"  spaced  out  ": "spaced-out",
		"Already-Slug":    "already-slug",
		"":                "",
	}
	for in, want := range cases {
		assert.Equalf(t, want, Slugify(in), "Slugify(%q)", in)
	}
}

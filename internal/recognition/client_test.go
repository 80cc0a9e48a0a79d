package recognition

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runegrid/runegrid/internal/errors"
	"github.com/runegrid/runegrid/internal/logging"
)

func TestRecognize(t *testing.T) {
	var gotContentType string
	var gotBody int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		buf := make([]byte, 1<<16)
		n, _ := r.Body.Read(buf)
		gotBody = n
		w.Write([]byte(`["A","Á","Ä","4"]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, logging.NopLogger())

	bitmap, err := RasterizeGlyph('A')
	require.NoError(t, err)

	candidates, err := c.Recognize(context.Background(), bitmap)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "Á", "Ä", "4"}, candidates)
	assert.Equal(t, "image/png", gotContentType)
	assert.Positive(t, gotBody)
}

func TestRecognize_Non2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, nil)
	_, err := c.Recognize(context.Background(), []byte("x"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrRecognitionUnavailable))

	var recErr *errors.RecognitionError
	require.True(t, errors.As(err, &recErr))
	assert.Equal(t, http.StatusBadGateway, recErr.StatusCode)
}

func TestRecognize_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, nil)
	_, err := c.Recognize(context.Background(), []byte("x"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrRecognitionMalformed))
}

func TestRecognize_Unreachable(t *testing.T) {
	c := NewClient("http://127.0.0.1:1", 100*time.Millisecond, nil)
	_, err := c.Recognize(context.Background(), []byte("x"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrRecognitionUnavailable))
}

func TestRasterizeGlyph_FixedSize(t *testing.T) {
	a, err := RasterizeGlyph('A')
	require.NoError(t, err)
	b, err := RasterizeGlyph('B')
	require.NoError(t, err)

	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b, "different glyphs produce different bitmaps")
}

func TestRasterizeCanvas(t *testing.T) {
	cells := make([][]bool, 8)
	for i := range cells {
		cells[i] = make([]bool, 8)
	}
	cells[3][4] = true

	payload, err := RasterizeCanvas(cells)
	require.NoError(t, err)
	assert.NotEmpty(t, payload)

	empty := make([][]bool, 8)
	for i := range empty {
		empty[i] = make([]bool, 8)
	}
	blank, err := RasterizeCanvas(empty)
	require.NoError(t, err)
	assert.NotEqual(t, payload, blank)
}

func TestRasterizeCanvas_Empty(t *testing.T) {
	_, err := RasterizeCanvas(nil)
	require.Error(t, err)
	_, err = RasterizeCanvas([][]bool{{}})
	require.Error(t, err)
}

package meta

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runegrid/runegrid/internal/codepoint"
)

func mustRecord(t *testing.T, r rune) codepoint.Record {
	t.Helper()
	rec, err := codepoint.NewRecord(r)
	require.NoError(t, err)
	return rec
}

func TestArticleTitle(t *testing.T) {
	assert.Equal(t, "U%2B20AC", ArticleTitle(mustRecord(t, 0x20AC)))
}

func TestArticleExists(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		if r.Method != http.MethodHead {
			t.Errorf("expected HEAD, got %s", r.Method)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/wiki/%s", "", time.Second, nil)
	assert.True(t, c.ArticleExists(context.Background(), mustRecord(t, 0x20AC)))
	assert.Contains(t, gotPath, "U%2B20AC")
}

func TestArticleExists_FailureDefaultsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/wiki/%s", "", time.Second, nil)
	assert.False(t, c.ArticleExists(context.Background(), mustRecord(t, 0xE000)))

	// Unreachable host is also just "unavailable".
	down := NewClient("http://127.0.0.1:1/wiki/%s", "", 100*time.Millisecond, nil)
	assert.False(t, down.ArticleExists(context.Background(), mustRecord(t, 'A')))

	// No configured URL.
	unset := NewClient("", "", time.Second, nil)
	assert.False(t, unset.ArticleExists(context.Background(), mustRecord(t, 'A')))
}

func TestStars(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"stargazers_count": 1234}`))
	}))
	defer srv.Close()

	c := NewClient("", srv.URL, time.Second, nil)
	stars, ok := c.Stars(context.Background())
	require.True(t, ok)
	assert.Equal(t, 1234, stars)
}

func TestStars_SilentFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	c := NewClient("", srv.URL, time.Second, nil)
	_, ok := c.Stars(context.Background())
	assert.False(t, ok)

	unset := NewClient("", "", time.Second, nil)
	_, ok = unset.Stars(context.Background())
	assert.False(t, ok)
}

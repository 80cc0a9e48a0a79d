// Package meta performs the explorer's best-effort metadata lookups: the
// article-existence check that decides whether the detail view's external
// reference link is enabled, and the one-shot repository star count shown
// in the footer. Every failure here is silent: the link shows as
// unavailable, the counter stays unset, and the detail view is never
// blocked.
package meta

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/runegrid/runegrid/internal/codepoint"
	"github.com/runegrid/runegrid/internal/logging"
)

// Client performs the metadata lookups. Safe for concurrent use.
type Client struct {
	articleURL string
	repoURL    string
	client     *http.Client
	log        *logging.Logger
}

// NewClient creates a metadata client. articleURL must contain a single
// %s verb that receives the generated article title; repoURL is the
// repository API endpoint returning a stargazers count.
func NewClient(articleURL, repoURL string, timeout time.Duration, log *logging.Logger) *Client {
	if log == nil {
		log = logging.NopLogger()
	}
	return &Client{
		articleURL: articleURL,
		repoURL:    repoURL,
		client:     &http.Client{Timeout: timeout},
		log:        log.WithComponent("meta"),
	}
}

// ArticleTitle generates the article title for a record from its hex
// form, e.g. "U+20AC" -> "U%2B20AC" in the URL path.
func ArticleTitle(rec codepoint.Record) string {
	return strings.ReplaceAll(rec.Hex, "+", "%2B")
}

// ArticleExists reports whether the external reference article for the
// code point is reachable. Any failure, including a missing configured
// URL, defaults to unavailable.
func (c *Client) ArticleExists(ctx context.Context, rec codepoint.Record) bool {
	if c.articleURL == "" {
		return false
	}

	url := fmt.Sprintf(c.articleURL, ArticleTitle(rec))
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return false
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.log.Debug("article check failed", "code_point", rec.Hex, "error", err)
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode >= 200 && resp.StatusCode < 300
}

// Stars fetches the repository star count. The boolean is false on any
// failure, leaving the counter unset.
func (c *Client) Stars(ctx context.Context) (int, bool) {
	if c.repoURL == "" {
		return 0, false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.repoURL, nil)
	if err != nil {
		return 0, false
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.log.Debug("star fetch failed", "error", err)
		return 0, false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, false
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return 0, false
	}

	var payload struct {
		Stars int `json:"stargazers_count"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		c.log.Debug("star response was not valid JSON", "error", err)
		return 0, false
	}
	return payload.Stars, true
}

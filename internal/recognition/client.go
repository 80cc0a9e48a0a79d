// Package recognition talks to the external glyph recognition service.
// The request is an opaque fixed-size bitmap; the response is an ordered
// list of candidate glyph strings whose first entry echoes the input
// glyph. Service failures never propagate past the caller as hard errors:
// the resolver degrades them to "no similar characters found".
package recognition

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/runegrid/runegrid/internal/errors"
	"github.com/runegrid/runegrid/internal/logging"
)

// maxResponseBytes bounds how much of a response body is read. The
// service returns a short JSON array; anything larger is malformed.
const maxResponseBytes = 1 << 20

// Client is the recognition service client. It is safe for concurrent
// use; each request carries its own context.
type Client struct {
	url    string
	client *http.Client
	log    *logging.Logger
}

// NewClient creates a client for the service at url. A zero timeout
// disables the client-side deadline; per-request contexts still apply.
func NewClient(url string, timeout time.Duration, log *logging.Logger) *Client {
	if log == nil {
		log = logging.NopLogger()
	}
	return &Client{
		url:    url,
		client: &http.Client{Timeout: timeout},
		log:    log.WithComponent("recognition"),
	}
}

// Recognize submits a PNG bitmap and returns the ordered candidate glyph
// list. The first entry is defined to echo the input glyph; callers drop
// it. Non-2xx statuses and undecodable bodies are returned as
// RecognitionErrors for the caller to degrade.
func (c *Client) Recognize(ctx context.Context, bitmap []byte) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(bitmap))
	if err != nil {
		return nil, errors.NewRecognitionError("building request", err).WithURL(c.url)
	}
	req.Header.Set("Content-Type", "image/png")

	resp, err := c.client.Do(req)
	if err != nil {
		c.log.Warn("recognition request failed", "error", err)
		return nil, errors.NewRecognitionError("request", errors.ErrRecognitionUnavailable).WithURL(c.url)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Warn("recognition service returned error status", "status", resp.StatusCode)
		return nil, errors.NewRecognitionError("response", errors.ErrRecognitionUnavailable).
			WithStatus(resp.StatusCode).WithURL(c.url)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, errors.NewRecognitionError("reading response", err).WithURL(c.url)
	}

	var candidates []string
	if err := json.Unmarshal(body, &candidates); err != nil {
		c.log.Warn("recognition response was not valid JSON", "error", err)
		return nil, errors.NewRecognitionError("decoding response", errors.ErrRecognitionMalformed).WithURL(c.url)
	}

	c.log.Debug("recognition completed", "candidates", len(candidates))
	return candidates, nil
}

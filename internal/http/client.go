// Package http provides the thin HTTP client used to fetch placeholder
// images.
//
// The client carries a User-Agent header and a configurable timeout so an
// unresponsive image host can never block a batch run indefinitely.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client wraps HTTP GET operations for the image fetcher.
//
// Example:
//
//	client := http.NewClient(60 * time.Second)
//	body, err := client.Get(ctx, "https://host/mp00042.jpg")
type Client struct {
	httpClient *http.Client
	userAgent  string
}

// NewClient creates a Client with the given request timeout.
//
// A zero timeout means no timeout, which reproduces a plain blocking
// fetch; the default settings always pass a positive value.
func NewClient(timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		userAgent: "collection-gen",
	}
}

// Get performs a GET request and returns the response body as bytes.
//
// Any status other than 200 OK is an error. Placeholder images are small,
// so bodies are read fully into memory rather than streamed to disk.
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	return io.ReadAll(resp.Body)
}

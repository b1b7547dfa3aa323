// Package fetch loads JSON documents for the aggregator. Sources are
// static exports, so a document lives either behind an http(s) URL or on
// the local filesystem; both look the same to the caller.
package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"
)

// Client loads one JSON document into v.
type Client interface {
	FetchJSON(ctx context.Context, ref string, v any) error
}

// HTTPClient is the default Client. Refs with an http(s) scheme go over
// the network; anything else is treated as a file path.
type HTTPClient struct {
	hc *http.Client
}

func New(timeout time.Duration) *HTTPClient {
	return &HTTPClient{hc: &http.Client{Timeout: timeout}}
}

func (c *HTTPClient) FetchJSON(ctx context.Context, ref string, v any) error {
	if u, err := url.Parse(ref); err == nil && (u.Scheme == "http" || u.Scheme == "https") {
		return c.fetchHTTP(ctx, ref, v)
	}
	return readFile(ref, v)
}

func (c *HTTPClient) fetchHTTP(ctx context.Context, rawURL string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("fetching %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetching %s: unexpected status %s", rawURL, resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decoding %s: %w", rawURL, err)
	}
	return nil
}

func readFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}
	return nil
}

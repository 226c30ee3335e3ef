// Package http provides HTTP-based implementations of the pagemd network
// interfaces: page fetching, URL validation, and image downloading.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/pagemd/pagemd"
)

// DefaultTimeout is the default timeout for HTTP requests.
const DefaultTimeout = 10 * time.Second

// userAgent mirrors what the browsers send; some sites reject requests
// without one.
const userAgent = "Mozilla/5.0"

// Ensure Fetcher implements pagemd.Fetcher at compile time.
var _ pagemd.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves page HTML using plain HTTP requests. It does not
// execute JavaScript and is suitable for static pages only.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

// FetcherOption configures a Fetcher.
type FetcherOption func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultTimeout if not specified.
func WithTimeout(d time.Duration) FetcherOption {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...FetcherOption) *Fetcher {
	f := &Fetcher{
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML content at url. A transport failure or a
// non-success status fails with EFETCH.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", pagemd.Errorf(pagemd.EFETCH, "failed to build request for %s: %v", url, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", pagemd.Errorf(pagemd.EFETCH, "failed to fetch %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", pagemd.Errorf(pagemd.EFETCH, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", pagemd.Errorf(pagemd.EFETCH, "failed to read body of %s: %v", url, err)
	}

	return string(body), nil
}

// Close releases resources. No-op for the HTTP fetcher since http.Client
// doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}

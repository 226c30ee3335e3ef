package pagemd

import "context"

// Fetcher retrieves page HTML from URLs.
type Fetcher interface {
	// Fetch returns the body of the page at url.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}

// Downloader retrieves raw bytes, typically image content.
type Downloader interface {
	// Download returns the bytes at url. A transport failure or
	// non-success status fails with EFETCH.
	Download(ctx context.Context, url string) ([]byte, error)
}

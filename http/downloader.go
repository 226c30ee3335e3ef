package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/pagemd/pagemd"
	"golang.org/x/time/rate"
)

// Ensure Downloader implements pagemd.Downloader at compile time.
var _ pagemd.Downloader = (*Downloader)(nil)

// Downloader retrieves raw bytes, typically image content. Downloads are
// strictly sequential; the optional rate limit only spaces requests out.
type Downloader struct {
	client  *http.Client
	timeout time.Duration
	limiter *rate.Limiter
}

// DownloaderOption configures a Downloader.
type DownloaderOption func(*Downloader)

// WithDownloadTimeout sets the timeout for download requests.
// Defaults to DefaultTimeout if not specified.
func WithDownloadTimeout(d time.Duration) DownloaderOption {
	return func(dl *Downloader) {
		dl.timeout = d
	}
}

// WithRateLimit caps downloads at rps requests per second with a burst of
// one. Zero or negative rps disables limiting.
func WithRateLimit(rps float64) DownloaderOption {
	return func(dl *Downloader) {
		if rps > 0 {
			dl.limiter = rate.NewLimiter(rate.Limit(rps), 1)
		}
	}
}

// NewDownloader creates a new Downloader.
func NewDownloader(opts ...DownloaderOption) *Downloader {
	dl := &Downloader{
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(dl)
	}

	dl.client = &http.Client{
		Timeout: dl.timeout,
	}

	return dl
}

// Download retrieves the bytes at url.
func (dl *Downloader) Download(ctx context.Context, url string) ([]byte, error) {
	if dl.limiter != nil {
		if err := dl.limiter.Wait(ctx); err != nil {
			return nil, pagemd.Errorf(pagemd.EFETCH, "failed to download %s: %v", url, err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, pagemd.Errorf(pagemd.EFETCH, "failed to build request for %s: %v", url, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := dl.client.Do(req)
	if err != nil {
		return nil, pagemd.Errorf(pagemd.EFETCH, "failed to download %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, pagemd.Errorf(pagemd.EFETCH, "HTTP %d for %s", resp.StatusCode, url)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, pagemd.Errorf(pagemd.EFETCH, "failed to read body of %s: %v", url, err)
	}

	return data, nil
}

package mock

import (
	"context"

	"github.com/pagemd/pagemd"
)

var _ pagemd.Downloader = (*Downloader)(nil)

// Downloader is a mock implementation of pagemd.Downloader.
type Downloader struct {
	DownloadFn func(ctx context.Context, url string) ([]byte, error)
}

func (d *Downloader) Download(ctx context.Context, url string) ([]byte, error) {
	return d.DownloadFn(ctx, url)
}

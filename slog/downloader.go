package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/pagemd/pagemd"
)

// Ensure LoggingDownloader implements pagemd.Downloader.
var _ pagemd.Downloader = (*LoggingDownloader)(nil)

// LoggingDownloader wraps a Downloader with logging. Failed image
// downloads surface here, so per-image failures are recorded even though
// they never abort a page-level scrape.
type LoggingDownloader struct {
	next   pagemd.Downloader
	logger *slog.Logger
}

// NewLoggingDownloader creates a new LoggingDownloader.
func NewLoggingDownloader(next pagemd.Downloader, logger *slog.Logger) *LoggingDownloader {
	return &LoggingDownloader{next: next, logger: logger}
}

// Download delegates to the wrapped downloader and logs the operation.
func (d *LoggingDownloader) Download(ctx context.Context, url string) (data []byte, err error) {
	defer func(begin time.Time) {
		d.logger.Info("image download",
			"url", url,
			"bytes", len(data),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return d.next.Download(ctx, url)
}

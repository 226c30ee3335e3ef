package scrape

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/pagemd/pagemd"
)

// rewriteAssets persists each asset under the images directory and replaces
// every occurrence of its remote URL in content with a path relative to the
// output root. Assets are processed strictly in sequence. An asset whose
// download fails is left pointing at its remote URL and the remaining
// assets still process; assets that already have a local path are not
// downloaded again.
func (s *Scraper) rewriteAssets(ctx context.Context, log *slog.Logger, content string, assets []*pagemd.ImageAsset, opts Options) string {
	imagesDir := filepath.Join(opts.OutputDir, opts.ImagesSubdir)

	for _, asset := range assets {
		if _, ok := asset.LocalPath(); !ok {
			if _, err := s.Store.Save(ctx, asset, imagesDir, !opts.FlattenImages); err != nil {
				log.Warn("image download failed", "src", asset.URL, "err", err)
				continue
			}
		}

		localPath, ok := asset.LocalPath()
		if !ok {
			continue
		}

		rel, err := filepath.Rel(opts.OutputDir, localPath)
		if err != nil {
			log.Warn("cannot relativize image path", "path", localPath, "err", err)
			continue
		}

		// The rendered file sits directly under the output root, so the
		// rewritten reference is rooted there.
		content = strings.ReplaceAll(content, asset.URL, "/"+filepath.ToSlash(rel))
	}

	return content
}

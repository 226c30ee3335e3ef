// Package scrape orchestrates the page scraping pipeline: fetch the page,
// extract its main content region, render it as Markdown or HTML,
// optionally relocate image assets, and persist the result.
package scrape

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"github.com/pagemd/pagemd"
)

// Default values for Options fields left empty.
const (
	DefaultOutputDir    = "output"
	DefaultImagesSubdir = "images"
)

// Options controls a single scrape run. The zero value is usable; empty
// fields fall back to the documented defaults.
type Options struct {
	// OutputDir is the directory the rendered file and any images are
	// written under. Defaults to "output".
	OutputDir string

	// Filename names the rendered file inside OutputDir. Defaults to
	// "index.md" or "index.html" depending on the format.
	Filename string

	// DownloadImages relocates referenced images into OutputDir and
	// rewrites their URLs to local paths.
	DownloadImages bool

	// ImagesSubdir is the directory under OutputDir images are saved to.
	// Defaults to "images".
	ImagesSubdir string

	// ClearOutputDir removes everything directly under OutputDir before
	// anything is written. Destructive; point OutputDir at a dedicated
	// location.
	ClearOutputDir bool

	// FlattenImages saves all images directly into ImagesSubdir instead of
	// mirroring their remote directory structure.
	FlattenImages bool

	// HeadingStyle selects the Markdown heading style. Defaults to ATX.
	HeadingStyle pagemd.HeadingStyle
}

func (o Options) withDefaults(format pagemd.Format) Options {
	if o.OutputDir == "" {
		o.OutputDir = DefaultOutputDir
	}
	if o.Filename == "" {
		o.Filename = format.DefaultFilename()
	}
	if o.ImagesSubdir == "" {
		o.ImagesSubdir = DefaultImagesSubdir
	}
	if o.HeadingStyle == "" {
		o.HeadingStyle = pagemd.HeadingStyleATX
	}
	return o
}

// Scraper composes the scraping pipeline. Each call runs the stages
// strictly forward with no retries; a failure at any stage aborts the run.
// The pipeline is single-threaded and blocking: images are downloaded one
// at a time in document order. Concurrent runs against the same output
// directory are unsafe.
type Scraper struct {
	Validator pagemd.Validator
	Fetcher   pagemd.Fetcher
	Extractor pagemd.Extractor
	Scanner   pagemd.ImageScanner
	Converter pagemd.Converter
	Store     pagemd.AssetStore
	Writer    pagemd.FileWriter

	// Logger receives pipeline progress and per-image failures.
	// Defaults to slog.Default.
	Logger *slog.Logger
}

// ScrapeToMarkdown scrapes url and writes its content region as Markdown.
func (s *Scraper) ScrapeToMarkdown(ctx context.Context, url string, opts Options) (*pagemd.ScrapeResult, error) {
	return s.run(ctx, url, pagemd.FormatMarkdown, opts)
}

// ScrapeToHTML scrapes url and writes its content region as HTML.
func (s *Scraper) ScrapeToHTML(ctx context.Context, url string, opts Options) (*pagemd.ScrapeResult, error) {
	return s.run(ctx, url, pagemd.FormatHTML, opts)
}

func (s *Scraper) run(ctx context.Context, url string, format pagemd.Format, opts Options) (*pagemd.ScrapeResult, error) {
	opts = opts.withDefaults(format)
	log := s.logger().With("url", url, "format", string(format))

	if err := s.Validator.Validate(ctx, url); err != nil {
		return nil, err
	}

	html, err := s.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("scraping %s: %w", url, err)
	}
	log.Debug("page fetched", "bytes", len(html))

	region, err := s.Extractor.ExtractContent(html)
	if err != nil {
		return nil, fmt.Errorf("scraping %s: %w", url, err)
	}
	log.Debug("content extracted", "rule", string(region.Rule))

	assets, err := s.collectAssets(log, html)
	if err != nil {
		return nil, fmt.Errorf("scraping %s: %w", url, err)
	}

	if opts.ClearOutputDir {
		if err := s.Writer.Clear(ctx, opts.OutputDir); err != nil {
			return nil, fmt.Errorf("scraping %s: %w", url, err)
		}
		log.Debug("output directory cleared", "dir", opts.OutputDir)
	}

	content := region.HTML
	if format == pagemd.FormatMarkdown {
		content, err = s.Converter.Convert(region.HTML, opts.HeadingStyle)
		if err != nil {
			return nil, fmt.Errorf("scraping %s: %w", url, err)
		}
	}
	log.Debug("content rendered")

	if opts.DownloadImages {
		content = s.rewriteAssets(ctx, log, content, assets, opts)
	}

	outputPath, err := s.Writer.Write(ctx, content, filepath.Join(opts.OutputDir, opts.Filename))
	if err != nil {
		return nil, fmt.Errorf("scraping %s: %w", url, err)
	}
	log.Info("page scraped", "output", outputPath, "images", len(assets))

	return &pagemd.ScrapeResult{
		URL:         url,
		Title:       region.Title,
		Format:      format,
		Content:     content,
		ContentHash: fmt.Sprintf("%016x", xxhash.Sum64String(content)),
		Images:      assets,
		OutputPath:  outputPath,
	}, nil
}

// collectAssets turns scanned image references into assets. References
// with a relative or non-http source cannot be relocated and are skipped.
func (s *Scraper) collectAssets(log *slog.Logger, html string) ([]*pagemd.ImageAsset, error) {
	refs, err := s.Scanner.ScanImages(html)
	if err != nil {
		return nil, err
	}

	assets := make([]*pagemd.ImageAsset, 0, len(refs))
	for _, ref := range refs {
		asset, err := pagemd.NewImageAsset(ref.URL, ref.Alt)
		if err != nil {
			log.Debug("skipping image reference", "src", ref.URL, "err", err)
			continue
		}
		assets = append(assets, asset)
	}

	return assets, nil
}

func (s *Scraper) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}

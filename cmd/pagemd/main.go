package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/pagemd/pagemd"
	"github.com/pagemd/pagemd/fs"
	"github.com/pagemd/pagemd/goquery"
	"github.com/pagemd/pagemd/htmltomarkdown"
	pagemdhttp "github.com/pagemd/pagemd/http"
	"github.com/pagemd/pagemd/readability"
	"github.com/pagemd/pagemd/scrape"
	pagemdslog "github.com/pagemd/pagemd/slog"
	"github.com/pagemd/pagemd/trafilatura"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pagemd"),
		kong.Description("Scrape a web page's main content to Markdown or HTML"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	fetcher := pagemdhttp.NewFetcher(pagemdhttp.WithTimeout(cli.Timeout))
	defer fetcher.Close()

	downloader := pagemdhttp.NewDownloader(
		pagemdhttp.WithDownloadTimeout(cli.Timeout),
		pagemdhttp.WithRateLimit(cli.RateLimit),
	)

	var extractor pagemd.Extractor
	switch cli.Extractor {
	case "readability":
		extractor = readability.NewExtractor()
	case "trafilatura":
		extractor = trafilatura.NewExtractor()
	default:
		extractor = goquery.NewExtractor()
	}

	scraper := &scrape.Scraper{
		Validator: pagemdhttp.NewValidator(pagemdhttp.WithProbeTimeout(cli.Timeout)),
		Fetcher:   pagemdslog.NewLoggingFetcher(fetcher, logger),
		Extractor: extractor,
		Scanner:   goquery.NewScanner(),
		Converter: htmltomarkdown.NewConverter(),
		Store:     fs.NewAssetStore(pagemdslog.NewLoggingDownloader(downloader, logger)),
		Writer:    fs.NewWriter(),
		Logger:    logger,
	}

	opts := scrape.Options{
		OutputDir:      cli.Output,
		Filename:       cli.Filename,
		DownloadImages: cli.DownloadImages,
		ImagesSubdir:   cli.ImagesDir,
		ClearOutputDir: cli.Clear,
		FlattenImages:  cli.Flatten,
		HeadingStyle:   pagemd.HeadingStyle(cli.HeadingStyle),
	}

	var result *pagemd.ScrapeResult
	if cli.Format == "html" {
		result, err = scraper.ScrapeToHTML(ctx, cli.URL, opts)
	} else {
		result, err = scraper.ScrapeToMarkdown(ctx, cli.URL, opts)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Saved %s to %s (%d images)\n", cli.URL, result.OutputPath, len(result.Images))
	return nil
}

package main

import "time"

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	URL            string        `arg:"" required:"" help:"Page URL to scrape"`
	Format         string        `short:"F" default:"markdown" enum:"markdown,html" help:"Output format"`
	Output         string        `short:"o" default:"output" help:"Output directory"`
	Filename       string        `short:"f" help:"Output filename (default: index.md or index.html)"`
	DownloadImages bool          `short:"i" help:"Download referenced images and rewrite their URLs to local paths"`
	ImagesDir      string        `default:"images" help:"Subdirectory under the output directory for downloaded images"`
	Clear          bool          `help:"Clear the output directory before writing"`
	Flatten        bool          `help:"Save all images into one directory instead of mirroring URL paths"`
	HeadingStyle   string        `default:"ATX" enum:"ATX,ATX_CLOSED,SETEXT,UNDERLINED" help:"Markdown heading style"`
	Extractor      string        `default:"heuristic" enum:"heuristic,readability,trafilatura" help:"Content extraction strategy"`
	Timeout        time.Duration `short:"t" default:"10s" help:"Timeout per HTTP request"`
	RateLimit      float64       `default:"0" help:"Max image downloads per second (0 = unlimited)"`
	Verbose        bool          `short:"v" help:"Enable debug logging"`
}

package pagemd

// Format identifies the rendered output format of a scrape.
type Format string

// Supported output formats.
const (
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
)

// DefaultFilename returns the default output filename for the format.
func (f Format) DefaultFilename() string {
	if f == FormatHTML {
		return "index.html"
	}
	return "index.md"
}

// ScrapeResult is the outcome of scraping one page. It is built from
// exactly one content region and owns its image assets for the duration of
// the run.
type ScrapeResult struct {
	URL         string
	Title       string
	Format      Format
	Content     string
	ContentHash string // 64-bit hash of Content, hex-encoded
	Images      []*ImageAsset
	OutputPath  string
}

package pagemd

// HeadingStyle selects how Markdown headings are rendered.
type HeadingStyle string

// Supported heading styles. The converter maps them onto whatever the
// underlying renderer supports.
const (
	HeadingStyleATX        HeadingStyle = "ATX"
	HeadingStyleATXClosed  HeadingStyle = "ATX_CLOSED"
	HeadingStyleSetext     HeadingStyle = "SETEXT"
	HeadingStyleUnderlined HeadingStyle = "UNDERLINED"
)

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms clean HTML (e.g. from an Extractor) into Markdown
	// using the given heading style.
	Convert(html string, style HeadingStyle) (string, error)
}

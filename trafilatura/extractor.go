// Package trafilatura provides a go-trafilatura based content extractor as
// an alternative to the fixed heuristic in goquery/.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/markusmobius/go-trafilatura"
	"github.com/pagemd/pagemd"
	"golang.org/x/net/html"
)

// Ensure Extractor implements pagemd.Extractor at compile time.
var _ pagemd.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to select the main content region.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractContent processes raw HTML and returns the main content.
func (e *Extractor) ExtractContent(rawHTML string) (*pagemd.ContentRegion, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, pagemd.Errorf(pagemd.ENOCONTENT, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, pagemd.Errorf(pagemd.ENOCONTENT, "trafilatura extraction failed: %v", err)
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}
	if contentHTML == "" {
		return nil, pagemd.Errorf(pagemd.ENOCONTENT, "no content region found")
	}

	return &pagemd.ContentRegion{
		Title: result.Metadata.Title,
		Rule:  pagemd.RuleTrafilatura,
		HTML:  contentHTML,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", pagemd.Errorf(pagemd.EINTERNAL, "failed to serialize content region: %v", err)
	}
	return buf.String(), nil
}

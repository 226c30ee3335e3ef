// Package readability provides a go-readability based content extractor as
// an alternative to the fixed heuristic in goquery/.
package readability

import (
	"strings"

	"github.com/go-shiori/go-readability"
	"github.com/pagemd/pagemd"
)

// Ensure Extractor implements pagemd.Extractor at compile time.
var _ pagemd.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to select the main content region.
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

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, pagemd.Errorf(pagemd.ENOCONTENT, "readability extraction failed: %v", err)
	}

	return &pagemd.ContentRegion{
		Title: article.Title,
		Rule:  pagemd.RuleReadability,
		HTML:  article.Content,
	}, nil
}

// Package goquery provides goquery-based implementations of content
// extraction: the main-content selection heuristic and document-wide image
// enumeration.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pagemd/pagemd"
)

// Ensure Extractor implements pagemd.Extractor at compile time.
var _ pagemd.Extractor = (*Extractor)(nil)

// Extractor selects the main content region using a fixed heuristic, first
// match wins: the first <article> element, else the first element carrying
// the literal class token "content", else the document body.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractContent returns the main content region of the document.
func (e *Extractor) ExtractContent(rawHTML string) (*pagemd.ContentRegion, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, pagemd.Errorf(pagemd.EINVALID, "failed to parse HTML: %v", err)
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())

	// Selection rules in priority order; first match wins.
	if sel := doc.Find("article").First(); sel.Length() > 0 {
		return region(title, pagemd.RuleArticle, sel)
	}
	if sel := doc.Find(".content").First(); sel.Length() > 0 {
		return region(title, pagemd.RuleContentClass, sel)
	}
	if sel := doc.Find("body").First(); sel.Length() > 0 && hasContent(sel) {
		return region(title, pagemd.RuleBody, sel)
	}

	return nil, pagemd.Errorf(pagemd.ENOCONTENT, "no content region found")
}

func region(title string, rule pagemd.SelectionRule, sel *goquery.Selection) (*pagemd.ContentRegion, error) {
	html, err := goquery.OuterHtml(sel)
	if err != nil {
		return nil, pagemd.Errorf(pagemd.EINTERNAL, "failed to serialize content region: %v", err)
	}
	return &pagemd.ContentRegion{Title: title, Rule: rule, HTML: html}, nil
}

// hasContent reports whether the selection holds anything at all. The HTML
// parser synthesizes a body element even for empty input, so an empty body
// counts as a missing region.
func hasContent(sel *goquery.Selection) bool {
	return sel.Children().Length() > 0 || strings.TrimSpace(sel.Text()) != ""
}

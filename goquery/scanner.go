package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pagemd/pagemd"
)

// Ensure Scanner implements pagemd.ImageScanner at compile time.
var _ pagemd.ImageScanner = (*Scanner)(nil)

// Scanner enumerates <img> references across an entire document.
type Scanner struct{}

// NewScanner creates a new Scanner.
func NewScanner() *Scanner {
	return &Scanner{}
}

// ScanImages returns image references in document order. The whole document
// is scanned, not just the selected content region. Images without a src
// attribute are skipped; duplicates are preserved.
func (s *Scanner) ScanImages(rawHTML string) ([]pagemd.ImageRef, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, pagemd.Errorf(pagemd.EINVALID, "failed to parse HTML: %v", err)
	}

	var refs []pagemd.ImageRef
	doc.Find("img").Each(func(_ int, sel *goquery.Selection) {
		src, exists := sel.Attr("src")
		if !exists || src == "" {
			return
		}
		refs = append(refs, pagemd.ImageRef{
			Alt: sel.AttrOr("alt", pagemd.DefaultAltText),
			URL: src,
		})
	})

	return refs, nil
}

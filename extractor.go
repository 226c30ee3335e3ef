package pagemd

// SelectionRule identifies which rule selected a content region, making the
// deterministic selection policy observable to callers and tests.
type SelectionRule string

// Selection rules, in the priority order the heuristic extractor applies
// them, plus the identifiers used by the alternative extractors.
const (
	RuleArticle      SelectionRule = "article"
	RuleContentClass SelectionRule = "content-class"
	RuleBody         SelectionRule = "body"
	RuleReadability  SelectionRule = "readability"
	RuleTrafilatura  SelectionRule = "trafilatura"
)

// ContentRegion is the subtree of a page judged to be its primary readable
// content, serialized as HTML.
type ContentRegion struct {
	// Title is the page title, when the extractor could determine one.
	Title string

	// Rule records which selection rule produced the region.
	Rule SelectionRule

	// HTML is the region subtree serialized verbatim.
	HTML string
}

// Extractor selects the main content region of an HTML document.
type Extractor interface {
	// ExtractContent returns the main content region of the document.
	// Exactly one region is selected per document; selection is
	// deterministic for a given input. Fails with ENOCONTENT when the
	// document has no extractable region.
	ExtractContent(html string) (*ContentRegion, error)
}

// ImageScanner enumerates image references in an HTML document.
type ImageScanner interface {
	// ScanImages returns image references for the entire document (not
	// just the content region) in document order. Entries without a source
	// URL are skipped and duplicates are preserved; callers that need
	// deduplication must perform it themselves.
	ScanImages(html string) ([]ImageRef, error)
}

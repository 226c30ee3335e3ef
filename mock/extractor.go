package mock

import "github.com/pagemd/pagemd"

var _ pagemd.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of pagemd.Extractor.
type Extractor struct {
	ExtractContentFn func(html string) (*pagemd.ContentRegion, error)
}

func (e *Extractor) ExtractContent(html string) (*pagemd.ContentRegion, error) {
	return e.ExtractContentFn(html)
}

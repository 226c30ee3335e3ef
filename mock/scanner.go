package mock

import "github.com/pagemd/pagemd"

var _ pagemd.ImageScanner = (*Scanner)(nil)

// Scanner is a mock implementation of pagemd.ImageScanner.
type Scanner struct {
	ScanImagesFn func(html string) ([]pagemd.ImageRef, error)
}

func (s *Scanner) ScanImages(html string) ([]pagemd.ImageRef, error) {
	return s.ScanImagesFn(html)
}

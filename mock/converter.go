package mock

import "github.com/pagemd/pagemd"

var _ pagemd.Converter = (*Converter)(nil)

// Converter is a mock implementation of pagemd.Converter.
type Converter struct {
	ConvertFn func(html string, style pagemd.HeadingStyle) (string, error)
}

func (c *Converter) Convert(html string, style pagemd.HeadingStyle) (string, error) {
	return c.ConvertFn(html, style)
}

// Package htmltomarkdown renders HTML content regions as Markdown.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/pagemd/pagemd"
)

// Ensure Converter implements pagemd.Converter at compile time.
var _ pagemd.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to convert HTML to Markdown. The
// underlying library distinguishes hash-prefixed and underlined headings:
// ATX and ATX_CLOSED render as hash-prefixed, SETEXT and UNDERLINED as
// underlined.
type Converter struct {
	atx    *converter.Converter
	setext *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	return &Converter{
		atx:    newConverter(commonmark.WithHeadingStyle(commonmark.HeadingStyleATX)),
		setext: newConverter(commonmark.WithHeadingStyle(commonmark.HeadingStyleSetext)),
	}
}

func newConverter(styleOpt commonmark.OptionFunc) *converter.Converter {
	return converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(
				styleOpt,
			),
			table.NewTablePlugin(),
		),
	)
}

// Convert transforms HTML content into Markdown.
func (c *Converter) Convert(html string, style pagemd.HeadingStyle) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", pagemd.Errorf(pagemd.EINVALID, "empty HTML input")
	}

	conv := c.atx
	switch style {
	case pagemd.HeadingStyleSetext, pagemd.HeadingStyleUnderlined:
		conv = c.setext
	}

	result, err := conv.ConvertString(html)
	if err != nil {
		return "", err
	}

	return result, nil
}

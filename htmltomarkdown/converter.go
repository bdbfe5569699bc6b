// Package htmltomarkdown provides a Converter that turns HTML text into
// Markdown.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/textconv"
)

// Ensure Converter implements textconv.Converter at compile time.
var _ textconv.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to convert HTML input into Markdown.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms HTML input into Markdown.
// Returns EINVALID if the input is empty or whitespace only.
func (c *Converter) Convert(text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", textconv.Errorf(textconv.EINVALID, "empty HTML input")
	}

	result, err := c.conv.ConvertString(text)
	if err != nil {
		return "", err
	}

	return result, nil
}

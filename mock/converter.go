package mock

import "github.com/fwojciec/textconv"

var _ textconv.Converter = (*Converter)(nil)

// Converter is a mock implementation of textconv.Converter.
type Converter struct {
	ConvertFn func(text string) (string, error)
}

func (c *Converter) Convert(text string) (string, error) {
	return c.ConvertFn(text)
}

// Package reverse provides a Converter that reverses text rune-wise.
package reverse

import "github.com/fwojciec/textconv"

// Ensure Converter implements textconv.Converter at compile time.
var _ textconv.Converter = (*Converter)(nil)

// Converter reverses the runes of its input.
type Converter struct{}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	return &Converter{}
}

// Convert returns the input with its runes in reverse order. Reversal is
// an involution: converting twice returns the original text.
func (c *Converter) Convert(text string) (string, error) {
	runes := []rune(text)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes), nil
}

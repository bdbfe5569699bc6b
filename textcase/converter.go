// Package textcase provides converters that change letter case, using
// golang.org/x/text for Unicode-aware casing.
package textcase

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/fwojciec/textconv"
)

// Ensure Converter implements textconv.Converter at compile time.
var _ textconv.Converter = (*Converter)(nil)

type kind int

const (
	upper kind = iota
	lower
	title
)

// Converter applies a letter-case transformation to its input.
type Converter struct {
	kind kind
}

// NewUpper creates a Converter that upper-cases its input.
func NewUpper() *Converter {
	return &Converter{kind: upper}
}

// NewLower creates a Converter that lower-cases its input.
func NewLower() *Converter {
	return &Converter{kind: lower}
}

// NewTitle creates a Converter that title-cases its input.
func NewTitle() *Converter {
	return &Converter{kind: title}
}

// Convert returns the input with its letter case transformed. A fresh
// caser is built per call because cases.Caser carries internal state and
// must not be shared.
func (c *Converter) Convert(text string) (string, error) {
	var caser cases.Caser
	switch c.kind {
	case upper:
		caser = cases.Upper(language.Und)
	case lower:
		caser = cases.Lower(language.Und)
	case title:
		caser = cases.Title(language.Und)
	}
	return caser.String(text), nil
}

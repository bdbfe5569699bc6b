package textconv

import (
	"os"
	"unicode/utf8"
)

// Converter transforms text into a specific format.
type Converter interface {
	// Convert transforms the input text into its converted form.
	// Implementations should be deterministic: the same input yields
	// the same output. Preferably called through FromText, FromFile or
	// FromClipboard rather than directly.
	Convert(text string) (string, error)
}

// ConverterFunc adapts a plain function to the Converter interface.
type ConverterFunc func(text string) (string, error)

// Convert calls f(text).
func (f ConverterFunc) Convert(text string) (string, error) {
	return f(text)
}

// FromText applies the converter to a literal text value. It performs no
// transformation of its own, so FromText(c, t) is identical to
// c.Convert(t).
func FromText(c Converter, text string) (string, error) {
	return c.Convert(text)
}

// FromFile reads the whole file at path as text and applies the
// converter to its contents. Returns EUNAVAILABLE if the file does not
// exist, cannot be read, or does not contain valid UTF-8 text.
func FromFile(c Converter, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", Errorf(EUNAVAILABLE, "cannot read file %q: %v", path, err)
	}
	if !utf8.Valid(data) {
		return "", Errorf(EUNAVAILABLE, "file %q does not contain valid UTF-8 text", path)
	}
	return c.Convert(string(data))
}

// FromClipboard reads the current clipboard text via cb and applies the
// converter to it. Errors from the clipboard read are propagated
// unchanged.
func FromClipboard(c Converter, cb Clipboard) (string, error) {
	text, err := cb.ReadText()
	if err != nil {
		return "", err
	}
	return c.Convert(text)
}

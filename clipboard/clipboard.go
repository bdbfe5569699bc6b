// Package clipboard provides system clipboard access via
// github.com/atotto/clipboard.
package clipboard

import (
	atotto "github.com/atotto/clipboard"
	"github.com/fwojciec/textconv"
)

// Ensure Reader implements textconv.Clipboard at compile time.
var _ textconv.Clipboard = (*Reader)(nil)

// Reader reads text from the system clipboard.
type Reader struct{}

// NewReader creates a new Reader.
func NewReader() *Reader {
	return &Reader{}
}

// ReadText returns the current clipboard text.
// Returns EUNAVAILABLE when the platform has no clipboard support, the
// clipboard cannot be read, or it holds no text.
func (r *Reader) ReadText() (string, error) {
	if atotto.Unsupported {
		return "", textconv.Errorf(textconv.EUNAVAILABLE, "clipboard is not supported on this platform")
	}
	text, err := atotto.ReadAll()
	if err != nil {
		return "", textconv.Errorf(textconv.EUNAVAILABLE, "cannot read clipboard: %v", err)
	}
	if text == "" {
		return "", textconv.Errorf(textconv.EUNAVAILABLE, "clipboard holds no text")
	}
	return text, nil
}

// Ensure Writer implements textconv.ClipboardWriter at compile time.
var _ textconv.ClipboardWriter = (*Writer)(nil)

// Writer places text on the system clipboard.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// WriteText replaces the clipboard contents with text.
// Returns EUNAVAILABLE when the platform has no clipboard support or the
// clipboard cannot be written.
func (w *Writer) WriteText(text string) error {
	if atotto.Unsupported {
		return textconv.Errorf(textconv.EUNAVAILABLE, "clipboard is not supported on this platform")
	}
	if err := atotto.WriteAll(text); err != nil {
		return textconv.Errorf(textconv.EUNAVAILABLE, "cannot write clipboard: %v", err)
	}
	return nil
}

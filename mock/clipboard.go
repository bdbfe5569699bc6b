package mock

import "github.com/fwojciec/textconv"

var _ textconv.Clipboard = (*Clipboard)(nil)

// Clipboard is a mock implementation of textconv.Clipboard.
type Clipboard struct {
	ReadTextFn func() (string, error)
}

func (c *Clipboard) ReadText() (string, error) {
	return c.ReadTextFn()
}

var _ textconv.ClipboardWriter = (*ClipboardWriter)(nil)

// ClipboardWriter is a mock implementation of textconv.ClipboardWriter.
type ClipboardWriter struct {
	WriteTextFn func(text string) error
}

func (c *ClipboardWriter) WriteText(text string) error {
	return c.WriteTextFn(text)
}

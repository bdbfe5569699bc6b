package textconv

// Clipboard reads text from the system clipboard. The clipboard is
// passed explicitly rather than accessed as a hidden global so tests can
// substitute a fake implementation without touching real OS state.
type Clipboard interface {
	// ReadText returns the current textual contents of the clipboard.
	// Returns EUNAVAILABLE if the clipboard is empty, holds non-text
	// content, or the platform clipboard service cannot be reached.
	ReadText() (string, error)
}

// ClipboardWriter places text on the system clipboard.
type ClipboardWriter interface {
	// WriteText replaces the clipboard contents with text.
	WriteText(text string) error
}

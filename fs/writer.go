// Package fs provides file-based output for converted text.
package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/textconv"
)

// ConvertedPath derives the destination path for a source file's
// converted output: the source path with its extension replaced by
// "_converted.md".
// Example: notes/draft.txt → notes/draft_converted.md
func ConvertedPath(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "_converted.md"
}

// computeHash computes a hash of the content using xxhash.
func computeHash(content string) string {
	h := xxhash.Sum64String(content)
	return fmt.Sprintf("%x", h)
}

// Ensure Writer implements textconv.OutputWriter at compile time.
var _ textconv.OutputWriter = (*Writer)(nil)

// Writer writes converted output next to its source file.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// WriteConverted writes output to the converted-output path derived from
// sourcePath and returns that path. The write is skipped when the
// destination already holds identical content.
func (w *Writer) WriteConverted(sourcePath, output string) (string, error) {
	dest := ConvertedPath(sourcePath)

	if existing, err := os.ReadFile(dest); err == nil {
		if computeHash(string(existing)) == computeHash(output) {
			return dest, nil
		}
	}

	if err := os.WriteFile(dest, []byte(output), 0644); err != nil {
		return "", textconv.Errorf(textconv.EINTERNAL, "cannot write converted output to %q: %v", dest, err)
	}

	return dest, nil
}

package mock

import "github.com/fwojciec/textconv"

var _ textconv.OutputWriter = (*OutputWriter)(nil)

// OutputWriter is a mock implementation of textconv.OutputWriter.
type OutputWriter struct {
	WriteConvertedFn func(sourcePath, output string) (string, error)
}

func (w *OutputWriter) WriteConverted(sourcePath, output string) (string, error) {
	return w.WriteConvertedFn(sourcePath, output)
}

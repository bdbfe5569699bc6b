package textconv

// OutputWriter persists converted output derived from a source file.
type OutputWriter interface {
	// WriteConverted writes output to a destination derived from
	// sourcePath and returns the destination path.
	WriteConverted(sourcePath, output string) (string, error)
}

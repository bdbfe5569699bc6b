package main

import (
	"fmt"

	"github.com/fwojciec/textconv"
)

// Run executes the file command.
func (c *FileCmd) Run(deps *Dependencies) error {
	conv, err := resolveConverter(deps, c.Converter)
	if err != nil {
		return err
	}

	out, err := textconv.FromFile(conv, c.Path)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", textconv.ErrorMessage(err))
		return err
	}

	if c.Write {
		dest, err := deps.Output.WriteConverted(c.Path, out)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", textconv.ErrorMessage(err))
			return err
		}
		// Keep stdout clean for piping; the note goes to stderr.
		fmt.Fprintf(deps.Stderr, "Wrote %s\n", dest)
	}

	return emit(deps, out, c.Copy)
}

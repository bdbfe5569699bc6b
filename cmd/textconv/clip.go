package main

import (
	"fmt"

	"github.com/fwojciec/textconv"
)

// Run executes the clip command.
func (c *ClipCmd) Run(deps *Dependencies) error {
	conv, err := resolveConverter(deps, c.Converter)
	if err != nil {
		return err
	}

	out, err := textconv.FromClipboard(conv, deps.Clipboard)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", textconv.ErrorMessage(err))
		return err
	}

	return emit(deps, out, c.Copy)
}

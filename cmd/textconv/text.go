package main

import (
	"fmt"

	"github.com/fwojciec/textconv"
)

// Run executes the text command.
func (c *TextCmd) Run(deps *Dependencies) error {
	conv, err := resolveConverter(deps, c.Converter)
	if err != nil {
		return err
	}

	out, err := textconv.FromText(conv, c.Input)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", textconv.ErrorMessage(err))
		return err
	}

	return emit(deps, out, c.Copy)
}

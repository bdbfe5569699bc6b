package main

import "fmt"

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	names := deps.Converters.List()
	if len(names) == 0 {
		fmt.Fprintln(deps.Stdout, "No converters registered.")
		return nil
	}

	for _, name := range names {
		fmt.Fprintln(deps.Stdout, name)
	}

	return nil
}

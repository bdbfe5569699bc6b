package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/fwojciec/textconv"
	tcslog "github.com/fwojciec/textconv/slog"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	Logger     *slog.Logger
	Converters *textconv.Registry
	Clipboard  textconv.Clipboard
	ClipWriter textconv.ClipboardWriter
	Output     textconv.OutputWriter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging"`

	Text TextCmd `cmd:"" help:"Convert a literal text argument"`
	File FileCmd `cmd:"" help:"Convert the contents of a file"`
	Clip ClipCmd `cmd:"" help:"Convert the current clipboard text"`
	List ListCmd `cmd:"" help:"List available converters"`
}

// TextCmd is the "text" subcommand.
type TextCmd struct {
	Input     string `arg:"" help:"Text to convert"`
	Converter string `short:"c" default:"reverse" help:"Converter to apply"`
	Copy      bool   `help:"Place the result on the clipboard"`
}

// FileCmd is the "file" subcommand.
type FileCmd struct {
	Path      string `arg:"" type:"path" help:"File to convert"`
	Converter string `short:"c" default:"reverse" help:"Converter to apply"`
	Write     bool   `short:"w" help:"Write the result next to the source file"`
	Copy      bool   `help:"Place the result on the clipboard"`
}

// ClipCmd is the "clip" subcommand.
type ClipCmd struct {
	Converter string `short:"c" default:"reverse" help:"Converter to apply"`
	Copy      bool   `help:"Place the result on the clipboard"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// resolveConverter looks up a converter by name and wraps it with
// logging.
func resolveConverter(deps *Dependencies, name string) (textconv.Converter, error) {
	c, err := deps.Converters.Get(name)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s. Use 'textconv list' to see available converters.\n", textconv.ErrorMessage(err))
		return nil, err
	}
	return tcslog.NewConverter(c, name, deps.Logger), nil
}

// emit prints the converted output and optionally places it on the
// clipboard.
func emit(deps *Dependencies, output string, copyToClipboard bool) error {
	fmt.Fprintln(deps.Stdout, output)

	if !copyToClipboard {
		return nil
	}
	if err := deps.ClipWriter.WriteText(output); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", textconv.ErrorMessage(err))
		return err
	}
	return nil
}

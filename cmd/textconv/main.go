package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/textconv"
	"github.com/fwojciec/textconv/clipboard"
	"github.com/fwojciec/textconv/fs"
	"github.com/fwojciec/textconv/htmltomarkdown"
	"github.com/fwojciec/textconv/reverse"
	"github.com/fwojciec/textconv/textcase"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Registry used to resolve the --converter flag.
	Converters *textconv.Registry

	// Clipboard collaborators. Replaceable for end-to-end testing.
	Clipboard  textconv.Clipboard
	ClipWriter textconv.ClipboardWriter

	// Output writer used by 'file --write'.
	Output textconv.OutputWriter
}

// NewMain returns a new instance of Main with the built-in converters
// registered and real clipboard and filesystem collaborators.
func NewMain() *Main {
	registry := textconv.NewRegistry()
	registerBuiltins(registry)

	return &Main{
		Converters: registry,
		Clipboard:  clipboard.NewReader(),
		ClipWriter: clipboard.NewWriter(),
		Output:     fs.NewWriter(),
	}
}

// registerBuiltins registers the converters shipped with the CLI.
func registerBuiltins(r *textconv.Registry) {
	r.Register("reverse", reverse.NewConverter())
	r.Register("upper", textcase.NewUpper())
	r.Register("lower", textcase.NewLower())
	r.Register("title", textcase.NewTitle())
	r.Register("html2md", htmltomarkdown.NewConverter())
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("textconv"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'textconv --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	deps := &Dependencies{
		Ctx:        ctx,
		Stdout:     stdout,
		Stderr:     stderr,
		Logger:     logger,
		Converters: m.Converters,
		Clipboard:  m.Clipboard,
		ClipWriter: m.ClipWriter,
		Output:     m.Output,
	}

	return kongCtx.Run(deps)
}

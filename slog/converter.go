// Package slog provides logging decorators for textconv interfaces.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/textconv"
)

// Ensure Converter implements textconv.Converter at compile time.
var _ textconv.Converter = (*Converter)(nil)

// Converter wraps a textconv.Converter with timed logging.
type Converter struct {
	next   textconv.Converter
	name   string
	logger *slog.Logger
}

// NewConverter creates a new logging Converter wrapping next. The name
// identifies the wrapped converter in log output.
func NewConverter(next textconv.Converter, name string, logger *slog.Logger) *Converter {
	return &Converter{next: next, name: name, logger: logger}
}

// Convert delegates to the wrapped converter and logs the outcome.
func (c *Converter) Convert(text string) (string, error) {
	begin := time.Now()
	out, err := c.next.Convert(text)
	if err != nil {
		c.logger.Error("conversion failed",
			"converter", c.name,
			"error", err,
			"duration", time.Since(begin),
		)
		return "", err
	}
	c.logger.Info("conversion",
		"converter", c.name,
		"input_bytes", len(text),
		"output_bytes", len(out),
		"duration", time.Since(begin),
	)
	return out, nil
}

// Package logging builds the slog logger used for diagnostics.
//
// Diagnostics always go to stderr so that stdout carries only the rendered
// table.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Config holds the logger configuration
type Config struct {
	Level  slog.Level
	Format string // "text" or "json"
	Writer io.Writer
}

// DefaultConfig returns a text logger on stderr that only reports warnings
// and errors.
func DefaultConfig() Config {
	return Config{
		Level:  slog.LevelWarn,
		Format: "text",
		Writer: os.Stderr,
	}
}

// New creates a logger with the given configuration
func New(config Config) (*slog.Logger, error) {
	writer := config.Writer
	if writer == nil {
		writer = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: config.Level}

	var handler slog.Handler
	switch config.Format {
	case "text", "":
		handler = slog.NewTextHandler(writer, opts)
	case "json":
		handler = slog.NewJSONHandler(writer, opts)
	default:
		return nil, fmt.Errorf("unsupported log format %q (use text or json)", config.Format)
	}

	return slog.New(handler), nil
}

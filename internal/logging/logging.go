// Package logging builds the slog loggers used across the servers.
//
// MCP stdio servers own stdout as the protocol transport, so every
// logger constructed here writes to stderr (or is a no-op).
package logging

import (
	"io"
	"log/slog"
	"os"
)

// New returns a JSON logger writing to w at the given level.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// NewStderr returns the standard server logger: JSON on stderr.
func NewStderr(level slog.Level) *slog.Logger {
	return New(os.Stderr, level)
}

// Nop returns a logger that discards all output.
func Nop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

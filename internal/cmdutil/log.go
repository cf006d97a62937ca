// internal/cmdutil/log.go
package cmdutil

import (
	"io"
	"log/slog"
)

// NewLogger returns a text logger on dst at the given level. Logs always go
// to stderr-like streams; stdout is reserved for records.
func NewLogger(dst io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(dst, &slog.HandlerOptions{Level: level}))
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return NewLogger(io.Discard, slog.LevelError+1)
}

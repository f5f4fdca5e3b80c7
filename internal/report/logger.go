package report

import (
	"io"
	"log/slog"
)

// NewLogger creates a structured logger for diagnostics on w. On a terminal
// it uses slog.TextHandler; when w is piped or redirected it emits JSON so
// CI logs stay machine-parseable. verbose lowers the level to debug.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	options := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if isTerminal(w) {
		handler = slog.NewTextHandler(w, options)
	} else {
		handler = slog.NewJSONHandler(w, options)
	}
	return slog.New(handler)
}

// Package logging holds sorter's debug log.
//
// Editor commands give no user-visible feedback on failure, so the reason
// for an aborted command only ever shows up here. Nothing is written until
// Setup enables it.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// FormatJSON selects the JSON handler in Setup. Any other format is text.
const FormatJSON = "json"

var logger = slog.New(slog.DiscardHandler)

// Setup points the debug log at w (stderr when nil) in the given format.
// With verbose false the log stays silent.
func Setup(verbose bool, format string, w io.Writer) {
	if !verbose {
		logger = slog.New(slog.DiscardHandler)
		return
	}
	if w == nil {
		w = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: slog.LevelDebug}
	if format == FormatJSON {
		logger = slog.New(slog.NewJSONHandler(w, opts))
	} else {
		logger = slog.New(slog.NewTextHandler(w, opts))
	}
}

// Enabled reports whether Debug writes anything. Callers use it to skip
// building expensive attributes.
func Enabled() bool {
	return logger.Enabled(context.Background(), slog.LevelDebug)
}

// Debug logs msg with key/value pairs.
func Debug(msg string, args ...any) {
	logger.Debug(msg, args...)
}

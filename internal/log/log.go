// Package log configures structured logging for plotsleuth using log/slog.
package log

import (
	"log/slog"
	"os"
)

// Level maps verbosity flags to an slog level.
//
//   - quiet mode:   only WARN and ERROR messages
//   - normal mode:  INFO and above
//   - verbose mode: DEBUG and above
//
// Quiet wins when both flags are set.
func Level(verbose, quiet bool) slog.Level {
	switch {
	case quiet:
		return slog.LevelWarn
	case verbose:
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}

// Setup installs the default slog logger, writing to stderr with a
// TextHandler at the level selected by the verbosity flags.
func Setup(verbose, quiet bool) {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: Level(verbose, quiet),
	})
	slog.SetDefault(slog.New(handler))
}

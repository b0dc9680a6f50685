package common

import (
	"log/slog"
	"os"
)

// LoggingOpts configures the process-wide logger.
type LoggingOpts struct {
	// Debug enables debug-level messages. Provisioning is silent at
	// the default level on success, so this is the switch that makes
	// per-bundle progress visible.
	Debug bool

	// JSON selects JSON log output instead of text.
	JSON bool

	// Service is added as a tag to every message when non-empty.
	Service string

	// Version is added as a tag to every message when non-empty.
	Version string
}

// SetupLogger builds the logger all components receive. Output goes to
// stderr so the emitted configuration files remain the only stdout
// artifacts of a run.
func SetupLogger(opts *LoggingOpts) *slog.Logger {
	level := slog.LevelInfo
	if opts.Debug {
		level = slog.LevelDebug
	}

	var handler slog.Handler
	if opts.JSON {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	}

	log := slog.New(handler)
	if opts.Service != "" {
		log = log.With("service", opts.Service)
	}
	if opts.Version != "" {
		log = log.With("version", opts.Version)
	}
	return log
}

package app

import (
	"io"
	"log/slog"

	"github.com/vk/optipng/internal/config"
)

// newLogger creates and configures a new slog.Logger instance. It does not
// set the global logger, allowing for isolated logger instances.
func newLogger(opts *config.Options, formatStr string, outW io.Writer) *slog.Logger {
	level := slog.LevelInfo
	switch {
	case opts.Debug, opts.Verbose:
		level = slog.LevelDebug
	case opts.Quiet:
		level = slog.LevelWarn
	}

	handlerOpts := &slog.HandlerOptions{Level: level, AddSource: opts.Debug}
	var handler slog.Handler

	if formatStr == "json" {
		handler = slog.NewJSONHandler(outW, handlerOpts)
	} else {
		handler = slog.NewTextHandler(outW, handlerOpts)
	}

	return slog.New(handler)
}

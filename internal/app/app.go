package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/optipng/internal/config"
	"github.com/vk/optipng/internal/ctxlog"
	"github.com/vk/optipng/internal/engine"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	logger  *slog.Logger
	logFile *os.File
	opts    *config.Options
	files   []string
	engine  engine.Engine
}

// New is the constructor for the main application. It builds the logger,
// opening the -log file when one is set, and applies the preset file. The
// caller must Close the returned App.
func New(errW io.Writer, cfg *Config) (*App, error) {
	cfg, err := NewConfig(*cfg)
	if err != nil {
		return nil, err
	}
	opts := cfg.Options

	var logFile *os.File
	logW := errW
	if opts.LogFile != "" {
		logFile, err = os.OpenFile(opts.LogFile, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		logW = io.MultiWriter(errW, logFile)
	}
	logger := newLogger(opts, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.", "log_file", opts.LogFile)

	if cfg.PresetPath != "" {
		ctx := ctxlog.WithLogger(context.Background(), logger)
		if err := applyPreset(ctx, cfg.PresetPath, opts); err != nil {
			if logFile != nil {
				logFile.Close()
			}
			return nil, err
		}
	}

	eng := cfg.Engine
	if eng == nil {
		eng = engine.NewPNGEngine()
	}

	return &App{
		logger:  logger,
		logFile: logFile,
		opts:    opts,
		files:   cfg.Files,
		engine:  eng,
	}, nil
}

// Options returns the effective option record, after the preset was merged.
func (a *App) Options() *config.Options {
	return a.opts
}

// Close releases the log file, if any.
func (a *App) Close() error {
	if a.logFile == nil {
		return nil
	}
	err := a.logFile.Close()
	a.logFile = nil
	return err
}

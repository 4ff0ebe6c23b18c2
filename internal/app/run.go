package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/vk/optipng/internal/ctxlog"
	"github.com/vk/optipng/internal/engine"
)

// Run processes every file operand in order. A failing file is logged and
// the run continues; an internal error stops it.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "files", len(a.files))

	failed := 0
	for _, file := range a.files {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := a.process(ctx, file); err != nil {
			var internal *InternalError
			if errors.As(err, &internal) {
				return err
			}
			failed++
		}
	}

	a.logger.Debug("App.Run method finished.", "failed", failed)
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrFilesFailed, failed, len(a.files))
	}
	return nil
}

// process runs the engine on a single file. Engine faults and panics become
// an *InternalError, or propagate as a panic under -debug.
func (a *App) process(ctx context.Context, file string) (err error) {
	logger := ctxlog.FromContext(ctx).With("file", file)

	defer func() {
		if r := recover(); r != nil {
			if a.opts.Debug {
				panic(r)
			}
			err = &InternalError{Cause: fmt.Errorf("panic: %v", r)}
		}
	}()

	job := engine.Job{
		Input:   file,
		Output:  engine.OutputPath(file, a.opts),
		Options: a.opts,
	}
	logger.Info("Processing file.", "output", job.Output)

	report, err := a.engine.Optimize(ctx, job)
	if err != nil {
		if errors.Is(err, engine.ErrInternal) {
			if a.opts.Debug {
				panic(err)
			}
			return &InternalError{Cause: err}
		}
		logger.Error("File processing failed.", "error", err)
		return err
	}

	logger.Info("File processed.",
		"input_size", report.InputSize,
		"output_size", report.OutputSize,
		"decrease", fmt.Sprintf("%.2f%%", report.Decrease()),
		"written", report.Written,
	)
	if report.Backup != "" {
		logger.Info("Backup kept.", "backup", report.Backup)
	}
	return nil
}

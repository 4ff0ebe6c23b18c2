package engine

import (
	"bytes"
	"context"
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	"github.com/vk/optipng/internal/config"
	"github.com/vk/optipng/internal/ctxlog"
	"github.com/vk/optipng/internal/fsutil"
)

// PNGEngine is the default Engine. It is stateless and safe for concurrent
// use.
type PNGEngine struct{}

// NewPNGEngine creates the default engine.
func NewPNGEngine() *PNGEngine {
	return &PNGEngine{}
}

// Optimize recompresses job.Input and writes the result to job.Output
// according to the backup, clobber, force, preserve and simulate options.
func (e *PNGEngine) Optimize(ctx context.Context, job Job) (*Report, error) {
	logger := ctxlog.FromContext(ctx).With("input", job.Input)
	if job.Options == nil {
		return nil, fmt.Errorf("%w: job for %s carries no options", ErrInternal, job.Input)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	opts := job.Options

	info, err := os.Stat(job.Input)
	if err != nil {
		return nil, fmt.Errorf("failed to stat input: %w", err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%s: %w", job.Input, ErrNotRegular)
	}
	data, err := os.ReadFile(job.Input)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	out, err := e.recode(ctx, data, opts)
	if err != nil {
		return nil, err
	}

	report := &Report{
		Input:      job.Input,
		Output:     job.Output,
		InputSize:  int64(len(data)),
		OutputSize: int64(len(out)),
		Optimized:  !bytes.Equal(out, data),
	}
	logger.Debug("Stream recoded.", "input_size", report.InputSize, "output_size", report.OutputSize)

	if opts.Simulate {
		logger.Info("Simulation mode, no output written.")
		return report, nil
	}
	if err := e.write(ctx, job, info, out, report); err != nil {
		return nil, err
	}
	return report, nil
}

// recode returns the smallest stream found for data. It returns data itself
// when nothing smaller is possible.
func (e *PNGEngine) recode(ctx context.Context, data []byte, opts *config.Options) ([]byte, error) {
	logger := ctxlog.FromContext(ctx)

	chunks, err := readChunks(data)
	if err != nil {
		return nil, err
	}
	best := data
	if opts.StripAll {
		best = stripMetadata(data, chunks)
		if chunks, err = readChunks(best); err != nil {
			return nil, fmt.Errorf("%w: stripped stream is unreadable: %w", ErrInternal, err)
		}
	}

	level := opts.EffectiveOptimLevel()
	switch {
	case level == 0:
		logger.Debug("Optimization level 0, keeping the image data stream.")
		return best, nil
	case opts.Interlace == 1:
		logger.Warn("Interlacing is not supported by the encoder, keeping the image data stream.")
		return best, nil
	case interlaced(best, chunks) && opts.Interlace != 0:
		logger.Debug("Interlaced input, keeping the image data stream.")
		return best, nil
	}
	if typ := blockingChunk(chunks); typ != "" {
		logger.Debug("Ancillary chunk would be lost, keeping the image data stream.", "chunk", typ)
		return best, nil
	}

	img, err := png.Decode(bytes.NewReader(best))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	if level == 1 {
		enc.CompressionLevel = png.DefaultCompression
	}
	var buf bytes.Buffer
	if err := enc.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("%w: encoding failed: %w", ErrInternal, err)
	}
	if buf.Len() < len(best) {
		return buf.Bytes(), nil
	}
	return best, nil
}

func (e *PNGEngine) write(ctx context.Context, job Job, info os.FileInfo, out []byte, report *Report) error {
	logger := ctxlog.FromContext(ctx).With("output", job.Output)
	opts := job.Options

	if job.InPlace() {
		if !report.Optimized && !opts.Force {
			logger.Info("The input file is already optimized.")
			return nil
		}
		if opts.Backup {
			backup := fsutil.BackupName(job.Input)
			if fsutil.Exists(backup) && !opts.Clobber {
				return fmt.Errorf("%s: %w", backup, ErrOutputExists)
			}
			if err := fsutil.CopyFile(job.Input, backup); err != nil {
				return fmt.Errorf("failed to write backup: %w", err)
			}
			report.Backup = backup
			logger.Debug("Backup written.", "backup", backup)
		}
		if err := fsutil.WriteFileAtomic(job.Output, out, info.Mode().Perm()); err != nil {
			return err
		}
	} else {
		if fsutil.Exists(job.Output) && !opts.Clobber {
			return fmt.Errorf("%s: %w", job.Output, ErrOutputExists)
		}
		if opts.Dir != "" {
			if err := os.MkdirAll(filepath.Dir(job.Output), 0o755); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}
		var err error
		if report.Optimized {
			err = fsutil.WriteFileAtomic(job.Output, out, info.Mode().Perm())
		} else {
			err = fsutil.CopyFile(job.Input, job.Output)
		}
		if err != nil {
			return err
		}
	}
	report.Written = true

	if opts.Preserve {
		if err := fsutil.PreserveAttributes(job.Output, info); err != nil {
			return err
		}
	}
	logger.Debug("Output written.", "optimized", report.Optimized)
	return nil
}

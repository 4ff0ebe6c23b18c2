package engine

import (
	"context"
	"errors"
	"path/filepath"

	"github.com/vk/optipng/internal/config"
)

var (
	// ErrInternal marks faults of the engine itself rather than of the
	// user's input. The application treats them as internal errors.
	ErrInternal = errors.New("engine fault")
	// ErrNotPNG reports input that does not start with the PNG signature.
	ErrNotPNG = errors.New("not a PNG file")
	// ErrMalformed reports a PNG stream with a broken chunk structure.
	ErrMalformed = errors.New("malformed PNG stream")
	// ErrOutputExists reports an output or backup file that would be
	// overwritten without -clobber.
	ErrOutputExists = errors.New("output file exists, use -clobber to overwrite")
	// ErrNotRegular reports an input that is not a regular file.
	ErrNotRegular = errors.New("not a regular file")
)

// Engine optimizes one file per call.
type Engine interface {
	Optimize(ctx context.Context, job Job) (*Report, error)
}

// Job describes the work for a single file operand.
type Job struct {
	Input   string
	Output  string
	Options *config.Options
}

// InPlace reports whether the job rewrites its input file.
func (j Job) InPlace() bool {
	return filepath.Clean(j.Input) == filepath.Clean(j.Output)
}

// Report is the outcome of a successful Optimize call.
type Report struct {
	Input      string
	Output     string
	Backup     string // empty unless a backup was written
	InputSize  int64
	OutputSize int64
	Optimized  bool // the output stream differs from the input stream
	Written    bool // the output file was written
}

// Decrease returns the size reduction in percent of the input size.
func (r *Report) Decrease() float64 {
	if r.InputSize == 0 {
		return 0
	}
	return float64(r.InputSize-r.OutputSize) * 100 / float64(r.InputSize)
}

// OutputPath resolves where the result for input is written: the -out file,
// a file of the same name inside the -dir directory, or input itself.
func OutputPath(input string, opts *config.Options) string {
	switch {
	case opts.OutFile != "":
		return opts.OutFile
	case opts.Dir != "":
		return filepath.Join(opts.Dir, filepath.Base(input))
	default:
		return input
	}
}

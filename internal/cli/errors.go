package cli

import (
	"errors"
	"fmt"
)

// Process exit statuses.
const (
	ExitSuccess = 0
	ExitFailure = 1
	// ExitSoftware is EX_SOFTWARE from sysexits.h, used for internal errors.
	ExitSoftware = 70
)

// Kinds of command line errors. Every *ExitError returned by Parse wraps
// exactly one of them.
var (
	ErrUnrecognized    = errors.New("unrecognized option")
	ErrMissingArgument = errors.New("missing argument")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrConflict        = errors.New("conflicting options")
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Unwrap exposes the error kind to errors.Is.
func (e *ExitError) Unwrap() error {
	return e.Err
}

func usageError(kind error, format string, args ...any) *ExitError {
	return &ExitError{
		Code:    ExitFailure,
		Message: fmt.Sprintf(format, args...),
		Err:     kind,
	}
}

// invalidArgument reports a value rejected by a validator, keeping the
// validator's error reachable for errors.Is.
func invalidArgument(option string, cause error) *ExitError {
	return &ExitError{
		Code:    ExitFailure,
		Message: fmt.Sprintf("invalid argument for option -%s: %v", option, cause),
		Err:     fmt.Errorf("%w: %w", ErrInvalidArgument, cause),
	}
}

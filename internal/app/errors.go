package app

import (
	"errors"
	"fmt"
)

var (
	// ErrFilesFailed is returned by Run when at least one file could not be
	// processed. Each failure has already been logged.
	ErrFilesFailed = errors.New("some files could not be processed")
	// ErrUnsupportedPreset reports a preset file with an unknown extension.
	ErrUnsupportedPreset = errors.New("unsupported preset format")
)

// InternalError reports a fault of the program itself: an engine fault or a
// recovered panic. It maps to the EX_SOFTWARE exit status.
type InternalError struct {
	Cause error
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("internal error: %v", e.Cause)
}

func (e *InternalError) Unwrap() error {
	return e.Cause
}

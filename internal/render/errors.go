package render

import (
	"errors"
	"fmt"
)

// Common rendering errors
var (
	// ErrInvalidTemplate is returned when template source does not parse.
	ErrInvalidTemplate = errors.New("invalid template syntax")
)

// RenderError wraps a rendering failure with the operation and underlying
// cause. Rendering never produces partial output: the caller gets either the
// full sanitized document or this error.
type RenderError struct {
	// Op is the operation that failed (e.g. "Parse", "Render").
	Op string

	// Err is the underlying error.
	Err error

	// Details provides additional context about the failure.
	Details string
}

// Error implements the error interface.
func (e *RenderError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("render: %s failed: %s: %v", e.Op, e.Details, e.Err)
	}
	return fmt.Sprintf("render: %s failed: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *RenderError) Unwrap() error {
	return e.Err
}

// Is implements error matching for errors.Is.
func (e *RenderError) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// NewRenderError creates a RenderError with the specified operation and cause.
func NewRenderError(op string, err error, details string) *RenderError {
	return &RenderError{Op: op, Err: err, Details: details}
}

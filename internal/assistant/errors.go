package assistant

import (
	"errors"
	"fmt"
)

// Common assistant errors
var (
	// ErrMissingAPIKey is returned when no OpenAI API key is configured.
	ErrMissingAPIKey = errors.New("missing OpenAI API key")

	// ErrEmptyResponse is returned when the model produced no choices.
	ErrEmptyResponse = errors.New("empty model response")

	// ErrNoJSONPayload is returned when no JSON could be extracted from the
	// model's text response.
	ErrNoJSONPayload = errors.New("no JSON payload in model response")
)

// ParseError reports that candidate text was not valid JSON even after
// fence-stripping. It carries the underlying JSON parser message.
type ParseError struct {
	// Err is the underlying JSON decoding error.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("assistant: extract JSON failed: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is implements error matching for errors.Is.
func (e *ParseError) Is(target error) bool {
	return target == ErrNoJSONPayload || errors.Is(e.Err, target)
}

// AssistantError wraps generation failures with the operation that failed.
type AssistantError struct {
	// Op is the operation that failed (e.g. "GenerateTemplate").
	Op string

	// Err is the underlying error.
	Err error

	// Details provides additional context about the failure.
	Details string
}

// Error implements the error interface.
func (e *AssistantError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("assistant: %s failed: %s: %v", e.Op, e.Details, e.Err)
	}
	return fmt.Sprintf("assistant: %s failed: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *AssistantError) Unwrap() error {
	return e.Err
}

// Is implements error matching for errors.Is.
func (e *AssistantError) Is(target error) bool {
	return errors.Is(e.Err, target)
}

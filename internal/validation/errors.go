// Package validation uses an LLM to cross-check extracted resumes against
// the raw document text and produce a schema-conformant structured record.
package validation

import (
	"errors"
	"fmt"
)

// ErrNotAResume indicates the model judged the document not to be a resume.
var ErrNotAResume = errors.New("document is not a resume")

// Error represents a general validation error
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("validation error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// ResponseError represents an unusable model response
type ResponseError struct {
	Message  string
	Response string
	Cause    error
}

func (e *ResponseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("model response error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("model response error: %s", e.Message)
}

func (e *ResponseError) Unwrap() error {
	return e.Cause
}

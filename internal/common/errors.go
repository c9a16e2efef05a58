package common

import (
	"errors"
	"fmt"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Common application errors
var (
	ErrInvalidInput = errors.New("invalid input")

	// Per-attempt failures calling the extraction service. All of these are
	// recoverable: the caller falls through to the next chunk or variant.
	ErrTransport     = errors.New("transport failure")
	ErrServiceError  = errors.New("service error")
	ErrEmptyResponse = errors.New("empty response")

	// ErrNoResult marks a document whose chunks and variants were all
	// exhausted without a hit. Terminal for the document, never fatal.
	ErrNoResult = errors.New("no result")

	// ErrDocumentFatal marks a failure reading or chunking one document.
	// The pipeline isolates it to that document's task.
	ErrDocumentFatal = errors.New("document failed")
)

// Error constructors
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

package common

import (
	"errors"
	"testing"
)

func TestAppErrorFormatting(t *testing.T) {
	e := NewAppError("PDF_EXTRACT", "transcript-01", ErrDocumentFatal)
	want := "PDF_EXTRACT: transcript-01: document failed"
	if e.Error() != want {
		t.Fatalf("Error() = %q, want %q", e.Error(), want)
	}

	bare := NewAppError("CONFIG_ERROR", "workers must be positive", nil)
	if bare.Error() != "CONFIG_ERROR: workers must be positive" {
		t.Fatalf("Error() = %q", bare.Error())
	}
}

func TestAppErrorUnwrap(t *testing.T) {
	e := NewAppError("EMPTY_INPUT", "no input documents", ErrInvalidInput)
	if !errors.Is(e, ErrInvalidInput) {
		t.Fatal("errors.Is must see the cause through Unwrap")
	}

	var app *AppError
	if !errors.As(error(e), &app) || app.Code != "EMPTY_INPUT" {
		t.Fatal("errors.As must recover the AppError")
	}
}

func TestWrapError(t *testing.T) {
	if WrapError(nil, "context") != nil {
		t.Fatal("wrapping nil must stay nil")
	}
	err := WrapError(ErrTransport, "post generate")
	if !errors.Is(err, ErrTransport) {
		t.Fatal("wrapped error lost its cause")
	}
	if err.Error() != "post generate: transport failure" {
		t.Fatalf("Error() = %q", err.Error())
	}
}

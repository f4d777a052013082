package errors

import (
	stderrors "errors"
	"fmt"
)

// Category represents the type of error.
type Category string

const (
	CategoryConfig  Category = "config"
	CategoryStorage Category = "storage"
	CategoryServer  Category = "server"
	CategoryCLI     Category = "cli"
)

// RecyclerError is a structured error with a code, hint and cause.
type RecyclerError struct {
	// Code is a unique error identifier (e.g., "E001").
	Code string

	// Category is the error type.
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// File is the file the error relates to, if any.
	File string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *RecyclerError) Error() string {
	msg := e.Message
	if e.Code != "" {
		msg = fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	if e.Wrapped != nil {
		msg += ": " + e.Wrapped.Error()
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *RecyclerError) Unwrap() error {
	return e.Wrapped
}

// Is matches another RecyclerError with the same code.
func (e *RecyclerError) Is(target error) bool {
	t, ok := target.(*RecyclerError)
	return ok && t.Code != "" && t.Code == e.Code
}

// WithFile records the file the error relates to.
func (e *RecyclerError) WithFile(path string) *RecyclerError {
	e.File = path
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *RecyclerError) WithSuggestion(s string) *RecyclerError {
	e.Suggestion = s
	return e
}

// WithDetail adds a detailed explanation to the error.
func (e *RecyclerError) WithDetail(d string) *RecyclerError {
	e.Detail = d
	return e
}

// Wrap wraps another error.
func (e *RecyclerError) Wrap(err error) *RecyclerError {
	e.Wrapped = err
	return e
}

// New creates a RecyclerError from a registered error code.
func New(code string) *RecyclerError {
	template, ok := registry[code]
	if !ok {
		return &RecyclerError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &RecyclerError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
	}
}

// Newf creates a new RecyclerError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *RecyclerError {
	return &RecyclerError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a RecyclerError. An error that already
// is one is returned as is.
func FromError(err error, code string) *RecyclerError {
	if err == nil {
		return nil
	}
	var re *RecyclerError
	if stderrors.As(err, &re) {
		return re
	}
	return New(code).Wrap(err)
}

// Code returns the code of the first RecyclerError in err's chain.
func Code(err error) string {
	var re *RecyclerError
	if stderrors.As(err, &re) {
		return re.Code
	}
	return ""
}

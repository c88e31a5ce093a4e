package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")
)

// Kind classifies an error for the transport layer.
type Kind int

const (
	KindInternalFailure Kind = iota
	KindValidationFailed
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindValidationFailed:
		return "ValidationFailed"
	case KindUnauthorized:
		return "Unauthorized"
	case KindForbidden:
		return "Forbidden"
	case KindNotFound:
		return "NotFound"
	case KindConflict:
		return "Conflict"
	default:
		return "InternalFailure"
	}
}

// KindOf reports the taxonomy kind of err. Anything that does not wrap
// one of the sentinels is an internal failure.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindInternalFailure
	case errors.Is(err, ErrValidation):
		return KindValidationFailed
	case errors.Is(err, ErrUnauthorized):
		return KindUnauthorized
	case errors.Is(err, ErrForbidden):
		return KindForbidden
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrAlreadyExists), errors.Is(err, ErrConflict):
		return KindConflict
	default:
		return KindInternalFailure
	}
}

// PublicError attaches a client-safe message to a sentinel error.
type PublicError struct {
	Err     error
	Message string
}

func (e *PublicError) Error() string { return e.Message }

func (e *PublicError) Unwrap() error { return e.Err }

// NewPublicError wraps sentinel with a message that may be shown to API clients.
func NewPublicError(sentinel error, message string) *PublicError {
	return &PublicError{Err: sentinel, Message: message}
}

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

func (f FieldError) String() string {
	return f.Field + ": " + f.Message
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// Messages flattens the field errors into "field: message" strings.
func (e *ValidationError) Messages() []string {
	out := make([]string, 0, len(e.Errors))
	for _, f := range e.Errors {
		out = append(out, f.String())
	}
	return out
}

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

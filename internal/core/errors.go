package core

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// Sentinel errors for the repository layer. Handlers map these onto HTTP
// status codes in WriteError.
var (
	// ErrNotFound reports that no document matched.
	ErrNotFound = errors.New("document not found")
	// ErrDuplicated reports a unique index violation.
	ErrDuplicated = errors.New("document already exists")
)

// ValidationError wraps a request payload validation failure.
type ValidationError struct {
	err error
}

func (e *ValidationError) Error() string {
	return e.err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.err
}

// NewValidationError wraps err as a request validation failure.
func NewValidationError(err error) *ValidationError {
	return &ValidationError{err: err}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateStruct validates a request payload against its validate tags.
// Returns a *ValidationError on failure.
func ValidateStruct(v any) error {
	if err := validate.Struct(v); err != nil {
		return &ValidationError{err: err}
	}
	return nil
}

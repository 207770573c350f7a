package models

import "errors"

var (
	ErrNotFound   = errors.New("record not found")
	ErrValidation = errors.New("validation failed")
)

// ValidationError carries a client-facing reason and matches ErrValidation.
type ValidationError struct {
	Reason string
}

func Invalid(reason string) error {
	return &ValidationError{Reason: reason}
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

package entity

import (
	"errors"
	"fmt"
)

// Sentinel errors describing the two kinds of validation failure.
var (
	// ErrTypeMismatch indicates that a value does not reference the required entity type,
	// e.g. an article assigned a nil author.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrInvalidValue indicates that a value has the right type but violates
	// a length or emptiness constraint.
	ErrInvalidValue = errors.New("invalid value")
)

// ValidationError represents a validation error with detailed field information.
// Kind is one of ErrTypeMismatch or ErrInvalidValue and is exposed through Unwrap,
// so callers can match with errors.Is.
type ValidationError struct {
	Kind    error
	Entity  string
	Field   string
	Message string
}

// Error returns a formatted error message for the validation error.
func (e *ValidationError) Error() string {
	if e.Entity == "" {
		return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error on field '%s.%s': %s", e.Entity, e.Field, e.Message)
}

// Unwrap returns the error kind.
func (e *ValidationError) Unwrap() error {
	return e.Kind
}

// KindName returns a short label for the error kind, used for metrics and logs.
func (e *ValidationError) KindName() string {
	switch {
	case errors.Is(e.Kind, ErrTypeMismatch):
		return "type"
	case errors.Is(e.Kind, ErrInvalidValue):
		return "value"
	default:
		return "unknown"
	}
}

// NewTypeError builds a ValidationError of kind ErrTypeMismatch.
func NewTypeError(entity, field, message string) *ValidationError {
	return &ValidationError{Kind: ErrTypeMismatch, Entity: entity, Field: field, Message: message}
}

// NewValueError builds a ValidationError of kind ErrInvalidValue.
func NewValueError(entity, field, message string) *ValidationError {
	return &ValidationError{Kind: ErrInvalidValue, Entity: entity, Field: field, Message: message}
}

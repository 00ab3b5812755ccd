package shape

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes shape errors.
type ErrorCode string

const (
	// ErrCodeNotImplemented indicates a shape was asked for its area without
	// providing an Area implementation.
	ErrCodeNotImplemented ErrorCode = "NOT_IMPLEMENTED"

	// ErrCodeInvalidArgument indicates a variant was constructed with a
	// dimension that is not a finite number > 0.
	ErrCodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"

	// ErrCodeInvalidArea indicates a shape reported an area that is NaN,
	// infinite or negative.
	ErrCodeInvalidArea ErrorCode = "INVALID_AREA"
)

// Sentinels for errors.Is. They match any *Error with the same code.
var (
	ErrNotImplemented  = &Error{Code: ErrCodeNotImplemented, Message: "method Area must be implemented"}
	ErrInvalidArgument = &Error{Code: ErrCodeInvalidArgument, Message: "invalid dimension"}
	ErrInvalidArea     = &Error{Code: ErrCodeInvalidArea, Message: "area must be finite and non-negative"}
)

// Error is a structured shape failure.
type Error struct {
	// Code identifies the error category.
	Code ErrorCode

	// Kind is the shape kind involved, if known.
	Kind string

	// Field is the offending dimension for INVALID_ARGUMENT errors.
	Field string

	// Message is a human-readable description.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e.Kind != "" && e.Field != "":
		return fmt.Sprintf("%s: %s (kind=%s, field=%s)", e.Code, e.Message, e.Kind, e.Field)
	case e.Kind != "":
		return fmt.Sprintf("%s: %s (kind=%s)", e.Code, e.Message, e.Kind)
	default:
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
}

// Is reports whether target is a shape error with the same code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// IsNotImplemented returns true if err is or wraps a NOT_IMPLEMENTED error.
func IsNotImplemented(err error) bool {
	return errors.Is(err, ErrNotImplemented)
}

// IsInvalidArgument returns true if err is or wraps an INVALID_ARGUMENT error.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

// IsInvalidArea returns true if err is or wraps an INVALID_AREA error.
func IsInvalidArea(err error) bool {
	return errors.Is(err, ErrInvalidArea)
}

// NewInvalidArgument creates an INVALID_ARGUMENT error for one dimension.
func NewInvalidArgument(kind, field string, value float64) *Error {
	return &Error{
		Code:    ErrCodeInvalidArgument,
		Kind:    kind,
		Field:   field,
		Message: fmt.Sprintf("%s must be a finite number > 0, got %v", field, value),
	}
}

// NewInvalidArea creates an INVALID_AREA error for a reported area.
func NewInvalidArea(kind string, value float64) *Error {
	return &Error{
		Code:    ErrCodeInvalidArea,
		Kind:    kind,
		Message: fmt.Sprintf("area must be finite and non-negative, got %v", value),
	}
}

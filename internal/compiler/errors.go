package compiler

import (
	"fmt"
	"strings"

	"cuelang.org/go/cue/errors"
)

// Validation error codes (E200-E299)
const (
	ErrUnsupportedFormat = "E200" // input format is neither yaml nor cue
	ErrSyntax            = "E201" // document does not parse
	ErrSchema            = "E202" // document violates #Document
	ErrInvalidDimension  = "E203" // dimension is not a finite number > 0
	ErrUnknownKind       = "E204" // no factory registered for kind
	ErrDimensionMismatch = "E205" // missing or unexpected dimension
	ErrDuplicateKind     = "E206" // kind registered twice
)

// ValidationError represents a document validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
	Line    int    `json:"line,omitempty"`

	// Cause is the underlying error, if any. It is not serialized.
	Cause error `json:"-"`
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("[%s] line %d: %s: %s", e.Code, e.Line, e.Field, e.Message)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Code, e.Field, e.Message)
}

// Unwrap returns the underlying cause.
func (e ValidationError) Unwrap() error {
	return e.Cause
}

// ValidationErrors is a non-empty list of validation errors returned as a
// single error.
type ValidationErrors []ValidationError

// Error reports the first error and how many followed it.
func (errs ValidationErrors) Error() string {
	switch len(errs) {
	case 0:
		return "no validation errors"
	case 1:
		return errs[0].Error()
	default:
		return fmt.Sprintf("%s (and %d more)", errs[0].Error(), len(errs)-1)
	}
}

// Unwrap exposes every error to errors.Is and errors.As.
func (errs ValidationErrors) Unwrap() []error {
	out := make([]error, len(errs))
	for i, e := range errs {
		out[i] = e
	}
	return out
}

// Codes returns the code of every error in order.
func (errs ValidationErrors) Codes() []string {
	codes := make([]string, len(errs))
	for i, e := range errs {
		codes[i] = e.Code
	}
	return codes
}

// fromCUE converts a CUE error, which may hold many, into ValidationErrors.
// Errors under a dims field are reported as ErrInvalidDimension; anything
// else gets code.
func fromCUE(code string, err error) ValidationErrors {
	var out ValidationErrors
	for _, e := range errors.Errors(err) {
		path := e.Path()
		format, args := e.Msg()

		c := code
		if code == ErrSchema && containsDims(path) {
			c = ErrInvalidDimension
		}

		field := strings.Join(path, ".")
		if field == "" {
			field = "document"
		}

		out = append(out, ValidationError{
			Field:   field,
			Message: fmt.Sprintf(format, args...),
			Code:    c,
			Line:    lineOf(e),
			Cause:   e,
		})
	}
	if len(out) == 0 {
		out = append(out, ValidationError{Field: "document", Message: err.Error(), Code: code, Cause: err})
	}
	return out
}

func containsDims(path []string) bool {
	for i, p := range path {
		if p == "dims" && i < len(path)-1 {
			return true
		}
	}
	return false
}

// lineOf returns the first valid line among the error's positions.
func lineOf(e errors.Error) int {
	if pos := e.Position(); pos.IsValid() {
		return pos.Line()
	}
	for _, pos := range errors.Positions(e) {
		if pos.IsValid() {
			return pos.Line()
		}
	}
	return 0
}

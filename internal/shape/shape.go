package shape

import (
	"fmt"
	"math"
	"strings"
)

// Kind names of the built-in variants.
const (
	KindRectangle = "rectangle"
	KindCircle    = "circle"
	KindTriangle  = "triangle"
)

// Shape is the capability shared by every variant.
type Shape interface {
	// Area returns the geometric area. It is finite and non-negative for
	// every correctly built variant.
	Area() (float64, error)
}

// Unimplemented can be embedded to declare a Shape whose Area has not been
// written yet. Calling Area on it fails with ErrNotImplemented.
type Unimplemented struct{}

// Area always fails.
func (Unimplemented) Area() (float64, error) {
	return 0, &Error{Code: ErrCodeNotImplemented, Message: "method Area must be implemented"}
}

// KindOf names the kind of s. Shapes with a Kind method report it;
// anything else falls back to its lower-cased Go type name.
func KindOf(s Shape) string {
	if k, ok := s.(interface{ Kind() string }); ok {
		return k.Kind()
	}
	name := fmt.Sprintf("%T", s)
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return strings.ToLower(strings.TrimPrefix(name, "*"))
}

// checkArea rejects dimensions that are each valid but whose area
// overflows float64.
func checkArea(kind string, area float64) error {
	if math.IsInf(area, 0) || math.IsNaN(area) {
		return &Error{
			Code:    ErrCodeInvalidArgument,
			Kind:    kind,
			Field:   "dims",
			Message: fmt.Sprintf("dims overflow: area would be %v", area),
		}
	}
	return nil
}

// checkDimension rejects NaN, infinities, zero and negative values.
func checkDimension(kind, field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return NewInvalidArgument(kind, field, v)
	}
	return nil
}

package harness

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/roach88/solid/internal/area"
	"github.com/roach88/solid/internal/shape"
)

// AssertionError is returned when an assertion fails.
type AssertionError struct {
	Type     string // Assertion type for categorization
	Expected string // Human-readable expected outcome
	Actual   string // Human-readable actual outcome
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	return fmt.Sprintf("%s: expected %s, got %s", e.Type, e.Expected, e.Actual)
}

// evaluate checks one assertion. shapes is nil when building failed.
func evaluate(a Assertion, shapes []shape.Shape, r *Result) error {
	if a.Type == AssertFailsWith {
		return assertFailsWith(a, r)
	}
	if r.Failed() {
		return &AssertionError{
			Type:     a.Type,
			Expected: "a successful computation",
			Actual:   fmt.Sprintf("failure %s", strings.Join(r.ErrorCodes, ",")),
		}
	}

	switch a.Type {
	case AssertTotalEquals:
		return assertClose(a, r.Total)
	case AssertShapeCount:
		if r.Shapes != a.Count {
			return &AssertionError{Type: a.Type, Expected: fmt.Sprintf("%d shapes", a.Count), Actual: fmt.Sprintf("%d", r.Shapes)}
		}
		return nil
	case AssertOrderIndependent:
		return assertOrderIndependent(a, shapes, r.Total)
	case AssertLastShapeAdds:
		return assertLastShapeAdds(a, shapes, r.Total)
	default:
		return fmt.Errorf("unknown assertion type %q", a.Type)
	}
}

func tolerance(a Assertion) float64 {
	if a.Tolerance == 0 {
		return DefaultTolerance
	}
	return a.Tolerance
}

func assertClose(a Assertion, got float64) error {
	if math.Abs(got-a.Value) > tolerance(a) {
		return &AssertionError{
			Type:     a.Type,
			Expected: fmt.Sprintf("%g ± %g", a.Value, tolerance(a)),
			Actual:   fmt.Sprintf("%g", got),
		}
	}
	return nil
}

// assertOrderIndependent re-sums the shapes in reverse order.
func assertOrderIndependent(a Assertion, shapes []shape.Shape, total float64) error {
	reversed := slices.Clone(shapes)
	slices.Reverse(reversed)

	got, err := area.Total(reversed...)
	if err != nil {
		return &AssertionError{Type: a.Type, Expected: "reversed order to succeed", Actual: err.Error()}
	}
	if math.Abs(got-total) > tolerance(a) {
		return &AssertionError{
			Type:     a.Type,
			Expected: fmt.Sprintf("reversed total %g", total),
			Actual:   fmt.Sprintf("%g", got),
		}
	}
	return nil
}

// assertLastShapeAdds checks that the last shape contributes exactly Value.
func assertLastShapeAdds(a Assertion, shapes []shape.Shape, total float64) error {
	if len(shapes) == 0 {
		return &AssertionError{Type: a.Type, Expected: "at least one shape", Actual: "none"}
	}
	without, err := area.Total(shapes[:len(shapes)-1]...)
	if err != nil {
		return &AssertionError{Type: a.Type, Expected: "prefix to succeed", Actual: err.Error()}
	}
	return assertClose(a, total-without)
}

func assertFailsWith(a Assertion, r *Result) error {
	if !r.Failed() {
		return &AssertionError{
			Type:     a.Type,
			Expected: fmt.Sprintf("failure %s", a.Code),
			Actual:   fmt.Sprintf("success with total %g", r.Total),
		}
	}
	if !slices.Contains(r.ErrorCodes, a.Code) {
		return &AssertionError{
			Type:     a.Type,
			Expected: fmt.Sprintf("failure %s", a.Code),
			Actual:   fmt.Sprintf("failure %s", strings.Join(r.ErrorCodes, ",")),
		}
	}
	return nil
}

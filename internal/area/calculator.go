package area

import (
	"fmt"
	"math"

	"github.com/roach88/solid/internal/shape"
)

// Calculator sums the areas of a fixed sequence of shapes.
// The sequence is copied at construction and never mutated afterwards.
type Calculator struct {
	shapes []shape.Shape
}

// New creates a Calculator over shapes. An empty sequence is valid.
func New(shapes ...shape.Shape) *Calculator {
	owned := make([]shape.Shape, len(shapes))
	copy(owned, shapes)
	return &Calculator{shapes: owned}
}

// Len returns the number of shapes in the sequence.
func (c *Calculator) Len() int {
	return len(c.shapes)
}

// TotalArea folds over the sequence, starting from 0. A sum that
// overflows float64 fails with INVALID_AREA.
//
// The first failing shape aborts the computation and no partial sum is
// returned. Failures are wrapped with the shape's position and kind, so
// shape.IsNotImplemented and friends still match.
func (c *Calculator) TotalArea() (float64, error) {
	total := 0.0
	for i, s := range c.shapes {
		a, err := measure(s)
		if err != nil {
			return 0, fmt.Errorf("shape %d (%s): %w", i, shape.KindOf(s), err)
		}
		total += a
	}
	if math.IsInf(total, 0) {
		return 0, shape.NewInvalidArea("total", total)
	}
	return total, nil
}

// Areas returns each shape's area in sequence order, failing like TotalArea.
func (c *Calculator) Areas() ([]float64, error) {
	out := make([]float64, len(c.shapes))
	for i, s := range c.shapes {
		a, err := measure(s)
		if err != nil {
			return nil, fmt.Errorf("shape %d (%s): %w", i, shape.KindOf(s), err)
		}
		out[i] = a
	}
	return out, nil
}

// Total is shorthand for New(shapes...).TotalArea().
func Total(shapes ...shape.Shape) (float64, error) {
	return New(shapes...).TotalArea()
}

// measure calls Area and enforces the finite, non-negative invariant.
func measure(s shape.Shape) (float64, error) {
	if s == nil {
		return 0, &shape.Error{Code: shape.ErrCodeNotImplemented, Message: "nil shape has no Area"}
	}
	a, err := s.Area()
	if err != nil {
		return 0, err
	}
	if math.IsNaN(a) || math.IsInf(a, 0) || a < 0 {
		return 0, shape.NewInvalidArea(shape.KindOf(s), a)
	}
	return a, nil
}

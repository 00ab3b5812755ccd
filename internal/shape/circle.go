package shape

import (
	"fmt"
	"math"
)

// Circle is given by its radius.
type Circle struct {
	radius float64
}

// NewCircle creates a Circle. The radius must be finite and > 0, and
// small enough that the area does not overflow.
func NewCircle(radius float64) (Circle, error) {
	if err := checkDimension(KindCircle, "radius", radius); err != nil {
		return Circle{}, err
	}
	c := Circle{radius: radius}
	if err := checkArea(KindCircle, math.Pi*c.radius*c.radius); err != nil {
		return Circle{}, err
	}
	return c, nil
}

// MustCircle is like NewCircle but panics on error.
// Use only in tests or when inputs are known to be valid.
func MustCircle(radius float64) Circle {
	c, err := NewCircle(radius)
	if err != nil {
		panic(err)
	}
	return c
}

// Radius returns the radius.
func (c Circle) Radius() float64 { return c.radius }

// Area returns π × radius².
func (c Circle) Area() (float64, error) {
	return math.Pi * c.radius * c.radius, nil
}

// Kind returns KindCircle.
func (c Circle) Kind() string { return KindCircle }

// String formats the circle as Circle(r=R).
func (c Circle) String() string {
	return fmt.Sprintf("Circle(r=%g)", c.radius)
}

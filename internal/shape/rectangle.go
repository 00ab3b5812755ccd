package shape

import "fmt"

// Rectangle is an axis-free rectangle given by its two side lengths.
type Rectangle struct {
	width  float64
	height float64
}

// NewRectangle creates a Rectangle. Both sides must be finite and > 0,
// and their product must not overflow.
func NewRectangle(width, height float64) (Rectangle, error) {
	if err := checkDimension(KindRectangle, "width", width); err != nil {
		return Rectangle{}, err
	}
	if err := checkDimension(KindRectangle, "height", height); err != nil {
		return Rectangle{}, err
	}
	r := Rectangle{width: width, height: height}
	if err := checkArea(KindRectangle, r.width*r.height); err != nil {
		return Rectangle{}, err
	}
	return r, nil
}

// MustRectangle is like NewRectangle but panics on error.
// Use only in tests or when inputs are known to be valid.
func MustRectangle(width, height float64) Rectangle {
	r, err := NewRectangle(width, height)
	if err != nil {
		panic(err)
	}
	return r
}

// Width returns the first side length.
func (r Rectangle) Width() float64 { return r.width }

// Height returns the second side length.
func (r Rectangle) Height() float64 { return r.height }

// Area returns width × height.
func (r Rectangle) Area() (float64, error) {
	return r.width * r.height, nil
}

// Kind returns KindRectangle.
func (r Rectangle) Kind() string { return KindRectangle }

// String formats the rectangle as Rectangle(WxH).
func (r Rectangle) String() string {
	return fmt.Sprintf("Rectangle(%gx%g)", r.width, r.height)
}

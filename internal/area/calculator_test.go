package area

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/solid/internal/shape"
)

func TestTotalArea_Empty(t *testing.T) {
	total, err := New().TotalArea()
	require.NoError(t, err)
	assert.Equal(t, 0.0, total)

	total, err = Total()
	require.NoError(t, err)
	assert.Equal(t, 0.0, total)
}

func TestTotalArea_RectangleAndCircle(t *testing.T) {
	total, err := Total(shape.MustRectangle(2, 3), shape.MustCircle(1))
	require.NoError(t, err)
	assert.InDelta(t, 6+math.Pi, total, 1e-12)
	assert.InDelta(t, 9.14159, total, 1e-5)
}

func TestTotalArea_OrderIndependent(t *testing.T) {
	shapes := []shape.Shape{
		shape.MustRectangle(2, 3),
		shape.MustCircle(1.5),
		shape.MustTriangle(3, 4),
		shape.MustRectangle(0.25, 8),
	}

	forward, err := Total(shapes...)
	require.NoError(t, err)

	reversed := make([]shape.Shape, len(shapes))
	for i, s := range shapes {
		reversed[len(shapes)-1-i] = s
	}
	backward, err := Total(reversed...)
	require.NoError(t, err)

	assert.InDelta(t, forward, backward, 1e-9)

	for i := range shapes {
		for j := range shapes {
			ab, err := Total(shapes[i], shapes[j])
			require.NoError(t, err)
			ba, err := Total(shapes[j], shapes[i])
			require.NoError(t, err)
			assert.InDelta(t, ab, ba, 1e-12)
		}
	}
}

// square is declared here, outside package shape, to show that a new
// variant needs no change to the calculator.
type square struct{ side float64 }

func (s square) Area() (float64, error) { return s.side * s.side, nil }

func TestTotalArea_NewVariantAddsExactlyItsArea(t *testing.T) {
	base := []shape.Shape{shape.MustRectangle(2, 3), shape.MustCircle(1)}

	before, err := Total(base...)
	require.NoError(t, err)

	after, err := Total(append(base, square{side: 3})...)
	require.NoError(t, err)

	assert.InDelta(t, 9.0, after-before, 1e-12)

	withTriangle, err := Total(append(base, shape.MustTriangle(3, 4))...)
	require.NoError(t, err)
	assert.InDelta(t, 6.0, withTriangle-before, 1e-12)
}

type unfinished struct {
	shape.Unimplemented
}

func TestTotalArea_NotImplementedFailsWholeComputation(t *testing.T) {
	total, err := Total(shape.MustRectangle(2, 3), unfinished{}, shape.MustCircle(1))
	require.Error(t, err)
	assert.Zero(t, total, "no partial result")
	assert.True(t, shape.IsNotImplemented(err))
	assert.Contains(t, err.Error(), "shape 1 (unfinished)")
}

type broken struct{ area float64 }

func (b broken) Area() (float64, error) { return b.area, nil }
func (b broken) Kind() string           { return "broken" }

func TestTotalArea_RejectsInvalidArea(t *testing.T) {
	for _, a := range []float64{-1, math.NaN(), math.Inf(1)} {
		_, err := Total(shape.MustCircle(1), broken{area: a})
		require.Error(t, err)
		assert.True(t, shape.IsInvalidArea(err), "area %v", a)
		assert.Contains(t, err.Error(), "shape 1 (broken)")
	}
}

func TestTotalArea_RejectsOverflowingSum(t *testing.T) {
	big := shape.MustRectangle(1e154, 1.5e154)

	total, err := Total(big, big)
	require.Error(t, err)
	assert.True(t, shape.IsInvalidArea(err))
	assert.Zero(t, total)

	var shapeErr *shape.Error
	require.True(t, errors.As(err, &shapeErr))
	assert.Equal(t, "total", shapeErr.Kind)
}

type failing struct{}

var errMeasure = errors.New("tape measure snapped")

func (failing) Area() (float64, error) { return 0, errMeasure }

func TestTotalArea_PropagatesArbitraryErrors(t *testing.T) {
	_, err := Total(failing{})
	require.Error(t, err)
	assert.ErrorIs(t, err, errMeasure)
}

func TestTotalArea_NilShape(t *testing.T) {
	_, err := Total(shape.MustCircle(1), nil)
	require.Error(t, err)
	assert.True(t, shape.IsNotImplemented(err))
}

func TestNew_CopiesInput(t *testing.T) {
	shapes := []shape.Shape{shape.MustRectangle(1, 1)}
	calc := New(shapes...)

	shapes[0] = shape.MustRectangle(10, 10)

	total, err := calc.TotalArea()
	require.NoError(t, err)
	assert.Equal(t, 1.0, total)
	assert.Equal(t, 1, calc.Len())
}

func TestAreas(t *testing.T) {
	areas, err := New(shape.MustRectangle(2, 3), shape.MustTriangle(2, 2)).Areas()
	require.NoError(t, err)
	assert.Equal(t, []float64{6, 2}, areas)

	_, err = New(unfinished{}).Areas()
	assert.True(t, shape.IsNotImplemented(err))
}

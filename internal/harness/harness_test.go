package harness

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/solid/internal/compiler"
	"github.com/roach88/solid/internal/shape"
)

const rectangleAndCircle = `
name: rectangle_and_circle
description: "Rectangle(2,3) plus Circle(1) is 6 + π"
shapes:
  - kind: rectangle
    dims: {width: 2, height: 3}
  - kind: circle
    dims: {radius: 1}
assertions:
  - type: total_equals
    value: 9.14159
    tolerance: 0.00001
  - type: shape_count
    count: 2
  - type: order_independent
  - type: last_shape_adds
    value: 3.14159
    tolerance: 0.00001
`

func mustLoad(t *testing.T, src string) *Scenario {
	t.Helper()
	s, err := LoadScenario(strings.NewReader(src))
	require.NoError(t, err)
	return s
}

func TestRun_RectangleAndCircle(t *testing.T) {
	result := New().RunWithGolden(t, mustLoad(t, rectangleAndCircle))

	assert.True(t, result.Pass, "errors: %v", result.Errors)
	assert.Equal(t, 2, result.Shapes)
	assert.InDelta(t, 9.14159, result.Total, 1e-5)
}

func TestRun_Empty(t *testing.T) {
	s := mustLoad(t, `
name: empty
description: "No shapes sum to zero"
shapes: []
assertions:
  - type: total_equals
    value: 0
  - type: shape_count
    count: 0
`)
	result := New().RunWithGolden(t, s)
	assert.True(t, result.Pass, "errors: %v", result.Errors)
}

func TestRun_TriangleExtendsTotal(t *testing.T) {
	s := mustLoad(t, `
name: triangle_extension
description: "Adding a triangle adds exactly its area"
shapes:
  - kind: rectangle
    dims: {width: 2, height: 3}
  - kind: circle
    dims: {radius: 1}
  - kind: triangle
    dims: {base: 3, height: 4}
assertions:
  - type: last_shape_adds
    value: 6
  - type: order_independent
`)
	result := New().RunWithGolden(t, s)
	assert.True(t, result.Pass, "errors: %v", result.Errors)
}

type draft struct {
	shape.Unimplemented
}

func draftRegistry(t *testing.T) *compiler.Registry {
	t.Helper()
	reg := compiler.DefaultRegistry()
	require.NoError(t, reg.Register(compiler.Kind{
		Name: "draft",
		New:  func(...float64) (shape.Shape, error) { return draft{}, nil },
	}))
	return reg
}

func TestRun_UnfinishedExtensionFails(t *testing.T) {
	s := mustLoad(t, `
name: unfinished_extension
description: "A shape without Area fails the whole sum"
shapes:
  - kind: rectangle
    dims: {width: 2, height: 3}
  - kind: draft
    dims: {}
assertions:
  - type: fails_with
    code: NOT_IMPLEMENTED
`)
	result := New(WithRegistry(draftRegistry(t))).RunWithGolden(t, s)

	assert.True(t, result.Pass, "errors: %v", result.Errors)
	assert.True(t, shape.IsNotImplemented(result.Err))
	assert.Zero(t, result.Total)
}

func TestRun_InvalidDimension(t *testing.T) {
	s := mustLoad(t, `
name: negative_radius
description: "Negative radius never reaches the calculator"
shapes:
  - kind: circle
    dims: {radius: -1}
assertions:
  - type: fails_with
    code: E203
`)
	result := Run(s)
	assert.True(t, result.Pass, "errors: %v", result.Errors)
	assert.Contains(t, result.ErrorCodes, compiler.ErrInvalidDimension)
}

func TestRun_UnknownKind(t *testing.T) {
	s := mustLoad(t, `
name: unknown_kind
description: "Unregistered kinds are rejected"
shapes:
  - kind: draft
    dims: {}
assertions:
  - type: fails_with
    code: E204
`)
	result := Run(s)
	assert.True(t, result.Pass, "errors: %v", result.Errors)
}

func TestRun_FailingAssertions(t *testing.T) {
	s := mustLoad(t, `
name: wrong_expectations
description: "Every assertion here is wrong"
shapes:
  - kind: rectangle
    dims: {width: 2, height: 3}
assertions:
  - type: total_equals
    value: 7
  - type: shape_count
    count: 3
  - type: last_shape_adds
    value: 1
  - type: fails_with
    code: NOT_IMPLEMENTED
`)
	result := Run(s)
	assert.False(t, result.Pass)
	require.Len(t, result.Errors, 4)
	assert.Contains(t, result.Errors[0], "total_equals: expected 7")
	assert.Contains(t, result.Errors[1], "shape_count: expected 3 shapes, got 1")
	assert.Contains(t, result.Errors[3], "success with total 6")
}

func TestRun_UnexpectedFailure(t *testing.T) {
	s := mustLoad(t, `
name: surprise
description: "A failure nobody asked for"
shapes:
  - kind: hexagon
    dims: {side: 1}
assertions:
  - type: shape_count
    count: 1
`)
	result := Run(s)
	assert.False(t, result.Pass)
	require.Len(t, result.Errors, 2)
	assert.Contains(t, result.Errors[0], "failure E204")
	assert.Contains(t, result.Errors[1], "unexpected failure")
}

func TestRunAll(t *testing.T) {
	scenarios, err := LoadScenarios(strings.NewReader(rectangleAndCircle + `
---
name: broken
description: "Wrong total"
shapes: []
assertions:
  - type: total_equals
    value: 1
`))
	require.NoError(t, err)
	require.Len(t, scenarios, 2)

	suite := New().RunAll(scenarios)
	assert.Equal(t, 2, suite.Total)
	assert.Equal(t, 1, suite.Passed)
	assert.Equal(t, 1, suite.Failed)
	assert.False(t, suite.Pass())
	require.Len(t, suite.Failures, 1)
	assert.Equal(t, "broken", suite.Failures[0].Scenario)
}

package harness

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadScenario(t *testing.T) {
	s := mustLoad(t, rectangleAndCircle)

	assert.Equal(t, "rectangle_and_circle", s.Name)
	require.Len(t, s.Shapes, 2)
	assert.Equal(t, "rectangle", s.Shapes[0].Kind)
	assert.Equal(t, 3.0, s.Shapes[0].Dims["height"])
	require.Len(t, s.Assertions, 4)
	assert.Equal(t, AssertTotalEquals, s.Assertions[0].Type)
	assert.Equal(t, 0.00001, s.Assertions[0].Tolerance)
}

func TestLoadScenario_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty stream", "", "no scenarios found"},
		{"missing name", "description: d\nshapes: []\nassertions: [{type: total_equals}]\n", "name is required"},
		{"missing description", "name: n\nshapes: []\nassertions: [{type: total_equals}]\n", "description is required"},
		{"missing shapes", "name: n\ndescription: d\nassertions: [{type: total_equals}]\n", "shapes list is required"},
		{"no assertions", "name: n\ndescription: d\nshapes: []\n", "assertions list is required"},
		{"unknown assertion", "name: n\ndescription: d\nshapes: []\nassertions: [{type: vibes}]\n", `unknown assertion type "vibes"`},
		{"fails_with without code", "name: n\ndescription: d\nshapes: []\nassertions: [{type: fails_with}]\n", "code is required"},
		{"negative tolerance", "name: n\ndescription: d\nshapes: []\nassertions: [{type: total_equals, tolerance: -1}]\n", "tolerance must be non-negative"},
		{"typo field", "name: n\ndescription: d\nshapes: []\nasertions: []\n", "failed to parse YAML"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadScenario(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadScenario_RejectsMultiple(t *testing.T) {
	_, err := LoadScenario(strings.NewReader(rectangleAndCircle + "\n---\n" + rectangleAndCircle))
	assert.ErrorContains(t, err, "expected exactly one scenario, found 2")
}

package ir

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestShapeSpecLabel(t *testing.T) {
	assert.Equal(t, "floor", ShapeSpec{Name: "floor", Kind: "rectangle"}.Label(3))
	assert.Equal(t, "circle#2", ShapeSpec{Kind: "circle"}.Label(2))
}

func TestShapeSpecDimNames(t *testing.T) {
	s := ShapeSpec{Kind: "rectangle", Dims: map[string]float64{"width": 2, "height": 3}}
	assert.Equal(t, []string{"height", "width"}, s.DimNames())
	assert.Empty(t, ShapeSpec{}.DimNames())
}

func TestDocumentTags(t *testing.T) {
	doc := Document{Shapes: []ShapeSpec{{Kind: "circle", Dims: map[string]float64{"radius": 1}}}}

	data, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.JSONEq(t, `{"shapes":[{"kind":"circle","dims":{"radius":1}}]}`, string(data))

	var fromYAML Document
	require.NoError(t, yaml.Unmarshal([]byte("shapes:\n  - kind: circle\n    dims: {radius: 1}\n"), &fromYAML))
	assert.Equal(t, doc, fromYAML)
}

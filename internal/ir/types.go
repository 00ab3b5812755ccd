package ir

import (
	"fmt"
	"sort"
)

// Document is an ordered list of shape specifications.
type Document struct {
	Version string      `json:"version,omitempty" yaml:"version,omitempty"`
	Shapes  []ShapeSpec `json:"shapes" yaml:"shapes"`
}

// ShapeSpec describes one shape before it is built.
type ShapeSpec struct {
	Name string             `json:"name,omitempty" yaml:"name,omitempty"`
	Kind string             `json:"kind" yaml:"kind"`
	Dims map[string]float64 `json:"dims" yaml:"dims"`
}

// Label identifies the spec in diagnostics: its name if set, otherwise
// "<kind>#<index>".
func (s ShapeSpec) Label(index int) string {
	if s.Name != "" {
		return s.Name
	}
	return fmt.Sprintf("%s#%d", s.Kind, index)
}

// DimNames returns the dimension names in sorted order.
func (s ShapeSpec) DimNames() []string {
	names := make([]string, 0, len(s.Dims))
	for k := range s.Dims {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

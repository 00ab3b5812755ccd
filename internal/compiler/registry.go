package compiler

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/roach88/solid/internal/ir"
	"github.com/roach88/solid/internal/shape"
)

// Kind tells the registry how to build one shape kind from a spec.
type Kind struct {
	// Name is the value of the spec's kind field.
	Name string

	// Dims lists the required dimension names in the order New takes them.
	Dims []string

	// New builds the shape. It receives one value per entry of Dims.
	New func(dims ...float64) (shape.Shape, error)
}

// Registry maps kind names to builders. New kinds are registered, never
// patched into existing code.
type Registry struct {
	kinds map[string]Kind
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{kinds: make(map[string]Kind)}
}

// DefaultRegistry knows the built-in rectangle, circle and triangle kinds.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.MustRegister(Kind{
		Name: shape.KindRectangle,
		Dims: []string{"width", "height"},
		New: func(d ...float64) (shape.Shape, error) {
			return shape.NewRectangle(d[0], d[1])
		},
	})
	r.MustRegister(Kind{
		Name: shape.KindCircle,
		Dims: []string{"radius"},
		New: func(d ...float64) (shape.Shape, error) {
			return shape.NewCircle(d[0])
		},
	})
	r.MustRegister(Kind{
		Name: shape.KindTriangle,
		Dims: []string{"base", "height"},
		New: func(d ...float64) (shape.Shape, error) {
			return shape.NewTriangle(d[0], d[1])
		},
	})
	return r
}

// Register adds a kind. Registering the same name twice is an error.
func (r *Registry) Register(k Kind) error {
	if k.Name == "" || k.New == nil {
		return fmt.Errorf("register kind: name and New are required")
	}
	if _, exists := r.kinds[k.Name]; exists {
		return ValidationError{
			Field:   "kind",
			Message: fmt.Sprintf("kind %q is already registered", k.Name),
			Code:    ErrDuplicateKind,
		}
	}
	r.kinds[k.Name] = k
	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(k Kind) {
	if err := r.Register(k); err != nil {
		panic(err)
	}
}

// Kinds returns the registered kind names in sorted order.
func (r *Registry) Kinds() []string {
	names := make([]string, 0, len(r.kinds))
	for name := range r.kinds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// BuildShape builds a single shape from spec. index is only used to label
// diagnostics.
func (r *Registry) BuildShape(index int, spec ir.ShapeSpec) (shape.Shape, error) {
	field := fmt.Sprintf("shapes[%d]", index)

	k, ok := r.kinds[spec.Kind]
	if !ok {
		return nil, ValidationError{
			Field:   field + ".kind",
			Message: fmt.Sprintf("%s: unknown kind %q (known: %s)", spec.Label(index), spec.Kind, strings.Join(r.Kinds(), ", ")),
			Code:    ErrUnknownKind,
		}
	}

	for _, name := range spec.DimNames() {
		if !slices.Contains(k.Dims, name) {
			return nil, ValidationError{
				Field:   field + ".dims." + name,
				Message: fmt.Sprintf("%s: %s has no dimension %q (expects %s)", spec.Label(index), k.Name, name, strings.Join(k.Dims, ", ")),
				Code:    ErrDimensionMismatch,
			}
		}
	}

	args := make([]float64, len(k.Dims))
	for i, name := range k.Dims {
		v, ok := spec.Dims[name]
		if !ok {
			return nil, ValidationError{
				Field:   field + ".dims." + name,
				Message: fmt.Sprintf("%s: missing dimension %q", spec.Label(index), name),
				Code:    ErrDimensionMismatch,
			}
		}
		args[i] = v
	}

	s, err := k.New(args...)
	if err != nil {
		code := ErrSchema
		if errors.Is(err, shape.ErrInvalidArgument) {
			code = ErrInvalidDimension
		}
		return nil, ValidationError{
			Field:   field,
			Message: fmt.Sprintf("%s: %v", spec.Label(index), err),
			Code:    code,
			Cause:   err,
		}
	}
	return s, nil
}

// Build turns every spec in doc into a shape, preserving order. All specs
// are checked; the returned error lists every failure.
func (r *Registry) Build(doc *ir.Document) ([]shape.Shape, error) {
	shapes := make([]shape.Shape, 0, len(doc.Shapes))
	var errs ValidationErrors
	for i, spec := range doc.Shapes {
		s, err := r.BuildShape(i, spec)
		if err != nil {
			var ve ValidationError
			if errors.As(err, &ve) {
				errs = append(errs, ve)
			} else {
				errs = append(errs, ValidationError{Field: fmt.Sprintf("shapes[%d]", i), Message: err.Error(), Code: ErrSchema, Cause: err})
			}
			continue
		}
		shapes = append(shapes, s)
	}
	if len(errs) > 0 {
		return nil, errs
	}
	return shapes, nil
}

// Load parses data in format and builds its shapes with r.
func (r *Registry) Load(format string, data []byte) ([]shape.Shape, error) {
	doc, err := Parse(format, data)
	if err != nil {
		return nil, err
	}
	return r.Build(doc)
}

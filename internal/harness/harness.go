package harness

import (
	"errors"

	"go.uber.org/zap"

	"github.com/roach88/solid/internal/area"
	"github.com/roach88/solid/internal/compiler"
	"github.com/roach88/solid/internal/ir"
	"github.com/roach88/solid/internal/shape"
)

// Harness runs scenarios against a kind registry.
type Harness struct {
	registry *compiler.Registry
	logger   *zap.Logger
}

// Option configures a Harness.
type Option func(*Harness)

// WithRegistry builds shapes with reg instead of compiler.DefaultRegistry.
func WithRegistry(reg *compiler.Registry) Option {
	return func(h *Harness) { h.registry = reg }
}

// WithLogger sets the logger used for per-scenario diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(h *Harness) { h.logger = logger }
}

// New creates a Harness.
func New(opts ...Option) *Harness {
	h := &Harness{
		registry: compiler.DefaultRegistry(),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Run executes a scenario with the default registry.
func Run(s *Scenario) *Result {
	return New().Run(s)
}

// Run executes a scenario and evaluates its assertions.
//
// Execution flow:
//  1. Validate the shape specs against the document schema
//  2. Build shapes with the registry
//  3. Measure each shape and sum the areas
//  4. Evaluate every assertion against the outcome
//
// A failure in steps 1-3 is recorded on the result, not returned;
// fails_with assertions inspect it.
func (h *Harness) Run(s *Scenario) *Result {
	result := NewResult(s.Name)

	shapes, err := h.build(s.Shapes)
	if err == nil {
		result.Shapes = len(shapes)
		calc := area.New(shapes...)
		var areas []float64
		if areas, err = calc.Areas(); err == nil {
			result.Areas = areas
			result.Total, err = calc.TotalArea()
		}
	}
	if err != nil {
		result.Err = err
		result.ErrorCodes = errorCodes(err)
		result.Areas = []float64{}
		result.Total = 0
	}

	expectsFailure := false
	for _, a := range s.Assertions {
		if a.Type == AssertFailsWith {
			expectsFailure = true
		}
		if aerr := evaluate(a, shapes, result); aerr != nil {
			result.AddError(aerr.Error())
		}
	}
	if result.Failed() && !expectsFailure {
		result.AddError("unexpected failure: " + result.Err.Error())
	}

	h.logger.Debug("scenario finished",
		zap.String("scenario", s.Name),
		zap.Bool("pass", result.Pass),
		zap.Int("shapes", result.Shapes),
		zap.Float64("total", result.Total),
		zap.Strings("error_codes", result.ErrorCodes),
	)
	return result
}

func (h *Harness) build(specs []ir.ShapeSpec) ([]shape.Shape, error) {
	doc := &ir.Document{Shapes: specs}
	if err := compiler.Check(doc); err != nil {
		return nil, err
	}
	return h.registry.Build(doc)
}

// errorCodes lists document codes first, then the shape error code.
func errorCodes(err error) []string {
	var codes []string
	var verrs compiler.ValidationErrors
	if errors.As(err, &verrs) {
		codes = append(codes, verrs.Codes()...)
	}
	var serr *shape.Error
	if errors.As(err, &serr) {
		codes = append(codes, string(serr.Code))
	}
	if len(codes) == 0 {
		codes = append(codes, "UNKNOWN")
	}
	return codes
}

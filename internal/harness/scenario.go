package harness

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/roach88/solid/internal/ir"
)

// Scenario defines one check of the area calculator.
type Scenario struct {
	// Name uniquely identifies this scenario. It also names the golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Shapes are built in order with the harness registry.
	Shapes []ir.ShapeSpec `yaml:"shapes"`

	// Assertions are evaluated against the result. At least one is required.
	Assertions []Assertion `yaml:"assertions"`
}

// Assertion validates a scenario result.
type Assertion struct {
	// Type is one of the Assert* constants.
	Type string `yaml:"type"`

	// Value is the expected total (total_equals) or delta (last_shape_adds).
	Value float64 `yaml:"value,omitempty"`

	// Tolerance is the allowed absolute difference. Zero means DefaultTolerance.
	Tolerance float64 `yaml:"tolerance,omitempty"`

	// Count is the expected number of shapes (shape_count).
	Count int `yaml:"count,omitempty"`

	// Code is the expected error code (fails_with).
	Code string `yaml:"code,omitempty"`
}

// Assertion type constants.
const (
	AssertTotalEquals      = "total_equals"
	AssertShapeCount       = "shape_count"
	AssertOrderIndependent = "order_independent"
	AssertLastShapeAdds    = "last_shape_adds"
	AssertFailsWith        = "fails_with"
)

// DefaultTolerance is used when an assertion leaves Tolerance at zero.
const DefaultTolerance = 1e-9

// LoadScenario reads a single scenario from r.
// Unknown fields are rejected to catch typos.
func LoadScenario(r io.Reader) (*Scenario, error) {
	scenarios, err := LoadScenarios(r)
	if err != nil {
		return nil, err
	}
	if len(scenarios) != 1 {
		return nil, fmt.Errorf("expected exactly one scenario, found %d", len(scenarios))
	}
	return scenarios[0], nil
}

// LoadScenarios reads every scenario in a YAML stream.
func LoadScenarios(r io.Reader) ([]*Scenario, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var scenarios []*Scenario
	for i := 0; ; i++ {
		var s Scenario
		err := decoder.Decode(&s)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse YAML (document %d): %w", i, err)
		}
		if err := validateScenario(&s); err != nil {
			return nil, fmt.Errorf("invalid scenario (document %d): %w", i, err)
		}
		scenarios = append(scenarios, &s)
	}
	if len(scenarios) == 0 {
		return nil, fmt.Errorf("no scenarios found")
	}
	return scenarios, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Description == "" {
		return fmt.Errorf("description is required")
	}
	if s.Shapes == nil {
		return fmt.Errorf("shapes list is required (use [] for none)")
	}
	if len(s.Assertions) == 0 {
		return fmt.Errorf("assertions list is required and must be non-empty")
	}
	for i, a := range s.Assertions {
		if err := validateAssertion(i, a); err != nil {
			return err
		}
	}
	return nil
}

// validateAssertion validates a single assertion based on its type.
func validateAssertion(index int, a Assertion) error {
	if a.Tolerance < 0 {
		return fmt.Errorf("assertions[%d]: tolerance must be non-negative", index)
	}
	switch a.Type {
	case "":
		return fmt.Errorf("assertions[%d]: type is required", index)
	case AssertTotalEquals, AssertOrderIndependent, AssertLastShapeAdds:
	case AssertShapeCount:
		if a.Count < 0 {
			return fmt.Errorf("assertions[%d]: count must be non-negative for shape_count", index)
		}
	case AssertFailsWith:
		if a.Code == "" {
			return fmt.Errorf("assertions[%d]: code is required for fails_with", index)
		}
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}
	return nil
}

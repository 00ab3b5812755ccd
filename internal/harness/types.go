package harness

import (
	"fmt"
	"strings"
)

// Result is the outcome of a scenario execution.
type Result struct {
	// Scenario is the scenario name.
	Scenario string `json:"scenario"`

	// Pass indicates overall success: every assertion held.
	Pass bool `json:"pass"`

	// Shapes is the number of shapes that were built.
	Shapes int `json:"shapes"`

	// Areas holds each shape's area in order. Empty if summing failed.
	Areas []float64 `json:"areas"`

	// Total is the summed area. Zero if summing failed.
	Total float64 `json:"total"`

	// ErrorCodes lists the codes of the build or sum failure, if any.
	ErrorCodes []string `json:"error_codes,omitempty"`

	// Err is the build or sum failure, if any.
	Err error `json:"-"`

	// Errors contains assertion failure messages.
	// Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
func NewResult(scenario string) *Result {
	return &Result{
		Scenario: scenario,
		Pass:     true,
		Areas:    []float64{},
		Errors:   []string{},
	}
}

// AddError adds an assertion failure and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

// Failed reports whether building or summing failed.
func (r *Result) Failed() bool {
	return r.Err != nil
}

// Snapshot renders the result as stable text for golden comparison.
// Areas are printed with six decimals so tiny floating-point noise does
// not churn golden files.
func (r *Result) Snapshot() []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "scenario: %s\n", r.Scenario)
	fmt.Fprintf(&b, "pass: %t\n", r.Pass)
	fmt.Fprintf(&b, "shapes: %d\n", r.Shapes)
	if r.Failed() {
		fmt.Fprintf(&b, "error: %s\n", strings.Join(r.ErrorCodes, ","))
	} else {
		for i, a := range r.Areas {
			fmt.Fprintf(&b, "area[%d]: %.6f\n", i, a)
		}
		fmt.Fprintf(&b, "total: %.6f\n", r.Total)
	}
	for _, e := range r.Errors {
		fmt.Fprintf(&b, "failure: %s\n", e)
	}
	return []byte(b.String())
}

package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"
)

// RunWithGolden executes a scenario and compares its snapshot against a
// golden file at testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// The returned result lets callers assert on Pass as well.
func (h *Harness) RunWithGolden(t *testing.T, scenario *Scenario) *Result {
	t.Helper()

	result := h.Run(scenario)
	AssertGolden(t, scenario.Name, result)
	return result
}

// AssertGolden compares an existing result against its golden file.
func AssertGolden(t *testing.T, name string, result *Result) {
	t.Helper()

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, result.Snapshot())
}

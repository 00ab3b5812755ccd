package cli

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/solid/internal/harness"
)

// Error codes for scenario checks.
const (
	ErrCodeBadScenario    = "E004" // scenario stream does not load
	ErrCodeScenarioFailed = "E005" // at least one scenario failed
)

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Run principle scenarios read from stdin",
		Long: `Run YAML scenarios read from stdin against the area calculator.

Scenarios are separated by "---". Each one lists shapes and assertions:
total_equals, shape_count, order_independent, last_shape_adds and
fails_with. All scenarios run even when an earlier one fails.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(rootOpts, cmd)
		},
	}

	return cmd
}

func runCheck(opts *RootOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	data, err := readInput(formatter, cmd.InOrStdin())
	if err != nil {
		return err
	}

	scenarios, err := harness.LoadScenarios(bytes.NewReader(data))
	if err != nil {
		_ = formatter.Error(ErrCodeBadScenario, err.Error(), nil)
		return WrapExitError(ExitCommandError, "loading scenarios", err)
	}
	formatter.VerboseLog("Loaded %d scenario(s)", len(scenarios))

	h := harness.New(
		harness.WithRegistry(opts.Registry),
		harness.WithLogger(opts.logger()),
	)
	suite := h.RunAll(scenarios)

	if err := outputSuite(formatter, suite); err != nil {
		return err
	}
	if !suite.Pass() {
		return NewExitError(ExitFailure, fmt.Sprintf("%d of %d scenario(s) failed", suite.Failed, suite.Total))
	}
	return nil
}

func outputSuite(formatter *OutputFormatter, suite *harness.SuiteResult) error {
	if formatter.Format == "json" {
		if suite.Pass() {
			return formatter.Success(suite)
		}
		return json.NewEncoder(formatter.Writer).Encode(CLIResponse{
			Status: "error",
			Data:   suite,
			Error: &CLIError{
				Code:    ErrCodeScenarioFailed,
				Message: fmt.Sprintf("%d of %d scenario(s) failed", suite.Failed, suite.Total),
			},
		})
	}

	for _, r := range suite.Results {
		if r.Pass {
			fmt.Fprintf(formatter.Writer, "%s %s\n", formatter.Mark(true), r.Scenario)
			continue
		}
		fmt.Fprintf(formatter.Writer, "%s %s\n", formatter.Mark(false), r.Scenario)
		for _, e := range r.Errors {
			fmt.Fprintf(formatter.Writer, "    %s\n", e)
		}
	}
	fmt.Fprintf(formatter.Writer, "%d scenario(s): %d passed, %d failed\n", suite.Total, suite.Passed, suite.Failed)
	return nil
}

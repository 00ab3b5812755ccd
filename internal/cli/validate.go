package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/roach88/solid/internal/compiler"
	"github.com/roach88/solid/internal/ir"
)

// ValidationResult holds validation results.
type ValidationResult struct {
	Valid  bool                       `json:"valid"`
	Shapes int                        `json:"shapes"`
	Digest string                     `json:"digest,omitempty"`
	Errors []compiler.ValidationError `json:"errors,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a shape document without summing it",
		Long: `Validate a shape document read from stdin.

Checks syntax, the document schema, and that every shape names a known
kind with exactly the dimensions that kind expects. Every problem is
reported, not only the first.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	data, err := readInput(formatter, cmd.InOrStdin())
	if err != nil {
		return err
	}

	doc, err := compiler.Parse(opts.Input, data)
	if err != nil {
		return outputValidationErrors(formatter, err)
	}
	formatter.VerboseLog("Parsed %d shape spec(s) as %s", len(doc.Shapes), opts.Input)

	if _, err := opts.Registry.Build(doc); err != nil {
		return outputValidationErrors(formatter, err)
	}

	digest, err := ir.Digest(doc)
	if err != nil {
		return outputValidationErrors(formatter, err)
	}
	formatter.VerboseLog("Digest: %s", digest)
	opts.logger().Debug("document valid", zap.Int("shapes", len(doc.Shapes)), zap.String("digest", digest))
	return outputValidateSuccess(formatter, ValidationResult{Valid: true, Shapes: len(doc.Shapes), Digest: digest})
}

// outputValidateSuccess outputs successful validation results.
func outputValidateSuccess(formatter *OutputFormatter, result ValidationResult) error {
	if formatter.Format == "json" {
		return formatter.Success(result)
	}

	fmt.Fprintf(formatter.Writer, "%s Document valid (%d shapes)\n", formatter.Mark(true), result.Shapes)
	return nil
}

// outputValidationErrors outputs every validation error carried by err.
func outputValidationErrors(formatter *OutputFormatter, err error) error {
	var errs compiler.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		_ = formatter.Error(errorCode(err), err.Error(), nil)
		return WrapExitError(ExitFailure, "validation failed", err)
	}

	if formatter.Format == "json" {
		response := CLIResponse{
			Status: "error",
			Data:   ValidationResult{Valid: false, Errors: errs},
			Error: &CLIError{
				Code:    errs[0].Code,
				Message: errs[0].Message,
			},
		}

		encoder := json.NewEncoder(formatter.Writer)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(response); err != nil {
			return err
		}

		// Validation failures = exit code 1
		return NewExitError(ExitFailure, fmt.Sprintf("validation failed with %d error(s)", len(errs)))
	}

	// Text format
	fmt.Fprintln(formatter.Writer, formatter.Mark(false)+" Validation failed")
	fmt.Fprintln(formatter.Writer)

	for _, e := range errs {
		if e.Line > 0 {
			fmt.Fprintf(formatter.Writer, "line %d\n", e.Line)
		}
		fmt.Fprintf(formatter.Writer, "  %s: %s\n\n", e.Code, e.Message)
	}

	return NewExitError(ExitFailure, fmt.Sprintf("validation failed with %d error(s)", len(errs)))
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/roach88/solid/internal/area"
	"github.com/roach88/solid/internal/compiler"
	"github.com/roach88/solid/internal/ir"
	"github.com/roach88/solid/internal/shape"
)

// AreaResult is the JSON payload of the area command.
type AreaResult struct {
	Shapes []ShapeArea `json:"shapes"`
	Total  float64     `json:"total"`
}

// ShapeArea is one measured shape.
type ShapeArea struct {
	Label string  `json:"label"`
	Kind  string  `json:"kind"`
	Area  float64 `json:"area"`
}

// NewAreaCommand creates the area command.
func NewAreaCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "area",
		Short: "Sum the areas of the shapes in a document",
		Long: `Read a shape document from stdin, build every shape and print each
area followed by the total.

Example:

  echo '{shapes: [{kind: rectangle, dims: {width: 2, height: 3}}]}' | solid area

The first shape that cannot report an area aborts the computation; no
partial total is printed.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runArea(rootOpts, cmd)
		},
	}

	return cmd
}

func runArea(opts *RootOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)
	log := opts.logger()

	data, err := readInput(formatter, cmd.InOrStdin())
	if err != nil {
		return err
	}

	doc, err := compiler.Parse(opts.Input, data)
	if err != nil {
		return outputValidationErrors(formatter, err)
	}
	shapes, err := opts.Registry.Build(doc)
	if err != nil {
		return outputValidationErrors(formatter, err)
	}
	formatter.VerboseLog("Built %d shape(s)", len(shapes))

	calc := area.New(shapes...)
	areas, err := calc.Areas()
	if err != nil {
		return outputAreaError(formatter, err)
	}
	total, err := calc.TotalArea()
	if err != nil {
		return outputAreaError(formatter, err)
	}
	log.Debug("area computed", zap.Int("shapes", calc.Len()), zap.Float64("total", total))

	result := AreaResult{Shapes: make([]ShapeArea, len(shapes)), Total: total}
	for i, s := range shapes {
		result.Shapes[i] = ShapeArea{
			Label: label(doc.Shapes[i], i),
			Kind:  shape.KindOf(s),
			Area:  areas[i],
		}
	}
	return outputAreaSuccess(formatter, result)
}

// label names a shape in text output: "lid (circle)" when named,
// "circle#1" otherwise.
func label(spec ir.ShapeSpec, index int) string {
	if spec.Name != "" {
		return fmt.Sprintf("%s (%s)", spec.Name, spec.Kind)
	}
	return spec.Label(index)
}

func outputAreaSuccess(formatter *OutputFormatter, result AreaResult) error {
	if formatter.Format == "json" {
		return formatter.Success(result)
	}

	for _, s := range result.Shapes {
		fmt.Fprintf(formatter.Writer, "%s: %s\n", s.Label, formatter.Number(s.Area))
	}
	fmt.Fprintf(formatter.Writer, "Total area: %s\n", formatter.Number(result.Total))
	return nil
}

// outputAreaError reports a failure from the calculator itself, as
// opposed to a document problem.
func outputAreaError(formatter *OutputFormatter, err error) error {
	_ = formatter.Error(errorCode(err), err.Error(), nil)
	return WrapExitError(ExitFailure, "area computation failed", err)
}

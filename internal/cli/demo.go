package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/roach88/solid/internal/area"
	"github.com/roach88/solid/internal/bird"
	"github.com/roach88/solid/internal/device"
	"github.com/roach88/solid/internal/journal"
	"github.com/roach88/solid/internal/logging"
	"github.com/roach88/solid/internal/office"
	"github.com/roach88/solid/internal/shape"
)

// DemoSection is the output of one principle's walkthrough.
type DemoSection struct {
	Principle string   `json:"principle"`
	Lines     []string `json:"lines"`
}

// NewDemoCommand creates the demo command.
func NewDemoCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Walk through all five principles",
		Long: `Run a short example of each SOLID principle and print what it does.

The Open/Closed section sums a 2x3 rectangle and a unit circle.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(rootOpts, cmd)
		},
	}

	return cmd
}

func runDemo(opts *RootOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	sections, err := Demo(opts.logger(), formatter.Number)
	if err != nil {
		_ = formatter.Error(errorCode(err), err.Error(), nil)
		return WrapExitError(ExitFailure, "demo failed", err)
	}

	if formatter.Format == "json" {
		return formatter.Success(sections)
	}

	out := logging.NewWriterSink(formatter.Writer)
	for _, s := range sections {
		out.Line(fmt.Sprintf("== %s ==", s.Principle))
		for _, line := range s.Lines {
			out.Line(line)
		}
	}
	return nil
}

// Demo runs every principle example and returns what each one printed,
// in order. Lines are also logged at info level. number formats areas.
func Demo(log *zap.Logger, number func(float64) string) ([]DemoSection, error) {
	if log == nil {
		log = logging.NewNop()
	}
	var sections []DemoSection
	run := func(principle string, body func(sink logging.Sink) error) error {
		section := DemoSection{Principle: principle, Lines: []string{}}
		collect := logging.SinkFunc(func(text string) {
			section.Lines = append(section.Lines, strings.Split(text, "\n")...)
		})
		sink := logging.Tee(collect, logging.NewLoggerSink(log.With(zap.String("principle", principle))))
		if err := body(sink); err != nil {
			return fmt.Errorf("%s: %w", principle, err)
		}
		sections = append(sections, section)
		return nil
	}

	steps := []struct {
		principle string
		body      func(sink logging.Sink) error
	}{
		{"Single Responsibility", func(sink logging.Sink) error {
			j := journal.New()
			j.AddEntry("I cried today.")
			j.AddEntry("I ate a bug.")
			p := journal.NewPersistence(sink)
			p.Save(j, "journal.txt")
			if _, err := p.Load("journal.txt"); err != nil && !errors.Is(err, journal.ErrNotSupported) {
				return err
			}
			log.Debug("journal saved", zap.Stringer("journal_id", j.ID()), zap.Int("entries", j.Len()))
			return nil
		}},
		{"Open/Closed", func(sink logging.Sink) error {
			shapes := []shape.Shape{shape.MustRectangle(2, 3), shape.MustCircle(1)}
			calc := area.New(shapes...)
			areas, err := calc.Areas()
			if err != nil {
				return err
			}
			for i, s := range shapes {
				sink.Line(fmt.Sprintf("%v: %s", s, number(areas[i])))
			}
			total, err := calc.TotalArea()
			if err != nil {
				return err
			}
			sink.Line("Total area: " + number(total))
			return nil
		}},
		{"Liskov Substitution", func(sink logging.Sink) error {
			for _, b := range []bird.Bird{bird.Duck{}, bird.Ostrich{}} {
				sink.Line(bird.Move(b))
			}
			return nil
		}},
		{"Interface Segregation", func(sink logging.Sink) error {
			office.PrintAll(office.NewBasicPrinter(sink), "Report")
			office.Copy(office.NewMultiFunctionPrinter(sink), "Photo")
			return nil
		}},
		{"Dependency Inversion", func(sink logging.Sink) error {
			light := device.NewSwitch(device.NewLightBulb(sink))
			light.Press()
			light.Press()
			device.NewSwitch(device.NewFan(sink)).Press()
			return nil
		}},
	}

	for _, step := range steps {
		if err := run(step.principle, step.body); err != nil {
			return nil, err
		}
	}
	return sections, nil
}

package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/roach88/solid/internal/compiler"
	"github.com/roach88/solid/internal/config"
	"github.com/roach88/solid/internal/ir"
	"github.com/roach88/solid/internal/logging"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose  bool
	Format   string // "json" | "text"
	Input    string // "yaml" | "cue"
	LogLevel string
	Locale   string

	// Registry builds shapes for area and validate. Defaults to
	// compiler.DefaultRegistry.
	Registry *compiler.Registry

	// Logger is set in PersistentPreRunE.
	Logger *zap.Logger
}

// ValidFormats defines the allowed output formats.
var ValidFormats = config.ValidFormats

// NewRootCommand creates the root command for the solid CLI.
// Flag defaults come from the SOLID_* environment variables.
func NewRootCommand() *cobra.Command {
	cfg, cfgErr := config.Load()
	if cfgErr != nil {
		cfg = config.Config{Format: "text", LogLevel: "warn", Input: "yaml", Locale: "en"}
	}
	opts := &RootOptions{Registry: compiler.DefaultRegistry()}

	cmd := &cobra.Command{
		Use:     "solid",
		Version: ir.ToolVersion,
		Short: "solid - the SOLID principles, one shape at a time",
		Long: `A sampler of the five SOLID design principles.

Shape documents (YAML or CUE) are read from stdin and summed by an area
calculator that is closed to modification and open to new shape kinds.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cfgErr != nil {
				return WrapExitError(ExitCommandError, "loading environment", cfgErr)
			}
			if !isValidFormat(opts.Format) {
				return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			if !slices.Contains(config.ValidInputs, opts.Input) {
				return NewExitError(ExitCommandError, fmt.Sprintf("invalid input %q: must be one of %v", opts.Input, config.ValidInputs))
			}
			if _, err := language.Parse(opts.Locale); err != nil {
				return WrapExitError(ExitCommandError, fmt.Sprintf("invalid locale %q", opts.Locale), err)
			}
			level := opts.LogLevel
			if opts.Verbose {
				level = "debug"
			}
			logger, err := logging.New(level, cmd.ErrOrStderr())
			if err != nil {
				return WrapExitError(ExitCommandError, "configuring logger", err)
			}
			opts.Logger = logger
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", cfg.Format, "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.Input, "input", cfg.Input, "shape document format on stdin (yaml|cue)")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", cfg.LogLevel, "log level (debug|info|warn|error)")
	cmd.PersistentFlags().StringVar(&opts.Locale, "locale", cfg.Locale, "locale for numbers in text output")

	// Add subcommands
	cmd.AddCommand(NewAreaCommand(opts))
	cmd.AddCommand(NewValidateCommand(opts))
	cmd.AddCommand(NewCheckCommand(opts))
	cmd.AddCommand(NewDemoCommand(opts))

	return cmd
}

// newFormatter creates the formatter for one command invocation.
func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Verbose logs go to stderr to avoid corrupting JSON
		Verbose:   opts.Verbose,
		Locale:    opts.Locale,
	}
}

func (o *RootOptions) logger() *zap.Logger {
	if o.Logger == nil {
		return logging.NewNop()
	}
	return o.Logger
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	return slices.Contains(ValidFormats, format)
}

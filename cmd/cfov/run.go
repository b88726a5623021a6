package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/kula-app/cfov/internal/config"
	"github.com/kula-app/cfov/internal/fov"
	"github.com/kula-app/cfov/internal/logging"
	"github.com/kula-app/cfov/internal/version"
)

const usageHint = "Use --help for usage information"

// options holds the parsed command-line flags
type options struct {
	vertical   bool
	horizontal bool
	precision  int
	logLevel   string
}

// The run function is like the main function, except that it takes in operating system fundamentals as arguments, and returns an error.
//
// If the run function finishes without an error, the result or the requested help/version text was written to stdout.
// If the run function returns an error, the input was rejected and nothing was written to stdout.
func run(ctx context.Context, args []string, getenv func(key string) string, stdout, stderr io.Writer) error {
	cfg, err := config.FromEnv(getenv)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	cmd := newRootCommand(cfg, stdout, stderr)
	if len(args) > 1 {
		cmd.SetArgs(args[1:])
	} else {
		cmd.SetArgs([]string{})
	}
	return cmd.ExecuteContext(ctx)
}

func newRootCommand(cfg *config.Config, stdout, stderr io.Writer) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "cfov (-v | -h) <aspect-ratio> <fov>",
		Short: "Convert between horizontal and vertical field of view",
		Long: `cfov converts a field of view between its horizontal and vertical extent
for a viewport of the given aspect ratio.

The aspect ratio is either a width:height pair (16:9) or a single ratio (1.78).
Angles are in degrees and must be in (0, 180].`,
		Example: `  cfov -v 16:9 90     # vertical FOV from 90 degrees horizontal at 16:9
  cfov -h 4:3 55.5    # horizontal FOV from 55.5 degrees vertical at 4:3`,
		Version:       version.String(),
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Without any input there is nothing to convert, show usage instead of an error
			if len(args) == 0 && cmd.Flags().NFlag() == 0 {
				return cmd.Help()
			}
			return convert(cfg, opts, args, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetVersionTemplate("{{.Version}}\n")

	flags := cmd.Flags()
	flags.SortFlags = false
	flags.BoolVarP(&opts.vertical, "vertical", "v", false, "Convert horizontal FOV to vertical FOV")
	flags.BoolVarP(&opts.horizontal, "horizontal", "h", false, "Convert vertical FOV to horizontal FOV")
	flags.IntVarP(&opts.precision, "precision", "p", cfg.Precision, "Decimal places in the result (-1 prints the shortest exact value)")
	flags.StringVar(&opts.logLevel, "log-level", cfg.LogLevel.String(), "Minimum log level written to standard error (debug, info, warn, error)")
	// -h is taken by --horizontal, so help moves to -?
	flags.BoolP("help", "?", false, "Display usage information")
	flags.Bool("version", false, "Display version information")

	return cmd
}

// convert validates the raw inputs, runs the conversion and prints the resulting angle
func convert(cfg *config.Config, opts options, args []string, stdout, stderr io.Writer) error {
	level, err := config.ParseLogLevel(opts.logLevel)
	if err != nil {
		return fmt.Errorf("%w. %s", err, usageHint)
	}
	if err := config.ValidatePrecision(opts.precision); err != nil {
		return fmt.Errorf("%w. %s", err, usageHint)
	}

	logger := slog.New(logging.NewTerminalHandler(stderr, logging.Options{
		Level:   level,
		NoColor: cfg.NoColor,
	}))

	direction, err := fov.DirectionFromFlags(opts.vertical, opts.horizontal)
	if err != nil {
		return fmt.Errorf("%w. %s", err, usageHint)
	}

	if len(args) != 2 {
		logger.Debug("wrong number of positional arguments", "count", len(args))
		return fmt.Errorf("%w. %s", fov.ErrMissingArguments, usageHint)
	}

	ratio, err := fov.ParseAspectRatio(args[0])
	if err != nil {
		return err
	}

	angle, err := fov.ParseAngle(args[1])
	if err != nil {
		return err
	}

	logger.Debug("converting field of view",
		"direction", direction,
		"ratio", ratio,
		"input_degrees", angle.Degrees())

	result, err := fov.Convert(direction, ratio, angle)
	if err != nil {
		return err
	}

	logger.Debug("conversion complete", "output_degrees", result.Degrees())

	if _, err := fmt.Fprintln(stdout, formatDegrees(result.Degrees(), opts.precision)); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	return nil
}

// formatDegrees renders an angle as a plain decimal, rounded half away from zero
// when precision is not negative
func formatDegrees(degrees float64, precision int) string {
	if precision < 0 {
		return strconv.FormatFloat(degrees, 'f', -1, 64)
	}
	return strconv.FormatFloat(scalar.Round(degrees, precision), 'f', precision, 64)
}

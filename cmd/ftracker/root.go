package main

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/planbiir/ftracker/internal/config"
	"github.com/planbiir/ftracker/internal/metrics"
	"github.com/planbiir/ftracker/internal/report"
	"github.com/planbiir/ftracker/internal/tracker"
)

// app carries state shared by every command of one invocation
type app struct {
	v          *viper.Viper
	configPath string
	out        io.Writer
	errOut     io.Writer

	cfg    *config.Config
	logger zerolog.Logger
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{v: config.New(), out: out, errOut: errOut}

	rootCmd := &cobra.Command{
		Use:   "ftracker",
		Short: "ftracker - workout summaries from fitness tracker sensor packages",
		Long: `ftracker computes distance, mean speed and spent calories for running,
sports walking and swimming workouts. Without a subcommand it summarizes the
built-in sample packages, one line per workout.`,
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		Args:              cobra.NoArgs,
		PersistentPreRunE: a.load,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(tracker.SamplePackages())
		},
	}

	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "Path to an optional configuration file")
	flags.String("format", "text", "Output format: text or json")
	flags.String("log-level", "warn", "Log level: debug, info, warn or error")
	flags.String("metrics-file", "", "Write Prometheus metrics in textfile format to this path")

	a.v.BindPFlag("output.format", flags.Lookup("format"))
	a.v.BindPFlag("log.level", flags.Lookup("log-level"))
	a.v.BindPFlag("metrics.textfile", flags.Lookup("metrics-file"))

	rootCmd.AddCommand(newCalcCmd(a))
	return rootCmd
}

func (a *app) load(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.v, a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = setupLogger(cfg.Log, a.errOut)

	a.logger.Debug().
		Str("version", version).
		Str("config", a.configPath).
		Str("output", cfg.Output.Format).
		Msg("Configuration loaded")
	return nil
}

// run summarizes pkgs and exports metrics if requested
func (a *app) run(pkgs []tracker.Package) error {
	format, err := report.ParseFormat(a.cfg.Output.Format)
	if err != nil {
		return err
	}

	rec := metrics.NewRecorder()
	t := tracker.New(tracker.Config{
		Out:     a.out,
		Format:  format,
		Logger:  a.logger,
		Metrics: rec,
	})

	runErr := t.Run(pkgs)

	if path := a.cfg.Metrics.Textfile; path != "" {
		if err := rec.WriteTextfile(path); err != nil {
			a.logger.Error().Err(err).Str("path", path).Msg("Failed to export metrics")
			if runErr == nil {
				return err
			}
		} else {
			a.logger.Info().Str("path", path).Msg("Metrics exported")
		}
	}

	if runErr != nil {
		return fmt.Errorf("workout batch failed: %w", runErr)
	}
	return nil
}

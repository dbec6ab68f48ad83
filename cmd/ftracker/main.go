package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/rs/zerolog"

	"github.com/planbiir/ftracker/internal/config"
)

var version = "dev"

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		red := color.New(color.FgRed, color.Bold)
		red.Fprint(os.Stderr, "✗ ")
		fmt.Fprintf(os.Stderr, "ftracker: %v\n", err)
		os.Exit(1)
	}
}

// setupLogger configures the logger based on configuration.
// Logs always go to w (stderr) so stdout only carries workout summaries.
func setupLogger(cfg config.LogConfig, w io.Writer) zerolog.Logger {
	level := zerolog.WarnLevel
	switch cfg.Level {
	case "debug":
		level = zerolog.DebugLevel
	case "info":
		level = zerolog.InfoLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	if cfg.Format == "json" {
		return zerolog.New(w).Level(level).With().Timestamp().Logger()
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).Level(level).With().Timestamp().Logger()
}

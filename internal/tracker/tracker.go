// Package tracker runs batches of sensor packages through the training
// formulas and writes one summary per workout.
package tracker

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/planbiir/ftracker/internal/metrics"
	"github.com/planbiir/ftracker/internal/report"
	"github.com/planbiir/ftracker/internal/training"
)

// Package is one raw sensor reading: an activity code and its positional values
type Package struct {
	Code string
	Data []float64
}

// SamplePackages are the workouts printed by a bare invocation
func SamplePackages() []Package {
	return []Package{
		{Code: "SWM", Data: []float64{720, 1, 80, 25, 40}},
		{Code: "RUN", Data: []float64{15000, 1, 75}},
		{Code: "WLK", Data: []float64{9000, 1, 75, 180}},
	}
}

// Config wires the tracker to its collaborators
type Config struct {
	Out     io.Writer
	Format  report.Format
	Logger  zerolog.Logger
	Metrics *metrics.Recorder // optional
	NewID   func() string     // defaults to uuid.NewString
}

// Tracker summarizes workouts in input order
type Tracker struct {
	out     io.Writer
	format  report.Format
	logger  zerolog.Logger
	metrics *metrics.Recorder
	newID   func() string
}

// New constructs a Tracker
func New(cfg Config) *Tracker {
	if cfg.Format == "" {
		cfg.Format = report.FormatText
	}
	if cfg.NewID == nil {
		cfg.NewID = uuid.NewString
	}
	return &Tracker{
		out:     cfg.Out,
		format:  cfg.Format,
		logger:  cfg.Logger.With().Str("component", "tracker").Logger(),
		metrics: cfg.Metrics,
		newID:   cfg.NewID,
	}
}

// Process summarizes a single package and writes its message
func (t *Tracker) Process(pkg Package) (report.Message, error) {
	workout, err := training.Read(pkg.Code, pkg.Data)
	if err != nil {
		return report.Message{}, t.fail(err)
	}

	summary, err := training.Summarize(workout)
	if err != nil {
		return report.Message{}, t.fail(err)
	}

	msg := report.NewMessage(t.newID(), summary)
	t.logger.Debug().
		Str("workout_id", msg.ID).
		Str("code", pkg.Code).
		Str("activity", summary.Name).
		Float64("calories", summary.Calories).
		Msg("Workout summarized")

	if t.metrics != nil {
		t.metrics.ObserveSummary(summary)
	}

	if err := report.Encode(t.out, t.format, msg); err != nil {
		return report.Message{}, fmt.Errorf("failed to write summary: %w", err)
	}
	return msg, nil
}

// Run processes packages in order and stops at the first failure
func (t *Tracker) Run(pkgs []Package) error {
	for i, pkg := range pkgs {
		if _, err := t.Process(pkg); err != nil {
			t.logger.Error().Err(err).Int("index", i).Str("code", pkg.Code).Msg("Workout failed")
			return fmt.Errorf("package %d (%s): %w", i, pkg.Code, err)
		}
	}

	t.logger.Info().Int("workouts", len(pkgs)).Msg("Batch completed")
	return nil
}

func (t *Tracker) fail(err error) error {
	if t.metrics != nil {
		t.metrics.ObserveError(err)
	}
	return err
}

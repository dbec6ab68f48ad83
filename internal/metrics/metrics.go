// Package metrics collects workout counters for a batch run and can export
// them in the node exporter textfile format.
package metrics

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/planbiir/ftracker/internal/training"
)

// Recorder owns a private registry so repeated runs and tests do not collide
type Recorder struct {
	registry *prometheus.Registry

	WorkoutsTotal   *prometheus.CounterVec
	ErrorsTotal     *prometheus.CounterVec
	CaloriesBurned  *prometheus.HistogramVec
	DistanceKmTotal *prometheus.CounterVec
}

// NewRecorder registers every collector on a fresh registry
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		WorkoutsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ftracker_workouts_total",
				Help: "Total number of workouts summarized",
			},
			[]string{"activity"},
		),
		ErrorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ftracker_workout_errors_total",
				Help: "Workouts that failed to be summarized",
			},
			[]string{"reason"},
		),
		CaloriesBurned: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ftracker_calories_burned",
				Help:    "Calories burned per workout",
				Buckets: []float64{50, 100, 250, 500, 750, 1000, 1500, 2000},
			},
			[]string{"activity"},
		),
		DistanceKmTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ftracker_distance_km_total",
				Help: "Total distance covered in kilometers",
			},
			[]string{"activity"},
		),
	}

	r.registry.MustRegister(r.WorkoutsTotal, r.ErrorsTotal, r.CaloriesBurned, r.DistanceKmTotal)
	return r
}

// Registry exposes the underlying registry
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// ObserveSummary records a successfully summarized workout
func (r *Recorder) ObserveSummary(s training.Summary) {
	r.WorkoutsTotal.WithLabelValues(s.Name).Inc()
	r.CaloriesBurned.WithLabelValues(s.Name).Observe(s.Calories)
	if s.Distance > 0 {
		r.DistanceKmTotal.WithLabelValues(s.Name).Add(s.Distance)
	}
}

// ObserveError records a failed workout under a bounded reason label
func (r *Recorder) ObserveError(err error) {
	r.ErrorsTotal.WithLabelValues(Reason(err)).Inc()
}

// Reason maps an error onto a low-cardinality label value
func Reason(err error) string {
	switch {
	case errors.Is(err, training.ErrUnknownActivityCode):
		return "unknown_code"
	case errors.Is(err, training.ErrInvalidArgumentCount):
		return "invalid_argument_count"
	case errors.Is(err, training.ErrInvalidArgument):
		return "invalid_argument"
	case errors.Is(err, training.ErrZeroDuration):
		return "zero_duration"
	default:
		return "other"
	}
}

// WriteTextfile dumps the registry for the node exporter textfile collector
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("failed to write metrics textfile: %w", err)
	}
	return nil
}

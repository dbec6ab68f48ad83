package tracker

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planbiir/ftracker/internal/metrics"
	"github.com/planbiir/ftracker/internal/report"
	"github.com/planbiir/ftracker/internal/training"
)

func newTestTracker(out *bytes.Buffer, format report.Format, rec *metrics.Recorder) *Tracker {
	return New(Config{
		Out:     out,
		Format:  format,
		Logger:  zerolog.Nop(),
		Metrics: rec,
	})
}

func TestRunSamplePackages(t *testing.T) {
	var out bytes.Buffer
	tr := newTestTracker(&out, report.FormatText, nil)

	require.NoError(t, tr.Run(SamplePackages()))

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Тип тренировки: Swimming; Длительность: 1.000 ч.; Дистанция: 0.994 км; "+
		"Ср. скорость: 1.000 км/ч; Потрачено ккал: 336.000.", lines[0])
	assert.Equal(t, "Тип тренировки: Running; Длительность: 1.000 ч.; Дистанция: 9.750 км; "+
		"Ср. скорость: 9.750 км/ч; Потрачено ккал: 797.805.", lines[1])
	assert.Equal(t, "Тип тренировки: SportsWalking; Длительность: 1.000 ч.; Дистанция: 5.850 км; "+
		"Ср. скорость: 5.850 км/ч; Потрачено ккал: 349.252.", lines[2])
}

func TestRunStopsAtFirstError(t *testing.T) {
	var out bytes.Buffer
	rec := metrics.NewRecorder()
	tr := newTestTracker(&out, report.FormatText, rec)

	pkgs := []Package{
		{Code: "RUN", Data: []float64{15000, 1, 75}},
		{Code: "XYZ", Data: []float64{1, 2, 3}},
		{Code: "WLK", Data: []float64{9000, 1, 75, 180}},
	}

	err := tr.Run(pkgs)
	require.ErrorIs(t, err, training.ErrUnknownActivityCode)
	assert.Contains(t, err.Error(), "package 1 (XYZ)")

	assert.Equal(t, 1, strings.Count(out.String(), "\n"), "only the first workout is printed")
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.WorkoutsTotal.WithLabelValues("Running")))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.ErrorsTotal.WithLabelValues("unknown_code")))
}

func TestProcessErrors(t *testing.T) {
	tests := []struct {
		name string
		pkg  Package
		want error
	}{
		{"zero duration", Package{Code: "RUN", Data: []float64{15000, 0, 75}}, training.ErrZeroDuration},
		{"arity", Package{Code: "SWM", Data: []float64{720, 1, 80}}, training.ErrInvalidArgumentCount},
		{"unknown", Package{Code: "BIKE", Data: nil}, training.ErrUnknownActivityCode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			_, err := newTestTracker(&out, report.FormatText, nil).Process(tt.pkg)
			require.ErrorIs(t, err, tt.want)
			assert.Empty(t, out.String())
		})
	}
}

func TestProcessJSON(t *testing.T) {
	var out bytes.Buffer
	tr := newTestTracker(&out, report.FormatJSON, nil)

	msg, err := tr.Process(Package{Code: "SWM", Data: []float64{720, 1, 80, 25, 40}})
	require.NoError(t, err)

	_, err = uuid.Parse(msg.ID)
	require.NoError(t, err)

	var decoded report.Message
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	assert.Equal(t, msg, decoded)
	assert.Equal(t, "Swimming", decoded.TrainingType)
}

func TestProcessCustomID(t *testing.T) {
	var out bytes.Buffer
	tr := New(Config{Out: &out, Logger: zerolog.Nop(), NewID: func() string { return "fixed" }})

	msg, err := tr.Process(Package{Code: "RUN", Data: []float64{15000, 1, 75}})
	require.NoError(t, err)
	assert.Equal(t, "fixed", msg.ID)
	assert.InDelta(t, 797.805, msg.Calories, 1e-9)
}

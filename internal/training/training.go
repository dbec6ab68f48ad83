// Package training computes distance, mean speed and spent calories for
// running, sports walking and swimming workouts.
package training

import "math"

// DistanceKm converts an action count into kilometers for the given step length in meters
func DistanceKm(action int, stepLength float64) float64 {
	return float64(action) * stepLength / mInKm
}

// MeanSpeedKmh returns distance over duration, failing on a zero duration
func MeanSpeedKmh(distanceKm, durationH float64) (float64, error) {
	if durationH == 0 {
		return 0, ErrZeroDuration
	}
	return distanceKm / durationH, nil
}

// Info returns the shared inputs
func (r Record) Info() Record {
	return r
}

// Distance uses the walking/running step length
func (r Record) Distance() float64 {
	return DistanceKm(r.Action, lenStep)
}

// MeanSpeed is the default speed over the step-based distance
func (r Record) MeanSpeed() (float64, error) {
	return MeanSpeedKmh(r.Distance(), r.Duration)
}

// Running is a running workout
type Running struct {
	Record
}

// NewRunning constructs a running workout
func NewRunning(action int, duration, weight float64) Running {
	return Running{Record: Record{Name: "Running", Action: action, Duration: duration, Weight: weight}}
}

func (Running) Kind() Kind { return KindRunning }

// SpentCalories applies the running formula
func (r Running) SpentCalories() (float64, error) {
	speed, err := r.MeanSpeed()
	if err != nil {
		return 0, err
	}
	return (runningCaloriesMeanSpeedMultiplier*speed + runningCaloriesMeanSpeedShift) *
		r.Weight / mInKm * (r.Duration * minInH), nil
}

// Walking is a sports walking workout
type Walking struct {
	Record
	Height float64 // cm
}

// NewWalking constructs a sports walking workout
func NewWalking(action int, duration, weight, height float64) Walking {
	return Walking{
		Record: Record{Name: "SportsWalking", Action: action, Duration: duration, Weight: weight},
		Height: height,
	}
}

func (Walking) Kind() Kind { return KindWalking }

// SpentCalories applies the walking formula, which also depends on height
func (w Walking) SpentCalories() (float64, error) {
	speed, err := w.MeanSpeed()
	if err != nil {
		return 0, err
	}
	speedMs := speed * kmhInMsec
	heightM := w.Height / cmInM
	return (walkingCaloriesWeightMultiplier*w.Weight +
		(math.Pow(speedMs, 2)/heightM)*walkingSpeedHeightMultiplier*w.Weight) *
		(w.Duration * minInH), nil
}

// Swimming is a pool swimming workout
type Swimming struct {
	Record
	PoolLength float64 // meters
	PoolCount  int     // lengths swum
}

// NewSwimming constructs a swimming workout
func NewSwimming(action int, duration, weight, poolLength float64, poolCount int) Swimming {
	return Swimming{
		Record:     Record{Name: "Swimming", Action: action, Duration: duration, Weight: weight},
		PoolLength: poolLength,
		PoolCount:  poolCount,
	}
}

func (Swimming) Kind() Kind { return KindSwimming }

// Distance uses the stroke length instead of the step length
func (s Swimming) Distance() float64 {
	return DistanceKm(s.Action, swimmingLenStep)
}

// MeanSpeed is derived from pool geometry, not from strokes
func (s Swimming) MeanSpeed() (float64, error) {
	return MeanSpeedKmh(s.PoolLength*float64(s.PoolCount)/mInKm, s.Duration)
}

// SpentCalories applies the swimming formula
func (s Swimming) SpentCalories() (float64, error) {
	speed, err := s.MeanSpeed()
	if err != nil {
		return 0, err
	}
	return (speed + swimmingCaloriesMeanSpeedShift) * swimmingCaloriesWeightMultiplier *
		s.Weight * s.Duration, nil
}

// Summarize computes every derived value of a workout
func Summarize(t Training) (Summary, error) {
	info := t.Info()

	speed, err := t.MeanSpeed()
	if err != nil {
		return Summary{}, err
	}
	calories, err := t.SpentCalories()
	if err != nil {
		return Summary{}, err
	}

	return Summary{
		Name:     info.Name,
		Duration: info.Duration,
		Distance: t.Distance(),
		Speed:    speed,
		Calories: calories,
	}, nil
}

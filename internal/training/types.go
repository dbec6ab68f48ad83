package training

import (
	"errors"
	"fmt"
)

// Unit conversions and formula constants
const (
	lenStep   = 0.65  // meters per step
	mInKm     = 1000  // meters in a kilometer
	minInH    = 60    // minutes in an hour
	kmhInMsec = 0.278 // km/h to m/s
	cmInM     = 100   // centimeters in a meter

	runningCaloriesMeanSpeedMultiplier = 18
	runningCaloriesMeanSpeedShift      = 1.79

	walkingCaloriesWeightMultiplier = 0.035
	walkingSpeedHeightMultiplier    = 0.029

	swimmingLenStep                  = 1.38 // meters per stroke
	swimmingCaloriesMeanSpeedShift   = 1.1
	swimmingCaloriesWeightMultiplier = 2
)

var (
	// ErrUnknownActivityCode is returned by Read for codes outside SWM, RUN and WLK.
	ErrUnknownActivityCode = errors.New("unknown activity code")
	// ErrInvalidArgumentCount is returned when the positional data does not match the activity arity.
	ErrInvalidArgumentCount = errors.New("invalid argument count")
	// ErrZeroDuration is returned when a mean speed is requested for a zero-length workout.
	ErrZeroDuration = errors.New("division by zero: workout duration is zero")
	// ErrInvalidArgument is returned when a positional argument is not a number.
	ErrInvalidArgument = errors.New("invalid argument")
)

// Kind enumerates the supported activity types
type Kind int

const (
	KindSwimming Kind = iota
	KindRunning
	KindWalking

	kindCount
)

// Kinds returns every supported activity kind in dispatch order
func Kinds() []Kind {
	kinds := make([]Kind, 0, kindCount)
	for k := Kind(0); k < kindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// Code returns the sensor package code for the kind
func (k Kind) Code() string {
	switch k {
	case KindSwimming:
		return "SWM"
	case KindRunning:
		return "RUN"
	case KindWalking:
		return "WLK"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Arity is the number of positional values a sensor package of this kind carries
func (k Kind) Arity() int {
	switch k {
	case KindSwimming:
		return 5
	case KindRunning:
		return 3
	case KindWalking:
		return 4
	}
	return 0
}

func (k Kind) String() string {
	return k.Code()
}

// ParseKind maps a sensor package code to its Kind
func ParseKind(code string) (Kind, error) {
	for _, k := range Kinds() {
		if k.Code() == code {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownActivityCode, code)
}

// Record holds the raw sensor inputs shared by every activity
type Record struct {
	Name     string  // display name, set by the variant constructor
	Action   int     // steps or strokes
	Duration float64 // hours
	Weight   float64 // kg
}

// Training is implemented by every activity variant
type Training interface {
	Kind() Kind
	// Info returns the shared inputs of the workout
	Info() Record
	Distance() float64
	MeanSpeed() (float64, error)
	SpentCalories() (float64, error)
}

// Summary holds the derived values of one workout
type Summary struct {
	Name     string
	Duration float64
	Distance float64
	Speed    float64
	Calories float64
}

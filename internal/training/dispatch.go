package training

import (
	"fmt"
	"strconv"
)

var (
	_ Training = Running{}
	_ Training = Walking{}
	_ Training = Swimming{}
)

// builder constructs a workout from positional sensor data of the right arity
type builder func(data []float64) Training

// builders is indexed by Kind; a missing entry is caught by TestEveryKindIsDispatchable
var builders = [kindCount]builder{
	KindSwimming: func(d []float64) Training {
		return NewSwimming(int(d[0]), d[1], d[2], d[3], int(d[4]))
	},
	KindRunning: func(d []float64) Training {
		return NewRunning(int(d[0]), d[1], d[2])
	},
	KindWalking: func(d []float64) Training {
		return NewWalking(int(d[0]), d[1], d[2], d[3])
	},
}

// Read builds the workout for a sensor package code and its positional data
func Read(code string, data []float64) (Training, error) {
	kind, err := ParseKind(code)
	if err != nil {
		return nil, err
	}

	if len(data) != kind.Arity() {
		return nil, fmt.Errorf("%w: %s expects %d values, got %d",
			ErrInvalidArgumentCount, code, kind.Arity(), len(data))
	}

	build := builders[kind]
	if build == nil {
		return nil, fmt.Errorf("%w: %q has no constructor", ErrUnknownActivityCode, code)
	}
	return build(data), nil
}

// ParseArgs converts command line arguments into positional sensor data
func ParseArgs(args []string) ([]float64, error) {
	data := make([]float64, len(args))
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: position %d: %q is not a number", ErrInvalidArgument, i, arg)
		}
		data[i] = v
	}
	return data, nil
}

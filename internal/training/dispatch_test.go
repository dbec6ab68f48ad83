package training

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	tests := []struct {
		code string
		data []float64
		want Training
	}{
		{"SWM", []float64{720, 1, 80, 25, 40}, NewSwimming(720, 1, 80, 25, 40)},
		{"RUN", []float64{15000, 1, 75}, NewRunning(15000, 1, 75)},
		{"WLK", []float64{9000, 1, 75, 180}, NewWalking(9000, 1, 75, 180)},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			got, err := Read(tt.code, tt.data)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.code, got.Kind().Code())
		})
	}
}

func TestReadUnknownCode(t *testing.T) {
	for _, code := range []string{"XYZ", "", "run", "SWIM"} {
		_, err := Read(code, []float64{1, 1, 1})
		require.ErrorIs(t, err, ErrUnknownActivityCode, "code %q", code)
	}
}

func TestReadInvalidArgumentCount(t *testing.T) {
	tests := []struct {
		code string
		data []float64
	}{
		{"SWM", []float64{720, 1, 80, 25}},
		{"RUN", []float64{15000, 1}},
		{"RUN", []float64{15000, 1, 75, 180}},
		{"WLK", nil},
	}

	for _, tt := range tests {
		_, err := Read(tt.code, tt.data)
		require.ErrorIs(t, err, ErrInvalidArgumentCount, "%s %v", tt.code, tt.data)
		assert.NotErrorIs(t, err, ErrUnknownActivityCode)
	}
}

func TestEveryKindIsDispatchable(t *testing.T) {
	for _, kind := range Kinds() {
		require.NotNil(t, builders[kind], "kind %s has no builder", kind)

		parsed, err := ParseKind(kind.Code())
		require.NoError(t, err)
		assert.Equal(t, kind, parsed)

		data := make([]float64, kind.Arity())
		for i := range data {
			data[i] = 1
		}
		got, err := Read(kind.Code(), data)
		require.NoError(t, err)
		assert.Equal(t, kind, got.Kind())
		assert.NotEmpty(t, got.Info().Name)
	}
}

func TestParseArgs(t *testing.T) {
	data, err := ParseArgs([]string{"720", "1", "80.5", "25", "40"})
	require.NoError(t, err)
	assert.Equal(t, []float64{720, 1, 80.5, 25, 40}, data)

	_, err = ParseArgs([]string{"720", "one"})
	require.ErrorIs(t, err, ErrInvalidArgument)
}

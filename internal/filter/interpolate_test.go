package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterpolate_LinearSignalStaysLinear(t *testing.T) {
	time := []float64{0, 1, 2, 3, 4}
	signal := []float64{0, 1, 2, 3, 4} // a natural cubic spline through a line is the line itself

	newTime, newSignal := Interpolate(time, signal, 4)
	require.True(t, len(newTime) > len(time))
	for i, tv := range newTime {
		assert.InDelta(t, tv, newSignal[i], 1e-6)
	}
}

func TestInterpolate_NoopBelowFactorTwo(t *testing.T) {
	time := []float64{0, 1, 2}
	signal := []float64{5, 6, 7}

	newTime, newSignal := Interpolate(time, signal, 1)
	assert.Equal(t, time, newTime)
	assert.Equal(t, signal, newSignal)
}

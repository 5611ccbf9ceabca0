package baseline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCorrect_PolynomialDegree1_S4(t *testing.T) {
	time := []float64{0, 1, 2, 3}
	signal := []float64{1, 2, 3, 4}

	out, err := Correct(time, signal, Params{Method: Polynomial, Degree: 1, Selection: NoSelection})
	require.NoError(t, err)
	for _, v := range out {
		assert.InDelta(t, 0, v, 1e-9)
	}
}

func TestCorrect_Offset(t *testing.T) {
	time := []float64{0, 1, 2, 3}
	signal := []float64{2, 4, 6, 8}

	out, err := Correct(time, signal, Params{Method: Offset, Selection: NoSelection})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{-3, -1, 1, 3}, out, 1e-9)
}

func TestCorrect_InsufficientSamples(t *testing.T) {
	time := []float64{0, 1}
	signal := []float64{1, 2}

	_, err := Correct(time, signal, Params{
		Method:    Polynomial,
		Degree:    5,
		Selection: NoSelection,
	})
	assert.ErrorIs(t, err, ErrInsufficientSamples)
}

package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestGaussian_PreservesConstantMean(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(20, 200).Draw(t, "n")
		value := rapid.Float64Range(-100, 100).Draw(t, "value")
		signal := make([]float64, n)
		for i := range signal {
			signal[i] = value
		}

		out := Gaussian(signal, 10000, 500)
		for _, v := range out {
			assert.InDelta(t, value, v, 1e-6)
		}
	})
}

func TestGaussianKernel_Symmetric(t *testing.T) {
	kernel := GaussianKernel(3.0)
	n := len(kernel)
	for i := 0; i < n/2; i++ {
		assert.InDelta(t, kernel[i], kernel[n-1-i], 1e-12)
	}
}

func TestGaussianKernel_UnitSum(t *testing.T) {
	kernel := GaussianKernel(2.5)
	sum := 0.0
	for _, v := range kernel {
		sum += v
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

// Package filter implements the Gaussian (gaussian.go) and Chung-Kennedy
// (chungkennedy.go) smoothers of spec §4.4/§4.5, plus the cubic-spline
// interpolator of §4.6 (interpolate.go).
package filter

import "math"

// GaussianSigma returns the kernel standard deviation in samples for a
// zero-phase Gaussian low-pass at cutoff fc (Hz) sampled at samplingHz.
func GaussianSigma(samplingHz, fc float64) float64 {
	return samplingHz * math.Sqrt(math.Ln2) / (2 * math.Pi * fc)
}

// GaussianKernel builds a symmetric Gaussian kernel of half-width ceil(4*sigma),
// normalised to unit sum.
func GaussianKernel(sigma float64) []float64 {
	halfWidth := int(math.Ceil(4 * sigma))
	size := 2*halfWidth + 1
	kernel := make([]float64, size)
	sum := 0.0
	for j := 0; j < size; j++ {
		x := float64(j - halfWidth)
		v := math.Exp(-0.5 * (x * x) / (sigma * sigma))
		kernel[j] = v
		sum += v
	}
	for j := range kernel {
		kernel[j] /= sum
	}
	return kernel
}

// Gaussian applies a zero-phase Gaussian low-pass at cutoff fc (Hz) to
// signal sampled at samplingHz, using reflective padding at both ends so the
// output has the same length as the input.
func Gaussian(signal []float64, samplingHz, fc float64) []float64 {
	sigma := GaussianSigma(samplingHz, fc)
	kernel := GaussianKernel(sigma)
	halfWidth := (len(kernel) - 1) / 2
	return convolveReflective(signal, kernel, halfWidth)
}

// convolveReflective convolves signal with kernel (odd length, centered at
// halfWidth), reflecting the signal past either edge rather than zero-padding.
func convolveReflective(signal, kernel []float64, halfWidth int) []float64 {
	n := len(signal)
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		acc := 0.0
		for j, w := range kernel {
			srcIdx := i + (j - halfWidth)
			acc += w * signal[reflectIndex(srcIdx, n)]
		}
		out[i] = acc
	}
	return out
}

// reflectIndex maps an out-of-range index back into [0, n) by reflection
// about the nearest edge, e.g. reflectIndex(-1, n) == 0, reflectIndex(-2, n) == 1.
func reflectIndex(i, n int) int {
	if n == 1 {
		return 0
	}
	for i < 0 || i >= n {
		if i < 0 {
			i = -i - 1
		}
		if i >= n {
			i = 2*n - i - 1
		}
	}
	return i
}

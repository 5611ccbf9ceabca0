// Package baseline implements the polynomial/offset baseline corrector of
// spec §4.3.
package baseline

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/ascam-project/ascam-core/internal/selection"
)

// ErrInsufficientSamples is returned when a polynomial fit has fewer samples
// than degree+1 after selection.
var ErrInsufficientSamples = errors.New("baseline: insufficient samples for polynomial fit")

// Method selects whether the fit subtracts a polynomial or a constant offset.
type Method int

const (
	Offset Method = iota
	Polynomial
)

// SelectionMode chooses how the fit region is restricted before fitting; the
// correction itself is always subtracted from the full trace.
type SelectionMode int

const (
	NoSelection SelectionMode = iota
	ByIntervals
	ByPiezo
)

// Params bundles the corrector's configuration for one episode.
type Params struct {
	Method     Method
	Degree     int
	Selection  SelectionMode
	Intervals  []selection.Interval
	Piezo      []float64
	Active     bool
	Deviation  float64
	SamplingHz float64
}

// Correct fits the configured baseline on the (possibly restricted) samples
// and subtracts it from the full trace, returning a new slice; time and
// current are never mutated.
func Correct(time, current []float64, p Params) ([]float64, error) {
	t, s := time, current
	var err error

	switch p.Selection {
	case ByIntervals:
		t, s, err = selection.Intervals(time, current, p.Intervals, p.SamplingHz)
	case ByPiezo:
		t, s, err = selection.Piezo(time, p.Piezo, current, p.Active, p.Deviation)
	}
	if err != nil {
		return nil, fmt.Errorf("baseline: selecting fit region: %w", err)
	}

	out := make([]float64, len(current))

	if p.Method == Offset {
		mean := meanOf(s)
		for i, v := range current {
			out[i] = v - mean
		}
		return out, nil
	}

	if len(s) < p.Degree+1 {
		return nil, ErrInsufficientSamples
	}

	coeffs, err := polyfit(t, s, p.Degree)
	if err != nil {
		return nil, fmt.Errorf("baseline: fitting polynomial: %w", err)
	}
	for i, tv := range time {
		out[i] = current[i] - evalPoly(coeffs, tv)
	}
	return out, nil
}

func meanOf(v []float64) float64 {
	if len(v) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range v {
		sum += x
	}
	return sum / float64(len(v))
}

// polyfit returns coefficients c[0..degree] such that
// evalPoly(c, t) = c[0] + c[1]*t + ... + c[degree]*t^degree
// minimizes sum of squared residuals against (t, s), via gonum's least
// squares Dense.Solve on the Vandermonde matrix.
func polyfit(t, s []float64, degree int) ([]float64, error) {
	n := len(t)
	a := mat.NewDense(n, degree+1, nil)
	for i := 0; i < n; i++ {
		p := 1.0
		for j := 0; j <= degree; j++ {
			a.Set(i, j, p)
			p *= t[i]
		}
	}
	b := mat.NewDense(n, 1, append([]float64(nil), s...))

	var x mat.Dense
	if err := x.Solve(a, b); err != nil {
		return nil, err
	}

	coeffs := make([]float64, degree+1)
	for j := 0; j <= degree; j++ {
		coeffs[j] = x.At(j, 0)
	}
	return coeffs, nil
}

func evalPoly(coeffs []float64, t float64) float64 {
	result := 0.0
	p := 1.0
	for _, c := range coeffs {
		result += c * p
		p *= t
	}
	return result
}

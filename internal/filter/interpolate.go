package filter

import "gonum.org/v1/gonum/mat"

// Interpolate resamples (time, signal) onto a grid of spacing delta/factor
// via a natural cubic spline, per spec §4.6. When factor <= 1, or fewer
// than 3 samples are given, it returns unchanged copies of time and signal.
func Interpolate(time, signal []float64, factor int) (newTime, newSignal []float64) {
	n := len(time)
	if n < 3 || factor <= 1 {
		return append([]float64(nil), time...), append([]float64(nil), signal...)
	}

	c := naturalCubicSpline(time, signal)

	delta := time[1] - time[0]
	step := delta / float64(factor)

	for t := time[0]; t <= time[n-1]+step/2; t += step {
		newTime = append(newTime, t)
	}
	newSignal = make([]float64, len(newTime))
	for i, t := range newTime {
		newSignal[i] = c.eval(t)
	}
	return newTime, newSignal
}

// cubicSpline is a natural cubic spline (zero second derivative at both
// ends) over monotonically increasing knots x with values y.
type cubicSpline struct {
	x, y, m []float64 // m holds the second derivatives at each knot
}

// naturalCubicSpline solves the standard tridiagonal system for the second
// derivatives of a natural cubic spline through (x, y), via gonum's Dense
// solve rather than a hand-rolled Thomas algorithm.
func naturalCubicSpline(x, y []float64) *cubicSpline {
	n := len(x)
	h := make([]float64, n-1)
	for i := 0; i < n-1; i++ {
		h[i] = x[i+1] - x[i]
	}

	// Interior equations for m[1..n-2]; m[0] = m[n-1] = 0 (natural bc).
	interior := n - 2
	m := make([]float64, n)
	if interior > 0 {
		a := mat.NewDense(interior, interior, nil)
		b := mat.NewDense(interior, 1, nil)
		for i := 0; i < interior; i++ {
			// Row corresponds to knot i+1.
			hPrev, hNext := h[i], h[i+1]
			a.Set(i, i, 2*(hPrev+hNext))
			if i > 0 {
				a.Set(i, i-1, hPrev)
			}
			if i < interior-1 {
				a.Set(i, i+1, hNext)
			}
			rhs := 6 * ((y[i+2]-y[i+1])/hNext - (y[i+1]-y[i])/hPrev)
			b.Set(i, 0, rhs)
		}
		var sol mat.Dense
		if err := sol.Solve(a, b); err == nil {
			for i := 0; i < interior; i++ {
				m[i+1] = sol.At(i, 0)
			}
		}
	}

	return &cubicSpline{x: x, y: y, m: m}
}

func (c *cubicSpline) eval(t float64) float64 {
	n := len(c.x)
	if t <= c.x[0] {
		return c.extrapolate(0, t)
	}
	if t >= c.x[n-1] {
		return c.extrapolate(n-2, t)
	}
	i := 0
	for i < n-2 && c.x[i+1] < t {
		i++
	}
	return c.segment(i, t)
}

func (c *cubicSpline) extrapolate(i int, t float64) float64 {
	if len(c.x) < 2 {
		return c.y[0]
	}
	return c.segment(i, t)
}

func (c *cubicSpline) segment(i int, t float64) float64 {
	h := c.x[i+1] - c.x[i]
	a := (c.x[i+1] - t) / h
	b := (t - c.x[i]) / h
	return a*c.y[i] + b*c.y[i+1] +
		((a*a*a-a)*c.m[i]+(b*b*b-b)*c.m[i+1])*(h*h)/6
}

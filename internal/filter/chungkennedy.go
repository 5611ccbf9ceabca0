package filter

import "math"

// ChungKennedyParams bundles the filter bank's configuration, per spec §4.5.
type ChungKennedyParams struct {
	WindowLengths  []int
	WeightExponent float64
	WeightWindow   int
	// PriorForward/PriorBackward are optional per-window weight overrides;
	// when non-nil, PriorForward[k] (resp. PriorBackward[k]) must have the
	// same length as the signal and replaces the corresponding raw weight
	// pointwise before normalisation.
	PriorForward  [][]float64
	PriorBackward [][]float64
}

const largeWeight = 1e30

// ChungKennedy applies the adaptive forward/backward filter bank smoother of
// spec §4.5 to signal.
func ChungKennedy(signal []float64, p ChungKennedyParams) []float64 {
	n := len(signal)
	k := len(p.WindowLengths)
	if n == 0 || k == 0 {
		return append([]float64(nil), signal...)
	}

	forwardMeans := make([][]float64, k)
	backwardMeans := make([][]float64, k)
	for ki, l := range p.WindowLengths {
		forwardMeans[ki] = runningMean(signal, l, true)
		backwardMeans[ki] = runningMean(signal, l, false)
	}

	ef := make([][]float64, k)
	eb := make([][]float64, k)
	for ki := range p.WindowLengths {
		rawEf := make([]float64, n)
		rawEb := make([]float64, n)
		for i := 0; i < n; i++ {
			next := signal[clampi(i+1, n)]
			prev := signal[clampi(i-1, n)]
			df := forwardMeans[ki][i] - next
			db := backwardMeans[ki][i] - prev
			rawEf[i] = df * df
			rawEb[i] = db * db
		}
		ef[ki] = boxSmooth(rawEf, p.WeightWindow)
		eb[ki] = boxSmooth(rawEb, p.WeightWindow)
	}

	wf := make([][]float64, k)
	wb := make([][]float64, k)
	for ki := range p.WindowLengths {
		wf[ki] = make([]float64, n)
		wb[ki] = make([]float64, n)
		for i := 0; i < n; i++ {
			wf[ki][i] = invPow(ef[ki][i], p.WeightExponent)
			wb[ki][i] = invPow(eb[ki][i], p.WeightExponent)
		}
		if ki < len(p.PriorForward) && p.PriorForward[ki] != nil {
			copy(wf[ki], p.PriorForward[ki])
		}
		if ki < len(p.PriorBackward) && p.PriorBackward[ki] != nil {
			copy(wb[ki], p.PriorBackward[ki])
		}
	}

	out := make([]float64, n)
	for i := 0; i < n; i++ {
		total := 0.0
		for ki := range p.WindowLengths {
			total += wf[ki][i] + wb[ki][i]
		}
		if total == 0 {
			out[i] = signal[i]
			continue
		}
		acc := 0.0
		for ki := range p.WindowLengths {
			acc += (wf[ki][i] / total) * forwardMeans[ki][i]
			acc += (wb[ki][i] / total) * backwardMeans[ki][i]
		}
		out[i] = acc
	}
	return out
}

func invPow(e, p float64) float64 {
	if e == 0 {
		return largeWeight
	}
	v := math.Pow(e, -p)
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return largeWeight
	}
	return v
}

func clampi(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// runningMean computes, for each i, the mean of the L samples ending at i
// (forward=true: x[i-L+1..i]) or starting at i (forward=false: x[i..i+L-1]),
// clamped at the boundaries.
func runningMean(signal []float64, l int, forward bool) []float64 {
	n := len(signal)
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		var lo, hi int
		if forward {
			lo, hi = i-l+1, i
		} else {
			lo, hi = i, i+l-1
		}
		if lo < 0 {
			lo = 0
		}
		if hi > n-1 {
			hi = n - 1
		}
		sum := 0.0
		count := 0
		for j := lo; j <= hi; j++ {
			sum += signal[j]
			count++
		}
		out[i] = sum / float64(count)
	}
	return out
}

// boxSmooth low-pass-smooths v with a uniform window of length m, clamped at
// the boundaries.
func boxSmooth(v []float64, m int) []float64 {
	if m <= 1 {
		return append([]float64(nil), v...)
	}
	n := len(v)
	out := make([]float64, n)
	half := m / 2
	for i := 0; i < n; i++ {
		lo := i - half
		hi := i + (m - half - 1)
		if lo < 0 {
			lo = 0
		}
		if hi > n-1 {
			hi = n - 1
		}
		sum := 0.0
		count := 0
		for j := lo; j <= hi; j++ {
			sum += v[j]
			count++
		}
		out[i] = sum / float64(count)
	}
	return out
}

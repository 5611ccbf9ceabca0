package recording

import (
	"fmt"
	"math"

	"github.com/ascam-project/ascam-core/internal/selection"
)

// HistogramScope selects whether Histogram aggregates the current episode
// or the whole current series (spec §4.7).
type HistogramScope int

const (
	ScopeEpisode HistogramScope = iota
	ScopeSeries
)

// HistogramSelectionMode mirrors the §4.1 selection modes that Histogram
// and BaselineCorrection offer.
type HistogramSelectionMode int

const (
	HistNoSelection HistogramSelectionMode = iota
	HistByIntervals
	HistByPiezo
)

// HistogramParams bundles Histogram's configuration.
type HistogramParams struct {
	Scope     HistogramScope
	Bins      int
	Density   bool
	Selection HistogramSelectionMode
	Intervals []selection.Interval
	Active    bool
	Deviation float64
}

// Histogram aggregates current samples from either the current episode or
// the whole current series, under the same selection modes as §4.1, and
// returns bin heights, edges, centres, and a uniform bin width (spec §4.7).
func (r *Recording) Histogram(p HistogramParams) (heights []float64, edges []float64, centres []float64, width float64, err error) {
	var samples []float64

	switch p.Scope {
	case ScopeEpisode:
		samples, err = r.selectedSamples(r.CurrentEpisode(), p)
	case ScopeSeries:
		for _, ep := range r.CurrentSeries().Episodes {
			s, sErr := r.selectedSamples(ep, p)
			if sErr != nil {
				continue // an episode contributing nothing (e.g. empty piezo selection) is skipped, not fatal
			}
			samples = append(samples, s...)
		}
	}
	if err != nil {
		return nil, nil, nil, 0, err
	}
	if len(samples) == 0 {
		return nil, nil, nil, 0, selection.ErrEmptySelection
	}
	if p.Bins <= 0 {
		return nil, nil, nil, 0, fmt.Errorf("recording: histogram bins must be positive, got %d", p.Bins)
	}

	lo, hi := samples[0], samples[0]
	for _, v := range samples {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if hi == lo {
		hi = lo + 1
	}
	width = (hi - lo) / float64(p.Bins)

	heights = make([]float64, p.Bins)
	edges = make([]float64, p.Bins+1)
	centres = make([]float64, p.Bins)
	for i := 0; i <= p.Bins; i++ {
		edges[i] = lo + float64(i)*width
	}
	for i := 0; i < p.Bins; i++ {
		centres[i] = (edges[i] + edges[i+1]) / 2
	}

	for _, v := range samples {
		bin := int(math.Floor((v - lo) / width))
		if bin >= p.Bins {
			bin = p.Bins - 1
		}
		if bin < 0 {
			bin = 0
		}
		heights[bin]++
	}

	if p.Density {
		total := float64(len(samples)) * width
		for i := range heights {
			heights[i] /= total
		}
	}

	return heights, edges, centres, width, nil
}

func (r *Recording) selectedSamples(ep *Episode, p HistogramParams) ([]float64, error) {
	switch p.Selection {
	case HistByIntervals:
		_, s, err := selection.Intervals(ep.Time, ep.Current, p.Intervals, r.samplingHz)
		return s, err
	case HistByPiezo:
		_, s, err := selection.Piezo(ep.Time, ep.Piezo, ep.Current, p.Active, p.Deviation)
		return s, err
	default:
		return ep.Current, nil
	}
}

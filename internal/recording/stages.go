package recording

import (
	"fmt"

	"github.com/ascam-project/ascam-core/internal/baseline"
	"github.com/ascam-project/ascam-core/internal/filter"
	"github.com/ascam-project/ascam-core/internal/selection"
)

// BaselineParams configures BaselineCorrection per episode (spec §4.3);
// Intervals apply to every episode alike, while the piezo trace is read
// from each episode, since the fit region can differ per episode's own
// piezo trace.
type BaselineParams struct {
	Method    baseline.Method
	Degree    int
	Selection baseline.SelectionMode
	Intervals []selection.Interval
	Active    bool
	Deviation float64
}

// BaselineCorrection applies §4.3 to every episode of the current series,
// producing a new series under the "BC_" tag (spec §4.2 table).
func (r *Recording) BaselineCorrection(p BaselineParams) error {
	src := r.CurrentSeries()
	dst := src.DeepCopy()

	for _, ep := range dst.Episodes {
		bp := baseline.Params{
			Method:     p.Method,
			Degree:     p.Degree,
			Selection:  p.Selection,
			Intervals:  p.Intervals,
			Piezo:      ep.Piezo,
			Active:     p.Active,
			Deviation:  p.Deviation,
			SamplingHz: dst.SamplingHz,
		}
		corrected, err := baseline.Correct(ep.Time, ep.Current, bp)
		if err != nil {
			return fmt.Errorf("recording: baseline correction on episode %d: %w", ep.Index, err)
		}
		ep.Current = corrected
	}

	key := deriveLineageKey(r.currentKey, "BC_")
	r.storeSeries(key, dst)
	return nil
}

// GaussianFilter applies §4.4 to every episode of the current series,
// producing a new series under the "GFILTER{f}_" tag.
func (r *Recording) GaussianFilter(cutoffHz float64) {
	src := r.CurrentSeries()
	dst := src.DeepCopy()

	for _, ep := range dst.Episodes {
		ep.Current = filter.Gaussian(ep.Current, dst.SamplingHz, cutoffHz)
	}

	key := deriveLineageKey(r.currentKey, fmt.Sprintf("GFILTER%v_", cutoffHz))
	r.storeSeries(key, dst)
}

// ChungKennedyFilter applies §4.5 to every episode of the current series,
// producing a new series under the "CKFILTER_K{K}p{p}M{M}_" tag.
func (r *Recording) ChungKennedyFilter(p filter.ChungKennedyParams) {
	src := r.CurrentSeries()
	dst := src.DeepCopy()

	for _, ep := range dst.Episodes {
		ep.Current = filter.ChungKennedy(ep.Current, p)
	}

	key := deriveLineageKey(r.currentKey, fmt.Sprintf("CKFILTER_K%dp%vM%d_", len(p.WindowLengths), p.WeightExponent, p.WeightWindow))
	r.storeSeries(key, dst)
}

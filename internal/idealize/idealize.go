// Package idealize implements threshold-crossing idealization, resolution
// enforcement, event extraction, and first-activation detection (spec §4.6).
package idealize

import (
	"math/rand"
	"sort"

	"github.com/ascam-project/ascam-core/internal/filter"
	"github.com/ascam-project/ascam-core/internal/logging"
)

// Event is one row of an idealization's event table (spec §3, §4.6).
type Event struct {
	Amplitude float64
	Duration  float64
	TStart    float64
	TEnd      float64
}

// Config bundles the idealizer's inputs for one episode (spec §4.6, §6).
type Config struct {
	Amplitudes          []float64
	Thresholds          []float64 // optional; midpoints substituted if wrong length
	Resolution          float64   // seconds; 0 disables resolution enforcement
	InterpolationFactor int       // 0 or 1 disables interpolation
}

// Result is the idealizer's output for one episode.
type Result struct {
	Idealization []float64
	Time         []float64
}

// Idealize runs §4.6 end to end: optional interpolation, threshold-crossing
// quantization, then optional resolution enforcement. rng drives the
// probabilistic resolution merges and must be supplied by the caller for
// reproducibility (spec §9's "seedable RNG handle").
func Idealize(signal, time []float64, cfg Config, rng *rand.Rand, log logging.Logger) Result {
	amps, thresholds := resolveAmplitudesAndThresholds(cfg.Amplitudes, cfg.Thresholds, log)

	workSignal, workTime := signal, time
	if cfg.InterpolationFactor > 1 {
		workTime, workSignal = filter.Interpolate(time, signal, cfg.InterpolationFactor)
	}

	ideal := ThresholdCrossing(workSignal, amps, thresholds)

	if cfg.Resolution > 0 {
		ideal = ApplyResolution(ideal, workTime, cfg.Resolution, rng, log)
	}

	return Result{Idealization: ideal, Time: workTime}
}

// resolveAmplitudesAndThresholds sorts amplitudes descending and, if
// thresholds are absent or the wrong length, substitutes the midpoints
// between consecutive amplitudes (spec §4.6, the "forgiving" open-question
// resolution from spec.md §9).
func resolveAmplitudesAndThresholds(amplitudes, thresholds []float64, log logging.Logger) (amps, th []float64) {
	amps = append([]float64(nil), amplitudes...)
	sort.Sort(sort.Reverse(sort.Float64Slice(amps)))

	if len(thresholds) == len(amps)-1 {
		return amps, append([]float64(nil), thresholds...)
	}
	if len(thresholds) > 0 {
		log.Warnf("idealize: expected %d thresholds for %d amplitudes, got %d; substituting midpoints", len(amps)-1, len(amps), len(thresholds))
	}
	th = make([]float64, len(amps)-1)
	for i := 0; i < len(th); i++ {
		th[i] = (amps[i] + amps[i+1]) / 2
	}
	return amps, th
}

// ThresholdCrossing quantizes signal to the nearest of amplitudes using
// thresholds as the crossing points, per spec §4.6. amplitudes must already
// be sorted descending and thresholds must have length len(amplitudes)-1
// (empty only for a single amplitude); callers normally reach this via
// Idealize, which handles
// sorting and midpoint substitution.
func ThresholdCrossing(signal, amplitudes, thresholds []float64) []float64 {
	out := make([]float64, len(signal))

	if len(amplitudes) == 1 {
		for i := range out {
			out[i] = amplitudes[0]
		}
		return out
	}

	for i, v := range signal {
		if v > thresholds[0] {
			out[i] = amplitudes[0]
		}
	}
	for k, th := range thresholds {
		amp := amplitudes[k+1]
		for i, v := range signal {
			if v < th {
				out[i] = amp
			}
		}
	}
	return out
}

// ExtractEvents scans idealization for maximal constant-value runs and
// returns one Event per run, in time order, per spec §4.6.
func ExtractEvents(idealization, time []float64) []Event {
	n := len(idealization)
	if n == 0 {
		return nil
	}
	delta := 0.0
	if n > 1 {
		delta = time[1] - time[0]
	}

	var events []Event
	runStart := 0
	for i := 1; i <= n; i++ {
		if i == n || idealization[i] != idealization[i-1] {
			events = append(events, Event{
				Amplitude: idealization[runStart],
				TStart:    time[runStart],
				TEnd:      time[i-1],
				Duration:  time[i-1] - time[runStart] + delta,
			})
			runStart = i
		}
	}
	return events
}

// reconstruct lays each event's amplitude across its time span, the inverse
// operation ExtractEvents is the left-inverse of (spec §8 invariant 3). Used
// internally by ApplyResolution to keep the idealization and event table in
// sync while merging.
func reconstruct(events []Event, time []float64, out []float64) {
	idx := 0
	for _, e := range events {
		for idx < len(time) && time[idx] <= e.TEnd+1e-12 {
			out[idx] = e.Amplitude
			idx++
		}
	}
}

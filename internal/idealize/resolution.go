package idealize

import (
	"math/rand"

	"github.com/ascam-project/ascam-core/internal/logging"
)

// ApplyResolution repeatedly merges events shorter than r into a neighbour
// until none remain (spec §4.6). The first event always merges forward, the
// last always merges backward; any other too-short event merges forward or
// backward with probability 1/2 each, decided by rng so the merge sequence
// is reproducible given a seeded source. If a pass still leaves an event
// shorter than r (the "single amplitude flanked by two short neighbours"
// edge case), a warning is logged rather than failing (spec §7
// ResolutionResidual).
func ApplyResolution(idealization, time []float64, r float64, rng *rand.Rand, log logging.Logger) []float64 {
	out := append([]float64(nil), idealization...)
	events := ExtractEvents(out, time)

	i := 0
	for i < len(events) {
		if events[i].Duration >= r {
			i++
			continue
		}
		if len(events) == 1 {
			// Nothing to merge into; this is the residual case logged below.
			break
		}

		mergeForward := i == 0 || (i != len(events)-1 && rng.Intn(2) == 0)

		if mergeForward {
			events[i].Amplitude = events[i+1].Amplitude
			events[i].TEnd = events[i+1].TEnd
			events[i].Duration += events[i+1].Duration
			events = append(events[:i+1], events[i+2:]...)
		} else {
			events[i-1].TEnd = events[i].TEnd
			events[i-1].Duration += events[i].Duration
			events = append(events[:i], events[i+1:]...)
			// i is left unchanged: the event now occupying slot i is the
			// one that used to follow the deleted event, and needs its
			// own check; the event merged into (i-1) only grew, so it
			// cannot have become too short.
		}
	}

	reconstruct(events, time, out)

	for _, e := range events {
		if e.Duration < r {
			log.Warnf("idealize: resolution pass could not fully converge; an event of duration %v remains below resolution %v", e.Duration, r)
			break
		}
	}

	return out
}

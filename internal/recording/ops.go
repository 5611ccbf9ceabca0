package recording

import (
	"math/rand"

	"github.com/ascam-project/ascam-core/internal/idealize"
)

// IdealizeSeries applies §4.6 in place to every episode of the current
// series (spec §4.7). rng drives resolution-merge coin flips.
func (r *Recording) IdealizeSeries(cfg idealize.Config, rng *rand.Rand) {
	for _, ep := range r.CurrentSeries().Episodes {
		r.idealizeEpisode(ep, cfg, rng)
	}
	cfgCopy := cfg
	r.LastIdealizeConfig = &cfgCopy
}

// IdealizeEpisode applies §4.6 in place to only the current episode.
func (r *Recording) IdealizeEpisode(cfg idealize.Config, rng *rand.Rand) {
	r.idealizeEpisode(r.CurrentEpisode(), cfg, rng)
	cfgCopy := cfg
	r.LastIdealizeConfig = &cfgCopy
}

func (r *Recording) idealizeEpisode(ep *Episode, cfg idealize.Config, rng *rand.Rand) {
	result := idealize.Idealize(ep.Current, ep.Time, cfg, rng, r.log)
	ep.Idealization = result.Idealization
	ep.IdealizationTime = result.Time
}

// DetectFirstActivation applies §4.6's first-activation detection to every
// episode of the current series whose index is not in exclude.
func (r *Recording) DetectFirstActivation(threshold float64, exclude map[int]struct{}) {
	for _, ep := range r.CurrentSeries().Episodes {
		if _, skip := exclude[ep.Index]; skip {
			continue
		}
		ep.FirstActivation = idealize.DetectFirstActivation(ep.Time, ep.Current, threshold)
		ep.HasFirstActivation = true
	}
	r.LastFAThreshold = &threshold
}

// EventRow is one row of the concatenated event table returned by
// GetEvents: an idealize.Event with the owning episode's index appended as
// a fifth column (spec §4.7).
type EventRow struct {
	idealize.Event
	EpisodeIndex int
}

// GetEvents concatenates per-episode event tables for the current series,
// failing with ErrNotIdealized if any episode lacks an idealization.
func (r *Recording) GetEvents() ([]EventRow, error) {
	series := r.CurrentSeries()
	for _, ep := range series.Episodes {
		if ep.Idealization == nil {
			return nil, ErrNotIdealized
		}
	}

	var rows []EventRow
	for _, ep := range series.Episodes {
		for _, ev := range idealize.ExtractEvents(ep.Idealization, ep.IdealizationTime) {
			rows = append(rows, EventRow{Event: ev, EpisodeIndex: ep.Index})
		}
	}
	return rows, nil
}

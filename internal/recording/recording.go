package recording

import (
	"fmt"

	"github.com/ascam-project/ascam-core/internal/idealize"
	"github.com/ascam-project/ascam-core/internal/logging"
)

// RawKey is the lineage key of the untouched, loaded series (spec §3).
const RawKey = "raw_"

// Recording owns every series, keyed by lineage, plus the current-series/
// current-episode pointers and the user-list registry (spec §3). It is
// deliberately a plain struct with named accessors rather than something
// that "behaves like a map" (spec §9).
type Recording struct {
	seriesByKey         map[string]*Series
	currentKey          string
	currentEpisodeIndex int
	samplingHz          float64

	lists map[string]*UserList

	// LastIdealizeConfig/LastFAThreshold persist the most recently used
	// idealization/first-activation settings, so a caller can re-run "with
	// the same settings as last time" (original_source/recording.py's
	// TC_amplitudes/TC_thresholds/fa_threshold properties, supplemented
	// per SPEC_FULL.md).
	LastIdealizeConfig *idealize.Config
	LastFAThreshold    *float64

	log logging.Logger
}

// New creates a Recording around a raw series, with the "all" user list
// populated and the current pointers set to the raw series, first episode.
func New(raw *Series, samplingHz float64, log logging.Logger) (*Recording, error) {
	if log == nil {
		log = logging.Discard
	}
	for _, ep := range raw.Episodes {
		if err := ep.validate(); err != nil {
			return nil, err
		}
	}

	r := &Recording{
		seriesByKey: map[string]*Series{RawKey: raw},
		currentKey:  RawKey,
		samplingHz:  samplingHz,
		lists:       map[string]*UserList{},
		log:         log,
	}
	r.rebuildAllList()
	return r, nil
}

func (r *Recording) rebuildAllList() {
	idx := map[int]struct{}{}
	for i := range r.CurrentSeries().Episodes {
		idx[i] = struct{}{}
	}
	r.lists[AllListName] = &UserList{Indices: idx, Colour: "black"}
}

// CurrentKey returns the lineage key of the current series.
func (r *Recording) CurrentKey() string { return r.currentKey }

// CurrentSeries returns the current series.
func (r *Recording) CurrentSeries() *Series { return r.seriesByKey[r.currentKey] }

// CurrentEpisodeIndex returns the index of the current episode within the
// current series.
func (r *Recording) CurrentEpisodeIndex() int { return r.currentEpisodeIndex }

// CurrentEpisode returns the current episode of the current series.
func (r *Recording) CurrentEpisode() *Episode {
	return r.CurrentSeries().Episodes[r.currentEpisodeIndex]
}

// Series looks up a series by lineage key.
func (r *Recording) Series(key string) (*Series, error) {
	s, ok := r.seriesByKey[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	return s, nil
}

// Keys returns every lineage key currently stored.
func (r *Recording) Keys() []string {
	keys := make([]string, 0, len(r.seriesByKey))
	for k := range r.seriesByKey {
		keys = append(keys, k)
	}
	return keys
}

// SetCurrentSeries switches the current series without altering any series
// (spec §3's lifecycle invariant).
func (r *Recording) SetCurrentSeries(key string) error {
	if _, ok := r.seriesByKey[key]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	r.currentKey = key
	if r.currentEpisodeIndex >= len(r.seriesByKey[key].Episodes) {
		r.currentEpisodeIndex = 0
	}
	return nil
}

// SetCurrentEpisode selects the current episode by index within the current
// series.
func (r *Recording) SetCurrentEpisode(index int) error {
	if index < 0 || index >= len(r.CurrentSeries().Episodes) {
		return fmt.Errorf("recording: episode index %d out of range [0,%d)", index, len(r.CurrentSeries().Episodes))
	}
	r.currentEpisodeIndex = index
	return nil
}

// SamplingHz returns the recording's sampling rate.
func (r *Recording) SamplingHz() float64 { return r.samplingHz }

// deriveLineageKey builds the key for a stage applied to the current
// series: the current key with any leading "raw_" dropped, followed by tag
// (spec §4.2, §8 invariant 1).
func deriveLineageKey(currentKey, tag string) string {
	base := currentKey
	if base == RawKey {
		base = ""
	}
	return base + tag
}

// storeSeries installs a newly produced series under key, replacing any
// existing series at that key (stages are intentionally idempotent by
// lineage, spec §4.2), and advances the current pointer to it.
func (r *Recording) storeSeries(key string, s *Series) {
	r.seriesByKey[key] = s
	r.currentKey = key
	if r.currentEpisodeIndex >= len(s.Episodes) {
		r.currentEpisodeIndex = 0
	}
	r.rebuildAllList()
}

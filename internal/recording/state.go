package recording

import (
	"github.com/ascam-project/ascam-core/internal/idealize"
	"github.com/ascam-project/ascam-core/internal/logging"
)

// State is a flat, fully-exported snapshot of a Recording, suitable for
// serialization by internal/nativeio (the "round-trip of a whole recording,
// including user lists and lineage map" loader target named in spec §6).
type State struct {
	SamplingHz          float64
	CurrentKey          string
	CurrentEpisodeIndex int
	SeriesByKey         map[string]*Series
	Lists               map[string]*UserList
	LastIdealizeConfig  *idealize.Config
	LastFAThreshold     *float64
}

// ExportState snapshots the recording for serialization.
func (r *Recording) ExportState() State {
	return State{
		SamplingHz:          r.samplingHz,
		CurrentKey:          r.currentKey,
		CurrentEpisodeIndex: r.currentEpisodeIndex,
		SeriesByKey:         r.seriesByKey,
		Lists:               r.lists,
		LastIdealizeConfig:  r.LastIdealizeConfig,
		LastFAThreshold:     r.LastFAThreshold,
	}
}

// RestoreState rebuilds a Recording from a previously exported State,
// without re-validating episode shapes (they were validated when the state
// was first built via New).
func RestoreState(s State, log logging.Logger) *Recording {
	if log == nil {
		log = logging.Discard
	}
	return &Recording{
		samplingHz:          s.SamplingHz,
		currentKey:          s.CurrentKey,
		currentEpisodeIndex: s.CurrentEpisodeIndex,
		seriesByKey:         s.SeriesByKey,
		lists:               s.Lists,
		LastIdealizeConfig:  s.LastIdealizeConfig,
		LastFAThreshold:     s.LastFAThreshold,
		log:                 log,
	}
}

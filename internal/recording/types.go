// Package recording implements the data model of spec §3 (Episode, Series,
// Recording, the user-list registry) and the stage pipeline of §4.2, wiring
// the selection/baseline/filter/idealize packages together into the
// Recording-level operations of §4.7.
package recording

import (
	"errors"
	"fmt"
)

// Sentinel errors, per spec §7.
var (
	ErrShapeMismatch = errors.New("recording: shape mismatch")
	ErrNotIdealized  = errors.New("recording: episode has no idealization")
	ErrUnknownKey    = errors.New("recording: unknown lineage key")
	ErrUnknownList   = errors.New("recording: unknown user list")
)

// Episode is one sweep (spec §3). Index, Time and Delta are set at creation
// and never change; Current/Piezo/Command/Idealization/IdealizationTime/
// FirstActivation are mutated by stages and idealization.
type Episode struct {
	Index int
	Time  []float64
	Delta float64

	Current []float64
	Piezo   []float64 // nil if absent
	Command []float64 // nil if absent

	Idealization     []float64 // nil until idealized
	IdealizationTime []float64 // nil until idealized

	FirstActivation    float64
	HasFirstActivation bool
}

// validate checks the length invariants of spec §3.
func (e *Episode) validate() error {
	if len(e.Current) != len(e.Time) {
		return fmt.Errorf("%w: episode %d: len(current)=%d != len(time)=%d", ErrShapeMismatch, e.Index, len(e.Current), len(e.Time))
	}
	if e.Piezo != nil && len(e.Piezo) != len(e.Time) {
		return fmt.Errorf("%w: episode %d: len(piezo)=%d != len(time)=%d", ErrShapeMismatch, e.Index, len(e.Piezo), len(e.Time))
	}
	if e.Command != nil && len(e.Command) != len(e.Time) {
		return fmt.Errorf("%w: episode %d: len(command)=%d != len(time)=%d", ErrShapeMismatch, e.Index, len(e.Command), len(e.Time))
	}
	if e.Idealization != nil && len(e.Idealization) != len(e.IdealizationTime) {
		return fmt.Errorf("%w: episode %d: len(idealization)=%d != len(idealizationTime)=%d", ErrShapeMismatch, e.Index, len(e.Idealization), len(e.IdealizationTime))
	}
	return nil
}

// DeepCopy returns an independent copy of the episode; no slice is shared
// with the receiver (spec §5: "deep-copy allocates a fresh independent
// buffer per vector").
func (e *Episode) DeepCopy() *Episode {
	cp := &Episode{
		Index:              e.Index,
		Delta:              e.Delta,
		FirstActivation:    e.FirstActivation,
		HasFirstActivation: e.HasFirstActivation,
	}
	cp.Time = append([]float64(nil), e.Time...)
	cp.Current = append([]float64(nil), e.Current...)
	if e.Piezo != nil {
		cp.Piezo = append([]float64(nil), e.Piezo...)
	}
	if e.Command != nil {
		cp.Command = append([]float64(nil), e.Command...)
	}
	if e.Idealization != nil {
		cp.Idealization = append([]float64(nil), e.Idealization...)
		cp.IdealizationTime = append([]float64(nil), e.IdealizationTime...)
	}
	return cp
}

// Series is an ordered list of structurally identical episodes (spec §3).
type Series struct {
	Episodes   []*Episode
	SamplingHz float64
	HasPiezo   bool
	HasCommand bool
}

// DeepCopy returns an independent series; stages deep-copy the current
// series before mutating it so the source series is preserved untouched
// (spec §4.2, §8 invariant 2).
func (s *Series) DeepCopy() *Series {
	cp := &Series{SamplingHz: s.SamplingHz, HasPiezo: s.HasPiezo, HasCommand: s.HasCommand}
	cp.Episodes = make([]*Episode, len(s.Episodes))
	for i, ep := range s.Episodes {
		cp.Episodes[i] = ep.DeepCopy()
	}
	return cp
}

// UserList is a named, coloured, optionally hotkey-bound set of episode
// indices (spec §3).
type UserList struct {
	Indices map[int]struct{}
	Colour  string
	Hotkey  rune // 0 if unset
}

// AllListName is the predefined list containing every index of the current
// series; it cannot be deleted (spec §3).
const AllListName = "all"

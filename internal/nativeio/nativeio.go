// Package nativeio implements the native serialized ".ascamgob" form named
// in spec §6: "round-trip of a whole recording, including user lists and
// lineage map." Unlike the MATLAB/Axograph loaders (genuinely out of scope,
// spec §1), this format is wholly owned by the core's own data model, so it
// is implemented in full using encoding/gob.
package nativeio

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"io"
	"os"

	"github.com/ascam-project/ascam-core/internal/loader"
	"github.com/ascam-project/ascam-core/internal/logging"
	"github.com/ascam-project/ascam-core/internal/recording"
)

// Extension is the dispatch key this package registers with loader.For.
const Extension = ".ascamgob"

func init() {
	loader.Register(Extension, LoadRaw)
}

// Save gob-encodes the recording's full state (series map, lineage keys,
// current pointers, user lists) to w.
func Save(rec *recording.Recording, w io.Writer) error {
	if err := gob.NewEncoder(w).Encode(rec.ExportState()); err != nil {
		return fmt.Errorf("nativeio: encoding recording: %w", err)
	}
	return nil
}

// SaveFile is a convenience wrapper around Save for a file path.
func SaveFile(rec *recording.Recording, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("nativeio: creating %q: %w", path, err)
	}
	defer f.Close()
	return Save(rec, f)
}

// Load decodes a full recording (series map, lineage keys, user lists,
// current pointers) from r.
func Load(r io.Reader, log logging.Logger) (*recording.Recording, error) {
	var state recording.State
	if err := gob.NewDecoder(r).Decode(&state); err != nil {
		return nil, fmt.Errorf("nativeio: decoding recording: %w", err)
	}
	return recording.RestoreState(state, log), nil
}

// LoadFile is a convenience wrapper around Load for a file path.
func LoadFile(path string, log logging.Logger) (*recording.Recording, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("nativeio: opening %q: %w", path, err)
	}
	defer f.Close()
	return Load(f, log)
}

// LoadRaw adapts the native format to the loader.Func contract (spec §6),
// extracting just the raw_ series as a RawRecording — the shape a file
// loader is expected to hand back, regardless of how much more the native
// format actually round-trips.
func LoadRaw(path string) (loader.RawRecording, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return loader.RawRecording{}, fmt.Errorf("nativeio: reading %q: %w", path, err)
	}

	var state recording.State
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&state); err != nil {
		return loader.RawRecording{}, fmt.Errorf("nativeio: decoding %q: %w", path, err)
	}

	raw, ok := state.SeriesByKey[recording.RawKey]
	if !ok {
		return loader.RawRecording{}, fmt.Errorf("nativeio: %q has no %q series", path, recording.RawKey)
	}

	out := loader.RawRecording{SamplingHz: state.SamplingHz}
	for _, ep := range raw.Episodes {
		out.Time = ep.Time // identical across episodes by the series invariant
		out.Currents = append(out.Currents, ep.Current)
		if raw.HasPiezo {
			out.Piezos = append(out.Piezos, ep.Piezo)
		}
		if raw.HasCommand {
			out.Commands = append(out.Commands, ep.Command)
		}
	}
	return out, nil
}

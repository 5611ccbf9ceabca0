// Package loader defines the §6 loader interface contract: a pure function
// from a file path to a RawRecording, dispatched by file extension. Parsing
// actual MATLAB/Axograph binary formats is an out-of-scope external
// collaborator concern (spec §1); only the native round-trip format
// (internal/nativeio) is implemented here, behind the same dispatch table a
// real implementation would use for all three.
package loader

import (
	"errors"
	"fmt"
	"path/filepath"
)

// ErrUnsupportedFiletype is returned for any extension outside the closed
// dispatch set of spec §6.
var ErrUnsupportedFiletype = errors.New("loader: unsupported filetype")

// RawRecording is the loader's output contract (spec §6): already-SI-unit
// traces plus optional piezo/command channels, one slice per episode.
type RawRecording struct {
	ColumnNames []string
	Time        []float64
	Currents    [][]float64
	Piezos      [][]float64 // nil if absent
	Commands    [][]float64 // nil if absent
	SamplingHz  float64
}

// Func loads a RawRecording from a file path.
type Func func(path string) (RawRecording, error)

// registry is populated by nativeio's init, keeping loader free of a direct
// dependency on any one format (and of course of the never-implemented
// MATLAB/Axograph parsers).
var registry = map[string]Func{}

// Register associates a loader with a file extension (including the leading
// dot, e.g. ".ascamgob"). Intended to be called from format packages' init.
func Register(ext string, fn Func) {
	registry[ext] = fn
}

// For dispatches by the path's extension, returning ErrUnsupportedFiletype
// for any extension with no registered loader — in particular .mat and
// .axgd, whose parsers are genuinely out of scope here (spec §1).
func For(path string) (Func, error) {
	ext := filepath.Ext(path)
	fn, ok := registry[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFiletype, ext)
	}
	return fn, nil
}

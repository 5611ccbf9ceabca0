// Package config describes the YAML-serializable pipeline and idealizer
// configuration surfaces of spec §6 ("the idealization tab surface") and
// §4.2 (stage pipeline), the supplemented, GUI-free equivalent of
// original_source/ascam/gui/analysis_widgets.py's widget state.
package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/ascam-project/ascam-core/internal/baseline"
	"github.com/ascam-project/ascam-core/internal/filter"
	"github.com/ascam-project/ascam-core/internal/idealize"
	"github.com/ascam-project/ascam-core/internal/selection"
)

// StageConfig describes one pipeline stage by name and parameters. Exactly
// one of the parameter fields is populated, keyed by Type.
type StageConfig struct {
	Type string `yaml:"type"` // "baseline", "gaussian", or "chungkennedy"

	Baseline     *BaselineStageConfig     `yaml:"baseline,omitempty"`
	Gaussian     *GaussianStageConfig     `yaml:"gaussian,omitempty"`
	ChungKennedy *ChungKennedyStageConfig `yaml:"chung_kennedy,omitempty"`
}

// BaselineStageConfig mirrors baseline.Params in YAML-friendly form.
type BaselineStageConfig struct {
	Method    string               `yaml:"method"` // "offset" or "polynomial"
	Degree    int                  `yaml:"degree"`
	Selection string               `yaml:"selection"` // "none", "intervals", "piezo"
	Intervals []IntervalConfig     `yaml:"intervals,omitempty"`
	Active    bool                 `yaml:"active"`
	Deviation float64              `yaml:"deviation"`
}

// IntervalConfig is a [A,B] time span in seconds.
type IntervalConfig struct {
	A float64 `yaml:"a"`
	B float64 `yaml:"b"`
}

// GaussianStageConfig configures the Gaussian filter stage.
type GaussianStageConfig struct {
	CutoffHz float64 `yaml:"cutoff_hz"`
}

// ChungKennedyStageConfig configures the Chung-Kennedy filter stage.
type ChungKennedyStageConfig struct {
	WindowLengths  []int   `yaml:"window_lengths"`
	WeightExponent float64 `yaml:"weight_exponent"`
	WeightWindow   int     `yaml:"weight_window"`
}

// PipelineConfig is an ordered list of stages to run against a recording's
// current series (spec §4.2).
type PipelineConfig struct {
	Stages []StageConfig `yaml:"stages"`
}

// IdealizeConfig mirrors spec §6's idealization tab surface, in SI units
// (amplitude_unit/time_unit conversion, if needed, happens at the loader
// boundary before this struct is populated).
type IdealizeConfig struct {
	Amplitudes          []float64 `yaml:"amplitudes"`
	Thresholds          []float64 `yaml:"thresholds,omitempty"`
	AutoThresholds      bool      `yaml:"auto_thresholds"`
	Negate              bool      `yaml:"negate"`
	Resolution          float64   `yaml:"resolution,omitempty"`
	InterpolationFactor int       `yaml:"interpolation_factor,omitempty"`
}

// ParsePipeline parses a YAML pipeline document.
func ParsePipeline(data []byte) (PipelineConfig, error) {
	var cfg PipelineConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return PipelineConfig{}, fmt.Errorf("config: parsing pipeline yaml: %w", err)
	}
	return cfg, nil
}

// ParseIdealize parses a YAML idealization-config document.
func ParseIdealize(data []byte) (IdealizeConfig, error) {
	var cfg IdealizeConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return IdealizeConfig{}, fmt.Errorf("config: parsing idealize yaml: %w", err)
	}
	return cfg, nil
}

// ToIdealizeParams converts the §6 surface into an idealize.Config, applying
// negate (flips sign of amplitudes and thresholds) and dropping thresholds
// entirely when AutoThresholds is set.
func (c IdealizeConfig) ToIdealizeParams() idealize.Config {
	amps := append([]float64(nil), c.Amplitudes...)
	var th []float64
	if !c.AutoThresholds {
		th = append([]float64(nil), c.Thresholds...)
	}
	if c.Negate {
		for i := range amps {
			amps[i] = -amps[i]
		}
		for i := range th {
			th[i] = -th[i]
		}
	}
	return idealize.Config{
		Amplitudes:          amps,
		Thresholds:          th,
		Resolution:          c.Resolution,
		InterpolationFactor: c.InterpolationFactor,
	}
}

func toSelectionIntervals(cfgs []IntervalConfig) []selection.Interval {
	out := make([]selection.Interval, len(cfgs))
	for i, c := range cfgs {
		out[i] = selection.Interval{A: c.A, B: c.B}
	}
	return out
}

// baselineParams converts a BaselineStageConfig into baseline.Params
// (minus the per-episode Piezo field, which the recording package fills in).
func (c BaselineStageConfig) baselineParams() (method baseline.Method, degree int, sel baseline.SelectionMode, intervals []selection.Interval, active bool, deviation float64, err error) {
	switch c.Method {
	case "offset":
		method = baseline.Offset
	case "polynomial", "":
		method = baseline.Polynomial
	default:
		return 0, 0, 0, nil, false, 0, fmt.Errorf("config: unknown baseline method %q", c.Method)
	}
	switch c.Selection {
	case "intervals":
		sel = baseline.ByIntervals
	case "piezo":
		sel = baseline.ByPiezo
	case "none", "":
		sel = baseline.NoSelection
	default:
		return 0, 0, 0, nil, false, 0, fmt.Errorf("config: unknown selection mode %q", c.Selection)
	}
	return method, c.Degree, sel, toSelectionIntervals(c.Intervals), c.Active, c.Deviation, nil
}

// chungKennedyParams converts a ChungKennedyStageConfig into filter.ChungKennedyParams.
func (c ChungKennedyStageConfig) chungKennedyParams() filter.ChungKennedyParams {
	return filter.ChungKennedyParams{
		WindowLengths:  append([]int(nil), c.WindowLengths...),
		WeightExponent: c.WeightExponent,
		WeightWindow:   c.WeightWindow,
	}
}

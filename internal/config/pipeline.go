package config

import (
	"fmt"

	"github.com/ascam-project/ascam-core/internal/recording"
)

// ApplyPipeline runs each configured stage against rec's current series, in
// order, exactly as spec §4.2 describes: each stage deep-copies the current
// series and advances the current lineage key.
func ApplyPipeline(rec *recording.Recording, cfg PipelineConfig) error {
	for i, stage := range cfg.Stages {
		if err := applyStage(rec, stage); err != nil {
			return fmt.Errorf("config: pipeline stage %d (%s): %w", i, stage.Type, err)
		}
	}
	return nil
}

func applyStage(rec *recording.Recording, stage StageConfig) error {
	switch stage.Type {
	case "baseline":
		if stage.Baseline == nil {
			return fmt.Errorf("config: baseline stage missing parameters")
		}
		method, degree, sel, intervals, active, deviation, err := stage.Baseline.baselineParams()
		if err != nil {
			return err
		}
		return rec.BaselineCorrection(recording.BaselineParams{
			Method:    method,
			Degree:    degree,
			Selection: sel,
			Intervals: intervals,
			Active:    active,
			Deviation: deviation,
		})
	case "gaussian":
		if stage.Gaussian == nil {
			return fmt.Errorf("config: gaussian stage missing parameters")
		}
		rec.GaussianFilter(stage.Gaussian.CutoffHz)
		return nil
	case "chungkennedy", "chung_kennedy":
		if stage.ChungKennedy == nil {
			return fmt.Errorf("config: chung_kennedy stage missing parameters")
		}
		rec.ChungKennedyFilter(stage.ChungKennedy.chungKennedyParams())
		return nil
	default:
		return fmt.Errorf("config: unknown stage type %q", stage.Type)
	}
}

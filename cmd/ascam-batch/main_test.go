package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ascam-project/ascam-core/internal/logging"
	"github.com/ascam-project/ascam-core/internal/nativeio"
	"github.com/ascam-project/ascam-core/internal/recording"
)

const pipelineYAML = `
stages:
  - type: baseline
    baseline:
      method: offset
      selection: none
`

const idealizeYAML = `
amplitudes: [1, 0]
`

func TestRun_EndToEnd(t *testing.T) {
	dir := t.TempDir()

	ep := &recording.Episode{Index: 0, Time: []float64{0, 1, 2, 3, 4}, Delta: 1, Current: []float64{1.1, 0.9, 1.0, 0.1, -0.1}}
	raw := &recording.Series{Episodes: []*recording.Episode{ep}, SamplingHz: 1}
	rec, err := recording.New(raw, 1, nil)
	require.NoError(t, err)

	inPath := filepath.Join(dir, "rec"+nativeio.Extension)
	require.NoError(t, nativeio.SaveFile(rec, inPath))

	pipelinePath := filepath.Join(dir, "pipeline.yaml")
	require.NoError(t, os.WriteFile(pipelinePath, []byte(pipelineYAML), 0o644))

	idealizePath := filepath.Join(dir, "idealize.yaml")
	require.NoError(t, os.WriteFile(idealizePath, []byte(idealizeYAML), 0o644))

	eventsPattern := filepath.Join(dir, "events.csv")
	faPattern := filepath.Join(dir, "fa.csv")

	err = run(inPath, pipelinePath, idealizePath, eventsPattern, faPattern, 0.5, 1, true, logging.Discard)
	require.NoError(t, err)

	eventsData, err := os.ReadFile(eventsPattern)
	require.NoError(t, err)
	assert.Contains(t, string(eventsData), "amplitude,duration,t_start,t_stop,episode")

	faData, err := os.ReadFile(faPattern)
	require.NoError(t, err)
	assert.Contains(t, string(faData), "episode_index,t_first_activation")
}

func TestRun_MissingInputFile(t *testing.T) {
	err := run(filepath.Join(t.TempDir(), "missing"+nativeio.Extension), "", "", "events.csv", "", 0, 1, false, logging.Discard)
	assert.Error(t, err)
}

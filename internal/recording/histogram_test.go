package recording

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistogram_Episode_Basic(t *testing.T) {
	rec := newTestRecording(t)

	heights, edges, centres, width, err := rec.Histogram(HistogramParams{
		Scope: ScopeEpisode,
		Bins:  4,
	})
	require.NoError(t, err)
	assert.Len(t, heights, 4)
	assert.Len(t, edges, 5)
	assert.Len(t, centres, 4)
	assert.Greater(t, width, 0.0)

	sum := 0.0
	for _, h := range heights {
		sum += h
	}
	assert.Equal(t, 4.0, sum) // episode 0 has 4 samples
}

func TestHistogram_Series_AggregatesAllEpisodes(t *testing.T) {
	rec := newTestRecording(t)

	heights, _, _, _, err := rec.Histogram(HistogramParams{
		Scope: ScopeSeries,
		Bins:  4,
	})
	require.NoError(t, err)

	sum := 0.0
	for _, h := range heights {
		sum += h
	}
	assert.Equal(t, 8.0, sum) // two episodes of 4 samples each
}

func TestHistogram_ZeroBinsErrors(t *testing.T) {
	rec := newTestRecording(t)
	_, _, _, _, err := rec.Histogram(HistogramParams{Scope: ScopeEpisode, Bins: 0})
	assert.Error(t, err)
}

func TestHistogram_Density_SumsToOneOverWidth(t *testing.T) {
	rec := newTestRecording(t)

	heights, _, _, width, err := rec.Histogram(HistogramParams{
		Scope:   ScopeEpisode,
		Bins:    4,
		Density: true,
	})
	require.NoError(t, err)

	sum := 0.0
	for _, h := range heights {
		sum += h * width
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

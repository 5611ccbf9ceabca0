package recording

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ascam-project/ascam-core/internal/baseline"
)

func newTestRecording(t *testing.T) *Recording {
	t.Helper()
	ep0 := &Episode{Index: 0, Time: []float64{0, 1, 2, 3}, Delta: 1, Current: []float64{1, 2, 3, 4}}
	ep1 := &Episode{Index: 1, Time: []float64{0, 1, 2, 3}, Delta: 1, Current: []float64{4, 3, 2, 1}}
	raw := &Series{Episodes: []*Episode{ep0, ep1}, SamplingHz: 1}
	rec, err := New(raw, 1, nil)
	require.NoError(t, err)
	return rec
}

// Invariant 1 (spec §8): the lineage key is the ordered concatenation of
// stage tags, with no leading raw_. Scenario S6: baseline then Gaussian at
// 1000 Hz on raw_ yields "BC_GFILTER1000_".
func TestLineageKey_S6(t *testing.T) {
	rec := newTestRecording(t)

	err := rec.BaselineCorrection(BaselineParams{Method: baseline.Offset, Selection: baseline.NoSelection})
	require.NoError(t, err)
	assert.Equal(t, "BC_", rec.CurrentKey())

	rec.GaussianFilter(1000)
	assert.Equal(t, "BC_GFILTER1000_", rec.CurrentKey())
}

// Invariant 2 (spec §8): after any stage on series S, S itself is
// unchanged (no aliasing bug) — the raw_ series must still be there,
// untouched, after stages run.
func TestStage_DoesNotMutateSourceSeries(t *testing.T) {
	rec := newTestRecording(t)
	rawBefore, err := rec.Series(RawKey)
	require.NoError(t, err)
	snapshot := append([]float64(nil), rawBefore.Episodes[0].Current...)

	err = rec.BaselineCorrection(BaselineParams{Method: baseline.Offset, Selection: baseline.NoSelection})
	require.NoError(t, err)
	rec.GaussianFilter(1000)

	rawAfter, err := rec.Series(RawKey)
	require.NoError(t, err)
	assert.Equal(t, snapshot, rawAfter.Episodes[0].Current)
}

func TestSelectedEpisodes_Union(t *testing.T) {
	rec := newTestRecording(t)
	require.NoError(t, rec.CreateList("red", "red", 'r'))
	require.NoError(t, rec.CreateList("blue", "blue", 'b'))
	require.NoError(t, rec.AddToList("red", 0))
	require.NoError(t, rec.AddToList("blue", 1))
	require.NoError(t, rec.AddToList("blue", 0))

	got, err := rec.SelectedEpisodes("red", "blue")
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{0, 1}, got)
}

func TestAllList_CannotBeDeleted(t *testing.T) {
	rec := newTestRecording(t)
	err := rec.DeleteList(AllListName)
	assert.Error(t, err)
}

func TestGetEvents_FailsWithoutIdealization(t *testing.T) {
	rec := newTestRecording(t)
	_, err := rec.GetEvents()
	assert.ErrorIs(t, err, ErrNotIdealized)
}

func TestDebugDump_ContainsLineageKey(t *testing.T) {
	rec := newTestRecording(t)
	assert.Contains(t, rec.DebugDump(), RawKey)
}

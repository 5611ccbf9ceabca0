package recording

import "github.com/davecgh/go-spew/spew"

// DebugDump renders the recording's full exported state as a human-readable
// tree, for diagnosing a lineage/list mismatch without attaching a debugger
// (same role spew.Dump plays for a data segment in other acquisition tools).
func (r *Recording) DebugDump() string {
	return spew.Sdump(r.ExportState())
}

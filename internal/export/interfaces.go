package export

import "io"

// MatlabExporter and AxographExporter are named as interfaces only (spec
// §1: the GUI and its exporters beyond CSV are external collaborators); a
// real implementation needs a MATLAB .mat writer and an Axograph writer
// this repository has no access to. Keeping the contract here lets a caller
// plug one in without the core depending on it.
type MatlabExporter interface {
	ExportMatlab(w io.Writer, zeroPaddedWidth int) error
}

type AxographExporter interface {
	ExportAxograph(w io.Writer) error
}

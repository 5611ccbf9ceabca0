// Package export implements the CSV exporter interfaces of spec §6 that the
// core itself can own (idealization, events, first-activation): each is a
// pure function over the read-only data model. The MATLAB and Axograph
// exporters are named only as interfaces (see interfaces.go) since writing
// those formats is an external-collaborator concern (spec §1).
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/ascam-project/ascam-core/internal/recording"
)

// Events writes the events CSV of spec §6: header
// "amplitude,duration,t_start,t_stop,episode", with duration, t_start and
// t_stop to 3 decimal places and episode as an integer.
func Events(w io.Writer, rows []recording.EventRow) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"amplitude", "duration", "t_start", "t_stop", "episode"}); err != nil {
		return err
	}
	for _, r := range rows {
		record := []string{
			formatFloat(r.Amplitude),
			strconv.FormatFloat(r.Duration, 'f', 3, 64),
			strconv.FormatFloat(r.TStart, 'f', 3, 64),
			strconv.FormatFloat(r.TEnd, 'f', 3, 64),
			strconv.Itoa(r.EpisodeIndex),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	return cw.Error()
}

// FirstActivation writes the first-activation CSV of spec §6: header
// "episode_index,t_first_activation".
func FirstActivation(w io.Writer, episodes []*recording.Episode) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"episode_index", "t_first_activation"}); err != nil {
		return err
	}
	for _, ep := range episodes {
		if !ep.HasFirstActivation {
			continue
		}
		record := []string{strconv.Itoa(ep.Index), strconv.FormatFloat(ep.FirstActivation, 'f', 3, 64)}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	return cw.Error()
}

// Idealization writes the time x episode idealization matrix of spec §6.
// All episodes must share the same idealization time vector (they do, by
// the series structural invariant, unless episodes were idealized
// individually at different interpolation factors).
func Idealization(w io.Writer, series *recording.Series) error {
	if len(series.Episodes) == 0 {
		return nil
	}
	n := len(series.Episodes[0].IdealizationTime)
	for _, ep := range series.Episodes {
		if len(ep.IdealizationTime) != n {
			return fmt.Errorf("export: episode %d idealization length %d != %d", ep.Index, len(ep.IdealizationTime), n)
		}
	}

	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"time"}
	for _, ep := range series.Episodes {
		header = append(header, fmt.Sprintf("episode%d", ep.Index))
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for i := 0; i < n; i++ {
		record := []string{formatFloat(series.Episodes[0].IdealizationTime[i])}
		for _, ep := range series.Episodes {
			record = append(record, formatFloat(ep.Idealization[i]))
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

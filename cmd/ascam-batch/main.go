// Command ascam-batch drives the analysis core end to end without a GUI:
// load a native recording, run a YAML-described pipeline over it, idealize,
// and write the events / first-activation CSVs. It plays the same role in
// this repository that cmd/direwolf and cmd/gen_tone play for the teacher
// program: a thin pflag-driven main over a library that does the real work.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/lestrrat-go/strftime"
	"github.com/spf13/pflag"

	"github.com/ascam-project/ascam-core/internal/config"
	"github.com/ascam-project/ascam-core/internal/export"
	"github.com/ascam-project/ascam-core/internal/logging"
	"github.com/ascam-project/ascam-core/internal/nativeio"
)

func main() {
	var (
		inPath             = pflag.String("in", "", "Path to a native .ascamgob recording (required).")
		pipelinePath       = pflag.String("pipeline", "", "Path to a pipeline YAML file describing the stages to run.")
		idealizePath       = pflag.String("idealize", "", "Path to an idealization YAML file.")
		outEventsPattern   = pflag.String("out-events", "events-%Y%m%dT%H%M%S.csv", "strftime pattern for the events CSV output path.")
		outFAPattern       = pflag.String("out-first-activation", "", "strftime pattern for the first-activation CSV output path; empty disables.")
		faThreshold        = pflag.Float64("fa-threshold", 0, "First-activation threshold; only used with --out-first-activation.")
		seed               = pflag.Int64("seed", 1, "Seed for the resolution-merge RNG, for reproducible runs.")
		debugDump          = pflag.Bool("debug-dump", false, "Log the full recording state after loading, before running any stage.")
		help               = pflag.BoolP("help", "h", false, "Display help text.")
	)
	pflag.Parse()

	if *help || *inPath == "" {
		pflag.Usage()
		os.Exit(0)
	}

	log := logging.Stderr("ascam-batch")

	if err := run(*inPath, *pipelinePath, *idealizePath, *outEventsPattern, *outFAPattern, *faThreshold, *seed, *debugDump, log); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
}

func run(inPath, pipelinePath, idealizePath, outEventsPattern, outFAPattern string, faThreshold float64, seed int64, debugDump bool, log logging.Logger) error {
	rec, err := nativeio.LoadFile(inPath, log)
	if err != nil {
		return fmt.Errorf("loading recording: %w", err)
	}

	if debugDump {
		log.Infof("loaded recording state:\n%s", rec.DebugDump())
	}

	if pipelinePath != "" {
		data, err := os.ReadFile(pipelinePath)
		if err != nil {
			return fmt.Errorf("reading pipeline config: %w", err)
		}
		pcfg, err := config.ParsePipeline(data)
		if err != nil {
			return err
		}
		if err := config.ApplyPipeline(rec, pcfg); err != nil {
			return err
		}
	}

	rng := rand.New(rand.NewSource(seed))

	if idealizePath != "" {
		data, err := os.ReadFile(idealizePath)
		if err != nil {
			return fmt.Errorf("reading idealize config: %w", err)
		}
		icfg, err := config.ParseIdealize(data)
		if err != nil {
			return err
		}
		rec.IdealizeSeries(icfg.ToIdealizeParams(), rng)
	}

	eventsPath, err := strftime.Format(outEventsPattern, time.Now())
	if err != nil {
		return fmt.Errorf("formatting events output path: %w", err)
	}
	events, err := rec.GetEvents()
	if err != nil {
		return fmt.Errorf("getting events: %w", err)
	}
	f, err := os.Create(eventsPath)
	if err != nil {
		return fmt.Errorf("creating %q: %w", eventsPath, err)
	}
	defer f.Close()
	if err := export.Events(f, events); err != nil {
		return fmt.Errorf("writing events csv: %w", err)
	}
	log.Infof("wrote %d events to %s", len(events), eventsPath)

	if outFAPattern != "" {
		rec.DetectFirstActivation(faThreshold, nil)
		faPath, err := strftime.Format(outFAPattern, time.Now())
		if err != nil {
			return fmt.Errorf("formatting first-activation output path: %w", err)
		}
		faFile, err := os.Create(faPath)
		if err != nil {
			return fmt.Errorf("creating %q: %w", faPath, err)
		}
		defer faFile.Close()
		if err := export.FirstActivation(faFile, rec.CurrentSeries().Episodes); err != nil {
			return fmt.Errorf("writing first-activation csv: %w", err)
		}
		log.Infof("wrote first-activation times to %s", faPath)
	}

	return nil
}

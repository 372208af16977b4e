package main

import (
	"os"

	"golang.org/x/term"

	"failpolicy-sim/internal/sim"
)

// writerOptions selects the output channels for a run.
type writerOptions struct {
	scenario  string
	jsonOut   bool
	tui       bool
	printOnly bool
	logFile   string
}

// newWriters sets up outcome and report writers based on flags and env vars.
// It returns the writers and a cleanup function to close any resources.
func newWriters(opts writerOptions) (sim.OutcomeWriter, sim.ReportWriter, func(), error) {
	cleanup := func() {}

	ow, rw, closer, err := baseWriters(opts)
	if err != nil {
		return nil, nil, nil, err
	}
	if closer != nil {
		cleanup = closer
	}
	if opts.logFile == "" {
		return ow, rw, cleanup, nil
	}

	fw, err := sim.NewFileWriter(opts.logFile, opts.logFile+".reports")
	if err != nil {
		cleanup()
		return nil, nil, nil, err
	}
	mw := sim.NewMultiWriter([]sim.OutcomeWriter{ow, fw}, []sim.ReportWriter{rw, fw})
	prev := cleanup
	cleanup = func() {
		fw.Close()
		prev()
	}
	return mw, mw, cleanup, nil
}

// baseWriters chooses the underlying writers based on flags and env vars.
func baseWriters(opts writerOptions) (sim.OutcomeWriter, sim.ReportWriter, func(), error) {
	if opts.tui {
		tw := sim.NewTUIWriter(opts.scenario)
		return tw, tw, func() { tw.Close() }, nil
	}
	if !opts.printOnly && os.Getenv("GREPTIMEDB_ENDPOINT") != "" {
		endpoint := os.Getenv("GREPTIMEDB_ENDPOINT")
		database := os.Getenv("GREPTIMEDB_DATABASE")
		if database == "" {
			database = "public"
		}
		w, err := sim.NewGreptimeDBWriter(endpoint, database)
		if err != nil {
			return nil, nil, nil, err
		}
		return w, w, nil, nil
	}
	if opts.jsonOut {
		w := sim.NewJSONStdoutWriter()
		return w, w, nil, nil
	}
	if term.IsTerminal(int(os.Stdout.Fd())) {
		w := sim.NewColorStdoutWriter(opts.scenario)
		return w, w, nil, nil
	}
	w := sim.NewStdoutWriter()
	return w, w, nil, nil
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"failpolicy-sim/internal/sim"
)

var (
	replayInput string
	replaySpeed float64
	replayJSON  bool
)

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Replay a recorded outcome log",
	Long:  "replay feeds outcome rows from a JSONL log back through an output writer, pacing them by their recorded timestamps.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if replayInput == "" {
			return fmt.Errorf("input file required")
		}
		ow, _, cleanup, err := newWriters(writerOptions{
			scenario:  "replay",
			jsonOut:   replayJSON,
			printOnly: true,
		})
		if err != nil {
			return err
		}
		defer cleanup()
		return sim.ReplayLogFile(replayInput, ow, replaySpeed)
	},
}

func init() {
	replayCmd.Flags().StringVar(&replayInput, "input", "", "Path to outcome log file")
	replayCmd.Flags().Float64Var(&replaySpeed, "speed", 1.0, "Playback speed multiplier")
	replayCmd.Flags().BoolVar(&replayJSON, "json", false, "Emit replayed rows as JSON lines")
	replayCmd.MarkFlagRequired("input")
}

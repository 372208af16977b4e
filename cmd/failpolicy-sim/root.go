package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"failpolicy-sim/internal/logging"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "failpolicy-sim",
	Short: "Failure-policy simulation toolkit",
	Long:  "failpolicy-sim drives fixed request sequences through fail-fast, graceful and fallback handling policies and reports per-run availability.",
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "info", "Log level (debug, info, warn, error)")
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(replayCmd)
}

// newLogger builds the process logger from the --log flag.
func newLogger() (*slog.Logger, error) {
	level, err := logging.ParseLevel(logLevel)
	if err != nil {
		return nil, err
	}
	return logging.New(level), nil
}

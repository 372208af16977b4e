package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"failpolicy-sim/internal/config"
	"failpolicy-sim/internal/logging"
	"failpolicy-sim/internal/policy"
	"failpolicy-sim/internal/scenario"
	"failpolicy-sim/internal/service"
	"failpolicy-sim/internal/sim"
)

var (
	runConfigPath string
	runSchemaPath string
	runScenario   string
	runPolicy     string
	runJSON       bool
	runTUI        bool
	runLogFile    string
	runDrop       string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one policy against a request sequence",
	Long:  "run drives the configured request sequence through a single failure-handling policy and prints the availability report.",
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := newLogger()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(runConfigPath, runSchemaPath)
		if err != nil {
			return err
		}
		if runScenario != "" {
			cfg.Scenario = runScenario
			cfg.ScenarioFile = ""
			cfg.Requests = nil
		}
		units, scenarioName, err := cfg.Resolve()
		if err != nil {
			return err
		}
		if runDrop != "" {
			injector, err := scenario.ParseInjector(runDrop)
			if err != nil {
				return err
			}
			units = injector.Apply(units)
		}

		exec, err := policy.New(runPolicy, service.New(cfg.Service.FailureRate, cfg.Service.Fallback, cmd.ErrOrStderr()))
		if err != nil {
			return err
		}

		ow, rw, cleanup, err := newWriters(writerOptions{
			scenario: scenarioName,
			jsonOut:  runJSON,
			tui:      runTUI,
			logFile:  runLogFile,
		})
		if err != nil {
			return err
		}
		defer cleanup()

		ctx := logging.NewContext(context.Background(), log)
		runner := sim.NewRunner(ow, rw)
		runner.Run(ctx, exec, scenarioName, units)

		if runTUI {
			// The TUI owns the terminal until the user quits it.
			sigs := make(chan os.Signal, 1)
			signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
			<-sigs
		}
		return nil
	},
}

func init() {
	runCmd.Flags().StringVar(&runConfigPath, "config", "", "Path to simulation configuration YAML (defaults to built-ins)")
	runCmd.Flags().StringVar(&runSchemaPath, "schema", "schemas/simulation.cue", "Path to CUE schema file")
	runCmd.Flags().StringVar(&runScenario, "scenario", "", "Built-in scenario name, overrides the config")
	runCmd.Flags().StringVar(&runPolicy, "policy", "safe", "Failure policy (unsafe, safe, resilient)")
	runCmd.Flags().BoolVar(&runJSON, "json", false, "Emit outcomes and report as JSON lines")
	runCmd.Flags().BoolVar(&runTUI, "tui", false, "Render outcomes in an interactive TUI")
	runCmd.Flags().StringVar(&runLogFile, "log-file", "", "Path to export outcome logs (JSONL)")
	runCmd.Flags().StringVar(&runDrop, "drop", "", "Comma-separated 1-indexed positions to knock out, e.g. 3,6")
}

// loadConfig loads and validates the YAML config, falling back to the
// built-in defaults when no path is given.
func loadConfig(path, schemaPath string) (*config.SimulationConfig, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path, schemaPath)
}

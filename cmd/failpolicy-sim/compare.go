package main

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"failpolicy-sim/internal/logging"
	"failpolicy-sim/internal/policy"
	"failpolicy-sim/internal/scenario"
	"failpolicy-sim/internal/service"
	"failpolicy-sim/internal/sim"
)

var (
	compareConfigPath string
	compareSchemaPath string
	compareScenario   string
	compareJSON       bool
	compareLogFile    string
	compareDrop       string
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Run every policy against the same sequence",
	Long:  "compare drives the same request sequence through each configured policy and renders a side-by-side availability table.",
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := newLogger()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(compareConfigPath, compareSchemaPath)
		if err != nil {
			return err
		}
		if compareScenario != "" {
			cfg.Scenario = compareScenario
			cfg.ScenarioFile = ""
			cfg.Requests = nil
		}
		units, scenarioName, err := cfg.Resolve()
		if err != nil {
			return err
		}
		if compareDrop != "" {
			injector, err := scenario.ParseInjector(compareDrop)
			if err != nil {
				return err
			}
			units = injector.Apply(units)
		}

		ow, rw, cleanup, err := newWriters(writerOptions{
			scenario: scenarioName,
			jsonOut:  compareJSON,
			logFile:  compareLogFile,
		})
		if err != nil {
			return err
		}
		defer cleanup()

		ctx := logging.NewContext(context.Background(), log)
		runner := sim.NewRunner(ow, rw)

		var reports []sim.Report
		for _, name := range cfg.PolicyNames(policy.Names()) {
			svc := service.New(cfg.Service.FailureRate, cfg.Service.Fallback, cmd.ErrOrStderr())
			exec, err := policy.New(name, svc)
			if err != nil {
				return err
			}
			reports = append(reports, runner.Run(ctx, exec, scenarioName, units))
		}

		fmt.Fprintln(cmd.OutOrStdout())
		fmt.Fprintln(cmd.OutOrStdout(), renderComparison(reports))
		return nil
	},
}

func init() {
	compareCmd.Flags().StringVar(&compareConfigPath, "config", "", "Path to simulation configuration YAML (defaults to built-ins)")
	compareCmd.Flags().StringVar(&compareSchemaPath, "schema", "schemas/simulation.cue", "Path to CUE schema file")
	compareCmd.Flags().StringVar(&compareScenario, "scenario", "", "Built-in scenario name, overrides the config")
	compareCmd.Flags().BoolVar(&compareJSON, "json", false, "Emit outcomes and reports as JSON lines")
	compareCmd.Flags().StringVar(&compareLogFile, "log-file", "", "Path to export outcome logs (JSONL)")
	compareCmd.Flags().StringVar(&compareDrop, "drop", "", "Comma-separated 1-indexed positions to knock out, e.g. 3,6")
}

// renderComparison renders the per-policy reports as a bordered table.
func renderComparison(reports []sim.Report) string {
	headerStyle := lipgloss.NewStyle().Bold(true)
	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Headers("POLICY", "SUCCESSFUL", "FAILED", "AVAILABILITY", "ABORTED AT", "ELAPSED")
	for _, r := range reports {
		abort := "-"
		if r.AbortIndex != nil {
			abort = fmt.Sprintf("request %d", *r.AbortIndex)
		}
		t.Row(r.Policy,
			fmt.Sprintf("%d", r.Successful),
			fmt.Sprintf("%d", r.Failed),
			fmt.Sprintf("%.1f%%", r.AvailabilityPct),
			abort,
			r.Elapsed.String())
	}
	return t.Render()
}

// ColorStdoutWriter prints human-friendly, colorized outcomes to STDOUT.
package sim

import (
	"fmt"
	"io"
	"os"
	"sync"
	"text/tabwriter"

	"failpolicy-sim/internal/policy"
	"failpolicy-sim/internal/record"
)

const (
	colorReset   = "\x1b[0m"
	colorRed     = "\x1b[31m"
	colorGreen   = "\x1b[32m"
	colorYellow  = "\x1b[33m"
	colorBlue    = "\x1b[34m"
	colorMagenta = "\x1b[35m"
	colorCyan    = "\x1b[36m"
	colorGray    = "\x1b[90m"
)

// ColorStdoutWriter prints outcome rows using ANSI colors, with a one-time
// scenario overview before the first row.
type ColorStdoutWriter struct {
	scenario string
	out      io.Writer
	once     sync.Once
}

// NewColorStdoutWriter creates a ColorStdoutWriter writing to os.Stdout.
func NewColorStdoutWriter(scenarioName string) *ColorStdoutWriter {
	return &ColorStdoutWriter{scenario: scenarioName, out: os.Stdout}
}

func (w *ColorStdoutWriter) printOverview(policyName string) {
	fmt.Fprintf(w.out, "%s=== simulating production load: policy=%s scenario=%s ===%s\n",
		colorCyan, policyName, w.scenario, colorReset)
}

// Write outputs a single colorized outcome row.
func (w *ColorStdoutWriter) Write(row record.OutcomeRow) error {
	w.once.Do(func() { w.printOverview(row.Policy) })

	var line string
	switch row.Kind {
	case string(policy.KindProcessed):
		line = fmt.Sprintf("  %srequest %d: ✓%s", colorGreen, row.Index, colorReset)
	case string(policy.KindRecoveredError):
		line = fmt.Sprintf("  %srequest %d: ✗ error logged: %s%s", colorYellow, row.Index, row.Detail, colorReset)
	case string(policy.KindFallbackUsed):
		line = fmt.Sprintf("  %srequest %d: ⚠ degraded (fallback)%s", colorMagenta, row.Index, colorReset)
	case string(policy.KindFatalAbort):
		line = fmt.Sprintf("  %srequest %d: ✗ SERVICE CRASHED, remaining requests lost%s", colorRed, row.Index, colorReset)
	case record.KindSkipped:
		line = fmt.Sprintf("  %srequest %d: ✗ dropped (run aborted)%s", colorGray, row.Index, colorReset)
	default:
		line = fmt.Sprintf("  request %d: %s", row.Index, row.Kind)
	}
	_, err := fmt.Fprintln(w.out, line)
	return err
}

// WriteBatch outputs multiple colorized outcome rows.
func (w *ColorStdoutWriter) WriteBatch(rows []record.OutcomeRow) error {
	for _, r := range rows {
		if err := w.Write(r); err != nil {
			return err
		}
	}
	return nil
}

// WriteReport outputs an aligned, colorized run summary.
func (w *ColorStdoutWriter) WriteReport(rep record.ReportRow) error {
	fmt.Fprintln(w.out)
	tw := tabwriter.NewWriter(w.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  policy\t%s%s%s\n", colorBlue, rep.Policy, colorReset)
	fmt.Fprintf(tw, "  successful\t%s%d%s\n", colorGreen, rep.Successful, colorReset)
	fmt.Fprintf(tw, "  failed\t%s%d%s\n", colorRed, rep.Failed, colorReset)
	fmt.Fprintf(tw, "  availability\t%s%.1f%%%s\n", colorCyan, rep.AvailabilityPct, colorReset)
	fmt.Fprintf(tw, "  elapsed\t%s\n", rep.Elapsed)
	if rep.AbortIndex != nil {
		fmt.Fprintf(tw, "  aborted at\t%srequest %d%s\n", colorRed, *rep.AbortIndex, colorReset)
	}
	return tw.Flush()
}

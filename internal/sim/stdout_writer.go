// Writer implementation printing outcomes to STDOUT
package sim

import (
	"fmt"
	"io"
	"os"

	"failpolicy-sim/internal/policy"
	"failpolicy-sim/internal/record"
)

// StdoutWriter prints one human-readable progress line per outcome row.
type StdoutWriter struct {
	out io.Writer
}

// NewStdoutWriter creates a StdoutWriter writing to os.Stdout.
func NewStdoutWriter() *StdoutWriter {
	return &StdoutWriter{out: os.Stdout}
}

// Write outputs a single outcome row.
func (w *StdoutWriter) Write(row record.OutcomeRow) error {
	_, err := fmt.Fprintln(w.out, formatOutcomeLine(row))
	return err
}

// WriteBatch outputs multiple outcome rows.
func (w *StdoutWriter) WriteBatch(rows []record.OutcomeRow) error {
	for _, r := range rows {
		if err := w.Write(r); err != nil {
			return err
		}
	}
	return nil
}

// WriteReport outputs the run summary.
func (w *StdoutWriter) WriteReport(rep record.ReportRow) error {
	fmt.Fprintf(w.out, "\nresults: %d successful, %d failed\n", rep.Successful, rep.Failed)
	fmt.Fprintf(w.out, "availability: %.1f%%\n", rep.AvailabilityPct)
	fmt.Fprintf(w.out, "elapsed: %s\n", rep.Elapsed)
	if rep.AbortIndex != nil {
		fmt.Fprintf(w.out, "aborted at request %d\n", *rep.AbortIndex)
	}
	return nil
}

func formatOutcomeLine(row record.OutcomeRow) string {
	switch row.Kind {
	case string(policy.KindProcessed):
		return fmt.Sprintf("  request %d: ✓", row.Index)
	case string(policy.KindRecoveredError):
		return fmt.Sprintf("  request %d: ✗ error logged: %s", row.Index, row.Detail)
	case string(policy.KindFallbackUsed):
		return fmt.Sprintf("  request %d: ⚠ degraded (fallback)", row.Index)
	case string(policy.KindFatalAbort):
		return fmt.Sprintf("  request %d: ✗ service crashed, remaining requests lost", row.Index)
	case record.KindSkipped:
		return fmt.Sprintf("  request %d: ✗ dropped (run aborted)", row.Index)
	}
	return fmt.Sprintf("  request %d: %s", row.Index, row.Kind)
}

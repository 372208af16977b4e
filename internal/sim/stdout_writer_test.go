package sim

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"failpolicy-sim/internal/record"
)

func TestStdoutWriterLines(t *testing.T) {
	buf := &bytes.Buffer{}
	w := &StdoutWriter{out: buf}

	cases := []struct {
		kind string
		want string
	}{
		{"processed", "request 1: ✓"},
		{"recovered_error", "error logged"},
		{"fallback_used", "degraded (fallback)"},
		{"fatal_abort", "service crashed"},
		{"skipped", "dropped (run aborted)"},
	}
	for _, tc := range cases {
		buf.Reset()
		row := record.OutcomeRow{Index: 1, Kind: tc.kind, Detail: "missing payload", Timestamp: time.Unix(0, 0)}
		if err := w.Write(row); err != nil {
			t.Fatalf("write %s: %v", tc.kind, err)
		}
		if !strings.Contains(buf.String(), tc.want) {
			t.Errorf("kind %s: output %q missing %q", tc.kind, buf.String(), tc.want)
		}
	}
}

func TestStdoutWriterReport(t *testing.T) {
	buf := &bytes.Buffer{}
	w := &StdoutWriter{out: buf}

	abort := 3
	rep := record.ReportRow{Successful: 2, Failed: 5, AvailabilityPct: 200.0 / 7, Elapsed: time.Millisecond, AbortIndex: &abort}
	if err := w.WriteReport(rep); err != nil {
		t.Fatalf("WriteReport: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "2 successful, 5 failed") {
		t.Errorf("missing result counts: %q", out)
	}
	if !strings.Contains(out, "availability: 28.6%") {
		t.Errorf("missing availability: %q", out)
	}
	if !strings.Contains(out, "aborted at request 3") {
		t.Errorf("missing abort line: %q", out)
	}
}

func TestStdoutWriterReportNoAbort(t *testing.T) {
	buf := &bytes.Buffer{}
	w := &StdoutWriter{out: buf}

	rep := record.ReportRow{Successful: 5, Failed: 0, AvailabilityPct: 100}
	if err := w.WriteReport(rep); err != nil {
		t.Fatalf("WriteReport: %v", err)
	}
	if strings.Contains(buf.String(), "aborted") {
		t.Errorf("unexpected abort line: %q", buf.String())
	}
}

func TestColorStdoutWriterOverviewOnce(t *testing.T) {
	buf := &bytes.Buffer{}
	w := &ColorStdoutWriter{scenario: "reference", out: buf}

	row := record.OutcomeRow{Policy: "safe", Index: 1, Kind: "processed", Timestamp: time.Unix(0, 0)}
	if err := w.Write(row); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	output := buf.String()
	if !strings.Contains(output, "simulating production load") {
		t.Fatalf("overview not printed: %q", output)
	}
	if !strings.Contains(output, "\x1b[") {
		t.Fatalf("expected color codes in output: %q", output)
	}

	buf.Reset()
	if err := w.Write(row); err != nil {
		t.Fatalf("second write failed: %v", err)
	}
	if strings.Contains(buf.String(), "simulating production load") {
		t.Fatalf("overview printed more than once")
	}
}

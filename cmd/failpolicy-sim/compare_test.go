package main

import (
	"strings"
	"testing"
	"time"

	"failpolicy-sim/internal/sim"
)

func TestRenderComparison(t *testing.T) {
	abort := 3
	reports := []sim.Report{
		{Policy: "unsafe", Total: 7, Successful: 2, Failed: 5, AvailabilityPct: 200.0 / 7, AbortIndex: &abort, Elapsed: time.Millisecond},
		{Policy: "safe", Total: 7, Successful: 5, Failed: 2, AvailabilityPct: 500.0 / 7, Elapsed: time.Millisecond},
	}
	out := renderComparison(reports)
	if !strings.Contains(out, "unsafe") || !strings.Contains(out, "safe") {
		t.Fatalf("missing policy rows: %q", out)
	}
	if !strings.Contains(out, "request 3") {
		t.Errorf("missing abort marker: %q", out)
	}
	if !strings.Contains(out, "28.6%") || !strings.Contains(out, "71.4%") {
		t.Errorf("missing availability values: %q", out)
	}
}

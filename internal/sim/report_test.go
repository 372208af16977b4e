package sim

import (
	"math"
	"strings"
	"testing"
	"time"
)

func TestAvailabilityPct(t *testing.T) {
	tests := []struct {
		successful, total int
		want              float64
	}{
		{5, 7, 500.0 / 7},
		{7, 7, 100},
		{0, 7, 0},
		{0, 0, 0},
	}
	for _, tt := range tests {
		if got := availabilityPct(tt.successful, tt.total); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("availabilityPct(%d, %d) = %v, want %v", tt.successful, tt.total, got, tt.want)
		}
	}
}

func TestReport_String(t *testing.T) {
	idx := 3
	rep := Report{
		Policy:          "unsafe",
		Scenario:        "reference",
		Total:           7,
		Successful:      2,
		Failed:          5,
		Elapsed:         time.Millisecond,
		AvailabilityPct: availabilityPct(2, 7),
		AbortIndex:      &idx,
	}
	s := rep.String()
	if !strings.Contains(s, "abort_index=3") {
		t.Errorf("missing abort index in %q", s)
	}
	if !strings.Contains(s, "availability=28.6%") {
		t.Errorf("missing availability in %q", s)
	}

	rep.AbortIndex = nil
	if strings.Contains(rep.String(), "abort_index") {
		t.Error("abort index should not be rendered when unset")
	}
}

func TestReport_Row(t *testing.T) {
	ts := time.Unix(0, 0).UTC()
	rep := Report{RunID: "r1", Policy: "safe", Scenario: "clean", Total: 5, Successful: 5, AvailabilityPct: 100}
	row := rep.Row(ts)
	if row.RunID != "r1" || row.Policy != "safe" || row.Scenario != "clean" {
		t.Errorf("unexpected row %+v", row)
	}
	if row.Timestamp != ts {
		t.Errorf("timestamp = %v, want %v", row.Timestamp, ts)
	}
	if row.AbortIndex != nil {
		t.Error("abort index should pass through as nil")
	}
}

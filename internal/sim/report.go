package sim

import (
	"fmt"
	"time"

	"failpolicy-sim/internal/record"
)

// Report aggregates one run of a policy over a request sequence. The counts
// always satisfy Successful+Failed == Total; requests short-circuited by an
// abort are counted failed, never dropped.
type Report struct {
	RunID           string
	Policy          string
	Scenario        string
	Total           int
	Successful      int
	Failed          int
	Elapsed         time.Duration
	AvailabilityPct float64
	// AbortIndex is the 1-indexed position of the request whose fatal fault
	// ended the run. Nil for safe and resilient runs, and for unsafe runs
	// that saw no absent input.
	AbortIndex *int
}

// availabilityPct uses the original sequence length as denominator so an
// early abort still reflects true service degradation.
func availabilityPct(successful, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(successful) / float64(total) * 100
}

// Row converts the report into an export record.
func (r Report) Row(ts time.Time) record.ReportRow {
	return record.ReportRow{
		RunID:           r.RunID,
		Policy:          r.Policy,
		Scenario:        r.Scenario,
		Total:           r.Total,
		Successful:      r.Successful,
		Failed:          r.Failed,
		Elapsed:         r.Elapsed,
		AvailabilityPct: r.AvailabilityPct,
		AbortIndex:      r.AbortIndex,
		Timestamp:       ts,
	}
}

func (r Report) String() string {
	s := fmt.Sprintf("policy=%s scenario=%s successful=%d failed=%d availability=%.1f%% elapsed=%s",
		r.Policy, r.Scenario, r.Successful, r.Failed, r.AvailabilityPct, r.Elapsed)
	if r.AbortIndex != nil {
		s += fmt.Sprintf(" abort_index=%d", *r.AbortIndex)
	}
	return s
}

// Outcome and report row structs with greptime tags
package record

import (
	"os"
	"time"
)

// KindSkipped marks a request short-circuited after an abort; it was never
// dispatched to a policy, so no policy.Outcome exists for it.
const KindSkipped = "skipped"

// OutcomeRow represents one per-request outcome record for GreptimeDB.
type OutcomeRow struct {
	RunID      string    `json:"run_id"`     // TAG
	Policy     string    `json:"policy"`     // TAG
	Scenario   string    `json:"scenario"`   // TAG
	Index      int       `json:"index"`      // FIELD, 1-indexed position
	RequestID  string    `json:"request_id"` // FIELD
	Kind       string    `json:"kind"`       // FIELD
	Detail     string    `json:"detail"`     // FIELD
	Dispatched bool      `json:"dispatched"` // FIELD, false for skipped rows
	Timestamp  time.Time `json:"ts"`         // TIME INDEX
}

// OutcomeTableName holds the table name used when writing outcomes to
// GreptimeDB. It defaults to "policy_outcomes" but can be overridden via the
// OUTCOME_TABLE environment variable.
var OutcomeTableName = func() string {
	if env := os.Getenv("OUTCOME_TABLE"); env != "" {
		return env
	}
	return "policy_outcomes"
}()

func (OutcomeRow) TableName() string {
	return OutcomeTableName
}

// ReportRow represents one aggregated run report record for GreptimeDB.
type ReportRow struct {
	RunID           string        `json:"run_id"`   // TAG
	Policy          string        `json:"policy"`   // TAG
	Scenario        string        `json:"scenario"` // TAG
	Total           int           `json:"total"`
	Successful      int           `json:"successful"`
	Failed          int           `json:"failed"`
	Elapsed         time.Duration `json:"elapsed"`
	AvailabilityPct float64       `json:"availability_pct"`
	AbortIndex      *int          `json:"abort_index,omitempty"`
	Timestamp       time.Time     `json:"ts"` // TIME INDEX
}

// ReportTableName holds the table name used when writing reports to
// GreptimeDB, overridable via the REPORT_TABLE environment variable.
var ReportTableName = func() string {
	if env := os.Getenv("REPORT_TABLE"); env != "" {
		return env
	}
	return "policy_reports"
}()

func (ReportRow) TableName() string {
	return ReportTableName
}

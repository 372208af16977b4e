// Runner driving request sequences through failure-handling policies.
package sim

import (
	"context"
	"time"

	"github.com/google/uuid"

	"failpolicy-sim/internal/logging"
	"failpolicy-sim/internal/policy"
	"failpolicy-sim/internal/record"
	"failpolicy-sim/internal/service"
	"failpolicy-sim/internal/workload"
)

// OutcomeWriter is an interface to support different output writers. The
// runner emits one row per request as the run progresses; rows are
// observational and not part of the report contract.
type OutcomeWriter interface {
	Write(record.OutcomeRow) error
}

// Optional: writers can also support batch mode
type batchOutcomeWriter interface {
	WriteBatch([]record.OutcomeRow) error
}

// ReportWriter receives the aggregated report once a run finishes.
type ReportWriter interface {
	WriteReport(record.ReportRow) error
}

// Runner drives a fixed ordered request sequence through one policy
// executor, strictly sequentially, and assembles exactly one report per
// invocation. It holds no state across runs.
type Runner struct {
	writer  OutcomeWriter
	reports ReportWriter
	now     func() time.Time
}

// NewRunner creates a Runner. Either writer may be nil to disable that
// output channel.
func NewRunner(writer OutcomeWriter, reports ReportWriter) *Runner {
	return &Runner{writer: writer, reports: reports, now: time.Now}
}

// Run processes units in order, one at a time. Per-request faults are all
// captured inside the report; nothing is surfaced to the caller as an error.
func (r *Runner) Run(ctx context.Context, exec policy.Executor, scenarioName string, units []workload.RequestUnit) Report {
	log := logging.FromContext(ctx)
	runID := uuid.New().String()
	started := r.now()

	rep := Report{RunID: runID, Policy: exec.Name(), Scenario: scenarioName, Total: len(units)}
	rows := make([]record.OutcomeRow, 0, len(units))

	for i, unit := range units {
		out := r.dispatch(exec, unit)
		rows = append(rows, record.OutcomeRow{
			RunID:      runID,
			Policy:     exec.Name(),
			Scenario:   scenarioName,
			Index:      i + 1,
			RequestID:  unit.ID,
			Kind:       string(out.Kind),
			Detail:     outcomeDetail(out),
			Dispatched: true,
			Timestamp:  r.now().UTC(),
		})

		if out.Kind == policy.KindFatalAbort {
			idx := i + 1
			rep.AbortIndex = &idx
			// The aborting request and everything after it count as failed.
			rep.Failed = len(units) - i
			log.Warn("run aborted by fatal fault",
				"policy", exec.Name(), "index", idx, "remaining", len(units)-idx)
			for j := i + 1; j < len(units); j++ {
				rows = append(rows, record.OutcomeRow{
					RunID:      runID,
					Policy:     exec.Name(),
					Scenario:   scenarioName,
					Index:      j + 1,
					RequestID:  units[j].ID,
					Kind:       record.KindSkipped,
					Detail:     "short-circuited after abort",
					Dispatched: false,
					Timestamp:  r.now().UTC(),
				})
			}
			break
		}

		if out.Succeeded() {
			rep.Successful++
		} else {
			rep.Failed++
		}
	}

	rep.Elapsed = r.now().Sub(started)
	rep.AvailabilityPct = availabilityPct(rep.Successful, rep.Total)

	r.flush(ctx, rows, rep)
	log.Info("run complete", "policy", exec.Name(), "scenario", scenarioName,
		"successful", rep.Successful, "failed", rep.Failed, "availability_pct", rep.AvailabilityPct)
	return rep
}

// dispatch runs one request inside a protected scope so a fatal service
// fault is caught and classified at the request boundary instead of
// unwinding through the runner. Foreign panics are genuine bugs and are
// re-raised.
func (r *Runner) dispatch(exec policy.Executor, unit workload.RequestUnit) (out policy.Outcome) {
	defer func() {
		rec := recover()
		if rec == nil {
			return
		}
		fe, ok := rec.(service.FatalError)
		if !ok {
			panic(rec)
		}
		out = policy.Outcome{Kind: policy.KindFatalAbort, Err: fe.Error()}
	}()
	return exec.Process(unit)
}

func (r *Runner) flush(ctx context.Context, rows []record.OutcomeRow, rep Report) {
	log := logging.FromContext(ctx)

	if r.writer != nil {
		// Batch support if writer implements WriteBatch
		if bw, ok := r.writer.(batchOutcomeWriter); ok {
			if err := bw.WriteBatch(rows); err != nil {
				log.Error("batch write failed", "err", err)
			}
		} else {
			for _, row := range rows {
				if err := r.writer.Write(row); err != nil {
					log.Error("write failed", "request_id", row.RequestID, "err", err)
				}
			}
		}
	}

	if r.reports != nil {
		if err := r.reports.WriteReport(rep.Row(r.now().UTC())); err != nil {
			log.Error("report write failed", "run_id", rep.RunID, "err", err)
		}
	}
}

func outcomeDetail(out policy.Outcome) string {
	switch out.Kind {
	case policy.KindRecoveredError, policy.KindFatalAbort:
		return out.Err
	}
	return out.Payload
}

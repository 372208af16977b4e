package sim

import (
	"context"
	"net"
	"strconv"

	greptime "github.com/GreptimeTeam/greptimedb-ingester-go"
	"github.com/GreptimeTeam/greptimedb-ingester-go/table"
	"github.com/GreptimeTeam/greptimedb-ingester-go/table/types"
	gpb "github.com/GreptimeTeam/greptime-proto/go/greptime/v1"

	"failpolicy-sim/internal/record"
)

// greptimeClient abstracts the ingester client for testing.
type greptimeClient interface {
	Write(ctx context.Context, tables ...*table.Table) (*gpb.GreptimeResponse, error)
}

// GreptimeDBWriter exports outcome and report rows to GreptimeDB via the
// ingester client. Tables are auto-created on first write.
type GreptimeDBWriter struct {
	client       greptimeClient
	outcomeTable string
	reportTable  string
}

// NewGreptimeDBWriter creates a new GreptimeDB writer. endpoint is
// "host" or "host:port".
func NewGreptimeDBWriter(endpoint, database string) (*GreptimeDBWriter, error) {
	host := endpoint
	cfg := greptime.NewConfig(host)
	if h, p, err := net.SplitHostPort(endpoint); err == nil {
		port, err := strconv.Atoi(p)
		if err != nil {
			return nil, err
		}
		cfg = greptime.NewConfig(h).WithPort(port)
	}
	cfg = cfg.WithDatabase(database)

	client, err := greptime.NewClient(cfg)
	if err != nil {
		return nil, err
	}
	return &GreptimeDBWriter{
		client:       client,
		outcomeTable: record.OutcomeTableName,
		reportTable:  record.ReportTableName,
	}, nil
}

// Write inserts a single outcome row.
func (w *GreptimeDBWriter) Write(row record.OutcomeRow) error {
	return w.WriteBatch([]record.OutcomeRow{row})
}

// WriteBatch inserts multiple outcome rows.
func (w *GreptimeDBWriter) WriteBatch(rows []record.OutcomeRow) error {
	if len(rows) == 0 {
		return nil
	}

	tbl, err := table.New(w.outcomeTable)
	if err != nil {
		return err
	}
	if err := tbl.AddTagColumn("run_id", types.STRING); err != nil {
		return err
	}
	if err := tbl.AddTagColumn("policy", types.STRING); err != nil {
		return err
	}
	if err := tbl.AddTagColumn("scenario", types.STRING); err != nil {
		return err
	}
	if err := tbl.AddFieldColumn("index", types.INT64); err != nil {
		return err
	}
	if err := tbl.AddFieldColumn("request_id", types.STRING); err != nil {
		return err
	}
	if err := tbl.AddFieldColumn("kind", types.STRING); err != nil {
		return err
	}
	if err := tbl.AddFieldColumn("detail", types.STRING); err != nil {
		return err
	}
	if err := tbl.AddFieldColumn("dispatched", types.BOOLEAN); err != nil {
		return err
	}
	if err := tbl.AddTimestampColumn("ts", types.TIMESTAMP_MILLISECOND); err != nil {
		return err
	}

	for _, r := range rows {
		if err := tbl.AddRow(r.RunID, r.Policy, r.Scenario,
			int64(r.Index), r.RequestID, r.Kind, r.Detail, r.Dispatched, r.Timestamp); err != nil {
			return err
		}
	}

	_, err = w.client.Write(context.Background(), tbl)
	return err
}

// WriteReport inserts a single report row.
func (w *GreptimeDBWriter) WriteReport(rep record.ReportRow) error {
	tbl, err := table.New(w.reportTable)
	if err != nil {
		return err
	}
	if err := tbl.AddTagColumn("run_id", types.STRING); err != nil {
		return err
	}
	if err := tbl.AddTagColumn("policy", types.STRING); err != nil {
		return err
	}
	if err := tbl.AddTagColumn("scenario", types.STRING); err != nil {
		return err
	}
	if err := tbl.AddFieldColumn("total", types.INT64); err != nil {
		return err
	}
	if err := tbl.AddFieldColumn("successful", types.INT64); err != nil {
		return err
	}
	if err := tbl.AddFieldColumn("failed", types.INT64); err != nil {
		return err
	}
	if err := tbl.AddFieldColumn("elapsed_ms", types.FLOAT64); err != nil {
		return err
	}
	if err := tbl.AddFieldColumn("availability_pct", types.FLOAT64); err != nil {
		return err
	}
	// 0 means no abort; real abort indexes are 1-based.
	if err := tbl.AddFieldColumn("abort_index", types.INT64); err != nil {
		return err
	}
	if err := tbl.AddTimestampColumn("ts", types.TIMESTAMP_MILLISECOND); err != nil {
		return err
	}

	abortIdx := int64(0)
	if rep.AbortIndex != nil {
		abortIdx = int64(*rep.AbortIndex)
	}
	if err := tbl.AddRow(rep.RunID, rep.Policy, rep.Scenario,
		int64(rep.Total), int64(rep.Successful), int64(rep.Failed),
		float64(rep.Elapsed.Microseconds())/1000.0, rep.AvailabilityPct,
		abortIdx, rep.Timestamp); err != nil {
		return err
	}

	_, err = w.client.Write(context.Background(), tbl)
	return err
}

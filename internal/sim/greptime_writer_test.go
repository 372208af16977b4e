package sim

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/GreptimeTeam/greptimedb-ingester-go/table"

	gpb "github.com/GreptimeTeam/greptime-proto/go/greptime/v1"

	"failpolicy-sim/internal/record"
)

type mockGreptimeClient struct {
	tables []*table.Table
	err    error
}

func (m *mockGreptimeClient) Write(_ context.Context, tables ...*table.Table) (*gpb.GreptimeResponse, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.tables = append(m.tables, tables...)
	return &gpb.GreptimeResponse{}, nil
}

func testOutcomeRow() record.OutcomeRow {
	return record.OutcomeRow{
		RunID:      "run-1",
		Policy:     "safe",
		Scenario:   "reference",
		Index:      3,
		RequestID:  "req-3",
		Kind:       "recovered_error",
		Detail:     "missing payload",
		Dispatched: true,
		Timestamp:  time.Now(),
	}
}

func TestGreptimeDBWriter_Write(t *testing.T) {
	mock := &mockGreptimeClient{}
	w := &GreptimeDBWriter{
		client:       mock,
		outcomeTable: record.OutcomeTableName,
		reportTable:  record.ReportTableName,
	}

	if err := w.Write(testOutcomeRow()); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if len(mock.tables) != 1 {
		t.Fatalf("expected 1 table written, got %d", len(mock.tables))
	}
	rows := mock.tables[0].GetRows()
	if len(rows.Rows) != 1 {
		t.Errorf("expected 1 row, got %d", len(rows.Rows))
	}
}

func TestGreptimeDBWriter_WriteBatch(t *testing.T) {
	mock := &mockGreptimeClient{}
	w := &GreptimeDBWriter{
		client:       mock,
		outcomeTable: record.OutcomeTableName,
		reportTable:  record.ReportTableName,
	}

	batch := []record.OutcomeRow{testOutcomeRow(), testOutcomeRow(), testOutcomeRow()}
	if err := w.WriteBatch(batch); err != nil {
		t.Fatalf("WriteBatch failed: %v", err)
	}
	if len(mock.tables) != 1 {
		t.Fatalf("expected batch in a single table, got %d tables", len(mock.tables))
	}
	rows := mock.tables[0].GetRows()
	if len(rows.Rows) != 3 {
		t.Errorf("expected 3 rows, got %d", len(rows.Rows))
	}
}

func TestGreptimeDBWriter_WriteBatchEmpty(t *testing.T) {
	mock := &mockGreptimeClient{}
	w := &GreptimeDBWriter{client: mock, outcomeTable: record.OutcomeTableName}

	if err := w.WriteBatch(nil); err != nil {
		t.Fatalf("empty batch should be a no-op, got %v", err)
	}
	if len(mock.tables) != 0 {
		t.Errorf("expected no tables written for empty batch, got %d", len(mock.tables))
	}
}

func TestGreptimeDBWriter_WriteReport(t *testing.T) {
	mock := &mockGreptimeClient{}
	w := &GreptimeDBWriter{
		client:       mock,
		outcomeTable: record.OutcomeTableName,
		reportTable:  record.ReportTableName,
	}

	abort := 3
	rep := record.ReportRow{
		RunID:           "run-1",
		Policy:          "unsafe",
		Scenario:        "reference",
		Total:           7,
		Successful:      2,
		Failed:          5,
		Elapsed:         12 * time.Millisecond,
		AvailabilityPct: 200.0 / 7,
		AbortIndex:      &abort,
		Timestamp:       time.Now(),
	}
	if err := w.WriteReport(rep); err != nil {
		t.Fatalf("WriteReport failed: %v", err)
	}
	if len(mock.tables) != 1 {
		t.Fatalf("expected 1 table written, got %d", len(mock.tables))
	}
}

func TestGreptimeDBWriter_ClientError(t *testing.T) {
	mock := &mockGreptimeClient{err: errors.New("connection refused")}
	w := &GreptimeDBWriter{
		client:       mock,
		outcomeTable: record.OutcomeTableName,
		reportTable:  record.ReportTableName,
	}

	if err := w.Write(testOutcomeRow()); err == nil {
		t.Error("expected error from failing client")
	}
	if err := w.WriteReport(record.ReportRow{RunID: "r"}); err == nil {
		t.Error("expected error from failing client")
	}
}

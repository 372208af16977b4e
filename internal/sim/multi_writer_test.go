package sim

import (
	"testing"

	"failpolicy-sim/internal/record"
)

type countingWriter struct {
	writes  int
	batches int
	reports int
}

func (c *countingWriter) Write(record.OutcomeRow) error { c.writes++; return nil }
func (c *countingWriter) WriteReport(record.ReportRow) error {
	c.reports++
	return nil
}

type countingBatchWriter struct{ countingWriter }

func (c *countingBatchWriter) WriteBatch(rows []record.OutcomeRow) error {
	c.batches++
	return nil
}

func TestMultiWriterFanOut(t *testing.T) {
	a := &countingWriter{}
	b := &countingWriter{}
	mw := NewMultiWriter([]OutcomeWriter{a, b}, []ReportWriter{a})

	if err := mw.Write(record.OutcomeRow{}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if a.writes != 1 || b.writes != 1 {
		t.Fatalf("expected one write each, got %d and %d", a.writes, b.writes)
	}
	if err := mw.WriteReport(record.ReportRow{}); err != nil {
		t.Fatalf("report: %v", err)
	}
	if a.reports != 1 || b.reports != 0 {
		t.Fatalf("report fan-out mismatch: %d and %d", a.reports, b.reports)
	}
}

func TestMultiWriterBatchPreference(t *testing.T) {
	plain := &countingWriter{}
	batch := &countingBatchWriter{}
	mw := NewMultiWriter([]OutcomeWriter{plain, batch}, nil)

	rows := []record.OutcomeRow{{}, {}, {}}
	if err := mw.WriteBatch(rows); err != nil {
		t.Fatalf("batch: %v", err)
	}
	if plain.writes != 3 {
		t.Errorf("plain writer: expected 3 individual writes, got %d", plain.writes)
	}
	if batch.batches != 1 || batch.writes != 0 {
		t.Errorf("batch writer: expected single batch, got batches=%d writes=%d", batch.batches, batch.writes)
	}
}

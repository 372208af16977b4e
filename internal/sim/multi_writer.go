package sim

import "failpolicy-sim/internal/record"

// MultiWriter fans out outcome and report rows to multiple writers.
type MultiWriter struct {
	outcomeWriters []OutcomeWriter
	reportWriters  []ReportWriter
}

// NewMultiWriter creates a new MultiWriter.
func NewMultiWriter(ows []OutcomeWriter, rws []ReportWriter) *MultiWriter {
	return &MultiWriter{outcomeWriters: ows, reportWriters: rws}
}

// Write sends an outcome row to all writers.
func (mw *MultiWriter) Write(row record.OutcomeRow) error {
	for _, w := range mw.outcomeWriters {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// WriteBatch sends multiple outcome rows to all writers, using batch if supported.
func (mw *MultiWriter) WriteBatch(rows []record.OutcomeRow) error {
	for _, w := range mw.outcomeWriters {
		if bw, ok := w.(batchOutcomeWriter); ok {
			if err := bw.WriteBatch(rows); err != nil {
				return err
			}
			continue
		}
		for _, r := range rows {
			if err := w.Write(r); err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteReport sends a report row to all report writers.
func (mw *MultiWriter) WriteReport(rep record.ReportRow) error {
	for _, w := range mw.reportWriters {
		if err := w.WriteReport(rep); err != nil {
			return err
		}
	}
	return nil
}

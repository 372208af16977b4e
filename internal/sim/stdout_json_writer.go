package sim

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"failpolicy-sim/internal/record"
)

// JSONStdoutWriter prints outcomes and reports as JSON lines to STDOUT.
type JSONStdoutWriter struct {
	out io.Writer
}

// NewJSONStdoutWriter creates a JSONStdoutWriter writing to os.Stdout.
func NewJSONStdoutWriter() *JSONStdoutWriter {
	return &JSONStdoutWriter{out: os.Stdout}
}

// Write outputs an outcome row in JSON format.
func (w *JSONStdoutWriter) Write(row record.OutcomeRow) error {
	data, _ := json.Marshal(row)
	_, err := fmt.Fprintln(w.out, string(data))
	return err
}

// WriteBatch outputs multiple outcome rows in JSON format.
func (w *JSONStdoutWriter) WriteBatch(rows []record.OutcomeRow) error {
	for _, r := range rows {
		if err := w.Write(r); err != nil {
			return err
		}
	}
	return nil
}

// WriteReport outputs a report row in JSON format.
func (w *JSONStdoutWriter) WriteReport(rep record.ReportRow) error {
	data, _ := json.Marshal(rep)
	_, err := fmt.Fprintln(w.out, string(data))
	return err
}

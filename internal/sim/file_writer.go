package sim

import (
	"encoding/json"
	"os"

	"failpolicy-sim/internal/record"
)

// FileWriter writes outcome and report rows to JSONL files.
type FileWriter struct {
	outcomeFile *os.File
	reportFile  *os.File
	outcomeEnc  *json.Encoder
	reportEnc   *json.Encoder
}

// NewFileWriter creates a FileWriter. reportPath may be empty to skip the
// report log.
func NewFileWriter(outcomePath, reportPath string) (*FileWriter, error) {
	of, err := os.Create(outcomePath)
	if err != nil {
		return nil, err
	}
	fw := &FileWriter{outcomeFile: of, outcomeEnc: json.NewEncoder(of)}
	if reportPath != "" {
		rf, err := os.Create(reportPath)
		if err != nil {
			of.Close()
			return nil, err
		}
		fw.reportFile = rf
		fw.reportEnc = json.NewEncoder(rf)
	}
	return fw, nil
}

// Write logs a single outcome row.
func (f *FileWriter) Write(row record.OutcomeRow) error {
	return f.outcomeEnc.Encode(row)
}

// WriteBatch logs multiple outcome rows.
func (f *FileWriter) WriteBatch(rows []record.OutcomeRow) error {
	for _, r := range rows {
		if err := f.Write(r); err != nil {
			return err
		}
	}
	return nil
}

// WriteReport logs a report row, if enabled.
func (f *FileWriter) WriteReport(rep record.ReportRow) error {
	if f.reportEnc == nil {
		return nil
	}
	return f.reportEnc.Encode(rep)
}

// Close closes any underlying files.
func (f *FileWriter) Close() error {
	var err error
	if f.outcomeFile != nil {
		if e := f.outcomeFile.Close(); e != nil && err == nil {
			err = e
		}
	}
	if f.reportFile != nil {
		if e := f.reportFile.Close(); e != nil && err == nil {
			err = e
		}
	}
	return err
}

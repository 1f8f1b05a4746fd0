// Package report serializes cleaned frames and validation findings to CSV.
//
// Output is UTF-8 prefixed with a byte order mark by default, so spreadsheet
// tools that assume the marker open the files correctly.
package report

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/gocarina/gocsv"

	"simpro-import-service/internal/frame"
	"simpro-import-service/internal/validator"
)

// Config holds serialization options.
type Config struct {
	Delimiter  rune `json:"delimiter"`
	IncludeBOM bool `json:"include_bom"`
}

// DefaultConfig returns the spreadsheet-compatible defaults.
func DefaultConfig() *Config {
	return &Config{
		Delimiter:  ',',
		IncludeBOM: true,
	}
}

// Writer serializes pipeline output.
type Writer struct {
	config *Config
}

// NewWriter creates a Writer, falling back to DefaultConfig for nil config.
func NewWriter(config *Config) *Writer {
	if config == nil {
		config = DefaultConfig()
	}
	return &Writer{config: config}
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

func (w *Writer) writeBOM(out io.Writer) error {
	if !w.config.IncludeBOM {
		return nil
	}
	if _, err := out.Write(utf8BOM); err != nil {
		return fmt.Errorf("failed to write byte order mark: %w", err)
	}
	return nil
}

// WriteFrame emits the cleaned template file: a header row with the frame's
// columns in order, then every data row.
func (w *Writer) WriteFrame(f *frame.Frame, out io.Writer) error {
	if err := w.writeBOM(out); err != nil {
		return err
	}

	csvWriter := csv.NewWriter(out)
	csvWriter.Comma = w.config.Delimiter

	if err := csvWriter.Write(f.Columns); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}
	for _, row := range f.Rows {
		if err := csvWriter.Write(row); err != nil {
			return fmt.Errorf("failed to write data row: %w", err)
		}
	}

	csvWriter.Flush()
	return csvWriter.Error()
}

// WriteFindings emits the error report with header row,field,error. An empty
// findings list still produces the header row.
func (w *Writer) WriteFindings(findings []validator.Finding, out io.Writer) error {
	if err := w.writeBOM(out); err != nil {
		return err
	}

	csvWriter := csv.NewWriter(out)
	csvWriter.Comma = w.config.Delimiter

	if err := gocsv.MarshalCSV(&findings, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("failed to write findings: %w", err)
	}
	return nil
}

// Package ingest decodes uploaded spreadsheet files (CSV or Excel) into an
// in-memory table of trimmed string cells.
//
// CSV decoding tries an explicit ordered list of strategies: plain UTF-8,
// UTF-8 with a byte order mark, then a Latin-1 fallback for legacy ERP
// exports. The first strategy whose output parses wins; only total failure
// across all strategies is surfaced.
package ingest

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"simpro-import-service/pkg/errors"
)

// Table is the raw ingested content: the header row as it appeared in the
// file (cells trimmed, byte order mark stripped) and the data rows in file
// order. Rows may be ragged; downstream consumers pad short rows.
type Table struct {
	Headers []string
	Rows    [][]string
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ReadFile loads and decodes the file at path.
func ReadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.FileError(errors.CodeFileNotFound, path, err)
		}
		if os.IsPermission(err) {
			return nil, errors.FileError(errors.CodeFilePermission, path, err)
		}
		return nil, errors.FileError(errors.CodeDirectoryError, path, err)
	}
	return Read(data, filepath.Base(path))
}

// Read decodes raw file content. The filename is used for format dispatch
// (Excel by extension, CSV otherwise) and for error reporting.
func Read(data []byte, filename string) (*Table, error) {
	if len(data) == 0 {
		return nil, errors.FileError(errors.CodeFileEmpty, filename, nil)
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xls":
		return readExcel(data, filename)
	default:
		return readCSV(data, filename)
	}
}

// decodeStrategy is one attempt at turning raw bytes into UTF-8 text.
type decodeStrategy struct {
	name   string
	decode func([]byte) ([]byte, error)
}

func decodeStrategies() []decodeStrategy {
	return []decodeStrategy{
		{
			name: "utf-8",
			decode: func(b []byte) ([]byte, error) {
				if !utf8.Valid(b) {
					return nil, fmt.Errorf("content is not valid UTF-8")
				}
				return b, nil
			},
		},
		{
			name: "utf-8-sig",
			decode: func(b []byte) ([]byte, error) {
				trimmed := bytes.TrimPrefix(b, utf8BOM)
				if !utf8.Valid(trimmed) {
					return nil, fmt.Errorf("content is not valid UTF-8 after BOM strip")
				}
				return trimmed, nil
			},
		},
		{
			name: "latin-1",
			decode: func(b []byte) ([]byte, error) {
				return charmap.ISO8859_1.NewDecoder().Bytes(b)
			},
		},
	}
}

func readCSV(data []byte, filename string) (*Table, error) {
	var attempts []string

	for _, strategy := range decodeStrategies() {
		decoded, err := strategy.decode(data)
		if err != nil {
			attempts = append(attempts, fmt.Sprintf("%s: %v", strategy.name, err))
			continue
		}

		table, err := parseCSV(decoded)
		if err != nil {
			attempts = append(attempts, fmt.Sprintf("%s: %v", strategy.name, err))
			continue
		}

		return table, nil
	}

	return nil, errors.ParseError(errors.CodeEncodingError, filename,
		fmt.Errorf("all decode strategies failed: %s", strings.Join(attempts, "; ")))
}

func parseCSV(data []byte) (*Table, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1 // ragged rows are tolerated
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("no header row")
	}

	headers := trimCells(records[0])
	if len(headers) > 0 {
		headers[0] = strings.TrimPrefix(headers[0], "\ufeff")
	}

	rows := make([][]string, 0, len(records)-1)
	for _, record := range records[1:] {
		rows = append(rows, trimCells(record))
	}

	return &Table{Headers: headers, Rows: rows}, nil
}

func trimCells(record []string) []string {
	cells := make([]string, len(record))
	for i, cell := range record {
		cells[i] = strings.TrimSpace(cell)
	}
	return cells
}

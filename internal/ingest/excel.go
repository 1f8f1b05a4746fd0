package ingest

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"simpro-import-service/pkg/errors"
)

// readExcel decodes an Excel workbook. The first sheet is used; its first
// row is the header row and every cell is read as a string.
func readExcel(data []byte, filename string) (*Table, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, errors.ParseError(errors.CodeInvalidFormat, filename, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.ParseError(errors.CodeInvalidFormat, filename,
			fmt.Errorf("workbook contains no sheets"))
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, errors.ParseError(errors.CodeInvalidFormat, filename, err)
	}
	if len(rows) == 0 {
		return nil, errors.ParseError(errors.CodeMissingHeader, filename, nil)
	}

	table := &Table{
		Headers: trimCells(rows[0]),
		Rows:    make([][]string, 0, len(rows)-1),
	}
	for _, row := range rows[1:] {
		table.Rows = append(table.Rows, trimCells(row))
	}

	return table, nil
}

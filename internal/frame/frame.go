// Package frame builds and represents the output table: one row per input
// row, with exactly the template's columns in the template's order. Every
// cell is a string; numeric cleanup is a textual scrub, not a conversion.
package frame

// Frame is the fixed-schema output table. Rows are aligned 1:1 with the
// input rows and every row has len(Columns) cells.
type Frame struct {
	Columns []string
	Rows    [][]string

	index map[string]int
}

// New allocates a frame with the given columns and row count, every cell
// initialized to the empty string.
func New(columns []string, rows int) *Frame {
	cols := make([]string, len(columns))
	copy(cols, columns)

	index := make(map[string]int, len(cols))
	for i, col := range cols {
		index[col] = i
	}

	data := make([][]string, rows)
	for i := range data {
		data[i] = make([]string, len(cols))
	}

	return &Frame{
		Columns: cols,
		Rows:    data,
		index:   index,
	}
}

// NumRows returns the number of data rows.
func (f *Frame) NumRows() int {
	return len(f.Rows)
}

// HasColumn reports whether the frame carries the named column.
func (f *Frame) HasColumn(name string) bool {
	_, ok := f.index[name]
	return ok
}

// Get returns the cell at the given row for the named column, or the empty
// string when the column does not exist.
func (f *Frame) Get(row int, column string) string {
	i, ok := f.index[column]
	if !ok {
		return ""
	}
	return f.Rows[row][i]
}

// Set writes the cell at the given row for the named column. Unknown columns
// are ignored.
func (f *Frame) Set(row int, column, value string) {
	i, ok := f.index[column]
	if !ok {
		return
	}
	f.Rows[row][i] = value
}

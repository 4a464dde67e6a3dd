// Package table provides an in-memory model of one worksheet: an
// ordered header and ordered rows of tagged cell values.
//
// Cells carry an explicit kind (Missing, String, Number) instead of
// relying on empty-string sentinels, so qualification checks during
// cleaning are exhaustive.
package table

import (
	"strconv"
	"strings"
)

// Kind tags the value held by a Cell.
type Kind int

const (
	// Missing marks an absent value (empty cell, short row).
	Missing Kind = iota
	// String marks a textual value.
	String
	// Number marks a numeric value.
	Number
)

// Cell is a tagged scalar value of one table cell.
type Cell struct {
	kind Kind
	str  string
	num  float64
}

// MissingCell returns a cell with no value.
func MissingCell() Cell {
	return Cell{kind: Missing}
}

// StringCell returns a cell holding textual value s.
func StringCell(s string) Cell {
	return Cell{kind: String, str: s}
}

// NumberCell returns a cell holding numeric value f.
func NumberCell(f float64) Cell {
	return Cell{kind: Number, num: f}
}

// Kind returns the cell's value tag.
func (c Cell) Kind() Kind {
	return c.kind
}

// IsMissing reports whether the cell has no value.
func (c Cell) IsMissing() bool {
	return c.kind == Missing
}

// IsBlank reports whether the cell is missing or holds only whitespace.
func (c Cell) IsBlank() bool {
	switch c.kind {
	case Missing:
		return true
	case String:
		return strings.TrimSpace(c.str) == ""
	default:
		return false
	}
}

// String renders the cell value as text. Numbers are rendered in the
// shortest form that round-trips, missing cells render empty.
func (c Cell) String() string {
	switch c.kind {
	case String:
		return c.str
	case Number:
		return strconv.FormatFloat(c.num, 'f', -1, 64)
	default:
		return ""
	}
}

// Value returns the native value for writing back to a worksheet.
// Missing cells map to nil.
func (c Cell) Value() any {
	switch c.kind {
	case String:
		return c.str
	case Number:
		return c.num
	default:
		return nil
	}
}

// Table is an ordered sequence of rows under a fixed header.
// Row order is significant and preserved by construction.
type Table struct {
	header []string
	index  map[string]int
	rows   [][]Cell
}

// New creates an empty Table with the given header. The column set is
// fixed for the lifetime of the table.
func New(header []string) *Table {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[h] = i
	}
	return &Table{
		header: header,
		index:  idx,
	}
}

// Header returns the column names in their original order.
func (t *Table) Header() []string {
	return t.header
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// AppendRow adds a row to the end of the table. Short rows are padded
// with missing cells, long rows are truncated to the header width.
func (t *Table) AppendRow(cells []Cell) {
	row := make([]Cell, len(t.header))
	for i := range row {
		if i < len(cells) {
			row[i] = cells[i]
		} else {
			row[i] = MissingCell()
		}
	}
	t.rows = append(t.rows, row)
}

// Get returns the cell at row i, column col. Unknown columns and
// out-of-range rows yield a missing cell.
func (t *Table) Get(i int, col string) Cell {
	j, ok := t.index[col]
	if !ok || i < 0 || i >= len(t.rows) {
		return MissingCell()
	}
	return t.rows[i][j]
}

// Set overwrites the cell at row i, column col. Unknown columns and
// out-of-range rows are ignored.
func (t *Table) Set(i int, col string, c Cell) {
	j, ok := t.index[col]
	if !ok || i < 0 || i >= len(t.rows) {
		return
	}
	t.rows[i][j] = c
}

// Row returns the cells of row i in header order.
func (t *Table) Row(i int) []Cell {
	return t.rows[i]
}

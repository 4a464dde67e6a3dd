package clean

import (
	"log/slog"
	"strings"

	"github.com/rachluis/data-clean-pinyin/pkg/table"
	"github.com/rachluis/data-clean-pinyin/pkg/translit"
)

// Rewriter rewrites the first segment of composite identifiers with
// the pinyin code derived from the row's name column.
type Rewriter struct {
	// Translit derives the pinyin code from the name column.
	Translit translit.Transliterator

	// NameColumn holds person names.
	NameColumn string

	// CodeColumn holds composite identifiers.
	CodeColumn string

	// Delimiter separates identifier segments.
	Delimiter string

	// OnRow, when set, is called after each row is visited.
	// Used for progress reporting.
	OnRow func()
}

// Rewrite walks the table in row order and rewrites qualifying rows
// in place. A row qualifies when both the name and identifier cells
// hold values and the identifier splits into at least two segments.
// Non-qualifying rows are left untouched. Returns the number of rows
// rewritten.
//
// Row count and row order never change; only the identifier column's
// value changes, and only on qualifying rows.
func (rw *Rewriter) Rewrite(tbl *table.Table) int {
	var processed int

	for i := 0; i < tbl.Len(); i++ {
		if rw.rewriteRow(tbl, i) {
			processed++
		}
		if rw.OnRow != nil {
			rw.OnRow()
		}
	}

	return processed
}

func (rw *Rewriter) rewriteRow(tbl *table.Table, i int) bool {
	name := tbl.Get(i, rw.NameColumn)
	code := tbl.Get(i, rw.CodeColumn)

	// Rows with a blank name or identifier are left alone. This is
	// deliberate policy: incomplete rows are not ours to fix.
	if name.IsBlank() || code.IsBlank() {
		return false
	}

	pin := rw.Translit.Transliterate(name.String())
	if pin == "" {
		// Name held only characters that vanished in transliteration.
		slog.Warn("name yields empty pinyin code, skipping row",
			"row", sheetRow(i), "name", name.String())
		return false
	}

	// Numeric identifier cells are stringified before splitting.
	parts := strings.Split(code.String(), rw.Delimiter)
	if len(parts) < 2 {
		// Malformed identifiers are left alone rather than coerced.
		return false
	}

	parts[0] = pin
	tbl.Set(i, rw.CodeColumn, table.StringCell(
		strings.Join(parts, rw.Delimiter)))

	return true
}

// sheetRow converts a data-row index into the 1-based spreadsheet row
// number users see (the header occupies row 1).
func sheetRow(i int) int {
	return i + 2
}

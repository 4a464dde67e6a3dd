// Package ioxlsx implements the Workbook interface on top of .xlsx
// files. This is an impure I/O package; it never mutates a file except
// in Save, and Save touches only the named sheet.
package ioxlsx

import (
	"strconv"

	"github.com/rachluis/data-clean-pinyin/pkg/clean"
	"github.com/rachluis/data-clean-pinyin/pkg/table"
	"github.com/xuri/excelize/v2"
)

type workbook struct{}

// New creates a Workbook backed by excelize.
func New() clean.Workbook {
	return &workbook{}
}

// Header reads only the first row of the sheet using the streaming row
// iterator, so a bad layout is detected without loading the data.
func (w *workbook) Header(path, sheet string) ([]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, OpenError(path, err)
	}
	defer f.Close()

	rows, err := f.Rows(sheet)
	if err != nil {
		return nil, SheetReadError(sheet, err)
	}
	defer rows.Close()

	if !rows.Next() {
		// An empty sheet has no header; validation downstream will
		// report every required column as missing.
		return nil, rows.Error()
	}

	header, err := rows.Columns()
	if err != nil {
		return nil, SheetReadError(sheet, err)
	}
	return header, nil
}

// Load reads the whole sheet into a Table. The first row becomes the
// header; data rows are padded to the header width with missing cells.
func (w *workbook) Load(path, sheet string) (*table.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, OpenError(path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, SheetReadError(sheet, err)
	}
	if len(rows) == 0 {
		return table.New(nil), nil
	}

	tbl := table.New(rows[0])
	width := len(rows[0])
	for _, r := range rows[1:] {
		cells := make([]table.Cell, width)
		for j := range cells {
			var raw string
			if j < len(r) {
				raw = r[j]
			}
			cells[j] = parseCell(raw)
		}
		tbl.AppendRow(cells)
	}
	return tbl, nil
}

// parseCell classifies a raw cell string into a tagged value.
func parseCell(raw string) table.Cell {
	if raw == "" {
		return table.MissingCell()
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return table.NumberCell(f)
	}
	return table.StringCell(raw)
}

// Save replaces the named sheet's contents with the table and writes
// the workbook back to path. Other sheets are carried over untouched:
// the file is opened whole and only the target sheet's cells are
// rewritten. Leftover rows and columns from the old contents are
// removed so the sheet holds exactly the table.
func (w *workbook) Save(path, sheet string, tbl *table.Table) error {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return OpenError(path, err)
	}
	defer f.Close()

	idx, err := f.GetSheetIndex(sheet)
	if err != nil {
		return SaveError(path, err)
	}

	var oldRows, oldCols int
	if idx == -1 {
		if _, err = f.NewSheet(sheet); err != nil {
			return SaveError(path, err)
		}
	} else {
		existing, err := f.GetRows(sheet)
		if err != nil {
			return SaveError(path, err)
		}
		oldRows = len(existing)
		for _, r := range existing {
			if len(r) > oldCols {
				oldCols = len(r)
			}
		}
	}

	header := tbl.Header()
	for j, h := range header {
		if err = w.setCell(f, sheet, j+1, 1, h); err != nil {
			return SaveError(path, err)
		}
	}
	for i := 0; i < tbl.Len(); i++ {
		row := tbl.Row(i)
		for j := range header {
			// Missing cells map to nil, which clears stale values.
			err = w.setCell(f, sheet, j+1, i+2, row[j].Value())
			if err != nil {
				return SaveError(path, err)
			}
		}
	}

	// Trim rows and columns left over from the previous contents,
	// bottom-up and right-to-left so positions stay stable.
	newRows := tbl.Len() + 1
	for r := oldRows; r > newRows; r-- {
		if err = f.RemoveRow(sheet, r); err != nil {
			return SaveError(path, err)
		}
	}
	for c := oldCols; c > len(header); c-- {
		colName, err := excelize.ColumnNumberToName(c)
		if err != nil {
			return SaveError(path, err)
		}
		if err = f.RemoveCol(sheet, colName); err != nil {
			return SaveError(path, err)
		}
	}

	if err = f.Save(); err != nil {
		return SaveError(path, err)
	}
	return nil
}

func (w *workbook) setCell(
	f *excelize.File,
	sheet string,
	col, row int,
	value any,
) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetCellValue(sheet, cell, value)
}

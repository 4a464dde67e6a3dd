package ioxlsx

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/rachluis/data-clean-pinyin/pkg/errcode"
)

// OpenError creates an error for a workbook that cannot be opened.
func OpenError(path string, err error) error {
	msg := `Cannot open workbook <em>%s</em>

<em>Possible causes:</em>
  - File does not exist or is not readable
  - File is not an .xlsx workbook
  - File is corrupt`

	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.WorkbookOpenError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot open workbook: %w",
			fn, err),
	}
}

// SheetReadError creates an error for a sheet that cannot be read.
func SheetReadError(sheet string, err error) error {
	msg := `Cannot read sheet <em>%s</em>

<em>How to fix:</em>
  1. Check the sheet name is spelled correctly
  2. Verify the sheet exists in the workbook`

	vars := []any{sheet}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.SheetReadError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot read sheet: %w",
			fn, err),
	}
}

// SaveError creates an error for a workbook that cannot be written
// back. The in-memory table stays intact, so the caller may retry.
func SaveError(path string, err error) error {
	msg := `Cannot save workbook <em>%s</em>

<em>Possible causes:</em>
  - File is open in another program
  - No write permission for the file
  - Disk is full

The cleaned data is not lost; fix the cause and run again.`

	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.WorkbookSaveError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot save workbook: %w",
			fn, err),
	}
}

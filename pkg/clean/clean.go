// Package clean defines the contracts of the cleaning pipeline and the
// pure record-rewriting step shared by its implementations.
package clean

import (
	"context"

	"github.com/rachluis/data-clean-pinyin/pkg/table"
)

// Workbook defines the persistence interface for spreadsheet files.
// Save takes an explicit path, so a caller that wants copy-then-write
// semantics can duplicate the file first and save against the copy.
type Workbook interface {
	// Header reads only the header row of the named sheet. It must
	// not materialize data rows.
	Header(path, sheet string) ([]string, error)

	// Load reads the named sheet into a Table.
	Load(path, sheet string) (*table.Table, error)

	// Save replaces the named sheet's contents with the table,
	// leaving all other sheets in the file untouched. The sheet is
	// created when absent. On failure the table is unchanged, so the
	// caller may retry.
	Save(path, sheet string, t *table.Table) error
}

// Cleaner runs the complete pipeline against one file:
// validate header, load, rewrite, save.
type Cleaner interface {
	// Clean processes the file at path and returns the run's result.
	// Exactly one terminal outcome per run: a Result or an error.
	Clean(ctx context.Context, path string) (Result, error)
}

// Result summarizes a finished cleaning run.
type Result struct {
	// Processed is the number of rows actually rewritten.
	Processed int
	// Total is the number of data rows in the sheet.
	Total int
}

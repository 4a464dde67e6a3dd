package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError

	// Logging errors
	CreateLogFileError

	// Schema errors
	SchemaValidationError

	// Workbook errors
	WorkbookOpenError
	SheetReadError
	WorkbookSaveError
)

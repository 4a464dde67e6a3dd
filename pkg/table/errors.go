package table

import (
	"fmt"
	"strings"

	"github.com/gnames/gn"
	"github.com/rachluis/data-clean-pinyin/pkg/errcode"
)

// MissingColumnsError creates an error for a header that lacks one or
// more required columns.
func MissingColumnsError(missing []string) error {
	msg := `Column check failed, the sheet lacks required columns

<em>Missing columns:</em> %s

<em>How to fix:</em>
  1. Verify the sheet name points at the right worksheet
  2. Check the header row for typos in column names`

	cols := strings.Join(missing, ", ")
	vars := []any{cols}

	return &gn.Error{
		Code: errcode.SchemaValidationError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("missing required columns: %s", cols),
	}
}

package ioclean_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/rachluis/data-clean-pinyin/internal/ioclean"
	"github.com/rachluis/data-clean-pinyin/internal/ioxlsx"
	"github.com/rachluis/data-clean-pinyin/pkg/config"
	"github.com/rachluis/data-clean-pinyin/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// newFixture builds a two-sheet workbook: the target sheet with three
// data rows (rows 1 and 2 qualify, row 3 has a malformed identifier)
// and a sibling sheet that must survive the run untouched.
func newFixture(t *testing.T) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheets := map[string][][]any{
		"dw_eagle_sale2_atm": {
			{"clientname", "patientcode"},
			{"张三", "oldcode_001"},
			{"李四", "stale_002"},
			{"王五", "onlyonesegment"},
		},
		"notes": {
			{"remark"},
			{"do not touch"},
		},
	}
	for sheet, rows := range sheets {
		_, err := f.NewSheet(sheet)
		require.NoError(t, err)
		for i, row := range rows {
			for j, val := range row {
				cell, err := excelize.CoordinatesToCellName(j+1, i+1)
				require.NoError(t, err)
				require.NoError(t, f.SetCellValue(sheet, cell, val))
			}
		}
	}

	path := filepath.Join(t.TempDir(), "patients.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func readSheet(t *testing.T, path, sheet string) [][]string {
	t.Helper()

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheet)
	require.NoError(t, err)
	return rows
}

func TestCleanEndToEnd(t *testing.T) {
	path := newFixture(t)
	notesBefore := readSheet(t, path, "notes")

	cfg := config.New()
	cleaner := ioclean.New(cfg, ioxlsx.New())

	res, err := cleaner.Clean(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, 2, res.Processed)
	assert.Equal(t, 3, res.Total)

	rows := readSheet(t, path, "dw_eagle_sale2_atm")
	require.Len(t, rows, 4)
	assert.Equal(t, "ZHANGSAN_001", rows[1][1])
	assert.Equal(t, "LISI_002", rows[2][1])
	assert.Equal(t, "onlyonesegment", rows[3][1],
		"malformed identifier stays untouched")

	t.Run("sibling sheet is unchanged", func(t *testing.T) {
		assert.Equal(t, notesBefore, readSheet(t, path, "notes"))
	})
}

func TestCleanMissingColumns(t *testing.T) {
	path := newFixture(t)

	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptCleanNameColumn("fullname"),
	})
	cleaner := ioclean.New(cfg, ioxlsx.New())

	before := readSheet(t, path, "dw_eagle_sale2_atm")
	_, err := cleaner.Clean(context.Background(), path)

	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok, "error should be of type *gn.Error")
	assert.Equal(t, errcode.SchemaValidationError, gnErr.Code)
	assert.Equal(t, []any{"fullname"}, gnErr.Vars)

	t.Run("run aborts before any write", func(t *testing.T) {
		assert.Equal(t, before, readSheet(t, path, "dw_eagle_sale2_atm"))
	})
}

func TestCleanBadSheet(t *testing.T) {
	path := newFixture(t)

	cfg := config.New()
	cfg.Update([]config.Option{config.OptCleanSheet("no_such_sheet")})
	cleaner := ioclean.New(cfg, ioxlsx.New())

	_, err := cleaner.Clean(context.Background(), path)
	require.Error(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok, "error should be of type *gn.Error")
	assert.Equal(t, errcode.SheetReadError, gnErr.Code)
}

func TestCleanDryRun(t *testing.T) {
	path := newFixture(t)
	before := readSheet(t, path, "dw_eagle_sale2_atm")

	cfg := config.New()
	cfg.Update([]config.Option{config.OptCleanDryRun(true)})
	cleaner := ioclean.New(cfg, ioxlsx.New())

	res, err := cleaner.Clean(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, 2, res.Processed)
	assert.Equal(t, before, readSheet(t, path, "dw_eagle_sale2_atm"),
		"dry run must not modify the file")
}

func TestCleanBackup(t *testing.T) {
	path := newFixture(t)
	before := readSheet(t, path, "dw_eagle_sale2_atm")

	cfg := config.New()
	cfg.Update([]config.Option{config.OptCleanBackup(true)})
	cleaner := ioclean.New(cfg, ioxlsx.New())

	_, err := cleaner.Clean(context.Background(), path)
	require.NoError(t, err)

	bak := path + ".bak"
	_, err = os.Stat(bak)
	require.NoError(t, err, "backup file must exist")

	t.Run("backup holds pre-save contents", func(t *testing.T) {
		assert.Equal(t, before, readSheet(t, bak, "dw_eagle_sale2_atm"))
	})

	t.Run("original was rewritten", func(t *testing.T) {
		rows := readSheet(t, path, "dw_eagle_sale2_atm")
		assert.Equal(t, "ZHANGSAN_001", rows[1][1])
	})
}

func TestCleanCanceledContext(t *testing.T) {
	path := newFixture(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := config.New()
	cleaner := ioclean.New(cfg, ioxlsx.New())

	_, err := cleaner.Clean(ctx, path)
	assert.ErrorIs(t, err, context.Canceled)
}

// Package ioclean implements the Cleaner interface: the linear
// validate -> load -> rewrite -> save pipeline over one workbook.
// This is an impure I/O package that reads and writes .xlsx files
// through a Workbook and reports progress to the user.
package ioclean

import (
	"context"
	"log/slog"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/rachluis/data-clean-pinyin/internal/iofs"
	"github.com/rachluis/data-clean-pinyin/pkg/clean"
	"github.com/rachluis/data-clean-pinyin/pkg/config"
	"github.com/rachluis/data-clean-pinyin/pkg/table"
	"github.com/rachluis/data-clean-pinyin/pkg/translit"
)

// cleaner implements the Cleaner interface.
type cleaner struct {
	cfg *config.Config
	wb  clean.Workbook
	tr  translit.Transliterator
}

// New creates a new Cleaner. The transliterator is built once here so
// every row of a run uses the same pinyin table.
func New(cfg *config.Config, wb clean.Workbook) clean.Cleaner {
	return &cleaner{cfg: cfg, wb: wb, tr: translit.New()}
}

// Clean runs the pipeline against the workbook at path. The pipeline
// is synchronous and single-pass; there is no mid-run cancellation,
// only an abort before the first stage via ctx.
func (c *cleaner) Clean(
	ctx context.Context,
	path string,
) (clean.Result, error) {
	var res clean.Result

	if err := ctx.Err(); err != nil {
		return res, err
	}

	startTime := time.Now()
	sheet := c.cfg.Clean.Sheet
	slog.Info("Starting cleaning run", "path", path, "sheet", sheet)

	gn.Info("(1/4) Checking columns of sheet <em>%s</em>...", sheet)
	header, err := c.wb.Header(path, sheet)
	if err != nil {
		return res, err
	}
	required := []string{c.cfg.Clean.NameColumn, c.cfg.Clean.CodeColumn}
	if err = table.ValidateHeader(header, required); err != nil {
		return res, err
	}

	gn.Info("(2/4) Columns check passed, loading all rows...")
	tbl, err := c.wb.Load(path, sheet)
	if err != nil {
		return res, err
	}
	res.Total = tbl.Len()
	slog.Info("Sheet loaded", "rows", res.Total)

	gn.Info("(3/4) Loaded <em>%s</em> rows, rewriting codes...",
		humanize.Comma(int64(res.Total)))
	res.Processed = c.rewrite(tbl)
	slog.Info("Rewriting finished",
		"processed", res.Processed, "total", res.Total)

	if c.cfg.Clean.DryRun {
		gn.Info("(4/4) Dry run, the workbook is left untouched.")
		return res, nil
	}

	if c.cfg.Clean.Backup {
		bak := path + ".bak"
		gn.Info("Backing up workbook to <em>%s</em>...", bak)
		if err = iofs.CopyFile(path, bak); err != nil {
			return res, err
		}
	}

	gn.Info("(4/4) Saving sheet <em>%s</em> back to the workbook...",
		sheet)
	if err = c.wb.Save(path, sheet, tbl); err != nil {
		return res, err
	}

	duration := time.Since(startTime)
	slog.Info("Cleaning run complete",
		"processed", res.Processed,
		"duration", gnfmt.TimeString(duration.Seconds()),
	)

	return res, nil
}

// rewrite runs the rewriter over the table with a progress bar.
func (c *cleaner) rewrite(tbl *table.Table) int {
	bar := pb.Full.Start(tbl.Len())
	bar.Set("prefix", "Rows: ")
	bar.Set(pb.CleanOnFinish, true)
	defer bar.Finish()

	rw := &clean.Rewriter{
		Translit:   c.tr,
		NameColumn: c.cfg.Clean.NameColumn,
		CodeColumn: c.cfg.Clean.CodeColumn,
		Delimiter:  c.cfg.Clean.Delimiter,
		OnRow:      func() { bar.Increment() },
	}
	return rw.Rewrite(tbl)
}

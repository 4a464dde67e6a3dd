package cmd

import (
	"context"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/rachluis/data-clean-pinyin/internal/ioclean"
	"github.com/rachluis/data-clean-pinyin/internal/ioxlsx"
	"github.com/rachluis/data-clean-pinyin/pkg/config"
	"github.com/spf13/cobra"
)

// getCleanCmd returns the clean command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getCleanCmd() *cobra.Command {
	var (
		sheet      string
		nameColumn string
		codeColumn string
		delimiter  string
		dryRun     bool
		backup     bool
	)

	cleanCmd := &cobra.Command{
		Use:   "clean [flags] FILE",
		Short: "Rewrite pinyin codes in one worksheet of FILE",
		Long: `Rewrite the first segment of composite identifiers with the
uppercase, tone-free pinyin of the row's name column.

This command:
  1. Checks that the name and code columns exist (header-only read)
  2. Loads all rows of the worksheet
  3. For each row with a name and an identifier of two or more
     segments, replaces the first segment with the pinyin code
  4. Saves the worksheet back into the same file; sibling sheets
     are left untouched

Rows with a missing name or identifier, and identifiers without the
delimiter, are skipped and left unmodified.

Examples:
  # Clean the default sheet with default columns
  pinclean clean report.xlsx

  # Clean a specific sheet
  pinclean clean -s patients_2025 report.xlsx

  # Preview without writing
  pinclean clean --dry-run report.xlsx

  # Keep a copy of the file before saving
  pinclean clean -b report.xlsx`,
		Aliases: []string{"fix"},
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runClean(
				cmd, args[0], sheet, nameColumn,
				codeColumn, delimiter, dryRun, backup,
			)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	cleanCmd.Flags().StringVarP(
		&sheet, "sheet", "s", "",
		"worksheet to clean (default from config)",
	)
	cleanCmd.Flags().StringVarP(
		&nameColumn, "name-column", "n", "",
		"column holding person names",
	)
	cleanCmd.Flags().StringVarP(
		&codeColumn, "code-column", "c", "",
		"column holding composite identifiers",
	)
	cleanCmd.Flags().StringVarP(
		&delimiter, "delimiter", "d", "",
		"identifier segment delimiter",
	)
	cleanCmd.Flags().BoolVar(
		&dryRun, "dry-run", false,
		"rewrite in memory only, do not save",
	)
	cleanCmd.Flags().BoolVarP(
		&backup, "backup", "b", false,
		"copy the file to FILE.bak before saving",
	)

	return cleanCmd
}

func runClean(
	cmd *cobra.Command,
	path string,
	sheet string,
	nameColumn string,
	codeColumn string,
	delimiter string,
	dryRun bool,
	backup bool,
) error {
	ctx := context.Background()

	// Build options from explicitly set flags
	var cleanOpts []config.Option

	if cmd.Flags().Changed("sheet") {
		cleanOpts = append(cleanOpts, config.OptCleanSheet(sheet))
	}
	if cmd.Flags().Changed("name-column") {
		cleanOpts = append(cleanOpts, config.OptCleanNameColumn(nameColumn))
	}
	if cmd.Flags().Changed("code-column") {
		cleanOpts = append(cleanOpts, config.OptCleanCodeColumn(codeColumn))
	}
	if cmd.Flags().Changed("delimiter") {
		cleanOpts = append(cleanOpts, config.OptCleanDelimiter(delimiter))
	}
	if cmd.Flags().Changed("dry-run") {
		cleanOpts = append(cleanOpts, config.OptCleanDryRun(dryRun))
	}
	if cmd.Flags().Changed("backup") {
		cleanOpts = append(cleanOpts, config.OptCleanBackup(backup))
	}

	// Apply clean-specific options to config
	if len(cleanOpts) > 0 {
		cfg.Update(cleanOpts)
	}

	cleaner := ioclean.New(cfg, ioxlsx.New())

	res, err := cleaner.Clean(ctx, path)
	if err != nil {
		return err
	}

	if cfg.Clean.DryRun {
		gn.Info(
			"Dry run done: <em>%s</em> of %s rows would be cleaned.",
			humanize.Comma(int64(res.Processed)),
			humanize.Comma(int64(res.Total)),
		)
		return nil
	}

	gn.Info(
		"Success! <em>%s</em> of %s rows cleaned and saved back to <em>%s</em>.",
		humanize.Comma(int64(res.Processed)),
		humanize.Comma(int64(res.Total)),
		path,
	)

	return nil
}

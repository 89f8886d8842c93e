package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sjrtools/sjrank/internal/logging"
	"github.com/sjrtools/sjrank/internal/match"
	"github.com/sjrtools/sjrank/internal/naming"
	"github.com/sjrtools/sjrank/internal/ui"
)

func newMatchCmd() *cobra.Command {
	var (
		file         string
		sheet        string
		rankingsDir  string
		rankingsFile string
		output       string
	)

	cmd := &cobra.Command{
		Use:   "match [flags]",
		Short: "Annotate a dataset with per-year journal quartiles",
		Long: `Read the year and journal name from each row of the target sheet and fill
the Quartile_Matched column from the ranking table of that row's year.
A row whose year has no ranking table is left blank; a journal missing from
its year's table is marked NOT FOUND.

With --rankings-file, every row is matched against that one table and the
year column is ignored.

Examples:
  sjrank match --file "second filter.xlsx" --sheet "rank filter"
  sjrank match --file merged.xlsx --sheet NO_DUPLICATES_KEPT --rankings-file SJR2020_QRank.xlsx
  sjrank match --file data.xlsx --sheet "rank filter" --output annotated.xlsx`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if file == "" {
				return fmt.Errorf("--file is required")
			}
			return runMatch(file, sheet, rankingsDir, rankingsFile, output)
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "annotation target workbook")
	cmd.Flags().StringVar(&sheet, "sheet", "rank filter", "sheet holding the year/journal rows")
	cmd.Flags().StringVar(&rankingsDir, "rankings-dir", "", "directory of per-year SJR{year}_QRank.xlsx tables")
	cmd.Flags().StringVar(&rankingsFile, "rankings-file", "", "single consolidated table (disables year scoping)")
	cmd.Flags().StringVar(&output, "output", "", "write the annotated workbook here instead of in place")

	return cmd
}

func runMatch(file, sheet, rankingsDir, rankingsFile, output string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer log.Close()

	var m *match.Matcher
	if rankingsFile != "" {
		if err := match.ValidateRankingFile(rankingsFile); err != nil {
			return err
		}
		provider, err := match.NewFixedProvider(rankingsFile)
		if err != nil {
			return err
		}
		m = match.NewSingleTableMatcher(provider)
		log.Info("match", "matching against single table", logging.F("file", rankingsFile))
	} else {
		dir := rankingsDir
		if dir == "" {
			dir = cfg.Output.Dir
		}
		m = match.NewMatcher(match.NewDirProvider(dir, cfg.Output.RankingPattern))
		log.Info("match", "matching year-scoped", logging.F("rankings_dir", dir))
	}

	summary, err := match.AnnotateWorkbook(file, sheet, m, output)
	if err != nil {
		return err
	}

	target := output
	if target == "" {
		target = file
	}
	printMatchSummary(summary, target, sheet)
	return nil
}

func printMatchSummary(summary *match.Summary, target, sheet string) {
	ui.Section("match summary")
	fmt.Printf("  Output: %s\n  Sheet:  %s\n\n", target, sheet)

	for _, q := range naming.Quartiles {
		fmt.Printf("  %s: %s\n", ui.Quartile(q), ui.Count(summary.Counts[q]))
	}
	fmt.Printf("  %s: %s\n", ui.Quartile(naming.NotFound), ui.Count(summary.Counts[naming.NotFound]))
	if summary.Skipped > 0 {
		fmt.Printf("  %s\n", ui.Dim(fmt.Sprintf("skipped (no table for year): %s", ui.Count(summary.Skipped))))
	}
	fmt.Printf("\n  TOTAL ROWS: %s\n", ui.Count(summary.Total))

	ui.SuccessMsg("matched %s of %s rows", ui.Count(summary.Matched()), ui.Count(summary.Total))
}

package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sjrtools/sjrank/internal/config"
	"github.com/sjrtools/sjrank/internal/consolidate"
	"github.com/sjrtools/sjrank/internal/naming"
	"github.com/sjrtools/sjrank/internal/ui"
)

func newConsolidateCmd() *cobra.Command {
	var (
		year      int
		yearSpan  string
		inputDir  string
		outputDir string
	)

	cmd := &cobra.Command{
		Use:   "consolidate [flags]",
		Short: "Build per-year canonical ranking tables",
		Long: `Read every subject-area SJR export for each year, merge them, keep the
best quartile per journal and write one SJR{year}_QRank.xlsx table per year.

A year whose source files are missing or unreadable is reported and skipped;
the remaining years still run.

Examples:
  sjrank consolidate --year 2010
  sjrank consolidate --years 1999-2024
  sjrank consolidate --input-dir ./sjr --output-dir ./rankings`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if inputDir != "" {
				cfg.Input.Dir = inputDir
			}
			if outputDir != "" {
				cfg.Output.Dir = outputDir
			}

			years := cfg.YearRange()
			if year != 0 {
				years = []int{year}
			} else if yearSpan != "" {
				years, err = parseYearSpan(yearSpan)
				if err != nil {
					return err
				}
			}

			return runConsolidate(cfg, years)
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "consolidate a single year")
	cmd.Flags().StringVar(&yearSpan, "years", "", "inclusive year span, e.g. 1999-2024")
	cmd.Flags().StringVar(&inputDir, "input-dir", "", "directory holding the subject-area exports")
	cmd.Flags().StringVar(&outputDir, "output-dir", "", "directory for the consolidated tables")

	return cmd
}

func runConsolidate(cfg *config.Config, years []int) error {
	if len(years) == 0 {
		return fmt.Errorf("no years to consolidate")
	}

	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer log.Close()

	c := consolidate.New(cfg, log)

	var failed []int
	for _, y := range years {
		result, err := c.RunYear(y)
		if err != nil {
			ui.ErrorMsg("%d: %v", y, err)
			failed = append(failed, y)
			continue
		}
		printYearResult(result)
	}

	if len(failed) > 0 {
		return fmt.Errorf("%d of %d years failed: %v", len(failed), len(years), failed)
	}
	return nil
}

func printYearResult(result *consolidate.YearResult) {
	ui.Section(fmt.Sprintf("SJR %d", result.Year))

	table := ui.NewTable("Source", "Rows")
	for _, path := range sortedKeys(result.Stats.SourceRows) {
		table.AddRow(path, ui.Count(result.Stats.SourceRows[path]))
	}
	table.Render()

	fmt.Printf("\n  Journals kept: %s (of %s rows)\n",
		ui.Count(result.Stats.KeptRows), ui.Count(result.Stats.TotalRows))
	for _, q := range naming.Quartiles {
		fmt.Printf("  %s: %s\n", ui.Quartile(q), ui.Count(result.Stats.QuartileCounts[q]))
	}

	ui.SuccessMsg("wrote %s", result.OutputPath)
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// parseYearSpan parses "A-B" into the inclusive list of years.
func parseYearSpan(span string) ([]int, error) {
	parts := strings.SplitN(span, "-", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid year span %q (expected A-B)", span)
	}
	first, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
	last, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err1 != nil || err2 != nil || last < first {
		return nil, fmt.Errorf("invalid year span %q (expected A-B)", span)
	}

	years := make([]int, 0, last-first+1)
	for y := first; y <= last; y++ {
		years = append(years, y)
	}
	return years, nil
}

package main

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/sjrtools/sjrank/internal/config"
	"github.com/sjrtools/sjrank/internal/consolidate"
	"github.com/sjrtools/sjrank/internal/database"
	"github.com/sjrtools/sjrank/internal/logging"
	"github.com/sjrtools/sjrank/internal/naming"
	"github.com/sjrtools/sjrank/internal/sjr"
	"github.com/sjrtools/sjrank/internal/ui"
)

func newDatabaseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "db",
		Short: "Manage the sqlite rankings store",
		Long: `Commands for the optional sqlite store of consolidated rankings.

The store mirrors the per-year SJR{year}_QRank.xlsx tables and lets you
query a journal's quartile history without opening spreadsheets.

Examples:
  sjrank db import
  sjrank db lookup "Psychological Review" --year 2007
  sjrank db stats`,
	}

	cmd.AddCommand(newDBImportCmd())
	cmd.AddCommand(newDBLookupCmd())
	cmd.AddCommand(newDBStatsCmd())

	return cmd
}

func openStore(cfg *config.Config) (*database.RankingDB, error) {
	path, err := cfg.DatabasePath()
	if err != nil {
		return nil, err
	}
	return database.OpenPath(path)
}

func newDBImportCmd() *cobra.Command {
	var rankingsDir string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Load consolidated year tables into the store",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if rankingsDir == "" {
				rankingsDir = cfg.Output.Dir
			}

			log, err := newLogger(cfg)
			if err != nil {
				return err
			}
			defer log.Close()

			db, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			imported := 0
			for _, year := range cfg.YearRange() {
				path := filepath.Join(rankingsDir, sjr.RankingFileName(cfg.Output.RankingPattern, year))
				if sjr.CheckExists(path) != nil {
					continue
				}

				entries, err := sjr.LoadFile(path)
				if err != nil {
					return fmt.Errorf("year %d: %w", year, err)
				}

				// Consolidated tables are already deduplicated; running
				// them through consolidation again is a no-op that yields
				// the Row form the store expects.
				rows, _ := consolidate.Year(entries)
				if err := db.ImportYear(year, rows); err != nil {
					return err
				}

				log.Info("db", "imported year", logging.F("year", year), logging.F("rows", len(rows)))
				imported++
			}

			if imported == 0 {
				return fmt.Errorf("no ranking tables found in %s", rankingsDir)
			}

			total, err := db.CountRankings()
			if err != nil {
				return err
			}
			ui.SuccessMsg("imported %d years, %s rankings in store (%s)", imported, ui.Count(total), db.Path())
			return nil
		},
	}

	cmd.Flags().StringVar(&rankingsDir, "rankings-dir", "", "directory of consolidated tables (default: output dir)")

	return cmd
}

func newDBLookupCmd() *cobra.Command {
	var year int

	cmd := &cobra.Command{
		Use:   "lookup <journal>",
		Short: "Look up a journal's quartile",
		Long: `Look up a journal by name. The name is normalized the same way matching
normalizes it, so punctuation and "The" prefixes do not matter.

Without --year, the journal's full quartile history is shown.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			db, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			journal := args[0]
			key := naming.NormalizeTitle(journal)
			display := cases.Title(language.AmericanEnglish).String(key)

			if year != 0 {
				quartile, found, err := db.LookupQuartile(year, key)
				if err != nil {
					return err
				}
				if !found {
					fmt.Printf("%s (%d): %s\n", display, year, ui.Quartile(naming.NotFound))
					return nil
				}
				fmt.Printf("%s (%d): %s\n", display, year, ui.Quartile(quartile))
				return nil
			}

			history, err := db.LookupHistory(key)
			if err != nil {
				return err
			}
			if len(history) == 0 {
				fmt.Printf("%s: %s in any stored year\n", display, ui.Quartile(naming.NotFound))
				return nil
			}

			table := ui.NewTable("Year", "Quartile", "Rank")
			for _, rk := range history {
				table.AddRow(strconv.Itoa(rk.Year), ui.Quartile(rk.Quartile), rk.SJRRank)
			}
			fmt.Println(display)
			table.Render()
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "restrict the lookup to one year")

	return cmd
}

func newDBStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show per-year ranking counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			db, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			stats, err := db.Stats()
			if err != nil {
				return err
			}
			if len(stats) == 0 {
				fmt.Println("Store is empty. Run 'sjrank db import' first.")
				return nil
			}

			table := ui.NewTable("Year", "Journals", "Q1", "Q2", "Q3", "Q4")
			for _, ys := range stats {
				table.AddRow(
					strconv.Itoa(ys.Year),
					ui.Count(ys.Total),
					ui.Count(ys.ByTier["Q1"]),
					ui.Count(ys.ByTier["Q2"]),
					ui.Count(ys.ByTier["Q3"]),
					ui.Count(ys.ByTier["Q4"]),
				)
			}
			table.Render()
			return nil
		},
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sjrtools/sjrank/internal/config"
	"github.com/sjrtools/sjrank/internal/logging"
)

var (
	version = "dev" // Set by build flags: -ldflags="-X main.version=1.0.0"
	cfgFile string
	verbose bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sjrank",
		Short: "Consolidate SJR journal quartile rankings and annotate datasets",
		Long: `sjrank builds one canonical journal ranking table per year from the
SCImago subject-area exports, then uses those tables to annotate article
datasets with the quartile that applied to each journal in the article's
own year.

Typical workflow:
  sjrank consolidate --years 1999-2024    # build SJR{year}_QRank.xlsx tables
  sjrank match --file "second filter.xlsx" --sheet "rank filter"
  sjrank db import                        # optional: load tables into sqlite`,
		SilenceUsage: true,
		Version:      version,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ~/.config/sjrank/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(newConsolidateCmd())
	rootCmd.AddCommand(newMatchCmd())
	rootCmd.AddCommand(newDatabaseCmd())
	rootCmd.AddCommand(newConfigCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads the configured (or default) config file.
func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		return config.LoadFile(cfgFile)
	}
	return config.Load()
}

// newLogger builds the logger from config, honoring --verbose.
func newLogger(cfg *config.Config) (*logging.Logger, error) {
	logCfg := cfg.Logging
	if verbose {
		logCfg.Level = "debug"
	}
	return logging.New(logCfg)
}

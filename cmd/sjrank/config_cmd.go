package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/sjrtools/sjrank/internal/config"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage sjrank configuration",
		Long: `Commands for managing sjrank configuration.

The config file is stored at: ~/.config/sjrank/config.toml

Examples:
  sjrank config init              # Create default config file
  sjrank config show              # Display current configuration
  sjrank config path              # Show config file path`,
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigPathCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if config.ConfigExists() && !force {
				path, _ := config.ConfigPath()
				return fmt.Errorf("config already exists at %s (use --force to overwrite)", path)
			}

			cfg := config.DefaultConfig()
			if err := cfg.Save(); err != nil {
				return fmt.Errorf("unable to save config: %w", err)
			}

			path, _ := config.ConfigPath()
			fmt.Printf("✓ Created config file: %s\n", path)
			fmt.Println("\nEdit it to point input.dir at your SJR exports, then run")
			fmt.Println("'sjrank consolidate' to build the yearly ranking tables.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing config file")

	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Display current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			caser := cases.Title(language.AmericanEnglish)
			areas := make([]string, len(cfg.Input.SubjectAreas))
			for i, area := range cfg.Input.SubjectAreas {
				areas[i] = caser.String(strings.ToLower(area))
			}

			fmt.Printf("Input dir:      %s\n", cfg.Input.Dir)
			fmt.Printf("Subject areas:  %s\n", strings.Join(areas, "; "))
			fmt.Printf("Source pattern: %s\n", cfg.Input.SourcePattern)
			fmt.Printf("Output dir:     %s\n", cfg.Output.Dir)
			fmt.Printf("Table pattern:  %s\n", cfg.Output.RankingPattern)
			fmt.Printf("Years:          %d-%d\n", cfg.Years.First, cfg.Years.Last)
			fmt.Printf("Log level:      %s\n", cfg.Logging.Level)

			dbPath, err := cfg.DatabasePath()
			if err == nil {
				fmt.Printf("Database:       %s\n", dbPath)
			}
			return nil
		},
	}
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Show config file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.ConfigPath()
			if err != nil {
				return err
			}
			fmt.Println(path)
			return nil
		},
	}
}

package consolidate

import (
	"fmt"
	"path/filepath"

	"github.com/sjrtools/sjrank/internal/config"
	"github.com/sjrtools/sjrank/internal/logging"
	"github.com/sjrtools/sjrank/internal/sjr"
)

// Consolidator runs yearly consolidations against the configured input and
// output directories.
type Consolidator struct {
	cfg *config.Config
	log *logging.Logger
}

// YearResult carries one year's consolidated rows and diagnostics.
type YearResult struct {
	Year       int
	Rows       []Row
	Stats      Stats
	OutputPath string
}

// New creates a Consolidator.
func New(cfg *config.Config, log *logging.Logger) *Consolidator {
	return &Consolidator{cfg: cfg, log: log}
}

// RunYear loads every subject-area export for a year, consolidates them and
// writes the year's ranking table. A missing or unreadable source file is
// fatal for the year; callers decide whether other years continue.
func (c *Consolidator) RunYear(year int) (*YearResult, error) {
	paths := sjr.SourcePaths(c.cfg.Input.Dir, c.cfg.Input.SourcePattern, year, c.cfg.Input.SubjectAreas)

	var entries []sjr.Entry
	for _, path := range paths {
		if err := sjr.CheckExists(path); err != nil {
			return nil, err
		}

		loaded, err := sjr.LoadFile(path)
		if err != nil {
			return nil, err
		}

		c.log.Info("consolidate", "loaded source file",
			logging.F("file", filepath.Base(path)),
			logging.F("rows", len(loaded)))
		entries = append(entries, loaded...)
	}

	rows, stats := Year(entries)
	c.log.Info("consolidate", "consolidated year",
		logging.F("year", year),
		logging.F("total_rows", stats.TotalRows),
		logging.F("kept_rows", stats.KeptRows))

	outPath := filepath.Join(c.cfg.Output.Dir, sjr.RankingFileName(c.cfg.Output.RankingPattern, year))
	if err := WriteYear(outPath, rows); err != nil {
		return nil, fmt.Errorf("year %d: %w", year, err)
	}

	return &YearResult{
		Year:       year,
		Rows:       rows,
		Stats:      stats,
		OutputPath: outPath,
	}, nil
}

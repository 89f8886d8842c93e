// Package match annotates journal records with the quartile that applied in
// the record's own year, using the consolidated ranking tables as read-only
// reference data.
package match

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/sjrtools/sjrank/internal/naming"
	"github.com/sjrtools/sjrank/internal/sjr"
)

// Table maps normalized journal titles to quartile labels for one year.
type Table map[string]string

// TableProvider supplies the ranking table for a given year. The second
// return is false when no table exists for that year, which is not an
// error: rows for such years are simply left unannotated.
type TableProvider interface {
	TableForYear(year int) (Table, bool, error)
}

// DirProvider loads per-year ranking tables (SJR{year}_QRank.xlsx) from a
// directory on demand and caches them for the rest of the run.
type DirProvider struct {
	dir     string
	pattern string
	cache   map[int]Table
	missing map[int]bool
}

// NewDirProvider creates a provider over a directory of yearly tables.
func NewDirProvider(dir, pattern string) *DirProvider {
	if pattern == "" {
		pattern = sjr.DefaultRankingPattern
	}
	return &DirProvider{
		dir:     dir,
		pattern: pattern,
		cache:   make(map[int]Table),
		missing: make(map[int]bool),
	}
}

func (p *DirProvider) TableForYear(year int) (Table, bool, error) {
	if table, ok := p.cache[year]; ok {
		return table, true, nil
	}
	if p.missing[year] {
		return nil, false, nil
	}

	path := filepath.Join(p.dir, sjr.RankingFileName(p.pattern, year))
	if _, err := os.Stat(path); os.IsNotExist(err) {
		p.missing[year] = true
		return nil, false, nil
	}

	table, err := LoadRankingTable(path)
	if err != nil {
		return nil, false, err
	}
	p.cache[year] = table
	return table, true, nil
}

// FixedProvider serves one table for every year, for datasets that are not
// year-partitioned.
type FixedProvider struct {
	table Table
}

// NewFixedProvider loads a single consolidated table to match every row
// against regardless of year.
func NewFixedProvider(path string) (*FixedProvider, error) {
	if err := sjr.CheckExists(path); err != nil {
		return nil, err
	}
	table, err := LoadRankingTable(path)
	if err != nil {
		return nil, err
	}
	return &FixedProvider{table: table}, nil
}

func (p *FixedProvider) TableForYear(int) (Table, bool, error) {
	return p.table, true, nil
}

// LoadRankingTable reads a consolidated ranking file into a lookup table.
// The Title_Clean column written by consolidation is used directly when
// present; otherwise keys are rebuilt by normalizing the Title column.
func LoadRankingTable(path string) (Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open %s: %w", path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("unable to read %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty ranking file: %s", path)
	}

	header := rows[0]
	cleanIdx, titleIdx, quartileIdx := -1, -1, -1
	for i, name := range header {
		switch normalizeHeader(name) {
		case "title_clean":
			cleanIdx = i
		case "title":
			titleIdx = i
		case "quartile":
			quartileIdx = i
		}
	}

	if quartileIdx < 0 || (cleanIdx < 0 && titleIdx < 0) {
		return nil, fmt.Errorf("required columns Title_Clean/Title and Quartile not found in %s (columns present: %v)",
			path, header)
	}

	table := make(Table, len(rows)-1)
	for _, row := range rows[1:] {
		var key string
		if cleanIdx >= 0 {
			key = cellAt(row, cleanIdx)
		} else {
			key = naming.NormalizeTitle(cellAt(row, titleIdx))
		}
		quartile := cellAt(row, quartileIdx)
		if key == "" || quartile == "" {
			continue
		}
		if _, exists := table[key]; !exists {
			table[key] = quartile
		}
	}
	return table, nil
}

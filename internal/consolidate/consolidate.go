// Package consolidate merges one year's subject-area SJR loads into a single
// canonical ranking table: quartile labels are cleaned and filtered, titles
// are normalized, and journals appearing in several subject areas collapse
// to their best-quartile entry.
package consolidate

import (
	"sort"
	"strconv"
	"strings"

	"github.com/sjrtools/sjrank/internal/naming"
	"github.com/sjrtools/sjrank/internal/sjr"
)

// Row is one canonical journal entry in a year's consolidated table.
type Row struct {
	Title      string
	Quartile   string
	Rank       string
	SourceFile string
	QRank      int
	TitleClean string

	// Numeric view of Rank for sorting; rankOK is false for missing or
	// non-numeric ranks, which sort after numeric ones.
	rankNum float64
	rankOK  bool
}

// Stats summarizes one year's consolidation for the caller.
type Stats struct {
	SourceRows     map[string]int
	TotalRows      int
	KeptRows       int
	QuartileCounts map[string]int
}

// Year reduces the union of a year's subject-area entries to one row per
// normalized title. Rows whose cleaned quartile is not Q1-Q4 are dropped
// silently; among duplicates the best quartile wins, then the lowest
// numeric rank.
func Year(entries []sjr.Entry) ([]Row, Stats) {
	stats := Stats{
		SourceRows:     make(map[string]int),
		QuartileCounts: make(map[string]int),
	}

	rows := make([]Row, 0, len(entries))
	for _, e := range entries {
		stats.SourceRows[e.SourceFile]++
		stats.TotalRows++

		quartile := naming.CleanQuartile(e.Quartile)
		if !naming.IsValidQuartile(quartile) {
			continue
		}

		row := Row{
			Title:      e.Title,
			Quartile:   quartile,
			Rank:       e.Rank,
			SourceFile: e.SourceFile,
			QRank:      naming.QuartileOrdinal(quartile),
			TitleClean: naming.NormalizeTitle(e.Title),
		}
		if n, err := strconv.ParseFloat(strings.TrimSpace(e.Rank), 64); err == nil {
			row.rankNum = n
			row.rankOK = true
		}
		rows = append(rows, row)
	}

	// Best candidate first; the stable sort keeps input order as the final
	// tie-break so fully equal duplicates collapse deterministically.
	sort.SliceStable(rows, func(i, j int) bool {
		return lessByQuartileRank(rows[i], rows[j])
	})

	seen := make(map[string]bool, len(rows))
	deduped := rows[:0]
	for _, row := range rows {
		if seen[row.TitleClean] {
			continue
		}
		seen[row.TitleClean] = true
		deduped = append(deduped, row)
	}
	rows = deduped

	// Final presentation order adds the title as last key so output is
	// stable and human-reviewable.
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].QRank != rows[j].QRank || rows[i].rankOK != rows[j].rankOK ||
			(rows[i].rankOK && rows[i].rankNum != rows[j].rankNum) {
			return lessByQuartileRank(rows[i], rows[j])
		}
		return rows[i].Title < rows[j].Title
	})

	for _, row := range rows {
		stats.QuartileCounts[row.Quartile]++
	}
	stats.KeptRows = len(rows)

	return rows, stats
}

// lessByQuartileRank orders by quartile ordinal ascending, then numeric rank
// ascending with non-numeric ranks last.
func lessByQuartileRank(a, b Row) bool {
	if a.QRank != b.QRank {
		return a.QRank < b.QRank
	}
	if a.rankOK != b.rankOK {
		return a.rankOK
	}
	if a.rankOK && a.rankNum != b.rankNum {
		return a.rankNum < b.rankNum
	}
	return false
}

// HasRank reports whether any row carries a rank value, which decides
// whether the output table gets an SJR_Rank column.
func HasRank(rows []Row) bool {
	for _, row := range rows {
		if strings.TrimSpace(row.Rank) != "" {
			return true
		}
	}
	return false
}

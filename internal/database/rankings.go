package database

import (
	"database/sql"
	"fmt"

	"github.com/sjrtools/sjrank/internal/consolidate"
)

// Ranking is one stored canonical journal entry.
type Ranking struct {
	Year       int
	TitleClean string
	Title      string
	Quartile   string
	QRank      int
	SJRRank    string
	SourceFile string
}

// YearStats is the per-year breakdown returned by Stats.
type YearStats struct {
	Year   int
	Total  int
	ByTier map[string]int
}

// ImportYear replaces a year's stored rankings with freshly consolidated
// rows, in one transaction. Re-importing the same year is idempotent, which
// matches the regenerate-from-scratch lifecycle of the flat files.
func (r *RankingDB) ImportYear(year int, rows []consolidate.Row) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("unable to begin import: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM rankings WHERE year = ?`, year); err != nil {
		return fmt.Errorf("unable to clear year %d: %w", year, err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO rankings (year, title_clean, title, quartile, q_rank, sjr_rank, source_file)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(year, title_clean) DO UPDATE SET
			title = excluded.title,
			quartile = excluded.quartile,
			q_rank = excluded.q_rank,
			sjr_rank = excluded.sjr_rank,
			source_file = excluded.source_file
		WHERE excluded.q_rank < rankings.q_rank`)
	if err != nil {
		return fmt.Errorf("unable to prepare import: %w", err)
	}
	defer stmt.Close()

	for _, row := range rows {
		if _, err := stmt.Exec(year, row.TitleClean, row.Title, row.Quartile,
			row.QRank, row.Rank, row.SourceFile); err != nil {
			return fmt.Errorf("unable to import %q for %d: %w", row.Title, year, err)
		}
	}

	return tx.Commit()
}

// LookupQuartile returns the quartile stored for a normalized title in one
// year. The second return is false when the year holds no such journal.
func (r *RankingDB) LookupQuartile(year int, titleClean string) (string, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var quartile string
	err := r.db.QueryRow(`
		SELECT quartile FROM rankings WHERE year = ? AND title_clean = ?`,
		year, titleClean).Scan(&quartile)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return quartile, true, nil
}

// LookupHistory returns every (year, quartile) pair stored for a normalized
// title, in year order.
func (r *RankingDB) LookupHistory(titleClean string) ([]Ranking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rows, err := r.db.Query(`
		SELECT year, title_clean, title, quartile, q_rank, sjr_rank, source_file
		FROM rankings WHERE title_clean = ? ORDER BY year`, titleClean)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Ranking
	for rows.Next() {
		var rk Ranking
		if err := rows.Scan(&rk.Year, &rk.TitleClean, &rk.Title, &rk.Quartile,
			&rk.QRank, &rk.SJRRank, &rk.SourceFile); err != nil {
			return nil, err
		}
		out = append(out, rk)
	}
	return out, rows.Err()
}

// Stats returns per-year totals and quartile breakdowns, in year order.
func (r *RankingDB) Stats() ([]YearStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rows, err := r.db.Query(`
		SELECT year, quartile, COUNT(*)
		FROM rankings GROUP BY year, quartile ORDER BY year`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []YearStats
	for rows.Next() {
		var year, count int
		var quartile string
		if err := rows.Scan(&year, &quartile, &count); err != nil {
			return nil, err
		}

		// Rows arrive ordered by year, so each year is contiguous.
		if len(out) == 0 || out[len(out)-1].Year != year {
			out = append(out, YearStats{Year: year, ByTier: make(map[string]int)})
		}
		stats := &out[len(out)-1]
		stats.ByTier[quartile] += count
		stats.Total += count
	}
	return out, rows.Err()
}

// CountRankings returns the number of stored rows across all years.
func (r *RankingDB) CountRankings() (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var n int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM rankings`).Scan(&n)
	return n, err
}

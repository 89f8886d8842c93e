package match

import (
	"strconv"
	"strings"

	"github.com/sjrtools/sjrank/internal/naming"
)

// Candidate column names for the annotation sheet, tried in order,
// case-insensitively. Datasets merged from different exports disagree on
// what the journal column is called.
var (
	journalCandidates = []string{"journal", "source title", "source", "publication", "journal name"}
	yearCandidates    = []string{"year"}
)

// OutputColumn is the annotation column written next to the passthrough
// columns.
const OutputColumn = "Quartile_Matched"

// Summary reports the annotation outcome per quartile plus the NOT FOUND
// and skipped counts. Skipped rows had no ranking table for their year (or
// no usable year at all) and were left blank.
type Summary struct {
	Counts  map[string]int
	Total   int
	Skipped int
}

// Matched returns the number of rows annotated with a real quartile.
func (s *Summary) Matched() int {
	n := 0
	for _, q := range naming.Quartiles {
		n += s.Counts[q]
	}
	return n
}

// Matcher resolves quartiles for (year, journal) rows against the tables a
// provider serves. The same lookup drives both the year-scoped and the
// single-table modes; only the provider differs.
type Matcher struct {
	provider TableProvider
	byYear   bool
}

// NewMatcher creates a year-scoped matcher: each row is resolved against
// the table of its own year, never a neighboring year's.
func NewMatcher(provider TableProvider) *Matcher {
	return &Matcher{provider: provider, byYear: true}
}

// NewSingleTableMatcher creates a matcher that ignores the year dimension
// and resolves every row against one fixed table.
func NewSingleTableMatcher(provider TableProvider) *Matcher {
	return &Matcher{provider: provider, byYear: false}
}

// Resolve looks up one row's quartile. The returned value is "" when the
// row must stay blank (no table for its year), the quartile label on a hit,
// and the NOT FOUND sentinel when the year's table exists but lacks the
// journal.
func (m *Matcher) Resolve(rawYear, journal string) (string, error) {
	year := 0
	if m.byYear {
		parsed, ok := parseYear(rawYear)
		if !ok {
			return "", nil
		}
		year = parsed
	}

	table, ok, err := m.provider.TableForYear(year)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", nil
	}

	if quartile, found := table[naming.NormalizeTitle(journal)]; found {
		return quartile, nil
	}
	return naming.NotFound, nil
}

// RequiresYear reports whether the annotation sheet must carry a year
// column for this matcher.
func (m *Matcher) RequiresYear() bool {
	return m.byYear
}

// parseYear converts a year cell to an int, tolerating the float rendering
// spreadsheets produce ("2007.0").
func parseYear(raw string) (int, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n, true
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && f == float64(int(f)) {
		return int(f), true
	}
	return 0, false
}

func normalizeHeader(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func cellAt(row []string, idx int) string {
	if idx >= 0 && idx < len(row) {
		return row[idx]
	}
	return ""
}

// findColumn resolves the first matching candidate against a header row.
func findColumn(header []string, candidates []string) int {
	byName := make(map[string]int, len(header))
	for i, name := range header {
		key := normalizeHeader(name)
		if _, exists := byName[key]; !exists && key != "" {
			byName[key] = i
		}
	}
	for _, cand := range candidates {
		if idx, ok := byName[cand]; ok {
			return idx
		}
	}
	return -1
}

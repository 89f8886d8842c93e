package consolidate

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/sjrtools/sjrank/internal/sjr"
)

func entry(title, quartile, rank, source string) sjr.Entry {
	return sjr.Entry{Title: title, Quartile: quartile, Rank: rank, SourceFile: source}
}

func TestYearBestQuartileWins(t *testing.T) {
	// Same journal from two subject areas with different quartiles.
	rows, _ := Year([]sjr.Entry{
		entry("ACM Computing Surveys", "Q2", "12", "business.xlsx"),
		entry("ACM Computing Surveys", "Q1", "5", "compsci.xlsx"),
	})

	require.Len(t, rows, 1)
	assert.Equal(t, "Q1", rows[0].Quartile)
	assert.Equal(t, "5", rows[0].Rank)
	assert.Equal(t, "compsci.xlsx", rows[0].SourceFile)
}

func TestYearNormalizedDuplicatesCollapse(t *testing.T) {
	// Titles differing only in casing, "The" and "&" are the same journal.
	rows, _ := Year([]sjr.Entry{
		entry("The Journal of Foo & Bar", "Q3", "", "a.xlsx"),
		entry("Journal of Foo and Bar", "Q2", "", "b.xlsx"),
	})

	require.Len(t, rows, 1)
	assert.Equal(t, "journal of foo and bar", rows[0].TitleClean)
	assert.Equal(t, "Q2", rows[0].Quartile)
}

func TestYearSameQuartileLowerRankWins(t *testing.T) {
	rows, _ := Year([]sjr.Entry{
		entry("Shared Journal", "Q1", "40", "a.xlsx"),
		entry("Shared Journal", "Q1", "8", "b.xlsx"),
	})

	require.Len(t, rows, 1)
	assert.Equal(t, "8", rows[0].Rank)
}

func TestYearInvalidQuartilesDropped(t *testing.T) {
	rows, stats := Year([]sjr.Entry{
		entry("Good Journal", `"Q2" `, "1", "a.xlsx"),
		entry("Bad Tier", "Q5", "2", "a.xlsx"),
		entry("No Tier", "", "3", "a.xlsx"),
		entry("Not Applicable", "n/a", "4", "a.xlsx"),
	})

	require.Len(t, rows, 1)
	assert.Equal(t, "Good Journal", rows[0].Title)
	assert.Equal(t, "Q2", rows[0].Quartile, "embedded quotes and spaces cleaned")
	assert.Equal(t, 4, stats.TotalRows)
	assert.Equal(t, 1, stats.KeptRows)
	assert.Equal(t, map[string]int{"Q2": 1}, stats.QuartileCounts)
}

func TestYearOutputOrder(t *testing.T) {
	rows, _ := Year([]sjr.Entry{
		entry("Zeta Journal", "Q2", "", "a.xlsx"),
		entry("Beta Journal", "Q1", "9", "a.xlsx"),
		entry("Alpha Journal", "Q2", "", "a.xlsx"),
		entry("Gamma Journal", "Q1", "2", "a.xlsx"),
		entry("Unranked Q1", "Q1", "n/a", "a.xlsx"),
	})

	require.Len(t, rows, 5)

	var titles []string
	for _, r := range rows {
		titles = append(titles, r.Title)
	}
	// Q1 numeric ranks first (ascending), non-numeric rank after them,
	// then Q2 alphabetical.
	assert.Equal(t, []string{
		"Gamma Journal",
		"Beta Journal",
		"Unranked Q1",
		"Alpha Journal",
		"Zeta Journal",
	}, titles)
}

func TestYearIdempotent(t *testing.T) {
	input := []sjr.Entry{
		entry("The Journal of Foo & Bar", "Q1", "3", "cs.xlsx"),
		entry("Journal of Foo and Bar", "Q2", "17", "psy.xlsx"),
		entry("Another Journal", "Q4", "", "bus.xlsx"),
		entry("Dropped", "Q9", "", "bus.xlsx"),
	}

	first, firstStats := Year(input)
	second, secondStats := Year(input)

	assert.Equal(t, first, second)
	assert.Equal(t, firstStats, secondStats)
}

func TestYearRankNumericSort(t *testing.T) {
	// "10" must sort after "9" numerically, not lexically.
	rows, _ := Year([]sjr.Entry{
		entry("Journal Ten", "Q1", "10", "a.xlsx"),
		entry("Journal Nine", "Q1", "9", "a.xlsx"),
	})

	require.Len(t, rows, 2)
	assert.Equal(t, "Journal Nine", rows[0].Title)
}

func TestHasRank(t *testing.T) {
	assert.False(t, HasRank([]Row{{Rank: ""}, {Rank: " "}}))
	assert.True(t, HasRank([]Row{{Rank: ""}, {Rank: "4"}}))
}

func TestWriteYearRoundTrip(t *testing.T) {
	rows, _ := Year([]sjr.Entry{
		entry("Beta Journal", "Q1", "9", "cs.xlsx"),
		entry("Alpha Journal", "Q2", "1", "psy.xlsx"),
	})

	path := filepath.Join(t.TempDir(), "SJR2010_QRank.xlsx")
	require.NoError(t, WriteYear(path, rows))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetRows(f.GetSheetName(0))
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, []string{"Title", "Quartile", "SJR_Rank", "Source_File", "Q_Rank", "Title_Clean"}, got[0])
	assert.Equal(t, []string{"Beta Journal", "Q1", "9", "cs.xlsx", "1", "beta journal"}, got[1])
	assert.Equal(t, []string{"Alpha Journal", "Q2", "1", "psy.xlsx", "2", "alpha journal"}, got[2])
}

func TestWriteYearWithoutRankColumn(t *testing.T) {
	rows, _ := Year([]sjr.Entry{
		entry("Only Journal", "Q3", "", "cs.xlsx"),
	})

	path := filepath.Join(t.TempDir(), "SJR1999_QRank.xlsx")
	require.NoError(t, WriteYear(path, rows))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetRows(f.GetSheetName(0))
	require.NoError(t, err)
	assert.Equal(t, []string{"Title", "Quartile", "Source_File", "Q_Rank", "Title_Clean"}, got[0])
}

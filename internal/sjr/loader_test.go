package sjr

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// writeSheet writes rows into a fresh workbook at dir/name and returns the
// full path.
func writeSheet(t *testing.T, dir, name string, rows [][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}

	path := filepath.Join(dir, name)
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestLoadFileDirectTable(t *testing.T) {
	path := writeSheet(t, t.TempDir(), "direct.xlsx", [][]interface{}{
		{"Rank", "Title", "SJR Best Quartile", "SJR"},
		{"1", "ACM Computing Surveys", "Q1", "5.1"},
		{"2", "Psychological Review", "Q1", "4.9"},
		{"3", "Applied Economics Letters", "Q3", "0.3"},
	})

	entries, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, "ACM Computing Surveys", entries[0].Title)
	assert.Equal(t, "Q1", entries[0].Quartile)
	assert.Equal(t, "1", entries[0].Rank)
	assert.Equal(t, "direct.xlsx", entries[0].SourceFile)
	assert.Equal(t, "Q3", entries[2].Quartile)
}

func TestLoadFileHeaderCaseInsensitive(t *testing.T) {
	path := writeSheet(t, t.TempDir(), "mixed.xlsx", [][]interface{}{
		{"RANK", "title", "Best Quartile"},
		{"7", "Journal of Testing", "Q2"},
	})

	entries, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Journal of Testing", entries[0].Title)
	assert.Equal(t, "Q2", entries[0].Quartile)
	assert.Equal(t, "7", entries[0].Rank)
}

func TestLoadFileRankOptional(t *testing.T) {
	path := writeSheet(t, t.TempDir(), "norank.xlsx", [][]interface{}{
		{"Title", "Quartile"},
		{"Journal of Testing", "Q4"},
	})

	entries, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Empty(t, entries[0].Rank)
}

func TestLoadFileSemicolonFallback(t *testing.T) {
	// Each logical record exported as one semicolon-delimited string; the
	// second data row split across two cells, the third with a mis-quoted
	// quartile field (space before the opening quote).
	path := writeSheet(t, t.TempDir(), "semicolon.xlsx", [][]interface{}{
		{`Rank;Title;SJR Best Quartile`},
		{`1;"ACM Computing Surveys";"Q1"`},
		{`2;"Journal of Foo; Applied";`, `"Q2"`},
		{`3;Plain Title; "Q3"`},
	})

	entries, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, "ACM Computing Surveys", entries[0].Title)
	assert.Equal(t, "Q1", entries[0].Quartile)
	assert.Equal(t, "Journal of Foo; Applied", entries[1].Title,
		"quoted semicolons must not split the title")
	assert.Equal(t, "Q2", entries[1].Quartile)
	assert.Equal(t, "2", entries[1].Rank)
	assert.Equal(t, ` "Q3"`, entries[2].Quartile,
		"mis-quoted cells survive loading; consolidation cleans them")
}

func TestLoadFileSchemaError(t *testing.T) {
	path := writeSheet(t, t.TempDir(), "bad.xlsx", [][]interface{}{
		{"Name", "Tier"},
		{"Some Journal", "A"},
	})

	_, err := LoadFile(path)
	require.Error(t, err)

	var schemaErr *SchemaError
	require.True(t, errors.As(err, &schemaErr))
	assert.Equal(t, path, schemaErr.Path)
	assert.Contains(t, schemaErr.Columns, "Name")
	assert.Contains(t, schemaErr.Columns, "Tier")
}

func TestLoadFileEmpty(t *testing.T) {
	path := writeSheet(t, t.TempDir(), "empty.xlsx", nil)

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty file")
}

func TestFileNameConventions(t *testing.T) {
	assert.Equal(t,
		"scimagojr 1999  Subject Area - Computer Science.xlsx",
		SourceFileName(DefaultSourcePattern, 1999, "Computer Science"))
	assert.Equal(t, "SJR2007_QRank.xlsx", RankingFileName(DefaultRankingPattern, 2007))
}

func TestCheckExists(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "nope.xlsx")

	err := CheckExists(missing)
	require.Error(t, err)
	assert.Contains(t, err.Error(), missing)

	present := writeSheet(t, dir, "ok.xlsx", [][]interface{}{{"Title", "Quartile"}})
	assert.NoError(t, CheckExists(present))
}

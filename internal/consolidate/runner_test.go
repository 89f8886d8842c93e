package consolidate

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/sjrtools/sjrank/internal/config"
	"github.com/sjrtools/sjrank/internal/logging"
	"github.com/sjrtools/sjrank/internal/sjr"
)

func writeSourceFile(t *testing.T, dir string, year int, area string, rows [][]interface{}) {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	name := sjr.SourceFileName(sjr.DefaultSourcePattern, year, area)
	require.NoError(t, f.SaveAs(filepath.Join(dir, name)))
}

func testConfig(inputDir, outputDir string, areas []string) *config.Config {
	cfg := config.DefaultConfig()
	cfg.Input.Dir = inputDir
	cfg.Input.SubjectAreas = areas
	cfg.Output.Dir = outputDir
	return cfg
}

func TestRunYear(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := t.TempDir()

	writeSourceFile(t, inputDir, 2010, "Computer Science", [][]interface{}{
		{"Rank", "Title", "SJR Best Quartile"},
		{"5", "ACM Computing Surveys", "Q1"},
		{"90", "Some CS Journal", "Q2"},
	})
	writeSourceFile(t, inputDir, 2010, "Business", [][]interface{}{
		{"Rank", "Title", "Best Quartile"},
		{"12", "ACM Computing Surveys", "Q2"},
		{"30", "Harvard Business Review", "Q1"},
	})

	c := New(testConfig(inputDir, outputDir, []string{"Computer Science", "Business"}), logging.Discard())

	result, err := c.RunYear(2010)
	require.NoError(t, err)

	assert.Equal(t, 4, result.Stats.TotalRows)
	assert.Equal(t, 3, result.Stats.KeptRows, "duplicate journal collapsed")
	assert.Equal(t, 2, result.Stats.QuartileCounts["Q1"])
	assert.Equal(t, 1, result.Stats.QuartileCounts["Q2"])

	assert.FileExists(t, result.OutputPath)
	assert.Equal(t, filepath.Join(outputDir, "SJR2010_QRank.xlsx"), result.OutputPath)

	// The merged entry keeps the best quartile across subject areas.
	var merged *Row
	for i := range result.Rows {
		if result.Rows[i].TitleClean == "acm computing surveys" {
			merged = &result.Rows[i]
		}
	}
	require.NotNil(t, merged)
	assert.Equal(t, "Q1", merged.Quartile)
	assert.Equal(t, "5", merged.Rank)
}

func TestRunYearMissingSourceFile(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := t.TempDir()

	writeSourceFile(t, inputDir, 2010, "Computer Science", [][]interface{}{
		{"Title", "Quartile"},
		{"ACM Computing Surveys", "Q1"},
	})

	c := New(testConfig(inputDir, outputDir, []string{"Computer Science", "Psychology"}), logging.Discard())

	_, err := c.RunYear(2010)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing file")
	assert.Contains(t, err.Error(), "Psychology")
	assert.NoFileExists(t, filepath.Join(outputDir, "SJR2010_QRank.xlsx"))
}

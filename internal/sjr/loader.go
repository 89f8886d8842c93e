package sjr

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// LoadFile extracts (Title, Quartile, Rank) rows from one subject-area
// export. The direct-table layout is tried first; if the header does not
// resolve, the file is re-read as a semicolon export. SchemaError is
// returned only when both layouts fail.
func LoadFile(path string) ([]Entry, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets in %s", path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("unable to read %s: %w", path, err)
	}

	if entries, ok := extractEntries(rows, filepath.Base(path)); ok {
		return entries, nil
	}

	reconstructed, err := reconstructSemicolonRows(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if entries, ok := extractEntries(reconstructed, filepath.Base(path)); ok {
		return entries, nil
	}

	// A genuine table that simply lacks the expected columns should be
	// reported with its own header, not the concatenated reconstruction.
	columns := newColumnSet(reconstructed[0]).names()
	if direct := newColumnSet(rows[0]).names(); len(direct) > 1 {
		columns = direct
	}
	return nil, &SchemaError{Path: path, Columns: columns}
}

// extractEntries applies column resolution to a header row and pulls the
// title/quartile/rank cells from the data rows. Returns false when the
// required columns are missing.
func extractEntries(rows [][]string, sourceFile string) ([]Entry, bool) {
	if len(rows) == 0 {
		return nil, false
	}

	cols := newColumnSet(rows[0])
	titleIdx := cols.find(titleCandidates)
	quartileIdx := cols.find(quartileCandidates)
	if titleIdx < 0 || quartileIdx < 0 {
		return nil, false
	}
	rankIdx := cols.find(rankCandidates)

	entries := make([]Entry, 0, len(rows)-1)
	for _, row := range rows[1:] {
		entry := Entry{
			Title:      cell(row, titleIdx),
			Quartile:   cell(row, quartileIdx),
			SourceFile: sourceFile,
		}
		if rankIdx >= 0 {
			entry.Rank = cell(row, rankIdx)
		}
		entries = append(entries, entry)
	}
	return entries, true
}

// reconstructSemicolonRows rebuilds logical rows from a broken export where
// each record is one semicolon-delimited string, possibly split across
// cells. Non-empty cells are concatenated per sheet row and the joined text
// is parsed as ;-delimited, "-quoted records.
func reconstructSemicolonRows(rows [][]string) ([][]string, error) {
	var lines []string
	for _, row := range rows {
		var sb strings.Builder
		for _, c := range row {
			if c != "" {
				sb.WriteString(c)
			}
		}
		if sb.Len() > 0 {
			lines = append(lines, sb.String())
		}
	}

	reader := csv.NewReader(strings.NewReader(strings.Join(lines, "\n")))
	reader.Comma = ';'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var parsed [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("semicolon reconstruction failed: %w", err)
		}
		parsed = append(parsed, record)
	}

	if len(parsed) == 0 {
		return nil, fmt.Errorf("empty file")
	}
	return parsed, nil
}

func cell(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}

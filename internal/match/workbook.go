package match

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/sjrtools/sjrank/internal/sjr"
)

// AnnotateWorkbook opens the annotation workbook, fills the Quartile_Matched
// column on the target sheet and saves the result to outPath (or in place
// when outPath is empty). All other sheets are preserved untouched.
func AnnotateWorkbook(path, sheet string, m *Matcher, outPath string) (*Summary, error) {
	if err := sjr.CheckExists(path); err != nil {
		return nil, err
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if idx, _ := f.GetSheetIndex(sheet); idx < 0 {
		return nil, fmt.Errorf("sheet %q not found in %s (sheets present: %s)",
			sheet, path, strings.Join(sheets, ", "))
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("unable to read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q is empty", sheet)
	}

	header := rows[0]
	journalIdx := findColumn(header, journalCandidates)
	if journalIdx < 0 {
		return nil, fmt.Errorf("journal column not found in sheet %q (columns present: %v); accepted names: %v",
			sheet, header, journalCandidates)
	}

	yearIdx := findColumn(header, yearCandidates)
	if m.RequiresYear() && yearIdx < 0 {
		return nil, fmt.Errorf("year column not found in sheet %q (columns present: %v)", sheet, header)
	}

	outIdx := findColumn(header, []string{strings.ToLower(OutputColumn)})
	if outIdx < 0 {
		outIdx = len(header)
		if err := setCell(f, sheet, outIdx, 1, OutputColumn); err != nil {
			return nil, err
		}
	}

	summary := &Summary{Counts: make(map[string]int)}
	for i, row := range rows[1:] {
		rawYear := ""
		if yearIdx >= 0 {
			rawYear = cellAt(row, yearIdx)
		}

		quartile, err := m.Resolve(rawYear, cellAt(row, journalIdx))
		if err != nil {
			return nil, err
		}

		summary.Total++
		if quartile == "" {
			summary.Skipped++
			continue
		}
		summary.Counts[quartile]++

		if err := setCell(f, sheet, outIdx, i+2, quartile); err != nil {
			return nil, err
		}
	}

	if outPath == "" || outPath == path {
		err = f.Save()
	} else {
		err = f.SaveAs(outPath)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to save annotated workbook: %w", err)
	}

	return summary, nil
}

// ValidateRankingFile checks that a single-table rankings file carries the
// columns the matcher needs, so operators get a clear message before any
// annotation starts.
func ValidateRankingFile(path string) error {
	if err := sjr.CheckExists(path); err != nil {
		return err
	}
	_, err := LoadRankingTable(path)
	return err
}

func setCell(f *excelize.File, sheet string, colIdx, rowNum int, value string) error {
	cell, err := excelize.CoordinatesToCellName(colIdx+1, rowNum)
	if err != nil {
		return err
	}
	return f.SetCellValue(sheet, cell, value)
}

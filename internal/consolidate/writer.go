package consolidate

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// WriteYear writes a consolidated table to an xlsx file. The SJR_Rank column
// is only emitted when at least one row carries a rank, mirroring source
// years that have no rank column at all. Rewriting the same rows always
// produces the same sheet content.
func WriteYear(path string, rows []Row) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	withRank := HasRank(rows)

	header := []interface{}{"Title", "Quartile"}
	if withRank {
		header = append(header, "SJR_Rank")
	}
	header = append(header, "Source_File", "Q_Rank", "Title_Clean")
	if err := setRow(f, sheet, 1, header); err != nil {
		return err
	}

	for i, row := range rows {
		values := []interface{}{row.Title, row.Quartile}
		if withRank {
			values = append(values, row.Rank)
		}
		values = append(values, row.SourceFile, row.QRank, row.TitleClean)
		if err := setRow(f, sheet, i+2, values); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("unable to write %s: %w", path, err)
	}
	return nil
}

func setRow(f *excelize.File, sheet string, rowNum int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

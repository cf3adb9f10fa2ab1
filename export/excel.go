package export

import (
	"github.com/gmfreire/cnesbeds"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Sheet1"

// writeExcel writes the dataset as an xlsx workbook with a header row.
// Counts are written as numeric cells.
func writeExcel(path string, ds cnesbeds.Dataset, index bool) error {
	f := excelize.NewFile()
	defer f.Close()

	setRow := func(rowNum int, values []any) error {
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, rowNum)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return err
			}
		}
		return nil
	}

	header := make([]any, 0, 10)
	if index {
		header = append(header, "")
	}
	for _, c := range cnesbeds.Columns() {
		header = append(header, c)
	}
	if err := setRow(1, header); err != nil {
		return err
	}

	for i, r := range ds {
		row := make([]any, 0, 10)
		if index {
			row = append(row, i)
		}
		row = append(row,
			r.CNES, r.Facility, string(r.Region), r.Municipality,
			r.BedType, r.Specialty, int(r.Existing), int(r.SUS), int(r.NonSUS))
		if err := setRow(i+2, row); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}

package render

import (
	"io"

	"github.com/xuri/excelize/v2"
)

func renderXLSX(w io.Writer, r Report) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := r.SheetName
	if sheet == "" {
		sheet = "Report"
	}
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	for i, col := range r.Columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, col); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, cell, cell, bold); err != nil {
			return err
		}
	}

	for ri, row := range r.Rows {
		for ci, v := range row {
			cell, err := excelize.CoordinatesToCellName(ci+1, ri+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}

	if n := len(r.Columns); n > 0 {
		last, _ := excelize.ColumnNumberToName(n)
		_ = f.SetColWidth(sheet, "A", last, 18)
	}
	return f.Write(w)
}

package export

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"
)

func cell(v any) string {
	switch x := v.(type) {
	case float64:
		return fmt.Sprintf("%.2f", x)
	default:
		return fmt.Sprint(v)
	}
}

// writeCSV renders all tables into a single csv, sections separated by a
// name row and a blank line.
func writeCSV(path string, doc Document) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	for _, table := range doc.Tables {
		if err := w.Write([]string{table.Name}); err != nil {
			return err
		}
		if err := w.Write(table.Header); err != nil {
			return err
		}
		for _, row := range table.Rows {
			record := make([]string, len(row))
			for i, v := range row {
				record[i] = cell(v)
			}
			if err := w.Write(record); err != nil {
				return err
			}
		}
		if err := w.Write([]string{}); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return f.Close()
}

// writeExcel renders each table as its own sheet.
func writeExcel(path string, doc Document) error {
	f := excelize.NewFile()
	defer f.Close()

	for i, table := range doc.Tables {
		sheet := table.Name
		if len(sheet) > 31 { // xlsx sheet name limit
			sheet = sheet[:31]
		}
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return err
			}
		} else if _, err := f.NewSheet(sheet); err != nil {
			return err
		}

		for col, h := range table.Header {
			addr, err := excelize.CoordinatesToCellName(col+1, 1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, addr, h); err != nil {
				return err
			}
		}
		for r, row := range table.Rows {
			for col, v := range row {
				addr, err := excelize.CoordinatesToCellName(col+1, r+2)
				if err != nil {
					return err
				}
				if err := f.SetCellValue(sheet, addr, v); err != nil {
					return err
				}
			}
		}
	}
	return f.SaveAs(path)
}

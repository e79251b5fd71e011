// Package xlsx reads and writes grid cells from Excel workbooks.
package xlsx

import (
	"fmt"

	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/matrix"
	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/models"
	"github.com/xuri/excelize/v2"
)

// Sheet is the cell content read from one worksheet.
type Sheet struct {
	// Name is the worksheet name.
	Name string
	// Updates holds one update per non-empty cell, row-major.
	Updates []models.Update
	// Numbers lists the coordinates whose value parses as a number.
	Numbers []models.Coord
}

// ReadSheet extracts cell data from a sheet. An empty sheetName selects the
// first sheet of the workbook. Coordinates are zero-based.
func ReadSheet(f *excelize.File, sheetName string) (*Sheet, error) {
	if sheetName == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("xlsx: workbook has no sheets")
		}
		sheetName = sheets[0]
	}
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("xlsx: read sheet %q: %w", sheetName, err)
	}

	sheet := &Sheet{Name: sheetName}
	for rowIdx, row := range rows {
		for colIdx, cellValue := range row {
			if cellValue == "" {
				continue
			}
			at := models.At(rowIdx, colIdx)
			sheet.Updates = append(sheet.Updates, models.Update{At: at, Value: cellValue})
			if _, isText := models.TypedValue(cellValue).(string); !isText {
				sheet.Numbers = append(sheet.Numbers, at)
			}
		}
	}
	return sheet, nil
}

// WriteSheet writes every stored cell of m to the named sheet, creating the
// sheet when needed. Number cells are written as numbers.
func WriteSheet(f *excelize.File, sheetName string, m matrix.Matrix) error {
	idx, err := f.GetSheetIndex(sheetName)
	if err != nil {
		return fmt.Errorf("xlsx: sheet %q: %w", sheetName, err)
	}
	if idx < 0 {
		if idx, err = f.NewSheet(sheetName); err != nil {
			return fmt.Errorf("xlsx: create sheet %q: %w", sheetName, err)
		}
	}
	f.SetActiveSheet(idx)

	for _, cell := range m.Cells() {
		if cell.Value == "" {
			continue
		}
		name := CellName(cell.At)
		if n, ok := cell.Number(); ok && cell.Type == models.TypeNumber {
			err = f.SetCellValue(sheetName, name, n)
		} else {
			err = f.SetCellStr(sheetName, name, cell.Value)
		}
		if err != nil {
			return fmt.Errorf("xlsx: write %s!%s: %w", sheetName, name, err)
		}
	}
	return nil
}

// Open opens a workbook file.
func Open(path string) (*excelize.File, error) {
	return excelize.OpenFile(path)
}

// Workbook builds a new workbook holding m as its only populated sheet.
// The caller closes the returned file.
func Workbook(sheetName string, m matrix.Matrix) (*excelize.File, error) {
	f := excelize.NewFile()
	if sheetName == "" {
		sheetName = "Sheet1"
	}
	if sheetName != "Sheet1" {
		if err := f.SetSheetName("Sheet1", sheetName); err != nil {
			f.Close()
			return nil, fmt.Errorf("xlsx: rename sheet: %w", err)
		}
	}
	if err := WriteSheet(f, sheetName, m); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

// Save writes m to a new workbook at path.
func Save(path, sheetName string, m matrix.Matrix) error {
	f, err := Workbook(sheetName, m)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.SaveAs(path)
}

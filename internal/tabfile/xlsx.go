package tabfile

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"sheetAlign/internal/table"
)

// loadXLSX reads the first sheet of a workbook: first row is the header,
// every following row is one data row. excelize trims trailing empty cells,
// so short rows are padded back to header width; cells past the header width
// have no column and are ignored.
func loadXLSX(path string) (*table.Table, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return &table.Table{}, nil
	}

	rows, err := file.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to get rows from %s: %w", path, err)
	}
	if len(rows) == 0 {
		return &table.Table{}, nil
	}

	header := rows[0]
	t := &table.Table{Columns: make([]table.Column, len(header))}
	for i, name := range header {
		t.Columns[i].Name = name
	}

	for _, record := range rows[1:] {
		for i := range t.Columns {
			value := ""
			if i < len(record) {
				value = record[i]
			}
			t.Columns[i].Cells = append(t.Columns[i].Cells, table.NewCell(value))
		}
	}

	return t, nil
}

// saveXLSX writes the table to a fresh single-sheet workbook at path.
func saveXLSX(t *table.Table, path string) error {
	file := excelize.NewFile()
	defer file.Close()

	sheet := file.GetSheetName(0)

	if err := writeSheetRow(file, sheet, 1, t.Header()); err != nil {
		return err
	}
	for r := 0; r < t.RowCount(); r++ {
		if err := writeSheetRow(file, sheet, r+2, row(t, r)); err != nil {
			return err
		}
	}

	return wrapWriteErr(file.SaveAs(path), path)
}

func writeSheetRow(file *excelize.File, sheet string, rowNum int, values []string) error {
	if len(values) == 0 {
		return nil
	}
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	if err := file.SetSheetRow(sheet, cell, &cells); err != nil {
		return fmt.Errorf("failed to write row %d: %w", rowNum, err)
	}
	return nil
}

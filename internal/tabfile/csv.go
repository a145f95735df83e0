package tabfile

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"sheetAlign/internal/table"
)

// loadCSV reads a CSV file: first record is the header, every following
// record is one data row. An empty file yields a table with no columns.
func loadCSV(path string) (*table.Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)

	header, err := reader.Read()
	if err == io.EOF {
		return &table.Table{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header from %s: %w", path, err)
	}

	t := &table.Table{Columns: make([]table.Column, len(header))}
	for i, name := range header {
		t.Columns[i].Name = name
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record from %s: %w", path, err)
		}
		for i := range t.Columns {
			t.Columns[i].Cells = append(t.Columns[i].Cells, table.NewCell(record[i]))
		}
	}

	return t, nil
}

// saveCSV writes the table as header row plus data rows.
func saveCSV(t *table.Table, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return wrapWriteErr(err, path)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	if err := writer.Write(t.Header()); err != nil {
		return fmt.Errorf("failed to write header to %s: %w", path, err)
	}
	for r := 0; r < t.RowCount(); r++ {
		if err := writer.Write(row(t, r)); err != nil {
			return fmt.Errorf("failed to write row to %s: %w", path, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

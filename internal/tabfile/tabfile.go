package tabfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"sheetAlign/internal/table"
)

// ErrUnsupportedFormat marks a path whose extension is neither .csv nor .xlsx.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// ErrWriteDenied marks a destination that is read-only, locked, or open in
// another program (typically Excel holding the file).
var ErrWriteDenied = errors.New("could not write file")

// NormalizePath strips surrounding quotes (pasted Windows paths often carry
// them) and resolves the path to a cleaned absolute form.
func NormalizePath(path string) string {
	path = strings.Trim(strings.TrimSpace(path), `"'`)
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return abs
}

// Supported reports whether the path's extension is one of the two tabular
// formats this tool reads and writes.
func Supported(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".xlsx":
		return true
	}
	return false
}

// Load reads the tabular file at path into a Table. The format is chosen by
// extension. The returned table is rectangular: every column has the same
// number of cells.
func Load(path string) (*table.Table, error) {
	path = NormalizePath(path)

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("file not found: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return loadCSV(path)
	case ".xlsx":
		return loadXLSX(path)
	default:
		return nil, fmt.Errorf("%w: %s (use .csv or .xlsx)", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Save writes the table to path in the format chosen by extension.
func Save(t *table.Table, path string) error {
	path = NormalizePath(path)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return saveCSV(t, path)
	case ".xlsx":
		return saveXLSX(t, path)
	default:
		return fmt.Errorf("%w: %s (use .csv or .xlsx)", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// wrapWriteErr folds permission and sharing failures into ErrWriteDenied so
// callers can suggest closing the file or checking permissions.
func wrapWriteErr(err error, path string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, fs.ErrPermission) {
		return fmt.Errorf("%w: %s: %v", ErrWriteDenied, path, err)
	}
	return err
}

// row materializes data row r of the table as strings; null cells become empty.
func row(t *table.Table, r int) []string {
	cells := make([]string, len(t.Columns))
	for c, col := range t.Columns {
		if r < len(col.Cells) && col.Cells[r].Valid {
			cells[c] = col.Cells[r].Value
		}
	}
	return cells
}

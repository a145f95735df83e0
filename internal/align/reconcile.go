package align

import (
	"fmt"
	"regexp"

	"sheetAlign/internal/table"
)

// Warning reports a reference column with fewer instances in the target than
// the reference requires. Informational only; the missing instances are padded
// with empty columns.
type Warning struct {
	Column   string
	Required int
	Found    int
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: required %d instances, found %d instances", w.Column, w.Required, w.Found)
}

// exportNumbering matches the trailing ".<n>" suffix that spreadsheet tools
// append when exporting repeated headers (e.g. "Header.1").
var exportNumbering = regexp.MustCompile(`\.\d+$`)

// Reconcile rebuilds target so its columns match the reference census exactly:
// same names, same per-name instance counts, in reference first-occurrence
// order.
//
// Matching is by exact name. For a name requiring n instances, the target's
// same-named columns are consumed left to right; missing instances become
// empty columns sized to the target's row count. Repeated instances keep the
// bare name and stay distinct by position. Target columns whose name is absent
// from the reference are dropped. A final pass strips export numbering from
// the output names. Neither input is modified.
func Reconcile(ref *table.ColumnCensus, target *table.Table) (*table.Table, []Warning) {
	out := &table.Table{}
	var warnings []Warning

	rowCount := target.RowCount()

	for _, name := range ref.Order {
		required := ref.Counts[name]
		available := target.ColumnsNamed(name)

		if len(available) < required {
			warnings = append(warnings, Warning{
				Column:   name,
				Required: required,
				Found:    len(available),
			})
		}

		for i := 0; i < required; i++ {
			out.Columns = append(out.Columns, instanceColumn(name, available, i, rowCount))
		}
	}

	stripExportNumbering(out)
	return out, warnings
}

// instanceColumn builds output instance #idx for a reference name: the
// matching target column's data when it exists, otherwise an empty column
// with the target's row count.
func instanceColumn(name string, available []table.Column, idx, rowCount int) table.Column {
	col := table.Column{Name: name}
	if idx < len(available) {
		col.Cells = append(col.Cells, available[idx].Cells...)
		return col
	}
	col.Cells = make([]table.Cell, rowCount)
	return col
}

// stripExportNumbering removes one trailing ".<n>" suffix from every column
// name. Applied to the finished table only, never to names used for matching:
// a target header still carrying export numbering will not match its bare
// reference name.
func stripExportNumbering(t *table.Table) {
	for i := range t.Columns {
		t.Columns[i].Name = exportNumbering.ReplaceAllString(t.Columns[i].Name, "")
	}
}

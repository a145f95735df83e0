package table

// Cell holds one value from a tabular file. Cells synthesized for missing
// column instances carry Valid=false and serialize as empty.
type Cell struct {
	Value string
	Valid bool
}

// Column is one named column of a table. Names may repeat within a table;
// columns are therefore identified by position, not name alone.
type Column struct {
	Name  string
	Cells []Cell
}

// Table is an ordered sequence of columns. All columns of a well-formed
// table have the same length; the file readers guarantee that.
type Table struct {
	Columns []Column
}

// ColumnCensus tallies how many columns share each name, plus the distinct
// names in order of first appearance.
type ColumnCensus struct {
	Counts map[string]int
	Order  []string
}

// NewCell returns a non-null cell holding the given text.
func NewCell(value string) Cell {
	return Cell{Value: value, Valid: true}
}

// ColumnCount returns the number of columns, counting repeated names separately.
func (t *Table) ColumnCount() int {
	return len(t.Columns)
}

// RowCount returns the number of data rows. A table with no columns has zero rows.
func (t *Table) RowCount() int {
	if len(t.Columns) == 0 {
		return 0
	}
	return len(t.Columns[0].Cells)
}

// Header returns the column names left to right, repeats included.
func (t *Table) Header() []string {
	names := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		names[i] = col.Name
	}
	return names
}

// Census scans the columns left to right and tallies instances per name.
func (t *Table) Census() *ColumnCensus {
	census := &ColumnCensus{
		Counts: make(map[string]int),
	}
	for _, col := range t.Columns {
		if census.Counts[col.Name] == 0 {
			census.Order = append(census.Order, col.Name)
		}
		census.Counts[col.Name]++
	}
	return census
}

// ColumnsNamed returns all columns whose name equals name, in table order.
func (t *Table) ColumnsNamed(name string) []Column {
	var instances []Column
	for _, col := range t.Columns {
		if col.Name == name {
			instances = append(instances, col)
		}
	}
	return instances
}

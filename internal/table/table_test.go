package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func makeColumn(name string, values ...string) Column {
	col := Column{Name: name}
	for _, v := range values {
		col.Cells = append(col.Cells, NewCell(v))
	}
	return col
}

func TestCensusCountsAndOrder(t *testing.T) {
	tbl := &Table{Columns: []Column{
		makeColumn("B", "1"),
		makeColumn("A", "2"),
		makeColumn("B", "3"),
		makeColumn("C", "4"),
		makeColumn("A", "5"),
		makeColumn("B", "6"),
	}}

	census := tbl.Census()

	assert.Equal(t, map[string]int{"B": 3, "A": 2, "C": 1}, census.Counts)
	assert.Equal(t, []string{"B", "A", "C"}, census.Order)

	total := 0
	for _, n := range census.Counts {
		total += n
	}
	assert.Equal(t, tbl.ColumnCount(), total)
}

func TestCensusEmptyTable(t *testing.T) {
	census := (&Table{}).Census()

	assert.Empty(t, census.Counts)
	assert.Empty(t, census.Order)
}

func TestCensusEmptyAndDuplicateNames(t *testing.T) {
	tbl := &Table{Columns: []Column{
		makeColumn(""),
		makeColumn("A"),
		makeColumn(""),
	}}

	census := tbl.Census()

	assert.Equal(t, 2, census.Counts[""])
	assert.Equal(t, []string{"", "A"}, census.Order)
}

func TestRowCount(t *testing.T) {
	assert.Equal(t, 0, (&Table{}).RowCount())

	tbl := &Table{Columns: []Column{makeColumn("A", "1", "2", "3")}}
	assert.Equal(t, 3, tbl.RowCount())

	headerOnly := &Table{Columns: []Column{makeColumn("A"), makeColumn("B")}}
	assert.Equal(t, 0, headerOnly.RowCount())
}

func TestHeader(t *testing.T) {
	tbl := &Table{Columns: []Column{
		makeColumn("A"),
		makeColumn("B"),
		makeColumn("B"),
	}}

	assert.Equal(t, []string{"A", "B", "B"}, tbl.Header())
}

func TestColumnsNamed(t *testing.T) {
	tbl := &Table{Columns: []Column{
		makeColumn("B", "first"),
		makeColumn("A", "x"),
		makeColumn("B", "second"),
	}}

	instances := tbl.ColumnsNamed("B")
	assert.Len(t, instances, 2)
	assert.Equal(t, "first", instances[0].Cells[0].Value)
	assert.Equal(t, "second", instances[1].Cells[0].Value)

	assert.Empty(t, tbl.ColumnsNamed("missing"))
}

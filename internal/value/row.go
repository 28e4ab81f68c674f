package value

import (
	"sort"
)

// Row maps type-qualified column identifiers to cell values.
// A Row is immutable once built; Index is its position in the source table.
type Row struct {
	Index int
	cells map[string]Value
}

// NewRow creates a Row at the given table position. The cells map is copied.
func NewRow(index int, cells map[string]Value) *Row {
	c := make(map[string]Value, len(cells))
	for k, v := range cells {
		c[k] = v
	}
	return &Row{Index: index, cells: c}
}

// Get returns the cell for a typed column identifier.
func (r *Row) Get(column string) (Value, bool) {
	v, ok := r.cells[column]
	return v, ok
}

// Cell returns the cell for a typed column, or Null when absent.
func (r *Row) Cell(column string) Value {
	if v, ok := r.cells[column]; ok && v != nil {
		return v
	}
	return Null{}
}

// Columns returns the row's typed column identifiers in sorted order.
func (r *Row) Columns() []string {
	cols := make([]string, 0, len(r.cells))
	for k := range r.cells {
		cols = append(cols, k)
	}
	sort.Strings(cols)
	return cols
}

// Len returns the number of cells in the row.
func (r *Row) Len() int {
	return len(r.cells)
}

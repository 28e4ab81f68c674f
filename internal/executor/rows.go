package executor

import (
	"math"
	"strings"

	"github.com/roach88/wtqexec/internal/lf"
	"github.com/roach88/wtqexec/internal/value"
)

// selectColumn projects a column in row order. Null cells are skipped.
func selectColumn(rows value.Rows, column string) value.List {
	out := value.List{}
	for _, r := range rows {
		if v := r.Cell(column); !value.IsNull(v) {
			out = append(out, v)
		}
	}
	return out
}

// beats reports whether a orders strictly before b in the requested
// direction: greater for max, lesser for min. Dates use the partial order,
// so incomparable dates never beat each other.
func beats(a, b value.Value, greatest bool) bool {
	switch x := a.(type) {
	case value.Number:
		y, ok := b.(value.Number)
		if !ok {
			return false
		}
		if greatest {
			return x > y
		}
		return x < y
	case value.Date:
		if greatest {
			return x.After(b)
		}
		return x.Before(b)
	}
	return false
}

// bestRow scans rows for the max (or min) non-null cell. Ties keep the
// first row.
func bestRow(rows value.Rows, column string, greatest bool) (*value.Row, value.Value) {
	var row *value.Row
	var top value.Value
	for _, r := range rows {
		v := r.Cell(column)
		if value.IsNull(v) {
			continue
		}
		if row == nil || beats(v, top, greatest) {
			row, top = r, v
		}
	}
	return row, top
}

func extremeRow(rows value.Rows, column string, greatest bool) value.Rows {
	row, _ := bestRow(rows, column, greatest)
	if row == nil {
		return value.Rows{}
	}
	return value.Rows{row}
}

func extremeValue(rows value.Rows, column string, greatest bool) value.List {
	row, v := bestRow(rows, column, greatest)
	if row == nil {
		return value.List{}
	}
	return value.List{v}
}

func filterNumber(rows value.Rows, column string, keep func(float64) bool) value.Rows {
	out := value.Rows{}
	for _, r := range rows {
		if n, ok := r.Cell(column).(value.Number); ok && keep(float64(n)) {
			out = append(out, r)
		}
	}
	return out
}

func filterDate(rows value.Rows, column string, keep func(value.Date) bool) value.Rows {
	out := value.Rows{}
	for _, r := range rows {
		if d, ok := r.Cell(column).(value.Date); ok && keep(d) {
			out = append(out, r)
		}
	}
	return out
}

// filterIn keeps rows whose string cell contains s (or, with in false,
// does not contain it). Null cells never pass.
func filterIn(rows value.Rows, column string, s value.String, in bool) value.Rows {
	out := value.Rows{}
	for _, r := range rows {
		cell, ok := r.Cell(column).(value.String)
		if !ok {
			continue
		}
		if strings.Contains(string(cell), string(s)) == in {
			out = append(out, r)
		}
	}
	return out
}

func (ev *evaluation) endRow(op Op, c *lf.Call, rows value.Rows) value.Rows {
	if len(rows) == 0 {
		ev.warn(op, c.Args()[0], "Trying to get "+op.String()+" row from an empty list")
		return value.Rows{}
	}
	if op == OpFirst {
		return value.Rows{rows[0]}
	}
	return value.Rows{rows[len(rows)-1]}
}

// adjacentRow returns the table row before or after the first input row.
// Adjacency follows table order, not the order of the input list.
func (ev *evaluation) adjacentRow(op Op, c *lf.Call, rows value.Rows) value.Rows {
	arg := c.Args()[0]
	if len(rows) == 0 {
		ev.warn(op, arg, "Trying to get the "+op.String()+" row from an empty list")
		return value.Rows{}
	}

	pos := ev.position(rows[0])
	if pos < 0 {
		ev.warn(op, arg, "Row is not part of the table")
		return value.Rows{}
	}
	if op == OpPrevious {
		if pos == 0 {
			ev.warn(op, arg, "Trying to get the previous row of the first row")
			return value.Rows{}
		}
		return value.Rows{ev.table[pos-1]}
	}
	if pos == len(ev.table)-1 {
		ev.warn(op, arg, "Trying to get the next row of the last row")
		return value.Rows{}
	}
	return value.Rows{ev.table[pos+1]}
}

// position returns row's offset in the table, or -1.
func (ev *evaluation) position(row *value.Row) int {
	if row.Index >= 0 && row.Index < len(ev.table) && ev.table[row.Index] == row {
		return row.Index
	}
	for i, r := range ev.table {
		if r == row || r.Index == row.Index {
			return i
		}
	}
	return -1
}

// mode returns every value tied for the highest count, in first-occurrence
// order. Null cells are not counted.
func mode(rows value.Rows, column string) value.List {
	counts := make(map[value.Value]int)
	var order []value.Value
	top := 0
	for _, r := range rows {
		v := r.Cell(column)
		if value.IsNull(v) {
			continue
		}
		if counts[v] == 0 {
			order = append(order, v)
		}
		counts[v]++
		top = max(top, counts[v])
	}
	out := value.List{}
	for _, v := range order {
		if counts[v] == top {
			out = append(out, v)
		}
	}
	return out
}

// sameAs returns the other table rows whose cell in column equals the first
// input row's. The reference row itself is excluded.
func (ev *evaluation) sameAs(rows value.Rows, column string) value.Rows {
	out := value.Rows{}
	if len(rows) == 0 {
		return out
	}
	ref := rows[0]
	want := ref.Cell(column)
	if value.IsNull(want) {
		return out
	}
	for _, r := range ev.table {
		if r == ref || r.Index == ref.Index {
			continue
		}
		if value.Equal(r.Cell(column), want) {
			out = append(out, r)
		}
	}
	return out
}

// numberOf reads a numeric cell; null or non-numeric cells count as 0.
func numberOf(r *value.Row, column string) float64 {
	if n, ok := r.Cell(column).(value.Number); ok {
		return float64(n)
	}
	return 0
}

func sum(rows value.Rows, column string) float64 {
	total := 0.0
	for _, r := range rows {
		total += numberOf(r, column)
	}
	return total
}

// diff is the absolute difference between the first rows of a and b, or an
// empty list when either is empty.
func diff(a, b value.Rows, column string) value.List {
	if len(a) == 0 || len(b) == 0 {
		return value.List{}
	}
	return value.List{value.Number(math.Abs(numberOf(a[0], column) - numberOf(b[0], column)))}
}

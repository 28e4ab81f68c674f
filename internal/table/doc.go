// Package table builds the question context for a tagged table file.
//
// A Context owns the table's typed, ordered rows and everything derived from
// the question: string entities linked to the columns they occur in, number
// literals with their token positions, and the knowledge graph connecting
// the two. All of it is computed once in the constructor; a Context is
// read-only afterwards and may be shared by concurrent executions.
//
// Tagged table format:
//
// Tab-separated, one line per cell, with a header line naming the fields.
// Only row, col, id, content, number, date and num2 are consulted:
//
//	row  col  id                content  ...  number  date        num2
//	-1   0    fb:row.row.year   Year
//	0    0    fb:cell.2001      2001          2001.0  2001-xx-xx
//
// Lines with row -1 declare columns. Remaining lines are cells in table
// order; a new row starts whenever the row index changes.
//
// Column typing:
//
// Every column gets a string_column identifier. A column whose share of
// cells carrying a number (date, second number) annotation exceeds the
// configured threshold also gets number_column (date_column, num2_column).
// Cells in a typed column without the annotation hold value.Null.
package table

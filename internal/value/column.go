package value

import "strings"

// ColumnType is the semantic type qualifying a column identifier.
type ColumnType string

const (
	StringColumn ColumnType = "string"
	NumberColumn ColumnType = "number"
	DateColumn   ColumnType = "date"
	// Num2Column holds the second number of multi-valued numeric cells.
	Num2Column ColumnType = "num2"
)

// columnTypes lists every type in identifier-prefix order.
var columnTypes = []ColumnType{StringColumn, NumberColumn, DateColumn, Num2Column}

// ColumnID returns the type-qualified identifier, e.g. "number_column:year".
func ColumnID(t ColumnType, name string) string {
	return string(t) + "_column:" + name
}

// ParseColumnID splits a type-qualified identifier into its type and name.
func ParseColumnID(id string) (ColumnType, string, bool) {
	for _, t := range columnTypes {
		prefix := string(t) + "_column:"
		if strings.HasPrefix(id, prefix) && len(id) > len(prefix) {
			return t, id[len(prefix):], true
		}
	}
	return "", "", false
}

// IsNumeric reports whether cells of the column type are Numbers.
func (t ColumnType) IsNumeric() bool {
	return t == NumberColumn || t == Num2Column
}

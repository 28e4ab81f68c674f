package testutil

import (
	"github.com/roach88/wtqexec/internal/date"
	"github.com/roach88/wtqexec/internal/value"
)

// SampleRows returns the two-row league table most executor tests run
// against:
//
//	date       division  num2  league              regular_season  playoffs       open_cup         avg_attendance
//	2001-1-?   2         5     usl_a_league        4th_western     quarterfinals  did_not_qualify  7169
//	2005-3-?   2         3     usl_first_division  5th             quarterfinals  4th_round        6028
func SampleRows() value.Rows {
	return value.Rows{
		value.NewRow(0, map[string]value.Value{
			"date_column:date":             value.NewDate(date.New(2001, 1, -1)),
			"number_column:division":       value.Number(2),
			"num2_column:division":         value.Number(5),
			"string_column:league":         value.String("usl_a_league"),
			"string_column:regular_season": value.String("4th_western"),
			"string_column:playoffs":       value.String("quarterfinals"),
			"string_column:open_cup":       value.String("did_not_qualify"),
			"number_column:avg_attendance": value.Number(7169),
		}),
		value.NewRow(1, map[string]value.Value{
			"date_column:date":             value.NewDate(date.New(2005, 3, -1)),
			"number_column:division":       value.Number(2),
			"num2_column:division":         value.Number(3),
			"string_column:league":         value.String("usl_first_division"),
			"string_column:regular_season": value.String("5th"),
			"string_column:playoffs":       value.String("quarterfinals"),
			"string_column:open_cup":       value.String("4th_round"),
			"number_column:avg_attendance": value.Number(6028),
		}),
	}
}

// Rows builds a row list from cell maps, indexing rows in order.
func Rows(cells ...map[string]value.Value) value.Rows {
	rows := make(value.Rows, len(cells))
	for i, c := range cells {
		rows[i] = value.NewRow(i, c)
	}
	return rows
}

package table

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/wtqexec/internal/date"
	"github.com/roach88/wtqexec/internal/value"
)

func cellsOf(row *value.Row) map[string]value.Value {
	cells := make(map[string]value.Value)
	for _, col := range row.Columns() {
		cells[col] = row.Cell(col)
	}
	return cells
}

func readFixture(t *testing.T, name, question string, opts ...Option) *Context {
	t.Helper()
	ctx, err := Read("testdata/"+name, Tokenize(question), opts...)
	require.NoError(t, err)
	return ctx
}

func TestReadSampleTable(t *testing.T) {
	ctx := readFixture(t, "sample_table.tagged", "what was the attendance when usl a league played?")

	rows := ctx.Rows()
	require.Len(t, rows, 2)

	assert.Equal(t, map[string]value.Value{
		"date_column:year":             value.NewDate(date.New(2001, -1, -1)),
		"string_column:year":           value.String("2001"),
		"number_column:year":           value.Number(2001),
		"number_column:division":       value.Number(2),
		"string_column:division":       value.String("2"),
		"string_column:league":         value.String("usl_a_league"),
		"string_column:regular_season": value.String("4th_western"),
		"number_column:regular_season": value.Number(4),
		"string_column:playoffs":       value.String("quarterfinals"),
		"string_column:open_cup":       value.String("did_not_qualify"),
		"number_column:open_cup":       value.Null{},
		"string_column:avg_attendance": value.String("7_169"),
		"number_column:avg_attendance": value.Number(7169),
	}, cellsOf(rows[0]))

	assert.Equal(t, map[string]value.Value{
		"date_column:year":             value.NewDate(date.New(2005, -1, -1)),
		"string_column:year":           value.String("2005"),
		"number_column:year":           value.Number(2005),
		"number_column:division":       value.Number(2),
		"string_column:division":       value.String("2"),
		"string_column:league":         value.String("usl_first_division"),
		"string_column:regular_season": value.String("5th"),
		"number_column:regular_season": value.Number(5),
		"string_column:playoffs":       value.String("quarterfinals"),
		"string_column:open_cup":       value.String("4th_round"),
		"number_column:open_cup":       value.Number(4),
		"string_column:avg_attendance": value.String("6_028"),
		"number_column:avg_attendance": value.Number(6028),
	}, cellsOf(rows[1]))

	assert.Equal(t, 0, rows[0].Index)
	assert.Equal(t, 1, rows[1].Index)
}

func TestReadColumnTypes(t *testing.T) {
	ctx := readFixture(t, "sample_table.tagged", "how many?")

	assert.Equal(t, []value.ColumnType{value.StringColumn, value.NumberColumn, value.DateColumn}, ctx.ColumnTypes("year"))
	assert.Equal(t, []value.ColumnType{value.StringColumn}, ctx.ColumnTypes("league"))
	assert.Equal(t, []value.ColumnType{value.StringColumn, value.NumberColumn}, ctx.ColumnTypes("open_cup"))
	assert.Equal(t, []string{"year", "division", "league", "regular_season", "playoffs", "open_cup", "avg_attendance"}, ctx.ColumnNames())

	assert.True(t, ctx.HasColumn("date_column:year"))
	assert.True(t, ctx.HasColumn("number_column:open_cup"))
	assert.False(t, ctx.HasColumn("date_column:league"))
	assert.Len(t, ctx.Columns(), 13)
}

func TestReadNumberThreshold(t *testing.T) {
	// open_cup has a number in one of two cells: 0.5 is not above 0.5.
	ctx := readFixture(t, "sample_table.tagged", "how many?", WithNumberThreshold(0.5))

	assert.Equal(t, []value.ColumnType{value.StringColumn}, ctx.ColumnTypes("open_cup"))
	assert.Equal(t, []value.ColumnType{value.StringColumn, value.NumberColumn, value.DateColumn}, ctx.ColumnTypes("year"))
	assert.False(t, ctx.HasColumn("number_column:open_cup"))
}

func TestReadPartialDatesAndSecondNumbers(t *testing.T) {
	ctx := readFixture(t, "games.tagged", "when was the attendance the highest?")

	rows := ctx.Rows()
	require.Len(t, rows, 4)
	assert.Equal(t, value.NewDate(date.New(-1, 11, 10)), rows[0].Cell("date_column:date"))
	assert.Equal(t, value.NewDate(date.New(2006, 2, 26)), rows[3].Cell("date_column:date"))

	// The first number is authoritative; the second populates num2.
	assert.Equal(t, value.Number(9150), rows[3].Cell("number_column:attendance"))
	assert.Equal(t, value.Number(9200), rows[3].Cell("num2_column:attendance"))
	assert.Equal(t, value.Null{}, rows[0].Cell("num2_column:attendance"))
	assert.False(t, ctx.HasColumn("number_column:date"))
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		msg   string
	}{
		{"empty", "", "empty table file"},
		{"missing field", "row\tcol\n0\t0\n", `missing field "content"`},
		{"bad row", "row\tcol\tcontent\nx\t0\ta\n", "invalid row index"},
		{"undeclared column", "row\tcol\tcontent\n0\t3\ta\n", "undeclared column 3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input), nil)
			require.Error(t, err)
			assert.True(t, IsFormatError(err))
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestReadMissingFile(t *testing.T) {
	_, err := Read("testdata/does-not-exist.tagged", nil)
	require.Error(t, err)
	assert.False(t, IsFormatError(err))
}

func TestReadHeaderWithoutSempreIDs(t *testing.T) {
	input := "row\tcol\tcontent\tnumber\n" +
		"-1\t0\tTeam Name\t\n" +
		"-1\t1\tPoints\t\n" +
		"0\t0\tRed Sox\t\n" +
		"0\t1\t12\t12.0\n"
	ctx, err := Parse(strings.NewReader(input), nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"team_name", "points"}, ctx.ColumnNames())
	require.Len(t, ctx.Rows(), 1)
	assert.Equal(t, value.String("red_sox"), ctx.Rows()[0].Cell("string_column:team_name"))
	assert.Equal(t, value.Number(12), ctx.Rows()[0].Cell("number_column:points"))
}

package answer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roach88/wtqexec/internal/date"
	"github.com/roach88/wtqexec/internal/value"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "USL First Division", want: "usl first division"},
		{in: "  Crème   Brûlée ", want: "creme brulee"},
		{in: "“Quoted”", want: "quoted"},
		{in: "1990–1995", want: "1990-1995"},
		{in: "Paris[1]", want: "paris"},
		{in: "Paris [note 2][3]", want: "paris"},
		{in: "[1]", want: ""},
		{in: "[note]", want: "[note]"},
		{in: "Smith†", want: "smith"},
		{in: "Berlin (Germany)", want: "berlin"},
		{in: "Berlin (Germany) (West)", want: "berlin"},
		{in: "(Germany)", want: "(germany)"},
		{in: `"Hello" (song)`, want: "hello"},
		{in: "Inc.", want: "inc"},
		{in: "O’Neil", want: "o'neil"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestToValue(t *testing.T) {
	assert.Equal(t, NewNumber(13197, "13197.0"), ToValue("13197.0"))
	assert.Equal(t, NewNumber(42, "42"), ToValue("42"))
	assert.Equal(t, NewNumber(2005, "2005-xx-xx"), ToValue("2005-xx-xx"))
	assert.Equal(t, NewDate(-1, 11, 10, "xxxx-11-10"), ToValue("xxxx-11-10"))
	assert.Equal(t, NewDate(2006, 2, 26, "2006-02-26"), ToValue("2006-02-26"))
	assert.Equal(t, NewString("2005-3--1"), ToValue("2005-3--1"))
	assert.Equal(t, NewString("nan"), ToValue("nan"))
	assert.Equal(t, NewString("2005-13-01"), ToValue("2005-13-01"))
	assert.Equal(t, NewString("xx-xx-xx"), ToValue("xx-xx-xx"))
}

func TestMatch(t *testing.T) {
	assert.True(t, ToValue("1141.0").Match(ToValue("1141")))
	assert.True(t, ToValue("0.3").Match(NewNumber(0.1+0.2, "")))
	assert.False(t, ToValue("1141.1").Match(ToValue("1141")))
	assert.True(t, ToValue("2006-02-26").Match(NewDate(2006, 2, 26, "")))
	assert.False(t, ToValue("2006-02-26").Match(NewDate(2006, 2, -1, "")))
	assert.True(t, ToValue("usl_first_division").Match(ToValue("USL_First_Division")))
	// A string can still match a number by text.
	assert.True(t, NewString("42").Match(ToValue("42")))
}

func TestToValuesDeduplicates(t *testing.T) {
	values := ToValues([]string{"7", "7.0", "seven", "Seven"})
	assert.Len(t, values, 2)
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name      string
		targets   []string
		predicted []string
		want      bool
	}{
		{name: "exact", targets: []string{"usl_first_division"}, predicted: []string{"usl_first_division"}, want: true},
		{name: "numeric tolerance", targets: []string{"13197"}, predicted: []string{"13197.0"}, want: true},
		{name: "order insensitive", targets: []string{"a", "b"}, predicted: []string{"b", "a"}, want: true},
		{name: "length mismatch", targets: []string{"a"}, predicted: []string{"a", "b"}, want: false},
		{name: "duplicates collapse", targets: []string{"a"}, predicted: []string{"a", "A"}, want: true},
		{name: "empty prediction", targets: []string{"a"}, predicted: nil, want: false},
		{name: "both empty", targets: nil, predicted: nil, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Check(ToValues(tt.targets), ToValues(tt.predicted)))
		})
	}
}

func TestFormatDenotation(t *testing.T) {
	assert.Equal(t, []string{"13197.0"}, FormatDenotation(value.List{value.Number(13197)}))
	assert.Equal(t, []string{"6598.5"}, FormatDenotation(value.List{value.Number(6598.5)}))
	assert.Equal(t, []string{"usl_a_league", "2005-3--1"}, FormatDenotation(value.List{
		value.String("usl_a_league"),
		value.NewDate(date.New(2005, 3, -1)),
	}))
	assert.Equal(t, []string{"None"}, FormatDenotation(value.Null{}))
	assert.Empty(t, FormatDenotation(value.List{}))

	row := value.NewRow(1, map[string]value.Value{"string_column:league": value.String("usl_first_division")})
	assert.Equal(t, []string{`{"__row":1,"string_column:league":"usl_first_division"}`}, FormatDenotation(value.Rows{row}))
}

func TestCheckDenotation(t *testing.T) {
	assert.True(t, CheckDenotation([]string{"usl_first_division"}, value.List{value.String("usl_first_division")}))
	assert.True(t, CheckDenotation([]string{"13197"}, value.List{value.Number(13197)}))
	assert.False(t, CheckDenotation([]string{"13197"}, value.List{}))
}

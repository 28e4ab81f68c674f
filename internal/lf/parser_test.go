package lf

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNested(t *testing.T) {
	e, err := Parse(`(select_string (first (filter_date_greater all_rows date_column:date
	                                   (date 2010 -1 -1))) string_column:regular_season)`)
	require.NoError(t, err)

	call, ok := e.(*Call)
	require.True(t, ok)
	require.NotNil(t, call.Head())
	assert.Equal(t, "select_string", call.Head().Text)
	require.Len(t, call.Args(), 2)

	first := call.Args()[0].(*Call)
	assert.Equal(t, "first", first.Head().Text)
	assert.Equal(t,
		"['filter_date_greater', 'all_rows', 'date_column:date', ['date', '2010', '-1', '-1']]",
		first.Args()[0].Repr())
	assert.Equal(t,
		"(select_string (first (filter_date_greater all_rows date_column:date (date 2010 -1 -1))) string_column:regular_season)",
		e.String())
}

func TestParseAtom(t *testing.T) {
	e, err := Parse("  all_rows\n")
	require.NoError(t, err)
	assert.Equal(t, &Atom{Text: "all_rows", Pos: 2}, e)
	assert.Equal(t, "'all_rows'", e.Repr())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		form string
		pos  int
	}{
		{name: "empty input", form: "", pos: 0},
		{name: "whitespace only", form: "   ", pos: 3},
		{name: "empty call", form: "(count ())", pos: 7},
		{name: "missing close", form: "(count (first all_rows)", pos: 0},
		{name: "stray close", form: ")", pos: 0},
		{name: "trailing close", form: "(count all_rows))", pos: 16},
		{name: "trailing atom", form: "(count all_rows) all_rows", pos: 17},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.form)
			require.Error(t, err)

			var pe *ParseError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, tt.pos, pe.Pos)
			assert.True(t, IsParseError(fmt.Errorf("wrapped: %w", err)))
		})
	}
}

func TestReprQuoting(t *testing.T) {
	assert.Equal(t, `"string:o'neil"`, (&Atom{Text: "string:o'neil"}).Repr())
	assert.Equal(t, `'a\'b"c'`, (&Atom{Text: `a'b"c`}).Repr())
}

func TestCallWithNestedHead(t *testing.T) {
	e, err := Parse("((first all_rows) x)")
	require.NoError(t, err)
	assert.Nil(t, e.(*Call).Head())
}

func TestLexerTokens(t *testing.T) {
	toks := NewLexer("(count all_rows)").Tokenize()
	assert.Equal(t, []Token{
		{Type: TokenLeftParen, Value: "(", Pos: 0},
		{Type: TokenAtom, Value: "count", Pos: 1},
		{Type: TokenAtom, Value: "all_rows", Pos: 7},
		{Type: TokenRightParen, Value: ")", Pos: 15},
		{Type: TokenEOF, Pos: 16},
	}, toks)
}

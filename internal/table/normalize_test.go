package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeString(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"USL A-League", "usl_a_league"},
		{"USL First Division", "usl_first_division"},
		{"4th, Western", "4th_western"},
		{"Did not qualify", "did_not_qualify"},
		{"7,169", "7_169"},
		{"  spaced   out  ", "spaced_out"},
		{"Avg. Attendance", "avg_attendance"},
		{"trailing!", "trailing"},
		{"Café Müller", "cafe_muller"},
		{"Straße", "strasse"},
		{"2–1", "2_1"},
		{"line\\nbreak", "line_break"},
		{"“quoted”", "_quoted"},
		{"東京 Tokyo", "tokyo"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeString(tt.in))
		})
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"what was the attendance when usl a league played?",
			[]string{"what", "was", "the", "attendance", "when", "usl", "a", "league", "played", "?"}},
		{"how many laps did matt kenset complete on february 26, 2006.",
			[]string{"how", "many", "laps", "did", "matt", "kenset", "complete", "on", "february", "26", ",", "2006", "."}},
		{"men's basketball team had more than 6,028 points in the 1990s",
			[]string{"men", "'s", "basketball", "team", "had", "more", "than", "6,028", "points", "in", "the", "1990s"}},
		{"the first tamil-language film",
			[]string{"the", "first", "tamil", "-", "language", "film"}},
		{"How many times does \"Friendly\" appear?",
			[]string{"how", "many", "times", "does", "\"", "friendly", "\"", "appear", "?"}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := Tokenize(tt.in)
			texts := make([]string, len(got))
			for i, tok := range got {
				texts[i] = tok.Text
			}
			assert.Equal(t, tt.want, texts)
		})
	}
}

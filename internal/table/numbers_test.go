package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumberExtraction(t *testing.T) {
	tests := []struct {
		name     string
		question string
		want     []NumberEntity
	}{
		{
			name:     "plain numbers",
			question: "how many players on the 191617 illinois fighting illini men's basketball team had more than 100 points scored?",
			want:     []NumberEntity{{"191617", 5}, {"100", 16}},
		},
		{
			name:     "month word and day",
			question: "how many laps did matt kenset complete on february 26, 2006.",
			want:     []NumberEntity{{"2", 8}, {"26", 9}, {"2006", 11}},
		},
		{
			name:     "year only",
			question: "how many different players scored for the san jose earthquakes during their 1979 home opener against the timbers?",
			want:     []NumberEntity{{"1979", 12}},
		},
		{
			name:     "ordinal word",
			question: "what was the first tamil-language film in 1943?",
			want:     []NumberEntity{{"1", 3}, {"1943", 9}},
		},
		{
			name:     "digits inside a word",
			question: "other than m1 how many notations have 1 in them?",
			want:     []NumberEntity{{"1", 2}, {"1", 7}},
		},
		{
			name:     "magnitude word",
			question: "which teams drew more than two thousand fans?",
			want:     []NumberEntity{{"2000", 5}},
		},
		{
			name:     "decimal",
			question: "who finished within 0.5 seconds?",
			want:     []NumberEntity{{"0.500", 3}},
		},
		{
			name:     "decade plural",
			question: "how many films came out in the 1990s?",
			want:     []NumberEntity{{"1990", 7}, {"2000", 7}},
		},
		{
			name:     "thousands separator",
			question: "was attendance above 6,028?",
			want:     []NumberEntity{{"6028", 3}},
		},
		{
			name:     "none",
			question: "on what date did the eagles score the least points?",
			want:     nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractNumbers(Tokenize(tt.question)))
		})
	}
}

func TestNumbersFromContext(t *testing.T) {
	ctx := readFixture(t, "games.tagged", "how many laps did matt kenset complete on february 26, 2006.")
	_, numbers := ctx.EntitiesFromQuestion()
	assert.Equal(t, []NumberEntity{{"2", 8}, {"26", 9}, {"2006", 11}}, numbers)
}

package table

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// NumberEntity is a numeric literal found in the question.
type NumberEntity struct {
	// Text is the literal as linked: integers render without a fraction,
	// decimals with three places.
	Text string `json:"text"`

	// Token is the index of the question token it came from.
	Token int `json:"token"`
}

var monthNumbers = map[string]int{
	"january": 1, "jan": 1, "february": 2, "feb": 2, "march": 3, "mar": 3,
	"april": 4, "apr": 4, "may": 5, "june": 6, "jun": 6, "july": 7, "jul": 7,
	"august": 8, "aug": 8, "september": 9, "sep": 9, "october": 10, "oct": 10,
	"november": 11, "nov": 11, "december": 12, "dec": 12,
}

var orderOfMagnitudeWords = map[string]float64{
	"hundred": 100, "thousand": 1000, "million": 1000000,
}

var numberWords = func() map[string]int {
	words := map[string]int{
		"zero": 0, "one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
		"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
		"first": 1, "second": 2, "third": 3, "fourth": 4, "fifth": 5,
		"sixth": 6, "seventh": 7, "eighth": 8, "ninth": 9, "tenth": 10,
	}
	for k, v := range monthNumbers {
		words[k] = v
	}
	return words
}()

// isNumberChar reports characters kept when stripping a token to its number.
func isNumberChar(r rune) bool {
	return (r >= '0' && r <= '9') || r == '.' || r == '-'
}

// extractNumbers finds numeric literals in question order. Number words,
// ordinals and month names count as numbers; a following "hundred",
// "thousand" or "million" scales the value; a decade plural such as "1990s"
// also yields the end of the decade. Non-numeric characters are stripped,
// so "7th" and "m1" yield 7 and 1.
func extractNumbers(tokens []Token) []NumberEntity {
	var numbers []NumberEntity
	for i, tok := range tokens {
		text := strings.ToLower(strings.ReplaceAll(tok.Text, ",", ""))

		var number float64
		found := false
		if n, ok := numberWords[text]; ok {
			number = float64(n)
			found = true
		}

		magnitude := 1.0
		if i < len(tokens)-1 {
			if m, ok := orderOfMagnitudeWords[strings.ToLower(tokens[i+1].Text)]; ok {
				magnitude = m
			}
		}

		isRange := false
		if len(text) > 1 && text[len(text)-1] == 's' && text[len(text)-2] == '0' {
			isRange = true
			text = text[:len(text)-1]
		}

		text = strings.Map(func(r rune) rune {
			if isNumberChar(r) {
				return r
			}
			return -1
		}, text)

		if f, err := strconv.ParseFloat(text, 64); err == nil && !math.IsInf(f, 0) {
			number = f
			found = true
		}
		if !found {
			continue
		}

		number *= magnitude
		var numberText string
		if strings.Contains(text, ".") {
			numberText = fmt.Sprintf("%.3f", number)
		} else {
			numberText = fmt.Sprintf("%d", int64(number))
		}
		numbers = append(numbers, NumberEntity{Text: numberText, Token: i})

		if isRange {
			zeros := 1
			for zeros+1 <= len(text) && text[len(text)-(zeros+1)] == '0' {
				zeros++
			}
			end := int64(number + math.Pow10(zeros))
			numbers = append(numbers, NumberEntity{Text: strconv.FormatInt(end, 10), Token: i})
		}
	}
	return numbers
}

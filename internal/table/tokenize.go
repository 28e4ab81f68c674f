package table

import (
	"regexp"
	"strings"
)

var tokenPattern = regexp.MustCompile(`\p{N}+(?:[.,]\p{N}+)*[\p{L}\p{N}_]*|[\p{L}\p{N}_]+|'[\p{L}]+|[^\s\p{L}\p{N}_]`)

// Tokenize splits a question into lower-cased word, number and punctuation
// tokens. It stands in for an external tokenizer when questions arrive as
// plain text (for example on the command line): "men's" becomes "men" and
// "'s", and "6,028" stays one token.
func Tokenize(question string) []Token {
	matches := tokenPattern.FindAllString(strings.ToLower(question), -1)
	return TokensFromStrings(matches)
}

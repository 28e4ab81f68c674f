package lf

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// TokenType classifies a lexical token.
type TokenType int

const (
	TokenEOF TokenType = iota
	TokenLeftParen
	TokenRightParen
	TokenAtom
)

// String returns the token type name used in error messages.
func (tt TokenType) String() string {
	switch tt {
	case TokenEOF:
		return "end of input"
	case TokenLeftParen:
		return `"("`
	case TokenRightParen:
		return `")"`
	case TokenAtom:
		return "atom"
	default:
		return fmt.Sprintf("TokenType(%d)", int(tt))
	}
}

// Token is a lexical token with its byte offset in the input.
type Token struct {
	Type  TokenType
	Value string
	Pos   int
}

// Lexer splits a logical form into tokens.
type Lexer struct {
	input string
	pos   int
}

// NewLexer creates a lexer over input.
func NewLexer(input string) *Lexer {
	return &Lexer{input: input}
}

// Next returns the next token. After the input is exhausted it keeps
// returning TokenEOF.
func (l *Lexer) Next() Token {
	l.skipSpace()
	if l.pos >= len(l.input) {
		return Token{Type: TokenEOF, Pos: l.pos}
	}

	start := l.pos
	switch l.input[l.pos] {
	case '(':
		l.pos++
		return Token{Type: TokenLeftParen, Value: "(", Pos: start}
	case ')':
		l.pos++
		return Token{Type: TokenRightParen, Value: ")", Pos: start}
	}

	for l.pos < len(l.input) {
		r, size := utf8.DecodeRuneInString(l.input[l.pos:])
		if r == '(' || r == ')' || unicode.IsSpace(r) {
			break
		}
		l.pos += size
	}
	return Token{Type: TokenAtom, Value: l.input[start:l.pos], Pos: start}
}

// Tokenize returns every token up to and including TokenEOF.
func (l *Lexer) Tokenize() []Token {
	var tokens []Token
	for {
		tok := l.Next()
		tokens = append(tokens, tok)
		if tok.Type == TokenEOF {
			return tokens
		}
	}
}

func (l *Lexer) skipSpace() {
	for l.pos < len(l.input) {
		r, size := utf8.DecodeRuneInString(l.input[l.pos:])
		if !unicode.IsSpace(r) {
			return
		}
		l.pos += size
	}
}

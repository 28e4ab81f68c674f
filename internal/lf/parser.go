package lf

import "fmt"

// Parser is a recursive-descent parser over a Lexer's token stream.
type Parser struct {
	lexer *Lexer
	cur   Token
}

// NewParser creates a parser for input.
func NewParser(input string) *Parser {
	p := &Parser{lexer: NewLexer(input)}
	p.advance()
	return p
}

// Parse parses a single logical form. The whole input must be consumed.
func Parse(form string) (Expr, error) {
	return NewParser(form).Parse()
}

// Parse parses one expression and requires end of input after it.
func (p *Parser) Parse() (Expr, error) {
	if p.cur.Type == TokenEOF {
		return nil, &ParseError{Pos: p.cur.Pos, Message: "empty expression"}
	}
	e, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.cur.Type != TokenEOF {
		return nil, &ParseError{
			Pos:     p.cur.Pos,
			Message: fmt.Sprintf("unexpected %s %q after complete expression", p.cur.Type, p.cur.Value),
		}
	}
	return e, nil
}

func (p *Parser) advance() {
	p.cur = p.lexer.Next()
}

func (p *Parser) parseExpr() (Expr, error) {
	switch p.cur.Type {
	case TokenAtom:
		a := &Atom{Text: p.cur.Value, Pos: p.cur.Pos}
		p.advance()
		return a, nil
	case TokenLeftParen:
		return p.parseCall()
	case TokenRightParen:
		return nil, &ParseError{Pos: p.cur.Pos, Message: `unbalanced ")"`}
	default:
		return nil, &ParseError{Pos: p.cur.Pos, Message: "unexpected end of input"}
	}
}

func (p *Parser) parseCall() (Expr, error) {
	open := p.cur.Pos
	p.advance()

	call := &Call{Pos: open}
	for {
		switch p.cur.Type {
		case TokenRightParen:
			if len(call.Items) == 0 {
				return nil, &ParseError{Pos: open, Message: "empty expression \"()\""}
			}
			p.advance()
			return call, nil
		case TokenEOF:
			return nil, &ParseError{Pos: open, Message: `unbalanced "(": missing ")"`}
		}
		item, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		call.Items = append(call.Items, item)
	}
}

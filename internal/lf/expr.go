package lf

import "strings"

// Expr is a parsed logical-form node: an *Atom or a *Call.
//
// The interface is sealed; only this package defines implementations.
type Expr interface {
	// String renders the node back as an S-expression.
	String() string

	// Repr renders the node as a nested bracket list, the form used in
	// executor diagnostics: ['first', ['filter_in', 'all_rows', ...]].
	Repr() string

	expr()
}

// Atom is a leaf token.
type Atom struct {
	Text string
	Pos  int
}

// Call is a parenthesized list. Items[0] is conventionally the operator.
type Call struct {
	Items []Expr
	Pos   int
}

func (*Atom) expr() {}
func (*Call) expr() {}

func (a *Atom) String() string { return a.Text }

func (a *Atom) Repr() string { return quote(a.Text) }

func (c *Call) String() string {
	parts := make([]string, len(c.Items))
	for i, item := range c.Items {
		parts[i] = item.String()
	}
	return "(" + strings.Join(parts, " ") + ")"
}

func (c *Call) Repr() string {
	parts := make([]string, len(c.Items))
	for i, item := range c.Items {
		parts[i] = item.Repr()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Head returns the operator atom of a call, or nil when the first item is
// itself a call.
func (c *Call) Head() *Atom {
	if len(c.Items) == 0 {
		return nil
	}
	a, _ := c.Items[0].(*Atom)
	return a
}

// Args returns the items after the operator.
func (c *Call) Args() []Expr {
	if len(c.Items) == 0 {
		return nil
	}
	return c.Items[1:]
}

// quote wraps s in single quotes, switching to double quotes when s holds a
// single quote and no double quote.
func quote(s string) string {
	if strings.Contains(s, "'") && !strings.Contains(s, `"`) {
		return `"` + s + `"`
	}
	return "'" + strings.ReplaceAll(s, "'", `\'`) + "'"
}

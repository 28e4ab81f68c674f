package executor

import (
	"log/slog"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/roach88/wtqexec/internal/lf"
	"github.com/roach88/wtqexec/internal/value"
)

const (
	allRows       = "all_rows"
	stringLiteral = "string:"
)

// evaluation carries the state of one Eval call.
type evaluation struct {
	table       value.Rows
	source      RowSource
	logger      *slog.Logger
	diagnostics []Diagnostic
}

// operands are a call's checked arguments, grouped by kind in parameter
// order.
type operands struct {
	rows    []value.Rows
	columns []string
	numbers []float64
	date    value.Date
	str     value.String
	ints    []int

	// emptyScalar is set when a scalar parameter received an empty list.
	emptyScalar lf.Expr
}

func (ev *evaluation) eval(e lf.Expr) (value.Value, error) {
	switch n := e.(type) {
	case *lf.Atom:
		return ev.constant(n)
	case *lf.Call:
		return ev.call(n)
	default:
		return nil, newError(ErrCodeUnknownConstant, e, "unsupported expression %T", e)
	}
}

func (ev *evaluation) constant(a *lf.Atom) (value.Value, error) {
	if a.Text == allRows {
		return ev.table, nil
	}
	if s, ok := strings.CutPrefix(a.Text, stringLiteral); ok {
		return value.String(s), nil
	}
	if f, err := strconv.ParseFloat(a.Text, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return value.Number(f), nil
	}
	if _, _, ok := value.ParseColumnID(a.Text); ok {
		return nil, newError(ErrCodeTypeMismatch, a, "column %s used where a value is expected", a.Text)
	}
	return nil, newError(ErrCodeUnknownConstant, a, "unknown constant %q", a.Text)
}

func (ev *evaluation) call(c *lf.Call) (value.Value, error) {
	head := c.Head()
	if head == nil {
		return nil, newError(ErrCodeUnknownFunction, c, "operator must be a name")
	}
	op, ok := LookupOp(head.Text)
	if !ok {
		return nil, newError(ErrCodeUnknownFunction, c, "unknown function %q", head.Text)
	}
	sig := op.Signature()
	args := c.Args()
	if len(args) != len(sig.Params) {
		return nil, newError(ErrCodeArity, c, "%s takes %d arguments, got %d", op, len(sig.Params), len(args))
	}

	var ops operands
	for i, p := range sig.Params {
		if err := ev.bind(&ops, p, args[i]); err != nil {
			return nil, err
		}
	}
	return ev.apply(op, c, ops)
}

// bind evaluates one argument and checks it against its parameter.
func (ev *evaluation) bind(ops *operands, p Param, arg lf.Expr) error {
	if p.Kind == ParamColumn {
		col, err := ev.column(arg, p)
		if err != nil {
			return err
		}
		ops.columns = append(ops.columns, col)
		return nil
	}

	v, err := ev.eval(arg)
	if err != nil {
		return err
	}

	if p.Kind == ParamRows {
		rows, ok := v.(value.Rows)
		if !ok {
			return newError(ErrCodeTypeMismatch, arg, "expected rows, got %s", v.Kind())
		}
		ops.rows = append(ops.rows, rows)
		return nil
	}

	if list, ok := v.(value.List); ok {
		if len(list) == 0 {
			if ops.emptyScalar == nil {
				ops.emptyScalar = arg
			}
			return nil
		}
		v = list[0]
	}

	switch p.Kind {
	case ParamNumber:
		n, ok := v.(value.Number)
		if !ok {
			return newError(ErrCodeTypeMismatch, arg, "expected number, got %s", v.Kind())
		}
		ops.numbers = append(ops.numbers, float64(n))
	case ParamDate:
		d, ok := v.(value.Date)
		if !ok {
			return newError(ErrCodeTypeMismatch, arg, "expected date, got %s", v.Kind())
		}
		ops.date = d
	case ParamString:
		s, ok := v.(value.String)
		if !ok {
			return newError(ErrCodeTypeMismatch, arg, "expected string, got %s", v.Kind())
		}
		ops.str = s
	case ParamInteger:
		n, ok := v.(value.Number)
		if !ok || float64(n) != math.Trunc(float64(n)) {
			return newError(ErrCodeTypeMismatch, arg, "expected integer, got %s", v.Kind())
		}
		ops.ints = append(ops.ints, int(n))
	}
	return nil
}

// column checks that arg names a column of an accepted type that the
// table has.
func (ev *evaluation) column(arg lf.Expr, p Param) (string, error) {
	a, ok := arg.(*lf.Atom)
	if !ok {
		return "", newError(ErrCodeTypeMismatch, arg, "expected %s, got an expression", p)
	}
	t, _, ok := value.ParseColumnID(a.Text)
	if !ok {
		return "", newError(ErrCodeTypeMismatch, arg, "expected %s, got %q", p, a.Text)
	}
	if !slices.Contains(p.Columns, t) {
		return "", newError(ErrCodeTypeMismatch, arg, "expected %s, got %s column", p, t)
	}
	if !ev.source.HasColumn(a.Text) {
		return "", newError(ErrCodeUnknownColumn, arg, "table has no column %s", a.Text)
	}
	return a.Text, nil
}

func (ev *evaluation) warn(op Op, arg lf.Expr, reason string) {
	d := Diagnostic{Op: op.String(), Expr: arg.Repr(), Reason: reason}
	ev.diagnostics = append(ev.diagnostics, d)
	ev.logger.Warn(d.String(), "op", d.Op)
}

package executor

import (
	"fmt"
	"log/slog"

	"github.com/roach88/wtqexec/internal/answer"
	"github.com/roach88/wtqexec/internal/lf"
	"github.com/roach88/wtqexec/internal/table"
	"github.com/roach88/wtqexec/internal/value"
)

// RowSource supplies the rows a logical form runs over, in table order.
// *table.Context satisfies it.
type RowSource interface {
	Rows() value.Rows
	HasColumn(id string) bool
}

type rowSource struct {
	rows    value.Rows
	columns map[string]struct{}
}

// FromRows adapts a fixed row list to a RowSource. Its columns are the
// union of the rows' columns.
func FromRows(rows value.Rows) RowSource {
	src := rowSource{rows: rows, columns: make(map[string]struct{})}
	for _, r := range rows {
		for _, c := range r.Columns() {
			src.columns[c] = struct{}{}
		}
	}
	return src
}

func (s rowSource) Rows() value.Rows { return s.rows }

func (s rowSource) HasColumn(id string) bool {
	_, ok := s.columns[id]
	return ok
}

// Executor evaluates logical forms against one table.
type Executor struct {
	source RowSource
	logger *slog.Logger
}

// Option configures an Executor.
type Option func(*Executor)

// WithLogger sets the logger diagnostics are written to. Defaults to
// slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(e *Executor) {
		if l != nil {
			e.logger = l
		}
	}
}

// New creates an Executor over source.
func New(source RowSource, opts ...Option) *Executor {
	e := &Executor{source: source, logger: slog.Default()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Execute parses and evaluates a logical form.
//
// Malformed syntax returns an error wrapping *lf.ParseError; unknown
// operators, bad arity and argument type violations return an error
// wrapping *ExecutionError. Soft failures are logged and produce empty
// results.
func (e *Executor) Execute(form string) (value.Value, error) {
	v, _, err := e.ExecuteWithDiagnostics(form)
	return v, err
}

// ExecuteWithDiagnostics is Execute that also returns the diagnostics
// recorded during evaluation, in the order they occurred.
func (e *Executor) ExecuteWithDiagnostics(form string) (value.Value, []Diagnostic, error) {
	expr, err := lf.Parse(form)
	if err != nil {
		return nil, nil, fmt.Errorf("execute: %w", err)
	}
	return e.Eval(expr)
}

// Eval evaluates an already parsed expression.
func (e *Executor) Eval(expr lf.Expr) (value.Value, []Diagnostic, error) {
	ev := &evaluation{table: e.source.Rows(), source: e.source, logger: e.logger}
	v, err := ev.eval(expr)
	if err != nil {
		return nil, ev.diagnostics, err
	}
	return v, ev.diagnostics, nil
}

// Evaluation is the outcome of evaluating a logical form against gold
// targets.
type Evaluation struct {
	Value       value.Value
	Diagnostics []Diagnostic
	Err         error
	Correct     bool
}

// Evaluate executes form and scores the result against targets. Targets
// are normalized the way table cells are before matching. An execution
// error makes the result incorrect and is returned in Err.
func (e *Executor) Evaluate(form string, targets []string) Evaluation {
	v, diags, err := e.ExecuteWithDiagnostics(form)
	if err != nil {
		e.logger.Warn("failed to execute logical form", "form", form, "error", err)
		return Evaluation{Diagnostics: diags, Err: err}
	}
	normalized := make([]string, len(targets))
	for i, t := range targets {
		normalized[i] = table.NormalizeString(t)
	}
	return Evaluation{
		Value:       v,
		Diagnostics: diags,
		Correct:     answer.CheckDenotation(normalized, v),
	}
}

// EvaluateLogicalForm reports whether form's result matches targets. It
// never fails: any parse or execution error yields false.
func (e *Executor) EvaluateLogicalForm(form string, targets []string) bool {
	return e.Evaluate(form, targets).Correct
}

package executor

import (
	"github.com/roach88/wtqexec/internal/date"
	"github.com/roach88/wtqexec/internal/lf"
	"github.com/roach88/wtqexec/internal/value"
)

// apply runs a bound operator. The switch is exhaustive over Op.
func (ev *evaluation) apply(op Op, c *lf.Call, ops operands) (value.Value, error) {
	if ops.emptyScalar != nil {
		if op == OpDate {
			return nil, newError(ErrCodeTypeMismatch, ops.emptyScalar, "expected integer, got an empty list")
		}
		ev.warn(op, ops.emptyScalar, "Filter value is an empty list")
		return value.Rows{}, nil
	}

	switch op {
	case OpSelectString, OpSelectNumber, OpSelectDate:
		return selectColumn(ops.rows[0], ops.columns[0]), nil
	case OpArgmax:
		return extremeRow(ops.rows[0], ops.columns[0], true), nil
	case OpArgmin:
		return extremeRow(ops.rows[0], ops.columns[0], false), nil

	case OpFilterNumberGreater:
		return filterNumber(ops.rows[0], ops.columns[0], func(a float64) bool { return a > ops.numbers[0] }), nil
	case OpFilterNumberGreaterEquals:
		return filterNumber(ops.rows[0], ops.columns[0], func(a float64) bool { return a >= ops.numbers[0] }), nil
	case OpFilterNumberLesser:
		return filterNumber(ops.rows[0], ops.columns[0], func(a float64) bool { return a < ops.numbers[0] }), nil
	case OpFilterNumberLesserEquals:
		return filterNumber(ops.rows[0], ops.columns[0], func(a float64) bool { return a <= ops.numbers[0] }), nil
	case OpFilterNumberEquals:
		return filterNumber(ops.rows[0], ops.columns[0], func(a float64) bool { return a == ops.numbers[0] }), nil
	case OpFilterNumberNotEquals:
		return filterNumber(ops.rows[0], ops.columns[0], func(a float64) bool { return a != ops.numbers[0] }), nil

	case OpFilterDateGreater:
		return filterDate(ops.rows[0], ops.columns[0], func(a value.Date) bool { return a.After(ops.date) }), nil
	case OpFilterDateGreaterEquals:
		return filterDate(ops.rows[0], ops.columns[0], func(a value.Date) bool { return a.AtOrAfter(ops.date) }), nil
	case OpFilterDateLesser:
		return filterDate(ops.rows[0], ops.columns[0], func(a value.Date) bool { return a.Before(ops.date) }), nil
	case OpFilterDateLesserEquals:
		return filterDate(ops.rows[0], ops.columns[0], func(a value.Date) bool { return a.AtOrBefore(ops.date) }), nil
	case OpFilterDateEquals:
		return filterDate(ops.rows[0], ops.columns[0], func(a value.Date) bool { return a.Same(ops.date) }), nil
	case OpFilterDateNotEquals:
		return filterDate(ops.rows[0], ops.columns[0], func(a value.Date) bool { return !a.Same(ops.date) }), nil

	case OpFilterIn:
		return filterIn(ops.rows[0], ops.columns[0], ops.str, true), nil
	case OpFilterNotIn:
		return filterIn(ops.rows[0], ops.columns[0], ops.str, false), nil

	case OpFirst, OpLast:
		return ev.endRow(op, c, ops.rows[0]), nil
	case OpPrevious, OpNext:
		return ev.adjacentRow(op, c, ops.rows[0]), nil

	case OpModeNumber, OpModeString, OpModeDate:
		return mode(ops.rows[0], ops.columns[0]), nil
	case OpSameAs:
		return ev.sameAs(ops.rows[0], ops.columns[0]), nil

	case OpSum:
		return value.List{value.Number(sum(ops.rows[0], ops.columns[0]))}, nil
	case OpAverage:
		if len(ops.rows[0]) == 0 {
			return value.List{value.Number(0)}, nil
		}
		return value.List{value.Number(sum(ops.rows[0], ops.columns[0]) / float64(len(ops.rows[0])))}, nil
	case OpDiff:
		return diff(ops.rows[0], ops.rows[1], ops.columns[0]), nil
	case OpCount:
		return value.List{value.Number(len(ops.rows[0]))}, nil
	case OpDate:
		return value.NewDate(date.New(ops.ints[0], ops.ints[1], ops.ints[2])), nil

	case OpMaxNumber, OpMaxDate:
		return extremeValue(ops.rows[0], ops.columns[0], true), nil
	case OpMinNumber, OpMinDate:
		return extremeValue(ops.rows[0], ops.columns[0], false), nil

	case opCount:
	}
	return nil, newError(ErrCodeUnknownFunction, c, "operator %s has no implementation", op)
}

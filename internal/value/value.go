package value

import (
	"github.com/roach88/wtqexec/internal/date"
)

// Kind identifies the variant of a Value.
type Kind string

const (
	KindString Kind = "string"
	KindNumber Kind = "number"
	KindDate   Kind = "date"
	KindList   Kind = "list"
	KindRows   Kind = "rows"
	KindNull   Kind = "null"
)

// Value is a sealed interface over the executor's value variants.
type Value interface {
	Kind() Kind
	value() // Sealed - only the types in this package implement it
}

// String is a normalized text value.
type String string

func (String) Kind() Kind { return KindString }
func (String) value()     {}

// Number is a numeric cell or literal.
type Number float64

func (Number) Kind() Kind { return KindNumber }
func (Number) value()     {}

// Date is a partial date value.
type Date date.Date

func (Date) Kind() Kind { return KindDate }
func (Date) value()     {}

// Null marks an absent cell.
type Null struct{}

func (Null) Kind() Kind { return KindNull }
func (Null) value()     {}

// List is an ordered sequence of scalar values, the result of projections
// and aggregates.
type List []Value

func (List) Kind() Kind { return KindList }
func (List) value()     {}

// Rows is an ordered sequence of table rows (a row list).
type Rows []*Row

func (Rows) Kind() Kind { return KindRows }
func (Rows) value()     {}

// NewDate wraps a date.Date as a Value.
func NewDate(d date.Date) Date {
	return Date(d)
}

// Unwrap returns the underlying date.Date.
func (d Date) Unwrap() date.Date {
	return date.Date(d)
}

// String renders the date as year-month-day with -1 for unknown parts.
func (d Date) String() string {
	return date.Date(d).String()
}

// After reports whether d is strictly after v. False when v is not a Date.
func (d Date) After(v Value) bool {
	o, ok := v.(Date)
	return ok && d.Unwrap().Greater(o.Unwrap())
}

// Before reports whether d is strictly before v. False when v is not a Date.
func (d Date) Before(v Value) bool {
	o, ok := v.(Date)
	return ok && d.Unwrap().Less(o.Unwrap())
}

// AtOrAfter reports After or Same. False when v is not a Date.
func (d Date) AtOrAfter(v Value) bool {
	o, ok := v.(Date)
	return ok && d.Unwrap().GreaterEqual(o.Unwrap())
}

// AtOrBefore reports Before or Same. False when v is not a Date.
func (d Date) AtOrBefore(v Value) bool {
	o, ok := v.(Date)
	return ok && d.Unwrap().LessEqual(o.Unwrap())
}

// Same reports partial-date equality. A non-Date is never the same.
func (d Date) Same(v Value) bool {
	o, ok := v.(Date)
	return ok && d.Unwrap().Equal(o.Unwrap())
}

// IsNull reports whether v is absent (nil or Null).
func IsNull(v Value) bool {
	if v == nil {
		return true
	}
	_, ok := v.(Null)
	return ok
}

// Equal reports whether two scalar values are equal under the executor's
// semantics: strings and numbers compare exactly, dates use partial-date
// equality, nulls equal nulls. Values of different kinds are never equal.
func Equal(a, b Value) bool {
	switch x := a.(type) {
	case String:
		y, ok := b.(String)
		return ok && x == y
	case Number:
		y, ok := b.(Number)
		return ok && x == y
	case Date:
		return x.Same(b)
	case Null:
		return IsNull(b)
	case nil:
		return IsNull(b)
	default:
		return false
	}
}

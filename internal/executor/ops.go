package executor

import (
	"fmt"
	"sort"
	"strings"

	"github.com/roach88/wtqexec/internal/value"
)

// Op identifies an operator of the logical-form language.
type Op int

const (
	OpSelectString Op = iota
	OpSelectNumber
	OpSelectDate
	OpArgmax
	OpArgmin
	OpFilterNumberGreater
	OpFilterNumberGreaterEquals
	OpFilterNumberLesser
	OpFilterNumberLesserEquals
	OpFilterNumberEquals
	OpFilterNumberNotEquals
	OpFilterDateGreater
	OpFilterDateGreaterEquals
	OpFilterDateLesser
	OpFilterDateLesserEquals
	OpFilterDateEquals
	OpFilterDateNotEquals
	OpFilterIn
	OpFilterNotIn
	OpFirst
	OpLast
	OpPrevious
	OpNext
	OpModeNumber
	OpModeString
	OpModeDate
	OpSameAs
	OpSum
	OpAverage
	OpDiff
	OpCount
	OpDate
	OpMaxNumber
	OpMinNumber
	OpMaxDate
	OpMinDate

	opCount
)

// ParamKind is the kind of value a parameter accepts.
type ParamKind string

const (
	ParamRows    ParamKind = "rows"
	ParamColumn  ParamKind = "column"
	ParamNumber  ParamKind = "number"
	ParamDate    ParamKind = "date"
	ParamString  ParamKind = "string"
	ParamInteger ParamKind = "integer"
)

// Param describes one operator parameter. Columns lists the column types a
// ParamColumn accepts.
type Param struct {
	Kind    ParamKind
	Columns []value.ColumnType
}

// String renders the parameter, e.g. "column<number|num2>".
func (p Param) String() string {
	if p.Kind != ParamColumn {
		return string(p.Kind)
	}
	types := make([]string, len(p.Columns))
	for i, t := range p.Columns {
		types[i] = string(t)
	}
	return fmt.Sprintf("column<%s>", strings.Join(types, "|"))
}

// Signature is an operator's name, parameters and result kind.
type Signature struct {
	Name    string
	Params  []Param
	Returns value.Kind
}

// String renders the signature, e.g. "count(rows) list".
func (s Signature) String() string {
	params := make([]string, len(s.Params))
	for i, p := range s.Params {
		params[i] = p.String()
	}
	return fmt.Sprintf("%s(%s) %s", s.Name, strings.Join(params, ", "), s.Returns)
}

var (
	rowsParam         = Param{Kind: ParamRows}
	stringColumnParam = Param{Kind: ParamColumn, Columns: []value.ColumnType{value.StringColumn}}
	numberColumnParam = Param{Kind: ParamColumn, Columns: []value.ColumnType{value.NumberColumn, value.Num2Column}}
	dateColumnParam   = Param{Kind: ParamColumn, Columns: []value.ColumnType{value.DateColumn}}
	orderColumnParam  = Param{Kind: ParamColumn, Columns: []value.ColumnType{value.NumberColumn, value.Num2Column, value.DateColumn}}
	anyColumnParam    = Param{Kind: ParamColumn, Columns: []value.ColumnType{value.StringColumn, value.NumberColumn, value.Num2Column, value.DateColumn}}
	numberParam       = Param{Kind: ParamNumber}
	dateParam         = Param{Kind: ParamDate}
	stringParam       = Param{Kind: ParamString}
	integerParam      = Param{Kind: ParamInteger}
)

func sig(name string, returns value.Kind, params ...Param) Signature {
	return Signature{Name: name, Params: params, Returns: returns}
}

var signatures = [opCount]Signature{
	OpSelectString: sig("select_string", value.KindList, rowsParam, stringColumnParam),
	OpSelectNumber: sig("select_number", value.KindList, rowsParam, numberColumnParam),
	OpSelectDate:   sig("select_date", value.KindList, rowsParam, dateColumnParam),
	OpArgmax:       sig("argmax", value.KindRows, rowsParam, orderColumnParam),
	OpArgmin:       sig("argmin", value.KindRows, rowsParam, orderColumnParam),

	OpFilterNumberGreater:       sig("filter_number_greater", value.KindRows, rowsParam, numberColumnParam, numberParam),
	OpFilterNumberGreaterEquals: sig("filter_number_greater_equals", value.KindRows, rowsParam, numberColumnParam, numberParam),
	OpFilterNumberLesser:        sig("filter_number_lesser", value.KindRows, rowsParam, numberColumnParam, numberParam),
	OpFilterNumberLesserEquals:  sig("filter_number_lesser_equals", value.KindRows, rowsParam, numberColumnParam, numberParam),
	OpFilterNumberEquals:        sig("filter_number_equals", value.KindRows, rowsParam, numberColumnParam, numberParam),
	OpFilterNumberNotEquals:     sig("filter_number_not_equals", value.KindRows, rowsParam, numberColumnParam, numberParam),
	OpFilterDateGreater:         sig("filter_date_greater", value.KindRows, rowsParam, dateColumnParam, dateParam),
	OpFilterDateGreaterEquals:   sig("filter_date_greater_equals", value.KindRows, rowsParam, dateColumnParam, dateParam),
	OpFilterDateLesser:          sig("filter_date_lesser", value.KindRows, rowsParam, dateColumnParam, dateParam),
	OpFilterDateLesserEquals:    sig("filter_date_lesser_equals", value.KindRows, rowsParam, dateColumnParam, dateParam),
	OpFilterDateEquals:          sig("filter_date_equals", value.KindRows, rowsParam, dateColumnParam, dateParam),
	OpFilterDateNotEquals:       sig("filter_date_not_equals", value.KindRows, rowsParam, dateColumnParam, dateParam),
	OpFilterIn:                  sig("filter_in", value.KindRows, rowsParam, stringColumnParam, stringParam),
	OpFilterNotIn:               sig("filter_not_in", value.KindRows, rowsParam, stringColumnParam, stringParam),

	OpFirst:    sig("first", value.KindRows, rowsParam),
	OpLast:     sig("last", value.KindRows, rowsParam),
	OpPrevious: sig("previous", value.KindRows, rowsParam),
	OpNext:     sig("next", value.KindRows, rowsParam),

	OpModeNumber: sig("mode_number", value.KindList, rowsParam, numberColumnParam),
	OpModeString: sig("mode_string", value.KindList, rowsParam, stringColumnParam),
	OpModeDate:   sig("mode_date", value.KindList, rowsParam, dateColumnParam),
	OpSameAs:     sig("same_as", value.KindRows, rowsParam, anyColumnParam),

	OpSum:     sig("sum", value.KindList, rowsParam, numberColumnParam),
	OpAverage: sig("average", value.KindList, rowsParam, numberColumnParam),
	OpDiff:    sig("diff", value.KindList, rowsParam, rowsParam, numberColumnParam),
	OpCount:   sig("count", value.KindList, rowsParam),
	OpDate:    sig("date", value.KindDate, integerParam, integerParam, integerParam),

	OpMaxNumber: sig("max_number", value.KindList, rowsParam, numberColumnParam),
	OpMinNumber: sig("min_number", value.KindList, rowsParam, numberColumnParam),
	OpMaxDate:   sig("max_date", value.KindList, rowsParam, dateColumnParam),
	OpMinDate:   sig("min_date", value.KindList, rowsParam, dateColumnParam),
}

var opsByName = func() map[string]Op {
	m := make(map[string]Op, opCount)
	for op := Op(0); op < opCount; op++ {
		m[signatures[op].Name] = op
	}
	return m
}()

// LookupOp resolves an operator name.
func LookupOp(name string) (Op, bool) {
	op, ok := opsByName[name]
	return op, ok
}

// Ops returns every operator in name order.
func Ops() []Op {
	ops := make([]Op, 0, opCount)
	for op := Op(0); op < opCount; op++ {
		ops = append(ops, op)
	}
	sort.Slice(ops, func(i, j int) bool { return ops[i].String() < ops[j].String() })
	return ops
}

// Signature returns the operator's signature.
func (o Op) Signature() Signature {
	if o < 0 || o >= opCount {
		return Signature{}
	}
	return signatures[o]
}

// String returns the operator's name in the logical-form language.
func (o Op) String() string {
	if o < 0 || o >= opCount {
		return fmt.Sprintf("Op(%d)", int(o))
	}
	return signatures[o].Name
}

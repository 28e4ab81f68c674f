package answer

import (
	"math"
	"strconv"
	"strings"
)

// Value is a parsed answer. Match is asymmetric only in name: every
// implementation falls back to comparing normalized text with values of
// another kind.
type Value interface {
	// Normalized returns the normalized source text.
	Normalized() string

	// Match reports whether the two answers denote the same thing.
	Match(other Value) bool

	key() string
}

// StringValue is an answer compared by normalized text.
type StringValue struct {
	normalized string
}

// NumberValue is a numeric answer.
type NumberValue struct {
	Amount     float64
	normalized string
}

// DateValue is a yyyy-mm-dd answer; -1 marks an unknown component.
type DateValue struct {
	Year, Month, Day int
	normalized       string
}

// NewString builds a StringValue from raw text.
func NewString(s string) StringValue {
	return StringValue{normalized: Normalize(s)}
}

// NewNumber builds a NumberValue. original is the source text; when empty
// the amount's own rendering is used.
func NewNumber(amount float64, original string) NumberValue {
	if original == "" {
		original = strconv.FormatFloat(amount, 'g', -1, 64)
	}
	return NumberValue{Amount: amount, normalized: Normalize(original)}
}

// NewDate builds a DateValue. original is the source text; when empty the
// date renders with xx for unknown components.
func NewDate(year, month, day int, original string) DateValue {
	if original == "" {
		parts := make([]string, 3)
		for i, c := range []int{year, month, day} {
			if c == -1 {
				parts[i] = "xx"
			} else {
				parts[i] = strconv.Itoa(c)
			}
		}
		original = strings.Join(parts, "-")
	}
	return DateValue{Year: year, Month: month, Day: day, normalized: Normalize(original)}
}

func (v StringValue) Normalized() string { return v.normalized }
func (v NumberValue) Normalized() string { return v.normalized }
func (v DateValue) Normalized() string   { return v.normalized }

func (v StringValue) Match(other Value) bool {
	return other != nil && v.normalized == other.Normalized()
}

func (v NumberValue) Match(other Value) bool {
	if o, ok := other.(NumberValue); ok {
		return math.Abs(v.Amount-o.Amount) < 1e-6
	}
	return other != nil && v.normalized == other.Normalized()
}

func (v DateValue) Match(other Value) bool {
	if o, ok := other.(DateValue); ok {
		return v.Year == o.Year && v.Month == o.Month && v.Day == o.Day
	}
	return other != nil && v.normalized == other.Normalized()
}

func (v StringValue) key() string { return "s:" + v.normalized }
func (v NumberValue) key() string { return "n:" + strconv.FormatFloat(v.Amount, 'g', -1, 64) }
func (v DateValue) key() string {
	return "d:" + strconv.Itoa(v.Year) + "-" + strconv.Itoa(v.Month) + "-" + strconv.Itoa(v.Day)
}

// ParseNumber parses an integer or finite float. ok is false otherwise.
func ParseNumber(text string) (float64, bool) {
	text = strings.TrimSpace(text)
	if n, err := strconv.ParseInt(text, 10, 64); err == nil {
		return float64(n), true
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// ParseDate parses yyyy-mm-dd where any component may be xx (or xxxx for
// the year). Month must be 1-12 and day 1-31 when known, and at least one
// component must be known.
func ParseDate(text string) (year, month, day int, ok bool) {
	parts := strings.Split(strings.ToLower(text), "-")
	if len(parts) != 3 {
		return 0, 0, 0, false
	}
	ymd := [3]int{}
	for i, p := range parts {
		if p == "xx" || (i == 0 && p == "xxxx") {
			ymd[i] = -1
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return 0, 0, 0, false
		}
		ymd[i] = n
	}
	year, month, day = ymd[0], ymd[1], ymd[2]
	if year == -1 && month == -1 && day == -1 {
		return 0, 0, 0, false
	}
	if month != -1 && (month < 1 || month > 12) {
		return 0, 0, 0, false
	}
	if day != -1 && (day < 1 || day > 31) {
		return 0, 0, 0, false
	}
	return year, month, day, true
}

// ToValue interprets a raw answer string: a number if it parses as one, a
// date if it is a valid yyyy-mm-dd pattern (a year-only date becomes a
// number), otherwise a string.
func ToValue(original string) Value {
	if amount, ok := ParseNumber(original); ok {
		return NewNumber(amount, original)
	}
	if y, m, d, ok := ParseDate(original); ok {
		if m == -1 && d == -1 {
			return NewNumber(float64(y), original)
		}
		return NewDate(y, m, d, original)
	}
	return NewString(original)
}

// ToValues converts raw strings to answer values, dropping duplicates and
// keeping first-occurrence order.
func ToValues(originals []string) []Value {
	seen := make(map[string]bool, len(originals))
	values := make([]Value, 0, len(originals))
	for _, s := range originals {
		v := ToValue(s)
		if seen[v.key()] {
			continue
		}
		seen[v.key()] = true
		values = append(values, v)
	}
	return values
}

// Check reports whether predicted answers the targets: same number of
// values and every target matched by some prediction.
func Check(targets, predicted []Value) bool {
	if len(targets) != len(predicted) {
		return false
	}
	for _, t := range targets {
		matched := false
		for _, p := range predicted {
			if t.Match(p) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return true
}

package date

import (
	"fmt"
	"strconv"
	"strings"
)

// Unknown marks a date component that was not specified.
const Unknown = -1

// Date is an immutable partial date. Construct with New or Parse.
type Date struct {
	Year  int
	Month int
	Day   int
}

// New creates a Date. Pass Unknown for any component that is not known.
func New(year, month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// Parse reads a tagged-table date annotation of the form yyyy-mm-dd.
// Components that are not integers (for example "xx" or "xxxx") become
// Unknown. The input must contain exactly three dash-separated fields.
func Parse(s string) (Date, error) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("invalid date %q: want yyyy-mm-dd", s)
	}
	return Date{
		Year:  parseComponent(parts[0]),
		Month: parseComponent(parts[1]),
		Day:   parseComponent(parts[2]),
	}, nil
}

func parseComponent(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return Unknown
	}
	return n
}

// Equal reports whether every component known on both sides matches.
// Components unknown on either side are skipped, which makes Equal
// non-transitive: 2018-?-? equals both 2018-2-3 and 2018-4-5.
func (d Date) Equal(other Date) bool {
	return componentEqual(d.Year, other.Year) &&
		componentEqual(d.Month, other.Month) &&
		componentEqual(d.Day, other.Day)
}

func componentEqual(a, b int) bool {
	return a == Unknown || b == Unknown || a == b
}

// Greater reports whether d is strictly after other.
//
// The comparison is undefined (false) when exactly one year is unknown, or
// when the years (and then months) agree and the next component is unknown
// on either side. Two unknown years are treated as the same year.
func (d Date) Greater(other Date) bool {
	if (d.Year == Unknown) != (other.Year == Unknown) {
		return false
	}
	if d.Year != other.Year {
		return d.Year > other.Year
	}
	if d.Month == Unknown || other.Month == Unknown {
		return false
	}
	if d.Month != other.Month {
		return d.Month > other.Month
	}
	if d.Day == Unknown || other.Day == Unknown {
		return false
	}
	return d.Day > other.Day
}

// Less reports whether d is strictly before other.
func (d Date) Less(other Date) bool {
	return other.Greater(d)
}

// GreaterEqual reports Greater or Equal.
func (d Date) GreaterEqual(other Date) bool {
	return d.Greater(other) || d.Equal(other)
}

// LessEqual reports Less or Equal.
func (d Date) LessEqual(other Date) bool {
	return d.Less(other) || d.Equal(other)
}

// IsYearOnly reports whether only the year is known.
func (d Date) IsYearOnly() bool {
	return d.Year != Unknown && d.Month == Unknown && d.Day == Unknown
}

// String renders year-month-day with unknown components shown as -1,
// e.g. "2005-3--1".
func (d Date) String() string {
	return fmt.Sprintf("%d-%d-%d", d.Year, d.Month, d.Day)
}

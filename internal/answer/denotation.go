package answer

import (
	"github.com/roach88/wtqexec/internal/value"
)

// FormatDenotation renders an execution result as answer strings, one per
// element. Numbers render the way the reference scorer expects (13197.0),
// dates as year-month-day with -1 for unknown parts, and rows as their
// canonical JSON.
func FormatDenotation(v value.Value) []string {
	switch x := v.(type) {
	case value.List:
		out := make([]string, 0, len(x))
		for _, item := range x {
			out = append(out, formatScalar(item))
		}
		return out
	case value.Rows:
		out := make([]string, 0, len(x))
		for _, row := range x {
			b, err := value.MarshalRow(row)
			if err != nil {
				continue
			}
			out = append(out, string(b))
		}
		return out
	default:
		return []string{formatScalar(v)}
	}
}

func formatScalar(v value.Value) string {
	switch x := v.(type) {
	case value.String:
		return string(x)
	case value.Number:
		return value.FormatNumber(float64(x))
	case value.Date:
		return x.String()
	case value.Rows, value.List:
		b, err := value.MarshalCanonical(v)
		if err != nil {
			return ""
		}
		return string(b)
	default:
		return "None"
	}
}

// CheckDenotation formats a result and checks it against raw target
// strings.
func CheckDenotation(targets []string, result value.Value) bool {
	return Check(ToValues(targets), ToValues(FormatDenotation(result)))
}

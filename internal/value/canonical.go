package value

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"golang.org/x/text/unicode/norm"
)

// MarshalCanonical renders a Value as deterministic JSON for CLI output and
// golden snapshots.
//
// Differences from json.Marshal:
//  1. Strings are NFC normalized and HTML characters are not escaped.
//  2. Integral numbers keep one decimal place ("13197.0") so output matches
//     recorded denotations.
//  3. Dates render as {"date": "y-m-d"}; rows as objects with sorted keys
//     plus a "__row" index.
func MarshalCanonical(v Value) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeCanonical(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeCanonical(buf *bytes.Buffer, v Value) error {
	switch val := v.(type) {
	case nil, Null:
		buf.WriteString("null")
	case String:
		return writeCanonicalString(buf, string(val))
	case Number:
		f := float64(val)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("non-finite number cannot be marshaled: %v", f)
		}
		buf.WriteString(FormatNumber(f))
	case Date:
		buf.WriteString(`{"date":`)
		if err := writeCanonicalString(buf, val.String()); err != nil {
			return err
		}
		buf.WriteByte('}')
	case List:
		buf.WriteByte('[')
		for i, elem := range val {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeCanonical(buf, elem); err != nil {
				return fmt.Errorf("list[%d]: %w", i, err)
			}
		}
		buf.WriteByte(']')
	case Rows:
		buf.WriteByte('[')
		for i, row := range val {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeCanonicalRow(buf, row); err != nil {
				return fmt.Errorf("rows[%d]: %w", i, err)
			}
		}
		buf.WriteByte(']')
	default:
		return fmt.Errorf("unknown Value type: %T", v)
	}
	return nil
}

// MarshalRow renders a single row as a canonical JSON object.
func MarshalRow(row *Row) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeCanonicalRow(&buf, row); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeCanonicalRow(buf *bytes.Buffer, row *Row) error {
	buf.WriteString(`{"__row":`)
	buf.WriteString(strconv.Itoa(row.Index))
	for _, col := range row.Columns() {
		buf.WriteByte(',')
		if err := writeCanonicalString(buf, col); err != nil {
			return err
		}
		buf.WriteByte(':')
		if err := writeCanonical(buf, row.Cell(col)); err != nil {
			return fmt.Errorf("column %q: %w", col, err)
		}
	}
	buf.WriteByte('}')
	return nil
}

func writeCanonicalString(buf *bytes.Buffer, s string) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(norm.NFC.String(s)); err != nil {
		return err
	}
	// json.Encoder adds a trailing newline
	buf.Write(bytes.TrimSuffix(tmp.Bytes(), []byte{'\n'}))
	return nil
}

// FormatNumber renders a float the way recorded denotations spell it:
// integral values keep a trailing ".0" ("1141.0"), others use the shortest
// round-tripping representation.
func FormatNumber(f float64) string {
	if f == math.Trunc(f) && math.Abs(f) < 1e16 {
		return strconv.FormatFloat(f, 'f', 1, 64)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

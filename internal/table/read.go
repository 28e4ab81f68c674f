package table

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/roach88/wtqexec/internal/date"
	"github.com/roach88/wtqexec/internal/value"
)

// sempreColumnPrefix prefixes column ids in tagged files.
const sempreColumnPrefix = "fb:row.row."

// Required fields of the tagged header line.
var requiredFields = []string{"row", "col", "content"}

// Read parses the tagged table at path and builds the Context for a
// tokenized question.
func Read(path string, tokens []Token, opts ...Option) (*Context, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open table: %w", err)
	}
	defer f.Close()

	return Parse(f, tokens, append([]Option{withPath(path)}, opts...)...)
}

func withPath(path string) Option {
	return func(o *options) { o.path = path }
}

// Parse reads a tagged table from r.
func Parse(r io.Reader, tokens []Token, opts ...Option) (*Context, error) {
	var lines [][]string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		lines = append(lines, strings.Split(line, "\t"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read table: %w", err)
	}
	return ReadLines(lines, tokens, opts...)
}

// parsedCell is one table cell with its annotations decoded.
type parsedCell struct {
	column string
	text   string
	number *float64
	num2   *float64
	date   *date.Date
}

// columnStats counts annotations per column for type inference.
type columnStats struct {
	cells, numbers, dates, num2s int
}

// ReadLines builds a Context from pre-split tagged lines. The first line is
// the field header.
func ReadLines(lines [][]string, tokens []Token, opts ...Option) (*Context, error) {
	o := buildOptions(opts)
	if len(lines) == 0 {
		return nil, &FormatError{Path: o.path, Line: 1, Message: "empty table file"}
	}

	fields := make(map[string]int, len(lines[0]))
	for i, name := range lines[0] {
		fields[strings.TrimSpace(name)] = i
	}
	for _, name := range requiredFields {
		if _, ok := fields[name]; !ok {
			return nil, &FormatError{Path: o.path, Line: 1, Message: fmt.Sprintf("header is missing field %q", name)}
		}
	}
	get := func(line []string, name string) string {
		idx, ok := fields[name]
		if !ok || idx >= len(line) {
			return ""
		}
		return strings.TrimSpace(line[idx])
	}

	columnNames := make(map[int]string)
	var columnOrder []string
	var rows [][]parsedCell
	lastRow := -1

	for i, line := range lines[1:] {
		lineNo := i + 2
		rowIndex, err := strconv.Atoi(get(line, "row"))
		if err != nil {
			return nil, &FormatError{Path: o.path, Line: lineNo, Message: fmt.Sprintf("invalid row index %q", get(line, "row"))}
		}
		colIndex, err := strconv.Atoi(get(line, "col"))
		if err != nil {
			return nil, &FormatError{Path: o.path, Line: lineNo, Message: fmt.Sprintf("invalid column index %q", get(line, "col"))}
		}

		if rowIndex == -1 {
			name := columnName(get(line, "id"), get(line, "content"), colIndex)
			if _, seen := columnNames[colIndex]; !seen {
				columnOrder = append(columnOrder, name)
			}
			columnNames[colIndex] = name
			continue
		}

		name, ok := columnNames[colIndex]
		if !ok {
			return nil, &FormatError{Path: o.path, Line: lineNo, Message: fmt.Sprintf("cell references undeclared column %d", colIndex)}
		}
		if rowIndex != lastRow || len(rows) == 0 {
			rows = append(rows, nil)
			lastRow = rowIndex
		}

		cell := parsedCell{column: name, text: NormalizeString(get(line, "content"))}
		numbers := parseNumbers(get(line, "number"))
		if len(numbers) > 0 {
			cell.number = &numbers[0]
			if len(numbers) > 1 {
				cell.num2 = &numbers[1]
			}
		}
		if n2 := parseNumbers(get(line, "num2")); len(n2) > 0 {
			cell.num2 = &n2[0]
		}
		if raw := firstAlternative(get(line, "date")); raw != "" {
			d, err := date.Parse(raw)
			if err != nil {
				o.logger.Debug("ignoring malformed date annotation", "line", lineNo, "date", raw, "error", err)
			} else {
				cell.date = &d
			}
		}
		rows[len(rows)-1] = append(rows[len(rows)-1], cell)
	}

	return build(rows, columnOrder, tokens, o), nil
}

// columnName derives the column identifier suffix from a header cell.
func columnName(id, content string, colIndex int) string {
	if strings.HasPrefix(id, sempreColumnPrefix) {
		return strings.TrimPrefix(id, sempreColumnPrefix)
	}
	if name := NormalizeString(content); name != "" {
		return name
	}
	return fmt.Sprintf("column_%d", colIndex)
}

// parseNumbers decodes a "|"-separated number annotation, skipping parts
// that are not numbers.
func parseNumbers(s string) []float64 {
	if s == "" {
		return nil
	}
	var out []float64
	for _, part := range strings.Split(s, "|") {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err == nil {
			out = append(out, f)
		}
	}
	return out
}

func firstAlternative(s string) string {
	if i := strings.Index(s, "|"); i >= 0 {
		return strings.TrimSpace(s[:i])
	}
	return s
}

// build infers column types and freezes rows into a Context.
func build(parsed [][]parsedCell, columnOrder []string, tokens []Token, o options) *Context {
	stats := make(map[string]*columnStats, len(columnOrder))
	for _, name := range columnOrder {
		stats[name] = &columnStats{}
	}
	for _, row := range parsed {
		for _, cell := range row {
			s := stats[cell.column]
			s.cells++
			if cell.number != nil {
				s.numbers++
			}
			if cell.date != nil {
				s.dates++
			}
			if cell.num2 != nil {
				s.num2s++
			}
		}
	}

	total := len(parsed)
	accept := func(count int, threshold float64) bool {
		return count > 0 && float64(count)/float64(total) > threshold
	}
	columnTypes := make(map[string][]value.ColumnType, len(columnOrder))
	for _, name := range columnOrder {
		s := stats[name]
		types := []value.ColumnType{value.StringColumn}
		if accept(s.numbers, o.numberThreshold) {
			types = append(types, value.NumberColumn)
		}
		if accept(s.dates, o.dateThreshold) {
			types = append(types, value.DateColumn)
		}
		if accept(s.num2s, o.numberThreshold) {
			types = append(types, value.Num2Column)
		}
		columnTypes[name] = types
	}

	rows := make(value.Rows, 0, len(parsed))
	for i, row := range parsed {
		cells := make(map[string]value.Value)
		for _, name := range columnOrder {
			for _, t := range columnTypes[name] {
				cells[value.ColumnID(t, name)] = value.Null{}
			}
		}
		for _, cell := range row {
			types := columnTypes[cell.column]
			cells[value.ColumnID(value.StringColumn, cell.column)] = value.String(cell.text)
			for _, t := range types {
				switch t {
				case value.NumberColumn:
					if cell.number != nil {
						cells[value.ColumnID(t, cell.column)] = value.Number(*cell.number)
					}
				case value.Num2Column:
					if cell.num2 != nil {
						cells[value.ColumnID(t, cell.column)] = value.Number(*cell.num2)
					}
				case value.DateColumn:
					if cell.date != nil {
						cells[value.ColumnID(t, cell.column)] = value.NewDate(*cell.date)
					}
				}
			}
		}
		rows = append(rows, value.NewRow(i, cells))
	}

	var columns []string
	for _, name := range columnOrder {
		for _, t := range columnTypes[name] {
			columns = append(columns, value.ColumnID(t, name))
		}
	}
	sort.Strings(columns)

	o.logger.Debug("table read", "path", o.path, "rows", len(rows), "columns", len(columnOrder))
	return newContext(rows, columns, columnOrder, columnTypes, tokens, o)
}

package table

import (
	"sort"

	"github.com/roach88/wtqexec/internal/knowledge"
	"github.com/roach88/wtqexec/internal/value"
)

// Token is one question token produced by an upstream tokenizer.
type Token struct {
	Text string `json:"text" yaml:"text"`
}

// TokensFromStrings wraps raw token texts.
func TokensFromStrings(texts []string) []Token {
	tokens := make([]Token, len(texts))
	for i, t := range texts {
		tokens[i] = Token{Text: t}
	}
	return tokens
}

// Context is the immutable result of reading a table for one question.
type Context struct {
	rows        value.Rows
	columns     []string
	columnSet   map[string]struct{}
	columnOrder []string
	columnTypes map[string][]value.ColumnType
	tokens      []Token

	// stringCells maps each normalized string cell to the sorted string
	// columns it occurs in; cellKeys holds its keys sorted.
	stringCells map[string][]string
	cellKeys    []string

	stringEntities []StringEntity
	numberEntities []NumberEntity
	graph          *knowledge.Graph
}

func newContext(rows value.Rows, columns, columnOrder []string, columnTypes map[string][]value.ColumnType, tokens []Token, o options) *Context {
	c := &Context{
		rows:        rows,
		columns:     columns,
		columnSet:   make(map[string]struct{}, len(columns)),
		columnOrder: columnOrder,
		columnTypes: columnTypes,
		tokens:      append([]Token(nil), tokens...),
	}
	for _, col := range columns {
		c.columnSet[col] = struct{}{}
	}

	cellColumns := make(map[string]map[string]struct{})
	for _, row := range rows {
		for _, col := range row.Columns() {
			t, _, _ := value.ParseColumnID(col)
			if t != value.StringColumn {
				continue
			}
			s, ok := row.Cell(col).(value.String)
			if !ok {
				continue
			}
			set, ok := cellColumns[string(s)]
			if !ok {
				set = make(map[string]struct{})
				cellColumns[string(s)] = set
			}
			set[col] = struct{}{}
		}
	}
	c.stringCells = make(map[string][]string, len(cellColumns))
	for cell, set := range cellColumns {
		c.stringCells[cell] = sortedKeys(set)
		c.cellKeys = append(c.cellKeys, cell)
	}
	sort.Strings(c.cellKeys)

	c.stringEntities = c.extractStringEntities()
	c.numberEntities = extractNumbers(c.tokens)
	c.graph = c.buildKnowledgeGraph()

	o.logger.Debug("question linked",
		"string_entities", len(c.stringEntities),
		"numbers", len(c.numberEntities),
	)
	return c
}

// Rows returns the table rows in source order.
func (c *Context) Rows() value.Rows {
	return c.rows
}

// Columns returns every type-qualified column identifier, sorted.
func (c *Context) Columns() []string {
	return append([]string(nil), c.columns...)
}

// HasColumn reports whether id is a type-qualified column of the table.
func (c *Context) HasColumn(id string) bool {
	_, ok := c.columnSet[id]
	return ok
}

// ColumnNames returns the untyped column names in header order.
func (c *Context) ColumnNames() []string {
	return append([]string(nil), c.columnOrder...)
}

// ColumnTypes returns the inferred types of a column name.
func (c *Context) ColumnTypes(name string) []value.ColumnType {
	return append([]value.ColumnType(nil), c.columnTypes[name]...)
}

// Tokens returns the question tokens.
func (c *Context) Tokens() []Token {
	return append([]Token(nil), c.tokens...)
}

// EntitiesFromQuestion returns the string entities and number literals found
// in the question, both in question order.
func (c *Context) EntitiesFromQuestion() ([]StringEntity, []NumberEntity) {
	var strs []StringEntity
	for _, e := range c.stringEntities {
		e.Columns = append([]string(nil), e.Columns...)
		strs = append(strs, e)
	}
	return strs, append([]NumberEntity(nil), c.numberEntities...)
}

// KnowledgeGraph returns the question/table knowledge graph.
func (c *Context) KnowledgeGraph() *knowledge.Graph {
	return c.graph
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

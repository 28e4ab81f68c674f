package table

import (
	"strings"

	"github.com/roach88/wtqexec/internal/knowledge"
	"github.com/roach88/wtqexec/internal/value"
)

// unknownDateEntity stands for "no date specified" and links to every date
// column so logical forms can build partial dates.
const unknownDateEntity = "-1"

// buildKnowledgeGraph links question entities to columns. Every typed
// column is an entity. String entities link to the columns their text
// occurs in; every number literal links to all number and date columns.
func (c *Context) buildKnowledgeGraph() *knowledge.Graph {
	b := knowledge.NewBuilder()

	var numericColumns, dateColumns []string
	for _, col := range c.columns {
		t, name, _ := value.ParseColumnID(col)
		switch {
		case t.IsNumeric():
			numericColumns = append(numericColumns, col)
		case t == value.DateColumn:
			dateColumns = append(dateColumns, col)
		}
		b.AddEntity(col, strings.ReplaceAll(name, "_", " "))
	}

	for _, e := range c.stringEntities {
		b.AddEntity(e.ID, strings.ReplaceAll(e.Text(), "_", " "))
		for _, col := range e.Columns {
			b.Link(e.ID, col)
		}
	}

	linkable := append(append([]string(nil), numericColumns...), dateColumns...)
	for _, n := range c.numberEntities {
		b.AddEntity(n.Text, n.Text)
		for _, col := range linkable {
			b.Link(n.Text, col)
		}
	}

	if len(dateColumns) > 0 && !b.Has(unknownDateEntity) {
		b.AddEntity(unknownDateEntity, unknownDateEntity)
		for _, col := range dateColumns {
			b.Link(unknownDateEntity, col)
		}
	}

	return b.Build()
}

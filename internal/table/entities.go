package table

import "strings"

// StringEntity is a question span whose normalized text occurs in one or
// more string columns.
type StringEntity struct {
	// ID is "string:" followed by the normalized span text.
	ID string `json:"id"`

	// Columns lists the string columns the text occurs in, sorted.
	Columns []string `json:"columns"`

	// Start and End delimit the question tokens covered, End exclusive.
	Start int `json:"start"`
	End   int `json:"end"`
}

// Text returns the normalized entity text without the "string:" prefix.
func (e StringEntity) Text() string {
	return strings.TrimPrefix(e.ID, stringEntityPrefix)
}

const stringEntityPrefix = "string:"

// stopWords are never linked as string entities on their own.
var stopWords = toSet(
	"", "all", "being", "-", "over", "through", "yourselves", "its", "before", "hadn", "with",
	"had", ",", "should", "to", "only", "under", "ours", "has", "ought", "do", "them", "his",
	"than", "very", "cannot", "they", "not", "during", "yourself", "him", "nor", "did", "didn",
	"'ve", "this", "she", "each", "where", "because", "doing", "some", "we", "are", "further",
	"ourselves", "out", "what", "for", "weren", "does", "above", "between", "mustn", "?", "be",
	"hasn", "who", "were", "here", "shouldn", "let", "hers", "by", "both", "about", "couldn",
	"of", "could", "against", "isn", "or", "own", "into", "while", "whom", "down", "wasn",
	"your", "from", "her", "their", "aren", "there", "been", ".", "few", "too", "wouldn",
	"themselves", ":", "was", "until", "more", "himself", "on", "but", "don", "herself",
	"haven", "those", "he", "me", "myself", "these", "up", ";", "below", "'re", "can", "theirs",
	"my", "and", "would", "then", "is", "am", "it", "doesn", "an", "as", "itself", "at", "have",
	"in", "any", "if", "!", "again", "'ll", "no", "that", "when", "same", "how", "other",
	"which", "you", "many", "shan", "'t", "'s", "our", "after", "most", "'d", "such", "'m",
	"why", "a", "off", "i", "yours", "so", "the", "having", "once",
)

func toSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// stringInTable returns the string columns containing candidate as a whole
// cell, or failing that as a substring of some cell.
func (c *Context) stringInTable(candidate string) []string {
	if cols, ok := c.stringCells[candidate]; ok {
		return cols
	}
	set := make(map[string]struct{})
	for _, cell := range c.cellKeys {
		if strings.Contains(cell, candidate) {
			for _, col := range c.stringCells[cell] {
				set[col] = struct{}{}
			}
		}
	}
	if len(set) == 0 {
		return nil
	}
	return sortedKeys(set)
}

// extractStringEntities links single tokens to string columns, then grows
// each match to the right while the joined text still occurs in a subset of
// the same columns. Matching is greedy left to right: a candidate that ends
// inside an already emitted span is dropped.
func (c *Context) extractStringEntities() []StringEntity {
	var seeds []StringEntity
	for i, tok := range c.tokens {
		if _, stop := stopWords[tok.Text]; stop {
			continue
		}
		normalized := NormalizeString(tok.Text)
		if normalized == "" {
			continue
		}
		if cols := c.stringInTable(normalized); len(cols) > 0 {
			seeds = append(seeds, StringEntity{ID: stringEntityPrefix + normalized, Columns: cols, Start: i, End: i + 1})
		}
	}

	var entities []StringEntity
	for _, seed := range seeds {
		if len(entities) > 0 && seed.End <= entities[len(entities)-1].End {
			continue
		}
		entities = append(entities, c.expand(seed))
	}
	return entities
}

func (c *Context) expand(e StringEntity) StringEntity {
	text := e.Text()
	cols := e.Columns
	end := e.End
	for end < len(c.tokens) {
		next := NormalizeString(c.tokens[end].Text)
		if next == "" {
			end++
			continue
		}
		candidate := text + "_" + next
		shared := intersect(c.stringInTable(candidate), cols)
		if len(shared) == 0 {
			break
		}
		end++
		text = candidate
		cols = shared
	}
	return StringEntity{ID: stringEntityPrefix + text, Columns: cols, Start: e.Start, End: end}
}

// intersect returns the elements of a that are also in b, keeping a's order.
func intersect(a, b []string) []string {
	var out []string
	for _, x := range a {
		for _, y := range b {
			if x == y {
				out = append(out, x)
				break
			}
		}
	}
	return out
}

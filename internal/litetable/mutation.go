package litetable

import (
	"net/url"
	"strings"
)

// Cell is a single family:qualifier=value triple of a Mutation.
type Cell struct {
	Family    []byte
	Qualifier []byte
	Value     []byte
}

// Mutation is the write unit handed to the store: a row key and the cells to persist for it.
// Cells with a zero-length value are still materialized.
type Mutation struct {
	Key   string
	Cells []Cell
}

// NewMutation creates an empty mutation with room for size cells.
func NewMutation(key string, size int) *Mutation {
	return &Mutation{
		Key:   key,
		Cells: make([]Cell, 0, size),
	}
}

// Add appends a cell. A nil value is stored as a zero-length value.
func (m *Mutation) Add(family, qualifier, value []byte) {
	if value == nil {
		value = []byte{}
	}
	m.Cells = append(m.Cells, Cell{
		Family:    family,
		Qualifier: qualifier,
		Value:     value,
	})
}

// Len returns the number of cells in the mutation.
func (m *Mutation) Len() int {
	return len(m.Cells)
}

// Families returns the distinct families touched by the mutation in first-seen order.
func (m *Mutation) Families() []string {
	var families []string
	seen := make(map[string]struct{})
	for _, c := range m.Cells {
		if _, ok := seen[string(c.Family)]; ok {
			continue
		}
		seen[string(c.Family)] = struct{}{}
		families = append(families, string(c.Family))
	}
	return families
}

// CellsByFamily returns the cells belonging to family, in insertion order.
func (m *Mutation) CellsByFamily(family string) []Cell {
	var cells []Cell
	for _, c := range m.Cells {
		if string(c.Family) == family {
			cells = append(cells, c)
		}
	}
	return cells
}

// Query renders the cells of one family as a LiteTable write query:
//
//	family=info key=42 qualifier=name value=Alice qualifier=age value=30
//
// Every component is URL encoded: the server splits the query on whitespace and unescapes each
// part. Zero-length values keep their qualifier with an empty value.
func (m *Mutation) Query(family string) string {
	var b strings.Builder
	b.WriteString("family=")
	b.WriteString(url.QueryEscape(family))
	b.WriteString(" key=")
	b.WriteString(url.QueryEscape(m.Key))
	for _, c := range m.CellsByFamily(family) {
		b.WriteString(" qualifier=")
		b.WriteString(url.QueryEscape(string(c.Qualifier)))
		b.WriteString(" value=")
		b.WriteString(url.QueryEscape(string(c.Value)))
	}
	return b.String()
}

// HasEmptyValue reports whether any cell of family carries a zero-length value.
func (m *Mutation) HasEmptyValue(family string) bool {
	for _, c := range m.Cells {
		if string(c.Family) == family && len(c.Value) == 0 {
			return true
		}
	}
	return false
}

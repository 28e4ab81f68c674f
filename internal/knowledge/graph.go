package knowledge

import (
	"encoding/json"
	"sort"
)

// Graph is an immutable adjacency structure between entities.
type Graph struct {
	entities   []string
	neighbors  map[string][]string
	entityText map[string]string
}

// Builder accumulates entities and symmetric edges before freezing them
// into a Graph.
type Builder struct {
	entities   map[string]struct{}
	neighbors  map[string]map[string]struct{}
	entityText map[string]string
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{
		entities:   make(map[string]struct{}),
		neighbors:  make(map[string]map[string]struct{}),
		entityText: make(map[string]string),
	}
}

// AddEntity registers an entity with its display text. An entity with no
// edges still appears in Neighbors with an empty list.
func (b *Builder) AddEntity(id, text string) {
	b.entities[id] = struct{}{}
	b.entityText[id] = text
	if _, ok := b.neighbors[id]; !ok {
		b.neighbors[id] = make(map[string]struct{})
	}
}

// Link adds an edge on both endpoints. Both must already be entities.
func (b *Builder) Link(a, c string) {
	b.neighborSet(a)[c] = struct{}{}
	b.neighborSet(c)[a] = struct{}{}
}

// Has reports whether id has been added.
func (b *Builder) Has(id string) bool {
	_, ok := b.entities[id]
	return ok
}

func (b *Builder) neighborSet(id string) map[string]struct{} {
	set, ok := b.neighbors[id]
	if !ok {
		set = make(map[string]struct{})
		b.neighbors[id] = set
	}
	return set
}

// Build freezes the builder. Neighbor lists are deduplicated and sorted.
func (b *Builder) Build() *Graph {
	g := &Graph{
		entities:   make([]string, 0, len(b.entities)),
		neighbors:  make(map[string][]string, len(b.neighbors)),
		entityText: make(map[string]string, len(b.entityText)),
	}
	for id := range b.entities {
		g.entities = append(g.entities, id)
	}
	sort.Strings(g.entities)
	for id, set := range b.neighbors {
		list := make([]string, 0, len(set))
		for n := range set {
			list = append(list, n)
		}
		sort.Strings(list)
		g.neighbors[id] = list
	}
	for id, text := range b.entityText {
		g.entityText[id] = text
	}
	return g
}

// Entities returns every entity identifier in sorted order.
func (g *Graph) Entities() []string {
	return append([]string(nil), g.entities...)
}

// HasEntity reports whether id is an entity of the graph.
func (g *Graph) HasEntity(id string) bool {
	i := sort.SearchStrings(g.entities, id)
	return i < len(g.entities) && g.entities[i] == id
}

// Neighbors returns the sorted neighbors of id (nil if id is unknown).
func (g *Graph) Neighbors(id string) []string {
	n, ok := g.neighbors[id]
	if !ok {
		return nil
	}
	return append([]string{}, n...)
}

// EntityText returns the human-readable label of id.
func (g *Graph) EntityText(id string) (string, bool) {
	text, ok := g.entityText[id]
	return text, ok
}

// NeighborMap returns a copy of the full adjacency.
func (g *Graph) NeighborMap() map[string][]string {
	out := make(map[string][]string, len(g.neighbors))
	for id, n := range g.neighbors {
		out[id] = append([]string{}, n...)
	}
	return out
}

// TextMap returns a copy of every entity's label.
func (g *Graph) TextMap() map[string]string {
	out := make(map[string]string, len(g.entityText))
	for id, text := range g.entityText {
		out[id] = text
	}
	return out
}

type graphJSON struct {
	Entities   []string            `json:"entities"`
	Neighbors  map[string][]string `json:"neighbors"`
	EntityText map[string]string   `json:"entity_text"`
}

// MarshalJSON implements json.Marshaler. Map keys are emitted sorted by
// encoding/json, so output is deterministic.
func (g *Graph) MarshalJSON() ([]byte, error) {
	return json.Marshal(graphJSON{
		Entities:   g.entities,
		Neighbors:  g.neighbors,
		EntityText: g.entityText,
	})
}

// Package knowledge holds the bipartite graph linking question entities and
// literals to table columns.
//
// A Graph is built once by the table package and never mutated afterwards.
// Entity-linking components read it; the executor does not.
package knowledge

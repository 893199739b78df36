package core

import (
	"fmt"
	"iter"
)

// DerivedGraph is a hashmap-backed store whose vertex ids are derived from
// the vertex values by an Indexer fixed at construction: the value is its own key.
//
// V must be comparable so that an id collision between two unequal values
// can be detected. Such a collision means the Indexer is unfit for the data;
// PushVertex panics with an error wrapping ErrIDCollision instead of silently
// merging the two vertices.
type DerivedGraph[V comparable, E any] struct {
	store   *HashGraph[uint64, V, E]
	indexer Indexer[V]
}

// NewDerivedGraph creates an empty store using indexer to derive ids.
func NewDerivedGraph[V comparable, E any](indexer Indexer[V]) *DerivedGraph[V, E] {
	return &DerivedGraph[V, E]{
		store:   NewHashGraph[uint64, V, E](),
		indexer: indexer,
	}
}

// ID returns the id v has (or would have) in this store.
func (g *DerivedGraph[V, E]) ID(v V) uint64 {
	return g.indexer.Index(v)
}

// PushVertex stores v under its derived id and returns that id.
// Pushing an equal value again is a no-op apart from returning the same id.
//
// Panics with ErrIDCollision if an unequal value already owns the id.
func (g *DerivedGraph[V, E]) PushVertex(v V) uint64 {
	id := g.indexer.Index(v)
	if old, ok := g.store.Vertex(id); ok && old != v {
		panic(fmt.Errorf("%w: %v and %v both map to %d", ErrIDCollision, old, v, id))
	}
	g.store.PushVertex(id, v)

	return id
}

// PushEdge appends (to, label) to from's adjacency sequence. Ids are not checked.
func (g *DerivedGraph[V, E]) PushEdge(from, to uint64, label E) {
	g.store.PushEdge(from, to, label)
}

// PushEdgeBetween adds an edge between two values without pushing them as
// vertices; the ids are derived on the fly.
func (g *DerivedGraph[V, E]) PushEdgeBetween(from, to V, label E) {
	g.store.PushEdge(g.indexer.Index(from), g.indexer.Index(to), label)
}

// HasValue reports whether v is stored.
func (g *DerivedGraph[V, E]) HasValue(v V) bool {
	return g.store.HasVertex(g.indexer.Index(v))
}

// HasVertex reports whether id has a vertex.
func (g *DerivedGraph[V, E]) HasVertex(id uint64) bool { return g.store.HasVertex(id) }

// Vertex returns the value stored under id.
func (g *DerivedGraph[V, E]) Vertex(id uint64) (V, bool) { return g.store.Vertex(id) }

// VertexRef returns a read-only handle to the value stored under id.
func (g *DerivedGraph[V, E]) VertexRef(id uint64) (*V, bool) { return g.store.VertexRef(id) }

// Edge returns the label of the first from→to edge in insertion order.
func (g *DerivedGraph[V, E]) Edge(from, to uint64) (E, bool) { return g.store.Edge(from, to) }

// Adjacency yields id's outgoing (target, label) pairs in insertion order.
func (g *DerivedGraph[V, E]) Adjacency(id uint64) iter.Seq2[uint64, E] {
	return g.store.Adjacency(id)
}

// AdjacencyRefs yields id's outgoing targets with read-only label handles.
func (g *DerivedGraph[V, E]) AdjacencyRefs(id uint64) iter.Seq2[uint64, *E] {
	return g.store.AdjacencyRefs(id)
}

// Vertices yields (id, value) pairs in first-insertion order.
func (g *DerivedGraph[V, E]) Vertices() iter.Seq2[uint64, V] { return g.store.Vertices() }

// Edges yields every source id with a copy of its adjacency sequence.
func (g *DerivedGraph[V, E]) Edges() iter.Seq2[uint64, []Adjacent[uint64, E]] {
	return g.store.Edges()
}

// Order returns the number of vertices.
func (g *DerivedGraph[V, E]) Order() int { return g.store.Order() }

// Size returns the number of edges.
func (g *DerivedGraph[V, E]) Size() int { return g.store.Size() }

func (g *DerivedGraph[V, E]) isNil() bool { return g == nil }

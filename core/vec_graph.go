package core

import "iter"

// VecGraph is a vector-backed store whose vertex ids are insertion positions.
//
// Lookups are plain slice indexing. The store is append-only: deleting or
// reordering vertices would invalidate ids already handed out, so neither is
// offered. Adding deletion would need tombstones or generation counters.
type VecGraph[V, E any] struct {
	vertices []*V
	adj      adjacencyList[int, E]
}

// NewVecGraph creates an empty positional store.
func NewVecGraph[V, E any]() *VecGraph[V, E] {
	return &VecGraph[V, E]{adj: newAdjacencyList[int, E]()}
}

// PushVertex appends v and returns its id (its position).
// Complexity: O(1) amortized.
func (g *VecGraph[V, E]) PushVertex(v V) int {
	id := len(g.vertices)
	g.vertices = append(g.vertices, &v)

	return id
}

// PushEdge appends (to, label) to from's adjacency sequence. Ids are not checked.
func (g *VecGraph[V, E]) PushEdge(from, to int, label E) {
	g.adj.push(from, to, label)
}

// HasVertex reports whether id is a position issued by PushVertex.
func (g *VecGraph[V, E]) HasVertex(id int) bool {
	return id >= 0 && id < len(g.vertices)
}

// Vertex returns the value at position id; out-of-range ids are "not found".
// Complexity: O(1).
func (g *VecGraph[V, E]) Vertex(id int) (V, bool) {
	if !g.HasVertex(id) {
		var zero V
		return zero, false
	}

	return *g.vertices[id], true
}

// VertexRef returns a read-only handle to the value at position id.
func (g *VecGraph[V, E]) VertexRef(id int) (*V, bool) {
	if !g.HasVertex(id) {
		return nil, false
	}

	return g.vertices[id], true
}

// Edge returns the label of the first from→to edge in insertion order.
func (g *VecGraph[V, E]) Edge(from, to int) (E, bool) {
	entry, ok := g.adj.first(from, to)
	if !ok {
		var zero E
		return zero, false
	}

	return entry.Label, true
}

// Adjacency yields id's outgoing (target, label) pairs in insertion order.
func (g *VecGraph[V, E]) Adjacency(id int) iter.Seq2[int, E] {
	return g.adj.entries(id)
}

// AdjacencyRefs yields id's outgoing targets with read-only label handles.
func (g *VecGraph[V, E]) AdjacencyRefs(id int) iter.Seq2[int, *E] {
	return g.adj.refs(id)
}

// Vertices yields (position, value) pairs in ascending position order.
func (g *VecGraph[V, E]) Vertices() iter.Seq2[int, V] {
	return func(yield func(int, V) bool) {
		for id, p := range g.vertices {
			if !yield(id, *p) {
				return
			}
		}
	}
}

// Edges yields every source id with a copy of its adjacency sequence.
func (g *VecGraph[V, E]) Edges() iter.Seq2[int, []Adjacent[int, E]] {
	return g.adj.all()
}

// Order returns the number of vertices.
func (g *VecGraph[V, E]) Order() int {
	return len(g.vertices)
}

// Size returns the number of edges.
func (g *VecGraph[V, E]) Size() int {
	return g.adj.size
}

func (g *VecGraph[V, E]) isNil() bool { return g == nil }

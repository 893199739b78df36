package core

import "iter"

// PushVertex stores v under id. An existing value is replaced.
//
// Complexity: O(1) amortized.
func (g *HashGraph[K, V, E]) PushVertex(id K, v V) {
	if _, exists := g.vertices[id]; !exists {
		g.order = append(g.order, id)
	}
	g.vertices[id] = &v
}

// PushID stores id with the zero value. It is the natural way to add a vertex
// to an identity-only graph created by NewIDGraph.
func (g *HashGraph[K, V, E]) PushID(id K) {
	var zero V
	g.PushVertex(id, zero)
}

// HasVertex reports whether id has a vertex. Complexity: O(1).
func (g *HashGraph[K, V, E]) HasVertex(id K) bool {
	_, ok := g.vertices[id]
	return ok
}

// Vertex returns the value stored under id, or false when id is absent.
// Complexity: O(1).
func (g *HashGraph[K, V, E]) Vertex(id K) (V, bool) {
	p, ok := g.vertices[id]
	if !ok {
		var zero V
		return zero, false
	}

	return *p, true
}

// VertexRef returns a read-only handle to the value stored under id.
func (g *HashGraph[K, V, E]) VertexRef(id K) (*V, bool) {
	p, ok := g.vertices[id]
	return p, ok
}

// Vertices yields (id, value) pairs in first-insertion order.
// Complexity: O(V) for a full range.
func (g *HashGraph[K, V, E]) Vertices() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, id := range g.order {
			if !yield(id, *g.vertices[id]) {
				return
			}
		}
	}
}

// IDs returns a snapshot of all vertex ids in first-insertion order.
func (g *HashGraph[K, V, E]) IDs() []K {
	out := make([]K, len(g.order))
	copy(out, g.order)

	return out
}

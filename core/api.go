package core

// HashGraph is a hashmap-backed store with explicit, caller-chosen vertex ids.
//
// Vertex values are boxed so VertexRef handles survive map growth. Re-inserting
// an id replaces its value (last write wins) without changing its position in
// the vertex order.
type HashGraph[K comparable, V, E any] struct {
	vertices map[K]*V
	order    []K
	adj      adjacencyList[K, E]
}

// NewHashGraph creates an empty explicitly indexed store.
// Complexity: O(1).
func NewHashGraph[K comparable, V, E any]() *HashGraph[K, V, E] {
	return &HashGraph[K, V, E]{
		vertices: make(map[K]*V),
		adj:      newAdjacencyList[K, E](),
	}
}

// NewIDGraph creates a store for identity-only graphs, where the id is all
// there is to know about a vertex (like a set is a map of empty values).
func NewIDGraph[K comparable, E any]() *HashGraph[K, struct{}, E] {
	return NewHashGraph[K, struct{}, E]()
}

// Order returns the number of vertices. Complexity: O(1).
func (g *HashGraph[K, V, E]) Order() int {
	return len(g.vertices)
}

// Size returns the number of edges, parallel edges counted separately. Complexity: O(1).
func (g *HashGraph[K, V, E]) Size() int {
	return g.adj.size
}

func (g *HashGraph[K, V, E]) isNil() bool { return g == nil }

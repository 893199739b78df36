package core

// Clone returns an independent copy of g: same vertices, edges and orders.
// Values and labels are copied shallowly (a pointer-typed V still points to
// the same object).
//
// Complexity: O(V + E).
func (g *HashGraph[K, V, E]) Clone() *HashGraph[K, V, E] {
	clone := g.CloneEmpty()
	for _, from := range g.adj.sources {
		for _, entry := range g.adj.lists[from] {
			clone.adj.push(from, entry.To, entry.Label)
		}
	}

	return clone
}

// CloneEmpty returns a copy of g's vertices without any edges.
// Complexity: O(V).
func (g *HashGraph[K, V, E]) CloneEmpty() *HashGraph[K, V, E] {
	clone := NewHashGraph[K, V, E]()
	for _, id := range g.order {
		clone.PushVertex(id, *g.vertices[id])
	}

	return clone
}

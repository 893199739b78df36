package core

import "iter"

// PushEdge appends (to, label) to from's adjacency sequence.
//
// Neither endpoint has to exist: the edge is stored unconditionally and a
// target without a vertex simply resolves to "not found" later on.
//
// Complexity: O(1) amortized.
func (g *HashGraph[K, V, E]) PushEdge(from, to K, label E) {
	g.adj.push(from, to, label)
}

// Edge returns the label of the first from→to edge in insertion order.
// Later parallel edges are only reachable through Adjacency.
//
// Complexity: O(out-degree of from).
func (g *HashGraph[K, V, E]) Edge(from, to K) (E, bool) {
	entry, ok := g.adj.first(from, to)
	if !ok {
		var zero E
		return zero, false
	}

	return entry.Label, true
}

// Degree returns the number of outgoing edges of id (0 when it has none).
func (g *HashGraph[K, V, E]) Degree(id K) int {
	return g.adj.degree(id)
}

// Adjacency yields id's outgoing (target, label) pairs in insertion order.
// A vertex without outgoing edges yields nothing.
func (g *HashGraph[K, V, E]) Adjacency(id K) iter.Seq2[K, E] {
	return g.adj.entries(id)
}

// AdjacencyRefs yields id's outgoing targets with read-only label handles.
func (g *HashGraph[K, V, E]) AdjacencyRefs(id K) iter.Seq2[K, *E] {
	return g.adj.refs(id)
}

// Edges yields every source id with a copy of its adjacency sequence,
// sources ordered by their first outgoing edge.
func (g *HashGraph[K, V, E]) Edges() iter.Seq2[K, []Adjacent[K, E]] {
	return g.adj.all()
}

package core

import "iter"

// MapAdjacent applies f to every (target, label) pair of id's outgoing edges,
// in insertion order, and collects the results.
// A vertex without outgoing edges (or an unknown id) yields an empty, non-nil slice.
//
// Complexity: O(out-degree of id) calls to f.
func MapAdjacent[K comparable, V, E, R any](g Reader[K, V, E], id K, f func(to K, label E) R) []R {
	out := []R{}
	for to, label := range g.Adjacency(id) {
		out = append(out, f(to, label))
	}

	return out
}

// AdjacentIDs returns the targets of id's outgoing edges in insertion order,
// duplicates included for parallel edges.
func AdjacentIDs[K comparable, V, E any](g Reader[K, V, E], id K) []K {
	return MapAdjacent(g, id, func(to K, _ E) K { return to })
}

// CompleteEdges flattens the store into (from, to, label) triples, sources in
// first-edge order and each adjacency sequence in insertion order.
func CompleteEdges[K comparable, V, E any](g Reader[K, V, E]) iter.Seq[Edge[K, E]] {
	return func(yield func(Edge[K, E]) bool) {
		for from, list := range g.Edges() {
			for _, entry := range list {
				if !yield(Edge[K, E]{From: from, To: entry.To, Label: entry.Label}) {
					return
				}
			}
		}
	}
}

// CollectEdges materializes CompleteEdges into a slice.
func CollectEdges[K comparable, V, E any](g Reader[K, V, E]) []Edge[K, E] {
	out := make([]Edge[K, E], 0, g.Size())
	for e := range CompleteEdges(g) {
		out = append(out, e)
	}

	return out
}

// PushUndirectedEdge stores a↔b as two directed edges carrying the same label.
// A self-loop (a == b) is stored twice, like any other pair.
func PushUndirectedEdge[K comparable, V, E any](g Graph[K, V, E], a, b K, label E) {
	g.PushEdge(a, b, label)
	g.PushEdge(b, a, label)
}

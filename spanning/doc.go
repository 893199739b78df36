// Package spanning builds spanning trees over any core.Reader.
//
// What
//
//   - Tree: an arbitrary spanning tree of everything reachable from a start
//     vertex, expanded depth-first from a LIFO stack of candidate edges.
//   - Minimum: Prim's minimum spanning tree from a start vertex, driven by a
//     caller-supplied weight(label) function over any ordered type.
//   - Forest: Kruskal's minimum spanning forest over the whole graph.
//   - TotalWeight: sum of a tree's edge weights.
//
// Borrowed results
//
//	Every result is a *core.HashGraph[K, *V, *E]: the same ids as the source,
//	with vertex values and edge labels as pointers into the source store.
//	Nothing is copied. The result is valid only while the source is alive and
//	not modified; call core.Own to get a detached copy.
//
// Determinism
//
//	Adjacency is read in insertion order. Prim breaks weight ties by the order
//	in which candidates were pushed; Kruskal sorts stably. Equal inputs give
//	equal trees.
//
// Dangling edges
//
//	An edge whose target has no vertex cannot contribute a vertex to the
//	tree and is skipped (logged at debug level when a logger is set).
//
// Errors
//
//	ErrGraphNil, ErrWeightNil, ErrStartVertexNotFound. A start id without a
//	vertex is the only case in which Tree and Minimum return no tree;
//	unreachable vertices are simply absent.
//
// Complexity
//
//   - Tree:    O(V + E)
//   - Minimum: O(E log E)
//   - Forest:  O(E log E + E·α(V))
package spanning

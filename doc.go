// Package gir is a small generic graph toolkit: in-memory graph stores with
// pluggable vertex identity, and the traversals and spanning constructions
// that run on them.
//
// What is inside?
//
//	core/       HashGraph (explicit ids), DerivedGraph (hash-derived ids),
//	              VecGraph (positional ids), the Reader/Graph interfaces,
//	              borrowed views (Own, Validate)
//	bfs/        breadth-first search with goal predicate, move filter,
//	              explore hook and parent-map path reconstruction
//	dfs/        depth-first search, topological sort, cycle finding
//	spanning/   arbitrary spanning tree (Tree), Prim (Minimum),
//	              Kruskal forest (Forest)
//	maze/       grid mazes carved along spanning trees, solved with BFS
//	office/     the "cubicle maze" puzzle: an implicit graph searched by BFS
//	converters/ bridges to dominikbraun/graph and Graphviz DOT
//	builder/    path, cycle, complete and grid constructors for any store
//
// Ids and insertion order
//
//	Every store keeps adjacency in insertion order, and every algorithm
//	follows it. Given the same inserts, results are identical run to run.
//
// Quick ASCII example:
//
//	A ──1── B
//	│       │
//	3       1
//	│       │
//	D ──2── C
//
//	spanning.Minimum from A keeps A-B, B-C, C-D: total weight 4.
//
// The gir command (cmd/gir) draws mazes, animates searches and exports DOT.
package gir

// Package dfs implements depth-first search, topological sort and directed
// cycle detection on any core.Reader.
//
// What:
//
//   - DFS: explores as far as possible along each branch before backtracking.
//     Supports pre-order and post-order hooks, cancellation via
//     context.Context, depth limiting, neighbor filtering and forest
//     traversal (WithFullTraversal). Result.Roots counts the trees, which for
//     a graph with symmetric edges are its connected components.
//   - TopologicalSort: linear ordering of a DAG, ErrCycleDetected otherwise.
//   - FindCycle: one directed cycle as a closed walk, or nil.
//
// Determinism:
//
//	Vertices are started in insertion order and neighbors are followed in
//	adjacency insertion order, so every result is reproducible.
//
// Complexity:
//
//   - DFS:             Time O(V+E), Memory O(V)
//   - TopologicalSort: Time O(V+E), Memory O(V)
//   - FindCycle:       Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil             graph is nil
//   - ErrStartVertexNotFound  start id has no vertex (single-source DFS)
//   - ErrCycleDetected        TopologicalSort on a cyclic graph
//   - ErrOptionViolation      negative depth, or a hook typed for another id type
//   - context.Canceled        run cancelled via context
//   - hook errors             propagated from OnVisit or OnExit
package dfs

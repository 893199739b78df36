// Package bfs provides breadth-first search over any core.Reader, with a
// caller-supplied goal, an optional move filter and an explore hook.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Stop at the first dequeued vertex the goal predicate accepts.
//   - Returns a Result containing:
//   - Found, Goal, Depth: the goal hit (Depth is -1 when nothing matched)
//   - Order: explored ids in discovery order
//   - Depths: explored id → distance from start
//   - Parent: explored id → the id it was discovered from
//   - Hooks:
//   - WithMoveFilter(func(from, to K) bool) prunes individual moves
//   - WithOnExplore(func(parent, child K)) fires once per newly explored vertex
//   - Honors MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Why
//
//   - Unweighted shortest paths in O(V + E).
//   - Layered exploration (Result.Generations) for puzzles and visualisation.
//   - Parent capture through RecordParents + PathFromParents works with any
//     search that reports (parent, child) pairs, not only this one.
//
// Determinism
//
//	Stores keep adjacency in insertion order and BFS enqueues targets in that
//	order, so the exploration sequence is fully reproducible.
//
// Paths
//
//	Paths include both ends: for a goal three moves away PathTo returns four
//	ids, starting with the start vertex. The start's own path is [start].
//
// Usage
//
//	parents := map[string]string{}
//	res, err := bfs.BFS[string, struct{}, string](g, "Root",
//	    bfs.GoalID("L3_B"),
//	    bfs.WithOnExplore(bfs.RecordParents(parents)),
//	    bfs.WithMaxDepth(5),
//	)
//	if err != nil {
//	    // ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation, ctx error
//	}
//	path := bfs.PathFromParents(parents, res.Goal)
//
// Hooks are typed by the id type K. A hook whose K differs from the graph's
// is reported as ErrOptionViolation.
package bfs

package bfs

import "github.com/lakret/gir/core"

// GoalID matches the vertex with the given id.
func GoalID[K comparable](target K) func(K, int) bool {
	return func(id K, _ int) bool { return id == target }
}

// GoalValue matches the first vertex whose stored value equals want.
func GoalValue[K comparable, V comparable, E any](g core.Reader[K, V, E], want V) func(K, int) bool {
	return func(id K, _ int) bool {
		v, ok := g.Vertex(id)
		return ok && v == want
	}
}

// GoalDepth matches the first vertex reached at depth d. Combined with a nil
// result it tells whether anything lies d moves away.
func GoalDepth[K comparable](d int) func(K, int) bool {
	return func(_ K, depth int) bool { return depth == d }
}

// ValueFilter adapts a predicate over vertex values into a move filter.
// Moves into or out of ids without a vertex are rejected.
func ValueFilter[K comparable, V, E any](g core.Reader[K, V, E], allow func(from, to V) bool) func(from, to K) bool {
	return func(from, to K) bool {
		fv, ok := g.Vertex(from)
		if !ok {
			return false
		}
		tv, ok := g.Vertex(to)
		if !ok {
			return false
		}
		return allow(fv, tv)
	}
}

package dfs

import (
	"fmt"

	"github.com/lakret/gir/core"
)

// walker encapsulates state during DFS.
type walker[K comparable, V, E any] struct {
	graph   core.Reader[K, V, E]
	opts    Options
	onVisit func(K) error
	onExit  func(K) error
	filter  func(K) bool
	res     *Result[K]
}

// DFS performs depth-first search on g starting at start.
//
// Neighbors are followed in adjacency insertion order. Edges whose target has
// no vertex are followed like any other and end their branch. With
// WithFullTraversal the search continues from every unvisited vertex, in
// vertex insertion order, after the tree rooted at start is finished; start
// may then be absent from the graph.
//
// When a hook fails or the context is cancelled, the partial result is
// returned together with the error.
//
// Complexity: O(V + E) time, O(V) memory.
func DFS[K comparable, V, E any](g core.Reader[K, V, E], start K, opts ...Option) (*Result[K], error) {
	if core.IsNil(g) {
		return nil, ErrGraphNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	w := &walker[K, V, E]{graph: g, opts: o}
	if w.onVisit, err = hook(o.onVisit, func(K) error { return nil }, "OnVisit"); err != nil {
		return nil, err
	}
	if w.onExit, err = hook(o.onExit, func(K) error { return nil }, "OnExit"); err != nil {
		return nil, err
	}
	if w.filter, err = hook(o.filter, func(K) bool { return true }, "FilterNeighbor"); err != nil {
		return nil, err
	}

	hasStart := g.HasVertex(start)
	if !o.FullTraversal && !hasStart {
		return nil, fmt.Errorf("%w: %v", ErrStartVertexNotFound, start)
	}

	// Collections grow with the visited region, not with g.
	w.res = &Result[K]{
		Depth:  make(map[K]int),
		Parent: make(map[K]K),
	}

	if hasStart {
		if err = w.root(start); err != nil {
			return w.res, err
		}
	}
	if o.FullTraversal {
		for id := range g.Vertices() {
			if w.res.Visited(id) {
				continue
			}
			if err = w.root(id); err != nil {
				return w.res, err
			}
		}
	}

	if o.Logger != nil {
		o.Logger.Debug("dfs finished",
			"start", start, "trees", len(w.res.Roots), "visited", len(w.res.Depth))
	}

	return w.res, nil
}

// root starts a new DFS tree at id.
func (w *walker[K, V, E]) root(id K) error {
	w.res.Roots = append(w.res.Roots, id)
	return w.traverse(id, 0)
}

// traverse visits id at depth, recursing into unvisited neighbors.
func (w *walker[K, V, E]) traverse(id K, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	w.res.Depth[id] = depth
	if err := w.onVisit(id); err != nil {
		return fmt.Errorf("dfs: OnVisit hook for %v: %w", id, err)
	}

	if w.opts.MaxDepth < 0 || depth < w.opts.MaxDepth {
		for to := range w.graph.Adjacency(id) {
			if !w.filter(to) {
				w.res.SkippedNeighbors++
				continue
			}
			if w.res.Visited(to) {
				continue
			}
			w.res.Parent[to] = id
			if err := w.traverse(to, depth+1); err != nil {
				return err
			}
		}
	}

	if err := w.onExit(id); err != nil {
		return fmt.Errorf("dfs: OnExit hook for %v: %w", id, err)
	}
	w.res.Order = append(w.res.Order, id)

	return nil
}

package bfs

import (
	"fmt"

	"github.com/emirpasic/gods/queues/linkedlistqueue"

	"github.com/lakret/gir/core"
)

// BFS performs a breadth-first search starting at start.
//
// isGoal is evaluated for each vertex when it is dequeued, with the vertex's
// depth; the search stops at the first vertex for which it returns true.
// A nil isGoal never matches, so the whole reachable region is explored.
//
// A vertex is "explored" at the moment it is first discovered and is never
// enqueued twice. Edges are followed in adjacency insertion order, so two
// runs over the same graph are identical. Edges whose target has no vertex
// are followed like any other: the dangling id is explored and, having no
// adjacency, ends its branch.
//
// Returns ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation or
// the context error when cancelled mid-run.
//
// Complexity: O(V + E) time, O(V) memory.
func BFS[K comparable, V, E any](g core.Reader[K, V, E], start K, isGoal func(id K, depth int) bool, opts ...Option) (*Result[K], error) {
	if core.IsNil(g) {
		return nil, ErrGraphNil
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w, err := newWalker(g, start, isGoal, o)
	if err != nil {
		return nil, err
	}

	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartVertexNotFound, start)
	}

	if err = w.loop(); err != nil {
		return nil, err
	}

	if o.Logger != nil {
		o.Logger.Debug("bfs finished",
			"start", start, "found", w.res.Found, "depth", w.res.Depth, "explored", len(w.res.Order))
	}

	return w.res, nil
}

// queueItem is one frontier entry.
type queueItem[K comparable] struct {
	id    K
	depth int
}

// walker holds the state for one BFS run.
type walker[K comparable, V, E any] struct {
	graph     core.Reader[K, V, E]
	isGoal    func(K, int) bool
	allowed   func(from, to K) bool
	onExplore func(parent, child K)
	opts      Options
	queue     *linkedlistqueue.Queue
	res       *Result[K]
}

// newWalker resolves the typed hooks stored in o and seeds the result.
func newWalker[K comparable, V, E any](g core.Reader[K, V, E], start K, isGoal func(K, int) bool, o Options) (*walker[K, V, E], error) {
	w := &walker[K, V, E]{
		graph:     g,
		isGoal:    isGoal,
		allowed:   func(K, K) bool { return true },
		onExplore: func(K, K) {},
		opts:      o,
		queue:     linkedlistqueue.New(),
		res: &Result[K]{
			Start:  start,
			Depth:  -1,
			Depths: make(map[K]int),
			Parent: make(map[K]K),
		},
	}
	if w.isGoal == nil {
		w.isGoal = func(K, int) bool { return false }
	}

	if o.moveFilter != nil {
		fn, ok := o.moveFilter.(func(from, to K) bool)
		if !ok {
			return nil, fmt.Errorf("%w: move filter has type %T, want func(%T, %T) bool",
				ErrOptionViolation, o.moveFilter, start, start)
		}
		w.allowed = fn
	}
	if o.onExplore != nil {
		fn, ok := o.onExplore.(func(parent, child K))
		if !ok {
			return nil, fmt.Errorf("%w: explore hook has type %T, want func(%T, %T)",
				ErrOptionViolation, o.onExplore, start, start)
		}
		w.onExplore = fn
	}

	return w, nil
}

// loop processes the queue until empty, goal found or context cancelled.
func (w *walker[K, V, E]) loop() error {
	w.mark(w.res.Start, 0)
	w.queue.Enqueue(queueItem[K]{id: w.res.Start, depth: 0})

	for !w.queue.Empty() {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		raw, _ := w.queue.Dequeue()
		cur := raw.(queueItem[K])

		if w.isGoal(cur.id, cur.depth) {
			w.res.Found = true
			w.res.Goal = cur.id
			w.res.Depth = cur.depth
			return nil
		}

		w.exploreNeighbors(cur)
	}

	return nil
}

// mark records id as explored at depth.
func (w *walker[K, V, E]) mark(id K, depth int) {
	w.res.Depths[id] = depth
	w.res.Order = append(w.res.Order, id)
}

// exploreNeighbors discovers every allowed, unexplored target of cur.
func (w *walker[K, V, E]) exploreNeighbors(cur queueItem[K]) {
	next := cur.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}

	for to := range w.graph.Adjacency(cur.id) {
		if !w.allowed(cur.id, to) {
			continue
		}
		if _, seen := w.res.Depths[to]; seen {
			continue
		}

		w.onExplore(cur.id, to)
		w.res.Parent[to] = cur.id
		w.mark(to, next)
		w.queue.Enqueue(queueItem[K]{id: to, depth: next})
	}
}

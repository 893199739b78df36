package spanning

import (
	"cmp"
	"fmt"

	"github.com/emirpasic/gods/queues/priorityqueue"

	"github.com/lakret/gir/core"
)

// weighted is a Prim candidate with its cached weight and push sequence.
type weighted[K comparable, E any, W cmp.Ordered] struct {
	candidate[K, E]
	weight W
	seq    uint64
}

// Minimum computes a minimum spanning tree of the vertices reachable from
// start using Prim's algorithm, growing outwards along the lightest
// candidate edge.
//
// Edges are directed: only edges leaving the current tree are followed, so
// for an undirected graph store both directions (core.PushUndirectedEdge).
// Among candidates of equal weight the one pushed first wins, which makes
// the result deterministic for a given graph.
//
// Returns ErrGraphNil, ErrWeightNil, or ErrStartVertexNotFound if start has
// no vertex. Dangling edges are skipped.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Minimum[K comparable, V, E any, W cmp.Ordered](g core.Reader[K, V, E], start K, weight func(E) W, opts ...Option) (*core.HashGraph[K, *V, *E], error) {
	if core.IsNil(g) {
		return nil, ErrGraphNil
	}
	if weight == nil {
		return nil, ErrWeightNil
	}
	o := buildOptions(opts)

	root, ok := g.VertexRef(start)
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrStartVertexNotFound, start)
	}

	tree := core.NewHashGraph[K, *V, *E]()
	tree.PushVertex(start, root)

	pq := priorityqueue.NewWith(func(a, b interface{}) int {
		x, y := a.(weighted[K, E, W]), b.(weighted[K, E, W])
		if c := cmp.Compare(x.weight, y.weight); c != 0 {
			return c
		}
		return cmp.Compare(x.seq, y.seq)
	})

	var seq uint64
	push := func(from K) {
		for to, label := range g.AdjacencyRefs(from) {
			if tree.HasVertex(to) {
				continue
			}
			pq.Enqueue(weighted[K, E, W]{
				candidate: candidate[K, E]{from: from, to: to, label: label},
				weight:    weight(*label),
				seq:       seq,
			})
			seq++
		}
	}
	push(start)

	for !pq.Empty() {
		raw, _ := pq.Dequeue()
		c := raw.(weighted[K, E, W])
		if tree.HasVertex(c.to) {
			continue
		}
		v, ok := g.VertexRef(c.to)
		if !ok {
			o.debug("skipping dangling edge", "from", c.from, "to", c.to)
			continue
		}

		tree.PushVertex(c.to, v)
		tree.PushEdge(c.from, c.to, c.label)
		push(c.to)
	}

	o.debug("minimum spanning tree built", "start", start, "vertices", tree.Order(), "edges", tree.Size())

	return tree, nil
}

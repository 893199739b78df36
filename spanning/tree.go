package spanning

import (
	"fmt"

	"github.com/emirpasic/gods/stacks/arraystack"

	"github.com/lakret/gir/core"
)

// Tree builds an arbitrary spanning tree of the vertices reachable from start.
//
// Candidate edges are kept on a LIFO stack, so the tree follows depth-first
// expansion order. No minimality is guaranteed. For every newly reached
// vertex exactly one tree edge is added; vertices not reachable from start
// are absent from the result. Edges whose target has no vertex are skipped.
//
// Returns ErrGraphNil, or ErrStartVertexNotFound if start has no vertex.
//
// Complexity: O(V + E) time and memory.
func Tree[K comparable, V, E any](g core.Reader[K, V, E], start K, opts ...Option) (*core.HashGraph[K, *V, *E], error) {
	if core.IsNil(g) {
		return nil, ErrGraphNil
	}
	o := buildOptions(opts)

	root, ok := g.VertexRef(start)
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrStartVertexNotFound, start)
	}

	tree := core.NewHashGraph[K, *V, *E]()
	tree.PushVertex(start, root)

	stack := arraystack.New()
	push := func(from K) {
		for to, label := range g.AdjacencyRefs(from) {
			stack.Push(candidate[K, E]{from: from, to: to, label: label})
		}
	}
	push(start)

	for !stack.Empty() {
		raw, _ := stack.Pop()
		c := raw.(candidate[K, E])
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

	o.debug("spanning tree built", "start", start, "vertices", tree.Order(), "edges", tree.Size())

	return tree, nil
}

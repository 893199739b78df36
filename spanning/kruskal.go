package spanning

import (
	"cmp"
	"slices"

	"github.com/lakret/gir/core"
)

// Forest computes a minimum spanning forest with Kruskal's algorithm.
//
// Unlike Tree and Minimum it has no start: every vertex of g is part of the
// result, and edges are treated as undirected. Edges are considered in
// ascending weight, ties in CompleteEdges order; an edge joins the forest
// when its endpoints are in different components. Self-loops and dangling
// edges are ignored.
//
// Returns ErrGraphNil or ErrWeightNil.
//
// Complexity: O(E log E + E·α(V)) time, O(V + E) memory.
func Forest[K comparable, V, E any, W cmp.Ordered](g core.Reader[K, V, E], weight func(E) W, opts ...Option) (*core.HashGraph[K, *V, *E], error) {
	if core.IsNil(g) {
		return nil, ErrGraphNil
	}
	if weight == nil {
		return nil, ErrWeightNil
	}
	o := buildOptions(opts)

	forest := core.NewHashGraph[K, *V, *E]()
	parent := make(map[K]K, g.Order())
	rank := make(map[K]int, g.Order())
	for id := range g.Vertices() {
		v, _ := g.VertexRef(id)
		forest.PushVertex(id, v)
		parent[id] = id
	}

	type entry struct {
		candidate[K, E]
		weight W
	}
	var edges []entry
	for from := range g.Vertices() {
		for to, label := range g.AdjacencyRefs(from) {
			if from == to {
				continue
			}
			if !g.HasVertex(to) {
				o.debug("skipping dangling edge", "from", from, "to", to)
				continue
			}
			edges = append(edges, entry{candidate[K, E]{from, to, label}, weight(*label)})
		}
	}
	slices.SortStableFunc(edges, func(a, b entry) int { return cmp.Compare(a.weight, b.weight) })

	find := func(u K) K {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}
		return u
	}
	union := func(u, v K) bool {
		ru, rv := find(u), find(v)
		if ru == rv {
			return false
		}
		switch {
		case rank[ru] < rank[rv]:
			parent[ru] = rv
		case rank[ru] > rank[rv]:
			parent[rv] = ru
		default:
			parent[rv] = ru
			rank[ru]++
		}
		return true
	}

	limit := forest.Order() - 1
	for _, e := range edges {
		if forest.Size() == limit {
			break
		}
		if union(e.from, e.to) {
			forest.PushEdge(e.from, e.to, e.label)
		}
	}

	o.debug("minimum spanning forest built", "vertices", forest.Order(), "edges", forest.Size())

	return forest, nil
}

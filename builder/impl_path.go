package builder

import "github.com/lakret/gir/core"

// Path builds v0→v1→…→v(n-1). Edge i→i+1 is labelled label(i, i+1); with
// WithSymmetric the reverse edge label(i+1, i) follows it.
// Returns the ids in index order. Requires n ≥ 1.
//
// Complexity: O(n).
func Path[K comparable, V, E any](g core.Graph[K, V, E], n int, vertex func(i int) K, label func(i, j int) E, opts ...Option) ([]K, error) {
	if err := check("Path", g, n, minPathNodes, vertex != nil, label != nil); err != nil {
		return nil, err
	}
	cfg := buildConfig(opts)

	ids := vertices(n, vertex)
	for i := 0; i+1 < n; i++ {
		link(g, cfg, ids, i, i+1, label)
	}

	return ids, nil
}

// Cycle builds a Path over n vertices and closes it with v(n-1)→v0.
// Requires n ≥ 3.
//
// Complexity: O(n).
func Cycle[K comparable, V, E any](g core.Graph[K, V, E], n int, vertex func(i int) K, label func(i, j int) E, opts ...Option) ([]K, error) {
	if err := check("Cycle", g, n, minCycleNodes, vertex != nil, label != nil); err != nil {
		return nil, err
	}
	cfg := buildConfig(opts)

	ids := vertices(n, vertex)
	for i := 0; i < n; i++ {
		link(g, cfg, ids, i, (i+1)%n, label)
	}

	return ids, nil
}

// link pushes i→j and, when symmetric, j→i.
func link[K comparable, V, E any](g core.Graph[K, V, E], cfg config, ids []K, i, j int, label func(i, j int) E) {
	g.PushEdge(ids[i], ids[j], label(i, j))
	if cfg.symmetric {
		g.PushEdge(ids[j], ids[i], label(j, i))
	}
}

package builder

import "github.com/lakret/gir/core"

// Complete builds the complete directed graph on n vertices: an edge i→j
// labelled label(i, j) for every ordered pair i ≠ j, emitted in
// lexicographic (i, j) order. No self-loops. Requires n ≥ 1.
//
// Complexity: O(n²).
func Complete[K comparable, V, E any](g core.Graph[K, V, E], n int, vertex func(i int) K, label func(i, j int) E) ([]K, error) {
	if err := check("Complete", g, n, minCompleteNodes, vertex != nil, label != nil); err != nil {
		return nil, err
	}

	ids := vertices(n, vertex)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j {
				g.PushEdge(ids[i], ids[j], label(i, j))
			}
		}
	}

	return ids, nil
}

package core

import (
	"errors"
	"fmt"
)

// Own copies a borrowed view into a store that owns its values.
// Vertex and edge order are preserved; nil handles become zero values.
//
// Complexity: O(V + E).
func Own[K comparable, V, E any](view *HashGraph[K, *V, *E]) *HashGraph[K, V, E] {
	out := NewHashGraph[K, V, E]()
	for id, ref := range view.Vertices() {
		var v V
		if ref != nil {
			v = *ref
		}
		out.PushVertex(id, v)
	}
	for e := range CompleteEdges[K, *V, *E](view) {
		var label E
		if e.Label != nil {
			label = *e.Label
		}
		out.PushEdge(e.From, e.To, label)
	}

	return out
}

// Validate reports every edge endpoint that has no vertex.
// It returns nil for a consistent store, otherwise an errors.Join of
// ErrDanglingEdge-wrapped errors, one per offending edge, in edge order.
//
// Complexity: O(V + E).
func Validate[K comparable, V, E any](g Reader[K, V, E]) error {
	var errs []error
	for e := range CompleteEdges(g) {
		fromOK, toOK := g.HasVertex(e.From), g.HasVertex(e.To)
		switch {
		case !fromOK && !toOK:
			errs = append(errs, fmt.Errorf("%w: %v -> %v: neither endpoint has a vertex", ErrDanglingEdge, e.From, e.To))
		case !fromOK:
			errs = append(errs, fmt.Errorf("%w: %v -> %v: source has no vertex", ErrDanglingEdge, e.From, e.To))
		case !toOK:
			errs = append(errs, fmt.Errorf("%w: %v -> %v: target has no vertex", ErrDanglingEdge, e.From, e.To))
		}
	}

	return errors.Join(errs...)
}

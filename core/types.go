// Package core defines the capability interfaces, entry types and sentinel
// errors shared by every graph store.
//
// Errors:
//
//	ErrVertexNotFound - requested vertex does not exist.
//	ErrDanglingEdge   - an edge endpoint has no vertex (reported by Validate).
//	ErrIDCollision    - two unequal values derived the same id (DerivedGraph, fatal).
package core

import (
	"errors"
	"iter"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrDanglingEdge indicates an edge endpoint that has no vertex in the store.
	ErrDanglingEdge = errors.New("core: dangling edge")

	// ErrIDCollision indicates that two unequal vertex values hashed to the same id.
	// DerivedGraph panics with an error wrapping it; it is never returned.
	ErrIDCollision = errors.New("core: derived id collision")
)

// Adjacent is one entry of an adjacency sequence: the target id and the edge label.
type Adjacent[K comparable, E any] struct {
	// To is the target vertex id.
	To K

	// Label is the value carried by the edge.
	Label E
}

// Edge is a flattened directed edge (from, to, label).
type Edge[K comparable, E any] struct {
	From  K
	To    K
	Label E
}

// Reader is the read-only capability set every store provides.
// Algorithms (bfs, dfs, spanning) only ever need a Reader.
type Reader[K comparable, V, E any] interface {
	// HasVertex reports whether a vertex is stored under id.
	HasVertex(id K) bool

	// Vertex returns the value stored under id.
	Vertex(id K) (V, bool)

	// VertexRef returns a pointer to the stored value. The pointer is a
	// read-only handle: it is valid while the store is alive and the vertex
	// is not overwritten.
	VertexRef(id K) (*V, bool)

	// Edge returns the label of the first from→to edge in insertion order.
	Edge(from, to K) (E, bool)

	// Adjacency yields (target, label) pairs of id's outgoing edges in insertion order.
	Adjacency(id K) iter.Seq2[K, E]

	// AdjacencyRefs is Adjacency yielding read-only handles to the stored labels.
	AdjacencyRefs(id K) iter.Seq2[K, *E]

	// Vertices yields (id, value) pairs in first-insertion order.
	Vertices() iter.Seq2[K, V]

	// Edges yields each source id with a copy of its adjacency sequence.
	Edges() iter.Seq2[K, []Adjacent[K, E]]

	// Order returns the number of vertices.
	Order() int

	// Size returns the number of edges.
	Size() int
}

// Graph is a Reader that also accepts new edges. Vertex insertion differs per
// identity scheme and is therefore a method of each concrete store.
type Graph[K comparable, V, E any] interface {
	Reader[K, V, E]

	// PushEdge appends (to, label) to from's adjacency sequence. It always succeeds.
	PushEdge(from, to K, label E)
}

// nilable is implemented by every store so that a typed nil pointer wrapped
// in a Reader can be told apart from a usable graph.
type nilable interface {
	isNil() bool
}

// IsNil reports whether g is a nil interface or wraps a nil store pointer.
// Algorithms check it before touching g and report their ErrGraphNil.
func IsNil[K comparable, V, E any](g Reader[K, V, E]) bool {
	if g == nil {
		return true
	}
	n, ok := g.(nilable)

	return ok && n.isNil()
}

// Compile-time checks that every store satisfies Graph.
var (
	_ Graph[string, int, string]   = (*HashGraph[string, int, string])(nil)
	_ Graph[uint64, string, int]   = (*DerivedGraph[string, int])(nil)
	_ Graph[int, string, struct{}] = (*VecGraph[string, struct{}])(nil)
)

// Package core provides the in-memory graph stores shared by every algorithm in gir.
//
// A store owns vertices (id → value) and adjacency (id → ordered list of
// (target id, edge label)). Edges are directed; parallel edges and self-loops
// are allowed. An undirected edge is two directed edges pushed with swapped
// endpoints (see PushUndirectedEdge).
//
// Identity schemes
//
//   - HashGraph[K, V, E]   explicit ids chosen by the caller (default choice;
//     ids are recoverable without extra bookkeeping).
//   - DerivedGraph[V, E]   ids are uint64 hashes of the vertex value, computed
//     by an Indexer fixed at construction. The value is its own key.
//   - VecGraph[V, E]       ids are insertion positions (int). Append-only.
//
// All three satisfy Reader and Graph, so bfs and spanning are written once
// against those interfaces.
//
// Ordering
//
//	Vertices are enumerated in the order their id was first inserted, edge
//	sources in the order of their first outgoing edge, and adjacency in edge
//	insertion order. Iterators are lazy and restartable; they are not live
//	views, and mutating a store while ranging over it is a caller error.
//
// Dangling edges
//
//	PushEdge never checks that its endpoints exist. Looking up the value of a
//	target with no vertex simply reports "not found", exactly like any other
//	missing id. Validate reports every dangling endpoint as ErrDanglingEdge.
//
// Concurrency
//
//	Stores carry no locks. Mutation and traversal must not overlap; exclusive
//	access for the duration of an algorithm is the caller's obligation.
//
// Complexity
//
//   - PushVertex, PushEdge, Vertex, HasVertex: O(1) amortized.
//   - Edge(from, to): O(out-degree of from).
//   - Vertices/Edges iteration: O(V) / O(V + E).
package core

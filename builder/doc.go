// Package builder emits canonical topologies (path, cycle, complete graph,
// orthogonal grid) into any core.Graph.
//
// Vertex insertion differs per identity scheme, so every constructor takes a
// vertex callback that inserts the i-th vertex and returns its id:
//
//	g := core.NewVecGraph[string, int]()
//	ids, err := builder.Path[int, string, int](g, 4,
//	    func(i int) int { return g.PushVertex(fmt.Sprint(i)) },
//	    func(i, j int) int { return i*10 + j },
//	)
//
// Determinism:
//
//	Vertices are inserted in index order (row-major for Grid). Edges are
//	emitted in a fixed order documented on each constructor, so the
//	resulting adjacency order is reproducible.
//
// Errors:
//
//   - ErrGraphNil        nil graph (interface or store pointer)
//   - ErrTooFewVertices  size below the constructor's minimum
//   - ErrNilCallback     nil vertex or label function
package builder

package bfs_test

import (
	"math/rand"
	"testing"

	"github.com/lakret/gir/bfs"
	"github.com/lakret/gir/core"
)

// BenchmarkBFS_Chain measures BFS on a linear chain of N vertices.
func BenchmarkBFS_Chain(b *testing.B) {
	const N = 10000
	g := core.NewVecGraph[int, struct{}]()
	prev := g.PushVertex(0)
	for i := 1; i < N; i++ {
		id := g.PushVertex(i)
		g.PushEdge(prev, id, struct{}{})
		prev = id
	}

	b.ReportAllocs()
	b.SetBytes(int64(2*N - 1))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS[int, int, struct{}](g, 0, nil)
	}
}

// BenchmarkBFS_Random runs BFS over a sparse random digraph (avg out-degree 4).
func BenchmarkBFS_Random(b *testing.B) {
	const N = 5000
	r := rand.New(rand.NewSource(42))
	g := core.NewVecGraph[int, struct{}]()
	for i := 0; i < N; i++ {
		g.PushVertex(i)
	}
	for i := 0; i < N*4; i++ {
		g.PushEdge(r.Intn(N), r.Intn(N), struct{}{})
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS[int, int, struct{}](g, 0, nil)
	}
}

package spanning_test

import (
	"testing"

	"github.com/lakret/gir/builder"
	"github.com/lakret/gir/core"
	"github.com/lakret/gir/spanning"
)

// denseGraph builds an n-vertex complete graph with symmetric labels (i*j)%97.
func denseGraph(n int) *core.VecGraph[struct{}, int] {
	g := core.NewVecGraph[struct{}, int]()
	_, _ = builder.Complete[int, struct{}, int](g, n,
		func(int) int { return g.PushVertex(struct{}{}) },
		func(i, j int) int { return (i * j) % 97 })

	return g
}

// BenchmarkMinimum_Dense200 runs Prim on a 200-vertex complete graph.
func BenchmarkMinimum_Dense200(b *testing.B) {
	g := denseGraph(200)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = spanning.Minimum[int, struct{}, int, int](g, 0, identity)
	}
}

// BenchmarkForest_Dense200 runs Kruskal on the same graph.
func BenchmarkForest_Dense200(b *testing.B) {
	g := denseGraph(200)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = spanning.Forest[int, struct{}, int, int](g, identity)
	}
}

// BenchmarkTree_Dense200 builds an arbitrary spanning tree.
func BenchmarkTree_Dense200(b *testing.B) {
	g := denseGraph(200)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = spanning.Tree[int, struct{}, int](g, 0)
	}
}

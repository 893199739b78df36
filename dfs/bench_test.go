package dfs_test

import (
	"testing"

	"github.com/lakret/gir/builder"
	"github.com/lakret/gir/core"
	"github.com/lakret/gir/dfs"
)

// BenchmarkDFS_Chain10000 measures DFS over a 10 000-vertex chain.
func BenchmarkDFS_Chain10000(b *testing.B) {
	g := core.NewVecGraph[struct{}, struct{}]()
	_, err := builder.Path[int, struct{}, struct{}](g, 10001,
		func(int) int { return g.PushVertex(struct{}{}) },
		func(int, int) struct{} { return struct{}{} })
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.DFS[int, struct{}, struct{}](g, 0)
	}
}

package dfs_test

import (
	"fmt"

	"github.com/lakret/gir/core"
	"github.com/lakret/gir/dfs"
)

// ExampleTopologicalSort orders a small build pipeline.
func ExampleTopologicalSort() {
	g := core.NewIDGraph[string, struct{}]()
	for _, step := range []string{"fetch", "compile", "test", "package"} {
		g.PushID(step)
	}
	g.PushEdge("fetch", "compile", struct{}{})
	g.PushEdge("compile", "test", struct{}{})
	g.PushEdge("compile", "package", struct{}{})
	g.PushEdge("test", "package", struct{}{})

	order, err := dfs.TopologicalSort[string, struct{}, struct{}](g)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(order)
	// Output:
	// [fetch compile test package]
}

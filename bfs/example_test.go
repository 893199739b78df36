package bfs_test

import (
	"fmt"

	"github.com/lakret/gir/bfs"
	"github.com/lakret/gir/core"
)

// ExampleBFS finds the shortest route through a small directed graph and
// rebuilds it from the recorded parents.
func ExampleBFS() {
	g := core.NewIDGraph[string, string]()
	for _, id := range []string{"A", "B", "C", "D"} {
		g.PushID(id)
	}
	g.PushEdge("A", "B", "ab")
	g.PushEdge("B", "C", "bc")
	g.PushEdge("A", "D", "ad")
	g.PushEdge("D", "C", "dc")

	parents := map[string]string{}
	res, err := bfs.BFS[string, struct{}, string](g, "A", bfs.GoalID("C"),
		bfs.WithOnExplore(bfs.RecordParents(parents)))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(res.Found, res.Depth)
	fmt.Println(bfs.PathFromParents(parents, "C"))

	// Output:
	// true 2
	// [A B C]
}

// ExampleResult_Generations lists vertices layer by layer.
func ExampleResult_Generations() {
	g := core.NewVecGraph[string, struct{}]()
	root := g.PushVertex("root")
	for i := 0; i < 2; i++ {
		child := g.PushVertex(fmt.Sprintf("c%d", i))
		g.PushEdge(root, child, struct{}{})
		for j := 0; j < 2; j++ {
			leaf := g.PushVertex(fmt.Sprintf("c%d.%d", i, j))
			g.PushEdge(child, leaf, struct{}{})
		}
	}

	res, _ := bfs.BFS[int, string, struct{}](g, root, nil)
	for d, gen := range res.Generations() {
		fmt.Println(d, gen)
	}

	// Output:
	// 0 [0]
	// 1 [1 4]
	// 2 [2 3 5 6]
}

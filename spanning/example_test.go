package spanning_test

import (
	"fmt"

	"github.com/lakret/gir/core"
	"github.com/lakret/gir/spanning"
)

// ExampleMinimum grows Prim's tree over a small undirected road network.
func ExampleMinimum() {
	g := core.NewHashGraph[string, string, float64]()
	for _, town := range []string{"Aachen", "Bonn", "Köln", "Düren"} {
		g.PushVertex(town, town)
	}
	road := func(a, b string, km float64) { core.PushUndirectedEdge[string, string, float64](g, a, b, km) }
	road("Aachen", "Köln", 70)
	road("Aachen", "Düren", 35)
	road("Düren", "Köln", 40)
	road("Köln", "Bonn", 30)
	road("Düren", "Bonn", 55)

	km := func(d float64) float64 { return d }
	tree, err := spanning.Minimum[string, string, float64, float64](g, "Aachen", km)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for e := range core.CompleteEdges[string, *string, *float64](tree) {
		fmt.Printf("%s -> %s %.0f\n", e.From, e.To, *e.Label)
	}
	fmt.Println("total", spanning.TotalWeight[string, string, float64, float64](tree, km))

	// Output:
	// Aachen -> Düren 35
	// Düren -> Köln 40
	// Köln -> Bonn 30
	// total 105
}

// ExampleTree shows the LIFO stack at work: the edge pushed last (0-2) is
// taken first, and 3 is reached through 2 rather than 1.
func ExampleTree() {
	g := core.NewIDGraph[int, string]()
	for i := 0; i < 4; i++ {
		g.PushID(i)
	}
	g.PushEdge(0, 1, "0-1")
	g.PushEdge(0, 2, "0-2")
	g.PushEdge(2, 3, "2-3")
	g.PushEdge(1, 3, "1-3")

	tree, _ := spanning.Tree[int, struct{}, string](g, 0)
	for e := range core.CompleteEdges[int, *struct{}, *string](tree) {
		fmt.Println(*e.Label)
	}

	// Output:
	// 0-2
	// 0-1
	// 2-3
}

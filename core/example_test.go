package core_test

import (
	"fmt"

	"github.com/lakret/gir/core"
)

// ExampleHashGraph builds a small directed graph with explicit ids.
func ExampleHashGraph() {
	g := core.NewIDGraph[string, string]()
	g.PushID("A")
	g.PushID("B")
	g.PushID("C")

	g.PushEdge("A", "B", "A -> B")
	g.PushEdge("B", "C", "B -> C")
	g.PushEdge("C", "A", "C -> A")
	g.PushEdge("A", "A", "A loop")

	fmt.Println(g.Order(), g.Size())
	fmt.Println(core.MapAdjacent(g, "A", func(to, label string) string { return to + ":" + label }))
	_, ok := g.Vertex("Z")
	fmt.Println("Z present?", ok)

	// Output:
	// 3 4
	// [B:A -> B A:A loop]
	// Z present? false
}

// ExampleVecGraph shows positional ids handed out by PushVertex.
func ExampleVecGraph() {
	g := core.NewVecGraph[string, int]()
	a := g.PushVertex("A")
	b := g.PushVertex("B")
	g.PushEdge(a, b, 7)

	label, _ := g.Edge(a, b)
	name, _ := g.Vertex(b)
	fmt.Println(a, b, name, label)

	// Output:
	// 0 1 B 7
}

// ExampleDerivedGraph stores values that are their own keys.
func ExampleDerivedGraph() {
	g := core.NewDerivedGraph[string, string](core.StringIndexer{})
	g.PushVertex("Osloer Straße")
	g.PushVertex("Pankstraße")
	g.PushEdgeBetween("Osloer Straße", "Pankstraße", "U8")

	line, ok := g.Edge(g.ID("Osloer Straße"), g.ID("Pankstraße"))
	fmt.Println(line, ok)

	// Output:
	// U8 true
}

// ExampleValidate reports an edge whose target was never pushed.
func ExampleValidate() {
	g := core.NewIDGraph[string, int]()
	g.PushID("A")
	g.PushEdge("A", "B", 1)

	fmt.Println(core.Validate[string, struct{}, int](g))

	// Output:
	// core: dangling edge: A -> B: target has no vertex
}

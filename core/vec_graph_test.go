package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lakret/gir/core"
)

func TestVecGraph_PositionalIDs(t *testing.T) {
	g := core.NewVecGraph[string, string]()
	a := g.PushVertex(VertexA)
	b := g.PushVertex(VertexB)
	c := g.PushVertex(VertexC)

	assert.Equal(t, []int{0, 1, 2}, []int{a, b, c})

	g.PushEdge(a, b, "A -> B")
	g.PushEdge(b, c, "B -> C")
	g.PushEdge(c, a, "C -> A")
	g.PushEdge(a, a, "A loop")

	require.Equal(t, 3, g.Order())
	require.Equal(t, 4, g.Size())
	assert.Equal(t,
		[]string{"A -> B", "A loop"},
		core.MapAdjacent(g, a, func(_ int, label string) string { return label }),
	)
	assert.Equal(t, []int{c}, core.AdjacentIDs(g, b))

	v, ok := g.Vertex(b)
	assert.True(t, ok)
	assert.Equal(t, VertexB, v)

	label, ok := g.Edge(c, a)
	assert.True(t, ok)
	assert.Equal(t, "C -> A", label)
}

func TestVecGraph_OutOfRange(t *testing.T) {
	g := core.NewVecGraph[string, int]()
	g.PushVertex(VertexA)

	for _, id := range []int{-1, 1, 100} {
		_, ok := g.Vertex(id)
		assert.False(t, ok, "id %d", id)
		assert.False(t, g.HasVertex(id), "id %d", id)
		ref, ok := g.VertexRef(id)
		assert.False(t, ok)
		assert.Nil(t, ref)
	}
}

func TestVecGraph_DanglingEdgeStored(t *testing.T) {
	g := core.NewVecGraph[string, int]()
	a := g.PushVertex(VertexA)
	g.PushEdge(a, 7, 1)

	assert.Equal(t, []int{7}, core.AdjacentIDs(g, a))
	assert.ErrorIs(t, core.Validate[int, string, int](g), core.ErrDanglingEdge)
}

func TestVecGraph_VerticesInPositionOrder(t *testing.T) {
	g := core.NewVecGraph[int, struct{}]()
	for i := 10; i < 15; i++ {
		g.PushVertex(i)
	}

	ids, values := collectVertices(g.Vertices())
	assert.Equal(t, []int{0, 1, 2, 3, 4}, ids)
	assert.Equal(t, []int{10, 11, 12, 13, 14}, values)
}

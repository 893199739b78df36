package converters_test

import (
	"bytes"
	"strconv"
	"testing"

	"github.com/dominikbraun/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lakret/gir/converters"
	"github.com/lakret/gir/core"
)

func fixture() *core.HashGraph[string, int, string] {
	g := core.NewHashGraph[string, int, string]()
	g.PushVertex("A", 1)
	g.PushVertex("B", 2)
	g.PushVertex("C", 3)
	g.PushEdge("A", "B", "ab")
	g.PushEdge("A", "B", "ab-again")
	g.PushEdge("B", "C", "bc")
	g.PushEdge("C", "ghost", "dangling")
	return g
}

func labels() converters.Labels[string, int, string] {
	return converters.Labels[string, int, string]{
		Vertex: strconv.Itoa,
		Edge:   func(s string) string { return s },
		Weight: func(s string) int { return len(s) },
	}
}

func TestToGraph(t *testing.T) {
	dg, err := converters.ToGraph[string, int, string](fixture(), labels())
	require.NoError(t, err)

	order, err := dg.Order()
	require.NoError(t, err)
	assert.Equal(t, 3, order)
	size, err := dg.Size()
	require.NoError(t, err)
	assert.Equal(t, 2, size, "parallel edge collapses and dangling edge is dropped")

	e, err := dg.Edge("A", "B")
	require.NoError(t, err)
	assert.Equal(t, "ab", e.Properties.Attributes[converters.LabelAttr])
	assert.Equal(t, 2, e.Properties.Weight)

	_, props, err := dg.VertexWithProperties("C")
	require.NoError(t, err)
	assert.Equal(t, "3", props.Attributes[converters.LabelAttr])

	_, err = dg.Edge("B", "A")
	assert.ErrorIs(t, err, graph.ErrEdgeNotFound)
}

func TestToGraph_DuplicateKey(t *testing.T) {
	g := core.NewIDGraph[int, string]()
	g.PushID(1)
	g.PushID(2)

	_, err := converters.ToGraph[int, struct{}, string](g, converters.Labels[int, struct{}, string]{
		ID: func(int) string { return "same" },
	})
	assert.ErrorIs(t, err, converters.ErrDuplicateKey)
}

func TestWriteDOT(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, converters.WriteDOT[string, int, string](&buf, fixture(), labels()))

	out := buf.String()
	assert.Contains(t, out, "digraph")
	assert.Contains(t, out, `"A" -> "B"`)
	assert.Contains(t, out, `"B" -> "C"`)
	assert.NotContains(t, out, "ghost")
}

func TestRoundTrip(t *testing.T) {
	dg, err := converters.ToGraph[string, int, string](fixture(), labels())
	require.NoError(t, err)

	back, err := converters.FromGraph(dg)
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C"}, back.IDs())
	v, ok := back.Vertex("B")
	require.True(t, ok)
	assert.Equal(t, "2", v)
	label, ok := back.Edge("B", "C")
	require.True(t, ok)
	assert.Equal(t, "bc", label)
	assert.Equal(t, 2, back.Size())
}

func TestFromGraph_DefaultsToHash(t *testing.T) {
	dg := graph.New(graph.StringHash, graph.Directed())
	require.NoError(t, dg.AddVertex("x"))
	require.NoError(t, dg.AddVertex("y"))
	require.NoError(t, dg.AddEdge("y", "x"))

	g, err := converters.FromGraph(dg)
	require.NoError(t, err)

	v, ok := g.Vertex("x")
	require.True(t, ok)
	assert.Equal(t, "x", v)
	label, ok := g.Edge("y", "x")
	require.True(t, ok)
	assert.Empty(t, label)
}

package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lakret/gir/core"
)

func TestValidate(t *testing.T) {
	cases := []struct {
		name  string
		build func(g *core.HashGraph[string, int, int])
		want  int // number of dangling edges
	}{
		{
			name: "consistent",
			build: func(g *core.HashGraph[string, int, int]) {
				g.PushVertex(VertexA, 0)
				g.PushVertex(VertexB, 0)
				g.PushEdge(VertexA, VertexB, 1)
			},
		},
		{
			name: "missing target",
			build: func(g *core.HashGraph[string, int, int]) {
				g.PushVertex(VertexA, 0)
				g.PushEdge(VertexA, VertexB, 1)
			},
			want: 1,
		},
		{
			name: "missing source and both",
			build: func(g *core.HashGraph[string, int, int]) {
				g.PushVertex(VertexB, 0)
				g.PushEdge(VertexA, VertexB, 1)
				g.PushEdge(VertexC, VertexD, 2)
			},
			want: 2,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := core.NewHashGraph[string, int, int]()
			tc.build(g)

			err := core.Validate[string, int, int](g)
			if tc.want == 0 {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, core.ErrDanglingEdge)
			var joined interface{ Unwrap() []error }
			require.True(t, errors.As(err, &joined))
			assert.Len(t, joined.Unwrap(), tc.want)
		})
	}
}

func TestOwn(t *testing.T) {
	src := core.NewHashGraph[string, int, string]()
	src.PushVertex(VertexA, 1)
	src.PushVertex(VertexB, 2)
	src.PushEdge(VertexA, VertexB, "a-b")

	view := core.NewHashGraph[string, *int, *string]()
	for id := range src.Vertices() {
		ref, _ := src.VertexRef(id)
		view.PushVertex(id, ref)
	}
	for to, ref := range src.AdjacencyRefs(VertexA) {
		view.PushEdge(VertexA, to, ref)
	}

	owned := core.Own(view)
	src.PushVertex(VertexA, 100)

	v, ok := owned.Vertex(VertexA)
	require.True(t, ok)
	assert.Equal(t, 1, v, "owned copy must not follow the source")
	label, ok := owned.Edge(VertexA, VertexB)
	require.True(t, ok)
	assert.Equal(t, "a-b", label)
	assert.Equal(t, []string{VertexA, VertexB}, owned.IDs())
}

func TestIsNil(t *testing.T) {
	assert.True(t, core.IsNil[string, int, string](nil))

	var hg *core.HashGraph[string, int, string]
	assert.True(t, core.IsNil[string, int, string](hg))
	var vg *core.VecGraph[int, string]
	assert.True(t, core.IsNil[int, int, string](vg))
	var dg *core.DerivedGraph[string, string]
	assert.True(t, core.IsNil[uint64, string, string](dg))

	assert.False(t, core.IsNil[string, int, string](core.NewHashGraph[string, int, string]()))
	assert.False(t, core.IsNil[int, int, string](core.NewVecGraph[int, string]()))
	assert.False(t, core.IsNil[uint64, string, string](core.NewDerivedGraph[string, string](core.StringIndexer{})))
}

package office_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lakret/gir/office"
)

const fav = 10

func TestPos_Adjacent(t *testing.T) {
	assert.Equal(t, []office.Pos{{1, 0}, {0, 1}}, office.Pos{0, 0}.Adjacent())
	assert.Equal(t,
		[]office.Pos{{1, 2}, {3, 2}, {2, 1}, {2, 3}},
		office.Pos{2, 2}.Adjacent())
}

func TestPos_IsOpen(t *testing.T) {
	cases := []struct {
		p    office.Pos
		open bool
	}{
		{office.Pos{0, 0}, true},
		{office.Pos{1, 0}, false},
		{office.Pos{2, 0}, true},
		{office.Pos{3, 0}, false},
		{office.Pos{0, 1}, true},
		{office.Pos{0, 2}, false},
		{office.Pos{0, 3}, false},
		{office.Pos{0, 4}, true},
		{office.Pos{1, 1}, true},
		{office.Pos{2, 1}, false},
		{office.Pos{-1, 0}, false},
	}
	for _, tc := range cases {
		assert.Equalf(t, tc.open, tc.p.IsOpen(fav), "%v", tc.p)
	}
}

func TestGraph(t *testing.T) {
	// .#.
	// ..#
	// #..
	g := office.Graph(fav, 3)
	assert.Equal(t, 6, g.Order())
	assert.Equal(t, 8, g.Size())
	assert.True(t, g.HasValue(office.Pos{2, 0}))
	assert.False(t, g.HasValue(office.Pos{1, 0}))

	_, ok := g.Edge(g.ID(office.Pos{0, 0}), g.ID(office.Pos{0, 1}))
	assert.True(t, ok)
}

func TestSearch_Example(t *testing.T) {
	start, goal := office.Pos{1, 1}, office.Pos{7, 4}

	out, err := office.Search(fav, start, goal, 20)
	require.NoError(t, err)
	require.True(t, out.Found)
	assert.Equal(t, 11, out.Steps())
	assert.Equal(t, start, out.Path[0])
	assert.Equal(t, goal, out.Path[len(out.Path)-1])

	for i := 0; i+1 < len(out.Path); i++ {
		a, b := out.Path[i], out.Path[i+1]
		assert.Contains(t, a.Adjacent(), b)
		assert.True(t, b.IsOpen(fav))
	}

	require.NotEmpty(t, out.Explored)
	assert.Equal(t, []office.Pos{start}, out.Explored[0])
	require.Greater(t, len(out.Explored), 11)
	assert.Contains(t, out.Explored[11], goal)
}

func TestSearch_Unreachable(t *testing.T) {
	out, err := office.Search(fav, office.Pos{1, 1}, office.Pos{2, 0}, 3)
	require.NoError(t, err)
	assert.False(t, out.Found)
	assert.Nil(t, out.Path)
	assert.Equal(t, -1, out.Steps())

	var all []office.Pos
	for _, gen := range out.Explored {
		all = append(all, gen...)
	}
	assert.ElementsMatch(t,
		[]office.Pos{{1, 1}, {0, 1}, {1, 2}, {0, 0}, {2, 2}},
		all)
}

func TestSearch_Errors(t *testing.T) {
	_, err := office.Search(fav, office.Pos{1, 0}, office.Pos{1, 1}, 10)
	assert.ErrorIs(t, err, office.ErrBlocked)

	_, err = office.Search(fav, office.Pos{1, 1}, office.Pos{-1, 0}, 10)
	assert.ErrorIs(t, err, office.ErrOutOfRange)

	_, err = office.Search(fav, office.Pos{1, 1}, office.Pos{12, 0}, 10)
	assert.ErrorIs(t, err, office.ErrOutOfRange)
}

func TestReachable(t *testing.T) {
	for steps, want := range map[int]int{0: 1, 1: 3, 2: 5} {
		got, err := office.Reachable(fav, office.Pos{1, 1}, steps)
		require.NoError(t, err)
		assert.Equalf(t, want, got, "within %d steps", steps)
	}

	_, err := office.Reachable(fav, office.Pos{1, 0}, 3)
	assert.ErrorIs(t, err, office.ErrBlocked)
	_, err = office.Reachable(fav, office.Pos{1, 1}, -1)
	assert.Error(t, err)
}

// Package maze generates, solves and renders rectangular grid mazes on top
// of the generic graph stores.
package maze

import (
	"github.com/lakret/gir/builder"
	"github.com/lakret/gir/core"
)

// Maze is a Width×Height grid where every cell keeps track of its standing
// walls. Removing a wall always removes the matching wall of the neighbour.
type Maze struct {
	Width, Height int
	walls         []WallSet
}

// Walled returns a maze with every wall of every cell standing.
// Returns ErrEmptyGrid if width or height is below one.
// Complexity: O(W×H).
func Walled(width, height int) (*Maze, error) {
	if width < 1 || height < 1 {
		return nil, ErrEmptyGrid
	}
	walls := make([]WallSet, width*height)
	for i := range walls {
		walls[i] = AllWalls
	}

	return &Maze{Width: width, Height: height, walls: walls}, nil
}

// Contains reports whether c lies within the maze.
func (m *Maze) Contains(c Cell) bool {
	return c.Row >= 0 && c.Row < m.Height && c.Col >= 0 && c.Col < m.Width
}

// index maps c to a row-major index.
func (m *Maze) index(c Cell) int {
	return c.Row*m.Width + c.Col
}

// Cells returns every cell in row-major order.
func (m *Maze) Cells() []Cell {
	out := make([]Cell, 0, m.Width*m.Height)
	for row := 0; row < m.Height; row++ {
		for col := 0; col < m.Width; col++ {
			out = append(out, Cell{row, col})
		}
	}

	return out
}

// Neighbour returns the cell on the other side of wall w, if it is inside the maze.
func (m *Maze) Neighbour(c Cell, w Wall) (Cell, bool) {
	d := offsets[w]
	n := Cell{c.Row + d[0], c.Col + d[1]}
	if !m.Contains(c) || !m.Contains(n) {
		return Cell{}, false
	}

	return n, true
}

// Walls returns the walls standing around c. Cells outside the maze have none.
func (m *Maze) Walls(c Cell) WallSet {
	if !m.Contains(c) {
		return 0
	}

	return m.walls[m.index(c)]
}

// HasWall reports whether wall w of c is standing.
func (m *Maze) HasWall(c Cell, w Wall) bool {
	return m.Walls(c).Has(w)
}

// RemoveWall knocks down wall w of c and the facing wall of its neighbour.
// Border walls can be removed too (to open an entrance). Cells outside the
// maze are ignored.
func (m *Maze) RemoveWall(c Cell, w Wall) {
	if !m.Contains(c) {
		return
	}
	i := m.index(c)
	m.walls[i] = m.walls[i].without(w)

	if n, ok := m.Neighbour(c, w); ok {
		j := m.index(n)
		m.walls[j] = m.walls[j].without(w.Opposite())
	}
}

// Grid returns the full grid graph of a width×height maze: one vertex per
// cell and, for every pair of neighbours, an edge in each direction labelled
// with the wall it crosses.
func Grid(width, height int) (*core.HashGraph[Cell, struct{}, Wall], error) {
	if width < 1 || height < 1 {
		return nil, ErrEmptyGrid
	}

	g := core.NewIDGraph[Cell, Wall]()
	_, err := builder.Grid[Cell, struct{}, Wall](g, height, width,
		func(row, col int) Cell {
			c := Cell{row, col}
			g.PushID(c)
			return c
		},
		func(_, _ int, d builder.Direction) Wall { return wallOf[d] },
	)
	if err != nil {
		return nil, err
	}

	return g, nil
}

// Passages returns the graph of open passages: an edge c→n labelled w for
// every wall w of c that is down and has a neighbour n behind it.
func (m *Maze) Passages() *core.HashGraph[Cell, struct{}, Wall] {
	return m.graph(func(c Cell, w Wall) bool { return !m.HasWall(c, w) })
}

func (m *Maze) graph(keep func(Cell, Wall) bool) *core.HashGraph[Cell, struct{}, Wall] {
	g := core.NewIDGraph[Cell, Wall]()
	cells := m.Cells()
	for _, c := range cells {
		g.PushID(c)
	}
	for _, c := range cells {
		for _, w := range Walls {
			n, ok := m.Neighbour(c, w)
			if ok && keep(c, w) {
				g.PushEdge(c, n, w)
			}
		}
	}

	return g
}

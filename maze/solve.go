package maze

import (
	"fmt"

	"github.com/lakret/gir/bfs"
)

// Solve returns the shortest route from one cell to another through open
// passages, both ends included.
//
// Returns ErrCellOutOfBounds for cells outside the maze and ErrNoPath if the
// cells are not connected (only possible for hand-carved mazes).
func (m *Maze) Solve(from, to Cell) ([]Cell, error) {
	for _, c := range []Cell{from, to} {
		if !m.Contains(c) {
			return nil, fmt.Errorf("%w: %v in %dx%d maze", ErrCellOutOfBounds, c, m.Width, m.Height)
		}
	}

	res, err := bfs.BFS[Cell, struct{}, Wall](m.Passages(), from, bfs.GoalID(to))
	if err != nil {
		return nil, err
	}
	if !res.Found {
		return nil, fmt.Errorf("%w: %v to %v", ErrNoPath, from, to)
	}

	return res.PathTo(to)
}

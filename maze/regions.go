package maze

import (
	"github.com/lakret/gir/dfs"
)

// Components returns the connected regions of the maze. Regions are ordered
// by their first cell in row-major order and list their cells in depth-first
// discovery order. A Walled maze has W×H singleton regions; a generated
// maze has exactly one.
//
// Complexity: O(W×H), a single forest traversal.
func (m *Maze) Components() ([][]Cell, error) {
	visited := make([]Cell, 0, m.Width*m.Height)
	res, err := dfs.DFS[Cell, struct{}, Wall](m.Passages(), Cell{}, dfs.WithFullTraversal(),
		dfs.WithOnVisit(func(c Cell) error {
			visited = append(visited, c)
			return nil
		}))
	if err != nil {
		return nil, err
	}

	// Every tree starts with its root, and roots come in visit order.
	regions := make([][]Cell, 0, len(res.Roots))
	next := 0
	for _, c := range visited {
		if next < len(res.Roots) && c == res.Roots[next] {
			regions = append(regions, nil)
			next++
		}
		regions[len(regions)-1] = append(regions[len(regions)-1], c)
	}

	return regions, nil
}

// Perfect reports whether the maze is a spanning tree of its grid: every
// cell reachable from every other through exactly one route. That holds
// when the passages form a single tree, i.e. one DFS tree and W×H-1
// passages.
func (m *Maze) Perfect() (bool, error) {
	passages := m.Passages()
	res, err := dfs.DFS[Cell, struct{}, Wall](passages, Cell{}, dfs.WithFullTraversal())
	if err != nil {
		return false, err
	}

	// Passages are stored in both directions.
	return len(res.Roots) == 1 && passages.Size() == 2*(m.Width*m.Height-1), nil
}

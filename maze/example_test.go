package maze_test

import (
	"fmt"

	"github.com/lakret/gir/maze"
)

// ExampleMaze_RemoveWall carves an L-shaped corridor by hand.
func ExampleMaze_RemoveWall() {
	m, _ := maze.Walled(2, 2)
	m.RemoveWall(maze.Cell{Row: 0, Col: 0}, maze.Right)
	m.RemoveWall(maze.Cell{Row: 0, Col: 1}, maze.Bottom)

	path, _ := m.Solve(maze.Cell{Row: 0, Col: 0}, maze.Cell{Row: 1, Col: 1})
	fmt.Println(path)
	fmt.Print(m.Render(maze.PathMarker(path, " o ")))

	// Output:
	// [(0,0) (0,1) (1,1)]
	// +---+---+
	// | o   o |
	// +---+   +
	// |   | o |
	// +---+---+
}

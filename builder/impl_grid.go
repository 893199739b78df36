package builder

import "github.com/lakret/gir/core"

// Direction is a step between orthogonal grid neighbours.
type Direction uint8

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions lists the steps in the order Grid emits them (clockwise from Up).
var Directions = [...]Direction{Up, Right, Down, Left}

// Offset returns the (row, col) delta of d.
func (d Direction) Offset() (dr, dc int) {
	switch d {
	case Up:
		return -1, 0
	case Right:
		return 0, 1
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	}
	return 0, 0
}

// Grid builds a rows×cols orthogonal grid. Vertices are inserted in
// row-major order through vertex(r, c). Then, cell by cell in row-major
// order, one edge per in-bounds neighbour is emitted in Directions order,
// labelled label(r, c, d). Every neighbour pair is therefore linked in both
// directions. Returns the ids in row-major order. Requires rows, cols ≥ 1.
//
// Complexity: O(rows×cols).
func Grid[K comparable, V, E any](g core.Graph[K, V, E], rows, cols int, vertex func(r, c int) K, label func(r, c int, d Direction) E) ([]K, error) {
	if err := check("Grid", g, min(rows, cols), minGridDim, vertex != nil, label != nil); err != nil {
		return nil, err
	}

	ids := make([]K, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			ids = append(ids, vertex(r, c))
		}
	}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			for _, d := range Directions {
				dr, dc := d.Offset()
				nr, nc := r+dr, c+dc
				if nr < 0 || nr >= rows || nc < 0 || nc >= cols {
					continue
				}
				g.PushEdge(ids[r*cols+c], ids[nr*cols+nc], label(r, c, d))
			}
		}
	}

	return ids, nil
}

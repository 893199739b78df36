package maze

import "strings"

// String renders the maze as ASCII art, three characters per cell:
//
//	+---+---+
//	|       |
//	+---+---+
func (m *Maze) String() string {
	return m.Render(func(Cell) string { return "   " })
}

// Render draws the maze like String, asking body for the three-character
// interior of every cell. Callers use it to mark paths or colour cells.
func (m *Maze) Render(body func(Cell) string) string {
	var b strings.Builder
	for row := 0; row < m.Height; row++ {
		m.horizontal(&b, row, Top)
		for col := 0; col < m.Width; col++ {
			c := Cell{row, col}
			if m.HasWall(c, Left) {
				b.WriteByte('|')
			} else {
				b.WriteByte(' ')
			}
			b.WriteString(body(c))
		}
		if m.HasWall(Cell{row, m.Width - 1}, Right) {
			b.WriteByte('|')
		} else {
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}
	m.horizontal(&b, m.Height-1, Bottom)

	return b.String()
}

// horizontal writes the wall line on side w (Top or Bottom) of row.
func (m *Maze) horizontal(b *strings.Builder, row int, w Wall) {
	for col := 0; col < m.Width; col++ {
		b.WriteByte('+')
		if m.HasWall(Cell{row, col}, w) {
			b.WriteString("---")
		} else {
			b.WriteString("   ")
		}
	}
	b.WriteString("+\n")
}

// PathMarker returns a Render body that marks every cell on path with mark
// (three characters wide) and leaves the others blank.
func PathMarker(path []Cell, mark string) func(Cell) string {
	on := make(map[Cell]bool, len(path))
	for _, c := range path {
		on[c] = true
	}
	return func(c Cell) string {
		if on[c] {
			return mark
		}
		return "   "
	}
}

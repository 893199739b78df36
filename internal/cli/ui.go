package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lakret/gir/maze"
	"github.com/lakret/gir/office"
)

var (
	colorCyan   = lipgloss.Color("36")  // Teal - start
	colorGreen  = lipgloss.Color("35")  // Green - goal
	colorYellow = lipgloss.Color("220") // Amber - path
	colorPurple = lipgloss.Color("93")  // Purple - walls
	colorBlue   = lipgloss.Color("24")  // Dark blue - explored
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

var (
	// StyleTitle for headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleNumber for numeric values.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)
)

var (
	styleWall     = lipgloss.NewStyle().Foreground(colorPurple)
	styleStart    = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleGoal     = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
	stylePath     = lipgloss.NewStyle().Foreground(colorYellow)
	styleExplored = lipgloss.NewStyle().Foreground(colorBlue)
)

const (
	glyphWall     = "█"
	glyphOpen     = "·"
	glyphStart    = "S"
	glyphGoal     = "G"
	glyphPath     = "o"
	glyphExplored = "░"
)

// renderMaze draws m, marking path cells when path is non-empty.
func renderMaze(m *maze.Maze, path []maze.Cell) string {
	body := func(maze.Cell) string { return "   " }
	if len(path) > 0 {
		first, last := path[0], path[len(path)-1]
		on := maze.PathMarker(path, " "+glyphPath+" ")
		body = func(c maze.Cell) string {
			switch c {
			case first:
				return " " + styleStart.Render(glyphStart) + " "
			case last:
				return " " + styleGoal.Render(glyphGoal) + " "
			}
			return stylePath.Render(on(c))
		}
	}

	return strings.TrimSuffix(m.Render(body), "\n")
}

// officeFrame describes what to draw on top of the office floor plan.
type officeFrame struct {
	fav         int
	size        int
	start, goal office.Pos
	explored    map[office.Pos]bool
	path        map[office.Pos]bool
}

func newOfficeFrame(fav, size int, start, goal office.Pos) officeFrame {
	return officeFrame{
		fav:      fav,
		size:     size,
		start:    start,
		goal:     goal,
		explored: map[office.Pos]bool{},
		path:     map[office.Pos]bool{},
	}
}

// withGenerations marks the first n generations of explored as explored.
func (f officeFrame) withGenerations(explored [][]office.Pos, n int) officeFrame {
	for i := 0; i < n && i < len(explored); i++ {
		for _, p := range explored[i] {
			f.explored[p] = true
		}
	}
	return f
}

func (f officeFrame) withPath(path []office.Pos) officeFrame {
	for _, p := range path {
		f.path[p] = true
	}
	return f
}

// render draws the size×size floor plan, one glyph per position.
func (f officeFrame) render() string {
	var b strings.Builder
	for y := 0; y < f.size; y++ {
		for x := 0; x < f.size; x++ {
			p := office.Pos{X: x, Y: y}
			switch {
			case p == f.start:
				b.WriteString(styleStart.Render(glyphStart))
			case p == f.goal:
				b.WriteString(styleGoal.Render(glyphGoal))
			case !p.IsOpen(f.fav):
				b.WriteString(styleWall.Render(glyphWall))
			case f.path[p]:
				b.WriteString(stylePath.Render(glyphPath))
			case f.explored[p]:
				b.WriteString(styleExplored.Render(glyphExplored))
			default:
				b.WriteString(StyleDim.Render(glyphOpen))
			}
		}
		if y < f.size-1 {
			b.WriteByte('\n')
		}
	}

	return b.String()
}

// Package maze defines cells, walls, options and sentinel errors for
// rectangular grid mazes.
package maze

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/lakret/gir/builder"
)

// Sentinel errors for maze operations.
var (
	// ErrEmptyGrid indicates a width or height below one.
	ErrEmptyGrid = errors.New("maze: grid must have at least one row and one column")
	// ErrCellOutOfBounds indicates a cell outside the maze.
	ErrCellOutOfBounds = errors.New("maze: cell out of bounds")
	// ErrNoPath indicates that two cells are not connected by passages.
	ErrNoPath = errors.New("maze: no path between cells")
	// ErrUnknownAlgorithm indicates an unrecognised generation algorithm name.
	ErrUnknownAlgorithm = errors.New("maze: unknown algorithm")
)

// Cell addresses a maze square, 0-indexed from the top-left corner.
type Cell struct {
	Row, Col int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Wall is one side of a cell.
type Wall uint8

const (
	Top Wall = iota
	Right
	Bottom
	Left
)

// Walls lists every side in clockwise order starting at Top.
var Walls = [...]Wall{Top, Right, Bottom, Left}

// wallOf maps a grid step to the wall it crosses.
var wallOf = [...]Wall{
	builder.Up:    Top,
	builder.Right: Right,
	builder.Down:  Bottom,
	builder.Left:  Left,
}

// offsets[w] is the (row, col) delta to the neighbour behind w.
var offsets = [...][2]int{
	Top:    {-1, 0},
	Right:  {0, 1},
	Bottom: {1, 0},
	Left:   {0, -1},
}

// Opposite returns the wall facing w from the neighbouring cell.
func (w Wall) Opposite() Wall {
	return (w + 2) % 4
}

func (w Wall) String() string {
	switch w {
	case Top:
		return "top"
	case Right:
		return "right"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	}
	return fmt.Sprintf("Wall(%d)", uint8(w))
}

// WallSet is a bitmask of the walls still standing around a cell.
type WallSet uint8

// AllWalls has every side closed.
const AllWalls WallSet = 1<<Top | 1<<Right | 1<<Bottom | 1<<Left

// Has reports whether w is standing.
func (s WallSet) Has(w Wall) bool { return s&(1<<w) != 0 }

func (s WallSet) without(w Wall) WallSet { return s &^ (1 << w) }

// Algorithm selects how passages are carved.
type Algorithm int

const (
	// AlgorithmPrim carves along a minimum spanning tree of randomly weighted
	// grid edges. Mazes have many short dead ends.
	AlgorithmPrim Algorithm = iota
	// AlgorithmDFS carves along an arbitrary (depth-first) spanning tree over
	// shuffled neighbours. Mazes have long winding corridors.
	AlgorithmDFS
	// AlgorithmKruskal carves along a minimum spanning forest of randomly
	// weighted grid edges.
	AlgorithmKruskal
)

func (a Algorithm) String() string {
	switch a {
	case AlgorithmPrim:
		return "prim"
	case AlgorithmDFS:
		return "dfs"
	case AlgorithmKruskal:
		return "kruskal"
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// ParseAlgorithm is the inverse of Algorithm.String.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(name) {
	case "prim", "":
		return AlgorithmPrim, nil
	case "dfs":
		return AlgorithmDFS, nil
	case "kruskal":
		return AlgorithmKruskal, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Options configures Generate.
type Options struct {
	// Seed feeds the random source; equal seeds give equal mazes.
	Seed int64
	// Algorithm selects the carving strategy.
	Algorithm Algorithm
	// Logger receives a debug line per generated maze. Nil disables logging.
	Logger *log.Logger
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns Prim carving with seed 1 and no logger.
func DefaultOptions() Options {
	return Options{
		Seed:      1,
		Algorithm: AlgorithmPrim,
	}
}

// WithSeed sets the random seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithAlgorithm sets the carving strategy.
func WithAlgorithm(a Algorithm) Option {
	return func(o *Options) { o.Algorithm = a }
}

// WithLogger sets the debug logger.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

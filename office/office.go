// Package office models the cubicle maze of Advent of Code 2016, day 13:
// an unbounded grid whose walls follow from a "favourite number", searched
// breadth-first from one desk to another.
package office

import (
	"errors"
	"fmt"
	"math/bits"

	"github.com/lakret/gir/bfs"
	"github.com/lakret/gir/core"
)

// Sentinel errors for office searches.
var (
	// ErrBlocked indicates that the start or goal is inside a wall.
	ErrBlocked = errors.New("office: position is a wall")
	// ErrOutOfRange indicates a position outside the searched area.
	ErrOutOfRange = errors.New("office: position outside the searched area")
)

// adjacentDelta is the neighbour order: left, right, up, down.
var adjacentDelta = [...][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Pos is a location in the office; both coordinates are non-negative.
type Pos struct {
	X, Y int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// Adjacent returns the orthogonal neighbours of p that have no negative coordinate.
func (p Pos) Adjacent() []Pos {
	out := make([]Pos, 0, len(adjacentDelta))
	for _, d := range adjacentDelta {
		n := Pos{p.X + d[0], p.Y + d[1]}
		if n.X >= 0 && n.Y >= 0 {
			out = append(out, n)
		}
	}

	return out
}

// IsOpen reports whether p is open space for the given favourite number:
// x*x + 3*x + 2*x*y + y + y*y + fav has an even number of set bits.
// Positions with a negative coordinate are never open.
func (p Pos) IsOpen(fav int) bool {
	if p.X < 0 || p.Y < 0 {
		return false
	}
	x, y := uint64(p.X), uint64(p.Y)
	v := x*x + 3*x + 2*x*y + y + y*y + uint64(fav)

	return bits.OnesCount64(v)%2 == 0
}

// Graph returns the open positions of the size×size corner of the office,
// with an edge between every pair of open neighbours in both directions.
// Ids are derived from the positions themselves.
func Graph(fav, size int) *core.DerivedGraph[Pos, struct{}] {
	g := core.NewDerivedGraph[Pos, struct{}](core.FormatIndexer[Pos]{})
	inside := func(p Pos) bool { return p.X < size && p.Y < size && p.IsOpen(fav) }

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if p := (Pos{x, y}); inside(p) {
				g.PushVertex(p)
			}
		}
	}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			p := Pos{x, y}
			if !inside(p) {
				continue
			}
			for _, n := range p.Adjacent() {
				if inside(n) {
					g.PushEdgeBetween(p, n, struct{}{})
				}
			}
		}
	}

	return g
}

// Outcome is the result of a Search.
type Outcome struct {
	// Found reports whether the goal was reached.
	Found bool
	// Path runs from start to goal, both included; nil when not found.
	Path []Pos
	// Explored lists explored positions by generation: Explored[d] were first
	// reached after d steps. Generation 0 is the start.
	Explored [][]Pos
}

// Steps returns the number of moves along Path, or -1 when not found.
func (o *Outcome) Steps() int {
	if !o.Found {
		return -1
	}
	return len(o.Path) - 1
}

// Search runs a breadth-first search from start to goal within the
// size×size corner of the office. Extra bfs options (context, depth limit,
// logger) are passed through.
//
// Returns ErrOutOfRange or ErrBlocked when start or goal is unusable.
// An unreachable goal is not an error: Found is false and Explored still
// holds everything reachable.
func Search(fav int, start, goal Pos, size int, opts ...bfs.Option) (*Outcome, error) {
	for _, p := range []Pos{start, goal} {
		if err := check(fav, p, size); err != nil {
			return nil, err
		}
	}

	g := Graph(fav, size)
	res, err := bfs.BFS[uint64, Pos, struct{}](g, g.ID(start), bfs.GoalID(g.ID(goal)), opts...)
	if err != nil {
		return nil, err
	}

	pos := func(ids []uint64) []Pos {
		out := make([]Pos, len(ids))
		for i, id := range ids {
			out[i], _ = g.Vertex(id)
		}
		return out
	}

	out := &Outcome{Found: res.Found}
	for _, gen := range res.Generations() {
		out.Explored = append(out.Explored, pos(gen))
	}
	if res.Found {
		ids, err := res.PathTo(res.Goal)
		if err != nil {
			return nil, err
		}
		out.Path = pos(ids)
	}

	return out, nil
}

// Reachable counts the distinct positions (start included) that can be
// reached from start in at most maxSteps moves.
func Reachable(fav int, start Pos, maxSteps int) (int, error) {
	if maxSteps < 0 {
		return 0, fmt.Errorf("%w: negative step count %d", bfs.ErrOptionViolation, maxSteps)
	}
	size := max(start.X, start.Y) + maxSteps + 1
	if err := check(fav, start, size); err != nil {
		return 0, err
	}
	if maxSteps == 0 {
		return 1, nil
	}

	g := Graph(fav, size)
	res, err := bfs.BFS[uint64, Pos, struct{}](g, g.ID(start), nil, bfs.WithMaxDepth(maxSteps))
	if err != nil {
		return 0, err
	}

	return len(res.Order), nil
}

// check rejects positions outside the size×size area or inside a wall.
func check(fav int, p Pos, size int) error {
	if p.X < 0 || p.Y < 0 || p.X >= size || p.Y >= size {
		return fmt.Errorf("%w: %v (size %d)", ErrOutOfRange, p, size)
	}
	if !p.IsOpen(fav) {
		return fmt.Errorf("%w: %v", ErrBlocked, p)
	}

	return nil
}

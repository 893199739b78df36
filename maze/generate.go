package maze

import (
	"fmt"
	"math/rand/v2"

	"github.com/lakret/gir/core"
	"github.com/lakret/gir/spanning"
)

// step is a carving candidate: the wall to knock down and its random weight.
type step struct {
	wall   Wall
	weight uint32
}

func stepWeight(s step) uint32 { return s.weight }

// Generate returns a perfect maze (exactly one route between any two cells)
// of the given size. Passages follow a spanning tree of the grid graph
// chosen by the configured Algorithm; the same seed and algorithm always
// produce the same maze.
//
// Returns ErrEmptyGrid or ErrUnknownAlgorithm.
// Complexity: O(W×H log(W×H)).
func Generate(width, height int, opts ...Option) (*Maze, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	m, err := Walled(width, height)
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewPCG(uint64(o.Seed), uint64(o.Seed)>>1|1))
	g := m.weightedGrid(rng, o.Algorithm == AlgorithmDFS)

	start := Cell{0, 0}
	var tree *core.HashGraph[Cell, *struct{}, *step]
	switch o.Algorithm {
	case AlgorithmPrim:
		tree, err = spanning.Minimum[Cell, struct{}, step, uint32](g, start, stepWeight, spanning.WithLogger(o.Logger))
	case AlgorithmDFS:
		tree, err = spanning.Tree[Cell, struct{}, step](g, start, spanning.WithLogger(o.Logger))
	case AlgorithmKruskal:
		tree, err = spanning.Forest[Cell, struct{}, step, uint32](g, stepWeight, spanning.WithLogger(o.Logger))
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, o.Algorithm)
	}
	if err != nil {
		return nil, err
	}

	for e := range core.CompleteEdges[Cell, *struct{}, *step](tree) {
		m.RemoveWall(e.From, e.Label.wall)
	}

	if o.Logger != nil {
		o.Logger.Debug("maze generated",
			"width", width, "height", height, "algorithm", o.Algorithm, "seed", o.Seed, "passages", tree.Size())
	}

	return m, nil
}

// weightedGrid builds the grid graph with one random weight per neighbour
// pair, shared by both directions. With shuffle set every cell's neighbours
// are pushed in random order, which randomises depth-first expansion.
func (m *Maze) weightedGrid(rng *rand.Rand, shuffle bool) *core.HashGraph[Cell, struct{}, step] {
	cells := m.Cells()
	// right[i] and down[i] weigh the edges to the Right and Bottom neighbours of cells[i].
	right := make([]uint32, len(cells))
	down := make([]uint32, len(cells))
	for i := range cells {
		right[i], down[i] = rng.Uint32(), rng.Uint32()
	}
	// weight expects n to be the neighbour of c behind w.
	weight := func(c, n Cell, w Wall) uint32 {
		switch w {
		case Right:
			return right[m.index(c)]
		case Bottom:
			return down[m.index(c)]
		case Left:
			return right[m.index(n)]
		default:
			return down[m.index(n)]
		}
	}

	g := core.NewHashGraph[Cell, struct{}, step]()
	for _, c := range cells {
		g.PushVertex(c, struct{}{})
	}
	for _, c := range cells {
		order := Walls
		if shuffle {
			rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
		}
		for _, w := range order {
			n, ok := m.Neighbour(c, w)
			if !ok {
				continue
			}
			g.PushEdge(c, n, step{wall: w, weight: weight(c, n, w)})
		}
	}

	return g
}

package dfs

import (
	"fmt"
	"slices"

	"github.com/lakret/gir/core"
)

// sorter holds the three-colour state shared by TopologicalSort and FindCycle.
type sorter[K comparable, V, E any] struct {
	graph core.Reader[K, V, E]
	opts  Options
	state map[K]int
	stack []K
	order []K
	cycle []K
}

func newSorter[K comparable, V, E any](g core.Reader[K, V, E], o Options) *sorter[K, V, E] {
	return &sorter[K, V, E]{
		graph: g,
		opts:  o,
		state: make(map[K]int, g.Order()),
		order: make([]K, 0, g.Order()),
	}
}

// run visits every vertex in insertion order and stops at the first back edge.
func (s *sorter[K, V, E]) run() error {
	for id := range s.graph.Vertices() {
		if s.state[id] != White {
			continue
		}
		if err := s.visit(id); err != nil {
			return err
		}
		if s.cycle != nil {
			return nil
		}
	}

	return nil
}

// visit colours id Gray, explores its targets and records it in post-order.
// Targets without a vertex are ignored.
func (s *sorter[K, V, E]) visit(id K) error {
	select {
	case <-s.opts.Ctx.Done():
		return s.opts.Ctx.Err()
	default:
	}

	s.state[id] = Gray
	s.stack = append(s.stack, id)

	for to := range s.graph.Adjacency(id) {
		if !s.graph.HasVertex(to) {
			continue
		}
		switch s.state[to] {
		case Gray:
			i := slices.Index(s.stack, to)
			s.cycle = append(slices.Clone(s.stack[i:]), to)
			return nil
		case White:
			if err := s.visit(to); err != nil {
				return err
			}
			if s.cycle != nil {
				return nil
			}
		}
	}

	s.stack = s.stack[:len(s.stack)-1]
	s.state[id] = Black
	s.order = append(s.order, id)

	return nil
}

// TopologicalSort orders the vertices of the directed graph g so that for
// every edge u→v, u comes before v. Ties follow vertex insertion order.
// Edges to ids without a vertex are ignored.
//
// Returns ErrCycleDetected, wrapped with the offending cycle, if g is not a DAG.
func TopologicalSort[K comparable, V, E any](g core.Reader[K, V, E], opts ...Option) ([]K, error) {
	if core.IsNil(g) {
		return nil, ErrGraphNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	s := newSorter(g, o)
	if err = s.run(); err != nil {
		return nil, err
	}
	if s.cycle != nil {
		return nil, fmt.Errorf("%w: %v", ErrCycleDetected, s.cycle)
	}
	slices.Reverse(s.order)

	if o.Logger != nil {
		o.Logger.Debug("topological sort finished", "vertices", len(s.order))
	}

	return s.order, nil
}

// FindCycle returns the first directed cycle found in g as a closed walk
// [v0, v1, ..., v0], or nil if g is acyclic. A self-loop on v yields [v, v].
func FindCycle[K comparable, V, E any](g core.Reader[K, V, E], opts ...Option) ([]K, error) {
	if core.IsNil(g) {
		return nil, ErrGraphNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	s := newSorter(g, o)
	if err = s.run(); err != nil {
		return nil, err
	}

	return s.cycle, nil
}

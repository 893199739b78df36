// Package bfs provides tunable options, result type and error definitions
// for breadth-first search over a core.Reader.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start id has no vertex.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by Result.PathTo for ids that were never explored.
	ErrNoPath = errors.New("bfs: no path")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth, or a hook typed for another
// id type), it is recorded and surfaced as ErrOptionViolation when BFS runs.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// Logger receives a debug summary of each run. Nil disables logging.
	Logger *log.Logger

	// moveFilter is a func(from, to K) bool; onExplore is a func(parent, child K).
	// They are typed per call, so they are stored untyped and checked by BFS.
	moveFilter any
	onExplore  any

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no depth limit (MaxDepth == 0)
//   - every move allowed, no explore hook
//   - no logger.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: 0,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: vertices deeper than d are never explored
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithLogger makes BFS log a debug summary of every run to l.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithMoveFilter restricts which edges the search may follow: the move
// from→to is skipped when fn returns false. By default all moves are allowed.
// K must match the id type of the searched graph.
func WithMoveFilter[K comparable](fn func(from, to K) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.moveFilter = fn
		}
	}
}

// WithOnExplore registers fn to be called exactly once per vertex, at the
// moment it is first discovered, with the vertex it was discovered from.
// It is never called for the start vertex.
// K must match the id type of the searched graph.
func WithOnExplore[K comparable](fn func(parent, child K)) Option {
	return func(o *Options) {
		if fn != nil {
			o.onExplore = fn
		}
	}
}

// Result holds the outcome of a BFS run:
//   - Found/Goal/Depth: whether the goal predicate fired, for which id, at which depth.
//   - Order: explored ids in discovery order (for BFS this is also visit order).
//   - Depths: explored id → distance (in edges) from Start.
//   - Parent: explored id → the id it was discovered from (Start has no entry).
type Result[K comparable] struct {
	Start  K
	Found  bool
	Goal   K
	Depth  int
	Order  []K
	Depths map[K]int
	Parent map[K]K
}

// PathTo reconstructs the path from Start to dest, both ends included.
// Returns ErrNoPath if dest was never explored.
func (r *Result[K]) PathTo(dest K) ([]K, error) {
	if _, ok := r.Depths[dest]; !ok {
		return nil, fmt.Errorf("%w to %v", ErrNoPath, dest)
	}
	if dest == r.Start {
		return []K{dest}, nil
	}

	return PathFromParents(r.Parent, dest), nil
}

// Generations groups explored ids by depth: Generations()[d] holds the ids
// first reached at depth d, in discovery order. Generation 0 is the start.
func (r *Result[K]) Generations() [][]K {
	var out [][]K
	for _, id := range r.Order {
		d := r.Depths[id]
		for len(out) <= d {
			out = append(out, nil)
		}
		out[d] = append(out[d], id)
	}

	return out
}

// Package dfs defines types and options for depth-first search traversal,
// including cancellation, pre-/post-order hooks, depth limiting, neighbor
// filtering and full-graph (forest) traversal.
package dfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
)

// Visitation states of a vertex.
const (
	White = iota // not visited yet
	Gray         // on the recursion stack
	Black        // vertex and all its descendants fully explored
)

var (
	// ErrGraphNil is returned when a nil graph is passed to DFS,
	// TopologicalSort or FindCycle.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start id has no vertex.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrCycleDetected is returned by TopologicalSort when the graph has a cycle.
	ErrCycleDetected = errors.New("dfs: cycle detected")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")
)

// Option configures optional behavior of a depth-first run.
type Option func(*Options)

// Options holds configurable parameters for DFS traversal.
// TopologicalSort and FindCycle only honor Ctx and Logger.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// MaxDepth, if non-negative, limits recursion to the given depth.
	// A depth of 0 visits only the start vertex. Default is -1 (no limit).
	MaxDepth int

	// FullTraversal restarts the search from every unvisited vertex, covering
	// disconnected components (forest traversal).
	FullTraversal bool

	// Logger receives a debug summary of each run. Nil disables logging.
	Logger *log.Logger

	// onVisit and onExit are func(K) error, filter is func(K) bool.
	// They are typed per call and checked when the run starts.
	onVisit any
	onExit  any
	filter  any

	err error
}

// DefaultOptions returns Options with a background context, no depth limit,
// no hooks and single-source traversal.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the context used for cancellation. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth limits traversal depth to limit; 0 visits only the start.
// A negative limit is reported as ErrOptionViolation.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		if limit < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, limit)
			return
		}
		o.MaxDepth = limit
	}
}

// WithFullTraversal makes DFS cover every vertex of the graph.
func WithFullTraversal() Option {
	return func(o *Options) {
		o.FullTraversal = true
	}
}

// WithLogger makes the run log a debug summary to l.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithOnVisit installs fn as a pre-order hook, called when a vertex is first
// discovered. An error returned by fn aborts the traversal.
func WithOnVisit[K comparable](fn func(id K) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.onVisit = fn
		}
	}
}

// WithOnExit installs fn as a post-order hook, called after all descendants
// of a vertex have been explored. An error returned by fn aborts the traversal.
func WithOnExit[K comparable](fn func(id K) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.onExit = fn
		}
	}
}

// WithFilterNeighbor skips every neighbor for which fn returns false.
// Skipped neighbors are counted in Result.SkippedNeighbors.
func WithFilterNeighbor[K comparable](fn func(id K) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.filter = fn
		}
	}
}

// Result captures the outcome of a depth-first traversal.
type Result[K comparable] struct {
	// Order records vertices in the sequence they finished (post-order).
	Order []K

	// Depth maps each visited id to its depth in its DFS tree.
	Depth map[K]int

	// Parent maps each visited id to the id it was first discovered from.
	// Tree roots have no entry.
	Parent map[K]K

	// Roots lists the id each DFS tree was started from, in order.
	// Single-source runs have exactly one root.
	Roots []K

	// SkippedNeighbors counts neighbors rejected by the filter.
	SkippedNeighbors int
}

// Visited reports whether id was reached during the traversal.
func (r *Result[K]) Visited(id K) bool {
	_, ok := r.Depth[id]
	return ok
}

// buildOptions applies opts over the defaults.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

// hook resolves an untyped hook stored in Options, falling back to def.
func hook[F any](stored any, def F, name string) (F, error) {
	if stored == nil {
		return def, nil
	}
	fn, ok := stored.(F)
	if !ok {
		return def, fmt.Errorf("%w: %s has type %T, want %T", ErrOptionViolation, name, stored, def)
	}

	return fn, nil
}

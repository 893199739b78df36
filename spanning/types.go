// Package spanning defines configuration options and sentinel errors for
// spanning-tree construction.
package spanning

import (
	"cmp"
	"errors"

	"github.com/charmbracelet/log"

	"github.com/lakret/gir/core"
)

// ErrGraphNil is returned if a nil graph is passed.
var ErrGraphNil = errors.New("spanning: graph is nil")

// ErrStartVertexNotFound indicates that the start id has no vertex in the
// source graph. It is the only case in which no tree is produced.
var ErrStartVertexNotFound = errors.New("spanning: start vertex not found")

// ErrWeightNil indicates that Minimum or Forest was called without a weight function.
var ErrWeightNil = errors.New("spanning: weight function is nil")

// Options configures spanning construction.
type Options struct {
	// Logger receives debug output: a summary per run and every skipped
	// dangling edge. Nil disables logging.
	Logger *log.Logger
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns Options with logging disabled.
func DefaultOptions() Options {
	return Options{}
}

// WithLogger sets the debug logger.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

func (o Options) debug(msg string, keyvals ...any) {
	if o.Logger != nil {
		o.Logger.Debug(msg, keyvals...)
	}
}

// TotalWeight sums weight over every edge label of a tree built by this package.
func TotalWeight[K comparable, V, E any, W cmp.Ordered](tree *core.HashGraph[K, *V, *E], weight func(E) W) W {
	var total W
	for e := range core.CompleteEdges[K, *V, *E](tree) {
		total += weight(*e.Label)
	}

	return total
}

// candidate is an edge waiting to be considered for the tree.
type candidate[K comparable, E any] struct {
	from, to K
	label    *E
}

package builder

import (
	"errors"
	"fmt"

	"github.com/lakret/gir/core"
)

// Sentinel errors for builder constructors.
var (
	// ErrGraphNil is returned when the target graph is nil.
	ErrGraphNil = errors.New("builder: graph is nil")

	// ErrTooFewVertices indicates a size parameter below the allowed minimum.
	ErrTooFewVertices = errors.New("builder: parameter too small")

	// ErrNilCallback indicates a nil vertex or label function.
	ErrNilCallback = errors.New("builder: nil callback")
)

const (
	minPathNodes     = 1
	minCycleNodes    = 3
	minCompleteNodes = 1
	minGridDim       = 1
)

// Option customizes a constructor.
type Option func(*config)

type config struct {
	symmetric bool
}

// WithSymmetric makes Path and Cycle also emit every edge reversed,
// right after the forward one. Complete and Grid are symmetric already.
func WithSymmetric() Option {
	return func(c *config) {
		c.symmetric = true
	}
}

func buildConfig(opts []Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// check validates the common preconditions of every constructor.
func check[K comparable, V, E any](method string, g core.Graph[K, V, E], size, least int, callbacks ...bool) error {
	if core.IsNil[K, V, E](g) {
		return fmt.Errorf("%s: %w", method, ErrGraphNil)
	}
	if size < least {
		return fmt.Errorf("%s: size=%d < min=%d: %w", method, size, least, ErrTooFewVertices)
	}
	for _, ok := range callbacks {
		if !ok {
			return fmt.Errorf("%s: %w", method, ErrNilCallback)
		}
	}

	return nil
}

// vertices inserts n vertices in index order.
func vertices[K comparable](n int, vertex func(i int) K) []K {
	ids := make([]K, n)
	for i := range ids {
		ids[i] = vertex(i)
	}

	return ids
}

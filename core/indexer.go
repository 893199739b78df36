package core

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Indexer computes the identity of a vertex from its value.
// It must be deterministic: equal values must always produce equal ids.
type Indexer[V any] interface {
	Index(v V) uint64
}

// IndexerFunc adapts a plain function to Indexer.
type IndexerFunc[V any] func(v V) uint64

// Index calls f(v).
func (f IndexerFunc[V]) Index(v V) uint64 { return f(v) }

// StringIndexer hashes strings with xxhash.
type StringIndexer struct{}

// Index returns the 64-bit xxhash of s.
func (StringIndexer) Index(s string) uint64 { return xxhash.Sum64String(s) }

// FormatIndexer hashes the Go-syntax representation (%#v) of any value with
// xxhash. It suits small comparable structs such as grid coordinates; values
// whose %#v output embeds pointers are not stable across runs.
type FormatIndexer[V any] struct{}

// Index returns the 64-bit xxhash of fmt.Sprintf("%#v", v).
func (FormatIndexer[V]) Index(v V) uint64 {
	d := xxhash.New()
	_, _ = fmt.Fprintf(d, "%#v", v)

	return d.Sum64()
}

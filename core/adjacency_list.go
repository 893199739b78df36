package core

import "iter"

// adjacencyList stores outgoing edges per source id.
//
// Entries are boxed so label pointers handed out by refs stay valid when a
// source's slice grows. sources records the first-edge order of source ids.
type adjacencyList[K comparable, E any] struct {
	lists   map[K][]*Adjacent[K, E]
	sources []K
	size    int
}

func newAdjacencyList[K comparable, E any]() adjacencyList[K, E] {
	return adjacencyList[K, E]{lists: make(map[K][]*Adjacent[K, E])}
}

// push appends (to, label) under from, creating from's sequence on first use.
// Complexity: O(1) amortized.
func (a *adjacencyList[K, E]) push(from, to K, label E) {
	list, ok := a.lists[from]
	if !ok {
		a.sources = append(a.sources, from)
	}
	a.lists[from] = append(list, &Adjacent[K, E]{To: to, Label: label})
	a.size++
}

// first returns the first from→to entry in insertion order.
// Complexity: O(out-degree of from).
func (a *adjacencyList[K, E]) first(from, to K) (*Adjacent[K, E], bool) {
	for _, entry := range a.lists[from] {
		if entry.To == to {
			return entry, true
		}
	}

	return nil, false
}

// degree returns the number of outgoing edges of id.
func (a *adjacencyList[K, E]) degree(id K) int {
	return len(a.lists[id])
}

func (a *adjacencyList[K, E]) entries(id K) iter.Seq2[K, E] {
	return func(yield func(K, E) bool) {
		for _, entry := range a.lists[id] {
			if !yield(entry.To, entry.Label) {
				return
			}
		}
	}
}

func (a *adjacencyList[K, E]) refs(id K) iter.Seq2[K, *E] {
	return func(yield func(K, *E) bool) {
		for _, entry := range a.lists[id] {
			if !yield(entry.To, &entry.Label) {
				return
			}
		}
	}
}

// all yields every source with a value copy of its sequence, in first-edge order.
func (a *adjacencyList[K, E]) all() iter.Seq2[K, []Adjacent[K, E]] {
	return func(yield func(K, []Adjacent[K, E]) bool) {
		for _, from := range a.sources {
			list := a.lists[from]
			out := make([]Adjacent[K, E], len(list))
			for i, entry := range list {
				out[i] = *entry
			}
			if !yield(from, out) {
				return
			}
		}
	}
}

// Package converters provides two-way adapters between the gir graph stores
// and github.com/dominikbraun/graph, plus Graphviz DOT export through its
// draw package.
//
// Export
//
//	ToGraph turns any core.Reader into a directed graph.Graph[string, string]
//	whose vertex hashes are the rendered ids. Parallel edges collapse to the
//	first one (dominikbraun/graph keeps one edge per ordered pair); edges
//	whose target has no vertex are dropped.
//
// Import
//
//	FromGraph copies a graph.Graph[string, string] into a HashGraph. Vertices
//	and edges are inserted in sorted hash order, so the result is
//	deterministic.
//
// Attributes
//
//	The "label" attribute carries vertex values and edge labels both ways.
package converters

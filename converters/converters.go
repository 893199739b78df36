package converters

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/dominikbraun/graph"
	"github.com/dominikbraun/graph/draw"

	"github.com/lakret/gir/core"
)

// LabelAttr is the attribute that carries vertex values and edge labels.
const LabelAttr = "label"

// ErrDuplicateKey indicates that two distinct ids rendered to the same string.
var ErrDuplicateKey = errors.New("converters: duplicate vertex key")

// Labels tells the exporter how to render ids, values and labels.
// A nil ID renders ids with fmt.Sprint; nil Vertex, Edge and Weight add no
// attribute or weight.
type Labels[K comparable, V, E any] struct {
	ID     func(K) string
	Vertex func(V) string
	Edge   func(E) string
	Weight func(E) int
}

func (l Labels[K, V, E]) id(k K) string {
	if l.ID == nil {
		return fmt.Sprint(k)
	}
	return l.ID(k)
}

// ToGraph exports g as a directed dominikbraun graph keyed by rendered ids.
// Returns ErrDuplicateKey if two ids render alike.
func ToGraph[K comparable, V, E any](g core.Reader[K, V, E], l Labels[K, V, E]) (graph.Graph[string, string], error) {
	out := graph.New(graph.StringHash, graph.Directed())

	for id, v := range g.Vertices() {
		key := l.id(id)
		var opts []func(*graph.VertexProperties)
		if l.Vertex != nil {
			opts = append(opts, graph.VertexAttribute(LabelAttr, l.Vertex(v)))
		}
		if err := out.AddVertex(key, opts...); err != nil {
			if errors.Is(err, graph.ErrVertexAlreadyExists) {
				return nil, fmt.Errorf("%w: %q", ErrDuplicateKey, key)
			}
			return nil, err
		}
	}

	for e := range core.CompleteEdges(g) {
		if !g.HasVertex(e.From) || !g.HasVertex(e.To) {
			continue
		}
		var opts []func(*graph.EdgeProperties)
		if l.Edge != nil {
			opts = append(opts, graph.EdgeAttribute(LabelAttr, l.Edge(e.Label)))
		}
		if l.Weight != nil {
			opts = append(opts, graph.EdgeWeight(l.Weight(e.Label)))
		}
		err := out.AddEdge(l.id(e.From), l.id(e.To), opts...)
		if err != nil && !errors.Is(err, graph.ErrEdgeAlreadyExists) {
			return nil, err
		}
	}

	return out, nil
}

// WriteDOT renders g in Graphviz DOT format.
func WriteDOT[K comparable, V, E any](w io.Writer, g core.Reader[K, V, E], l Labels[K, V, E]) error {
	dg, err := ToGraph(g, l)
	if err != nil {
		return err
	}

	return draw.DOT(dg, w)
}

// FromGraph copies a dominikbraun graph into a HashGraph. Vertex values and
// edge labels are taken from the "label" attribute, defaulting to the
// vertex hash and the empty string.
func FromGraph(g graph.Graph[string, string]) (*core.HashGraph[string, string, string], error) {
	adj, err := g.AdjacencyMap()
	if err != nil {
		return nil, err
	}

	out := core.NewHashGraph[string, string, string]()
	sources := slices.Sorted(maps.Keys(adj))
	for _, hash := range sources {
		_, props, err := g.VertexWithProperties(hash)
		if err != nil {
			return nil, err
		}
		value, ok := props.Attributes[LabelAttr]
		if !ok {
			value = hash
		}
		out.PushVertex(hash, value)
	}

	for _, from := range sources {
		for _, to := range slices.Sorted(maps.Keys(adj[from])) {
			out.PushEdge(from, to, adj[from][to].Properties.Attributes[LabelAttr])
		}
	}

	return out, nil
}

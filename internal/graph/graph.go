// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package graph holds the in-memory knowledge graph: nodes keyed by ID
// with insertion order preserved, and a flat edge list.
package graph

import (
	"sort"

	"github.com/pdiddy/kgraph/pkg/types"
)

// DefaultNodeType is assigned to endpoint nodes created implicitly by
// AddEdge.
const DefaultNodeType = "default"

// defaultNodeSize matches the original render sizing for nodes that
// arrive without one.
const defaultNodeSize = 25

// Graph is a directed, labeled knowledge graph.
type Graph struct {
	nodes map[string]int
	order []types.Node
	edges []types.Edge
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{nodes: make(map[string]int)}
}

// AddNode inserts or replaces a node. Missing size and color are filled
// from the defaults so renderers never see zero values.
func (g *Graph) AddNode(n types.Node) {
	if n.Size == 0 {
		n.Size = defaultNodeSize
	}
	if n.Color == "" {
		n.Color = NodeColor(n.Type)
	}

	if i, ok := g.nodes[n.ID]; ok {
		g.order[i] = n
		return
	}
	g.nodes[n.ID] = len(g.order)
	g.order = append(g.order, n)
}

// AddEdge appends an edge, creating placeholder nodes for endpoints not
// yet in the graph.
func (g *Graph) AddEdge(e types.Edge) {
	for _, id := range []string{e.Source, e.Target} {
		if _, ok := g.nodes[id]; !ok {
			g.AddNode(types.Node{ID: id, Label: id, Type: DefaultNodeType})
		}
	}
	if e.Weight == 0 {
		e.Weight = 1
	}
	if e.Color == "" {
		e.Color = EdgeColor(e.Label)
	}
	g.edges = append(g.edges, e)
}

// Node returns the node with the given ID.
func (g *Graph) Node(id string) (types.Node, bool) {
	i, ok := g.nodes[id]
	if !ok {
		return types.Node{}, false
	}
	return g.order[i], true
}

// Nodes returns all nodes in insertion order.
func (g *Graph) Nodes() []types.Node {
	return g.order
}

// Edges returns all edges in insertion order.
func (g *Graph) Edges() []types.Edge {
	return g.edges
}

// Len is the number of nodes.
func (g *Graph) Len() int {
	return len(g.order)
}

// Merge adds every node and edge of other into g. Nodes already present
// keep their first-seen definition.
func (g *Graph) Merge(other *Graph) {
	for _, n := range other.Nodes() {
		if _, ok := g.nodes[n.ID]; !ok {
			g.AddNode(n)
		}
	}
	for _, e := range other.Edges() {
		g.AddEdge(e)
	}
}

// TypeCount is one entry of a per-type tally, most frequent first.
type TypeCount struct {
	Type  string
	Count int
}

// Stats summarizes a graph for the summary report.
type Stats struct {
	Nodes     int
	Edges     int
	NodeTypes []TypeCount
	EdgeTypes []TypeCount
}

// Stats tallies nodes and edges by type.
func (g *Graph) Stats() Stats {
	return Stats{
		Nodes:     len(g.order),
		Edges:     len(g.edges),
		NodeTypes: tally(g.order, func(n types.Node) string { return n.Type }),
		EdgeTypes: tally(g.edges, func(e types.Edge) string { return e.Label }),
	}
}

func tally[T any](items []T, keyOf func(T) string) []TypeCount {
	counts := make(map[string]int)
	for _, item := range items {
		counts[keyOf(item)]++
	}

	out := make([]TypeCount, 0, len(counts))
	for k, c := range counts {
		out = append(out, TypeCount{Type: k, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Type < out[j].Type
	})
	return out
}

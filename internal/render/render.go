// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render serializes knowledge graphs into their output formats:
// an interactive HTML viewer, JSON, Graphviz DOT, and Mermaid.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/pdiddy/kgraph/internal/graph"
	"github.com/pdiddy/kgraph/pkg/types"
)

// Formats lists the accepted render formats.
var Formats = []string{"html", "json", "dot", "mermaid"}

// Document is the JSON shape of a rendered graph.
type Document struct {
	Nodes []types.Node `json:"nodes"`
	Edges []types.Edge `json:"edges"`
}

// NewDocument flattens a graph into its serializable form.
func NewDocument(g *graph.Graph) Document {
	return Document{Nodes: g.Nodes(), Edges: g.Edges()}
}

// JSON renders the graph as an indented JSON document.
func JSON(g *graph.Graph) ([]byte, error) {
	data, err := json.MarshalIndent(NewDocument(g), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling graph: %w", err)
	}
	return data, nil
}

// Render produces the graph in the named format.
func Render(g *graph.Graph, format string) ([]byte, error) {
	switch format {
	case "html":
		return HTML(g)
	case "json":
		return JSON(g)
	case "dot":
		return []byte(DOT(g)), nil
	case "mermaid":
		return []byte(Mermaid(g)), nil
	}
	return nil, fmt.Errorf("unknown format %q: use one of %v", format, Formats)
}

// Write renders the graph and writes it to path.
func Write(g *graph.Graph, path, format string) error {
	data, err := Render(g, format)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Summary prints node and edge totals with per-type counts, most
// frequent first.
func Summary(w io.Writer, g *graph.Graph) {
	s := g.Stats()

	fmt.Fprintln(w, "\n==================================================")
	fmt.Fprintln(w, "KNOWLEDGE GRAPH SUMMARY")
	fmt.Fprintln(w, "==================================================")
	fmt.Fprintf(w, "Total Nodes: %d\n", s.Nodes)
	fmt.Fprintf(w, "Total Edges: %d\n", s.Edges)

	fmt.Fprintln(w, "\nNode Types:")
	for _, tc := range s.NodeTypes {
		fmt.Fprintf(w, "  - %s: %d\n", tc.Type, tc.Count)
	}

	fmt.Fprintln(w, "\nRelationship Types:")
	for _, tc := range s.EdgeTypes {
		fmt.Fprintf(w, "  - %s: %d\n", tc.Type, tc.Count)
	}

	fmt.Fprintln(w, "==================================================")
}

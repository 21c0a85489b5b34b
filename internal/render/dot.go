// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"strings"

	"github.com/pdiddy/kgraph/internal/graph"
)

// DOT renders the graph in Graphviz DOT format.
func DOT(g *graph.Graph) string {
	var b strings.Builder

	b.WriteString("digraph KnowledgeGraph {\n")
	b.WriteString("    rankdir=LR;\n")
	b.WriteString("    node [shape=box, style=filled, fontname=\"Arial\"];\n")
	b.WriteString("    edge [fontname=\"Arial\", fontsize=10];\n\n")

	for _, n := range g.Nodes() {
		fmt.Fprintf(&b, "    %q [label=%q, fillcolor=%q];\n",
			dotID(n.ID), n.Label, n.Color)
	}

	b.WriteString("\n")

	for _, e := range g.Edges() {
		fmt.Fprintf(&b, "    %q -> %q [label=%q, color=%q];\n",
			dotID(e.Source), dotID(e.Target), e.Label, e.Color)
	}

	b.WriteString("}")
	return b.String()
}

// dotID rewrites dots to underscores so qualified names stay one DOT
// identifier. Quoting handles the rest of the escaping.
func dotID(id string) string {
	return strings.ReplaceAll(id, ".", "_")
}

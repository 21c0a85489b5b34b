// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"strings"

	"github.com/pdiddy/kgraph/internal/graph"
)

// Mermaid renders the graph as a fenced Mermaid diagram.
func Mermaid(g *graph.Graph) string {
	var b strings.Builder

	b.WriteString("```mermaid\ngraph LR\n")

	for _, n := range g.Nodes() {
		label := strings.ReplaceAll(n.Label, `"`, "'")
		fmt.Fprintf(&b, "    %s[\"%s\"]\n", mermaidID(n.ID), label)
	}

	b.WriteString("\n")

	for _, e := range g.Edges() {
		fmt.Fprintf(&b, "    %s -->|%s| %s\n",
			mermaidID(e.Source), e.Label, mermaidID(e.Target))
	}

	b.WriteString("```")
	return b.String()
}

// mermaidID sanitizes a node ID into a Mermaid-safe identifier.
func mermaidID(id string) string {
	r := strings.NewReplacer(" ", "_", ".", "_", "-", "_")
	return r.Replace(id)
}

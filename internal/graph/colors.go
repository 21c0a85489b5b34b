// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package graph

// nodeColors maps node types to their render color.
var nodeColors = map[string]string{
	// Code entities.
	"class":    "#e74c3c",
	"type":     "#e74c3c",
	"function": "#3498db",
	"func":     "#3498db",
	"method":   "#9b59b6",
	"var":      "#2ecc71",
	"import":   "#f39c12",
	"include":  "#f39c12",
	"package":  "#1abc9c",
	"module":   "#1abc9c",
	// Text entities.
	"noun":      "#f39c12",
	"technical": "#1abc9c",
	"string":    "#95a5a6",
	"concept":   "#9b59b6",
	// Fallback.
	DefaultNodeType: "#34495e",
}

// edgeColors maps relation labels to their render color.
var edgeColors = map[string]string{
	"inherits":   "#e74c3c",
	"extends":    "#e74c3c",
	"embeds":     "#e74c3c",
	"implements": "#c0392b",
	"imports":    "#f39c12",
	"calls":      "#3498db",
	"uses":       "#2ecc71",
	"contains":   "#9b59b6",
	"is_a":       "#1abc9c",
	"has":        "#27ae60",
	"depends_on": "#e67e22",
	"exports":    "#16a085",
	"default":    "#7f8c8d",
}

// NodeColor returns the palette color for a node type.
func NodeColor(nodeType string) string {
	if c, ok := nodeColors[nodeType]; ok {
		return c
	}
	return nodeColors[DefaultNodeType]
}

// EdgeColor returns the palette color for a relation label.
func EdgeColor(label string) string {
	if c, ok := edgeColors[label]; ok {
		return c
	}
	return edgeColors["default"]
}

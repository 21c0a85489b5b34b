// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// SourceKind identifies how an input should be interpreted when building
// a knowledge graph.
type SourceKind string

const (
	SourceText SourceKind = "text"
	SourceCode SourceKind = "code"
	SourceAuto SourceKind = "auto"
)

// Node is a single entity in a knowledge graph. Nodes built from prose
// carry only ID, Label, Type, and Size; nodes built from source code
// additionally carry provenance (File, Line) and the declaration doc text.
type Node struct {
	// ID uniquely identifies the node within its graph. For code entities
	// nested in a parent declaration the ID is "parent.name".
	ID string `json:"id" yaml:"id"`

	// Label is the display name, usually the bare entity name.
	Label string `json:"label" yaml:"label"`

	// Type categorizes the node (e.g. "type", "func", "method", "import",
	// "noun", "technical", "string").
	Type string `json:"type" yaml:"type"`

	// Size is a rendering hint scaled by mention count for text entities.
	Size float64 `json:"size" yaml:"size"`

	// Color is the rendering color. Filled from the type palette when empty.
	Color string `json:"color,omitempty" yaml:"color,omitempty"`

	// File is the source file the entity was extracted from, if any.
	File string `json:"file,omitempty" yaml:"file,omitempty"`

	// Line is the 1-based line of the declaration, if known.
	Line int `json:"line,omitempty" yaml:"line,omitempty"`

	// Doc is the declaration documentation text, if any.
	Doc string `json:"doc,omitempty" yaml:"doc,omitempty"`
}

// Edge is a directed, labeled relationship between two nodes.
type Edge struct {
	// Source and Target are node IDs. Endpoints missing from the graph are
	// created on insertion.
	Source string `json:"source" yaml:"source"`
	Target string `json:"target" yaml:"target"`

	// Label names the relationship (e.g. "contains", "imports", "calls",
	// "uses", "is_a").
	Label string `json:"label" yaml:"label"`

	// Weight is a rendering hint; pattern-extracted relations default to 1.
	Weight float64 `json:"weight" yaml:"weight"`

	// Color is the rendering color. Filled from the label palette when empty.
	Color string `json:"color,omitempty" yaml:"color,omitempty"`

	// File and Line record where the relationship was observed, if known.
	File string `json:"file,omitempty" yaml:"file,omitempty"`
	Line int    `json:"line,omitempty" yaml:"line,omitempty"`
}

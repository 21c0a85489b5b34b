// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// BuildConfig holds settings for a single graph build run.
type BuildConfig struct {
	// Kind selects the input interpretation: text, code, or auto.
	Kind SourceKind `json:"kind" yaml:"kind"`

	// Extensions limits which files are processed when the input is a
	// directory (default: common code extensions).
	Extensions []string `json:"extensions" yaml:"extensions"`

	// Format selects the render output: html, json, dot, or mermaid.
	Format string `json:"format" yaml:"format"`

	// Output is the path the rendered graph is written to. When empty the
	// default is "knowledge_graph.<format>".
	Output string `json:"output" yaml:"output"`
}

// GraphStoreConfig holds settings for the persistent graph index.
type GraphStoreConfig struct {
	// GraphDir is the base directory for the store (contains index/).
	GraphDir string `json:"graph_dir" yaml:"graph_dir"`

	// MaxResults is the default maximum number of query results (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

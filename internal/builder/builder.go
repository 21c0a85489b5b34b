// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package builder assembles knowledge graphs from text, source files,
// and directory trees.
package builder

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/kgraph/internal/codeparse"
	"github.com/pdiddy/kgraph/internal/graph"
	"github.com/pdiddy/kgraph/internal/textparse"
	"github.com/pdiddy/kgraph/pkg/types"
)

// codeExtensions marks file types treated as source code when the input
// kind is auto.
var codeExtensions = map[string]bool{
	".py": true, ".js": true, ".ts": true, ".jsx": true, ".tsx": true,
	".java": true, ".cpp": true, ".c": true, ".h": true, ".go": true, ".rs": true,
}

// DefaultExtensions are the file types processed in a directory walk when
// the caller does not narrow them.
var DefaultExtensions = []string{".py", ".js", ".ts", ".jsx", ".tsx", ".java", ".go"}

// BuildText builds a graph from prose. Entity mention counts scale node
// size so frequently-mentioned concepts render larger.
func BuildText(text string) *graph.Graph {
	entities, relations := textparse.Parse(text)

	g := graph.New()
	for _, e := range entities {
		g.AddNode(types.Node{
			ID:    e.Name,
			Label: e.Name,
			Type:  e.Type,
			Size:  20 + float64(e.Mentions)*5,
		})
	}
	for _, r := range relations {
		g.AddEdge(types.Edge{
			Source: r.Source,
			Target: r.Target,
			Label:  r.Type,
			Weight: r.Weight,
		})
	}
	return g
}

// BuildCode builds a graph from one source file's content. Entities
// nested in a parent declaration get "parent.name" IDs so methods of
// different types stay distinct.
func BuildCode(code, path string) *graph.Graph {
	entities, relations := codeparse.Parse(code, path)

	g := graph.New()
	for _, e := range entities {
		id := e.Name
		if e.Parent != "" {
			id = e.Parent + "." + e.Name
		}
		g.AddNode(types.Node{
			ID:    id,
			Label: e.Name,
			Type:  e.Kind,
			File:  e.File,
			Line:  e.Line,
			Doc:   e.Doc,
		})
	}
	for _, r := range relations {
		g.AddEdge(types.Edge{
			Source: r.Source,
			Target: r.Target,
			Label:  r.Kind,
			File:   r.File,
			Line:   r.Line,
		})
	}
	return g
}

// DetectKind decides whether a file is source code or prose from its
// extension.
func DetectKind(path string) types.SourceKind {
	if codeExtensions[strings.ToLower(filepath.Ext(path))] {
		return types.SourceCode
	}
	return types.SourceText
}

// BuildFile reads one file and builds its graph, auto-detecting the
// input kind when asked to.
func BuildFile(path string, kind types.SourceKind) (*graph.Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	if kind == types.SourceAuto || kind == "" {
		kind = DetectKind(path)
	}

	if kind == types.SourceCode {
		return BuildCode(string(data), path), nil
	}
	return BuildText(string(data)), nil
}

// Summary holds counts from a directory build.
type Summary struct {
	Processed int
	Failed    int
}

// Total returns the number of files visited.
func (s Summary) Total() int {
	return s.Processed + s.Failed
}

// CollectFiles walks dir and returns the files whose extension is in
// extensions, in walk order. An empty extensions list uses the defaults.
func CollectFiles(dir string, extensions []string) ([]string, error) {
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}
	wanted := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		wanted[strings.ToLower(ext)] = true
	}

	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !wanted[strings.ToLower(filepath.Ext(path))] {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", dir, err)
	}
	return files, nil
}

// BuildDir builds one combined graph from every matching file under dir,
// reporting per-file progress and failures to w. A file that cannot be
// read is counted and skipped rather than aborting the run.
func BuildDir(dir string, extensions []string, w io.Writer) (*graph.Graph, Summary, error) {
	files, err := CollectFiles(dir, extensions)
	if err != nil {
		return nil, Summary{}, err
	}

	combined := graph.New()
	var summary Summary

	for _, path := range files {
		fmt.Fprintf(w, "processing %s\n", path)
		g, err := BuildFile(path, types.SourceCode)
		if err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", path, err)
			summary.Failed++
			continue
		}
		combined.Merge(g)
		summary.Processed++
	}

	return combined, summary, nil
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	yaml "go.yaml.in/yaml/v3"

	"github.com/pdiddy/kgraph/pkg/types"
)

// ExportedGraph is one stored graph with its full node and edge sets,
// as written to export files.
type ExportedGraph struct {
	GraphRecord `yaml:",inline"`
	Nodes       []types.Node `json:"nodes" yaml:"nodes"`
	Edges       []types.Edge `json:"edges" yaml:"edges"`
}

// Export reads stored graphs back out of the database. An empty graphID
// exports everything.
func (s *Store) Export(ctx context.Context, graphID string) ([]ExportedGraph, error) {
	records, err := s.Graphs(ctx)
	if err != nil {
		return nil, err
	}

	var exported []ExportedGraph
	for _, rec := range records {
		if graphID != "" && rec.ID != graphID {
			continue
		}

		eg := ExportedGraph{GraphRecord: rec}

		nodes, err := s.Query(ctx, QueryOptions{GraphID: rec.ID, MaxResults: 1 << 30})
		if err != nil {
			return nil, fmt.Errorf("exporting nodes of %s: %w", rec.ID, err)
		}
		for _, n := range nodes {
			eg.Nodes = append(eg.Nodes, n.Node)
		}

		eg.Edges, err = s.graphEdges(ctx, rec.ID)
		if err != nil {
			return nil, fmt.Errorf("exporting edges of %s: %w", rec.ID, err)
		}

		exported = append(exported, eg)
	}

	if graphID != "" && len(exported) == 0 {
		return nil, fmt.Errorf("graph %s not found", graphID)
	}
	return exported, nil
}

func (s *Store) graphEdges(ctx context.Context, graphID string) ([]types.Edge, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT source, target, label, weight, file, line
		 FROM edges WHERE graph_id = ? ORDER BY source, target, label`, graphID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var edges []types.Edge
	for rows.Next() {
		var e types.Edge
		if err := rows.Scan(&e.Source, &e.Target, &e.Label, &e.Weight, &e.File, &e.Line); err != nil {
			return nil, err
		}
		edges = append(edges, e)
	}
	return edges, rows.Err()
}

// ExportYAML writes the export to index/export.yaml under the graph
// directory and returns the file path.
func (s *Store) ExportYAML(ctx context.Context, graphID string) (string, error) {
	exported, err := s.Export(ctx, graphID)
	if err != nil {
		return "", err
	}

	data, err := yaml.Marshal(exported)
	if err != nil {
		return "", fmt.Errorf("marshaling export: %w", err)
	}

	path := filepath.Join(s.graphDir, indexDir, "export.yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing export file: %w", err)
	}
	return path, nil
}

// ExportJSON writes the export to index/export.json under the graph
// directory and returns the file path.
func (s *Store) ExportJSON(ctx context.Context, graphID string) (string, error) {
	exported, err := s.Export(ctx, graphID)
	if err != nil {
		return "", err
	}

	data, err := json.MarshalIndent(exported, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling export: %w", err)
	}

	path := filepath.Join(s.graphDir, indexDir, "export.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing export file: %w", err)
	}
	return path, nil
}

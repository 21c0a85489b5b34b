// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/pdiddy/kgraph/pkg/types"
)

// QueryOptions selects which nodes a query returns. Query runs through
// full-text search; the remaining fields filter structurally.
type QueryOptions struct {
	Query      string
	Type       string
	GraphID    string
	Relation   string
	MaxResults int
}

// IsEmpty reports whether no selection criteria were given.
func (o QueryOptions) IsEmpty() bool {
	return o.Query == "" && o.Type == "" && o.GraphID == "" && o.Relation == ""
}

// QueryResult is one matched node plus the graph it belongs to.
type QueryResult struct {
	types.Node `yaml:",inline"`
	GraphID    string `json:"graph_id" yaml:"graph_id"`
}

// Query returns nodes matching the options. A full-text query runs
// against the FTS index over labels and docs; type, graph, and relation
// filters narrow the result set.
func (s *Store) Query(ctx context.Context, opts QueryOptions) ([]QueryResult, error) {
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	useFTS := opts.Query != ""

	var (
		qb   strings.Builder
		args []any
	)

	if useFTS {
		qb.WriteString(
			`SELECT n.graph_id, n.id, n.label, n.type, n.size, n.color, n.file, n.line, n.doc
			FROM nodes_fts
			JOIN nodes n ON n.rowid = nodes_fts.rowid
			WHERE nodes_fts MATCH ?`)
		args = append(args, ftsQuery(opts.Query))
	} else {
		qb.WriteString(
			`SELECT n.graph_id, n.id, n.label, n.type, n.size, n.color, n.file, n.line, n.doc
			FROM nodes n
			WHERE 1=1`)
	}

	if opts.Type != "" {
		qb.WriteString(` AND n.type = ?`)
		args = append(args, opts.Type)
	}
	if opts.GraphID != "" {
		qb.WriteString(` AND n.graph_id = ?`)
		args = append(args, opts.GraphID)
	}
	if opts.Relation != "" {
		qb.WriteString(
			` AND EXISTS (SELECT 1 FROM edges e
			 WHERE e.graph_id = n.graph_id AND e.label = ?
			   AND (e.source = n.id OR e.target = n.id))`)
		args = append(args, opts.Relation)
	}

	if useFTS {
		qb.WriteString(` ORDER BY nodes_fts.rank`)
	} else {
		qb.WriteString(` ORDER BY n.graph_id, n.id`)
	}

	qb.WriteString(` LIMIT ?`)
	args = append(args, maxResults)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying nodes: %w", err)
	}
	defer rows.Close()

	var results []QueryResult
	for rows.Next() {
		var r QueryResult
		err := rows.Scan(&r.GraphID, &r.ID, &r.Label, &r.Type,
			&r.Size, &r.Color, &r.File, &r.Line, &r.Doc)
		if err != nil {
			return nil, fmt.Errorf("scanning result row: %w", err)
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

// NeighborEdge is one edge incident to a queried node, joined with the
// node on the far side.
type NeighborEdge struct {
	Relation string `json:"relation" yaml:"relation"`
	NodeID   string `json:"node_id" yaml:"node_id"`
	Label    string `json:"label" yaml:"label"`
	Type     string `json:"type" yaml:"type"`
	GraphID  string `json:"graph_id" yaml:"graph_id"`
}

// Neighborhood groups a node's edges by direction.
type Neighborhood struct {
	Outgoing []NeighborEdge `json:"outgoing" yaml:"outgoing"`
	Incoming []NeighborEdge `json:"incoming" yaml:"incoming"`
}

// Neighbors returns every edge touching the given node ID across all
// graphs, split by direction.
func (s *Store) Neighbors(ctx context.Context, nodeID string) (Neighborhood, error) {
	var nb Neighborhood

	out, err := s.neighborQuery(ctx,
		`SELECT e.label, e.target, COALESCE(n.label, e.target), COALESCE(n.type, ''), e.graph_id
		 FROM edges e
		 LEFT JOIN nodes n ON n.graph_id = e.graph_id AND n.id = e.target
		 WHERE e.source = ?
		 ORDER BY e.graph_id, e.label, e.target`, nodeID)
	if err != nil {
		return nb, fmt.Errorf("querying outgoing edges: %w", err)
	}
	nb.Outgoing = out

	in, err := s.neighborQuery(ctx,
		`SELECT e.label, e.source, COALESCE(n.label, e.source), COALESCE(n.type, ''), e.graph_id
		 FROM edges e
		 LEFT JOIN nodes n ON n.graph_id = e.graph_id AND n.id = e.source
		 WHERE e.target = ?
		 ORDER BY e.graph_id, e.label, e.source`, nodeID)
	if err != nil {
		return nb, fmt.Errorf("querying incoming edges: %w", err)
	}
	nb.Incoming = in

	return nb, nil
}

func (s *Store) neighborQuery(ctx context.Context, query, nodeID string) ([]NeighborEdge, error) {
	rows, err := s.db.QueryContext(ctx, query, nodeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var edges []NeighborEdge
	for rows.Next() {
		var e NeighborEdge
		if err := rows.Scan(&e.Relation, &e.NodeID, &e.Label, &e.Type, &e.GraphID); err != nil {
			return nil, err
		}
		edges = append(edges, e)
	}
	return edges, rows.Err()
}

// Graphs lists the stored graph records.
func (s *Store) Graphs(ctx context.Context) ([]GraphRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, label, source, kind, built_at FROM graphs ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("querying graphs: %w", err)
	}
	defer rows.Close()

	var records []GraphRecord
	for rows.Next() {
		var r GraphRecord
		if err := rows.Scan(&r.ID, &r.Label, &r.Source, &r.Kind, &r.BuiltAt); err != nil {
			return nil, fmt.Errorf("scanning graph record: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// ftsQuery wraps each term in quotes so punctuation in identifiers
// does not break FTS5 query syntax.
func ftsQuery(q string) string {
	terms := strings.Fields(q)
	for i, t := range terms {
		terms[i] = `"` + strings.ReplaceAll(t, `"`, `""`) + `"`
	}
	return strings.Join(terms, " ")
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store persists built knowledge graphs in SQLite and serves
// full-text and structured queries over their nodes.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/kgraph/internal/builder"
	"github.com/pdiddy/kgraph/internal/graph"
	"github.com/pdiddy/kgraph/pkg/types"
)

const (
	indexDir = "index"
	dbFile   = "kgraph.db"
)

// Store manages the graph index SQLite database.
type Store struct {
	db         *sql.DB
	graphDir   string
	maxResults int
}

// NewStore opens or creates the graph database at graphDir/index/kgraph.db,
// creating the schema if it does not exist.
func NewStore(cfg types.GraphStoreConfig) (*Store, error) {
	dbDir := filepath.Join(cfg.GraphDir, indexDir)
	if err := os.MkdirAll(dbDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	dbPath := filepath.Join(dbDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{
		db:         db,
		graphDir:   cfg.GraphDir,
		maxResults: maxResults,
	}

	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS graphs (
			id TEXT PRIMARY KEY,
			label TEXT,
			source TEXT,
			kind TEXT,
			built_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS nodes (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			graph_id TEXT NOT NULL REFERENCES graphs(id),
			id TEXT NOT NULL,
			label TEXT NOT NULL,
			type TEXT,
			size REAL,
			color TEXT,
			file TEXT,
			line INTEGER,
			doc TEXT,
			UNIQUE(graph_id, id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_nodes_graph ON nodes(graph_id)`,
		`CREATE INDEX IF NOT EXISTS idx_nodes_type ON nodes(type)`,
		`CREATE TABLE IF NOT EXISTS edges (
			graph_id TEXT NOT NULL REFERENCES graphs(id),
			source TEXT NOT NULL,
			target TEXT NOT NULL,
			label TEXT,
			weight REAL,
			file TEXT,
			line INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_edges_graph ON edges(graph_id)`,
		`CREATE INDEX IF NOT EXISTS idx_edges_source ON edges(source)`,
		`CREATE INDEX IF NOT EXISTS idx_edges_target ON edges(target)`,
		`CREATE TABLE IF NOT EXISTS indexing_status (
			source TEXT PRIMARY KEY,
			file_mod_time TEXT
		)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	// FTS5 virtual table with triggers for sync.
	var ftsExists int
	if err := s.db.QueryRow(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name='nodes_fts'`,
	).Scan(&ftsExists); err != nil {
		return fmt.Errorf("checking FTS table: %w", err)
	}

	if ftsExists == 0 {
		ftsStatements := []string{
			`CREATE VIRTUAL TABLE nodes_fts USING fts5(label, doc, content=nodes, content_rowid=rowid)`,
			`CREATE TRIGGER nodes_ai AFTER INSERT ON nodes BEGIN
				INSERT INTO nodes_fts(rowid, label, doc) VALUES (new.rowid, new.label, new.doc);
			END`,
			`CREATE TRIGGER nodes_ad AFTER DELETE ON nodes BEGIN
				INSERT INTO nodes_fts(nodes_fts, rowid, label, doc) VALUES('delete', old.rowid, old.label, old.doc);
			END`,
			`CREATE TRIGGER nodes_au AFTER UPDATE ON nodes BEGIN
				INSERT INTO nodes_fts(nodes_fts, rowid, label, doc) VALUES('delete', old.rowid, old.label, old.doc);
				INSERT INTO nodes_fts(rowid, label, doc) VALUES (new.rowid, new.label, new.doc);
			END`,
		}
		for _, stmt := range ftsStatements {
			if _, err := s.db.Exec(stmt); err != nil {
				return fmt.Errorf("creating FTS infrastructure: %w", err)
			}
		}
	}

	return nil
}

// IngestSummary holds counts from an indexing run.
type IngestSummary struct {
	Indexed int
	Updated int
	Skipped int
	Failed  int
}

// Total returns the number of sources processed.
func (s IngestSummary) Total() int {
	return s.Indexed + s.Updated + s.Skipped + s.Failed
}

// IngestFiles builds each file's graph and upserts it into the store.
// Files unchanged since their last indexing (same mod time) are skipped;
// changed files replace their old nodes and edges in one transaction.
func (s *Store) IngestFiles(ctx context.Context, files []string, kind types.SourceKind, w io.Writer) (IngestSummary, error) {
	var summary IngestSummary

	for _, path := range files {
		select {
		case <-ctx.Done():
			return summary, ctx.Err()
		default:
		}

		graphID := slugify(path)

		info, err := os.Stat(path)
		if err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", graphID, err)
			summary.Failed++
			continue
		}
		modTime := info.ModTime().UTC().Format(time.RFC3339Nano)

		var storedModTime string
		err = s.db.QueryRowContext(ctx,
			`SELECT file_mod_time FROM indexing_status WHERE source = ?`, path,
		).Scan(&storedModTime)

		if err == nil && storedModTime == modTime {
			fmt.Fprintf(w, "skipped %s\n", graphID)
			summary.Skipped++
			continue
		}
		isUpdate := err == nil

		// Resolve auto before building so the stored kind matches the
		// graph that was actually built.
		effectiveKind := kind
		if effectiveKind == types.SourceAuto || effectiveKind == "" {
			effectiveKind = builder.DetectKind(path)
		}

		g, err := builder.BuildFile(path, effectiveKind)
		if err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", graphID, err)
			summary.Failed++
			continue
		}

		record := GraphRecord{
			ID:     graphID,
			Label:  filepath.Base(path),
			Source: path,
			Kind:   string(effectiveKind),
		}
		if err := s.ingestGraph(ctx, record, g, modTime); err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", graphID, err)
			summary.Failed++
			continue
		}

		if isUpdate {
			fmt.Fprintf(w, "updated %s (%d nodes, %d edges)\n", graphID, g.Len(), len(g.Edges()))
			summary.Updated++
		} else {
			fmt.Fprintf(w, "indexing %s (%d nodes, %d edges)\n", graphID, g.Len(), len(g.Edges()))
			summary.Indexed++
		}
	}

	fmt.Fprintf(w, "\nindexed: %d, updated: %d, skipped: %d, failed: %d\n",
		summary.Indexed, summary.Updated, summary.Skipped, summary.Failed)

	return summary, nil
}

// IngestText builds a graph from raw prose and stores it under a fresh
// uuid-derived ID. Returns the assigned graph ID.
func (s *Store) IngestText(ctx context.Context, label, text string) (string, error) {
	g := builder.BuildText(text)

	graphID := uuid.NewString()[:8]
	if label == "" {
		label = "text-" + graphID
	}

	record := GraphRecord{
		ID:    graphID,
		Label: label,
		Kind:  string(types.SourceText),
	}
	if err := s.ingestGraph(ctx, record, g, ""); err != nil {
		return "", err
	}
	return graphID, nil
}

// GraphRecord is the stored metadata for one graph.
type GraphRecord struct {
	ID      string `json:"id" yaml:"id"`
	Label   string `json:"label" yaml:"label"`
	Source  string `json:"source,omitempty" yaml:"source,omitempty"`
	Kind    string `json:"kind" yaml:"kind"`
	BuiltAt string `json:"built_at" yaml:"built_at"`
}

func (s *Store) ingestGraph(ctx context.Context, record GraphRecord, g *graph.Graph, modTime string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	// Replace any previous contents of this graph.
	if _, err := tx.ExecContext(ctx, `DELETE FROM nodes WHERE graph_id = ?`, record.ID); err != nil {
		return fmt.Errorf("deleting old nodes: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM edges WHERE graph_id = ?`, record.ID); err != nil {
		return fmt.Errorf("deleting old edges: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO graphs (id, label, source, kind, built_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			label=excluded.label, source=excluded.source,
			kind=excluded.kind, built_at=excluded.built_at`,
		record.ID, record.Label, record.Source, record.Kind,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("upserting graph record: %w", err)
	}

	nodeStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO nodes (graph_id, id, label, type, size, color, file, line, doc)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing node insert: %w", err)
	}
	defer nodeStmt.Close()

	for _, n := range g.Nodes() {
		_, err := nodeStmt.ExecContext(ctx,
			record.ID, n.ID, n.Label, n.Type, n.Size, n.Color, n.File, n.Line, n.Doc)
		if err != nil {
			return fmt.Errorf("inserting node %s: %w", n.ID, err)
		}
	}

	edgeStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO edges (graph_id, source, target, label, weight, file, line)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing edge insert: %w", err)
	}
	defer edgeStmt.Close()

	for _, e := range g.Edges() {
		_, err := edgeStmt.ExecContext(ctx,
			record.ID, e.Source, e.Target, e.Label, e.Weight, e.File, e.Line)
		if err != nil {
			return fmt.Errorf("inserting edge %s->%s: %w", e.Source, e.Target, err)
		}
	}

	if modTime != "" {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO indexing_status (source, file_mod_time) VALUES (?, ?)
			 ON CONFLICT(source) DO UPDATE SET file_mod_time=excluded.file_mod_time`,
			record.Source, modTime,
		)
		if err != nil {
			return fmt.Errorf("updating indexing status: %w", err)
		}
	}

	return tx.Commit()
}

var slugRE = regexp.MustCompile(`[^a-zA-Z0-9_]+`)

// slugify derives a stable graph ID from a source path.
func slugify(path string) string {
	base := strings.TrimSuffix(path, filepath.Ext(path))
	base = strings.TrimPrefix(filepath.ToSlash(base), "./")
	slug := strings.Trim(slugRE.ReplaceAllString(base, "-"), "-")
	if slug == "" {
		return "graph"
	}
	return slug
}

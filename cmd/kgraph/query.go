// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/kgraph/internal/store"
)

var queryCmd = &cobra.Command{
	Use:   "query [query]",
	Short: "Search stored graph nodes with full-text search and filters",
	Long: `Query searches the graph store using FTS5 full-text search over node
labels and docs, structured filters (type, graph, relation), or a
combination of both.

Use --neighbors with a node ID to list the edges touching that node
instead.`,
	RunE: runQuery,
}

func runQuery(cmd *cobra.Command, args []string) error {
	neighborID, _ := cmd.Flags().GetString("neighbors")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	s, err := storeFromFlags(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	// Neighbor mode: show the edges around one node.
	if neighborID != "" {
		nb, err := s.Neighbors(context.Background(), neighborID)
		if err != nil {
			return err
		}
		return formatNeighborOutput(neighborID, nb, jsonOutput)
	}

	opts := queryOptsFromFlags(cmd, args)
	if opts.IsEmpty() {
		return fmt.Errorf("query or filter required: provide a search query, --type, --graph, or --relation")
	}

	results, err := s.Query(context.Background(), opts)
	if err != nil {
		return err
	}
	return formatQueryOutput(results, jsonOutput)
}

func formatQueryOutput(results []store.QueryResult, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	if len(results) == 0 {
		fmt.Println("No results found.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-4s  %-30s  %-10s  %-20s  %-25s  %s\n",
		"Rank", "Node", "Type", "Graph", "File", "Line")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 100))

	for i, r := range results {
		fmt.Fprintf(os.Stdout, "%-4d  %-30s  %-10s  %-20s  %-25s  %d\n",
			i+1, truncate(r.Label, 30), truncate(r.Type, 10),
			truncate(r.GraphID, 20), truncate(r.File, 25), r.Line)
	}

	fmt.Fprintf(os.Stdout, "\n%d results\n", len(results))
	return nil
}

func formatNeighborOutput(nodeID string, nb store.Neighborhood, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(nb)
	}

	if len(nb.Outgoing) == 0 && len(nb.Incoming) == 0 {
		fmt.Printf("No edges found for node %s.\n", nodeID)
		return nil
	}

	for _, e := range nb.Outgoing {
		fmt.Printf("%s --%s--> %s (%s, graph %s)\n",
			nodeID, e.Relation, e.Label, e.Type, e.GraphID)
	}
	for _, e := range nb.Incoming {
		fmt.Printf("%s <--%s-- %s (%s, graph %s)\n",
			nodeID, e.Relation, e.Label, e.Type, e.GraphID)
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n-3] + "..."
	}
	return s
}

func queryOptsFromFlags(cmd *cobra.Command, args []string) store.QueryOptions {
	queryText, _ := cmd.Flags().GetString("query")
	if queryText == "" && len(args) > 0 {
		queryText = strings.Join(args, " ")
	}

	nodeType, _ := cmd.Flags().GetString("type")
	graphID, _ := cmd.Flags().GetString("graph")
	relation, _ := cmd.Flags().GetString("relation")
	limit, _ := cmd.Flags().GetInt("limit")

	return store.QueryOptions{
		Query:      queryText,
		Type:       nodeType,
		GraphID:    graphID,
		Relation:   relation,
		MaxResults: limit,
	}
}

func init() {
	addStoreFlags(queryCmd)
	queryCmd.Flags().String("query", "", "full-text search query")
	queryCmd.Flags().String("type", "", "filter by node type: class, function, method, noun, ...")
	queryCmd.Flags().String("graph", "", "filter by graph ID")
	queryCmd.Flags().String("relation", "", "filter to nodes touched by a relation: extends, calls, imports, ...")
	queryCmd.Flags().Int("limit", 0, "maximum results (0 = use default)")
	queryCmd.Flags().String("neighbors", "", "show edges around a node ID")
	queryCmd.Flags().Bool("json", false, "output results as JSON")

	rootCmd.AddCommand(queryCmd)
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/kgraph/internal/builder"
	"github.com/pdiddy/kgraph/internal/store"
	"github.com/pdiddy/kgraph/pkg/types"
)

var indexCmd = &cobra.Command{
	Use:   "index [paths...]",
	Short: "Ingest files into the persistent graph store",
	Long: `Index builds a graph per input file and ingests it into the SQLite
store under the graph directory. Directories are walked for matching source
files. Files unchanged since the last run are skipped.

With --text, index reads prose from stdin instead and stores it under a
generated graph ID.`,
	RunE: runIndex,
}

func runIndex(cmd *cobra.Command, args []string) error {
	fromText, _ := cmd.Flags().GetBool("text")
	label, _ := cmd.Flags().GetString("label")
	kind, _ := cmd.Flags().GetString("type")
	extensions, _ := cmd.Flags().GetStringSlice("extensions")

	s, err := storeFromFlags(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	if fromText {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		graphID, err := s.IngestText(context.Background(), label, string(data))
		if err != nil {
			return err
		}
		fmt.Printf("Stored text graph %s\n", graphID)
		return nil
	}

	if len(args) == 0 {
		return fmt.Errorf("no inputs: provide file or directory paths, or --text")
	}

	var files []string
	for _, path := range args {
		info, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
		if info.IsDir() {
			collected, err := builder.CollectFiles(path, extensions)
			if err != nil {
				return err
			}
			files = append(files, collected...)
		} else {
			files = append(files, path)
		}
	}

	summary, err := s.IngestFiles(context.Background(), files, types.SourceKind(kind), os.Stdout)
	if err != nil {
		return err
	}
	if summary.Failed > 0 {
		return fmt.Errorf("%d file(s) failed indexing", summary.Failed)
	}
	return nil
}

// storeFromFlags opens the graph store using the shared store flags,
// falling back to config file values for flags left at their defaults.
func storeFromFlags(cmd *cobra.Command) (*store.Store, error) {
	graphDir, _ := cmd.Flags().GetString("graph-dir")
	maxResults, _ := cmd.Flags().GetInt("max-results")

	if !cmd.Flags().Changed("graph-dir") && viper.IsSet("store.graph_dir") {
		graphDir = viper.GetString("store.graph_dir")
	}
	if !cmd.Flags().Changed("max-results") && viper.IsSet("store.max_results") {
		maxResults = viper.GetInt("store.max_results")
	}

	return store.NewStore(types.GraphStoreConfig{
		GraphDir:   graphDir,
		MaxResults: maxResults,
	})
}

// addStoreFlags registers the flags shared by every store-backed command.
func addStoreFlags(cmd *cobra.Command) {
	cmd.Flags().String("graph-dir", "graphs", "base directory for the graph store (contains index/)")
	cmd.Flags().Int("max-results", 20, "maximum number of query results")
}

func init() {
	addStoreFlags(indexCmd)
	indexCmd.Flags().Bool("text", false, "ingest prose from stdin instead of files")
	indexCmd.Flags().String("label", "", "label for a stdin text graph")
	indexCmd.Flags().String("type", "auto", "input type for files: text, code, or auto")
	indexCmd.Flags().StringSlice("extensions", nil, "file extensions for directory walks (default: common source types)")

	rootCmd.AddCommand(indexCmd)
}

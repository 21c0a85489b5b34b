// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the graph store to YAML or JSON",
	Long: `Export writes every stored graph (or one graph with --graph) to
<graph-dir>/index/export.yaml or export.json, including full node and edge
sets.`,
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	graphID, _ := cmd.Flags().GetString("graph")

	s, err := storeFromFlags(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	var path string
	switch format {
	case "yaml", "":
		path, err = s.ExportYAML(context.Background(), graphID)
	case "json":
		path, err = s.ExportJSON(context.Background(), graphID)
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Exported to %s\n", path)
	return nil
}

func init() {
	addStoreFlags(exportCmd)
	exportCmd.Flags().String("format", "yaml", "export format: yaml or json")
	exportCmd.Flags().String("graph", "", "export a single graph ID")

	rootCmd.AddCommand(exportCmd)
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/kgraph/internal/builder"
	"github.com/pdiddy/kgraph/internal/graph"
	"github.com/pdiddy/kgraph/internal/render"
	"github.com/pdiddy/kgraph/pkg/types"
)

var buildCmd = &cobra.Command{
	Use:   "build <input>",
	Short: "Build a knowledge graph from a file or directory",
	Long: `Build extracts entities and relationships from the input and renders
the resulting graph. A file input is treated as code or prose based on its
extension (override with --type); a directory input builds one combined
graph from every matching source file under it.

Formats: html (interactive viewer), json, dot (Graphviz), mermaid.`,
	Args: cobra.ExactArgs(1),
	RunE: runBuild,
}

func runBuild(cmd *cobra.Command, args []string) error {
	input := args[0]
	cfg := buildConfig(cmd)
	showSummary, _ := cmd.Flags().GetBool("summary")

	info, err := os.Stat(input)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	var g *graph.Graph
	if info.IsDir() {
		var summary builder.Summary
		g, summary, err = builder.BuildDir(input, cfg.Extensions, os.Stderr)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "processed %d file(s), %d failed\n",
			summary.Processed, summary.Failed)
	} else {
		g, err = builder.BuildFile(input, cfg.Kind)
		if err != nil {
			return err
		}
	}

	if g.Len() == 0 {
		return fmt.Errorf("no entities found in %s", input)
	}

	output := cfg.Output
	if output == "" {
		output = "knowledge_graph." + extensionFor(cfg.Format)
	}
	if err := render.Write(g, output, cfg.Format); err != nil {
		return err
	}
	fmt.Printf("Graph written to %s (%d nodes, %d edges)\n",
		output, g.Len(), len(g.Edges()))

	if showSummary {
		render.Summary(os.Stdout, g)
	}
	return nil
}

// buildConfig assembles the build settings from flags, falling back to
// config file values for flags left at their defaults.
func buildConfig(cmd *cobra.Command) types.BuildConfig {
	kind, _ := cmd.Flags().GetString("type")
	format, _ := cmd.Flags().GetString("format")
	output, _ := cmd.Flags().GetString("output")
	extensions, _ := cmd.Flags().GetStringSlice("extensions")

	if !cmd.Flags().Changed("format") && viper.IsSet("build.format") {
		format = viper.GetString("build.format")
	}
	if len(extensions) == 0 {
		extensions = viper.GetStringSlice("build.extensions")
	}

	return types.BuildConfig{
		Kind:       types.SourceKind(kind),
		Extensions: extensions,
		Format:     format,
		Output:     output,
	}
}

// extensionFor picks the output file extension matching a render format.
func extensionFor(format string) string {
	switch format {
	case "dot":
		return "dot"
	case "mermaid":
		return "md"
	case "json":
		return "json"
	default:
		return "html"
	}
}

func init() {
	buildCmd.Flags().String("type", "auto", "input type: text, code, or auto")
	buildCmd.Flags().String("format", "html", "output format: "+strings.Join(render.Formats, ", "))
	buildCmd.Flags().StringP("output", "o", "", "output file (default: knowledge_graph.<ext>)")
	buildCmd.Flags().StringSlice("extensions", nil, "file extensions for directory builds (default: common source types)")
	buildCmd.Flags().Bool("summary", false, "print a node and edge summary after building")

	rootCmd.AddCommand(buildCmd)
}

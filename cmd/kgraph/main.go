// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the kgraph CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the kgraph CLI.
var rootCmd = &cobra.Command{
	Use:   "kgraph",
	Short: "Build, index, and explore knowledge graphs from text and code",
	Long: `kgraph turns prose and source code into knowledge graphs. It extracts
entities and relationships, renders them as interactive HTML, JSON, Graphviz
DOT, or Mermaid diagrams, and maintains a searchable SQLite index of built
graphs.

Each operation is a subcommand: build renders a graph from one input, index
ingests files into the persistent store, query searches stored nodes, export
dumps the store, and compare diffs two element lists.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./kgraph.yaml or ~/.config/kgraph/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("kgraph")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "kgraph"))
		}
	}

	viper.SetEnvPrefix("KGRAPH")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

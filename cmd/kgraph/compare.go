// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/kgraph/internal/compare"
)

var compareCmd = &cobra.Command{
	Use:   "compare <list1> <list2>",
	Short: "Compare two comma-separated element lists",
	Long: `Compare parses two element lists and reports their overlap: shared
elements, elements unique to each side, and whether the lists are identical
or contain the same elements in a different order.

Elements are typed. Integers and floats compare by numeric value, so 1 and
1.0 match; the text "1" stays distinct from the number 1. Lists may be
wrapped in brackets and elements quoted:

  kgraph compare "[1, 2, 3]" "3, 4, 5"

Use --demo to run the built-in example pairs.`,
	RunE: runCompare,
}

// demoPairs are the built-in example comparisons shown by --demo.
var demoPairs = [][2]string{
	{"[1, 2, 3, 4, 5]", "[4, 5, 6, 7, 8]"},
	{"[Apfel, Banane, Orange, Kirsche]", "[Banane, Erdbeere, Orange, Mango]"},
	{`[1, "zwei", 3.0, "vier"]`, `["zwei", 2, 3.0, 4]`},
}

func runCompare(cmd *cobra.Command, args []string) error {
	demo, _ := cmd.Flags().GetBool("demo")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	if demo {
		for i, pair := range demoPairs {
			if i > 0 {
				fmt.Println()
			}
			fmt.Printf("Comparing %s with %s\n", pair[0], pair[1])
			if err := compareOnce(pair[0], pair[1], jsonOutput); err != nil {
				return err
			}
		}
		return nil
	}

	if len(args) != 2 {
		return fmt.Errorf("two lists required (or --demo)")
	}
	return compareOnce(args[0], args[1], jsonOutput)
}

func compareOnce(first, second string, jsonOutput bool) error {
	result := compare.Compare(compare.Parse(first), compare.Parse(second))

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	compare.WriteReport(os.Stdout, result)
	return nil
}

func init() {
	compareCmd.Flags().Bool("demo", false, "run the built-in example comparisons")
	compareCmd.Flags().Bool("json", false, "output the result as JSON")

	rootCmd.AddCommand(compareCmd)
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package compare

import (
	"fmt"
	"io"
	"strings"
)

const reportRule = "============================================================"

// WriteReport prints the comparison result as a formatted report: counts
// for both lists, the equality flags, then each derived set with its
// size. Presentation only; all computation happens in Compare.
func WriteReport(w io.Writer, r Result) {
	fmt.Fprintf(w, "\n%s\n", reportRule)
	fmt.Fprintln(w, "COMPARISON RESULTS")
	fmt.Fprintln(w, reportRule)

	fmt.Fprintln(w, "\nStatistics:")
	fmt.Fprintf(w, "   Elements in list 1: %d (%d distinct)\n", r.LenFirst, r.DistinctFirst)
	fmt.Fprintf(w, "   Elements in list 2: %d (%d distinct)\n", r.LenSecond, r.DistinctSecond)

	fmt.Fprintf(w, "\nLists are identical:       %t\n", r.Identical)
	fmt.Fprintf(w, "Lists have same elements:  %t\n", r.SameElements)

	writeSet(w, "Common elements", r.Common)
	writeSet(w, "Only in list 1", r.OnlyInFirst)
	writeSet(w, "Only in list 2", r.OnlyInSecond)
	writeSet(w, "All distinct elements", r.AllUnique)

	fmt.Fprintf(w, "\n%s\n\n", reportRule)
}

func writeSet(w io.Writer, heading string, elements []Element) {
	fmt.Fprintf(w, "\n%s (%d):\n", heading, len(elements))
	if len(elements) == 0 {
		fmt.Fprintln(w, "   (none)")
		return
	}
	for _, e := range elements {
		fmt.Fprintf(w, "   - %s\n", e)
	}
}

// FormatList renders an element sequence the way it was recognized, for
// echoing parsed input back to the user.
func FormatList(elements []Element) string {
	parts := make([]string, len(elements))
	for i, e := range elements {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

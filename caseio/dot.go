package caseio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/freeride/ticket"
)

// WriteDOT renders tickets as an undirected Graphviz multigraph. Names that
// are not plain identifiers are quoted.
func WriteDOT(w io.Writer, tickets []ticket.Pair) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "graph {")
	for _, p := range tickets {
		fmt.Fprintf(bw, "  %s -- %s\n", dotID(p.A), dotID(p.B))
	}
	fmt.Fprintln(bw, "}")

	return bw.Flush()
}

// dotID returns s unchanged when it is a valid bare DOT identifier.
func dotID(s string) string {
	if s == "" {
		return `""`
	}
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return strconv.Quote(s)
		}
	}

	return s
}

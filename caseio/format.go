package caseio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/freeride/ticket"
)

// WriteCase writes one solved case: a header with the purchase count and
// one line per purchased transport.
func WriteCase(w io.Writer, index int, purchased []ticket.Pair) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "Case #%d: %d\n", index, len(purchased))
	for _, p := range purchased {
		fmt.Fprintf(bw, "%s %s\n", p.A, p.B)
	}

	return bw.Flush()
}

package caseio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/freeride/ticket"
)

// ErrMalformedInput is returned when the input does not follow the case format.
var ErrMalformedInput = errors.New("caseio: malformed input")

// Case is one parsed test case. Index is 1-based.
type Case struct {
	Index   int
	Tickets []ticket.Pair
}

// lineReader yields trimmed non-blank lines with their 1-based line numbers.
type lineReader struct {
	sc   *bufio.Scanner
	line int
}

func (lr *lineReader) next() (string, int, error) {
	for lr.sc.Scan() {
		lr.line++
		s := strings.TrimSpace(lr.sc.Text())
		if s != "" {
			return s, lr.line, nil
		}
	}
	if err := lr.sc.Err(); err != nil {
		return "", lr.line, err
	}

	return "", lr.line, io.ErrUnexpectedEOF
}

func (lr *lineReader) count(what string) (int, error) {
	s, ln, err := lr.next()
	if err != nil {
		return 0, fmt.Errorf("%w: line %d: reading %s: %w", ErrMalformedInput, ln, what, err)
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: line %d: %s %q is not a non-negative integer", ErrMalformedInput, ln, what, s)
	}

	return n, nil
}

// Parse reads every case from r.
func Parse(r io.Reader) ([]Case, error) {
	lr := &lineReader{sc: bufio.NewScanner(r)}

	total, err := lr.count("case count")
	if err != nil {
		return nil, err
	}

	cases := make([]Case, 0, total)
	for c := 1; c <= total; c++ {
		n, err := lr.count(fmt.Sprintf("ticket count of case %d", c))
		if err != nil {
			return nil, err
		}
		pairs := make([]ticket.Pair, 0, n)
		for k := 0; k < n; k++ {
			s, ln, err := lr.next()
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: case %d wants %d tickets, got %d: %w",
					ErrMalformedInput, ln, c, n, k, err)
			}
			f := strings.Fields(s)
			if len(f) != 2 {
				return nil, fmt.Errorf("%w: line %d: ticket %q needs exactly two locations",
					ErrMalformedInput, ln, s)
			}
			pairs = append(pairs, ticket.Pair{A: f[0], B: f[1]})
		}
		cases = append(cases, Case{Index: c, Tickets: pairs})
	}

	return cases, nil
}

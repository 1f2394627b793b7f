package search_test

import (
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/freeride/ticket"
)

const home = "HOME"

// mkTable builds a table from "X-Y" ticket specs with HOME as home.
func mkTable(t testing.TB, specs ...string) *ticket.Table {
	t.Helper()
	pairs := make([]ticket.Pair, len(specs))
	for i, s := range specs {
		a, b, ok := strings.Cut(s, "-")
		require.True(t, ok, "bad ticket spec %q", s)
		pairs[i] = ticket.Pair{A: a, B: b}
	}
	tbl, err := ticket.Build(pairs, home)
	require.NoError(t, err)

	return tbl
}

// mkRandomSpecs draws n tickets over a small alphabet so that shared
// endpoints, duplicates and self-loops all occur.
func mkRandomSpecs(rng *rand.Rand, n int) []string {
	alphabet := []string{home, "A", "B", "C", "D"}
	specs := make([]string, n)
	for i := range specs {
		specs[i] = alphabet[rng.Intn(len(alphabet))] + "-" + alphabet[rng.Intn(len(alphabet))]
	}

	return specs
}

// bruteForce tries every ticket order and orientation and returns the
// cheapest realizable itinerary cost.
func bruteForce(tbl *ticket.Table) int {
	var (
		n    = tbl.Len()
		h    = tbl.Home()
		used = make([]bool, n)
		best = math.MaxInt
		rec  func(pos ticket.Location, k, cost int)
	)
	rec = func(pos ticket.Location, k, cost int) {
		if cost >= best {
			return
		}
		if k == n {
			if pos != h {
				cost++
			}
			if cost < best {
				best = cost
			}
			return
		}
		for i := 0; i < n; i++ {
			if used[i] {
				continue
			}
			used[i] = true
			tk := tbl.Ticket(i)
			for _, dir := range [2][2]ticket.Location{{tk.A, tk.B}, {tk.B, tk.A}} {
				c := cost
				if pos != dir[0] {
					c++
				}
				rec(dir[1], k+1, c)
			}
			used[i] = false
		}
	}
	rec(h, 0, 0)

	return best
}

package search_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/freeride/search"
	"github.com/katalvlaran/freeride/ticket"
)

// mustRun runs the search and checks the result replays cleanly.
func mustRun(t *testing.T, tbl *ticket.Table, opts ...search.Option) search.Result {
	t.Helper()
	res, err := search.Run(tbl, opts...)
	require.NoError(t, err)
	require.True(t, res.Complete)
	require.Len(t, res.Purchased, res.Cost, "cost equals purchased transports")
	require.NoError(t, search.Verify(tbl, res))

	return res
}

func TestRun_NoTickets(t *testing.T) {
	tbl := mkTable(t)
	res := mustRun(t, tbl)

	assert.Equal(t, 0, res.Cost)
	assert.Empty(t, res.Purchased)
	assert.Empty(t, res.Route)
	assert.True(t, res.Proven())
}

// Single ticket leaving home: ride out, buy the way back.
func TestRun_SingleTicketFromHome(t *testing.T) {
	tbl := mkTable(t, "HOME-A")
	res := mustRun(t, tbl)

	assert.Equal(t, 1, res.Cost)
	assert.Equal(t, []ticket.Pair{{A: "A", B: "HOME"}}, res.Named(tbl))
}

// Single ticket away from home: buy to one end, ride, buy back.
func TestRun_SingleTicketAway(t *testing.T) {
	tbl := mkTable(t, "A-B")
	res := mustRun(t, tbl)

	assert.Equal(t, 2, res.Cost)
	assert.Equal(t, []ticket.Pair{{A: "HOME", B: "A"}, {A: "B", B: "HOME"}}, res.Named(tbl))
	require.Len(t, res.Route, 3)
	assert.Equal(t, search.Purchase, res.Route[0].Kind)
	assert.Equal(t, search.Ride, res.Route[1].Kind)
	assert.Equal(t, 0, res.Route[1].Ticket)
	assert.Equal(t, search.Purchase, res.Route[2].Kind)
}

// Duplicate pair: out on one, back on the other.
func TestRun_DuplicatePair(t *testing.T) {
	tbl := mkTable(t, "HOME-A", "A-HOME")
	res := mustRun(t, tbl)

	assert.Equal(t, 0, res.Cost)
	assert.Empty(t, res.Purchased)
	assert.Len(t, res.Route, 2)
}

func TestRun_Chain(t *testing.T) {
	tbl := mkTable(t, "HOME-A", "A-B", "B-HOME")
	res := mustRun(t, tbl)

	assert.Equal(t, 0, res.Cost)
	assert.Empty(t, res.Purchased)
	assert.True(t, res.Proven())
	assert.Equal(t, int64(1), res.Stats.Improvements)
}

func TestRun_SelfLoops(t *testing.T) {
	tbl := mkTable(t, "HOME-HOME", "A-A")
	res := mustRun(t, tbl)

	// Ride the home loop, buy HOME->A, ride the A loop, buy back.
	assert.Equal(t, 2, res.Cost)
}

// TestRun_ReturnInvariant: when the last ride does not end at home, the last
// purchase does.
func TestRun_ReturnInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for k := 0; k < 50; k++ {
		tbl := mkTable(t, mkRandomSpecs(rng, 1+rng.Intn(6))...)
		res := mustRun(t, tbl)
		if len(res.Route) == 0 {
			continue
		}
		last := res.Route[len(res.Route)-1]
		assert.Equal(t, tbl.Home(), last.To)
		if last.Kind == search.Purchase {
			assert.Equal(t, last.From, res.Purchased[len(res.Purchased)-1].From)
		}
	}
}

// TestRun_ExactMatchesBruteForce compares exact dominance against exhaustive
// enumeration and the Euler lower bound on small random instances.
func TestRun_ExactMatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for k := 0; k < 150; k++ {
		specs := mkRandomSpecs(rng, 1+rng.Intn(6))
		tbl := mkTable(t, specs...)
		want := bruteForce(tbl)

		exhaustive := mustRun(t, tbl, search.WithExactDominance(), search.WithBound(search.NoBound))
		assert.Equal(t, want, exhaustive.Cost, "exhaustive exact search on %v", specs)

		cut := mustRun(t, tbl, search.WithExactDominance())
		assert.Equal(t, want, cut.Cost, "exact search with cutoff on %v", specs)
		assert.Equal(t, exhaustive.Purchased, cut.Purchased, "cutoff keeps the same itinerary on %v", specs)

		lower, err := search.LowerBound(tbl)
		require.NoError(t, err)
		assert.Equal(t, want, lower, "lower bound is tight on %v", specs)
	}
}

// TestRun_DefaultModeIsValid checks the count-keyed memo always yields a
// realizable itinerary no cheaper than the optimum.
func TestRun_DefaultModeIsValid(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for k := 0; k < 150; k++ {
		specs := mkRandomSpecs(rng, 1+rng.Intn(7))
		tbl := mkTable(t, specs...)

		res := mustRun(t, tbl)
		assert.GreaterOrEqual(t, res.Cost, res.LowerBound, "default search on %v", specs)

		full := mustRun(t, tbl, search.WithBound(search.NoBound))
		assert.Equal(t, full.Purchased, res.Purchased, "cutoff keeps the same itinerary on %v", specs)
	}
}

func TestRun_OnImproveStrictlyDecreasing(t *testing.T) {
	tbl := mkTable(t, "A-B", "C-D", "HOME-C", "B-D", "A-HOME", "D-A")
	var seen []int
	res := mustRun(t, tbl,
		search.WithBound(search.NoBound),
		search.WithOnImprove(func(cost int) { seen = append(seen, cost) }),
	)

	require.NotEmpty(t, seen)
	assert.Equal(t, res.Cost, seen[len(seen)-1])
	for i := 1; i < len(seen); i++ {
		assert.Less(t, seen[i], seen[i-1])
	}
	assert.Equal(t, int64(len(seen)), res.Stats.Improvements)
}

func TestRun_Stats(t *testing.T) {
	tbl := mkTable(t, "A-B", "C-D", "B-C", "A-D", "HOME-B")
	res := mustRun(t, tbl, search.WithBound(search.NoBound))

	assert.Positive(t, res.Stats.Nodes)
	assert.Positive(t, res.Stats.MemoSize)
	assert.GreaterOrEqual(t, res.Stats.Elapsed.Nanoseconds(), int64(0))
}

func TestRun_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	tbl := mkTable(t, "HOME-A")
	res, err := search.Run(tbl, search.WithContext(ctx))
	require.ErrorIs(t, err, search.ErrAborted)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, res.Complete)
	assert.Equal(t, search.NoSolution, res.Cost)
	assert.False(t, res.Proven())
}

func TestRun_NilTable(t *testing.T) {
	_, err := search.Run(nil)
	assert.ErrorIs(t, err, search.ErrNilTable)

	_, err = search.NewSearcher(nil)
	assert.ErrorIs(t, err, search.ErrNilTable)
}

// TestSearcher_StateRestored checks Search leaves the searcher reusable: a
// second Search over the same state finds nothing better.
func TestSearcher_StateRestored(t *testing.T) {
	tbl := mkTable(t, "A-B", "B-C", "HOME-C", "A-D")
	s, err := search.NewSearcher(tbl, search.WithBound(search.NoBound))
	require.NoError(t, err)

	s.Search()
	first := s.Best()
	s.Search()
	second := s.Best()

	assert.Equal(t, first.Cost, second.Cost)
	assert.Equal(t, first.Purchased, second.Purchased)
	assert.Equal(t, first.Stats.Improvements, second.Stats.Improvements)
	require.NoError(t, search.Verify(tbl, second))
}

func TestBoundAlgo_String(t *testing.T) {
	assert.Equal(t, "none", search.NoBound.String())
	assert.Equal(t, "euler", search.EulerBound.String())
	assert.Equal(t, "unknown", search.BoundAlgo(9).String())
}

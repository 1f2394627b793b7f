// Package search implements branch-and-bound over ticket orderings.
//
// The Searcher walks every order in which the unused tickets can be consumed,
// starting from home. At each location a ticket touching the location is a
// free ride; any other ticket must be reached by purchasing a transport to one
// of its endpoints, after which it is ridden to the other endpoint. After the
// last ticket a transport home is bought if needed.
//
// Rationale (succinct):
//  1. State is a single live instance (bitmask, position, itinerary stack)
//     mutated in place and restored on every return path.
//  2. Dominance memo: a state already reached with strictly fewer purchases
//     is abandoned.
//  3. Bound: a partial itinerary costlier than the incumbent is abandoned.
//  4. Branching follows the table's ranked candidates, with interchangeable
//     tickets (equal canonical pairs) tried once per call.
//  5. Cutoff: with EulerBound the search stops once the incumbent meets the
//     lower bound, since nothing found later could replace it.
//  6. Cancellation: rare context checks (every 4096 node events).
//
// Complexity:
//   - Worst case exponential in N; recursion depth ≤ N.
//   - Memory: O(N) for the path plus the memo, bounded by N·L states in the
//     default mode.
package search

import (
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/katalvlaran/freeride/ticket"
)

// Searcher owns the mutable state of one search. It is not safe for
// concurrent use; run independent Searchers for independent tables.
type Searcher struct {
	// Configuration
	table *ticket.Table
	opts  Options
	n     int
	home  ticket.Location
	lower int

	// Current search state
	used      Mask
	position  ticket.Location
	itinerary []Transport
	route     []Step
	memo      *Memo

	// Incumbent
	bestCost      int
	bestItinerary []Transport
	bestRoute     []Step

	// Control
	steps   int  // sparse cancellation check counter
	cutoff  bool // incumbent met the lower bound
	aborted bool
	err     error

	stats Stats
}

// NewSearcher prepares a search over t positioned at home.
//
// Errors:
//   - ErrNilTable if t is nil.
//   - a core/bfs error if the lower bound cannot be computed.
func NewSearcher(t *ticket.Table, opts ...Option) (*Searcher, error) {
	if t == nil {
		return nil, ErrNilTable
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	lower, err := LowerBound(t)
	if err != nil {
		return nil, err
	}

	n := t.Len()
	s := &Searcher{
		table:         t,
		opts:          o,
		n:             n,
		home:          t.Home(),
		lower:         lower,
		position:      t.Home(),
		itinerary:     make([]Transport, 0, n+1),
		route:         make([]Step, 0, 2*n+1),
		memo:          NewMemo(o.ExactDominance),
		bestCost:      math.MaxInt,
		bestItinerary: make([]Transport, 0, n+1),
		bestRoute:     make([]Step, 0, 2*n+1),
	}

	return s, nil
}

// halted reports whether the search must unwind: cutoff reached or context
// done. The context is consulted once every 4096 calls.
func (s *Searcher) halted() bool {
	if s.cutoff || s.aborted {
		return true
	}
	s.steps++
	if (s.steps & 4095) != 0 {
		return false
	}
	if err := s.opts.Ctx.Err(); err != nil {
		s.aborted = true
		s.err = err

		return true
	}

	return false
}

// Search explores every way to consume the remaining tickets from the
// current state and records strictly cheaper complete itineraries.
// On return the state is exactly as it was on entry.
func (s *Searcher) Search() {
	if s.halted() {
		return
	}
	s.stats.Nodes++

	// Base case: every ticket consumed.
	if s.used.Count() == s.n {
		s.complete()
		return
	}

	bought := len(s.itinerary)

	// Prune 1: dominance.
	if !s.memo.Visit(s.used, s.position, bought) {
		s.stats.MemoPrunes++
		return
	}

	// Prune 2: incumbent bound. Equal cost is still explored.
	if bought > s.bestCost {
		s.stats.BoundPrunes++
		return
	}

	// Branch over unused tickets in ranked order.
	var (
		from  = s.position
		tried Mask // ticket classes already branched on in this call
		i, c  int
		tk    ticket.Ticket
	)
	for _, i = range s.table.Candidates(from) {
		if s.used.Has(i) {
			continue
		}
		c = s.table.Class(i)
		if tried.Has(c) {
			continue
		}
		tried.Set(c)

		tk = s.table.Ticket(i)
		s.used.Set(i)
		if tk.Touches(from) {
			s.ride(i, from, tk.Other(from))
		} else {
			s.purchaseAndRide(i, from, tk.A, tk.B)
			if tk.B != tk.A {
				s.purchaseAndRide(i, from, tk.B, tk.A)
			}
		}
		s.position = from
		s.used.Clear(i)

		if s.cutoff || s.aborted {
			return
		}
	}
}

// ride moves along ticket i from 'from' to 'to' and recurses.
func (s *Searcher) ride(i int, from, to ticket.Location) {
	s.route = append(s.route, Step{Kind: Ride, Ticket: i, From: from, To: to})
	s.position = to
	s.Search()
	s.route = s.route[:len(s.route)-1]
}

// purchaseAndRide buys from→entry, then rides ticket i from entry to exit.
func (s *Searcher) purchaseAndRide(i int, from, entry, exit ticket.Location) {
	s.itinerary = append(s.itinerary, Transport{From: from, To: entry})
	s.route = append(s.route, Step{Kind: Purchase, Ticket: -1, From: from, To: entry})
	s.ride(i, entry, exit)
	s.route = s.route[:len(s.route)-1]
	s.itinerary = s.itinerary[:len(s.itinerary)-1]
}

// complete evaluates a full ticket ordering and commits it if strictly cheaper.
func (s *Searcher) complete() {
	mustReturn := s.position != s.home
	cost := len(s.itinerary)
	if mustReturn {
		cost++
	}
	if cost >= s.bestCost {
		return
	}

	s.bestItinerary = append(s.bestItinerary[:0], s.itinerary...)
	s.bestRoute = append(s.bestRoute[:0], s.route...)
	if mustReturn {
		back := Transport{From: s.position, To: s.home}
		s.bestItinerary = append(s.bestItinerary, back)
		s.bestRoute = append(s.bestRoute, Step{Kind: Purchase, Ticket: -1, From: back.From, To: back.To})
	}
	s.bestCost = cost
	s.stats.Improvements++

	if s.opts.OnImprove != nil {
		s.opts.OnImprove(cost)
	}
	if s.opts.Bound == EulerBound && cost <= s.lower {
		s.cutoff = true
	}
}

// Best returns a copy of the incumbent. Complete is true unless the search
// was aborted.
func (s *Searcher) Best() Result {
	s.stats.MemoSize = s.memo.Len()
	res := Result{
		Cost:       NoSolution,
		LowerBound: s.lower,
		Complete:   !s.aborted,
		Stats:      s.stats,
	}
	if s.bestCost == math.MaxInt {
		return res
	}
	res.Cost = s.bestCost
	res.Purchased = slices.Clone(s.bestItinerary)
	res.Route = slices.Clone(s.bestRoute)

	return res
}

// Memo exposes the dominance memo for inspection.
func (s *Searcher) Memo() *Memo { return s.memo }

// Err returns the context error that aborted the search, if any.
func (s *Searcher) Err() error { return s.err }

// Run builds a Searcher for t, searches, and returns the best itinerary.
//
// Errors:
//   - ErrNilTable if t is nil.
//   - ErrAborted (wrapping the context error) if the context ended first;
//     the Result then carries the incumbent, if any, with Complete == false.
func Run(t *ticket.Table, opts ...Option) (Result, error) {
	s, err := NewSearcher(t, opts...)
	if err != nil {
		return Result{Cost: NoSolution}, err
	}
	if err = s.opts.Ctx.Err(); err != nil {
		s.aborted, s.err = true, err
		res := s.Best()
		return res, fmt.Errorf("%w: %w", ErrAborted, err)
	}

	start := time.Now()
	s.Search()
	res := s.Best()
	res.Stats.Elapsed = time.Since(start)
	if s.err != nil {
		return res, fmt.Errorf("%w: %w", ErrAborted, s.err)
	}

	return res, nil
}

package search

import (
	"context"
	"errors"
	"time"

	"github.com/katalvlaran/freeride/ticket"
)

var (
	// ErrNilTable is returned when a nil *ticket.Table is passed to NewSearcher or Run.
	ErrNilTable = errors.New("search: table is nil")

	// ErrAborted indicates the search stopped because its context was done.
	// The result returned alongside it holds the best itinerary found so far.
	ErrAborted = errors.New("search: aborted")

	// ErrInvalidRoute is returned by Verify when a route does not replay.
	ErrInvalidRoute = errors.New("search: invalid route")
)

// NoSolution is the Result.Cost reported when no itinerary was completed,
// which only happens when the search is aborted early.
const NoSolution = -1

// BoundAlgo selects the lower-bound policy.
type BoundAlgo int

const (
	// NoBound runs the search to exhaustion.
	NoBound BoundAlgo = iota

	// EulerBound stops the search as soon as the incumbent reaches the
	// parity/connectivity lower bound (see LowerBound).
	// The reported itinerary is identical to an exhaustive run.
	EulerBound
)

// String returns the policy name used in configuration files.
func (b BoundAlgo) String() string {
	switch b {
	case NoBound:
		return "none"
	case EulerBound:
		return "euler"
	default:
		return "unknown"
	}
}

// Option configures optional behavior of the search.
// Use with Run(t, opts...) or NewSearcher(t, opts...).
type Option func(*Options)

// Options holds configurable parameters of the search.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// It is checked every 4096 node expansions.
	Ctx context.Context

	// ExactDominance keys the dominance memo by the full used-set instead of
	// the used count. Exact, but memory grows with the number of subsets seen.
	ExactDominance bool

	// Bound selects the lower-bound policy. Default EulerBound.
	Bound BoundAlgo

	// OnImprove, if non-nil, is called with the new cost each time a strictly
	// cheaper complete itinerary is found.
	OnImprove func(cost int)
}

// DefaultOptions returns Options with:
//   - Background context
//   - Count-keyed dominance memo
//   - EulerBound cutoff
//   - No improvement hook
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		ExactDominance: false,
		Bound:          EulerBound,
		OnImprove:      nil,
	}
}

// WithContext sets the Context checked during search.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithExactDominance switches the memo to full used-set keys.
func WithExactDominance() Option {
	return func(o *Options) {
		o.ExactDominance = true
	}
}

// WithBound sets the lower-bound policy.
func WithBound(b BoundAlgo) Option {
	return func(o *Options) {
		o.Bound = b
	}
}

// WithOnImprove installs fn as the improvement hook.
func WithOnImprove(fn func(cost int)) Option {
	return func(o *Options) {
		o.OnImprove = fn
	}
}

// Transport is one purchased point-to-point trip.
type Transport struct {
	From, To ticket.Location
}

// StepKind distinguishes the two kinds of moves in a route.
type StepKind int

const (
	// Ride is a move on a free ticket.
	Ride StepKind = iota
	// Purchase is a bought transport.
	Purchase
)

// Step is one move of a reconstructed route. Ticket is the ticket index for
// Ride steps and -1 for Purchase steps.
type Step struct {
	Kind     StepKind
	Ticket   int
	From, To ticket.Location
}

// Stats reports search diagnostics.
type Stats struct {
	Nodes        int64         // calls to Search
	MemoPrunes   int64         // returns caused by the dominance memo
	BoundPrunes  int64         // returns caused by the incumbent bound
	Improvements int64         // strictly better itineraries found
	MemoSize     int           // states recorded in the memo
	Elapsed      time.Duration // wall time of Run; zero for bare Search calls
}

// Result is the best itinerary found by a search.
type Result struct {
	// Cost is the number of purchased transports, or NoSolution.
	Cost int

	// Purchased lists the bought transports in travel order. The last entry
	// ends at home whenever the final ride does not.
	Purchased []Transport

	// Route interleaves free rides and purchases, starting and ending at home.
	Route []Step

	// LowerBound is LowerBound(table), the proven minimum cost.
	LowerBound int

	// Complete is false when the search was aborted before finishing.
	Complete bool

	Stats Stats
}

// Proven reports whether Cost is known to be optimal because it meets the
// lower bound.
func (r Result) Proven() bool {
	return r.Cost != NoSolution && r.Cost == r.LowerBound
}

// Named resolves the purchased transports to location names.
func (r Result) Named(t *ticket.Table) []ticket.Pair {
	out := make([]ticket.Pair, len(r.Purchased))
	for i, tr := range r.Purchased {
		out[i] = ticket.Pair{A: t.Name(tr.From), B: t.Name(tr.To)}
	}

	return out
}

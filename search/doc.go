// Package search finds a minimum-purchase itinerary that rides every
// free-travel ticket of a ticket.Table exactly once and ends at home.
//
// What:
//
//   - Run / Searcher: exact depth-first branch-and-bound. A ticket touching
//     the current location is a free ride; any other ticket costs one
//     purchased transport to one of its endpoints and is then ridden to the
//     other. A final transport home is bought when needed.
//   - Pruning: a dominance memo (state reached before with fewer purchases)
//     and the incumbent bound (partial cost above the best complete cost).
//   - LowerBound: parity/connectivity bound over the ticket multigraph
//     (core.Graph + bfs.Components); with the EulerBound policy it stops the
//     search as soon as the incumbent is provably optimal.
//   - Verify: replays a Result's route and checks it is realizable.
//
// Key Types:
//
//   - Mask: 128-bit ticket set
//   - Memo: monotone dominance record
//   - Options / Option: Ctx, ExactDominance, Bound, OnImprove
//   - Result: Cost, Purchased, Route, LowerBound, Complete, Stats
//
// Dominance modes:
//
//   - default: states keyed by (tickets used, position). Fast, bounded by
//     N·L memo entries, but a heuristic: it can report a non-optimal cost on
//     adversarial inputs. Every reported itinerary is still valid.
//   - WithExactDominance: states keyed by (used-set, position). Exact.
//
// Errors:
//
//   - ErrNilTable      table pointer is nil
//   - ErrAborted       context done before the search finished
//   - ErrInvalidRoute  Verify found a broken route
//
// Concurrency:
//
//   - A Searcher is single-threaded and owns all of its state. Independent
//     Searchers may run in parallel over shared, read-only Tables.
package search

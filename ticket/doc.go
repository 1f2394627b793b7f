// Package ticket interns location names and canonicalizes free-travel tickets
// into the dense integer form consumed by the itinerary search.
//
// What:
//
//   - Registry: maps every distinct location name (plus the home location)
//     to a dense Location id. Names are sorted before interning, so the same
//     input always yields the same ids.
//   - Table: the immutable ticket set. Each ticket is stored as an unordered
//     pair with the smaller id first, and every location gets a ranked list
//     of candidate ticket indices (tickets touching the location first).
//
// Why:
//
//   - The searcher works on integers and bitmasks only; all name handling
//     happens once, here.
//   - The candidate ranking is a greedy hint that surfaces cheap itineraries
//     early so branch-and-bound pruning bites sooner. It never changes which
//     costs are reachable.
//
// Errors:
//
//   - ErrTooManyTickets  more than MaxTickets tickets were supplied.
//
// Complexity:
//
//   - Build: O(L log L + L·N) time, O(L·N) memory for L locations, N tickets.
package ticket

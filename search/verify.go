package search

import (
	"fmt"

	"github.com/katalvlaran/freeride/ticket"
)

// Verify replays r.Route against t and checks that the itinerary is
// physically realizable:
//   - the route starts at home, every step departs from the current location
//     and the route ends at home;
//   - every ticket is ridden exactly once, between its own endpoints;
//   - the purchase steps are exactly r.Purchased, in order, and number r.Cost.
//
// It returns nil or an error wrapping ErrInvalidRoute.
//
// Complexity: O(N) for N tickets.
func Verify(t *ticket.Table, r Result) error {
	if t == nil {
		return ErrNilTable
	}
	if r.Cost == NoSolution {
		return fmt.Errorf("%w: no itinerary", ErrInvalidRoute)
	}

	var (
		pos       = t.Home()
		ridden    = make([]bool, t.Len())
		purchases = 0
	)
	for k, st := range r.Route {
		if st.From != pos {
			return fmt.Errorf("%w: step %d departs %s but traveller is at %s",
				ErrInvalidRoute, k, t.Name(st.From), t.Name(pos))
		}

		switch st.Kind {
		case Ride:
			if st.Ticket < 0 || st.Ticket >= t.Len() {
				return fmt.Errorf("%w: step %d rides unknown ticket %d", ErrInvalidRoute, k, st.Ticket)
			}
			if ridden[st.Ticket] {
				return fmt.Errorf("%w: step %d rides ticket %d twice", ErrInvalidRoute, k, st.Ticket)
			}
			if ticket.Canonical(st.From, st.To) != t.Ticket(st.Ticket) {
				return fmt.Errorf("%w: step %d does not match ticket %d", ErrInvalidRoute, k, st.Ticket)
			}
			ridden[st.Ticket] = true
		case Purchase:
			if purchases >= len(r.Purchased) || r.Purchased[purchases] != (Transport{From: st.From, To: st.To}) {
				return fmt.Errorf("%w: step %d purchase not listed at position %d", ErrInvalidRoute, k, purchases)
			}
			purchases++
		default:
			return fmt.Errorf("%w: step %d has unknown kind %d", ErrInvalidRoute, k, st.Kind)
		}
		pos = st.To
	}

	for i, ok := range ridden {
		if !ok {
			return fmt.Errorf("%w: ticket %d never ridden", ErrInvalidRoute, i)
		}
	}
	if pos != t.Home() {
		return fmt.Errorf("%w: route ends at %s, not home", ErrInvalidRoute, t.Name(pos))
	}
	if purchases != len(r.Purchased) || purchases != r.Cost {
		return fmt.Errorf("%w: %d purchases replayed, %d listed, cost %d",
			ErrInvalidRoute, purchases, len(r.Purchased), r.Cost)
	}

	return nil
}

package ticket

import "errors"

// MaxTickets is the widest ticket set a Table accepts. The searcher tracks
// used tickets in a fixed-width bitmask, so the bound is checked at build time.
const MaxTickets = 100

// DefaultHome is the home location name used when none is configured.
const DefaultHome = "BATUMI"

// ErrTooManyTickets is returned by Build when the ticket count exceeds MaxTickets.
var ErrTooManyTickets = errors.New("ticket: too many tickets")

// Location is a dense, interned location identifier.
type Location int

// Pair is a raw ticket or transport expressed with location names.
type Pair struct {
	A, B string
}

// Ticket is a canonical unordered pair of locations with A <= B.
type Ticket struct {
	A, B Location
}

// Canonical returns the ticket connecting x and y with the smaller id first.
// Canonical(x, y) == Canonical(y, x) for all x, y.
func Canonical(x, y Location) Ticket {
	if y < x {
		x, y = y, x
	}

	return Ticket{A: x, B: y}
}

// Touches reports whether loc is one of the ticket's endpoints.
func (t Ticket) Touches(loc Location) bool {
	return t.A == loc || t.B == loc
}

// Other returns the endpoint opposite to loc. For a self-loop both are equal.
// The result is undefined when loc is not an endpoint.
func (t Ticket) Other(loc Location) Location {
	if t.A == loc {
		return t.B
	}

	return t.A
}

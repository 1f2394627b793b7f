package ticket

import (
	"fmt"
	"sort"
)

// Table is the immutable, canonicalized ticket set for one search.
type Table struct {
	reg        *Registry
	home       Location
	tickets    []Ticket
	class      []int   // class[i]: lowest index j with tickets[j] == tickets[i]
	candidates [][]int // candidates[loc]: ticket indices, touching loc first
}

// Build interns every endpoint of pairs plus home, canonicalizes each ticket
// and precomputes the per-location candidate order.
//
// Contract:
//   - len(pairs) <= MaxTickets, otherwise ErrTooManyTickets.
//   - Any string is a valid location name; home is always registered.
//
// Complexity: O(L log L + L·N) time and O(L·N) memory.
func Build(pairs []Pair, home string) (*Table, error) {
	// 1. Capacity guard before any allocation proportional to the input.
	if len(pairs) > MaxTickets {
		return nil, fmt.Errorf("%w: got %d, limit %d", ErrTooManyTickets, len(pairs), MaxTickets)
	}

	// 2. Intern locations.
	names := make([]string, 0, 2*len(pairs)+1)
	names = append(names, home)
	for _, p := range pairs {
		names = append(names, p.A, p.B)
	}
	reg := NewRegistry(names...)

	t := &Table{
		reg:     reg,
		tickets: make([]Ticket, len(pairs)),
		class:   make([]int, len(pairs)),
	}
	t.home, _ = reg.ID(home)

	// 3. Canonical pairs and duplicate classes.
	first := make(map[Ticket]int, len(pairs))
	for i, p := range pairs {
		a, _ := reg.ID(p.A)
		b, _ := reg.ID(p.B)
		tk := Canonical(a, b)
		t.tickets[i] = tk
		if j, ok := first[tk]; ok {
			t.class[i] = j
		} else {
			first[tk] = i
			t.class[i] = i
		}
	}

	// 4. Ranked candidates per location. The sort is stable, so tickets keep
	//    input order inside the "touching" and "not touching" groups.
	t.candidates = make([][]int, reg.Len())
	for loc := range t.candidates {
		row := make([]int, len(pairs))
		for i := range row {
			row[i] = i
		}
		l := Location(loc)
		sort.SliceStable(row, func(x, y int) bool {
			return t.tickets[row[x]].Touches(l) && !t.tickets[row[y]].Touches(l)
		})
		t.candidates[loc] = row
	}

	return t, nil
}

// Len returns the number of tickets.
func (t *Table) Len() int { return len(t.tickets) }

// Home returns the home location id.
func (t *Table) Home() Location { return t.home }

// Locations returns the number of registered locations.
func (t *Table) Locations() int { return t.reg.Len() }

// Registry exposes the name registry backing the table.
func (t *Table) Registry() *Registry { return t.reg }

// Name resolves a location id to its name.
func (t *Table) Name(loc Location) string { return t.reg.Name(loc) }

// Ticket returns the canonical pair of ticket i.
func (t *Table) Ticket(i int) Ticket { return t.tickets[i] }

// Tickets returns a copy of all canonical tickets in input order.
func (t *Table) Tickets() []Ticket {
	out := make([]Ticket, len(t.tickets))
	copy(out, t.tickets)

	return out
}

// Class returns the lowest ticket index sharing ticket i's canonical pair.
// Tickets with equal classes are interchangeable during search.
func (t *Table) Class(i int) int { return t.class[i] }

// Candidates returns the ranked ticket indices for loc.
// The returned slice is shared; callers must not modify it.
func (t *Table) Candidates(loc Location) []int { return t.candidates[loc] }

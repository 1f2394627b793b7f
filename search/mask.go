package search

import "math/bits"

// Mask is a fixed-width 128-bit set of ticket indices. Only indices below
// ticket.MaxTickets are ever set. The zero value is the empty set.
type Mask [2]uint64

// Set adds ticket i.
func (m *Mask) Set(i int) { m[i>>6] |= 1 << uint(i&63) }

// Clear removes ticket i.
func (m *Mask) Clear(i int) { m[i>>6] &^= 1 << uint(i&63) }

// Has reports whether ticket i is in the set.
func (m Mask) Has(i int) bool { return m[i>>6]&(1<<uint(i&63)) != 0 }

// Count returns the number of tickets in the set.
func (m Mask) Count() int { return bits.OnesCount64(m[0]) + bits.OnesCount64(m[1]) }

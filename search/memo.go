package search

import "github.com/katalvlaran/freeride/ticket"

// memoKey identifies a search state for dominance checks. In the default
// mode only count and pos are populated; exact mode also fills used.
type memoKey struct {
	used  Mask
	count int
	pos   ticket.Location
}

// Memo records, per search state, the fewest purchases with which the state
// has been reached. Stored values only ever decrease.
//
// The default key is (tickets used, position), which merges states that used
// different ticket subsets. That is a heuristic: it is what makes large inputs
// tractable, but it can discard the only path to an optimum. Exact mode keys by
// the full used-set instead and never loses an optimum.
type Memo struct {
	exact bool
	best  map[memoKey]int

	// onRecord, if set, sees every write: the previous value (had == false
	// on first visit) and the value stored.
	onRecord func(prev int, had bool, next int)
}

// NewMemo returns an empty memo; exact selects full used-set keys.
func NewMemo(exact bool) *Memo {
	return &Memo{exact: exact, best: make(map[memoKey]int)}
}

func (m *Memo) key(used Mask, pos ticket.Location) memoKey {
	if m.exact {
		return memoKey{used: used, count: used.Count(), pos: pos}
	}

	return memoKey{count: used.Count(), pos: pos}
}

// Visit reports whether the state (used, pos) reached with bought purchases
// is still worth exploring. It returns false when the state was previously
// reached with strictly fewer purchases; otherwise it tightens the record to
// bought and returns true. Equal costs are not pruned.
func (m *Memo) Visit(used Mask, pos ticket.Location, bought int) bool {
	k := m.key(used, pos)
	prev, ok := m.best[k]
	if ok && prev < bought {
		return false
	}
	if m.onRecord != nil {
		m.onRecord(prev, ok, bought)
	}
	m.best[k] = bought

	return true
}

// Lookup returns the recorded purchase count for (used, pos).
func (m *Memo) Lookup(used Mask, pos ticket.Location) (int, bool) {
	v, ok := m.best[m.key(used, pos)]

	return v, ok
}

// Len returns the number of recorded states.
func (m *Memo) Len() int { return len(m.best) }

// Exact reports whether the memo keys by the full used-set.
func (m *Memo) Exact() bool { return m.exact }

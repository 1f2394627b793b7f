package ticket

import "sort"

// Registry interns location names into dense ids 0..Len()-1.
// A Registry is immutable once built and safe for concurrent reads.
type Registry struct {
	names []string
	index map[string]Location
}

// NewRegistry interns the distinct names among names. Duplicates collapse to
// one id; ids follow the lexicographic order of the names.
//
// Complexity: O(L log L) for L distinct names.
func NewRegistry(names ...string) *Registry {
	// 1. Deduplicate.
	seen := make(map[string]struct{}, len(names))
	uniq := make([]string, 0, len(names))
	for _, n := range names {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		uniq = append(uniq, n)
	}

	// 2. Sort for deterministic ids.
	sort.Strings(uniq)

	// 3. Build the reverse index.
	r := &Registry{names: uniq, index: make(map[string]Location, len(uniq))}
	for i, n := range uniq {
		r.index[n] = Location(i)
	}

	return r
}

// ID returns the id interned for name.
func (r *Registry) ID(name string) (Location, bool) {
	id, ok := r.index[name]

	return id, ok
}

// Name returns the name interned as id. It panics when id is out of range,
// like a slice index would.
func (r *Registry) Name(id Location) string {
	return r.names[id]
}

// Len returns the number of interned locations.
func (r *Registry) Len() int { return len(r.names) }

// Names returns a copy of all names in id order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)

	return out
}

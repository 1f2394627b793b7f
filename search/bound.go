package search

import (
	"strconv"

	"github.com/katalvlaran/freeride/bfs"
	"github.com/katalvlaran/freeride/core"
	"github.com/katalvlaran/freeride/ticket"
)

// LowerBound returns a lower bound on the purchases any itinerary for t needs.
//
// An itinerary is a closed walk from home that rides every ticket once, so
// tickets plus purchased transports form a connected multigraph with all
// degrees even. Build the ticket multigraph over home and every ticket
// endpoint, split it into connected components C1..Ck and let oi be the
// number of odd-degree locations in Ci. Every component needs oi purchase
// endpoints to fix parity, and at least two to join the rest of the walk
// when k > 1. Hence
//
//	k == 1: o1/2
//	k  > 1: Σ max(1, oi/2)
//
// Because purchases may connect any two locations at unit cost, the bound is
// also attainable, so it equals the optimum.
//
// Errors: ErrNilTable, or a core/bfs error if the graph cannot be built.
//
// Complexity: O(L + N) graph build plus O(L + N) traversal, for N tickets
// and L locations.
func LowerBound(t *ticket.Table) (int, error) {
	if t == nil {
		return 0, ErrNilTable
	}

	g, err := ticketGraph(t)
	if err != nil {
		return 0, err
	}
	comps, err := bfs.Components(g)
	if err != nil {
		return 0, err
	}

	odd := make([]int, len(comps))
	for c, ids := range comps {
		for _, id := range ids {
			deg, err := g.Degree(id)
			if err != nil {
				return 0, err
			}
			odd[c] += deg & 1
		}
	}

	if len(odd) == 1 {
		return odd[0] / 2, nil
	}
	total := 0
	for _, o := range odd {
		total += max(1, o/2)
	}

	return total, nil
}

// ticketGraph turns t into an unweighted multigraph with loops. Vertex IDs
// are location ids in decimal, so empty names cannot reach the graph.
func ticketGraph(t *ticket.Table) (*core.Graph, error) {
	g := core.NewGraph(core.WithMultiEdges(), core.WithLoops())
	if err := g.AddVertex(vertexID(t.Home())); err != nil {
		return nil, err
	}
	for i := 0; i < t.Len(); i++ {
		tk := t.Ticket(i)
		if _, err := g.AddEdge(vertexID(tk.A), vertexID(tk.B), 0); err != nil {
			return nil, err
		}
	}

	return g, nil
}

func vertexID(l ticket.Location) string { return strconv.Itoa(int(l)) }

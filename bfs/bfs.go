package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/freeride/core"
)

type queueItem struct {
	id    string
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  Options
	ctx   context.Context
	queue []queueItem
	res   *Result
}

// BFS runs breadth-first search on g from startID.
func BFS(g *core.Graph, startID string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}
	if g.Weighted() {
		return nil, ErrWeightedGraph
	}

	w := newWalker(g, o, g.VertexCount())
	if err := w.run(startID); err != nil {
		return w.res, err
	}

	return w.res, nil
}

// Components returns the connected components of g, each listed in BFS
// order from its smallest vertex ID; components are ordered by that ID.
// Every vertex, isolated ones included, belongs to exactly one component.
func Components(g *core.Graph, opts ...Option) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if g.Weighted() {
		return nil, ErrWeightedGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var (
		vertices = g.Vertices()
		w        = newWalker(g, o, len(vertices))
		comps    [][]string
		start    int
	)
	for _, v := range vertices {
		if _, seen := w.res.Depth[v]; seen {
			continue
		}
		start = len(w.res.Order)
		if err := w.run(v); err != nil {
			return nil, err
		}
		comps = append(comps, w.res.Order[start:len(w.res.Order):len(w.res.Order)])
	}

	return comps, nil
}

func newWalker(g *core.Graph, o Options, n int) *walker {
	return &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Order: make([]string, 0, n),
			Depth: make(map[string]int, n),
		},
	}
}

// run traverses everything reachable from id that is not yet visited.
func (w *walker) run(id string) error {
	w.enqueue(id, 0)
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
		}

		neighbors, err := w.graph.NeighborIDs(item.id)
		if err != nil {
			return fmt.Errorf("%w: neighbors of %q: %w", ErrNeighbors, item.id, err)
		}
		for _, nbr := range neighbors {
			if _, seen := w.res.Depth[nbr]; !seen {
				w.enqueue(nbr, item.depth+1)
			}
		}
	}

	return nil
}

func (w *walker) enqueue(id string, d int) {
	w.res.Depth[id] = d
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

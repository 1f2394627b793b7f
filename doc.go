// Package freeride plans trips that use up a bundle of free-travel tickets.
//
// Each ticket is an undirected ride between two named locations. Starting
// from home, the planner orders the tickets and chooses a riding direction for
// each so that every ticket is used exactly once and the traveller ends back
// home, buying as few extra point-to-point transports as possible.
//
// Packages:
//
//	ticket/          location registry and the immutable ticket table
//	core/            undirected multigraph (parallel edges, loops, degrees)
//	bfs/             breadth-first traversal and connected components
//	search/          branch-and-bound planner, Euler lower bound, route replay
//	caseio/          multi-case text input, "Case #i: n" output, Graphviz dumps
//	internal/config  YAML configuration with defaults and validation
//	internal/logger  process-wide slog setup
//	internal/cache   SQLite store of solved cases keyed by BLAKE3
//	internal/cli     the freeride command (solve, cache)
//	cmd/freeride     binary entry point
//
// Quick start:
//
//	tbl, _ := ticket.Build([]ticket.Pair{{A: "BATUMI", B: "POTI"}}, ticket.DefaultHome)
//	res, _ := search.Run(tbl)
//	fmt.Println(res.Cost, res.Named(tbl)) // 1 [{POTI BATUMI}]
//
// The planner is exact when run with search.WithExactDominance; the default
// count-keyed memo trades that guarantee for a much smaller state space.
package freeride

// Package bfs provides breadth-first search over a core.Graph.
//
// What
//
//   - BFS explores vertices in non-decreasing hop distance from a start
//     vertex and returns the visit order and per-vertex depth.
//   - Components partitions every vertex of a graph into connected
//     components by repeated BFS from the smallest unvisited vertex ID.
//   - Hooks: WithOnVisit may abort the traversal by returning an error.
//
// Determinism
//
//	core.NeighborIDs is sorted, so visit order and component order are
//	reproducible for a given graph.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E) per traversal, plus neighbor sorting
//   - Memory: O(V)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrWeightedGraph        if run on a weighted graph.
//   - ErrNeighbors            if neighbor lookup fails.
//   - Wrapped OnVisit errors and context errors.
package bfs

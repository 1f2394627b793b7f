// Package core defines the in-memory Graph used for structural questions
// about a ticket set: which locations touch which, how many ticket ends meet
// at each location, and how the locations split into connected pieces.
//
// What:
//
//   - Graph: undirected, optionally weighted, with opt-in parallel edges
//     (WithMultiEdges) and self-loops (WithLoops). A bundle of tickets is a
//     multigraph: two tickets over the same pair are two edges, and a ticket
//     from a location to itself is a loop.
//   - Vertices are created implicitly by AddEdge or explicitly by AddVertex
//     (home is added even when no ticket touches it).
//   - Edge IDs are textual and monotonic ("e1", "e2", ...).
//
// Determinism:
//
//   - Vertices() is sorted by ID; Edges() and Neighbors() by Edge.ID.
//
// Concurrency:
//
//   - muVert guards the vertex catalog, muEdgeAdj the edge catalog and
//     adjacency. Lock order is always muVert → muEdgeAdj.
//
// Errors:
//
//	ErrEmptyVertexID       vertex ID is the empty string
//	ErrVertexNotFound      requested vertex does not exist
//	ErrBadWeight           non-zero weight on an unweighted graph
//	ErrLoopNotAllowed      self-loop when loops are disabled
//	ErrMultiEdgeNotAllowed parallel edge when multi-edges are disabled
package core

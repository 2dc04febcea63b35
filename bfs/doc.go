// Package bfs walks a core.Graph breadth-first from one start vertex.
//
// The placer drives it over the tile adjacency graph: the start is a corner
// tile and the OnVisit hook orients and positions every neighbour of the
// tile being visited before those neighbours are themselves visited.
//
// Determinism
//
//	core.Graph.NeighborIDs returns IDs sorted ascending and BFS enqueues them
//	in that order, so the visit sequence is reproducible.
//
// Vertex lifecycle
//
//	unseen → queued (OnEnqueue) → visited (OnVisit). A vertex is enqueued at
//	most once.
//
// Complexity: O(V + E) time, O(V) memory.
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      if an Option is invalid (negative MaxDepth).
//   - ErrNeighbors            if neighbour lookup fails.
//   - context errors, and OnVisit errors wrapped with the vertex ID.
package bfs

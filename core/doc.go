// Package core is the small, thread-safe undirected graph the mosaic solver
// uses to record which tiles share an edge.
//
// Vertices are tile identities rendered as strings; an edge means the two
// tiles have a border in common. The classifier builds the graph and the
// placer walks it breadth-first.
//
// All APIs take one of two sync.RWMutex locks (muVert for vertices,
// muEdgeAdj for edges and adjacency), always in that order.
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - second edge between the same pair when multi-edges are disabled.
package core

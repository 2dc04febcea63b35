// Package place assigns every tile an orientation and an integer (row, col)
// coordinate by walking the tile adjacency graph breadth-first from a
// corner.
//
// Each tile moves Unplaced → Queued → Placed. The start corner is queued at
// (0,0) as-is. When a queued tile is visited it becomes Placed, and every
// still-unplaced neighbour is matched against it, turned by the transform the
// matcher returns, given the coordinate one step away on the matched side and
// queued. A tile that already has a coordinate never gets a second one: the
// first match wins.
//
// The walk is sequential; the queue order is what makes coordinates
// consistent.
//
// Errors:
//
//   - ErrIncomplete: the queue emptied with tiles still unplaced.
//   - ErrCollision: two tiles were given the same coordinate.
//   - ErrNotSquare: the placed coordinates do not fill a k×k square.
//   - ErrUnknownTile: the start tile or a graph vertex is not in the tile set.
//   - match.ErrConsistency: adjacent tiles that the matcher cannot join.
package place

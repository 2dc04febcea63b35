// Package classify counts, for every tile, how many of its borders line up
// with a border of some other tile, and sorts the tiles into corners (2),
// edge pieces (3) and interior pieces (4).
//
// The pairwise comparison pass only reads tiles, so it fans out over an
// errgroup worker pool (WithWorkers). Aggregation, validation and the
// adjacency graph are built afterwards on the calling goroutine.
//
// A square mosaic of k×k tiles has exactly 4 corners, 4(k-2) edge pieces and
// (k-2)² interior pieces; anything else is reported, never trusted.
//
// Errors:
//
//   - ErrTooFewMatches, ErrTooManyMatches, ErrSharedTwice: wrap match.ErrConsistency.
//   - ErrCornerCount: the classifier did not find exactly four corners.
//   - ErrNotSquare: the tile count or the per-kind counts do not form a k×k square.
//   - ErrNoTiles, ErrOptionViolation.
package classify

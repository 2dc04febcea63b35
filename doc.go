// Package mosaic reassembles a square image from scrambled tiles and measures
// how rough its waters are.
//
// Every tile is a square bitmap that was rotated by a multiple of 90° and
// possibly mirrored. Neighbouring tiles share an identical border row; the
// outermost border of each tile is only an alignment aid and is dropped from
// the final picture.
//
// The pipeline is split into small packages, each usable on its own:
//
//	grid     square bitmaps and the eight orientation transforms
//	tile     tile parsing, borders and sides
//	match    which side of one tile meets which side of another, and how
//	         the candidate must be turned to fit
//	core     thread-safe adjacency graph of tiles
//	classify border-match counts, corner/edge/interior roles, checksum
//	bfs      breadth-first traversal with hooks
//	place    BFS placement of every tile on a k×k layout
//	stitch   trims borders and concatenates the layout into one image
//	scan     pattern search over all orientations, roughness
//
// Solve runs the whole pipeline:
//
//	blocks := mosaic.SplitBlocks(input)
//	res, err := mosaic.Solve(ctx, blocks, scan.SeaMonster)
//	if err != nil { ... }
//	fmt.Println(res.Checksum, res.Roughness)
//
// Errors from every stage are returned wrapped; test them with errors.Is
// against the stage sentinels (tile.ErrParse, match.ErrConsistency,
// place.ErrIncomplete, scan.ErrPatternNotFound and friends).
//
// A command-line driver lives in cmd/mosaic.
package mosaic

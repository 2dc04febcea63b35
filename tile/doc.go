// Package tile models one square piece of the scrambled mosaic: a numeric
// identity plus an N×N pixel face.
//
// A tile is parsed from a text block:
//
//	Tile 2311:
//	..##.#..#.
//	##..#.....
//	...
//
// Identity, not pixel content, decides whether two Tile values are the
// same piece: a rotated tile is still the same tile. Transform returns a new
// Tile value and never touches the receiver.
//
// Borders are read in a fixed direction: Top and Bottom left to right,
// Left and Right top to bottom.
package tile

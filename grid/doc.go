// Package grid holds the square binary bitmaps that every other mosaic
// package works on: tile faces, trimmed tile interiors and the assembled
// image.
//
// What:
//
//   - Grid wraps an N×N block of pixels stored row-major; a pixel is either
//     set ('#') or clear ('.').
//   - Every transform (Rotate, Mirror, Apply, Trim) is a pure function that
//     returns a fresh Grid, so two orientations of the same tile never alias.
//   - Transform is an element of the 8-element orientation group of a square:
//     a clockwise rotation followed by an optional mirror.
//
// Conventions:
//
//   - Coordinates are (row, col) with (0,0) in the top-left corner.
//   - Rotation is clockwise: Rotate(Rotate90) moves the left column to the
//     top row.
//   - MirrorHorizontal reverses every row (left↔right), MirrorVertical
//     reverses the order of rows (top↔bottom).
//   - Apply(Transform{R, M}) always rotates first and mirrors second. The two
//     orders are not equivalent, so Transform never reorders them.
//
// Complexity:
//
//   - FromRows, Rotate, Mirror, Apply, Trim, Count: O(N²) time and memory.
//   - At, Set, InBounds: O(1).
//
// Errors:
//
//   - ErrEmptyGrid: no rows, or rows with no columns.
//   - ErrNotSquare: rows of differing length or a row count != column count.
//   - ErrBadPixel:  a character other than '.' or '#'.
//   - ErrOutOfBounds: Paste target block leaves the destination grid.
package grid

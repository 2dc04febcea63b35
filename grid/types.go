// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Grid, Pixel characters, orientation types and sentinel errors.

package grid

import "errors"

// Sentinel errors for grid construction and block copies.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNotSquare indicates rows of differing lengths or a non-square shape.
	ErrNotSquare = errors.New("grid: rows must form a square")
	// ErrBadPixel indicates a character that is neither '.' nor '#'.
	ErrBadPixel = errors.New("grid: unknown pixel character")
	// ErrOutOfBounds indicates a block copy that does not fit the destination.
	ErrOutOfBounds = errors.New("grid: block out of bounds")
)

// Pixel characters used by the text form of a Grid.
const (
	ClearPixel = '.'
	SetPixel   = '#'
)

// Grid is a square bitmap of Size()×Size() pixels.
// cells[r*size+c] holds the pixel at row r, column c.
type Grid struct {
	size  int
	cells []bool
}

// Rotation is a clockwise quarter-turn count.
type Rotation int

const (
	// Rotate0 leaves the grid unchanged.
	Rotate0 Rotation = iota
	// Rotate90 turns the grid a quarter clockwise.
	Rotate90
	// Rotate180 turns the grid half a turn.
	Rotate180
	// Rotate270 turns the grid three quarters clockwise (a quarter counter-clockwise).
	Rotate270
)

// Mirror selects the reflection applied after the rotation.
type Mirror int

const (
	// MirrorNone applies no reflection.
	MirrorNone Mirror = iota
	// MirrorHorizontal reverses every row (left↔right).
	MirrorHorizontal
	// MirrorVertical reverses the row order (top↔bottom).
	MirrorVertical
)

// Transform is a rotation followed by a mirror.
// Several Transform values describe the same orientation
// (for example {Rotate180, MirrorHorizontal} == {Rotate0, MirrorVertical});
// Canonical folds them onto one representative.
type Transform struct {
	Rotation Rotation
	Mirror   Mirror
}

// Identity is the transform that leaves a grid unchanged.
var Identity = Transform{Rotation: Rotate0, Mirror: MirrorNone}

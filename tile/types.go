// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Tile, Border, Side and parse errors.

package tile

import (
	"errors"

	"github.com/katalvlaran/mosaic/grid"
)

// Sentinel errors for tile parsing. Every parse failure wraps ErrParse.
var (
	// ErrParse is the parent of every tile parse failure.
	ErrParse = errors.New("tile: parse error")
	// ErrHeader indicates a missing or malformed "Tile <id>:" line.
	ErrHeader = errors.New("tile: malformed header")
	// ErrDimensions indicates a face that is not N×N, or tiles of different N.
	ErrDimensions = errors.New("tile: bad dimensions")
	// ErrDuplicateID indicates two tiles share one identity.
	ErrDuplicateID = errors.New("tile: duplicate id")
)

// Tile is one mosaic piece. Treat it as an immutable value.
type Tile struct {
	ID   int
	Face *grid.Grid
}

// Side names one edge of a tile.
type Side int

const (
	Top Side = iota
	Right
	Bottom
	Left
)

// Sides lists the four sides in border order.
var Sides = [4]Side{Top, Right, Bottom, Left}

// Border is one edge of a tile read in canonical direction.
type Border []bool

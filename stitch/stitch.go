// SPDX-License-Identifier: MIT

// Package stitch joins placed tiles into one image. Each tile loses its
// 1-pixel border (the part it shares with its neighbours) and its interior is
// copied into the block implied by its coordinate.
package stitch

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mosaic/grid"
	"github.com/katalvlaran/mosaic/place"
)

var (
	// ErrEmpty indicates a placement with no tiles.
	ErrEmpty = errors.New("stitch: empty placement")
	// ErrGap indicates a coordinate inside the bounding square with no tile.
	ErrGap = errors.New("stitch: gap in placement")
	// ErrTileSize indicates tiles whose interiors differ in size.
	ErrTileSize = errors.New("stitch: tiles differ in size")
)

// Stitch builds the assembled image of side k*(N-2) from a k×k placement.
// Every coordinate in the bounding square must hold a tile.
func Stitch(p *place.Placement) (*grid.Grid, error) {
	if p == nil || p.Len() == 0 {
		return nil, ErrEmpty
	}
	lo, hi := p.Bounds()
	rows, cols := hi.Row-lo.Row+1, hi.Col-lo.Col+1
	if rows != cols {
		return nil, fmt.Errorf("%w: bounding box is %dx%d", ErrGap, rows, cols)
	}

	var (
		img  *grid.Grid
		step int
	)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			at := place.Coord{Row: lo.Row + r, Col: lo.Col + c}
			t, ok := p.At(at)
			if !ok {
				return nil, fmt.Errorf("%w: no tile at %s", ErrGap, at)
			}
			inner, err := t.Trim()
			if err != nil {
				return nil, fmt.Errorf("stitch: tile %d: %w", t.ID, err)
			}
			if img == nil {
				step = inner.Size()
				if img, err = grid.New(rows * step); err != nil {
					return nil, err
				}
			}
			if inner.Size() != step {
				return nil, fmt.Errorf("%w: tile %d interior is %d, want %d", ErrTileSize, t.ID, inner.Size(), step)
			}
			if err := img.Paste(inner, r*step, c*step); err != nil {
				return nil, err
			}
		}
	}

	return img, nil
}

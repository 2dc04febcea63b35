// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Coord, Placement, tile state, options and sentinel errors.

package place

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/mosaic/tile"
)

// Sentinel errors for placement.
var (
	ErrIncomplete  = errors.New("place: incomplete placement")
	ErrCollision   = errors.New("place: two tiles share a coordinate")
	ErrNotSquare   = errors.New("place: placement is not a filled square")
	ErrUnknownTile = errors.New("place: unknown tile")
)

// Coord is a tile position; Row grows downwards, Col to the right.
type Coord struct {
	Row, Col int
}

// Step returns the coordinate one tile away on side s.
func (c Coord) Step(s tile.Side) Coord {
	dy, dx := s.Offset()
	return Coord{Row: c.Row + dy, Col: c.Col + dx}
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// State is a tile's progress through the placer.
type State int

const (
	// Unplaced tiles have no coordinate yet.
	Unplaced State = iota
	// Queued tiles are oriented and positioned and wait for their own visit.
	Queued
	// Placed tiles have been visited; their neighbours have been matched.
	Placed
)

// Placement maps each tile to its coordinate and final orientation.
type Placement struct {
	Coords map[int]Coord     // tile id → coordinate
	Tiles  map[int]tile.Tile // tile id → oriented tile
	Order  []int             // tile ids in placement order

	byCoord map[Coord]int
}

// NewPlacement returns an empty Placement sized for n tiles.
func NewPlacement(n int) *Placement {
	return &Placement{
		Coords:  make(map[int]Coord, n),
		Tiles:   make(map[int]tile.Tile, n),
		Order:   make([]int, 0, n),
		byCoord: make(map[Coord]int, n),
	}
}

// Put records t at c. Returns ErrCollision if c is taken.
func (p *Placement) Put(t tile.Tile, c Coord) error {
	if other, taken := p.byCoord[c]; taken {
		return fmt.Errorf("%w: tiles %d and %d at %s", ErrCollision, other, t.ID, c)
	}
	p.Coords[t.ID] = c
	p.Tiles[t.ID] = t
	p.Order = append(p.Order, t.ID)
	p.byCoord[c] = t.ID

	return nil
}

// Len returns the number of placed tiles.
func (p *Placement) Len() int {
	return len(p.Coords)
}

// At returns the oriented tile at c.
func (p *Placement) At(c Coord) (tile.Tile, bool) {
	id, ok := p.byCoord[c]
	if !ok {
		return tile.Tile{}, false
	}

	return p.Tiles[id], true
}

// Bounds returns the smallest and largest occupied coordinates.
func (p *Placement) Bounds() (lo, hi Coord) {
	first := true
	for _, c := range p.Coords {
		if first {
			lo, hi, first = c, c, false
			continue
		}
		lo.Row, lo.Col = min(lo.Row, c.Row), min(lo.Col, c.Col)
		hi.Row, hi.Col = max(hi.Row, c.Row), max(hi.Col, c.Col)
	}

	return lo, hi
}

// Option configures Place.
type Option func(*Options)

// Options holds placement parameters.
type Options struct {
	Logger *zap.Logger
}

// DefaultOptions returns a no-op logger.
func DefaultOptions() Options {
	return Options{Logger: zap.NewNop()}
}

// WithLogger sets the logger; nil is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

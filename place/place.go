// SPDX-License-Identifier: MIT

package place

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/katalvlaran/mosaic/bfs"
	"github.com/katalvlaran/mosaic/core"
	"github.com/katalvlaran/mosaic/match"
	"github.com/katalvlaran/mosaic/tile"
)

// placer holds the mutable state of one run.
type placer struct {
	tiles  map[int]tile.Tile // unoriented input, by id
	states map[int]State
	out    *Placement
	graph  *core.Graph
	box    *box // nil when the start is not a corner
	log    *zap.Logger
}

// box is the k×k coordinate square the mosaic must fill.
type box struct {
	lo, hi Coord
}

func (b *box) contains(c Coord) bool {
	return c.Row >= b.lo.Row && c.Row <= b.hi.Row && c.Col >= b.lo.Col && c.Col <= b.hi.Col
}

// Place orients and positions every tile, starting from start at (0,0).
// adjacency is the classifier's graph: vertex IDs are decimal tile ids and
// an edge joins every pair of tiles that share a border.
func Place(ctx context.Context, tiles []tile.Tile, adjacency *core.Graph, start int, opts ...Option) (*Placement, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	p := &placer{
		tiles:  make(map[int]tile.Tile, len(tiles)),
		states: make(map[int]State, len(tiles)),
		out:    NewPlacement(len(tiles)),
		graph:  adjacency,
		log:    o.Logger,
	}
	for _, t := range tiles {
		p.tiles[t.ID] = t
		p.states[t.ID] = Unplaced
	}
	first, ok := p.tiles[start]
	if !ok {
		return nil, fmt.Errorf("%w: start tile %d", ErrUnknownTile, start)
	}
	if err := p.out.Put(first, Coord{}); err != nil {
		return nil, err
	}
	p.states[start] = Queued
	p.box = p.boxFrom(first, len(tiles))

	_, err := bfs.BFS(adjacency, strconv.Itoa(start),
		bfs.WithContext(ctx),
		bfs.WithOnVisit(func(id string, _ int) error { return p.visit(id) }),
	)
	if err != nil {
		return nil, err
	}

	if p.count(Placed) != len(tiles) {
		var missing []int
		for _, t := range tiles {
			if p.states[t.ID] != Placed {
				missing = append(missing, t.ID)
			}
		}
		return nil, fmt.Errorf("%w: placed %d of %d tiles, missing %v",
			ErrIncomplete, p.out.Len(), len(tiles), missing)
	}
	if err := checkSquare(p.out); err != nil {
		return nil, err
	}
	lo, hi := p.out.Bounds()
	p.log.Debug("placed tiles",
		zap.Int("tiles", p.out.Len()),
		zap.Int("start", start),
		zap.Stringer("min", lo),
		zap.Stringer("max", hi),
	)

	return p.out, nil
}

// visit places every unplaced neighbour of the placed tile id.
func (p *placer) visit(id string) error {
	refID, err := p.tileID(id)
	if err != nil {
		return err
	}
	p.states[refID] = Placed
	ref := p.out.Tiles[refID]
	at := p.out.Coords[refID]

	nbrs, err := p.graph.NeighborIDs(id)
	if err != nil {
		return err
	}
	for _, nid := range nbrs {
		candID, err := p.tileID(nid)
		if err != nil {
			return err
		}
		if p.states[candID] != Unplaced {
			continue
		}
		ms, err := match.Candidates(ref, p.tiles[candID])
		if err != nil {
			return err
		}
		if len(ms) == 0 {
			return fmt.Errorf("%w: tiles %d and %d are adjacent but do not fit", match.ErrConsistency, refID, candID)
		}
		c := at.Step(ms[0].Side)
		m, oriented, ok := p.choose(candID, ms, c)
		if !ok {
			return fmt.Errorf("%w: no orientation of tile %d fits at %s", match.ErrConsistency, candID, c)
		}
		if err := p.out.Put(oriented, c); err != nil {
			return err
		}
		p.states[candID] = Queued
		p.log.Debug("placed tile",
			zap.Int("tile", candID),
			zap.Int("from", refID),
			zap.Stringer("side", m.Side),
			zap.Stringer("transform", m.Transform),
			zap.Int("candidates", len(ms)),
			zap.Stringer("at", c),
		)
	}

	return nil
}

// choose returns the first candidate orientation that agrees with every
// placed tile around c and, when the box is known, turns exactly the borders
// without a partner towards the outside.
func (p *placer) choose(id int, ms []match.Match, c Coord) (match.Match, tile.Tile, bool) {
	for _, m := range ms {
		t := p.tiles[id].Transform(m.Transform)
		if p.fits(t, c) {
			return m, t, true
		}
	}

	return match.None, tile.Tile{}, false
}

func (p *placer) fits(t tile.Tile, c Coord) bool {
	if p.box != nil && !p.box.contains(c) {
		return false
	}
	for _, s := range tile.Sides {
		nb := c.Step(s)
		if other, ok := p.out.At(nb); ok && !t.Border(s).Equal(other.Border(s.Opposite())) {
			return false
		}
		if p.box != nil && p.free(t.ID, t.Border(s)) == p.box.contains(nb) {
			return false
		}
	}

	return true
}

// free reports whether b matches no border of any graph neighbour of id.
func (p *placer) free(id int, b tile.Border) bool {
	if p.graph == nil {
		return true
	}
	nbrs, err := p.graph.NeighborIDs(strconv.Itoa(id))
	if err != nil {
		return true
	}
	rb := b.Reverse()
	for _, nid := range nbrs {
		n, err := strconv.Atoi(nid)
		if err != nil {
			continue
		}
		other, ok := p.tiles[n]
		if !ok {
			continue
		}
		for _, ob := range other.Borders() {
			if ob.Equal(b) || ob.Equal(rb) {
				return false
			}
		}
	}

	return true
}

// boxFrom derives the k×k square from the start tile's partnerless borders:
// a free top puts the start on the first row, a free bottom on the last, and
// likewise for columns. Returns nil unless n is a square and the start has
// exactly one free border per axis.
func (p *placer) boxFrom(start tile.Tile, n int) *box {
	k := 1
	for (k+1)*(k+1) <= n {
		k++
	}
	if k*k != n || k < 2 || p.graph == nil {
		return nil
	}
	free := func(s tile.Side) bool { return p.free(start.ID, start.Border(s)) }
	rows, ok := span(free(tile.Top), free(tile.Bottom), k)
	if !ok {
		return nil
	}
	cols, ok := span(free(tile.Left), free(tile.Right), k)
	if !ok {
		return nil
	}

	return &box{lo: Coord{Row: rows[0], Col: cols[0]}, hi: Coord{Row: rows[1], Col: cols[1]}}
}

func span(lowFree, highFree bool, k int) ([2]int, bool) {
	switch {
	case lowFree && !highFree:
		return [2]int{0, k - 1}, true
	case highFree && !lowFree:
		return [2]int{-(k - 1), 0}, true
	}

	return [2]int{}, false
}

func (p *placer) count(s State) int {
	n := 0
	for _, st := range p.states {
		if st == s {
			n++
		}
	}

	return n
}

func (p *placer) tileID(vid string) (int, error) {
	id, err := strconv.Atoi(vid)
	if err != nil {
		return 0, fmt.Errorf("%w: vertex %q", ErrUnknownTile, vid)
	}
	if _, ok := p.tiles[id]; !ok {
		return 0, fmt.Errorf("%w: vertex %q", ErrUnknownTile, vid)
	}

	return id, nil
}

// checkSquare verifies the coordinates fill a k×k square with no gaps.
func checkSquare(p *Placement) error {
	lo, hi := p.Bounds()
	h, w := hi.Row-lo.Row+1, hi.Col-lo.Col+1
	if h != w || h*w != p.Len() {
		return fmt.Errorf("%w: %d tiles span %dx%d", ErrNotSquare, p.Len(), h, w)
	}
	for r := lo.Row; r <= hi.Row; r++ {
		for c := lo.Col; c <= hi.Col; c++ {
			if _, ok := p.At(Coord{Row: r, Col: c}); !ok {
				return fmt.Errorf("%w: gap at %s", ErrNotSquare, Coord{Row: r, Col: c})
			}
		}
	}

	return nil
}

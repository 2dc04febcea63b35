// SPDX-License-Identifier: MIT

package classify

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/mosaic/core"
	"github.com/katalvlaran/mosaic/match"
	"github.com/katalvlaran/mosaic/tile"
)

// shared is one tile's row of the comparison pass.
type shared struct {
	total int         // matching borders against all other tiles
	with  map[int]int // other tile index → borders shared
}

// Classify counts matching borders for every tile and validates that the
// tiles form a square mosaic.
func Classify(ctx context.Context, tiles []tile.Tile, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if len(tiles) == 0 {
		return nil, ErrNoTiles
	}

	rows, err := compare(ctx, tiles, o.Workers)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Matches: make(map[int]int, len(tiles)),
		Kinds:   make(map[int]Kind, len(tiles)),
		Graph:   core.NewGraph(),
	}
	for i, t := range tiles {
		n := rows[i].total
		switch {
		case n < 2:
			return nil, fmt.Errorf("%w: %w: tile %d has %d", match.ErrConsistency, ErrTooFewMatches, t.ID, n)
		case n > 4:
			return nil, fmt.Errorf("%w: %w: tile %d has %d", match.ErrConsistency, ErrTooManyMatches, t.ID, n)
		}
		k := Kind(n)
		res.Matches[t.ID] = n
		res.Kinds[t.ID] = k
		switch k {
		case Corner:
			res.Corners = append(res.Corners, t.ID)
		case Edge:
			res.Edges = append(res.Edges, t.ID)
		default:
			res.Interior = append(res.Interior, t.ID)
		}
		if err := addVertex(res.Graph, t.ID, n, k); err != nil {
			return nil, err
		}
	}
	if err := link(res.Graph, tiles, rows); err != nil {
		return nil, err
	}
	sort.Ints(res.Corners)
	sort.Ints(res.Edges)
	sort.Ints(res.Interior)

	if err := res.validate(len(tiles)); err != nil {
		return nil, err
	}
	o.Logger.Debug("classified tiles",
		zap.Int("tiles", len(tiles)),
		zap.Int("side", res.Side),
		zap.Ints("corners", res.Corners),
		zap.Int("edges", len(res.Edges)),
		zap.Int("interior", len(res.Interior)),
		zap.Int("shared_borders", res.Graph.EdgeCount()),
	)

	return res, nil
}

// compare runs the read-only O(n²) border comparison on a bounded pool.
// Each goroutine writes only its own row.
func compare(ctx context.Context, tiles []tile.Tile, workers int) ([]shared, error) {
	rows := make([]shared, len(tiles))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range tiles {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			row := shared{with: make(map[int]int, 4)}
			for j := range tiles {
				if j == i {
					continue
				}
				if s := match.Shares(tiles[i], tiles[j]); s > 0 {
					row.total += s
					row.with[j] = s
				}
			}
			rows[i] = row

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return rows, nil
}

func addVertex(g *core.Graph, id, matches int, k Kind) error {
	vid := strconv.Itoa(id)
	if err := g.AddVertex(vid); err != nil {
		return err
	}
	v, err := g.Vertex(vid)
	if err != nil {
		return err
	}
	v.Metadata[MetaTile] = id
	v.Metadata[MetaMatches] = matches
	v.Metadata[MetaKind] = k

	return nil
}

// link adds one graph edge per shared border. The graph rejects parallel
// edges, so a pair sharing two borders fails here.
func link(g *core.Graph, tiles []tile.Tile, rows []shared) error {
	for i, row := range rows {
		js := make([]int, 0, len(row.with))
		for j := range row.with {
			if j > i {
				js = append(js, j)
			}
		}
		sort.Ints(js)
		for _, j := range js {
			a, b := strconv.Itoa(tiles[i].ID), strconv.Itoa(tiles[j].ID)
			for n := 0; n < row.with[j]; n++ {
				if _, err := g.AddEdge(a, b); err != nil {
					return fmt.Errorf("%w: %w: tiles %s and %s: %v",
						match.ErrConsistency, ErrSharedTwice, a, b, err)
				}
			}
		}
	}

	return nil
}

func (r *Result) validate(n int) error {
	k := isqrt(n)
	if k*k != n {
		return fmt.Errorf("%w: %d tiles is not a square number", ErrNotSquare, n)
	}
	if len(r.Corners) != 4 {
		return fmt.Errorf("%w: found %d (%v)", ErrCornerCount, len(r.Corners), r.Corners)
	}
	if len(r.Edges) != 4*(k-2) || len(r.Interior) != (k-2)*(k-2) {
		return fmt.Errorf("%w: %dx%d mosaic with %d edge and %d interior tiles, want %d and %d",
			ErrNotSquare, k, k, len(r.Edges), len(r.Interior), 4*(k-2), (k-2)*(k-2))
	}
	r.Side = k

	return nil
}

func isqrt(n int) int {
	k := 0
	for (k+1)*(k+1) <= n {
		k++
	}

	return k
}

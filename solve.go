// SPDX-License-Identifier: MIT

package mosaic

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/mosaic/classify"
	"github.com/katalvlaran/mosaic/grid"
	"github.com/katalvlaran/mosaic/place"
	"github.com/katalvlaran/mosaic/scan"
	"github.com/katalvlaran/mosaic/stitch"
	"github.com/katalvlaran/mosaic/tile"
)

// Result is the outcome of one Solve run.
type Result struct {
	RunID     string
	Checksum  int64 // product of the four corner ids
	Roughness int   // set pixels outside every pattern occurrence
	Corners   []int // ascending
	Start     int   // corner placed at (0,0)
	Image     *grid.Grid
	Placement *place.Placement
	Scan      *scan.Result
}

// Solve parses blocks, reassembles the mosaic and scans it for mask.
// Identical input yields an identical Result apart from RunID.
func Solve(ctx context.Context, blocks []string, mask scan.Mask, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	runID := uuid.NewString()
	log := o.Logger.With(zap.String("run", runID))

	tiles, err := tile.ParseAll(blocks)
	if err != nil {
		return nil, err
	}
	if len(tiles) == 0 {
		return nil, classify.ErrNoTiles
	}
	log.Debug("parsed tiles", zap.Int("tiles", len(tiles)), zap.Int("size", tiles[0].Size()))

	copts := []classify.Option{classify.WithLogger(log)}
	if o.Workers > 0 {
		copts = append(copts, classify.WithWorkers(o.Workers))
	}
	cls, err := classify.Classify(ctx, tiles, copts...)
	if err != nil {
		return nil, err
	}

	start, err := startCorner(tiles, cls, o.Start)
	if err != nil {
		return nil, err
	}
	pl, err := place.Place(ctx, tiles, cls.Graph, start, place.WithLogger(log))
	if err != nil {
		return nil, err
	}

	img, err := stitch.Stitch(pl)
	if err != nil {
		return nil, err
	}
	log.Debug("stitched image", zap.Int("size", img.Size()), zap.Int("set", img.Count()))

	sr, err := scan.Scan(img, mask, scan.WithLogger(log))
	if err != nil {
		return nil, err
	}
	log.Debug("found pattern",
		zap.Stringer("orientation", sr.Orientation),
		zap.Int("occurrences", sr.Hits()),
		zap.Int("roughness", sr.Roughness))

	return &Result{
		RunID:     runID,
		Checksum:  cls.Checksum(),
		Roughness: sr.Roughness,
		Corners:   cls.Corners,
		Start:     start,
		Image:     img,
		Placement: pl,
		Scan:      sr,
	}, nil
}

// startCorner returns want if it is a corner, otherwise the first corner in
// input order.
func startCorner(tiles []tile.Tile, cls *classify.Result, want int) (int, error) {
	if want != 0 {
		if cls.Kinds[want] != classify.Corner {
			return 0, fmt.Errorf("%w: start tile %d is not a corner", ErrOptionViolation, want)
		}
		return want, nil
	}
	for _, t := range tiles {
		if cls.Kinds[t.ID] == classify.Corner {
			return t.ID, nil
		}
	}

	return 0, classify.ErrCornerCount
}

package stitch_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mosaic/classify"
	"github.com/katalvlaran/mosaic/core"
	"github.com/katalvlaran/mosaic/grid"
	"github.com/katalvlaran/mosaic/internal/fixture"
	"github.com/katalvlaran/mosaic/place"
	"github.com/katalvlaran/mosaic/stitch"
	"github.com/katalvlaran/mosaic/tile"
)

func placed(t *testing.T, start int) *place.Placement {
	t.Helper()
	tiles, err := tile.ParseAll(fixture.Blocks())
	require.NoError(t, err)
	cls, err := classify.Classify(context.Background(), tiles)
	require.NoError(t, err)
	p, err := place.Place(context.Background(), tiles, cls.Graph, start)
	require.NoError(t, err)

	return p
}

// TestStitch_Fixture assembles the example and compares it with the known
// image in every orientation; the placement fixes one of the eight.
func TestStitch_Fixture(t *testing.T) {
	want := grid.MustFromRows(fixture.Image...)
	for _, start := range fixture.Corners {
		img, err := stitch.Stitch(placed(t, start))
		require.NoError(t, err)
		require.Equal(t, 24, img.Size())
		assert.Equal(t, want.Count(), img.Count())

		found := false
		for _, tr := range grid.Orientations() {
			if img.Apply(tr).Equal(want) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("start %d: image matches no orientation of the known image:\n%s",
				start, cmp.Diff(strings.Join(fixture.Image, "\n"), strings.Join(img.Rows(), "\n")))
		}
	}
}

func TestStitch_StartCorner1951(t *testing.T) {
	img, err := stitch.Stitch(placed(t, 1951))
	require.NoError(t, err)
	// Starting from 1951 as given yields the known image flipped top to bottom.
	got := img.Mirror(grid.MirrorVertical).Rows()
	if diff := cmp.Diff(fixture.Image, got); diff != "" {
		t.Errorf("image mismatch (-want +got):\n%s", diff)
	}
}

func TestStitch_Errors(t *testing.T) {
	_, err := stitch.Stitch(nil)
	assert.ErrorIs(t, err, stitch.ErrEmpty)

	// Two tiles side by side: a 1×2 box is not square.
	tiles, err := tile.ParseAll(fixture.Blocks())
	require.NoError(t, err)
	g := core.NewGraph()
	_, err = g.AddEdge("1951", "2311")
	require.NoError(t, err)
	pair := []tile.Tile{}
	for _, tl := range tiles {
		if tl.ID == 1951 || tl.ID == 2311 {
			pair = append(pair, tl)
		}
	}
	p, err := place.Place(context.Background(), pair, g, 1951)
	require.ErrorIs(t, err, place.ErrNotSquare)
	assert.Nil(t, p)

	// 2×2 box with one corner missing.
	gap := place.NewPlacement(3)
	require.NoError(t, gap.Put(pair[0], place.Coord{Row: 0, Col: 0}))
	require.NoError(t, gap.Put(pair[1], place.Coord{Row: 0, Col: 1}))
	require.NoError(t, gap.Put(tiles[2], place.Coord{Row: 1, Col: 1}))
	_, err = stitch.Stitch(gap)
	assert.ErrorIs(t, err, stitch.ErrGap)

	// One 3×3 tile among 10×10 tiles.
	small := tile.Tile{ID: 7, Face: grid.MustFromRows("###", "#.#", "###")}
	mixed := place.NewPlacement(4)
	require.NoError(t, mixed.Put(tiles[0], place.Coord{Row: 0, Col: 0}))
	require.NoError(t, mixed.Put(tiles[1], place.Coord{Row: 0, Col: 1}))
	require.NoError(t, mixed.Put(tiles[2], place.Coord{Row: 1, Col: 0}))
	require.NoError(t, mixed.Put(small, place.Coord{Row: 1, Col: 1}))
	_, err = stitch.Stitch(mixed)
	assert.ErrorIs(t, err, stitch.ErrTileSize)
}

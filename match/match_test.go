package match_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mosaic/grid"
	"github.com/katalvlaran/mosaic/internal/fixture"
	"github.com/katalvlaran/mosaic/match"
	"github.com/katalvlaran/mosaic/tile"
)

func fixtureTiles(t *testing.T) map[int]tile.Tile {
	t.Helper()
	tiles, err := tile.ParseAll(fixture.Blocks())
	require.NoError(t, err)
	out := make(map[int]tile.Tile, len(tiles))
	for _, tl := range tiles {
		out[tl.ID] = tl
	}

	return out
}

func TestTryMatch_Known(t *testing.T) {
	tiles := fixtureTiles(t)

	m, err := match.TryMatch(tiles[1951], tiles[2311])
	require.NoError(t, err)
	assert.True(t, m.Found)
	assert.Equal(t, tile.Right, m.Side)
	assert.Equal(t, grid.Identity, m.Transform.Canonical())
	assert.Equal(t, "right(r0)", m.String())

	// 1951 and 1171 sit in opposite corners.
	m, err = match.TryMatch(tiles[1951], tiles[1171])
	require.NoError(t, err)
	assert.Equal(t, match.None, m)
	assert.Equal(t, "none", m.String())
}

// TestTryMatch_Symmetric checks every matching pair both ways: once the
// candidate is turned, the pair meets on complementary sides with no further
// turn, and the two raw transforms cancel out.
func TestTryMatch_Symmetric(t *testing.T) {
	tiles := fixtureTiles(t)
	pairs := 0
	for _, a := range tiles {
		for _, b := range tiles {
			if a.Same(b) {
				continue
			}
			ab, err := match.TryMatch(a, b)
			require.NoError(t, err)
			if !ab.Found {
				continue
			}
			pairs++

			ba, err := match.TryMatch(b, a)
			require.NoError(t, err)
			require.True(t, ba.Found, "%d matches %d but not the reverse", a.ID, b.ID)
			assert.Equal(t, grid.Identity, ba.Transform.Then(ab.Transform), "%d/%d", a.ID, b.ID)

			oriented := b.Transform(ab.Transform)
			fwd, err := match.TryMatch(a, oriented)
			require.NoError(t, err)
			assert.Equal(t, ab.Side, fwd.Side)
			assert.Equal(t, grid.Identity, fwd.Transform.Canonical())

			back, err := match.TryMatch(oriented, a)
			require.NoError(t, err)
			assert.Equal(t, ab.Side.Opposite(), back.Side)
			assert.Equal(t, grid.Identity, back.Transform.Canonical())
		}
	}
	// 12 shared edges in a 3×3 mosaic, seen from both ends.
	assert.Equal(t, 24, pairs)
}

func TestTryMatch_Consistency(t *testing.T) {
	// Solid tiles line up on every side at once.
	solid := grid.MustFromRows("###", "#.#", "###")
	a := tile.Tile{ID: 1, Face: solid}
	b := tile.Tile{ID: 2, Face: solid}

	m, err := match.TryMatch(a, b)
	assert.ErrorIs(t, err, match.ErrConsistency)
	assert.False(t, m.Found)
}

func TestCandidates_PalindromicBorder(t *testing.T) {
	l := fixture.Generate(3, fixture.Seam{Row: 0, Col: 0})
	ref := tile.Tile{ID: l.IDs[0][0], Face: l.Faces[0][0]}
	flipped := tile.Tile{ID: l.IDs[0][1], Face: l.Faces[0][1].Mirror(grid.MirrorVertical)}

	ms, err := match.Candidates(ref, flipped)
	require.NoError(t, err)
	require.Len(t, ms, 2)
	assert.Equal(t, tile.Right, ms[0].Side)
	assert.Equal(t, tile.Right, ms[1].Side)
	assert.True(t, ms[0].Transform.Equivalent(grid.Identity))
	assert.True(t, ms[1].Transform.Equivalent(grid.Transform{Mirror: grid.MirrorVertical}))

	m, err := match.TryMatch(ref, flipped)
	require.NoError(t, err)
	assert.Equal(t, ms[0], m)

	// An ordinary seam has exactly one orientation.
	below := tile.Tile{ID: l.IDs[1][0], Face: l.Faces[1][0]}
	ms, err = match.Candidates(ref, below)
	require.NoError(t, err)
	require.Len(t, ms, 1)
	assert.Equal(t, tile.Bottom, ms[0].Side)
	assert.True(t, ms[0].Transform.Equivalent(grid.Identity))
}

func TestShares(t *testing.T) {
	tiles := fixtureTiles(t)
	assert.Equal(t, 1, match.Shares(tiles[1951], tiles[2311]))
	assert.Equal(t, 0, match.Shares(tiles[1951], tiles[1171]))

	solid := tile.Tile{ID: 1, Face: grid.MustFromRows("###", "#.#", "###")}
	assert.Equal(t, 16, match.Shares(solid, solid))
}

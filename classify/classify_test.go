package classify_test

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/mosaic/classify"
	"github.com/katalvlaran/mosaic/grid"
	"github.com/katalvlaran/mosaic/internal/fixture"
	"github.com/katalvlaran/mosaic/match"
	"github.com/katalvlaran/mosaic/tile"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func fixtureTiles(t *testing.T) []tile.Tile {
	t.Helper()
	tiles, err := tile.ParseAll(fixture.Blocks())
	require.NoError(t, err)

	return tiles
}

func TestClassify_Fixture(t *testing.T) {
	for _, workers := range []int{1, 3, 16} {
		t.Run("workers="+strconv.Itoa(workers), func(t *testing.T) {
			res, err := classify.Classify(context.Background(), fixtureTiles(t), classify.WithWorkers(workers))
			require.NoError(t, err)

			assert.Equal(t, 3, res.Side)
			assert.Equal(t, fixture.Corners, res.Corners)
			assert.Equal(t, []int{1489, 2311, 2473, 2729}, res.Edges)
			assert.Equal(t, []int{1427}, res.Interior)
			assert.Equal(t, fixture.Checksum, res.Checksum())
			assert.Equal(t, classify.Interior, res.Kinds[1427])
			assert.Equal(t, 2, res.Matches[1951])
		})
	}
}

// Larger generated mosaics check the role counts 4, 4(k-2) and (k-2)².
func TestClassify_Generated(t *testing.T) {
	for _, k := range []int{4, 5} {
		t.Run("k="+strconv.Itoa(k), func(t *testing.T) {
			l := fixture.Generate(k)
			tiles, err := tile.ParseAll(l.Blocks(l.Scrambled))
			require.NoError(t, err)
			res, err := classify.Classify(context.Background(), tiles, classify.WithWorkers(2))
			require.NoError(t, err)

			assert.Equal(t, k, res.Side)
			corners := []int{l.IDs[0][0], l.IDs[0][k-1], l.IDs[k-1][0], l.IDs[k-1][k-1]}
			assert.Equal(t, corners, res.Corners)
			assert.Len(t, res.Edges, 4*(k-2))
			assert.Len(t, res.Interior, (k-2)*(k-2))
			assert.Equal(t, classify.Edge, res.Kinds[l.IDs[0][1]])
			assert.Equal(t, classify.Interior, res.Kinds[l.IDs[1][1]])
			assert.Equal(t, 2*k*(k-1), res.Graph.EdgeCount())

			want := int64(1)
			for _, c := range corners {
				want *= int64(c)
			}
			assert.Equal(t, want, res.Checksum())
		})
	}
}

func TestClassify_GraphMirrorsMatches(t *testing.T) {
	res, err := classify.Classify(context.Background(), fixtureTiles(t))
	require.NoError(t, err)

	g := res.Graph
	assert.Equal(t, 9, g.VertexCount())
	assert.Equal(t, 12, g.EdgeCount(), "a 3×3 mosaic has 12 shared edges")
	for id, n := range res.Matches {
		d, err := g.Degree(strconv.Itoa(id))
		require.NoError(t, err)
		assert.Equal(t, n, d, "tile %d", id)

		v, err := g.Vertex(strconv.Itoa(id))
		require.NoError(t, err)
		assert.Equal(t, id, v.Metadata[classify.MetaTile])
		assert.Equal(t, res.Kinds[id], v.Metadata[classify.MetaKind])
	}
	assert.True(t, g.HasEdge("1951", "2311"))
	assert.False(t, g.HasEdge("1951", "1171"))
}

func TestClassify_Logs(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	_, err := classify.Classify(context.Background(), fixtureTiles(t), classify.WithLogger(zap.New(core)))
	require.NoError(t, err)

	entries := logs.FilterMessage("classified tiles").All()
	require.Len(t, entries, 1)
	assert.EqualValues(t, 3, entries[0].ContextMap()["side"])
}

func TestClassify_Errors(t *testing.T) {
	all := fixtureTiles(t)
	byID := map[int]tile.Tile{}
	for _, tl := range all {
		byID[tl.ID] = tl
	}
	solid := grid.MustFromRows("###", "#.#", "###")

	cases := []struct {
		name  string
		tiles []tile.Tile
		opts  []classify.Option
		errs  []error
	}{
		{"Empty", nil, nil, []error{classify.ErrNoTiles}},
		{"BadWorkers", all, []classify.Option{classify.WithWorkers(0)}, []error{classify.ErrOptionViolation}},
		{"Lonely", []tile.Tile{byID[1951]}, nil, []error{classify.ErrTooFewMatches, match.ErrConsistency}},
		{
			"TooMany",
			[]tile.Tile{{ID: 1, Face: solid}, {ID: 2, Face: solid}, {ID: 3, Face: solid}},
			nil,
			[]error{classify.ErrTooManyMatches, match.ErrConsistency},
		},
		{
			"SharedTwice",
			[]tile.Tile{
				{ID: 1, Face: grid.MustFromRows("##.", "#..", "...")},
				{ID: 2, Face: grid.MustFromRows("..#", "..#", "##.")},
			},
			nil,
			[]error{classify.ErrSharedTwice, match.ErrConsistency},
		},
		{
			// top two rows of the 3×3 example: a 2×3 rectangle
			"Rectangle",
			[]tile.Tile{byID[1951], byID[2311], byID[3079], byID[2729], byID[1427], byID[2473]},
			nil,
			[]error{classify.ErrNotSquare},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := classify.Classify(context.Background(), tc.tiles, tc.opts...)
			assert.Nil(t, res)
			for _, want := range tc.errs {
				assert.ErrorIs(t, err, want)
			}
		})
	}
}

func TestClassify_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := classify.Classify(ctx, fixtureTiles(t))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "corner", classify.Corner.String())
	assert.Equal(t, "kind(9)", classify.Kind(9).String())
}

package grid_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mosaic/grid"
)

// asym is a 3×3 grid with no rotational or mirror symmetry.
func asym() *grid.Grid {
	return grid.MustFromRows(
		"##.",
		"..#",
		"...",
	)
}

//----------------------------------------------------------------------------//
// Construction
//----------------------------------------------------------------------------//

func TestFromRows_Errors(t *testing.T) {
	cases := []struct {
		name string
		rows []string
		err  error
	}{
		{"NoRows", nil, grid.ErrEmptyGrid},
		{"EmptyRow", []string{""}, grid.ErrEmptyGrid},
		{"Ragged", []string{"#.", "#"}, grid.ErrNotSquare},
		{"Wide", []string{"#..", "..."}, grid.ErrNotSquare},
		{"BadPixel", []string{"#.", ".x"}, grid.ErrBadPixel},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.FromRows(tc.rows)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestFromRows_CRLF(t *testing.T) {
	g, err := grid.FromRows([]string{"#.\r", ".#\r"})
	require.NoError(t, err)
	assert.Equal(t, []string{"#.", ".#"}, g.Rows())
}

func TestNew(t *testing.T) {
	_, err := grid.New(0)
	assert.ErrorIs(t, err, grid.ErrEmptyGrid)

	g, err := grid.New(4)
	require.NoError(t, err)
	assert.Equal(t, 4, g.Size())
	assert.Zero(t, g.Count())
}

func TestQueries(t *testing.T) {
	g := asym()
	assert.True(t, g.At(0, 0))
	assert.False(t, g.At(0, 2))
	assert.False(t, g.At(-1, 0), "out of bounds reads clear")
	assert.Equal(t, []bool{true, true, false}, g.Row(0))
	assert.Equal(t, []bool{false, true, false}, g.Column(2))
	assert.Equal(t, 3, g.Count())
	assert.Equal(t, "##.\n..#\n...\n", g.String())
}

//----------------------------------------------------------------------------//
// Transforms
//----------------------------------------------------------------------------//

func TestRotate90_Clockwise(t *testing.T) {
	got := asym().Rotate(grid.Rotate90).Rows()
	want := []string{
		"..#",
		"..#",
		".#.",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Rotate90 mismatch (-want +got):\n%s", diff)
	}
}

func TestRotate_ClosesAfterFour(t *testing.T) {
	g := asym()
	r := g
	for i := 0; i < 4; i++ {
		r = r.Rotate(grid.Rotate90)
	}
	assert.True(t, g.Equal(r))
	assert.True(t, g.Rotate(grid.Rotate90).Rotate(grid.Rotate270).Equal(g))
	assert.True(t, g.Rotate(grid.Rotate180).Equal(g.Rotate(grid.Rotate90).Rotate(grid.Rotate90)))
}

func TestMirror_Involution(t *testing.T) {
	g := asym()
	for _, m := range []grid.Mirror{grid.MirrorNone, grid.MirrorHorizontal, grid.MirrorVertical} {
		assert.True(t, g.Mirror(m).Mirror(m).Equal(g), "mirror %v twice", m)
	}
	assert.Equal(t, []string{".##", "#..", "..."}, g.Mirror(grid.MirrorHorizontal).Rows())
	assert.Equal(t, []string{"...", "..#", "##."}, g.Mirror(grid.MirrorVertical).Rows())
}

func TestApply_RotateThenMirror(t *testing.T) {
	g := asym()
	tr := grid.Transform{Rotation: grid.Rotate90, Mirror: grid.MirrorHorizontal}
	assert.True(t, g.Apply(tr).Equal(g.Rotate(grid.Rotate90).Mirror(grid.MirrorHorizontal)))
	assert.False(t, g.Apply(tr).Equal(g.Mirror(grid.MirrorHorizontal).Rotate(grid.Rotate90)),
		"mirror-then-rotate must differ for an asymmetric grid")
	assert.True(t, g.Apply(grid.Identity).Equal(g))
}

func TestApply_DoesNotAlias(t *testing.T) {
	g := asym()
	before := g.String()
	out := g.Apply(grid.Identity)
	out.Set(2, 2, true)
	assert.Equal(t, before, g.String())
}

func TestTrim(t *testing.T) {
	g := grid.MustFromRows(
		"####",
		"#.##",
		"##.#",
		"####",
	)
	in, err := g.Trim()
	require.NoError(t, err)
	assert.Equal(t, []string{".#", "#."}, in.Rows())

	_, err = grid.MustFromRows("#.", ".#").Trim()
	assert.ErrorIs(t, err, grid.ErrEmptyGrid)
}

func TestPaste(t *testing.T) {
	dst, err := grid.New(4)
	require.NoError(t, err)
	require.NoError(t, dst.Paste(grid.MustFromRows("#.", ".#"), 2, 2))
	assert.Equal(t, []string{"....", "....", "..#.", "...#"}, dst.Rows())
	assert.ErrorIs(t, dst.Paste(grid.MustFromRows("#.", ".#"), 3, 0), grid.ErrOutOfBounds)
}

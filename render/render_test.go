package render_test

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/tiff"

	"github.com/katalvlaran/mosaic/grid"
	"github.com/katalvlaran/mosaic/internal/fixture"
	"github.com/katalvlaran/mosaic/render"
	"github.com/katalvlaran/mosaic/scan"
)

func scanned(t *testing.T) *scan.Result {
	t.Helper()
	res, err := scan.Scan(grid.MustFromRows(fixture.Image...), scan.SeaMonster)
	require.NoError(t, err)

	return res
}

func TestImage(t *testing.T) {
	res := scanned(t)
	pal := render.DefaultPalette
	img, err := render.Image(res, 3, pal)
	require.NoError(t, err)
	assert.Equal(t, 72, img.Bounds().Dx())
	assert.Equal(t, 72, img.Bounds().Dy())

	counts := map[color.RGBA]int{}
	for y := 0; y < 72; y += 3 {
		for x := 0; x < 72; x += 3 {
			c := img.RGBAAt(x, y)
			counts[c]++
			assert.Equal(t, c, img.RGBAAt(x+2, y+2), "cell (%d,%d) not uniform", y/3, x/3)
		}
	}
	assert.Equal(t, 30, counts[pal.Pattern])
	assert.Equal(t, fixture.Roughness, counts[pal.Set])

	// The first monster's head sits at (2,2)+(0,18).
	assert.Equal(t, pal.Pattern, img.RGBAAt(20*3, 2*3))
}

func TestImage_Errors(t *testing.T) {
	_, err := render.Image(nil, 1, render.DefaultPalette)
	assert.ErrorIs(t, err, render.ErrNoResult)
	_, err = render.Image(scanned(t), 0, render.DefaultPalette)
	assert.ErrorIs(t, err, render.ErrScale)
}

func TestEncode(t *testing.T) {
	res := scanned(t)

	var buf bytes.Buffer
	require.NoError(t, render.Encode(&buf, res, 2, render.PNG))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 48, img.Bounds().Dx())

	buf.Reset()
	require.NoError(t, render.Encode(&buf, res, 1, render.TIFF))
	img, err = tiff.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 24, img.Bounds().Dy())

	assert.ErrorIs(t, render.Encode(&buf, res, 1, "gif"), render.ErrFormat)
}

func TestFormatFor(t *testing.T) {
	f, err := render.FormatFor("out/monsters.PNG")
	require.NoError(t, err)
	assert.Equal(t, render.PNG, f)
	f, err = render.FormatFor("a.tif")
	require.NoError(t, err)
	assert.Equal(t, render.TIFF, f)
	_, err = render.FormatFor("a.jpg")
	assert.ErrorIs(t, err, render.ErrFormat)
}

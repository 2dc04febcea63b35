// Package render draws a scanned mosaic as a raster image: clear water,
// set pixels, and pattern pixels each in their own colour, scaled up with
// nearest-neighbour sampling.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"

	"github.com/katalvlaran/mosaic/scan"
)

// Sentinel errors.
var (
	ErrNoResult = errors.New("render: nil scan result")
	ErrScale    = errors.New("render: scale must be >= 1")
	ErrFormat   = errors.New("render: unsupported image format")
)

// Format is an output encoding.
type Format string

const (
	PNG  Format = "png"
	TIFF Format = "tiff"
)

// FormatFor picks the format from a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return PNG, nil
	case ".tif", ".tiff":
		return TIFF, nil
	}

	return "", fmt.Errorf("%w: %q", ErrFormat, filepath.Ext(path))
}

// Palette holds the three pixel colours.
type Palette struct {
	Clear   color.RGBA
	Set     color.RGBA
	Pattern color.RGBA
}

func hsv(h, s, v float64) color.RGBA {
	r, g, b := colorful.Hsv(h, s, v).RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// DefaultPalette is deep water, pale foam and a green monster.
var DefaultPalette = Palette{
	Clear:   hsv(215, 0.80, 0.35),
	Set:     hsv(195, 0.25, 0.95),
	Pattern: hsv(120, 0.85, 0.75),
}

// Image returns res.Image drawn at scale pixels per cell.
func Image(res *scan.Result, scale int, pal Palette) (*image.RGBA, error) {
	if res == nil || res.Image == nil {
		return nil, ErrNoResult
	}
	if scale < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrScale, scale)
	}

	n := res.Image.Size()
	src := image.NewRGBA(image.Rect(0, 0, n, n))
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			px := pal.Clear
			if res.Image.At(r, c) {
				px = pal.Set
			}
			src.SetRGBA(c, r, px)
		}
	}
	for _, h := range res.Occurrences {
		for _, o := range res.Mask.Offsets {
			src.SetRGBA(h.Col+o.Col, h.Row+o.Row, pal.Pattern)
		}
	}
	if scale == 1 {
		return src, nil
	}

	dst := image.NewRGBA(image.Rect(0, 0, n*scale, n*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	return dst, nil
}

// Encode draws res with DefaultPalette and writes it in format f.
func Encode(w io.Writer, res *scan.Result, scale int, f Format) error {
	img, err := Image(res, scale, DefaultPalette)
	if err != nil {
		return err
	}
	switch f {
	case PNG:
		return png.Encode(w, img)
	case TIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	}

	return fmt.Errorf("%w: %q", ErrFormat, f)
}

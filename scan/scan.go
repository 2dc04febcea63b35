// SPDX-License-Identifier: MIT

package scan

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/mosaic/grid"
)

// Sentinel errors for pattern scanning.
var (
	ErrEmptyMask       = errors.New("scan: mask has no required pixels")
	ErrPatternNotFound = errors.New("scan: pattern not found in any orientation")
	ErrOverlap         = errors.New("scan: pattern occurrences overlap")
	ErrOptionViolation = errors.New("scan: invalid option supplied")
)

// Result describes the orientation in which the pattern was found.
type Result struct {
	Orientation grid.Transform // applied to the input image
	Image       *grid.Grid     // the input image in that orientation
	Occurrences []Offset       // window top-left corners in Image
	Mask        Mask
	SetPixels   int // set pixels in the image
	Roughness   int // SetPixels minus the pixels covered by occurrences
}

// Hits returns the number of occurrences.
func (r *Result) Hits() int {
	return len(r.Occurrences)
}

// Option configures Scan.
type Option func(*Options)

// Options holds scan parameters.
type Options struct {
	// Orientations are tried in order; the first with a hit wins.
	Orientations []grid.Transform
	Logger       *zap.Logger

	err error
}

// DefaultOptions searches all eight orientations with a no-op logger.
func DefaultOptions() Options {
	return Options{
		Orientations: grid.Orientations(),
		Logger:       zap.NewNop(),
	}
}

// WithOrientations restricts the search, e.g. to rotations only.
func WithOrientations(ts ...grid.Transform) Option {
	return func(o *Options) {
		if len(ts) == 0 {
			o.err = fmt.Errorf("%w: no orientations", ErrOptionViolation)
			return
		}
		o.Orientations = ts
	}
}

// WithLogger sets the logger; nil is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Find returns the top-left corner of every window of img that matches m,
// in row-major order. img is searched as given.
// Complexity: O(N² × |m|).
func Find(img *grid.Grid, m Mask) []Offset {
	var out []Offset
	n := img.Size()
	for r := 0; r+m.Height <= n; r++ {
		for c := 0; c+m.Width <= n; c++ {
			if m.Matches(img, r, c) {
				out = append(out, Offset{Row: r, Col: c})
			}
		}
	}

	return out
}

// Count returns the number of occurrences of m in img as given.
func Count(img *grid.Grid, m Mask) int {
	return len(Find(img, m))
}

// Scan searches img for m in each configured orientation and returns the
// first orientation with at least one occurrence.
func Scan(img *grid.Grid, m Mask, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if m.Count() == 0 {
		return nil, ErrEmptyMask
	}

	for _, t := range o.Orientations {
		oriented := img.Apply(t)
		hits := Find(oriented, m)
		o.Logger.Debug("scanned orientation", zap.Stringer("orientation", t), zap.Int("hits", len(hits)))
		if len(hits) == 0 {
			continue
		}
		if err := checkOverlap(oriented, m, hits); err != nil {
			return nil, err
		}
		set := oriented.Count()
		return &Result{
			Orientation: t,
			Image:       oriented,
			Occurrences: hits,
			Mask:        m,
			SetPixels:   set,
			Roughness:   set - len(hits)*m.Count(),
		}, nil
	}

	return nil, fmt.Errorf("%w: tried %d orientations of a %dx%d image",
		ErrPatternNotFound, len(o.Orientations), img.Size(), img.Size())
}

func checkOverlap(img *grid.Grid, m Mask, hits []Offset) error {
	covered := make(map[Offset]int, len(hits)*m.Count())
	for i, h := range hits {
		for _, off := range m.Offsets {
			p := Offset{Row: h.Row + off.Row, Col: h.Col + off.Col}
			if j, dup := covered[p]; dup {
				return fmt.Errorf("%w: occurrences at (%d,%d) and (%d,%d) share pixel (%d,%d)",
					ErrOverlap, hits[j].Row, hits[j].Col, h.Row, h.Col, p.Row, p.Col)
			}
			covered[p] = i
		}
	}

	return nil
}

// Highlight renders the oriented image with pattern pixels drawn as 'O'.
func Highlight(r *Result) string {
	rows := r.Image.Rows()
	buf := make([][]byte, len(rows))
	for i, row := range rows {
		buf[i] = []byte(row)
	}
	for _, h := range r.Occurrences {
		for _, off := range r.Mask.Offsets {
			buf[h.Row+off.Row][h.Col+off.Col] = 'O'
		}
	}
	var b strings.Builder
	for _, row := range buf {
		b.Write(row)
		b.WriteByte('\n')
	}

	return b.String()
}

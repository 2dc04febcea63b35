// SPDX-License-Identifier: MIT
//
// File: grid.go
// Role: Grid construction, queries and pure geometric transforms.

package grid

import (
	"fmt"
	"strings"
)

// New returns an all-clear size×size grid.
// Returns ErrEmptyGrid when size < 1.
func New(size int) (*Grid, error) {
	if size < 1 {
		return nil, ErrEmptyGrid
	}

	return &Grid{size: size, cells: make([]bool, size*size)}, nil
}

// FromRows builds a Grid from its text rows ('.' clear, '#' set).
// Trailing carriage returns are ignored so CRLF input parses unchanged.
// Returns ErrEmptyGrid, ErrNotSquare or ErrBadPixel (wrapped with the
// offending position).
// Complexity: O(N²).
func FromRows(rows []string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyGrid
	}
	n := len(rows)
	g := &Grid{size: n, cells: make([]bool, n*n)}
	for r, line := range rows {
		line = strings.TrimRight(line, "\r")
		if len(line) == 0 {
			return nil, ErrEmptyGrid
		}
		if len(line) != n {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrNotSquare, r, len(line), n)
		}
		for c := 0; c < n; c++ {
			switch line[c] {
			case SetPixel:
				g.cells[g.index(r, c)] = true
			case ClearPixel:
			default:
				return nil, fmt.Errorf("%w: %q at row %d, col %d", ErrBadPixel, line[c], r, c)
			}
		}
	}

	return g, nil
}

// MustFromRows is FromRows for fixed literals; it panics on error.
func MustFromRows(rows ...string) *Grid {
	g, err := FromRows(rows)
	if err != nil {
		panic(err)
	}

	return g
}

// index maps (r,c) to a row-major index: r*size + c.
func (g *Grid) index(r, c int) int {
	return r*g.size + c
}

// Size returns the side length N.
func (g *Grid) Size() int {
	return g.size
}

// InBounds reports whether (r,c) lies within the grid.
func (g *Grid) InBounds(r, c int) bool {
	return r >= 0 && r < g.size && c >= 0 && c < g.size
}

// At reports whether the pixel at (r,c) is set.
// Out-of-bounds positions read as clear.
func (g *Grid) At(r, c int) bool {
	if !g.InBounds(r, c) {
		return false
	}

	return g.cells[g.index(r, c)]
}

// Set writes a pixel. It is meant for builders that own a freshly
// allocated grid (New, Paste targets); shared grids are never mutated.
func (g *Grid) Set(r, c int, v bool) {
	if g.InBounds(r, c) {
		g.cells[g.index(r, c)] = v
	}
}

// Row returns a copy of row r, left to right.
func (g *Grid) Row(r int) []bool {
	out := make([]bool, g.size)
	copy(out, g.cells[g.index(r, 0):g.index(r, 0)+g.size])

	return out
}

// Column returns a copy of column c, top to bottom.
func (g *Grid) Column(c int) []bool {
	out := make([]bool, g.size)
	for r := 0; r < g.size; r++ {
		out[r] = g.cells[g.index(r, c)]
	}

	return out
}

// Count returns the number of set pixels.
func (g *Grid) Count() int {
	n := 0
	for _, v := range g.cells {
		if v {
			n++
		}
	}

	return n
}

// Clone returns a deep copy.
func (g *Grid) Clone() *Grid {
	cells := make([]bool, len(g.cells))
	copy(cells, g.cells)

	return &Grid{size: g.size, cells: cells}
}

// Equal reports whether both grids have the same size and pixels.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.size != o.size {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != o.cells[i] {
			return false
		}
	}

	return true
}

// Rows renders the grid as text rows.
func (g *Grid) Rows() []string {
	rows := make([]string, g.size)
	buf := make([]byte, g.size)
	for r := 0; r < g.size; r++ {
		for c := 0; c < g.size; c++ {
			buf[c] = ClearPixel
			if g.cells[g.index(r, c)] {
				buf[c] = SetPixel
			}
		}
		rows[r] = string(buf)
	}

	return rows
}

// String renders the grid as newline-terminated text rows.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.size * (g.size + 1))
	for _, row := range g.Rows() {
		b.WriteString(row)
		b.WriteByte('\n')
	}

	return b.String()
}

// Rotate returns a copy turned clockwise by rot.
// Complexity: O(N²).
func (g *Grid) Rotate(rot Rotation) *Grid {
	n := g.size
	out := &Grid{size: n, cells: make([]bool, n*n)}
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			var sr, sc int
			switch rot.normalize() {
			case Rotate90:
				sr, sc = n-1-c, r
			case Rotate180:
				sr, sc = n-1-r, n-1-c
			case Rotate270:
				sr, sc = c, n-1-r
			default:
				sr, sc = r, c
			}
			out.cells[out.index(r, c)] = g.cells[g.index(sr, sc)]
		}
	}

	return out
}

// Mirror returns a reflected copy.
// Complexity: O(N²).
func (g *Grid) Mirror(m Mirror) *Grid {
	n := g.size
	out := &Grid{size: n, cells: make([]bool, n*n)}
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			sr, sc := r, c
			switch m {
			case MirrorHorizontal:
				sc = n - 1 - c
			case MirrorVertical:
				sr = n - 1 - r
			}
			out.cells[out.index(r, c)] = g.cells[g.index(sr, sc)]
		}
	}

	return out
}

// Apply returns a copy rotated by t.Rotation and then mirrored by t.Mirror.
func (g *Grid) Apply(t Transform) *Grid {
	return g.Rotate(t.Rotation).Mirror(t.Mirror)
}

// Trim drops the outermost ring of pixels and returns the (N-2)×(N-2) interior.
// Returns ErrEmptyGrid when the interior would be empty (N < 3).
func (g *Grid) Trim() (*Grid, error) {
	n := g.size - 2
	if n < 1 {
		return nil, fmt.Errorf("%w: cannot trim a %dx%d grid", ErrEmptyGrid, g.size, g.size)
	}
	out := &Grid{size: n, cells: make([]bool, n*n)}
	for r := 0; r < n; r++ {
		copy(out.cells[out.index(r, 0):out.index(r, 0)+n], g.cells[g.index(r+1, 1):g.index(r+1, 1)+n])
	}

	return out, nil
}

// Paste copies src into g with its top-left corner at (row, col).
// g must be a grid the caller owns. Returns ErrOutOfBounds if src does not fit.
func (g *Grid) Paste(src *Grid, row, col int) error {
	if row < 0 || col < 0 || row+src.size > g.size || col+src.size > g.size {
		return fmt.Errorf("%w: %dx%d block at (%d,%d) in %dx%d grid",
			ErrOutOfBounds, src.size, src.size, row, col, g.size, g.size)
	}
	for r := 0; r < src.size; r++ {
		copy(g.cells[g.index(row+r, col):g.index(row+r, col)+src.size], src.cells[src.index(r, 0):src.index(r, 0)+src.size])
	}

	return nil
}

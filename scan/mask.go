// SPDX-License-Identifier: MIT

package scan

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/mosaic/grid"
)

// Offset is a required pixel relative to a window's top-left corner.
type Offset struct {
	Row, Col int
}

// Mask is a fixed-shape pattern: the offsets that must be set inside a
// Height×Width window.
type Mask struct {
	Offsets []Offset
	Width   int
	Height  int
}

// SeaMonsterRows is the default pattern.
var SeaMonsterRows = []string{
	"                  # ",
	"#    ##    ##    ###",
	" #  #  #  #  #  #   ",
}

// SeaMonster is the 20×3 default mask with 15 required pixels.
var SeaMonster = MustParseMask(SeaMonsterRows)

// ParseMask reads a mask from ASCII rows. '#' is required; anything else is
// ignored. Blank leading and trailing rows are dropped; the width is the
// longest row with trailing blanks removed.
func ParseMask(rows []string) (Mask, error) {
	for len(rows) > 0 && strings.TrimSpace(rows[0]) == "" {
		rows = rows[1:]
	}
	for len(rows) > 0 && strings.TrimSpace(rows[len(rows)-1]) == "" {
		rows = rows[:len(rows)-1]
	}

	var m Mask
	for r, line := range rows {
		line = strings.TrimRight(line, " \t\r")
		for c := 0; c < len(line); c++ {
			if line[c] == grid.SetPixel {
				m.Offsets = append(m.Offsets, Offset{Row: r, Col: c})
				m.Width = max(m.Width, c+1)
			}
		}
	}
	if len(m.Offsets) == 0 {
		return Mask{}, ErrEmptyMask
	}
	m.Height = m.Offsets[len(m.Offsets)-1].Row + 1

	return m, nil
}

// MustParseMask is ParseMask for package-level literals; it panics on error.
func MustParseMask(rows []string) Mask {
	m, err := ParseMask(rows)
	if err != nil {
		panic(err)
	}

	return m
}

// Count returns the number of required pixels.
func (m Mask) Count() int {
	return len(m.Offsets)
}

// Matches reports whether every required pixel is set with the window's
// top-left corner at (row, col).
func (m Mask) Matches(img *grid.Grid, row, col int) bool {
	for _, o := range m.Offsets {
		if !img.At(row+o.Row, col+o.Col) {
			return false
		}
	}

	return true
}

// String renders the mask with '#' for required pixels and ' ' elsewhere.
func (m Mask) String() string {
	buf := make([][]byte, m.Height)
	for r := range buf {
		buf[r] = []byte(strings.Repeat(" ", m.Width))
	}
	for _, o := range m.Offsets {
		buf[o.Row][o.Col] = grid.SetPixel
	}
	var b strings.Builder
	for _, row := range buf {
		fmt.Fprintf(&b, "%s\n", row)
	}

	return b.String()
}

// SPDX-License-Identifier: MIT

package tile

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/mosaic/grid"
)

// Parse builds a Tile from one text block: a "Tile <id>:" header followed by
// N rows of N pixels. Every failure wraps ErrParse.
func Parse(block string) (Tile, error) {
	lines := strings.Split(strings.TrimSpace(strings.ReplaceAll(block, "\r\n", "\n")), "\n")
	id, err := parseHeader(lines[0])
	if err != nil {
		return Tile{}, fmt.Errorf("%w: %w", ErrParse, err)
	}
	rows := lines[1:]
	for i := range rows {
		rows[i] = strings.TrimSpace(rows[i])
	}
	face, err := grid.FromRows(rows)
	if errors.Is(err, grid.ErrNotSquare) || errors.Is(err, grid.ErrEmptyGrid) {
		return Tile{}, fmt.Errorf("%w: tile %d: %w: %w", ErrParse, id, ErrDimensions, err)
	}
	if err != nil {
		return Tile{}, fmt.Errorf("%w: tile %d: %w", ErrParse, id, err)
	}
	if face.Size() < 3 {
		return Tile{}, fmt.Errorf("%w: tile %d: %w: %dx%d face has no interior",
			ErrParse, id, ErrDimensions, face.Size(), face.Size())
	}

	return Tile{ID: id, Face: face}, nil
}

func parseHeader(line string) (int, error) {
	line = strings.TrimSpace(line)
	rest, ok := strings.CutPrefix(line, "Tile ")
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrHeader, line)
	}
	rest, ok = strings.CutSuffix(rest, ":")
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrHeader, line)
	}
	id, err := strconv.Atoi(rest)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: id %q is not a positive integer", ErrHeader, rest)
	}

	return id, nil
}

// ParseAll parses every block, requiring unique ids and one common tile size.
func ParseAll(blocks []string) ([]Tile, error) {
	tiles := make([]Tile, 0, len(blocks))
	seen := make(map[int]struct{}, len(blocks))
	for i, b := range blocks {
		t, err := Parse(b)
		if err != nil {
			return nil, fmt.Errorf("block %d: %w", i, err)
		}
		if _, dup := seen[t.ID]; dup {
			return nil, fmt.Errorf("%w: %w: %d", ErrParse, ErrDuplicateID, t.ID)
		}
		if len(tiles) > 0 && t.Size() != tiles[0].Size() {
			return nil, fmt.Errorf("%w: tile %d: %w: size %d, want %d",
				ErrParse, t.ID, ErrDimensions, t.Size(), tiles[0].Size())
		}
		seen[t.ID] = struct{}{}
		tiles = append(tiles, t)
	}

	return tiles, nil
}

// Size returns N.
func (t Tile) Size() int {
	return t.Face.Size()
}

// Same reports whether t and o are the same piece, whatever their orientation.
func (t Tile) Same(o Tile) bool {
	return t.ID == o.ID
}

// Border returns the edge on side s in canonical direction.
func (t Tile) Border(s Side) Border {
	n := t.Face.Size()
	switch s {
	case Top:
		return t.Face.Row(0)
	case Bottom:
		return t.Face.Row(n - 1)
	case Left:
		return t.Face.Column(0)
	default:
		return t.Face.Column(n - 1)
	}
}

// Borders returns the edges in Top, Right, Bottom, Left order.
func (t Tile) Borders() [4]Border {
	var out [4]Border
	for i, s := range Sides {
		out[i] = t.Border(s)
	}

	return out
}

// Transform returns a new Tile whose face is rotated and then mirrored.
func (t Tile) Transform(tr grid.Transform) Tile {
	return Tile{ID: t.ID, Face: t.Face.Apply(tr)}
}

// Trim returns the (N-2)×(N-2) interior of the face.
func (t Tile) Trim() (*grid.Grid, error) {
	return t.Face.Trim()
}

// String renders the header and face in input format.
func (t Tile) String() string {
	return fmt.Sprintf("Tile %d:\n%s", t.ID, t.Face)
}

// Reverse returns the border read in the opposite direction.
func (b Border) Reverse() Border {
	out := make(Border, len(b))
	for i, v := range b {
		out[len(b)-1-i] = v
	}

	return out
}

// Equal reports pixel-wise equality.
func (b Border) Equal(o Border) bool {
	if len(b) != len(o) {
		return false
	}
	for i := range b {
		if b[i] != o[i] {
			return false
		}
	}

	return true
}

// String renders the border with '.' and '#'.
func (b Border) String() string {
	buf := make([]byte, len(b))
	for i, v := range b {
		buf[i] = grid.ClearPixel
		if v {
			buf[i] = grid.SetPixel
		}
	}

	return string(buf)
}

// Opposite returns the side facing s across a shared edge.
func (s Side) Opposite() Side {
	return (s + 2) % 4
}

// Offset returns the (dy, dx) step from a tile to its neighbour on side s.
func (s Side) Offset() (dy, dx int) {
	switch s {
	case Top:
		return -1, 0
	case Right:
		return 0, 1
	case Bottom:
		return 1, 0
	default:
		return 0, -1
	}
}

func (s Side) String() string {
	switch s {
	case Top:
		return "top"
	case Right:
		return "right"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	default:
		return fmt.Sprintf("side(%d)", int(s))
	}
}

package fixture

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/mosaic/grid"
)

// TileSize is the side of every generated tile.
const TileSize = 16

// Seam names the border between tile (Row, Col) and its right neighbour,
// or its lower neighbour when Down is set.
type Seam struct {
	Row, Col int
	Down     bool
}

// Layout is a generated k×k mosaic in solved orientation.
// Every border carries a unique code that matches no other border, direct or
// reversed, and is not a palindrome, except the seams requested as
// palindromes (each still unique).
type Layout struct {
	K     int
	IDs   [][]int
	Faces [][]*grid.Grid
}

// Generate builds a k×k layout of TileSize tiles, k <= 9.
// Tile (r,c) has id 1001 + r*k + c. Interiors are clear.
func Generate(k int, palindromes ...Seam) *Layout {
	pal := make(map[Seam]bool, len(palindromes))
	for _, s := range palindromes {
		pal[s] = true
	}
	var next, nextPal int
	code := func(s Seam, shared bool) string {
		if shared && pal[s] {
			nextPal++
			return palindromeCode(nextPal)
		}
		next++
		return edgeCode(next)
	}

	// horiz[r][c]: border above row r in column c (r in 0..k).
	// vert[r][c]: border left of column c in row r (c in 0..k).
	horiz := make([][]string, k+1)
	vert := make([][]string, k)
	for r := 0; r <= k; r++ {
		horiz[r] = make([]string, k)
		for c := 0; c < k; c++ {
			horiz[r][c] = code(Seam{Row: r - 1, Col: c, Down: true}, r > 0 && r < k)
		}
	}
	for r := 0; r < k; r++ {
		vert[r] = make([]string, k+1)
		for c := 0; c <= k; c++ {
			vert[r][c] = code(Seam{Row: r, Col: c - 1}, c > 0 && c < k)
		}
	}

	l := &Layout{K: k, IDs: make([][]int, k), Faces: make([][]*grid.Grid, k)}
	for r := 0; r < k; r++ {
		l.IDs[r] = make([]int, k)
		l.Faces[r] = make([]*grid.Grid, k)
		for c := 0; c < k; c++ {
			l.IDs[r][c] = 1001 + r*k + c
			l.Faces[r][c] = face(horiz[r][c], horiz[r+1][c], vert[r][c], vert[r][c+1])
		}
	}

	return l
}

// edgeCode is ".#.." + 8 id bits + ".##." : position 1 is '#', position
// N-2 is '#' and position 2 is '.', so no code equals another code reversed.
func edgeCode(id int) string {
	return ".#.." + bits(id) + ".##."
}

// palindromeCode is ".##." + 4 id bits + the same bits reversed + ".##.".
func palindromeCode(id int) string {
	b := bits(id)[4:]
	return ".##." + b + reverse(b) + ".##."
}

func bits(id int) string {
	var b strings.Builder
	for i := 7; i >= 0; i-- {
		if id>>i&1 == 1 {
			b.WriteByte(grid.SetPixel)
		} else {
			b.WriteByte(grid.ClearPixel)
		}
	}

	return b.String()
}

func reverse(s string) string {
	out := []byte(s)
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	return string(out)
}

func face(top, bottom, left, right string) *grid.Grid {
	rows := make([][]byte, TileSize)
	for r := range rows {
		rows[r] = []byte(strings.Repeat(string(grid.ClearPixel), TileSize))
		rows[r][0] = left[r]
		rows[r][TileSize-1] = right[r]
	}
	copy(rows[0], top)
	copy(rows[TileSize-1], bottom)
	out := make([]string, TileSize)
	for r := range rows {
		out[r] = string(rows[r])
	}

	return grid.MustFromRows(out...)
}

// Blocks renders the layout as input blocks, each face turned by orient.
func (l *Layout) Blocks(orient func(r, c int) grid.Transform) []string {
	var out []string
	for r := 0; r < l.K; r++ {
		for c := 0; c < l.K; c++ {
			f := l.Faces[r][c].Apply(orient(r, c))
			out = append(out, fmt.Sprintf("Tile %d:\n%s", l.IDs[r][c], strings.Join(f.Rows(), "\n")))
		}
	}

	return out
}

// Scrambled turns tile (r,c) by the ((r*k+c)*3)%8-th orientation.
func (l *Layout) Scrambled(r, c int) grid.Transform {
	return grid.Orientations()[((r*l.K+c)*3)%8]
}

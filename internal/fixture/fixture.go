// Package fixture holds the canonical nine-tile example mosaic shared by the
// package tests, plus a generator for larger mosaics with known layouts.
package fixture

import "strings"

// Tiles is the 3×3 example: nine 10×10 tiles, scrambled and reoriented.
const Tiles = `Tile 2311:
..##.#..#.
##..#.....
#...##..#.
####.#...#
##.##.###.
##...#.###
.#.#.#..##
..#....#..
###...#.#.
..###..###

Tile 1951:
#.##...##.
#.####...#
.....#..##
#...######
.##.#....#
.###.#####
###.##.##.
.###....#.
..#.#..#.#
#...##.#..

Tile 1171:
####...##.
#..##.#..#
##.#..#.#.
.###.####.
..###.####
.##....##.
.#...####.
#.##.####.
####..#...
.....##...

Tile 1427:
###.##.#..
.#..#.##..
.#.##.#..#
#.#.#.##.#
....#...##
...##..##.
...#.#####
.#.####.#.
..#..###.#
..##.#..#.

Tile 1489:
##.#.#....
..##...#..
.##..##...
..#...#...
#####...#.
#..#.#.#.#
...#.#.#..
##.#...##.
..##.##.##
###.##.#..

Tile 2473:
#....####.
#..#.##...
#.##..#...
######.#.#
.#...#.#.#
.#########
.###.#..#.
########.#
##...##.#.
..###.#.#.

Tile 2971:
..#.#....#
#...###...
#.#.###...
##.##..#..
.#####..##
.#..####.#
#..#.#..#.
..####.###
..#.#.###.
...#.#.#.#

Tile 2729:
...#.#.#.#
####.#....
..#.#.....
....#..#.#
.##..##.#.
.#.####...
####.#.#..
##.####...
##..#.##..
#.##...##.

Tile 3079:
#.#.#####.
.#..######
..#.......
######....
####.#..#.
.#...#.##.
#.#####.##
..#.###...
..#.......
..#.###...
`

// Checksum is the product of the four corner tile ids of Tiles.
const Checksum int64 = 20899048083289

// Corners are the corner tile ids of Tiles, ascending.
var Corners = []int{1171, 1951, 2971, 3079}

// Occurrences is the number of sea monsters hidden in the assembled image.
const Occurrences = 2

// Roughness is the set-pixel count of the image outside every sea monster.
const Roughness = 273

// Image is the 24×24 assembled image of Tiles in one of its eight
// orientations.
var Image = []string{
	".#.#..#.##...#.##..#####",
	"###....#.#....#..#......",
	"##.##.###.#.#..######...",
	"###.#####...#.#####.#..#",
	"##.#....#.##.####...#.##",
	"...########.#....#####.#",
	"....#..#...##..#.#.###..",
	".####...#..#.....#......",
	"#..#.##..#..###.#.##....",
	"#.####..#.####.#.#.###..",
	"###.#.#...#.######.#..##",
	"#.####....##..########.#",
	"##..##.#...#...#.#.#.#..",
	"...#..#..#.#.##..###.###",
	".#.#....#.##.#...###.##.",
	"###.#...#..#.##.######..",
	".#.#.###.##.##.#..#.##..",
	".####.###.#...###.#..#.#",
	"..#.#..#..#.#.#.####.###",
	"#..####...#.#.#.###.###.",
	"#####..#####...###....##",
	"#.##..#..#...#..####...#",
	".#.###..##..##..####.##.",
	"...###...##...#...#..###",
}

// Blocks returns Tiles split into one text block per tile.
func Blocks() []string {
	return strings.Split(strings.TrimSpace(Tiles), "\n\n")
}

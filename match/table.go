// SPDX-License-Identifier: MIT
//
// File: table.go
// Role: Border resolution table.
//
// Reading a row: if reference.Border(ref) equals candidate.Border(cand)
// (reversed first when rev is set), the candidate attaches on side ref and
// candidate.Transform(t).Border(ref.Opposite()) == reference.Border(ref).

package match

import (
	"github.com/katalvlaran/mosaic/grid"
	"github.com/katalvlaran/mosaic/tile"
)

type key struct {
	ref, cand tile.Side
	rev       bool
}

var (
	r0    = grid.Identity
	mh    = grid.Transform{Rotation: grid.Rotate0, Mirror: grid.MirrorHorizontal}
	mv    = grid.Transform{Rotation: grid.Rotate0, Mirror: grid.MirrorVertical}
	r90   = grid.Transform{Rotation: grid.Rotate90, Mirror: grid.MirrorNone}
	r180  = grid.Transform{Rotation: grid.Rotate180, Mirror: grid.MirrorNone}
	r270  = grid.Transform{Rotation: grid.Rotate270, Mirror: grid.MirrorNone}
	r90mh = grid.Transform{Rotation: grid.Rotate90, Mirror: grid.MirrorHorizontal}
	r90mv = grid.Transform{Rotation: grid.Rotate90, Mirror: grid.MirrorVertical}
)

// resolution maps every border hit to the transform of the candidate.
// The attach side is always key.ref.
var resolution = map[key]grid.Transform{
	// candidate goes above: its bottom must equal reference top
	{tile.Top, tile.Bottom, false}: r0,
	{tile.Top, tile.Bottom, true}:  mh,
	{tile.Top, tile.Top, false}:    mv,
	{tile.Top, tile.Top, true}:     r180,
	{tile.Top, tile.Left, false}:   r270,
	{tile.Top, tile.Left, true}:    r90mv,
	{tile.Top, tile.Right, false}:  r90mh,
	{tile.Top, tile.Right, true}:   r90,

	// candidate goes to the right: its left must equal reference right
	{tile.Right, tile.Left, false}:   r0,
	{tile.Right, tile.Left, true}:    mv,
	{tile.Right, tile.Right, false}:  mh,
	{tile.Right, tile.Right, true}:   r180,
	{tile.Right, tile.Top, false}:    r90mh,
	{tile.Right, tile.Top, true}:     r270,
	{tile.Right, tile.Bottom, false}: r90,
	{tile.Right, tile.Bottom, true}:  r90mv,

	// candidate goes below: its top must equal reference bottom
	{tile.Bottom, tile.Top, false}:    r0,
	{tile.Bottom, tile.Top, true}:     mh,
	{tile.Bottom, tile.Bottom, false}: mv,
	{tile.Bottom, tile.Bottom, true}:  r180,
	{tile.Bottom, tile.Left, false}:   r90mh,
	{tile.Bottom, tile.Left, true}:    r90,
	{tile.Bottom, tile.Right, false}:  r270,
	{tile.Bottom, tile.Right, true}:   r90mv,

	// candidate goes to the left: its right must equal reference left
	{tile.Left, tile.Right, false}:  r0,
	{tile.Left, tile.Right, true}:   mv,
	{tile.Left, tile.Left, false}:   mh,
	{tile.Left, tile.Left, true}:    r180,
	{tile.Left, tile.Top, false}:    r90,
	{tile.Left, tile.Top, true}:     r90mv,
	{tile.Left, tile.Bottom, false}: r90mh,
	{tile.Left, tile.Bottom, true}:  r270,
}

// Resolve looks up the candidate transform for a border hit.
// ok is false only for sides outside Top..Left.
func Resolve(ref, cand tile.Side, reversed bool) (t grid.Transform, ok bool) {
	t, ok = resolution[key{ref: ref, cand: cand, rev: reversed}]
	return t, ok
}

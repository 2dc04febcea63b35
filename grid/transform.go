// SPDX-License-Identifier: MIT
//
// File: transform.go
// Role: Orientation algebra for square grids.
//
// Every Transform reduces to a clockwise rotation k (0..3) optionally
// followed by a horizontal mirror. Composition uses the identity
// MirrorHorizontal∘Rotate(k) == Rotate(-k)∘MirrorHorizontal.

package grid

import "fmt"

func (r Rotation) normalize() Rotation {
	return ((r % 4) + 4) % 4
}

// String implements fmt.Stringer.
func (r Rotation) String() string {
	return fmt.Sprintf("r%d", int(r.normalize())*90)
}

// String implements fmt.Stringer.
func (m Mirror) String() string {
	switch m {
	case MirrorHorizontal:
		return "horizontal"
	case MirrorVertical:
		return "vertical"
	default:
		return "none"
	}
}

// String implements fmt.Stringer, e.g. "r90+horizontal".
func (t Transform) String() string {
	if t.Mirror == MirrorNone {
		return t.Rotation.String()
	}

	return t.Rotation.String() + "+" + t.Mirror.String()
}

// reduce returns the (rotation, mirrored) normal form of t.
func (t Transform) reduce() (Rotation, bool) {
	k := t.Rotation.normalize()
	switch t.Mirror {
	case MirrorHorizontal:
		return k, true
	case MirrorVertical:
		// vertical == rotate 180 then horizontal
		return (k + Rotate180).normalize(), true
	default:
		return k, false
	}
}

func fromReduced(k Rotation, mirrored bool) Transform {
	t := Transform{Rotation: k.normalize(), Mirror: MirrorNone}
	if mirrored {
		t.Mirror = MirrorHorizontal
	}

	return t
}

// Canonical returns the representative of t's orientation whose mirror is
// MirrorNone or MirrorHorizontal. Two transforms produce the same pixels on
// every grid iff their canonical forms are equal.
func (t Transform) Canonical() Transform {
	return fromReduced(t.reduce())
}

// Equivalent reports whether t and o describe the same orientation.
func (t Transform) Equivalent(o Transform) bool {
	return t.Canonical() == o.Canonical()
}

// Then returns the canonical transform equal to applying t and then next:
//
//	g.Apply(t.Then(next)) == g.Apply(t).Apply(next)
//
// Composition is associative.
func (t Transform) Then(next Transform) Transform {
	k1, m1 := t.reduce()
	k2, m2 := next.reduce()
	if m1 {
		return fromReduced(k1-k2, !m2)
	}

	return fromReduced(k1+k2, m2)
}

// Inverse returns the transform that undoes t.
func (t Transform) Inverse() Transform {
	k, m := t.reduce()
	if m {
		// a mirrored orientation is its own inverse
		return fromReduced(k, true)
	}

	return fromReduced(-k, false)
}

// Orientations lists the eight distinct orientations of a square:
// the four rotations first, then the four mirrored rotations.
func Orientations() []Transform {
	out := make([]Transform, 0, 8)
	for _, m := range []bool{false, true} {
		for k := Rotate0; k <= Rotate270; k++ {
			out = append(out, fromReduced(k, m))
		}
	}

	return out
}

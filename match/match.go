// SPDX-License-Identifier: MIT

package match

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mosaic/grid"
	"github.com/katalvlaran/mosaic/tile"
)

// ErrConsistency indicates tiles whose shared edges contradict a single
// rectangular arrangement.
var ErrConsistency = errors.New("match: inconsistent border match")

// Match is the outcome of comparing a reference tile with a candidate.
// When Found is false the two tiles share no edge.
type Match struct {
	Found     bool
	Side      tile.Side      // side of the reference the candidate attaches to
	Transform grid.Transform // applied to the candidate before placing it
}

// None is the no-match result.
var None = Match{}

func (m Match) String() string {
	if !m.Found {
		return "none"
	}

	return fmt.Sprintf("%s(%s)", m.Side, m.Transform)
}

// TryMatch reports where cand attaches to ref and how cand must be oriented.
// All 32 border comparisons are made. Hits that agree on one side resolve to
// the first hit in Top, Right, Bottom, Left order; hits on two sides return
// ErrConsistency. When the shared border is a palindrome two orientations
// fit; Candidates returns both.
func TryMatch(ref, cand tile.Tile) (Match, error) {
	ms, err := Candidates(ref, cand)
	if err != nil || len(ms) == 0 {
		return None, err
	}

	return ms[0], nil
}

// Candidates returns every distinct orientation of cand that attaches to one
// side of ref, in table order. A palindromic shared border yields two
// orientations that differ by a flip along that border.
func Candidates(ref, cand tile.Tile) ([]Match, error) {
	rb := ref.Borders()
	cb := cand.Borders()
	var out []Match
	for _, rs := range tile.Sides {
		for _, cs := range tile.Sides {
			for _, rev := range [2]bool{false, true} {
				b := cb[cs]
				if rev {
					b = b.Reverse()
				}
				if !rb[rs].Equal(b) {
					continue
				}
				if len(out) > 0 && out[0].Side != rs {
					return nil, fmt.Errorf("%w: tile %d meets tile %d on both %s and %s",
						ErrConsistency, cand.ID, ref.ID, out[0].Side, rs)
				}
				t, _ := Resolve(rs, cs, rev)
				if !seen(out, t) {
					out = append(out, Match{Found: true, Side: rs, Transform: t})
				}
			}
		}
	}

	return out, nil
}

func seen(ms []Match, t grid.Transform) bool {
	for _, m := range ms {
		if m.Transform.Equivalent(t) {
			return true
		}
	}

	return false
}

// Shares counts the border pairs of a and b that line up, directly or
// reversed. A border pair that matches both ways (a palindrome) counts once.
func Shares(a, b tile.Tile) int {
	ab := a.Borders()
	bb := b.Borders()
	n := 0
	for _, x := range ab {
		for _, y := range bb {
			if x.Equal(y) || x.Equal(y.Reverse()) {
				n++
			}
		}
	}

	return n
}

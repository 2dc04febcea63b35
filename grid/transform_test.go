package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/mosaic/grid"
)

// allTransforms enumerates every textual (rotation, mirror) pair.
func allTransforms() []grid.Transform {
	var out []grid.Transform
	for r := grid.Rotate0; r <= grid.Rotate270; r++ {
		for _, m := range []grid.Mirror{grid.MirrorNone, grid.MirrorHorizontal, grid.MirrorVertical} {
			out = append(out, grid.Transform{Rotation: r, Mirror: m})
		}
	}

	return out
}

func TestCanonical_SamePixels(t *testing.T) {
	g := asym()
	for _, tr := range allTransforms() {
		assert.True(t, g.Apply(tr).Equal(g.Apply(tr.Canonical())), "%v vs %v", tr, tr.Canonical())
	}
	assert.Equal(t,
		grid.Transform{Rotation: grid.Rotate180, Mirror: grid.MirrorHorizontal},
		grid.Transform{Rotation: grid.Rotate0, Mirror: grid.MirrorVertical}.Canonical())
}

func TestOrientations_Distinct(t *testing.T) {
	g := asym()
	seen := map[string]grid.Transform{}
	for _, tr := range grid.Orientations() {
		key := g.Apply(tr).String()
		prev, dup := seen[key]
		assert.False(t, dup, "%v and %v produce the same grid", prev, tr)
		seen[key] = tr
	}
	assert.Len(t, seen, 8)
	assert.Equal(t, grid.Identity, grid.Orientations()[0])
}

func TestThen_MatchesSequentialApply(t *testing.T) {
	g := asym()
	for _, a := range allTransforms() {
		for _, b := range allTransforms() {
			want := g.Apply(a).Apply(b)
			assert.True(t, want.Equal(g.Apply(a.Then(b))), "%v then %v", a, b)
		}
	}
}

func TestThen_Associative(t *testing.T) {
	for _, a := range grid.Orientations() {
		for _, b := range grid.Orientations() {
			for _, c := range grid.Orientations() {
				assert.Equal(t, a.Then(b).Then(c), a.Then(b.Then(c)))
			}
		}
	}
}

func TestInverse(t *testing.T) {
	g := asym()
	for _, tr := range allTransforms() {
		assert.Equal(t, grid.Identity, tr.Then(tr.Inverse()), "%v", tr)
		assert.True(t, g.Apply(tr).Apply(tr.Inverse()).Equal(g))
	}
}

func TestTransform_String(t *testing.T) {
	assert.Equal(t, "r0", grid.Identity.String())
	assert.Equal(t, "r90+horizontal", grid.Transform{Rotation: grid.Rotate90, Mirror: grid.MirrorHorizontal}.String())
	assert.Equal(t, "r270", grid.Transform{Rotation: -1}.String())
}

package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitAround_SingleCornerPlacement(t *testing.T) {
	free := []Rect{{X: 0, Y: 0, W: 100, H: 100}}
	placed := Rect{X: 0, Y: 0, W: 30, H: 20} // already kerf-expanded by caller

	out := SplitAround(free, placed)

	// Expect a right strip and a top strip covering the remainder.
	var hasRight, hasTop bool
	for _, r := range out {
		if r.X == 30 && r.Y == 0 && r.W == 70 && r.H == 100 {
			hasRight = true
		}
		if r.X == 0 && r.Y == 20 && r.W == 100 && r.H == 80 {
			hasTop = true
		}
	}
	assert.True(t, hasRight, "expected right strip in %+v", out)
	assert.True(t, hasTop, "expected top strip in %+v", out)
}

func TestSplitAround_NonOverlappingRectKeptIntact(t *testing.T) {
	free := []Rect{{X: 200, Y: 200, W: 50, H: 50}}
	placed := Rect{X: 0, Y: 0, W: 30, H: 20}

	out := SplitAround(free, placed)
	assert.Len(t, out, 1)
	assert.Equal(t, free[0], out[0])
}

func TestPruneContained_RemovesFullyContainedRect(t *testing.T) {
	rects := []Rect{
		{X: 0, Y: 0, W: 100, H: 100},
		{X: 10, Y: 10, W: 20, H: 20}, // fully inside the first
	}
	out := PruneContained(rects)
	assert.Len(t, out, 1)
	assert.Equal(t, rects[0], out[0])
}

func TestPruneContained_DropsTinyRects(t *testing.T) {
	rects := []Rect{
		{X: 0, Y: 0, W: 100, H: 100},
		{X: 150, Y: 0, W: 0.2, H: 50},
	}
	out := PruneContained(rects)
	assert.Len(t, out, 1)
}

func TestMergeAdjacent_MergesSideBySideRects(t *testing.T) {
	rects := []Rect{
		{X: 0, Y: 0, W: 50, H: 100},
		{X: 50, Y: 0, W: 50, H: 100},
	}
	out := MergeAdjacent(rects)
	assert.Len(t, out, 1)
	assert.Equal(t, Rect{X: 0, Y: 0, W: 100, H: 100}, out[0])
}

func TestMergeAdjacent_DoesNotMergeMismatchedSpan(t *testing.T) {
	rects := []Rect{
		{X: 0, Y: 0, W: 50, H: 100},
		{X: 50, Y: 0, W: 50, H: 60}, // different height, should not merge
	}
	out := MergeAdjacent(rects)
	assert.Len(t, out, 2)
}

// Scenario 4 from SPEC_FULL.md §8: free-rectangle re-use after a full row.
// A 2400x1200 panel (no trim) with six 600x300 shelves arranged 3 across x 2
// down, kerf = 2, must still report a free rect >= 600x300 somewhere.
func TestFreeRectangles_AfterFullRowOfShelves(t *testing.T) {
	const kerf = 2.0
	free := []Rect{{X: 0, Y: 0, W: 2400, H: 1200}}

	placements := []Rect{
		{X: 0, Y: 0, W: 600 + kerf, H: 300 + kerf},
		{X: 602, Y: 0, W: 600 + kerf, H: 300 + kerf},
		{X: 1204, Y: 0, W: 600 + kerf, H: 300 + kerf},
		{X: 0, Y: 302, W: 600 + kerf, H: 300 + kerf},
		{X: 602, Y: 302, W: 600 + kerf, H: 300 + kerf},
		{X: 1204, Y: 302, W: 600 + kerf, H: 300 + kerf},
	}
	for _, p := range placements {
		free = SplitAround(free, p)
	}

	found := false
	for _, r := range free {
		if r.W >= 600 && r.H >= 300 {
			found = true
			break
		}
	}
	assert.True(t, found, "expected a free rect >= 600x300 in %+v", free)
}

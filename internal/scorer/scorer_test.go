package scorer

import (
	"testing"

	"github.com/panelcut/optimizer/internal/geometry"
	"github.com/stretchr/testify/assert"
)

// The Default blend has no fit-ratio term: with equal position, contact and
// no sliver on either candidate, an exact fit and a loose fit score the same.
func TestScore_DefaultIgnoresLeftoverFit(t *testing.T) {
	panel := geometry.Rect{X: 0, Y: 0, W: 1000, H: 1000}

	exact := Candidate{
		Free: geometry.Rect{X: 0, Y: 0, W: 300, H: 200},
		X:    0, Y: 0, W: 300, H: 200,
		Panel: panel, Kerf: 3,
	}
	loose := Candidate{
		Free: geometry.Rect{X: 0, Y: 0, W: 900, H: 900},
		X:    0, Y: 0, W: 300, H: 200,
		Panel: panel, Kerf: 3,
	}

	assert.Equal(t, Score(exact, nil, Default), Score(loose, nil, Default))
}

func TestScore_ContactReducesScore(t *testing.T) {
	panel := geometry.Rect{X: 0, Y: 0, W: 1000, H: 1000}
	free := geometry.Rect{X: 0, Y: 0, W: 1000, H: 1000}

	// Placed flush against two panel edges (corner) vs. floating in the
	// interior with no existing neighbors: the corner placement should score
	// lower under Default (more contact is better).
	corner := Candidate{Free: free, X: 0, Y: 0, W: 100, H: 100, Panel: panel, Kerf: 3}
	floating := Candidate{Free: free, X: 400, Y: 400, W: 100, H: 100, Panel: panel, Kerf: 3}

	assert.Less(t, Score(corner, nil, Default), Score(floating, nil, Default))
}

func TestScore_ReusableRemnantPrefersHighContactOverTightFit(t *testing.T) {
	panel := geometry.Rect{X: 0, Y: 0, W: 1000, H: 1000}
	free := geometry.Rect{X: 0, Y: 0, W: 1000, H: 1000}

	cornerLoose := Candidate{Free: free, X: 0, Y: 0, W: 100, H: 100, Panel: panel, Kerf: 3}
	exactInterior := Candidate{
		Free: geometry.Rect{X: 400, Y: 400, W: 103, H: 103},
		X:    400, Y: 400, W: 100, H: 100,
		Panel: panel, Kerf: 3,
	}

	assert.Less(t, Score(cornerLoose, nil, ReusableRemnant), Score(exactInterior, nil, ReusableRemnant))
}

func TestScore_MinInitialUsagePenalizesLeftoverFit(t *testing.T) {
	panel := geometry.Rect{X: 0, Y: 0, W: 1000, H: 1000}

	exact := Candidate{
		Free: geometry.Rect{X: 0, Y: 0, W: 103, H: 103},
		X:    0, Y: 0, W: 100, H: 100,
		Panel: panel, Kerf: 3,
	}
	wasteful := Candidate{
		Free: geometry.Rect{X: 0, Y: 0, W: 900, H: 900},
		X:    0, Y: 0, W: 100, H: 100,
		Panel: panel, Kerf: 3,
	}

	assert.Less(t, Score(exact, nil, MinInitialUsage), Score(wasteful, nil, MinInitialUsage))
}

func TestSliverPenalty_PenalizesNarrowLeftover(t *testing.T) {
	panel := geometry.Rect{X: 0, Y: 0, W: 1000, H: 1000}

	sliver := Candidate{Free: geometry.Rect{X: 0, Y: 0, W: 120, H: 100}, X: 0, Y: 0, W: 100, H: 100, Panel: panel, Kerf: 3}
	clean := Candidate{Free: geometry.Rect{X: 0, Y: 0, W: 300, H: 100}, X: 0, Y: 0, W: 100, H: 100, Panel: panel, Kerf: 3}

	assert.Greater(t, sliverPenalty(sliver), sliverPenalty(clean))
}

func TestContactScore_CountsNeighborEdges(t *testing.T) {
	panel := geometry.Rect{X: 0, Y: 0, W: 1000, H: 1000}
	free := geometry.Rect{X: 100, Y: 0, W: 900, H: 1000}

	neighbor := geometry.Rect{X: 0, Y: 0, W: 100, H: 100} // kerf-expanded existing placement
	c := Candidate{Free: free, X: 100, Y: 0, W: 100, H: 100, Panel: panel, Kerf: 3}

	withNeighbor := contactScore(c, []geometry.Rect{neighbor})
	withoutNeighbor := contactScore(c, nil)

	assert.Greater(t, withNeighbor, withoutNeighbor)
}

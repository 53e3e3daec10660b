package packer

import (
	"math"

	"github.com/panelcut/optimizer/internal/geometry"
	"github.com/panelcut/optimizer/internal/model"
	"github.com/panelcut/optimizer/internal/scorer"
)

// FreeRects reconstructs a panel's current free-rectangle set by replaying
// its placements, in order, against the usable-area rectangle. Used by the
// panel-reduction pass and the optional-item backfill pass, which both work
// from a model.PanelLayout rather than the packer's incremental layout.
func FreeRects(panel model.PanelLayout, cutWidth float64) []geometry.Rect {
	free := []geometry.Rect{{
		X: panel.Trimming, Y: panel.Trimming,
		W: panel.Width - 2*panel.Trimming, H: panel.Height - 2*panel.Trimming,
	}}
	for _, p := range panel.Placements {
		expanded := geometry.Rect{X: p.X, Y: p.Y, W: p.Width + cutWidth, H: p.Height + cutWidth}
		free = geometry.SplitAround(free, expanded)
	}
	return free
}

// KerfExpandedPlacements returns a panel's placements expanded by the kerf,
// for use as the scorer's "existing" neighbor set.
func KerfExpandedPlacements(panel model.PanelLayout, cutWidth float64) []geometry.Rect {
	out := make([]geometry.Rect, len(panel.Placements))
	for i, p := range panel.Placements {
		out[i] = geometry.Rect{X: p.X, Y: p.Y, W: p.Width + cutWidth, H: p.Height + cutWidth}
	}
	return out
}

// PlaceResult describes a single successful best-fit placement against an
// existing set of layouts.
type PlaceResult struct {
	LayoutIndex int
	Placement   model.Placement
}

// BestFitAcrossLayouts scores item against every free rectangle of every
// layout (honoring rotation and the per-layout panel index penalty under
// min_initial_usage) and returns the minimum-score placement, if any fits.
// It does not mutate layouts; callers apply the returned Placement
// themselves (the reduction and backfill passes need to decide whether to
// commit it before doing so).
func BestFitAcrossLayouts(layouts []model.PanelLayout, item model.ExpandedItem, cutWidth float64, mode scorer.Mode, minInitialUsage bool) (PlaceResult, bool) {
	var best PlaceResult
	bestScore := math.Inf(1)
	found := false

	for li, panel := range layouts {
		free := FreeRects(panel, cutWidth)
		existing := KerfExpandedPlacements(panel, cutWidth)
		panelRect := geometry.Rect{X: panel.Trimming, Y: panel.Trimming, W: panel.Width - 2*panel.Trimming, H: panel.Height - 2*panel.Trimming}

		for _, fr := range free {
			for _, orient := range orientations(item) {
				if !fitsIn(fr, orient.w, orient.h, cutWidth) {
					continue
				}
				cand := scorer.Candidate{Free: fr, X: fr.X, Y: fr.Y, W: orient.w, H: orient.h, Panel: panelRect, Kerf: cutWidth}
				score := scorer.Score(cand, existing, mode)
				if minInitialUsage {
					score += float64(li) * minInitialUsagePenalty
				}
				if score < bestScore {
					bestScore = score
					best = PlaceResult{
						LayoutIndex: li,
						Placement:   model.Placement{ItemID: item.ID, X: fr.X, Y: fr.Y, Width: orient.w, Height: orient.h, Rotated: orient.rotated},
					}
					found = true
				}
			}
		}
	}

	return best, found
}

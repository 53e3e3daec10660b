// Package remnant implements the output remnant extractor (§4.7): turning
// each panel's leftover free-rectangle set into reported unused_areas, and
// optionally accounting for reusable remnants against a minimum size.
package remnant

import (
	"sort"

	"github.com/panelcut/optimizer/internal/geometry"
	"github.com/panelcut/optimizer/internal/model"
)

const minReportedSide = 10.0

// Extract computes unused_areas for every layout (returning a new slice;
// layouts themselves are not mutated) and, if minReusableSize is
// non-nil, returns the total reusable remnant area and the clamped actual
// waste area for the whole result.
func Extract(layouts []model.PanelLayout, cutWidth float64, minReusableSize *float64) ([]model.PanelLayout, float64, float64) {
	out := make([]model.PanelLayout, len(layouts))
	perPanel := make([][]model.UnusedArea, len(layouts))

	for i, panel := range layouts {
		areas := unusedAreasFor(panel, cutWidth)
		perPanel[i] = areas
		out[i] = panel
		out[i].UnusedAreas = areas
	}

	if minReusableSize == nil {
		return out, 0, 0
	}

	reusable := acceptReusable(perPanel, *minReusableSize)
	summary := model.Summarize(layouts)
	actualWaste := summary.WasteArea - reusable
	if actualWaste < 0 {
		actualWaste = 0
	}
	return out, reusable, actualWaste
}

// unusedAreasFor computes one panel's free-rectangle set, merges perfectly
// adjacent rectangles, sorts by area descending, drops slivers (either side
// < 10), and keeps only rectangles not already covered by a previously
// emitted one.
func unusedAreasFor(panel model.PanelLayout, cutWidth float64) []model.UnusedArea {
	free := []geometry.Rect{{
		X: panel.Trimming, Y: panel.Trimming,
		W: panel.Width - 2*panel.Trimming, H: panel.Height - 2*panel.Trimming,
	}}
	for _, p := range panel.Placements {
		expanded := geometry.Rect{X: p.X, Y: p.Y, W: p.Width + cutWidth, H: p.Height + cutWidth}
		free = geometry.SplitAround(free, expanded)
	}
	free = geometry.MergeAdjacent(free)

	sort.Slice(free, func(i, j int) bool { return free[i].Area() > free[j].Area() })

	var emitted []geometry.Rect
	var out []model.UnusedArea
	for _, r := range free {
		if r.W < minReportedSide || r.H < minReportedSide {
			continue
		}
		covered := false
		for _, e := range emitted {
			if geometry.Contains(e, r, geometry.AdjacencyEps) {
				covered = true
				break
			}
		}
		if covered {
			continue
		}
		emitted = append(emitted, r)
		out = append(out, model.UnusedArea{X: r.X, Y: r.Y, Width: r.W, Height: r.H})
	}
	return out
}

// acceptReusable walks every panel's unused areas in area-descending order
// and greedily accepts rectangles meeting minSize that don't overlap an
// already-accepted rectangle (tolerance 0.5), summing accepted area.
func acceptReusable(perPanel [][]model.UnusedArea, minSize float64) float64 {
	type candidate struct {
		panel int
		area  model.UnusedArea
	}
	var all []candidate
	for pi, areas := range perPanel {
		for _, a := range areas {
			all = append(all, candidate{panel: pi, area: a})
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].area.Area() > all[j].area.Area() })

	accepted := make(map[int][]geometry.Rect)
	var total float64
	for _, c := range all {
		area := c.area.Area()
		if area < minSize {
			continue
		}
		r := geometry.Rect{X: c.area.X, Y: c.area.Y, W: c.area.Width, H: c.area.Height}
		overlaps := false
		for _, accR := range accepted[c.panel] {
			if geometry.Overlap(accR, r) {
				overlaps = true
				break
			}
		}
		if overlaps {
			continue
		}
		accepted[c.panel] = append(accepted[c.panel], r)
		total += area
	}
	return total
}

// Package reduce implements the panel-reduction pass (§4.5): after a BFD
// pass, try to evacuate the smallest-used panel and redistribute its items
// onto the remaining panels, shrinking the panel count where possible.
package reduce

import (
	"sort"

	"github.com/panelcut/optimizer/internal/model"
	"github.com/panelcut/optimizer/internal/packer"
	"github.com/panelcut/optimizer/internal/scorer"
)

// Options mirrors the packer/scorer settings the reduction pass must
// replay when re-placing evacuated items.
type Options struct {
	CutWidth        float64
	Mode            scorer.Mode
	MinInitialUsage bool
	CanRotateByID   map[string]bool
}

// Reduce repeatedly removes the smallest-used panel and re-places its items
// onto the rest, looping until an iteration fails to evacuate or only one
// panel remains. On success the returned layouts have panel_number
// renumbered sequentially per panel type, in encounter order.
func Reduce(layouts []model.PanelLayout, opts Options) []model.PanelLayout {
	current := cloneLayouts(layouts)

	for len(current) > 1 {
		victim := smallestUsedIndex(current)
		candidate, ok := tryEvacuate(current, victim, opts)
		if !ok {
			break
		}
		current = candidate
	}

	return renumber(current)
}

func smallestUsedIndex(layouts []model.PanelLayout) int {
	idx := 0
	best := layouts[0].UsedArea()
	for i := 1; i < len(layouts); i++ {
		if a := layouts[i].UsedArea(); a < best {
			best = a
			idx = i
		}
	}
	return idx
}

func tryEvacuate(layouts []model.PanelLayout, victim int, opts Options) ([]model.PanelLayout, bool) {
	evacuated := layouts[victim]
	remaining := make([]model.PanelLayout, 0, len(layouts)-1)
	remaining = append(remaining, layouts[:victim]...)
	remaining = append(remaining, layouts[victim+1:]...)
	// Deep-copy placement slices so failed attempts never mutate the caller's
	// working set.
	remaining = cloneLayouts(remaining)

	items := reconstructItems(evacuated, opts.CanRotateByID)
	sort.Slice(items, func(i, j int) bool { return items[i].Area() > items[j].Area() })

	for _, item := range items {
		result, ok := packer.BestFitAcrossLayouts(remaining, item, opts.CutWidth, opts.Mode, opts.MinInitialUsage)
		if !ok {
			return nil, false
		}
		remaining[result.LayoutIndex].Placements = append(remaining[result.LayoutIndex].Placements, result.Placement)
	}

	return remaining, true
}

// reconstructItems turns a panel's placements back into ExpandedItems,
// un-rotating dimensions and recovering can_rotate from the original
// expansion lookup.
func reconstructItems(panel model.PanelLayout, canRotateByID map[string]bool) []model.ExpandedItem {
	items := make([]model.ExpandedItem, 0, len(panel.Placements))
	for _, p := range panel.Placements {
		width, height := p.Width, p.Height
		if p.Rotated {
			width, height = height, width
		}
		items = append(items, model.ExpandedItem{
			ID:        p.ItemID,
			OriginID:  p.ItemID,
			Width:     width,
			Height:    height,
			CanRotate: canRotateByID[p.ItemID],
		})
	}
	return items
}

func cloneLayouts(layouts []model.PanelLayout) []model.PanelLayout {
	out := make([]model.PanelLayout, len(layouts))
	for i, l := range layouts {
		out[i] = l
		out[i].Placements = append([]model.Placement(nil), l.Placements...)
		out[i].UnusedAreas = append([]model.UnusedArea(nil), l.UnusedAreas...)
	}
	return out
}

func renumber(layouts []model.PanelLayout) []model.PanelLayout {
	counters := make(map[string]int)
	for i := range layouts {
		counters[layouts[i].PanelTypeID]++
		layouts[i].PanelNumber = counters[layouts[i].PanelTypeID]
	}
	return layouts
}

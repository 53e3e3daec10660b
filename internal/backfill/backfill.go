// Package backfill implements the optional-item backfill pass (§4.6): once
// the best strategy result is chosen, opportunistically place optional
// items if doing so reduces waste, without ever opening a new panel.
package backfill

import (
	"context"
	"sort"

	"github.com/panelcut/optimizer/internal/model"
	"github.com/panelcut/optimizer/internal/packer"
	"github.com/panelcut/optimizer/internal/remnant"
	"github.com/panelcut/optimizer/internal/scorer"
)

// skipThresholdPct is the effective-waste-percentage ceiling at or below
// which backfill is skipped entirely.
const skipThresholdPct = 8.0

// Options carries the packing/scoring settings the backfill pass must
// replay when trying placements.
type Options struct {
	CutWidth               float64
	Mode                   scorer.Mode
	MinInitialUsage        bool
	MinReusableRemnantSize *float64
}

// entry is one copy of an optional item, paired with its panel_type_id; an
// optional item with quantity n contributes n entries to the pool.
type entry struct {
	panelTypeID string
	item        model.OptionalItem
}

// Run attempts to backfill optional items into layouts. It returns the
// (possibly unchanged) layouts and the ids of optional items it placed.
// ctx is checked between passes; a cancellation returns whatever progress
// was made so far along with the context's error.
func Run(ctx context.Context, layouts []model.PanelLayout, panelTypes []model.PanelType, opts Options) ([]model.PanelLayout, []string, error) {
	if effectiveWaste(layouts, opts) <= skipThresholdPct {
		return layouts, nil, nil
	}

	entries := gatherEntries(panelTypes)
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].item.Priority != entries[j].item.Priority {
			return entries[i].item.Priority > entries[j].item.Priority
		}
		return entries[i].item.Area() > entries[j].item.Area()
	})

	current := layouts
	currentWaste := effectiveWaste(current, opts)
	var used []string

	for {
		if err := ctx.Err(); err != nil {
			return current, used, err
		}

		madeProgress := false

		for i, e := range entries {
			candidateLayouts, placedID, ok := tryPlace(current, e, opts)
			if !ok {
				continue
			}
			candidateWaste := effectiveWaste(candidateLayouts, opts)
			if candidateWaste < currentWaste {
				current = candidateLayouts
				currentWaste = candidateWaste
				used = append(used, placedID)
				entries = append(entries[:i], entries[i+1:]...)
				madeProgress = true
				break
			}
		}

		if !madeProgress {
			break
		}
	}

	return current, used, nil
}

func gatherEntries(panelTypes []model.PanelType) []entry {
	var out []entry
	for _, pt := range panelTypes {
		for _, oi := range pt.OptionalItems {
			qty := oi.Quantity
			if qty < 1 {
				qty = 1
			}
			for i := 0; i < qty; i++ {
				out = append(out, entry{panelTypeID: pt.ID, item: oi})
			}
		}
	}
	return out
}

// tryPlace attempts a single placement of entry's item into any layout of
// the matching panel type. It never increases the layout count: if no
// existing layout of that type can host the item, the attempt fails.
func tryPlace(layouts []model.PanelLayout, e entry, opts Options) ([]model.PanelLayout, string, bool) {
	item := model.ExpandedItem{
		ID: e.item.ID, OriginID: e.item.ID,
		Width: e.item.Width, Height: e.item.Height, CanRotate: e.item.CanRotate,
	}

	matching := make([]model.PanelLayout, 0, len(layouts))
	indexMap := make([]int, 0, len(layouts))
	for i, l := range layouts {
		if l.PanelTypeID == e.panelTypeID {
			matching = append(matching, l)
			indexMap = append(indexMap, i)
		}
	}
	if len(matching) == 0 {
		return nil, "", false
	}

	result, ok := packer.BestFitAcrossLayouts(matching, item, opts.CutWidth, opts.Mode, opts.MinInitialUsage)
	if !ok {
		return nil, "", false
	}

	out := cloneLayouts(layouts)
	targetIdx := indexMap[result.LayoutIndex]
	out[targetIdx].Placements = append(out[targetIdx].Placements, result.Placement)
	return out, e.item.ID, true
}

func effectiveWaste(layouts []model.PanelLayout, opts Options) float64 {
	summary := model.Summarize(layouts)
	if opts.MinReusableRemnantSize == nil {
		return summary.WastePercentage
	}
	_, reusable, actualWaste := remnant.Extract(layouts, opts.CutWidth, opts.MinReusableRemnantSize)
	summary = summary.WithRemnantAccounting(reusable, actualWaste)
	return summary.EffectiveWastePercentage()
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

// Package strategy implements the driver that runs the BFD packer under
// several item orderings and keeps the best result (§4.4).
package strategy

import (
	"context"
	"runtime"
	"sort"
	"sync"

	"github.com/panelcut/optimizer/internal/model"
	"github.com/panelcut/optimizer/internal/packer"
	"github.com/panelcut/optimizer/internal/reduce"
	"github.com/panelcut/optimizer/internal/scorer"
)

// Options configures every strategy run; it is the union of the packer's
// and the reduction pass's settings.
type Options struct {
	PanelTypes      []model.PanelType
	CutWidth        float64
	Mode            scorer.Mode
	MinInitialUsage bool
}

// orderings enumerates the six deterministic orderings from §4.4, in order.
var orderings = []func([]model.ExpandedItem){
	sortAreaDesc,
	sortHeightThenWidthDesc,
	sortWidthThenHeightDesc,
	sortNormalizedTallThenHeightWidthDesc,
	sortNormalizedWideThenWidthHeightDesc,
	sortNormalizedTallThenAreaDesc,
}

// Result is one strategy run's output, kept alongside its summary for the
// driver's selection rule.
type Result struct {
	Layouts []model.PanelLayout
	Summary model.Summary
}

// Run executes the packer under all six orderings, applies the
// panel-reduction pass to each, and returns the result with the fewest
// panels (ties broken by lowest waste_area). Each ordering runs over its own
// clone of items and may run concurrently; ctx is checked between
// strategies so a caller can cancel a long-running set of attempts.
func Run(ctx context.Context, items []model.ExpandedItem, opts Options) (Result, error) {
	canRotateByID := model.CanRotateByOrigin(items)

	results := make([]*Result, len(orderings))
	errs := make([]error, len(orderings))

	workers := runtime.GOMAXPROCS(0)
	if workers < 1 {
		workers = 1
	}
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup

	for i, order := range orderings {
		if ctx.Err() != nil {
			errs[i] = ctx.Err()
			continue
		}
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, order func([]model.ExpandedItem)) {
			defer wg.Done()
			defer func() { <-sem }()

			clone := cloneItems(items)
			order(clone)

			layouts, err := packer.Pack(clone, packer.Options{
				PanelTypes:      opts.PanelTypes,
				CutWidth:        opts.CutWidth,
				Mode:            opts.Mode,
				MinInitialUsage: opts.MinInitialUsage,
			})
			if err != nil {
				errs[i] = err
				return
			}

			reduced := reduce.Reduce(layouts, reduce.Options{
				CutWidth:        opts.CutWidth,
				Mode:            opts.Mode,
				MinInitialUsage: opts.MinInitialUsage,
				CanRotateByID:   canRotateByID,
			})
			results[i] = &Result{Layouts: reduced, Summary: model.Summarize(reduced)}
		}(i, order)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	var best *Result
	var firstErr error
	for i, r := range results {
		if r == nil {
			if errs[i] != nil && firstErr == nil {
				firstErr = errs[i]
			}
			continue
		}
		if best == nil || isBetter(*r, *best) {
			best = r
		}
	}

	if best == nil {
		if firstErr != nil {
			return Result{}, firstErr
		}
		return Result{}, model.NewCannotFitAll("no strategy produced a result")
	}
	return *best, nil
}

// isBetter reports whether candidate beats current under the driver's
// selection rule: fewest panels, then lowest waste_area.
func isBetter(candidate, current Result) bool {
	if candidate.Summary.TotalPanels != current.Summary.TotalPanels {
		return candidate.Summary.TotalPanels < current.Summary.TotalPanels
	}
	return candidate.Summary.WasteArea < current.Summary.WasteArea
}

func cloneItems(items []model.ExpandedItem) []model.ExpandedItem {
	return append([]model.ExpandedItem(nil), items...)
}

func sortAreaDesc(items []model.ExpandedItem) {
	sort.SliceStable(items, func(i, j int) bool { return items[i].Area() > items[j].Area() })
}

func sortHeightThenWidthDesc(items []model.ExpandedItem) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Height != items[j].Height {
			return items[i].Height > items[j].Height
		}
		return items[i].Width > items[j].Width
	})
}

func sortWidthThenHeightDesc(items []model.ExpandedItem) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Width != items[j].Width {
			return items[i].Width > items[j].Width
		}
		return items[i].Height > items[j].Height
	})
}

func sortNormalizedTallThenHeightWidthDesc(items []model.ExpandedItem) {
	normalizeTall(items)
	sortHeightThenWidthDesc(items)
}

func sortNormalizedWideThenWidthHeightDesc(items []model.ExpandedItem) {
	normalizeWide(items)
	sortWidthThenHeightDesc(items)
}

func sortNormalizedTallThenAreaDesc(items []model.ExpandedItem) {
	normalizeTall(items)
	sortAreaDesc(items)
}

// normalizeTall swaps width/height on every rotatable item so its long axis
// becomes height, biasing the downstream scorer toward a consistent
// orientation (§4.4).
func normalizeTall(items []model.ExpandedItem) {
	for i := range items {
		if items[i].CanRotate && items[i].Width > items[i].Height {
			items[i].Width, items[i].Height = items[i].Height, items[i].Width
		}
	}
}

// normalizeWide mirrors normalizeTall, making the long axis width.
func normalizeWide(items []model.ExpandedItem) {
	for i := range items {
		if items[i].CanRotate && items[i].Height > items[i].Width {
			items[i].Width, items[i].Height = items[i].Height, items[i].Width
		}
	}
}

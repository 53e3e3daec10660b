// Package optimizer is the engine facade: validate, expand, pack, reduce,
// backfill, and extract remnants, producing one OptimizationResult from one
// OptimizationRequest.
package optimizer

import (
	"context"
	"fmt"

	"github.com/panelcut/optimizer/internal/backfill"
	"github.com/panelcut/optimizer/internal/model"
	"github.com/panelcut/optimizer/internal/remnant"
	"github.com/panelcut/optimizer/internal/scorer"
	"github.com/panelcut/optimizer/internal/strategy"
)

// Optimize validates req, runs the strategy driver, backfills optional
// items, and extracts remnants, returning the assembled result. ctx is
// threaded through the strategy driver and the backfill pass; a deadline
// or cancellation surfaces as an error matching the context's error under
// errors.Is rather than a partial result.
func Optimize(ctx context.Context, req model.OptimizationRequest) (model.OptimizationResult, error) {
	if err := model.Validate(req); err != nil {
		return model.OptimizationResult{}, err
	}

	mode := objectiveMode(req)
	expanded := model.ExpandItems(req.Items)

	stratResult, err := strategy.Run(ctx, expanded, strategy.Options{
		PanelTypes:      req.PanelTypes,
		CutWidth:        req.CutWidth,
		Mode:            mode,
		MinInitialUsage: req.MinInitialUsage,
	})
	if err != nil {
		return model.OptimizationResult{}, err
	}

	layouts, optionalUsed, err := backfill.Run(ctx, stratResult.Layouts, req.PanelTypes, backfill.Options{
		CutWidth:               req.CutWidth,
		Mode:                   mode,
		MinInitialUsage:        req.MinInitialUsage,
		MinReusableRemnantSize: req.MinReusableRemnantSize,
	})
	if err != nil {
		return model.OptimizationResult{}, fmt.Errorf("optimize: backfill interrupted: %w", err)
	}

	layouts, reusableArea, actualWaste := remnant.Extract(layouts, req.CutWidth, req.MinReusableRemnantSize)

	summary := model.Summarize(layouts)
	if req.MinReusableRemnantSize != nil {
		summary = summary.WithRemnantAccounting(reusableArea, actualWaste)
	}

	return model.OptimizationResult{
		PanelsRequired:    model.BuildPanelsRequired(layouts),
		Layouts:           layouts,
		Summary:           summary,
		OptionalItemsUsed: optionalUsed,
	}, nil
}

// objectiveMode resolves the request's two objective toggles to a single
// scorer.Mode. When both are set, min_initial_usage takes precedence: it
// changes the packer's panel-opening order (via the panel-index penalty),
// which reusable-remnant scoring alone does not.
func objectiveMode(req model.OptimizationRequest) scorer.Mode {
	switch {
	case req.MinInitialUsage:
		return scorer.MinInitialUsage
	case req.OptimizeForReusableRemnants:
		return scorer.ReusableRemnant
	default:
		return scorer.Default
	}
}

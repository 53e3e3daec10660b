package model

import "math"

// Validate checks an OptimizationRequest against the structural rules in
// §6/§7 and returns an *Error with Kind InvalidInput describing the first
// violation found, or nil if the request is well-formed. It does not check
// whether the items can actually be packed — that is CannotFitAll territory,
// decided during packing.
func Validate(req OptimizationRequest) error {
	if !isFinite(req.CutWidth) || req.CutWidth < 0 {
		return NewInvalidInput("cut_width must be a finite number >= 0, got %v", req.CutWidth)
	}
	if len(req.PanelTypes) == 0 {
		return NewInvalidInput("panel_types must not be empty")
	}
	if len(req.Items) == 0 {
		return NewInvalidInput("items must not be empty")
	}

	seenPanelIDs := make(map[string]bool, len(req.PanelTypes))
	for _, pt := range req.PanelTypes {
		if pt.ID == "" {
			return NewInvalidInput("panel_types entries must have a non-empty id")
		}
		if seenPanelIDs[pt.ID] {
			return NewInvalidInput("duplicate panel_type id %q", pt.ID)
		}
		seenPanelIDs[pt.ID] = true

		if !isFinite(pt.Width) || !isFinite(pt.Height) || pt.Width <= 0 || pt.Height <= 0 {
			return NewInvalidInput("panel_type %q must have finite positive width/height", pt.ID)
		}
		if !isFinite(pt.Trimming) || pt.Trimming < 0 {
			return NewInvalidInput("panel_type %q trimming must be finite and >= 0", pt.ID)
		}
		if pt.UsableWidth() <= 0 || pt.UsableHeight() <= 0 {
			return NewInvalidInput("panel_type %q trimming leaves a non-positive usable area", pt.ID)
		}
		for _, oi := range pt.OptionalItems {
			if !isFinite(oi.Width) || !isFinite(oi.Height) || oi.Width <= 0 || oi.Height <= 0 {
				return NewInvalidInput("optional_item %q on panel_type %q must have finite positive width/height", oi.ID, pt.ID)
			}
			if oi.Quantity < 1 {
				return NewInvalidInput("optional_item %q on panel_type %q must have quantity >= 1", oi.ID, pt.ID)
			}
		}
	}

	seenItemIDs := make(map[string]bool, len(req.Items))
	for _, it := range req.Items {
		if it.ID == "" {
			return NewInvalidInput("items entries must have a non-empty id")
		}
		if seenItemIDs[it.ID] {
			return NewInvalidInput("duplicate item id %q", it.ID)
		}
		seenItemIDs[it.ID] = true

		if !isFinite(it.Width) || !isFinite(it.Height) || it.Width <= 0 || it.Height <= 0 {
			return NewInvalidInput("item %q must have finite positive width/height", it.ID)
		}
		if it.Quantity < 1 {
			return NewInvalidInput("item %q must have quantity >= 1", it.ID)
		}
	}

	if req.MinReusableRemnantSize != nil {
		if !isFinite(*req.MinReusableRemnantSize) || *req.MinReusableRemnantSize < 0 {
			return NewInvalidInput("min_reusable_remnant_size must be finite and >= 0")
		}
	}

	return nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Package model defines the request/result data types for the cutting-stock
// optimizer and the invariants that bind them together.
package model

// Item is a required rectangular piece, before quantity expansion.
type Item struct {
	ID        string  `json:"id"`
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
	Quantity  int     `json:"quantity"`
	CanRotate bool    `json:"can_rotate"`
}

// Area returns the item's unit area (width x height, pre-rotation).
func (it Item) Area() float64 {
	return it.Width * it.Height
}

// OptionalItem is an Item the caller permits the engine to add opportunistically
// during backfill (§4.6) if doing so reduces waste. It is never required and
// never forces a new panel to open.
type OptionalItem struct {
	ID        string  `json:"id"`
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
	Quantity  int     `json:"quantity"`
	CanRotate bool    `json:"can_rotate"`
	Priority  int     `json:"priority"`
}

// Area returns the optional item's unit area.
func (oi OptionalItem) Area() float64 {
	return oi.Width * oi.Height
}

// PanelType describes an available raw panel, including the uniform edge
// trim removed before any item may be placed.
type PanelType struct {
	ID            string         `json:"id"`
	Width         float64        `json:"width"`
	Height        float64        `json:"height"`
	Trimming      float64        `json:"trimming"`
	OptionalItems []OptionalItem `json:"optional_items,omitempty"`
}

// UsableWidth returns the width remaining after edge trim on both sides.
func (pt PanelType) UsableWidth() float64 {
	return pt.Width - 2*pt.Trimming
}

// UsableHeight returns the height remaining after edge trim on both sides.
func (pt PanelType) UsableHeight() float64 {
	return pt.Height - 2*pt.Trimming
}

// OptimizationRequest is the complete input to the engine.
type OptimizationRequest struct {
	CutWidth                    float64     `json:"cut_width"`
	PanelTypes                  []PanelType `json:"panel_types"`
	Items                       []Item      `json:"items"`
	MinInitialUsage             bool        `json:"min_initial_usage"`
	OptimizeForReusableRemnants bool        `json:"optimize_for_reusable_remnants"`
	MinReusableRemnantSize      *float64    `json:"min_reusable_remnant_size,omitempty"`
}

// Placement is one item placed on one panel.
type Placement struct {
	ItemID  string  `json:"item_id"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Width   float64 `json:"width"`  // as placed; swapped from the item's own dims if Rotated
	Height  float64 `json:"height"` // as placed
	Rotated bool    `json:"rotated"`
}

// Right, Top return the kerf-free extent of the placement.
func (p Placement) Right() float64 { return p.X + p.Width }
func (p Placement) Top() float64   { return p.Y + p.Height }

// UnusedArea is a rectangle of leftover space reported on a finished layout.
type UnusedArea struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Area returns the rectangle's area.
func (u UnusedArea) Area() float64 { return u.Width * u.Height }

// PanelLayout is one physical panel in the result, with everything placed on it.
type PanelLayout struct {
	PanelTypeID  string       `json:"panel_type_id"`
	PanelNumber  int          `json:"panel_number"` // 1-based, contiguous per panel type
	Width        float64      `json:"width"`        // panel type's dimensions, possibly swapped (see packer)
	Height       float64      `json:"height"`
	Trimming     float64      `json:"trimming"`
	Placements   []Placement  `json:"placements"`
	UnusedAreas  []UnusedArea `json:"unused_areas,omitempty"`
}

// UsedArea returns the total area consumed by placements on this panel.
func (pl PanelLayout) UsedArea() float64 {
	var total float64
	for _, p := range pl.Placements {
		total += p.Width * p.Height
	}
	return total
}

// TotalArea returns the full panel area (including trim).
func (pl PanelLayout) TotalArea() float64 {
	return pl.Width * pl.Height
}

// Summary aggregates totals across every layout in a result. JSON shape is
// controlled by MarshalJSON/UnmarshalJSON (json.go), not these struct tags.
type Summary struct {
	TotalPanels           int
	TotalArea             float64
	UsedArea              float64
	WasteArea             float64
	WastePercentage       float64
	ReusableRemnantArea   float64
	ActualWasteArea       float64
	ActualWastePercentage float64
	hasRemnantAccounting  bool
}

// HasRemnantAccounting reports whether the three remnant-related fields were
// populated (i.e. the request set min_reusable_remnant_size).
func (s Summary) HasRemnantAccounting() bool { return s.hasRemnantAccounting }

// WithRemnantAccounting returns a copy of s with the remnant fields set and
// the presence flag raised, so JSON marshaling includes them.
func (s Summary) WithRemnantAccounting(reusable, actualWaste float64) Summary {
	s.ReusableRemnantArea = reusable
	s.ActualWasteArea = actualWaste
	if s.TotalArea > 0 {
		s.ActualWastePercentage = (actualWaste / s.TotalArea) * 100.0
	}
	s.hasRemnantAccounting = true
	return s
}

// EffectiveWastePercentage returns actual_waste_percentage when remnant
// accounting is enabled, otherwise plain waste_percentage. This is the
// "effective waste" the backfill pass (§4.6) uses to decide whether to run.
func (s Summary) EffectiveWastePercentage() float64 {
	if s.hasRemnantAccounting {
		return s.ActualWastePercentage
	}
	return s.WastePercentage
}

// OptimizationResult is the complete output of the engine.
type OptimizationResult struct {
	PanelsRequired    map[string]int `json:"panels_required"`
	Layouts           []PanelLayout  `json:"layouts"`
	Summary           Summary        `json:"summary"`
	OptionalItemsUsed []string       `json:"optional_items_used,omitempty"`
}

// BuildPanelsRequired recomputes the panels_required map from the layouts.
func BuildPanelsRequired(layouts []PanelLayout) map[string]int {
	counts := make(map[string]int)
	for _, l := range layouts {
		counts[l.PanelTypeID]++
	}
	return counts
}

// Summarize recomputes Summary from a set of layouts. It does not populate
// the remnant-related fields; callers apply WithRemnantAccounting afterward
// when min_reusable_remnant_size was set.
func Summarize(layouts []PanelLayout) Summary {
	var totalArea, usedArea float64
	for _, l := range layouts {
		totalArea += l.TotalArea()
		usedArea += l.UsedArea()
	}
	waste := totalArea - usedArea
	var wastePct float64
	if totalArea > 0 {
		wastePct = (waste / totalArea) * 100.0
	}
	return Summary{
		TotalPanels:     len(layouts),
		TotalArea:       totalArea,
		UsedArea:        usedArea,
		WasteArea:       waste,
		WastePercentage: wastePct,
	}
}

package model

import "math"

// PurchaseEstimate holds the results of a panel-purchasing calculation (§4.8).
// It runs independently of the packing engine as a quick sizing tool a caller
// can use before committing to a full optimization.
type PurchaseEstimate struct {
	TotalItemArea     float64 `json:"total_item_area"`     // Total area of all items, incl. kerf allowance (sq mm)
	TotalBoardFeet    float64 `json:"total_board_feet"`    // Total area in board feet (1 bf = 144 sq in = 92903.04 sq mm)
	PanelArea         float64 `json:"panel_area"`          // Area of one panel (sq mm)
	PanelsNeededExact float64 `json:"panels_needed_exact"` // Exact fractional number of panels
	PanelsNeededMin   int     `json:"panels_needed_min"`   // Minimum panels (ceiling of exact)
	PanelsWithWaste   int     `json:"panels_with_waste"`   // Recommended panels including waste factor
	WastePercent      float64 `json:"waste_percent"`       // Waste factor applied (e.g., 15 for 15%)
	EstimatedCost     float64 `json:"estimated_cost"`      // Total cost if pricing available
	PricePerPanel     float64 `json:"price_per_panel"`     // Price used for estimation
	CutWidth          float64 `json:"cut_width"`           // Kerf used in calculation
}

// sqmmPerBoardFoot is the number of square millimeters in one board foot.
// 1 board foot = 12" x 12" x 1" (area) = 144 sq inches = 144 * 645.16 sq mm = 92903.04 sq mm.
const sqmmPerBoardFoot = 92903.04

// EstimatePurchase computes how many panels to buy for a given required item
// list. It accounts for kerf allowance per item and an additional waste
// percentage safety factor, independent of actually running the packer.
func EstimatePurchase(items []Item, panelWidth, panelHeight, cutWidth, wastePercent, pricePerPanel float64) PurchaseEstimate {
	var totalItemArea float64
	for _, it := range items {
		w := it.Width + cutWidth
		h := it.Height + cutWidth
		totalItemArea += w * h * float64(it.Quantity)
	}

	panelArea := panelWidth * panelHeight
	if panelArea <= 0 {
		return PurchaseEstimate{
			TotalItemArea:  totalItemArea,
			TotalBoardFeet: totalItemArea / sqmmPerBoardFoot,
			WastePercent:   wastePercent,
			CutWidth:       cutWidth,
		}
	}

	exactPanels := totalItemArea / panelArea
	minPanels := int(math.Ceil(exactPanels))

	wasteFactor := 1.0 + (wastePercent / 100.0)
	panelsWithWaste := int(math.Ceil(exactPanels * wasteFactor))
	if panelsWithWaste < minPanels {
		panelsWithWaste = minPanels
	}

	estimatedCost := float64(panelsWithWaste) * pricePerPanel

	return PurchaseEstimate{
		TotalItemArea:     totalItemArea,
		TotalBoardFeet:    totalItemArea / sqmmPerBoardFoot,
		PanelArea:         panelArea,
		PanelsNeededExact: exactPanels,
		PanelsNeededMin:   minPanels,
		PanelsWithWaste:   panelsWithWaste,
		WastePercent:      wastePercent,
		EstimatedCost:     estimatedCost,
		PricePerPanel:     pricePerPanel,
		CutWidth:          cutWidth,
	}
}

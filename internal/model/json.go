package model

import "encoding/json"

// summaryJSON mirrors Summary's exported shape for marshaling. The three
// remnant fields are pointers so they serialize as present (even when zero)
// iff remnant accounting was actually requested, matching the "present iff
// min_reusable_remnant_size was set" contract instead of omitempty-on-zero.
type summaryJSON struct {
	TotalPanels           int      `json:"total_panels"`
	TotalArea             float64  `json:"total_area"`
	UsedArea              float64  `json:"used_area"`
	WasteArea             float64  `json:"waste_area"`
	WastePercentage       float64  `json:"waste_percentage"`
	ReusableRemnantArea   *float64 `json:"reusable_remnant_area,omitempty"`
	ActualWasteArea       *float64 `json:"actual_waste_area,omitempty"`
	ActualWastePercentage *float64 `json:"actual_waste_percentage,omitempty"`
}

// MarshalJSON implements json.Marshaler so the remnant fields are emitted
// only when remnant accounting was actually performed.
func (s Summary) MarshalJSON() ([]byte, error) {
	out := summaryJSON{
		TotalPanels:     s.TotalPanels,
		TotalArea:       s.TotalArea,
		UsedArea:        s.UsedArea,
		WasteArea:       s.WasteArea,
		WastePercentage: s.WastePercentage,
	}
	if s.hasRemnantAccounting {
		out.ReusableRemnantArea = &s.ReusableRemnantArea
		out.ActualWasteArea = &s.ActualWasteArea
		out.ActualWastePercentage = &s.ActualWastePercentage
	}
	return json.Marshal(out)
}

// UnmarshalJSON implements json.Unmarshaler, reconstructing hasRemnantAccounting
// from whether the pointer-typed remnant fields were present in the document.
func (s *Summary) UnmarshalJSON(data []byte) error {
	var in summaryJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	s.TotalPanels = in.TotalPanels
	s.TotalArea = in.TotalArea
	s.UsedArea = in.UsedArea
	s.WasteArea = in.WasteArea
	s.WastePercentage = in.WastePercentage
	if in.ReusableRemnantArea != nil {
		s.ReusableRemnantArea = *in.ReusableRemnantArea
		s.hasRemnantAccounting = true
	}
	if in.ActualWasteArea != nil {
		s.ActualWasteArea = *in.ActualWasteArea
		s.hasRemnantAccounting = true
	}
	if in.ActualWastePercentage != nil {
		s.ActualWastePercentage = *in.ActualWastePercentage
		s.hasRemnantAccounting = true
	}
	return nil
}

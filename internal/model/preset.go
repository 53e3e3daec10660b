package model

import "github.com/google/uuid"

// PanelPreset bundles a reusable panel type definition plus a default kerf
// under a short name (e.g. "18mm-ply-2440"), so a caller never has to retype
// common sheet sizes on the CLI or HTTP surface (§4.9).
type PanelPreset struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Trimming float64 `json:"trimming"`
	CutWidth float64 `json:"cut_width"`
}

// NewPanelPreset creates a PanelPreset with a generated id.
func NewPanelPreset(name string, width, height, trimming, cutWidth float64) PanelPreset {
	return PanelPreset{
		ID:       uuid.New().String()[:8],
		Name:     name,
		Width:    width,
		Height:   height,
		Trimming: trimming,
		CutWidth: cutWidth,
	}
}

// ToPanelType converts the preset into a PanelType for splicing into a
// request's panel_types, using the given id for the resulting panel type.
func (p PanelPreset) ToPanelType(panelTypeID string) PanelType {
	return PanelType{
		ID:       panelTypeID,
		Width:    p.Width,
		Height:   p.Height,
		Trimming: p.Trimming,
	}
}

// PresetLibrary is the in-memory preset store (§4.9). On disk,
// config.LoadPresets/SavePresets persist only its Presets slice, as a flat
// JSON array.
type PresetLibrary struct {
	Presets []PanelPreset `json:"presets"`
}

// Find returns the preset with the given name, or false if absent.
func (l PresetLibrary) Find(name string) (PanelPreset, bool) {
	for _, p := range l.Presets {
		if p.Name == name {
			return p, true
		}
	}
	return PanelPreset{}, false
}

// Merge adds presets from other whose names are not already present,
// skipping duplicates by name (mirrors the dedup-by-id merge pattern used
// for importing an inventory).
func (l PresetLibrary) Merge(other PresetLibrary) PresetLibrary {
	seen := make(map[string]bool, len(l.Presets))
	for _, p := range l.Presets {
		seen[p.Name] = true
	}
	for _, p := range other.Presets {
		if !seen[p.Name] {
			l.Presets = append(l.Presets, p)
			seen[p.Name] = true
		}
	}
	return l
}

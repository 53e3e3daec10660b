package reduce

import (
	"testing"

	"github.com/panelcut/optimizer/internal/model"
	"github.com/panelcut/optimizer/internal/scorer"
	"github.com/stretchr/testify/assert"
)

func opts() Options {
	return Options{CutWidth: 2, Mode: scorer.Default, CanRotateByID: map[string]bool{"a": true, "b": true, "c": true}}
}

func TestReduce_MergesSparsePanelIntoOthers(t *testing.T) {
	layouts := []model.PanelLayout{
		{
			PanelTypeID: "sheet", PanelNumber: 1, Width: 1000, Height: 1000,
			Placements: []model.Placement{{ItemID: "a", X: 0, Y: 0, Width: 200, Height: 200}},
		},
		{
			PanelTypeID: "sheet", PanelNumber: 2, Width: 1000, Height: 1000,
			Placements: []model.Placement{{ItemID: "b", X: 0, Y: 0, Width: 400, Height: 400}},
		},
	}

	out := Reduce(layouts, opts())
	assert.Len(t, out, 1)
	assert.Len(t, out[0].Placements, 2)
}

func TestReduce_LeavesLayoutsUnchangedWhenEvacuationFails(t *testing.T) {
	layouts := []model.PanelLayout{
		{
			PanelTypeID: "sheet", PanelNumber: 1, Width: 500, Height: 500,
			Placements: []model.Placement{{ItemID: "a", X: 0, Y: 0, Width: 100, Height: 100}},
		},
		{
			PanelTypeID: "sheet", PanelNumber: 2, Width: 500, Height: 500,
			Placements: []model.Placement{{ItemID: "b", X: 0, Y: 0, Width: 490, Height: 490}},
		},
	}

	out := Reduce(layouts, opts())
	assert.Len(t, out, 2)
}

func TestReduce_RenumbersSequentiallyPerType(t *testing.T) {
	layouts := []model.PanelLayout{
		{PanelTypeID: "sheet", PanelNumber: 5, Width: 1000, Height: 1000,
			Placements: []model.Placement{{ItemID: "a", X: 0, Y: 0, Width: 100, Height: 100}}},
		{PanelTypeID: "sheet", PanelNumber: 9, Width: 1000, Height: 1000,
			Placements: []model.Placement{{ItemID: "b", X: 0, Y: 0, Width: 100, Height: 100}}},
	}
	out := renumber(cloneLayouts(layouts))
	assert.Equal(t, 1, out[0].PanelNumber)
	assert.Equal(t, 2, out[1].PanelNumber)
}

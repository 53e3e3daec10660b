package packer

import (
	"errors"
	"testing"

	"github.com/panelcut/optimizer/internal/model"
	"github.com/panelcut/optimizer/internal/scorer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPack_PlacesAllItemsOnOnePanelWhenTheyFit(t *testing.T) {
	opts := Options{
		PanelTypes: []model.PanelType{{ID: "sheet", Width: 1000, Height: 1000, Trimming: 0}},
		CutWidth:   2,
		Mode:       scorer.Default,
	}
	items := []model.ExpandedItem{
		{ID: "a", Width: 400, Height: 300},
		{ID: "b", Width: 400, Height: 300},
	}

	layouts, err := Pack(items, opts)
	require.NoError(t, err)
	assert.Len(t, layouts, 1)
	assert.Len(t, layouts[0].Placements, 2)
}

func TestPack_OpensSecondPanelWhenFirstIsFull(t *testing.T) {
	opts := Options{
		PanelTypes: []model.PanelType{{ID: "sheet", Width: 500, Height: 500, Trimming: 0}},
		CutWidth:   2,
		Mode:       scorer.Default,
	}
	items := []model.ExpandedItem{
		{ID: "a", Width: 400, Height: 400},
		{ID: "b", Width: 400, Height: 400},
	}

	layouts, err := Pack(items, opts)
	require.NoError(t, err)
	assert.Len(t, layouts, 2)
}

func TestPack_RotatesWhenAllowed(t *testing.T) {
	opts := Options{
		PanelTypes: []model.PanelType{{ID: "sheet", Width: 500, Height: 300, Trimming: 0}},
		CutWidth:   2,
		Mode:       scorer.Default,
	}
	items := []model.ExpandedItem{
		{ID: "a", Width: 280, Height: 450, CanRotate: true},
	}

	layouts, err := Pack(items, opts)
	require.NoError(t, err)
	require.Len(t, layouts, 1)
	require.Len(t, layouts[0].Placements, 1)
	assert.True(t, layouts[0].Placements[0].Rotated)
}

func TestPack_FailsWithCannotFitAll(t *testing.T) {
	opts := Options{
		PanelTypes: []model.PanelType{{ID: "sheet", Width: 100, Height: 100, Trimming: 0}},
		CutWidth:   2,
		Mode:       scorer.Default,
	}
	items := []model.ExpandedItem{{ID: "big", Width: 500, Height: 500}}

	_, err := Pack(items, opts)
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrCannotFitAll))
}

func TestPack_RespectsTrimming(t *testing.T) {
	opts := Options{
		PanelTypes: []model.PanelType{{ID: "sheet", Width: 100, Height: 100, Trimming: 10}},
		CutWidth:   0,
		Mode:       scorer.Default,
	}
	// Usable area is 80x80; this 85x85 item would fit the full 100x100 panel
	// but not the usable area once trimming is honored.
	items := []model.ExpandedItem{{ID: "a", Width: 85, Height: 85}}

	_, err := Pack(items, opts)
	require.Error(t, err)
}

func TestPack_SquareItemAcceptsEitherPanelOrientation(t *testing.T) {
	opts := Options{
		PanelTypes: []model.PanelType{
			{ID: "tall", Width: 100, Height: 1000, Trimming: 0},
		},
		CutWidth: 0,
		Mode:     scorer.Default,
	}
	items := []model.ExpandedItem{{ID: "a", Width: 50, Height: 50}}

	layouts, err := Pack(items, opts)
	require.NoError(t, err)
	require.Len(t, layouts, 1)
	// Swapped orientation (1000x100) gives the same capacity here since the
	// item is square; panel dims should be one of the two valid orientations.
	assert.Contains(t, []float64{100, 1000}, layouts[0].Width)
}

package optimizer

import (
	"context"
	"errors"
	"testing"

	"github.com/panelcut/optimizer/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptimize_PacksAllItemsIntoValidLayouts(t *testing.T) {
	req := model.OptimizationRequest{
		CutWidth: 3,
		PanelTypes: []model.PanelType{
			{ID: "sheet", Width: 2440, Height: 1220, Trimming: 10},
		},
		Items: []model.Item{
			{ID: "shelf", Width: 600, Height: 300, Quantity: 6},
		},
	}

	result, err := Optimize(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, req.PanelTypes[0].ID, result.Layouts[0].PanelTypeID)

	placed := 0
	for _, l := range result.Layouts {
		placed += len(l.Placements)
	}
	assert.Equal(t, 6, placed)
	assert.Equal(t, result.Summary.TotalPanels, len(result.Layouts))
}

func TestOptimize_RejectsInvalidRequest(t *testing.T) {
	req := model.OptimizationRequest{}
	_, err := Optimize(context.Background(), req)
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrInvalidInput))
}

func TestOptimize_ReturnsCannotFitAll(t *testing.T) {
	req := model.OptimizationRequest{
		CutWidth:   1,
		PanelTypes: []model.PanelType{{ID: "small", Width: 100, Height: 100}},
		Items:      []model.Item{{ID: "big", Width: 5000, Height: 5000, Quantity: 1}},
	}

	_, err := Optimize(context.Background(), req)
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrCannotFitAll))
}

func TestOptimize_PopulatesRemnantAccountingWhenThresholdSet(t *testing.T) {
	minSize := 10000.0
	req := model.OptimizationRequest{
		CutWidth:               2,
		PanelTypes:             []model.PanelType{{ID: "sheet", Width: 1000, Height: 1000}},
		Items:                  []model.Item{{ID: "a", Width: 200, Height: 200, Quantity: 1}},
		MinReusableRemnantSize: &minSize,
	}

	result, err := Optimize(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, result.Summary.HasRemnantAccounting())
}

func TestOptimize_CancelledContextSurfacesError(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	req := model.OptimizationRequest{
		CutWidth:   2,
		PanelTypes: []model.PanelType{{ID: "sheet", Width: 1000, Height: 1000}},
		Items:      []model.Item{{ID: "a", Width: 200, Height: 200, Quantity: 1}},
	}

	_, err := Optimize(ctx, req)
	assert.Error(t, err)
}

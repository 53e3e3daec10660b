package model

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validRequest() OptimizationRequest {
	return OptimizationRequest{
		CutWidth: 3,
		PanelTypes: []PanelType{
			{ID: "sheet", Width: 1000, Height: 1000, Trimming: 10},
		},
		Items: []Item{
			{ID: "a", Width: 100, Height: 100, Quantity: 2, CanRotate: true},
		},
	}
}

func TestValidate_AcceptsWellFormedRequest(t *testing.T) {
	assert.NoError(t, Validate(validRequest()))
}

func TestValidate_EmptyPanelTypes(t *testing.T) {
	req := validRequest()
	req.PanelTypes = nil
	err := Validate(req)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestValidate_EmptyItems(t *testing.T) {
	req := validRequest()
	req.Items = nil
	err := Validate(req)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestValidate_NegativeTrimming(t *testing.T) {
	req := validRequest()
	req.PanelTypes[0].Trimming = -1
	err := Validate(req)
	assert.Error(t, err)
}

func TestValidate_TrimmingConsumesWholePanel(t *testing.T) {
	req := validRequest()
	req.PanelTypes[0].Trimming = 600 // 2*600 > 1000
	err := Validate(req)
	assert.Error(t, err)
}

func TestValidate_NegativeCutWidth(t *testing.T) {
	req := validRequest()
	req.CutWidth = -1
	err := Validate(req)
	assert.Error(t, err)
}

func TestValidate_NonFiniteDimension(t *testing.T) {
	req := validRequest()
	req.Items[0].Width = math.NaN()
	err := Validate(req)
	assert.Error(t, err)
}

func TestValidate_DuplicateItemID(t *testing.T) {
	req := validRequest()
	req.Items = append(req.Items, req.Items[0])
	err := Validate(req)
	assert.Error(t, err)
}

func TestValidate_ZeroQuantityItem(t *testing.T) {
	req := validRequest()
	req.Items[0].Quantity = 0
	err := Validate(req)
	assert.Error(t, err)
}

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandItems_QuantityOneKeepsOriginalID(t *testing.T) {
	items := []Item{{ID: "solo", Width: 10, Height: 20, Quantity: 1}}
	expanded := ExpandItems(items)
	assert.Len(t, expanded, 1)
	assert.Equal(t, "solo", expanded[0].ID)
	assert.Equal(t, "solo", expanded[0].OriginID)
}

func TestExpandItems_QuantityAboveOneSuffixesIDs(t *testing.T) {
	items := []Item{{ID: "a", Width: 10, Height: 20, Quantity: 3}}
	expanded := ExpandItems(items)
	assert.Len(t, expanded, 3)
	assert.Equal(t, []string{"a_1", "a_2", "a_3"}, []string{expanded[0].ID, expanded[1].ID, expanded[2].ID})
	for _, e := range expanded {
		assert.Equal(t, "a", e.OriginID)
	}
}

func TestExpandItems_PreservesDimensionsAndRotate(t *testing.T) {
	items := []Item{{ID: "a", Width: 10, Height: 20, Quantity: 2, CanRotate: true}}
	expanded := ExpandItems(items)
	for _, e := range expanded {
		assert.Equal(t, 10.0, e.Width)
		assert.Equal(t, 20.0, e.Height)
		assert.True(t, e.CanRotate)
	}
}

func TestCanRotateByOrigin(t *testing.T) {
	expanded := ExpandItems([]Item{
		{ID: "a", Width: 1, Height: 1, Quantity: 1, CanRotate: true},
		{ID: "b", Width: 1, Height: 1, Quantity: 2, CanRotate: false},
	})
	m := CanRotateByOrigin(expanded)
	assert.True(t, m["a"])
	assert.False(t, m["b_1"])
	assert.False(t, m["b_2"])
}

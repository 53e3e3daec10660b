package svgrender

import (
	"strings"
	"testing"

	"github.com/panelcut/optimizer/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_OneDocumentPerLayout(t *testing.T) {
	result := model.OptimizationResult{
		Layouts: []model.PanelLayout{
			{PanelTypeID: "sheet", PanelNumber: 1, Width: 1000, Height: 500,
				Placements: []model.Placement{{ItemID: "a", X: 10, Y: 10, Width: 100, Height: 50}}},
			{PanelTypeID: "sheet", PanelNumber: 2, Width: 1000, Height: 500},
		},
	}

	docs := Render(result, Options{})
	require.Len(t, docs, 2)
	assert.True(t, strings.HasPrefix(docs[0], "<svg"))
	assert.Contains(t, docs[0], "a</text>")
}

func TestRender_IncludesUnusedAreas(t *testing.T) {
	result := model.OptimizationResult{
		Layouts: []model.PanelLayout{
			{PanelTypeID: "sheet", Width: 1000, Height: 500,
				UnusedAreas: []model.UnusedArea{{X: 0, Y: 0, Width: 50, Height: 50}}},
		},
	}
	docs := Render(result, Options{Scale: 2})
	assert.Contains(t, docs[0], "width=\"100.00\" height=\"100.00\"")
}

func TestEscapeText_EscapesReservedCharacters(t *testing.T) {
	assert.Equal(t, "a &lt; b &amp; c &gt; d", escapeText("a < b & c > d"))
}

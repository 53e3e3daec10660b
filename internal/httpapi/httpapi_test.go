package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/panelcut/optimizer/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestHealth_ReturnsOK(t *testing.T) {
	router := NewRouter()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)

	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestOptimize_ReturnsResultForValidRequest(t *testing.T) {
	router := NewRouter()
	body := model.OptimizationRequest{
		CutWidth:   2,
		PanelTypes: []model.PanelType{{ID: "sheet", Width: 1000, Height: 1000}},
		Items:      []model.Item{{ID: "a", Width: 100, Height: 100, Quantity: 2}},
	}
	data, err := json.Marshal(body)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/optimize", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	var result model.OptimizationResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.NotEmpty(t, result.Layouts)
}

func TestOptimize_ReturnsBadRequestForInvalidRequest(t *testing.T) {
	router := NewRouter()
	data := []byte(`{"cut_width": -1}`)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/optimize", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGenerateSVG_ReturnsSVGContentType(t *testing.T) {
	router := NewRouter()
	result := model.OptimizationResult{
		Layouts: []model.PanelLayout{{PanelTypeID: "sheet", Width: 100, Height: 100}},
	}
	data, err := json.Marshal(result)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/generate/svg", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "image/svg+xml")
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/panelcut/optimizer/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAppConfig_ReturnsDefaultWhenMissing(t *testing.T) {
	cfg, err := LoadAppConfig(filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)
	assert.Equal(t, model.DefaultAppConfig(), cfg)
}

func TestSaveAndLoadAppConfig_RoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	cfg := model.AppConfig{DefaultCutWidth: 5, DefaultTrimming: 12}

	require.NoError(t, SaveAppConfig(path, cfg))
	loaded, err := LoadAppConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestAddFindRemovePreset_RoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.json")
	preset := model.NewPanelPreset("18mm-ply-2440", 2440, 1220, 10, 3)

	require.NoError(t, AddPreset(path, preset))

	found, ok, err := FindPreset(path, "18mm-ply-2440")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, preset.Width, found.Width)

	removed, err := RemovePreset(path, "18mm-ply-2440")
	require.NoError(t, err)
	assert.True(t, removed)

	_, ok, err = FindPreset(path, "18mm-ply-2440")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDecodeRequestFile_ParsesJSONAndYAML(t *testing.T) {
	jsonPath := filepath.Join(t.TempDir(), "req.json")
	yamlPath := filepath.Join(t.TempDir(), "req.yaml")

	jsonBody := `{"cut_width":3,"panel_types":[{"id":"sheet","width":100,"height":100}],"items":[{"id":"a","width":10,"height":10,"quantity":1}]}`
	yamlBody := "cut_width: 3\npanel_types:\n  - id: sheet\n    width: 100\n    height: 100\nitems:\n  - id: a\n    width: 10\n    height: 10\n    quantity: 1\n"

	require.NoError(t, os.WriteFile(jsonPath, []byte(jsonBody), 0o644))
	require.NoError(t, os.WriteFile(yamlPath, []byte(yamlBody), 0o644))

	jsonReq, err := DecodeRequestFile(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, "sheet", jsonReq.PanelTypes[0].ID)

	yamlReq, err := DecodeRequestFile(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, "sheet", yamlReq.PanelTypes[0].ID)
}

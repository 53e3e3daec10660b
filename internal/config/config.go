// Package config loads and saves on-disk application state: the AppConfig
// defaults file, the panel-preset library, and request documents in either
// JSON or YAML, following the layout the CLI's predecessor in this space
// used under the user's home directory.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/panelcut/optimizer/internal/model"
)

// DefaultConfigDir returns ~/.panelcut, creating no directories itself.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".panelcut")
}

// DefaultConfigPath returns ~/.panelcut/config.json.
func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.json")
}

// DefaultPresetsPath returns ~/.panelcut/presets.json.
func DefaultPresetsPath() string {
	return filepath.Join(DefaultConfigDir(), "presets.json")
}

// LoadAppConfig reads an AppConfig from path, returning model.DefaultAppConfig
// with no error if the file does not exist yet.
func LoadAppConfig(path string) (model.AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.DefaultAppConfig(), nil
		}
		return model.AppConfig{}, err
	}
	var cfg model.AppConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return model.AppConfig{}, err
	}
	return cfg, nil
}

// SaveAppConfig persists cfg to path as indented JSON, creating parent
// directories as needed.
func SaveAppConfig(path string, cfg model.AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// LoadPresets reads the preset library from path, returning an empty
// library with no error if the file does not exist yet.
func LoadPresets(path string) (model.PresetLibrary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.PresetLibrary{}, nil
		}
		return model.PresetLibrary{}, err
	}
	var lib model.PresetLibrary
	if err := json.Unmarshal(data, &lib.Presets); err != nil {
		return model.PresetLibrary{}, err
	}
	return lib, nil
}

// SavePresets persists lib to path as indented JSON.
func SavePresets(path string, lib model.PresetLibrary) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(lib.Presets, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// AddPreset loads the library at path, merges in preset (by name), and
// saves it back.
func AddPreset(path string, preset model.PanelPreset) error {
	lib, err := LoadPresets(path)
	if err != nil {
		return err
	}
	lib = lib.Merge(model.PresetLibrary{Presets: []model.PanelPreset{preset}})
	return SavePresets(path, lib)
}

// RemovePreset loads the library at path, drops the preset with the given
// name if present, and saves it back. Reports whether anything was removed.
func RemovePreset(path string, name string) (bool, error) {
	lib, err := LoadPresets(path)
	if err != nil {
		return false, err
	}
	kept := make([]model.PanelPreset, 0, len(lib.Presets))
	removed := false
	for _, p := range lib.Presets {
		if p.Name == name {
			removed = true
			continue
		}
		kept = append(kept, p)
	}
	if !removed {
		return false, nil
	}
	lib.Presets = kept
	return true, SavePresets(path, lib)
}

// FindPreset loads the library at path and looks up name.
func FindPreset(path string, name string) (model.PanelPreset, bool, error) {
	lib, err := LoadPresets(path)
	if err != nil {
		return model.PanelPreset{}, false, err
	}
	preset, ok := lib.Find(name)
	return preset, ok, nil
}

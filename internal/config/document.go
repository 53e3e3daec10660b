package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/panelcut/optimizer/internal/model"
)

// DecodeRequestFile reads an OptimizationRequest from path, choosing YAML or
// JSON decoding by the file's extension (".yaml"/".yml" vs anything else).
func DecodeRequestFile(path string) (model.OptimizationRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.OptimizationRequest{}, err
	}

	var req model.OptimizationRequest
	if isYAML(path) {
		// The model types carry json tags only, so YAML is decoded generically
		// and re-encoded as JSON to apply the same snake_case field names.
		var doc any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return model.OptimizationRequest{}, fmt.Errorf("decode yaml request %s: %w", path, err)
		}
		if data, err = json.Marshal(doc); err != nil {
			return model.OptimizationRequest{}, fmt.Errorf("decode yaml request %s: %w", path, err)
		}
	}
	if err := json.Unmarshal(data, &req); err != nil {
		return model.OptimizationRequest{}, fmt.Errorf("decode json request %s: %w", path, err)
	}
	return req, nil
}

// EncodeResultFile writes result to path as YAML or JSON by extension. An
// empty path writes indented JSON to stdout instead.
func EncodeResultFile(path string, result model.OptimizationResult) error {
	if path == "" {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(append(data, '\n'))
		return err
	}

	var data []byte
	var err error
	if isYAML(path) {
		data, err = yaml.Marshal(result)
	} else {
		data, err = json.MarshalIndent(result, "", "  ")
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// DecodeResultFile reads an OptimizationResult from path for the `generate`
// CLI subcommand, which renders a previously computed result to SVG.
func DecodeResultFile(path string) (model.OptimizationResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.OptimizationResult{}, err
	}
	var result model.OptimizationResult
	if isYAML(path) {
		if err := yaml.Unmarshal(data, &result); err != nil {
			return model.OptimizationResult{}, fmt.Errorf("decode yaml result %s: %w", path, err)
		}
		return result, nil
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return model.OptimizationResult{}, fmt.Errorf("decode json result %s: %w", path, err)
	}
	return result, nil
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

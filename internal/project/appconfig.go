// Package project persists application preferences as JSON files.
package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/piwi3910/FlexoCalc/internal/model"
)

// ConfigDirEnv overrides the settings directory, mainly for portable
// installs and tests.
const ConfigDirEnv = "FLEXOCALC_CONFIG_DIR"

// DefaultConfigDir returns $FLEXOCALC_CONFIG_DIR when set, otherwise
// ~/.flexocalc on every platform.
func DefaultConfigDir() string {
	if dir := os.Getenv(ConfigDirEnv); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".flexocalc")
}

func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.json")
}

// SaveAppConfig writes config as indented JSON, creating missing parent
// directories.
func SaveAppConfig(path string, config model.AppConfig) error {
	return writeJSON(path, config)
}

// writeJSON writes v to a temporary file beside path and renames it into
// place.
func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", filepath.Base(path), err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filepath.Base(path), err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace %s: %w", filepath.Base(path), err)
	}
	return nil
}

// LoadAppConfig reads the settings at path over the defaults, so keys
// missing from an older file keep their default values. A missing file is
// not an error. On a read or parse error the defaults are returned along
// with the error, and the caller may carry on with them.
func LoadAppConfig(path string) (model.AppConfig, error) {
	config := model.DefaultAppConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return config, nil
	}
	if err != nil {
		return config, fmt.Errorf("failed to read settings: %w", err)
	}
	if err := json.Unmarshal(data, &config); err != nil {
		return model.DefaultAppConfig(), fmt.Errorf("failed to parse settings %s: %w", path, err)
	}
	config.Sanitize()
	return config, nil
}

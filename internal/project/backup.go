package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/piwi3910/FlexoCalc/internal/model"
)

// backupFormat is the version written into settings backups. Backups are
// readable when their major version matches.
const backupFormat = "1.0.0"

var ErrUnsupportedBackup = errors.New("unsupported settings backup")

// SettingsBackup is the envelope used to move settings between machines.
type SettingsBackup struct {
	Version   string          `json:"version"`
	CreatedAt time.Time       `json:"created_at"`
	Config    model.AppConfig `json:"config"`
}

func ExportSettings(path string, config model.AppConfig) error {
	return writeJSON(path, SettingsBackup{
		Version:   backupFormat,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
		Config:    config,
	})
}

// ImportSettings reads a backup written by ExportSettings and returns it
// with a sanitized config. Applying and saving it is up to the caller.
func ImportSettings(path string) (SettingsBackup, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SettingsBackup{}, fmt.Errorf("failed to read settings backup: %w", err)
	}
	var backup SettingsBackup
	if err := json.Unmarshal(data, &backup); err != nil {
		return SettingsBackup{}, fmt.Errorf("failed to parse settings backup: %w", err)
	}
	if major(backup.Version) != major(backupFormat) {
		return SettingsBackup{}, fmt.Errorf("%w: version %q", ErrUnsupportedBackup, backup.Version)
	}
	backup.Config.Sanitize()
	return backup, nil
}

func major(version string) string {
	m, _, _ := strings.Cut(version, ".")
	return m
}

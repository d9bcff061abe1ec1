// Package config holds the persisted settings shared by the tagsync
// commands.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/handiism/tagsync/internal/model"
)

// Settings holds all configuration options.
type Settings struct {
	// DryRun suppresses every file modification (tag writes and renames)
	// while still computing and reporting what would change.
	DryRun bool `json:"dry_run"`

	// Verbose emits per-file diagnostic detail.
	Verbose bool `json:"verbose"`

	// Recursive traverses subdirectories when scanning or indexing.
	Recursive bool `json:"recursive"`

	// RenameFiles enables renaming updated files to embed track and disc
	// ordering.
	RenameFiles bool `json:"rename_files"`

	// Workers bounds how many files the extractor reads concurrently.
	Workers int `json:"workers"`

	// OutputColumns is the column order of extracted interchange files.
	OutputColumns []string `json:"output_columns"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		Workers: 4,
		OutputColumns: []string{
			model.FieldFilename,
			model.FieldTitle,
			model.FieldArtist,
			model.FieldAlbum,
			model.FieldAlbumArtist,
			model.FieldGenre,
			model.FieldYear,
			model.FieldTrackNumber,
			model.FieldDiscNumber,
		},
	}
}

// Load reads settings from a JSON file. A missing file yields defaults.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}
	if settings.Workers < 1 {
		settings.Workers = 1
	}
	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	settings, err := Load(filepath.Join(t.TempDir(), "settings.json"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	defaults := DefaultSettings()
	if settings.Workers != defaults.Workers {
		t.Errorf("Workers = %d, want %d", settings.Workers, defaults.Workers)
	}
	if len(settings.OutputColumns) != len(defaults.OutputColumns) {
		t.Errorf("OutputColumns = %v", settings.OutputColumns)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.json")
	settings := DefaultSettings()
	settings.DryRun = true
	settings.Recursive = true
	settings.Workers = 8

	if err := settings.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !loaded.DryRun || !loaded.Recursive || loaded.Workers != 8 {
		t.Errorf("loaded = %+v", loaded)
	}
}

func TestLoadClampsWorkers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte(`{"workers": 0}`), 0644); err != nil {
		t.Fatal(err)
	}
	settings, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if settings.Workers != 1 {
		t.Errorf("Workers = %d, want clamped to 1", settings.Workers)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed settings file")
	}
}

package cliconfig

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadParsesYAMLAndDefaultsFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	contents := "caveinfo: SCx1.json\nworkers: 4\n"
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("writing fixture config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.CaveInfo != "SCx1.json" {
		t.Errorf("CaveInfo = %q, want SCx1.json", cfg.CaveInfo)
	}
	if cfg.Workers != 4 {
		t.Errorf("Workers = %d, want 4", cfg.Workers)
	}
	if cfg.Format != "json" {
		t.Errorf("Format = %q, want default \"json\"", cfg.Format)
	}
}

func TestLoadRejectsMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("Load() = nil error, want error for missing file")
	}
}

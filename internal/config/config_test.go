package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Potential.Kind != "sumgauss" {
		t.Errorf("expected potential sumgauss, got %s", cfg.Potential.Kind)
	}
	if cfg.Fire.DtStart <= 0 {
		t.Error("dt_start should be positive")
	}
	if cfg.Fire.Tol <= 0 {
		t.Error("tol should be positive")
	}
	if cfg.NDOF() != len(cfg.InitCoords) {
		t.Errorf("init coords length %d does not match ndof %d", len(cfg.InitCoords), cfg.NDOF())
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Potential.Mean = []float64{1, 2, 3, 4}
	cfg.Fire.Tol = 1e-6

	path := filepath.Join(t.TempDir(), "run.yaml")
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if loaded.Fire.Tol != 1e-6 {
		t.Errorf("expected tol 1e-6, got %g", loaded.Fire.Tol)
	}
	if len(loaded.Potential.Mean) != 4 || loaded.Potential.Mean[3] != 4 {
		t.Errorf("mean did not round-trip: %v", loaded.Potential.Mean)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("twin")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Potential.Kind != "sumgauss" {
		t.Errorf("expected sumgauss, got %s", cfg.Potential.Kind)
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) == 0 {
		t.Error("expected presets")
	}
}

func TestNDOFHarmonic(t *testing.T) {
	cfg := GetPreset("spring")
	if cfg == nil {
		t.Fatal("expected spring preset")
	}
	if cfg.NDOF() != 2 {
		t.Errorf("expected 2 dof, got %d", cfg.NDOF())
	}
}

func TestPresetsAreRunnable(t *testing.T) {
	for name, cfg := range Presets {
		if cfg.Fire.DtStart <= 0 {
			t.Errorf("preset %s: dt_start must be positive", name)
		}
		if cfg.NDOF() != len(cfg.InitCoords) {
			t.Errorf("preset %s: init coords length %d != ndof %d", name, len(cfg.InitCoords), cfg.NDOF())
		}
	}
}

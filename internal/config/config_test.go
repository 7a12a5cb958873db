package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Rows != 100 || cfg.Cols != 64 {
		t.Errorf("unexpected default grid %dx%d", cfg.Rows, cfg.Cols)
	}
	if cfg.RuleSet != "isotropic" {
		t.Errorf("unexpected default rule set %q", cfg.RuleSet)
	}
	if cfg.Interval <= 0 || cfg.Interval > cfg.Duration {
		t.Errorf("interval %f not in (0, %f]", cfg.Interval, cfg.Duration)
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")

	cfg := DefaultConfig()
	cfg.Rows = 40
	cfg.RuleSet = "biased"
	cfg.Seed = 777
	cfg.OpenEdges = true

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("roundtrip mismatch:\nsaved  %+v\nloaded %+v", cfg, loaded)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadPartialConfigKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	partial := &Config{}
	*partial = *DefaultConfig()
	partial.Rows = 10
	if err := Save(path, partial); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Rows != 10 {
		t.Errorf("expected rows 10, got %d", loaded.Rows)
	}
	if loaded.Cols != DefaultCols {
		t.Errorf("expected default cols, got %d", loaded.Cols)
	}
}

func TestPresets(t *testing.T) {
	for _, name := range ListPresets() {
		t.Run(name, func(t *testing.T) {
			cfg := GetPreset(name)
			if cfg == nil {
				t.Fatal("listed preset not found")
			}
			if cfg.Rows < 1 || cfg.Cols < 1 || cfg.Duration <= 0 {
				t.Errorf("preset has invalid dimensions: %+v", cfg)
			}
		})
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for unknown preset")
	}
}

func TestScenarioConversion(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 42

	sc := cfg.Scenario()
	if sc.Rows != cfg.Rows || sc.Cols != cfg.Cols || sc.Seed != 42 {
		t.Errorf("conversion dropped fields: %+v", sc)
	}
	if sc.RuleSet != cfg.RuleSet || sc.Interval != cfg.Interval {
		t.Errorf("conversion dropped fields: %+v", sc)
	}
}

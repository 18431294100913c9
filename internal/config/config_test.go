package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Model != DefaultModel {
		t.Errorf("expected model %s, got %s", DefaultModel, cfg.Model)
	}
	if cfg.Steps <= 0 {
		t.Error("steps should be positive")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("identity", "fixed")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Steps != 3 {
		t.Errorf("expected 3 steps, got %d", cfg.Steps)
	}
	if len(cfg.InitState) != 2 || cfg.InitState[0] != 0.2 || cfg.InitState[1] != 0.8 {
		t.Errorf("unexpected init state %v", cfg.InitState)
	}
}

func TestGetPreset_ReturnsFreshCopy(t *testing.T) {
	a := GetPreset("logistic", "chaotic")
	a.InitState[0] = 0.9
	a.Distribution.Params["min"] = 0

	b := GetPreset("logistic", "chaotic")
	if b.InitState[0] != 0.2 {
		t.Errorf("preset init state was mutated: %v", b.InitState)
	}
	if b.Distribution.Params["min"] != 3.7 {
		t.Errorf("preset params were mutated: %v", b.Distribution.Params)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("rotation", "nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if cfg := GetPreset("nonexistent", "fixed"); cfg != nil {
		t.Error("expected nil for nonexistent model")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets("logistic")
	if len(presets) != 3 || presets[0] != "chaotic" {
		t.Errorf("expected sorted logistic presets, got %v", presets)
	}
	if presets := ListPresets("nonexistent"); presets != nil {
		t.Error("expected nil for nonexistent model")
	}
}

func TestPresetsValidate(t *testing.T) {
	for _, model := range PresetModels() {
		for _, name := range ListPresets(model) {
			if err := GetPreset(model, name).Validate(); err != nil {
				t.Errorf("preset %s/%s: %v", model, name, err)
			}
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty model", func(c *Config) { c.Model = "" }},
		{"bad mode", func(c *Config) { c.Mode = "frozen" }},
		{"zero steps", func(c *Config) { c.Steps = 0 }},
		{"no init state", func(c *Config) { c.InitState = nil }},
		{"init state out of range", func(c *Config) { c.InitState = []float64{0.5, 1.5} }},
		{"bad format", func(c *Config) { c.Output.Format = "xml" }},
		{"bad renderer", func(c *Config) { c.Output.Renderer = "svg" }},
	}

	for _, tt := range tests {
		cfg := DefaultConfig()
		tt.mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
}

func TestLoadSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	cfg := GetPreset("rotation", "population")
	cfg.Seed = 99
	cfg.CaptureOmegas = true

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Mode != "annealed" || loaded.Seed != 99 || !loaded.CaptureOmegas {
		t.Errorf("round trip lost fields: %+v", loaded)
	}
	if len(loaded.InitState) != 5 {
		t.Errorf("expected 5 coordinates, got %d", len(loaded.InitState))
	}
}

func TestLoad_FillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("model: tent\nsteps: 7\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Model != "tent" || cfg.Steps != 7 {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if cfg.Distribution.Name != "uniform" || cfg.LogLevel != DefaultLogLevel {
		t.Errorf("defaults not kept: %+v", cfg)
	}
}

func TestLoad_Missing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("RDSIM_STEPS", "25")
	t.Setenv("RDSIM_MODE", "annealed")
	t.Setenv("RDSIM_INIT_STATE", "0.1,0.2,0.3")
	t.Setenv("RDSIM_DIST_NAME", "beta")
	t.Setenv("RDSIM_DIST_PARAMS", "alpha:3,beta:4")
	t.Setenv("RDSIM_OUTPUT_FORMAT", "json")

	cfg := DefaultConfig()
	if err := ApplyEnv(cfg, ""); err != nil {
		t.Fatalf("apply env: %v", err)
	}

	if cfg.Steps != 25 || cfg.Mode != "annealed" {
		t.Errorf("scalar overrides not applied: %+v", cfg)
	}
	if len(cfg.InitState) != 3 || cfg.InitState[2] != 0.3 {
		t.Errorf("init state override not applied: %v", cfg.InitState)
	}
	if cfg.Distribution.Name != "beta" || cfg.Distribution.Params["beta"] != 4 {
		t.Errorf("distribution override not applied: %+v", cfg.Distribution)
	}
	if cfg.Output.Format != "json" {
		t.Errorf("output override not applied: %+v", cfg.Output)
	}
	if cfg.Model != DefaultModel {
		t.Errorf("unset variable changed model to %s", cfg.Model)
	}
}

func TestApplyEnv_DotenvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "RDSIM_SEED=1234\nRDSIM_OBSERVABLE=square\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("RDSIM_OBSERVABLE", "cos")
	t.Cleanup(func() { os.Unsetenv("RDSIM_SEED") })

	cfg := DefaultConfig()
	if err := ApplyEnv(cfg, path); err != nil {
		t.Fatalf("apply env: %v", err)
	}
	if cfg.Seed != 1234 {
		t.Errorf("expected seed from .env, got %d", cfg.Seed)
	}
	if cfg.Observable != "cos" {
		t.Errorf("process environment should win over .env, got %s", cfg.Observable)
	}
}

func TestApplyEnv_InvalidValue(t *testing.T) {
	t.Setenv("RDSIM_STEPS", "many")
	if err := ApplyEnv(DefaultConfig(), ""); err == nil {
		t.Error("expected parse error")
	}
}

func TestGetInitState_Copies(t *testing.T) {
	cfg := DefaultConfig()
	cfg.InitState = []float64{0.4}
	x0 := cfg.GetInitState()
	x0[0] = 0.9
	if cfg.InitState[0] != 0.4 {
		t.Error("GetInitState aliased config memory")
	}
}

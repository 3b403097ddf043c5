package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Arena.BarHeight != 90 {
		t.Errorf("expected bar height 90, got %f", cfg.Arena.BarHeight)
	}
	if cfg.Timing.EventDuration != 20 {
		t.Errorf("expected event duration 20, got %f", cfg.Timing.EventDuration)
	}
	if dt := cfg.Dt(); dt != 1.0/60 {
		t.Errorf("expected dt 1/60, got %f", dt)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"zero width", func(c *Config) { c.Arena.Width = 0 }, ErrInvalidArena},
		{"negative height", func(c *Config) { c.Arena.Height = -1 }, ErrInvalidArena},
		{"bar taller than window", func(c *Config) { c.Arena.BarHeight = 700 }, ErrInvalidArena},
		{"zero fps", func(c *Config) { c.Timing.FPS = 0 }, ErrInvalidTiming},
		{"zero event duration", func(c *Config) { c.Timing.EventDuration = 0 }, ErrInvalidTiming},
		{"zero run duration", func(c *Config) { c.Run.Duration = 0 }, ErrInvalidTiming},
		{"zero sampling", func(c *Config) { c.Run.SampleEvery = 0 }, ErrInvalidTiming},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLoadSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ballpit.yaml")
	cfg := DefaultConfig()
	cfg.Seed = 42
	cfg.Arena.Width = 1024
	cfg.View.Sound = true

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Seed != 42 || loaded.Arena.Width != 1024 || !loaded.View.Sound {
		t.Errorf("round trip lost values: %+v", loaded)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("seed: 7\narena:\n  width: 400\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Arena.Width != 400 {
		t.Errorf("expected width 400, got %f", cfg.Arena.Width)
	}
	if cfg.Arena.Height != DefaultHeight || cfg.Timing.FPS != DefaultFPS {
		t.Errorf("missing keys should keep defaults: %+v", cfg)
	}
}

func TestLoad_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("arena:\n  width: -5\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, ErrInvalidArena) {
		t.Errorf("expected ErrInvalidArena, got %v", err)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("phone")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Arena.Height <= cfg.Arena.Width {
		t.Errorf("phone preset should be portrait, got %fx%f", cfg.Arena.Width, cfg.Arena.Height)
	}
	cfg.Arena.Width = 1
	if Presets["phone"].Arena.Width == 1 {
		t.Error("GetPreset must return a copy")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets()
	if len(presets) != len(Presets) {
		t.Fatalf("expected %d presets, got %d", len(Presets), len(presets))
	}
	for _, name := range presets {
		if err := GetPreset(name).Validate(); err != nil {
			t.Errorf("preset %s invalid: %v", name, err)
		}
	}
}

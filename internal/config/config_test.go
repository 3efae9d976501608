package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parseReef(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults failed to parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultReefConfig()) {
		t.Errorf("embedded defaults drifted from DefaultReefConfig():\n%+v\n%+v", cfg, DefaultReefConfig())
	}
}

func TestLoadReefCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "reef.yaml")
	data := []byte("player:\n  max_speed: 3.5\ncombo:\n  max: 5\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadReef(path)
	if err != nil {
		t.Fatalf("LoadReef() failed: %v", err)
	}
	if cfg.Player.MaxSpeed != 3.5 {
		t.Errorf("MaxSpeed = %v, expected 3.5", cfg.Player.MaxSpeed)
	}
	if cfg.Combo.Max != 5 {
		t.Errorf("Combo.Max = %v, expected 5", cfg.Combo.Max)
	}
	// Keys absent from the file keep their defaults
	if cfg.World.SegmentCount != 20 {
		t.Errorf("SegmentCount = %v, expected default 20", cfg.World.SegmentCount)
	}
}

func TestLoadReefErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadReef(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("world:\n  segment_count: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadReef(bad)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}

	garbage := filepath.Join(dir, "garbage.yaml")
	if err := os.WriteFile(garbage, []byte("player: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadReef(garbage); err == nil {
		t.Error("expected parse error for malformed YAML")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ReefConfig)
	}{
		{"zero segment length", func(c *ReefConfig) { c.World.SegmentLength = 0 }},
		{"inverted cleanup window", func(c *ReefConfig) { c.World.CleanupMin = 60 }},
		{"unknown smoothing", func(c *ReefConfig) { c.Movement.Smoothing = "cubic" }},
		{"smoothing factor above one", func(c *ReefConfig) { c.Movement.SmoothingFactor = 1.5 }},
		{"zero combo cap", func(c *ReefConfig) { c.Combo.Max = 0 }},
	}

	if err := DefaultReefConfig().Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultReefConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset      DifficultyPreset
		wantEnabled bool
		wantRate    float64
	}{
		{DifficultyEasy, true, 0.00002},
		{DifficultyNormal, true, 0.00003},
		{DifficultyHard, true, 0.00005},
		{DifficultyFixed, false, 0.00003},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultReefConfig()
			ApplyPreset(&cfg, tc.preset)
			if cfg.Difficulty.Enabled != tc.wantEnabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.wantEnabled)
			}
			if cfg.Difficulty.RampRate != tc.wantRate {
				t.Errorf("RampRate = %v, expected %v", cfg.Difficulty.RampRate, tc.wantRate)
			}
		})
	}

	if ParseDifficultyPreset("nightmare") != "" {
		t.Error("unknown preset should parse to empty")
	}
}

func TestDifficultyBaseSpeed(t *testing.T) {
	dm := NewDifficultyManager(DefaultReefConfig().Difficulty)

	tests := []struct {
		distance, species, expected float64
	}{
		{0, 1.0, 0.5},
		{10000, 1.0, 0.8},
		{50000, 1.0, 2.0},  // exactly at the cap
		{100000, 1.0, 2.0}, // capped
		{10000, 1.3, 0.8 * 1.3},
		{-50, 1.0, 0.5}, // negative distance never lowers speed
	}

	for _, tc := range tests {
		got := dm.BaseSpeed(tc.distance, tc.species)
		if math.Abs(got-tc.expected) > 1e-9 {
			t.Errorf("BaseSpeed(%v, %v) = %v, expected %v", tc.distance, tc.species, got, tc.expected)
		}
	}

	if lvl := dm.Level(25000); math.Abs(lvl-0.5) > 1e-9 {
		t.Errorf("Level(25000) = %v, expected 0.5", lvl)
	}

	dm.SetEnabled(false)
	if got := dm.BaseSpeed(100000, 1.0); got != 0.5 {
		t.Errorf("fixed BaseSpeed = %v, expected 0.5", got)
	}
	if dm.Level(100000) != 0 {
		t.Error("fixed Level should be 0")
	}
}

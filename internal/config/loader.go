package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadReef loads the reef configuration.
// Search order: customPath -> ~/.reef/configs/reef.yaml -> ./configs/reef.yaml -> embedded default.
// Files are applied on top of the defaults, so a file only needs the keys it overrides.
func LoadReef(customPath string) (ReefConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultReefConfig(), fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parseReef(data)
		if err != nil {
			return DefaultReefConfig(), fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("reef.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseReef(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "reef.yaml")); err == nil {
		if cfg, err := parseReef(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseReef(defaultReefYAML)
	if err != nil {
		return DefaultReefConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseReef decodes YAML over the defaults and validates the result.
func parseReef(data []byte) (ReefConfig, error) {
	cfg := DefaultReefConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".reef", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplyPreset(cfg *ReefConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.RampRate = RampRateForPreset(preset)

	// Adjust recovery windows based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Player.Invulnerability = 1.5
		cfg.Combo.Window = 4
	case DifficultyHard:
		cfg.Player.Invulnerability = 0.75
		cfg.Combo.Window = 2.5
	}
}

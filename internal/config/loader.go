package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadCavern loads Cavern configuration.
// Search order: customPath -> ~/.cavern/configs/cavern.yaml -> ./configs/cavern.yaml -> embedded default
func LoadCavern(customPath string) (CavernConfig, error) {
	var cfg CavernConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("cavern.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/cavern.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultCavernYAML, &cfg); err != nil {
		return DefaultCavernConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".cavern", "configs", filename)
}

// ApplyCavernPreset modifies the config based on a difficulty preset.
func ApplyCavernPreset(cfg *CavernConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust survivability and enemy pressure per preset
	switch preset {
	case DifficultyEasy:
		cfg.Player.Lives = 5
		cfg.Robot.BoltInterval = 120
		cfg.Robot.TrappedDuration = 240
	case DifficultyHard:
		cfg.Player.Lives = 2
		cfg.Robot.BoltInterval = 60
		cfg.Robot.TrappedDuration = 120
	}
}

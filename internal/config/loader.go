package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadTuning loads the gameplay tuning.
// Search order: customPath -> ~/.platformer/configs/tuning.yaml -> ./configs/tuning.yaml -> embedded default
func LoadTuning(customPath string) (Tuning, error) {
	var cfg Tuning

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("tuning.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil && cfg.validate() == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/tuning.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil && cfg.validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultTuningYAML, &cfg); err != nil {
		return DefaultTuning(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".platformer", "configs", filename)
}

// validate rejects tunings the simulation cannot run on.
func (t Tuning) validate() error {
	if t.Geometry.TileSize <= 0 {
		return fmt.Errorf("tile_size must be positive")
	}
	if t.Geometry.PlayerWidth <= 0 || t.Geometry.PlayerHeight <= 0 {
		return fmt.Errorf("player size must be positive")
	}
	if t.Geometry.EnemyWidth <= 0 || t.Geometry.EnemyHeight <= 0 {
		return fmt.Errorf("enemy size must be positive")
	}
	if t.Geometry.MushroomWidth <= 0 || t.Geometry.MushroomHeight <= 0 {
		return fmt.Errorf("mushroom size must be positive")
	}
	if t.Movement.Gravity <= 0 {
		return fmt.Errorf("gravity must be positive")
	}
	if t.Movement.MoveSpeed <= 0 || t.Movement.JumpSpeed <= 0 {
		return fmt.Errorf("move_speed and jump_speed must be positive")
	}
	return nil
}

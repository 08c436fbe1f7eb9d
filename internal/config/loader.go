package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadSlash loads the Slash configuration.
// Search order: customPath -> ~/.slash/configs/slash.yaml -> ./configs/slash.yaml -> embedded default
//
// Only a custom path is reported on failure; the other locations are optional
// and silently skipped when missing or unparsable. The result is validated
// whichever source it came from.
func LoadSlash(customPath string) (SlashConfig, error) {
	cfg, err := loadSlash(customPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadSlash(customPath string) (SlashConfig, error) {
	if customPath != "" {
		cfg := DefaultSlashConfig()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range []string{userConfigPath("slash.yaml"), filepath.Join("configs", "slash.yaml")} {
		if path == "" {
			continue
		}
		if cfg, ok := readSlash(path); ok {
			return cfg, nil
		}
	}

	cfg := DefaultSlashConfig()
	if err := yaml.Unmarshal(defaultSlashYAML, &cfg); err != nil {
		return DefaultSlashConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// readSlash overlays the file at path on the defaults, so a user file may set
// only the keys it cares about.
func readSlash(path string) (SlashConfig, bool) {
	cfg := DefaultSlashConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".slash", "configs", filename)
}

// ApplySlashPreset modifies the config based on a difficulty preset.
func ApplySlashPreset(cfg *SlashConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	switch preset {
	case DifficultyEasy:
		cfg.Balls.Speed *= 0.75
		cfg.Rules.TargetFraction = max(cfg.Rules.TargetFraction, 0.3)
	case DifficultyHard:
		cfg.Balls.Initial++
		cfg.Balls.Speed *= 1.25
		cfg.Rules.TargetFraction = min(cfg.Rules.TargetFraction, 0.15)
	}
}

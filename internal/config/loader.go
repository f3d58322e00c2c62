package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadBubbles loads the bubble shooter configuration. Files are layered
// over the defaults, so a partial file only overrides what it names.
//
// An explicit path must exist and parse. Otherwise the first readable and
// valid file among ~/.bubbles/configs/bubbles.yaml and
// ./configs/bubbles.yaml wins, then the embedded default.
func LoadBubbles(path string) (BubblesConfig, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return DefaultBubblesConfig(), fmt.Errorf("failed to read config %s: %w", path, err)
		}
		cfg, err := parseBubbles(data)
		if err != nil {
			return DefaultBubblesConfig(), fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		return cfg, nil
	}

	for _, candidate := range searchPaths("bubbles.yaml") {
		data, err := os.ReadFile(candidate)
		if err != nil {
			continue
		}
		if cfg, err := parseBubbles(data); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := parseBubbles(defaultBubblesYAML); err == nil {
		return cfg, nil
	}
	return DefaultBubblesConfig(), nil
}

// parseBubbles decodes data over the defaults and validates the result.
func parseBubbles(data []byte) (BubblesConfig, error) {
	cfg := DefaultBubblesConfig()
	// A palette in the file replaces the stock one instead of merging by index.
	cfg.Palette = nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if len(cfg.Palette) == 0 {
		cfg.Palette = DefaultPalette()
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// searchPaths lists the implicit config locations for filename, user
// directory first.
func searchPaths(filename string) []string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".bubbles", "configs", filename))
	}
	return append(paths, filepath.Join("configs", filename))
}

// ApplyBubblesPreset modifies the config based on a difficulty preset.
func ApplyBubblesPreset(cfg *BubblesConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Projectile.SpreadArc = 6
		cfg.Field.WinFraction = 0.4
		cfg.Shooter.PreviewTime = 8
	case DifficultyHard:
		cfg.Projectile.SpreadArc = 14
		cfg.Field.WinFraction = 0.2
		cfg.Shooter.PreviewTime = 2
	}
}

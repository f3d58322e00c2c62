package config

import (
	_ "embed"
)

//go:embed defaults/bubbles.yaml
var defaultBubblesYAML []byte

// DefaultBubblesConfig returns the default bubble shooter configuration.
func DefaultBubblesConfig() BubblesConfig {
	return BubblesConfig{
		Field: BubblesField{
			Cols:           10,
			Rows:           10,
			CellRadius:     0.5,
			Spacing:        0.1,
			MinMatch:       3,
			WinFraction:    0.3,
			DestroyDelay:   0.1,
			AttachDuration: 0.1,
		},
		Projectile: BubblesProjectile{
			MinSpeed:   10,
			MaxSpeed:   20,
			MinGravity: 0,
			MaxGravity: 5,
			SpreadArc:  10,
			Radius:     0.5,
			WallBounce: 0.1,
		},
		Shooter: BubblesShooter{
			PreviewStep:  0.02,
			PreviewTime:  5,
			AimStep:      3,
			AimLimit:     80,
			PowerStep:    0.1,
			InitialPower: 0.5,
		},
		Scoring: BubblesScoring{
			MatchPoints:    1,
			IsolatedPoints: 2,
			WinDelay:       1.5,
			LoseDelay:      1.5,
		},
		Palette: DefaultPalette(),
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "rounds",
				MaxAt: 10,
			},
			Scaling: ScalingConfig{
				ShotReduction:    5,
				SpreadMultiplier: 0.5,
			},
		},
	}
}

// DefaultPalette returns the six stock bubble colors.
func DefaultPalette() []PaletteEntry {
	return []PaletteEntry{
		{Name: "red", Glyph: "R", Color: "bright_red"},
		{Name: "green", Glyph: "G", Color: "bright_green"},
		{Name: "blue", Glyph: "B", Color: "bright_blue"},
		{Name: "yellow", Glyph: "Y", Color: "bright_yellow"},
		{Name: "purple", Glyph: "P", Color: "bright_magenta"},
		{Name: "cyan", Glyph: "C", Color: "bright_cyan"},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultBubblesYAML
}

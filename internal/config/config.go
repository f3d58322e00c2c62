// Package config provides YAML-based game configuration loading and
// difficulty management for the bubble shooter.
package config

// BubblesConfig contains all configuration for the bubble shooter.
type BubblesConfig struct {
	Field      BubblesField      `yaml:"field"`
	Projectile BubblesProjectile `yaml:"projectile"`
	Shooter    BubblesShooter    `yaml:"shooter"`
	Scoring    BubblesScoring    `yaml:"scoring"`
	Palette    []PaletteEntry    `yaml:"palette"`
	Difficulty DifficultyConfig  `yaml:"difficulty"`
}

// BubblesField defines the hex grid and its match rules.
type BubblesField struct {
	Cols           int     `yaml:"cols"`
	Rows           int     `yaml:"rows"`
	CellRadius     float64 `yaml:"cell_radius"`
	Spacing        float64 `yaml:"spacing"`
	MinMatch       int     `yaml:"min_match"`
	WinFraction    float64 `yaml:"win_fraction"`    // share of the initial top row that may remain
	DestroyDelay   float64 `yaml:"destroy_delay"`   // seconds between pop effects
	AttachDuration float64 `yaml:"attach_duration"` // seconds for the snap animation
}

// BubblesProjectile defines projectile flight parameters.
type BubblesProjectile struct {
	MinSpeed   float64 `yaml:"min_speed"`
	MaxSpeed   float64 `yaml:"max_speed"`
	MinGravity float64 `yaml:"min_gravity"`
	MaxGravity float64 `yaml:"max_gravity"`
	SpreadArc  float64 `yaml:"spread_arc"` // degrees, full power only
	Radius     float64 `yaml:"radius"`
	WallBounce float64 `yaml:"wall_bounce"`
}

// BubblesShooter defines aiming and preview parameters.
type BubblesShooter struct {
	PreviewStep  float64 `yaml:"preview_step"`
	PreviewTime  float64 `yaml:"preview_time"`
	AimStep      float64 `yaml:"aim_step"`   // degrees per key press
	AimLimit     float64 `yaml:"aim_limit"`  // max degrees from vertical
	PowerStep    float64 `yaml:"power_step"` // power change per key press
	InitialPower float64 `yaml:"initial_power"`
}

// BubblesScoring defines points and round transitions.
type BubblesScoring struct {
	MatchPoints    int     `yaml:"match_points"`
	IsolatedPoints int     `yaml:"isolated_points"`
	WinDelay       float64 `yaml:"win_delay"`  // seconds before the round is won
	LoseDelay      float64 `yaml:"lose_delay"` // seconds before the round is lost
}

// PaletteEntry describes one bubble color.
type PaletteEntry struct {
	Name  string `yaml:"name"`
	Glyph string `yaml:"glyph"`
	Color string `yaml:"color"` // terminal color name, e.g. bright_red
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a session.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "rounds", "score", or "none"
	MaxAt int    `yaml:"max_at"` // Rounds won or score at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	ShotReduction    int     `yaml:"shot_reduction"`    // Shots removed from the budget at max difficulty
	SpreadMultiplier float64 `yaml:"spread_multiplier"` // Multiplier added to the spread arc at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset returns the preset named s, or "" if s is not a preset.
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

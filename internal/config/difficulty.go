package config

// Progress is how far a session has come, as seen by the difficulty curve.
type Progress struct {
	RoundsWon int
	Score     int // total score of the session
}

// DifficultyManager turns session progress into a difficulty level and the
// level into per-round parameters.
type DifficultyManager struct {
	cfg     DifficultyConfig
	initial float64
}

// NewDifficultyManager creates a manager. The initial level is clamped to
// [0, 1].
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg, initial: unit(cfg.InitialLevel)}
}

// Enabled reports whether the level moves with progress.
func (d *DifficultyManager) Enabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the difficulty for p in [0, 1]. It rises linearly from the
// initial level and reaches 1 at Progression.MaxAt rounds or points.
func (d *DifficultyManager) Level(p Progress) float64 {
	if !d.Enabled() {
		return d.initial
	}

	var reached int
	switch d.cfg.Progression.Type {
	case "rounds":
		reached = p.RoundsWon
	case "score":
		reached = p.Score
	default:
		return d.initial
	}
	t := unit(float64(reached) / float64(max(d.cfg.Progression.MaxAt, 1)))
	return d.initial + t*(1-d.initial)
}

// Shots returns the shot budget of a level with base shots. At full
// difficulty Scaling.ShotReduction shots are taken away, never below one.
func (d *DifficultyManager) Shots(base int, p Progress) int {
	cut := int(d.Level(p) * float64(d.cfg.Scaling.ShotReduction))
	return max(base-cut, 1)
}

// SpreadArc returns the full power spread arc in degrees. At full
// difficulty the base arc grows by Scaling.SpreadMultiplier.
func (d *DifficultyManager) SpreadArc(base float64, p Progress) float64 {
	return base * (1 + d.Level(p)*d.cfg.Scaling.SpreadMultiplier)
}

func unit(v float64) float64 {
	return min(max(v, 0), 1)
}

package bubbles

import "math"

// Snapshot captures the comparable part of a session for determinism
// checks. Uses primitive types only.
type Snapshot struct {
	Tick       uint64
	Score      int
	TotalScore int
	RoundsWon  int
	Shots      int
	ShotsUsed  int
	LevelIndex int
	State      string
	Shooter    string
	Aim        float64
	Power      float64
	Cells      int
	GridHash   uint64
}

// Snapshot returns the current session state.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:       uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		Score:      g.score,
		TotalScore: g.totalScore,
		RoundsWon:  g.roundsWon,
		ShotsUsed:  g.shotsUsed,
		LevelIndex: g.levelIndex,
		State:      g.state,
		Aim:        g.aim,
		Power:      g.power,
	}
	if g.grid != nil {
		snap.Cells = g.grid.Len()
		snap.GridHash = g.grid.Hash()
	}
	if g.shooter != nil {
		snap.Shots = g.shooter.Shots()
		snap.Shooter = g.shooter.State().String()
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.TotalScore) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.RoundsWon)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Shots)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ShotsUsed)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.LevelIndex) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Cells)      //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.Aim)
	h = h*31 + math.Float64bits(snap.Power)
	for _, s := range []string{snap.State, snap.Shooter} {
		for _, c := range []byte(s) {
			h = h*31 + uint64(c)
		}
	}
	return h ^ snap.GridHash
}

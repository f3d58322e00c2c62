package bubbles

import (
	"math"

	"github.com/vovakirdan/bubble-arcade/internal/core"
	engine "github.com/vovakirdan/bubble-arcade/internal/games/bubbles/core"
)

// Bot plays the game headless. For every prepared bubble it predicts the
// path of a fan of aim angles and takes the one that lands next to the most
// cells of the bubble's color.
type Bot struct {
	Samples int     // aim angles tried per shot
	Power   float64 // launch power, below full power to avoid spread
}

// NewBot returns a bot with the stock sampling.
func NewBot() *Bot {
	return &Bot{Samples: 33, Power: 0.8}
}

// Choose returns the best aim angle for the prepared bubble. ok is false
// when nothing is prepared or no sampled path reaches the board.
func (b *Bot) Choose(g *Game) (angle float64, ok bool) {
	cur := g.shooter.Current()
	if g.shooter.State() != engine.ShooterPrepared || cur == nil {
		return 0, false
	}

	limit := g.cfg.Shooter.AimLimit
	n := max(b.Samples, 2)
	bestScore := -1
	var traj engine.Trajectory
	for i := range n {
		a := -limit + 2*limit*float64(i)/float64(n-1)
		if !g.shooter.Preview(aimDirection(a), b.Power, &traj) || traj.Outcome != engine.OutcomeTarget {
			continue
		}
		score := g.landingScore(traj.Primary[len(traj.Primary)-1], cur.Color)
		if score > bestScore || (score == bestScore && math.Abs(a) < math.Abs(angle)) {
			angle, bestScore = a, score
		}
	}
	return angle, bestScore >= 0
}

// landingScore estimates where a bubble touching the board at p settles
// and counts the cells of color around that slot.
func (g *Game) landingScore(p engine.Vec2, color engine.Color) int {
	layout := g.grid.Layout()
	cfg := g.grid.Config()

	var hit engine.Coord
	found := false
	bestDist := math.Inf(1)
	for _, cell := range g.grid.Cells() {
		if d := layout.Center(cell.Coord).DistSq(p); d < bestDist {
			hit, bestDist, found = cell.Coord, d, true
		}
	}
	if !found {
		return 0
	}

	landing := hit
	bestDist = math.Inf(1)
	for _, n := range engine.Neighbors(hit, cfg.Cols, cfg.Rows) {
		if g.grid.Occupied(n) {
			continue
		}
		if d := layout.Center(n).DistSq(p); d < bestDist {
			landing, bestDist = n, d
		}
	}

	score := 0
	for _, n := range engine.Neighbors(landing, cfg.Cols, cfg.Rows) {
		if cell, ok := g.grid.Cell(n); ok && cell.Color == color {
			score++
		}
	}
	return score
}

// PlayRound shoots until the current round is over or maxTicks ticks have
// passed. It returns the finished round.
func (b *Bot) PlayRound(g *Game, maxTicks int) (core.RoundSummary, bool) {
	for range maxTicks {
		switch g.state {
		case StateOver:
			return g.LastRound()
		case StateNoLevel:
			return core.RoundSummary{}, false
		}

		in := core.NewInputFrame()
		if g.state == StatePlaying && g.shooter.State() == engine.ShooterPrepared {
			angle, ok := b.Choose(g)
			if !ok {
				limit := g.cfg.Shooter.AimLimit
				angle = -limit + 2*limit*g.rng.Float64()
			}
			g.aim, g.power = angle, b.Power
			in.Set(core.ActionFire)
		}
		g.Step(in)
	}
	if g.state == StateOver {
		return g.LastRound()
	}
	return core.RoundSummary{}, false
}

// Play runs up to rounds rounds and returns the finished ones.
func (b *Bot) Play(g *Game, rounds, maxTicks int) []core.RoundSummary {
	var out []core.RoundSummary
	for range rounds {
		r, ok := b.PlayRound(g, maxTicks)
		if !ok {
			break
		}
		out = append(out, r)

		next := core.NewInputFrame()
		next.Set(core.ActionConfirm)
		g.Step(next)
	}
	return out
}

// Package bubbles implements the bubble shooter game on top of the engine in
// the core subpackage: it loads levels, runs rounds, keeps score and draws
// the board into a platform screen.
package bubbles

import (
	"io"
	"math"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bubble-arcade/internal/config"
	"github.com/vovakirdan/bubble-arcade/internal/core"
	engine "github.com/vovakirdan/bubble-arcade/internal/games/bubbles/core"
	"github.com/vovakirdan/bubble-arcade/internal/games/bubbles/levels"
	"github.com/vovakirdan/bubble-arcade/internal/registry"
)

// Game states
const (
	StatePlaying = "playing" // Shooting at the board
	StateEnding  = "ending"  // Round decided, waiting out the win/lose delay
	StateOver    = "over"    // Round finished, waiting for Confirm
	StatePaused  = "paused"  // Game paused
	StateNoLevel = "nolevel" // No playable level found
)

// GameMode represents the level selection mode.
type GameMode int

const (
	ModeCampaign GameMode = iota // Levels in order, a win advances
	ModeRandom                   // A win picks a random level
)

var (
	// configPath stores the custom config path set via CLI
	configPath string

	// difficultyPreset stores the difficulty preset set via CLI
	difficultyPreset config.DifficultyPreset

	// levelsDir replaces the builtin levels when set
	levelsDir string

	// startLevel is the ID of the first level to play
	startLevel string

	logger = log.New(io.Discard)
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetLevelsDir makes the game load levels from dir instead of the builtin set.
func SetLevelsDir(dir string) {
	levelsDir = dir
}

// SetStartLevel selects the level the first round is played on.
func SetStartLevel(id string) {
	startLevel = id
}

// SetLogger sets the logger for round events. nil discards.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game implements the bubble shooter.
type Game struct {
	mode GameMode

	// Engine
	rng     *rand.Rand
	world   *engine.World
	grid    *engine.Grid
	bubbles *engine.BubbleFactory
	shooter *engine.Shooter
	palette engine.Palette
	colors  []core.Color // terminal color per palette entry
	floorY  float64
	traj    engine.Trajectory

	subs []*engine.Subscription

	// Levels
	levels     []levels.Level
	levelIndex int

	// Round state
	state     string
	won       bool
	endTimer  float64
	score     int
	shotsUsed int
	aim       float64 // degrees from vertical, positive is right
	power     float64

	// Session state
	roundsWon  int
	totalScore int
	tickCount  int
	last       core.RoundSummary
	hasLast    bool

	// Configuration
	runtime    core.RuntimeConfig
	cfg        config.BubblesConfig
	difficulty *config.DifficultyManager
	dt         float64

	view           view
	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a new bubble shooter that plays levels in order.
func New() *Game {
	return &Game{mode: ModeCampaign}
}

// NewRandom creates a new bubble shooter that picks a random level after
// each win.
func NewRandom() *Game {
	return &Game{mode: ModeRandom}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeRandom {
		return "bubbles_random"
	}
	return "bubbles"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeRandom {
		return "Bubbles (Random)"
	}
	return "Bubbles"
}

// Reset starts a new session: config, levels and engine are rebuilt and
// the first round begins.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.dt = runtime.TickSeconds()

	cfg, err := config.LoadBubbles(configPath)
	if err != nil {
		logger.Warn("using default config", "err", err)
		cfg = config.DefaultBubblesConfig()
	}
	if difficultyPreset != "" {
		config.ApplyBubblesPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	seed := runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.rng = rand.New(rand.NewSource(seed)) //#nosec G404 -- gameplay randomness

	g.palette, g.colors = paletteFromConfig(cfg.Palette)
	g.buildArena()

	g.view = newView(g.grid.Layout(), g.shooter.Muzzle(), g.floorY)
	g.minScreenW = max(40, g.view.width())
	g.minScreenH = g.view.height()
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH

	g.roundsWon = 0
	g.totalScore = 0
	g.tickCount = 0
	g.hasLast = false

	g.levels = loadLevels(cfg.Field.Cols, cfg.Field.Rows, g.palette)
	if len(g.levels) == 0 {
		g.state = StateNoLevel
		return
	}
	g.levelIndex = 0
	for i, l := range g.levels {
		if l.ID == startLevel {
			g.levelIndex = i
			break
		}
	}
	if startLevel != "" && g.levels[g.levelIndex].ID != startLevel {
		logger.Warn("start level not found", "level", startLevel)
	}
	if g.mode == ModeRandom && startLevel == "" {
		g.levelIndex = g.rng.Intn(len(g.levels))
	}

	g.startRound()
}

// buildArena creates the collision world, the grid, the bubble factory and
// the shooter, and subscribes to their events.
func (g *Game) buildArena() {
	gridCfg := gridConfig(g.cfg.Field)
	layout := gridCfg.Layout()
	left, right, top, bottom := layout.Bounds()
	iv := layout.Interval()

	muzzle := engine.V(layout.Origin.X, bottom-3*iv)
	g.floorY = muzzle.Y - g.cfg.Projectile.Radius - iv

	g.world = engine.NewWorld()
	g.world.AddPlane(engine.V(left, 0), engine.V(1, 0), engine.LayerWall)
	g.world.AddPlane(engine.V(right, 0), engine.V(-1, 0), engine.LayerWall)
	g.world.AddPlane(engine.V(0, top), engine.V(0, -1), engine.LayerWall)
	g.world.AddPlane(engine.V(0, g.floorY), engine.V(0, 1), engine.LayerFloor)

	g.grid = engine.NewGrid(gridCfg, g.world, engine.NewCellPool(gridCfg.Cols*gridCfg.Rows))
	g.bubbles = engine.NewBubbleFactory(g.world, projectileConfig(g.cfg.Projectile), animConfig(g.cfg.Field), g.rng)
	g.shooter = engine.NewShooter(shooterConfig(g.cfg.Shooter, muzzle), g.grid, g.bubbles, g.rng)

	g.subs = []*engine.Subscription{
		g.grid.Bus().Subscribe(g.onEvent),
		g.shooter.Bus().Subscribe(g.onEvent),
	}
}

// startRound fills the board from the current level and prepares the
// first shot.
func (g *Game) startRound() {
	g.setSubscriptions(false)

	lvl := g.levels[g.levelIndex]
	if dropped := g.grid.Reset(lvl.Items, g.palette, g.bubbles); dropped > 0 {
		logger.Warn("dropped level items", "level", lvl.ID, "count", dropped)
	}

	proj := projectileConfig(g.cfg.Projectile)
	progress := config.Progress{RoundsWon: g.roundsWon, Score: g.totalScore}
	proj.MaxPowerSpreadArc = g.difficulty.SpreadArc(proj.MaxPowerSpreadArc, progress)
	g.bubbles.SetProjectileConfig(proj)

	shots := g.difficulty.Shots(lvl.Shots, progress)
	g.shooter.Init(g.grid.PlacedColors(lvl.Items), shots)

	g.state = StatePlaying
	g.won = false
	g.endTimer = 0
	g.score = 0
	g.shotsUsed = 0
	g.aim = 0
	g.power = g.cfg.Shooter.InitialPower

	g.setSubscriptions(true)
	g.shooter.Prepare()

	logger.Info("round started", "game", g.ID(), "level", lvl.ID, "shots", shots, "cells", g.grid.Len())
}

func (g *Game) setSubscriptions(enabled bool) {
	for _, s := range g.subs {
		if enabled {
			s.Enable()
		} else {
			s.Disable()
		}
	}
}

// onEvent receives grid and shooter events while a round is active.
func (g *Game) onEvent(e engine.Event) {
	switch ev := e.(type) {
	case engine.HitEvent:
		g.score += ev.MatchCount*g.cfg.Scoring.MatchPoints + ev.IsolatedCount*g.cfg.Scoring.IsolatedPoints
		logger.Debug("hit", "at", ev.At, "matched", ev.MatchCount, "isolated", ev.IsolatedCount, "win", ev.Win)
		if ev.Win {
			g.endRound(true, g.cfg.Scoring.WinDelay)
		}
	case engine.ExhaustedEvent:
		g.endRound(false, g.cfg.Scoring.LoseDelay)
	case engine.LostShotEvent:
		logger.Debug("shot lost", "shots", ev.Shots)
	}
}

// endRound stops listening and starts the delay before the result shows.
func (g *Game) endRound(won bool, delay float64) {
	g.setSubscriptions(false)
	g.won = won
	g.state = StateEnding
	g.endTimer = delay
	if delay <= 0 {
		g.finishRound()
	}
}

func (g *Game) finishRound() {
	g.state = StateOver
	if g.won {
		g.roundsWon++
	}
	g.totalScore += g.score
	lvl := g.levels[g.levelIndex]
	g.last = core.RoundSummary{
		GameID:    g.ID(),
		LevelID:   lvl.ID,
		Won:       g.won,
		Score:     g.score,
		ShotsUsed: g.shotsUsed,
	}
	g.hasLast = true
	logger.Info("round finished", "level", lvl.ID, "won", g.won, "score", g.score, "shots_used", g.shotsUsed)
}

// nextRound picks the level for the next round: a loss replays the same
// level, a win moves on.
func (g *Game) nextRound() {
	if g.won {
		switch g.mode {
		case ModeCampaign:
			g.levelIndex = (g.levelIndex + 1) % len(g.levels)
		case ModeRandom:
			if n := len(g.levels); n > 1 {
				next := g.rng.Intn(n - 1)
				if next >= g.levelIndex {
					next++
				}
				g.levelIndex = next
			}
		}
	}
	g.startRound()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall || g.state == StateNoLevel {
		return core.StepResult{State: g.State()}
	}

	if g.state == StateOver {
		if in.Has(core.ActionConfirm) {
			g.nextRound()
		}
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		if g.state == StatePaused {
			g.state = StatePlaying
		} else if g.state == StatePlaying {
			g.state = StatePaused
		}
	}
	if g.state == StatePaused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	if g.state == StatePlaying {
		g.handleAim(in)
		if in.Has(core.ActionFire) {
			g.fire()
		}
	}

	g.shooter.Step(g.dt)
	g.grid.Tick(g.dt)
	g.bubbles.Update(g.dt)

	if g.state == StateEnding {
		g.endTimer -= g.dt
		if g.endTimer <= 0 {
			g.finishRound()
		}
	}

	return core.StepResult{State: g.State()}
}

// handleAim rotates the aim and changes the launch power.
func (g *Game) handleAim(in core.InputFrame) {
	s := g.cfg.Shooter
	if in.Has(core.ActionLeft) {
		g.aim -= s.AimStep
	}
	if in.Has(core.ActionRight) {
		g.aim += s.AimStep
	}
	g.aim = math.Max(-s.AimLimit, math.Min(s.AimLimit, g.aim))

	if in.Has(core.ActionUp) {
		g.power += s.PowerStep
	}
	if in.Has(core.ActionDown) {
		g.power -= s.PowerStep
	}
	g.power = math.Max(0, math.Min(1, g.power))
}

// fire launches the prepared bubble along the current aim.
func (g *Game) fire() bool {
	if !g.shooter.Launch(g.aimDir(), g.power) {
		return false
	}
	g.shotsUsed++
	return true
}

// aimDir returns the unit launch direction for the current aim.
func (g *Game) aimDir() engine.Vec2 {
	return aimDirection(g.aim)
}

func aimDirection(deg float64) engine.Vec2 {
	return engine.V(0, 1).Rotate(-deg)
}

// Resize adapts the session to a new terminal size. The board has a fixed
// size, so only the too-small check changes.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW, g.runtime.ScreenH = w, h
	g.screenTooSmall = w < g.minScreenW || h < g.minScreenH
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.state == StateOver,
		Won:      g.state == StateOver && g.won,
		Paused:   g.state == StatePaused,
	}
}

// LastRound returns the most recently finished round of the session.
func (g *Game) LastRound() (core.RoundSummary, bool) {
	return g.last, g.hasLast
}

// Level returns the level of the current round.
func (g *Game) Level() (levels.Level, bool) {
	if g.levelIndex < 0 || g.levelIndex >= len(g.levels) {
		return levels.Level{}, false
	}
	return g.levels[g.levelIndex], true
}

// Register the games with the registry
func init() {
	registry.Register("bubbles", func() registry.Game {
		return New()
	})
	registry.Register("bubbles_random", func() registry.Game {
		return NewRandom()
	})
}

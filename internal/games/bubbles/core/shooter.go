package core

import "math/rand"

// ShooterState is the launch state machine state.
type ShooterState uint8

const (
	ShooterIdle      ShooterState = iota // nothing queued
	ShooterPrepared                      // a projectile waits at the muzzle
	ShooterFlying                        // the projectile is in the air
	ShooterExhausted                     // budget spent without a win
)

// String returns the string representation of a shooter state.
func (s ShooterState) String() string {
	switch s {
	case ShooterIdle:
		return "idle"
	case ShooterPrepared:
		return "prepared"
	case ShooterFlying:
		return "flying"
	case ShooterExhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// ShooterConfig places the muzzle and tunes the aim preview.
type ShooterConfig struct {
	Muzzle      Vec2
	PreviewStep float64 // seconds per predicted point
	PreviewTime float64 // predicted flight time
}

// DefaultShooterConfig returns the stock preview settings.
func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		PreviewStep: 0.02,
		PreviewTime: 5,
	}
}

// Shooter owns the shot budget and the queued projectile, launches it and
// forwards its impact to the grid.
type Shooter struct {
	cfg     ShooterConfig
	grid    *Grid
	bubbles *BubbleFactory
	rng     *rand.Rand
	bus     Bus

	colors  []Color
	shots   int
	next    Color
	state   ShooterState
	current *Bubble
	last    HitEvent
	landed  bool
}

// NewShooter creates an idle shooter. Hits are forwarded to grid and
// projectiles come from bubbles; rng drives color selection.
func NewShooter(cfg ShooterConfig, grid *Grid, bubbles *BubbleFactory, rng *rand.Rand) *Shooter {
	return &Shooter{cfg: cfg, grid: grid, bubbles: bubbles, rng: rng}
}

// Bus returns the bus ExhaustedEvent and LostShotEvent are published on.
func (s *Shooter) Bus() *Bus { return &s.bus }

// State returns the current state.
func (s *Shooter) State() ShooterState { return s.state }

// Shots returns the remaining shot budget.
func (s *Shooter) Shots() int { return s.shots }

// Next returns the color the next prepared projectile will have.
func (s *Shooter) Next() Color { return s.next }

// Colors returns the configured colors.
func (s *Shooter) Colors() []Color { return s.colors }

// Current returns the queued or flying projectile bubble, or nil.
func (s *Shooter) Current() *Bubble { return s.current }

// Muzzle returns the launch position.
func (s *Shooter) Muzzle() Vec2 { return s.cfg.Muzzle }

// LastHit returns the result of the most recent landed shot.
func (s *Shooter) LastHit() (HitEvent, bool) { return s.last, s.landed }

// Init resets the budget and palette. A queued or flying projectile is
// disposed. The first prepared projectile takes colors[0].
func (s *Shooter) Init(colors []Color, shotBudget int) {
	if s.current != nil {
		s.current.Destroy(DestroyDispose)
		s.current = nil
	}
	s.colors = append(s.colors[:0], colors...)
	s.shots = max(0, shotBudget)
	s.next = 0
	if len(s.colors) > 0 {
		s.next = s.colors[0]
	}
	s.state = ShooterIdle
	s.last, s.landed = HitEvent{}, false
}

// Prepare queues a projectile in the next color and spends one shot.
// It does nothing when the budget is spent, no colors are configured or a
// projectile is already queued or flying.
func (s *Shooter) Prepare() {
	if s.shots <= 0 || len(s.colors) == 0 || s.current != nil {
		return
	}
	s.current = s.bubbles.NewProjectileBubble(s.next, s.cfg.Muzzle)
	s.shots--
	if s.rng != nil {
		s.next = s.colors[s.rng.Intn(len(s.colors))]
	}
	s.state = ShooterPrepared
}

// Launch fires the queued projectile. Returns false unless Prepared.
func (s *Shooter) Launch(dir Vec2, power float64) bool {
	if s.state != ShooterPrepared || s.current == nil {
		return false
	}
	p := s.current.Projectile()
	p.Launch(dir, power)
	if !p.IsMoving() {
		return false
	}
	s.state = ShooterFlying
	return true
}

// Step advances the flying projectile by dt and resolves its landing.
func (s *Shooter) Step(dt float64) StepResult {
	if s.state != ShooterFlying || s.current == nil {
		return StepResult{}
	}
	b := s.current
	p := b.Projectile()
	res := p.Step(dt)

	switch res.Outcome {
	case OutcomeTarget:
		s.current = nil
		ev, ok := s.grid.HitCollider(res.Hit.ID, b, b.Color, p.Position(), p.FullPower())
		if !ok {
			b.Destroy(DestroyDispose)
		}
		s.last, s.landed = ev, ok
		s.afterShot(ok && ev.Win)
	case OutcomeFloor:
		s.current = nil
		b.Destroy(DestroyDispose)
		s.bus.Publish(LostShotEvent{Shots: s.shots})
		s.afterShot(false)
	}
	return res
}

func (s *Shooter) afterShot(win bool) {
	s.state = ShooterIdle
	if win {
		return
	}
	if s.shots > 0 {
		s.Prepare()
		return
	}
	s.state = ShooterExhausted
	s.bus.Publish(ExhaustedEvent{})
}

// Preview predicts the queued projectile's path into traj. It clears traj
// and returns false while not Prepared or when power is ~0.
func (s *Shooter) Preview(dir Vec2, power float64, traj *Trajectory) bool {
	if s.state != ShooterPrepared || s.current == nil || Approx(power, 0) {
		traj.Reset()
		return false
	}
	s.current.Projectile().Predict(traj, dir, power, s.cfg.PreviewStep, s.cfg.PreviewTime)
	return true
}

package core

import (
	"math/rand"
)

// ProjectileConfig tunes projectile flight.
type ProjectileConfig struct {
	MinSpeed            float64 // speed at zero power
	MaxSpeed            float64 // speed at full power
	MinGravity          float64 // gravity at full power
	MaxGravity          float64 // gravity at zero power
	MaxPowerSpreadArc   float64 // degrees of random spread for full power shots
	Radius              float64 // cast radius
	MandatoryWallBounce float64 // push along the wall normal after a bounce
}

// DefaultProjectileConfig returns the stock flight parameters.
func DefaultProjectileConfig() ProjectileConfig {
	return ProjectileConfig{
		MinSpeed:            10,
		MaxSpeed:            20,
		MinGravity:          0,
		MaxGravity:          5,
		MaxPowerSpreadArc:   10,
		Radius:              0.5,
		MandatoryWallBounce: 0.1,
	}
}

// SpeedAndGravity maps a power in [0, 1] to launch speed and gravity.
// Higher power means a faster, flatter arc.
func (c ProjectileConfig) SpeedAndGravity(power float64) (speed, gravity float64) {
	return Lerp(c.MinSpeed, c.MaxSpeed, power), Lerp(c.MaxGravity, c.MinGravity, power)
}

// Outcome is how a single step ended.
type Outcome uint8

const (
	OutcomeNone   Outcome = iota // still flying
	OutcomeTarget                // touched a target collider
	OutcomeFloor                 // fell onto the floor
)

// String returns the string representation of an outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeTarget:
		return "target"
	case OutcomeFloor:
		return "floor"
	default:
		return "unknown"
	}
}

// StepResult reports what one simulation step did.
type StepResult struct {
	Movement Vec2
	Outcome  Outcome
	Hit      Hit // valid when Outcome != OutcomeNone
	Bounced  bool
}

// flight is the integrator state shared by live stepping and prediction.
type flight struct {
	pos          Vec2
	dir          Vec2
	speed        float64
	gravity      float64
	gravitySpeed float64
}

// Projectile is a ballistic body that bounces off walls and stops on
// targets or the floor.
type Projectile struct {
	cfg   ProjectileConfig
	world Caster
	rng   *rand.Rand
	body  ColliderID

	f      flight
	power  float64
	moving bool
	onStop func(*Projectile)
}

// NewProjectile creates a stationary projectile at pos. body is the
// projectile's own collider in world, excluded from every cast.
func NewProjectile(cfg ProjectileConfig, world Caster, rng *rand.Rand, pos Vec2, body ColliderID) *Projectile {
	return &Projectile{
		cfg:   cfg,
		world: world,
		rng:   rng,
		body:  body,
		f:     flight{pos: pos},
	}
}

// Position returns the current center.
func (p *Projectile) Position() Vec2 { return p.f.pos }

// Direction returns the current unit direction, zero when not moving.
func (p *Projectile) Direction() Vec2 {
	if !p.moving {
		return Vec2{}
	}
	return p.f.dir
}

// Power returns the power of the last launch.
func (p *Projectile) Power() float64 { return p.power }

// FullPower reports whether the last launch was at maximum power.
func (p *Projectile) FullPower() bool { return Approx(p.power, 1) }

// IsMoving reports whether the projectile is in flight.
func (p *Projectile) IsMoving() bool { return p.moving }

// Body returns the projectile's own collider.
func (p *Projectile) Body() ColliderID { return p.body }

// Config returns the flight parameters.
func (p *Projectile) Config() ProjectileConfig { return p.cfg }

// OnStop registers a callback fired when the projectile stops moving.
func (p *Projectile) OnStop(fn func(*Projectile)) { p.onStop = fn }

// SetPosition teleports the projectile and its body.
func (p *Projectile) SetPosition(pos Vec2) {
	p.f.pos = pos
	if p.world != nil {
		p.world.Move(p.body, pos)
	}
}

// Launch starts flight along dir. Power is clamped to [0, 1]; a full power
// launch is rotated by a random angle within half the spread arc.
func (p *Projectile) Launch(dir Vec2, power float64) {
	p.f.dir = dir.Normalized()
	p.power = clamp01(power)
	if p.FullPower() && p.rng != nil {
		half := p.cfg.MaxPowerSpreadArc / 2
		p.f.dir = p.f.dir.Rotate(-half + p.rng.Float64()*2*half)
	}
	p.f.speed, p.f.gravity = p.cfg.SpeedAndGravity(p.power)
	p.f.gravitySpeed = 0
	p.moving = !p.f.dir.IsZero()
}

// Step advances the projectile by dt seconds. Reaching a target or the floor
// stops it.
func (p *Projectile) Step(dt float64) StepResult {
	if !p.moving {
		return StepResult{}
	}
	res := p.advance(&p.f, dt, LayerAll)
	if p.world != nil {
		p.world.Move(p.body, p.f.pos)
	}
	if res.Outcome != OutcomeNone {
		p.Stop()
	}
	return res
}

// Stop halts the projectile. The stop callback fires only on the
// moving to stopped transition.
func (p *Projectile) Stop() {
	if !p.moving {
		return
	}
	p.moving = false
	if p.onStop != nil {
		p.onStop(p)
	}
}

// advance applies one leapfrog step to f and resolves collisions.
func (p *Projectile) advance(f *flight, dt float64, mask Layer) StepResult {
	half := dt / 2
	f.gravitySpeed += f.gravity * half
	movement := f.dir.Scale(f.speed).Add(V(0, -f.gravitySpeed)).Scale(dt)
	f.gravitySpeed += f.gravity * half

	dist := movement.Len()
	if Approx(dist, 0) {
		return StepResult{}
	}
	finalDir := movement.Scale(1 / dist)

	if p.world == nil {
		f.pos = f.pos.Add(movement)
		return StepResult{Movement: movement}
	}
	hit, ok := p.world.CircleCast(f.pos, finalDir, p.cfg.Radius, dist, mask, p.body)
	if !ok {
		f.pos = f.pos.Add(movement)
		return StepResult{Movement: movement}
	}

	res := StepResult{Hit: hit}
	switch {
	case hit.Layer.In(LayerWall):
		f.dir = f.dir.Reflect(hit.Normal)
		movement = finalDir.Scale(hit.Distance).
			Add(finalDir.Reflect(hit.Normal).Scale(dist - hit.Distance)).
			Add(hit.Normal.Scale(p.cfg.MandatoryWallBounce))
		res.Bounced = true
	case hit.Layer.In(LayerTarget):
		movement = finalDir.Scale(hit.Distance)
		res.Outcome = OutcomeTarget
	default:
		movement = finalDir.Scale(hit.Distance)
		res.Outcome = OutcomeFloor
	}
	f.pos = f.pos.Add(movement)
	res.Movement = movement
	return res
}

// Trajectory is a reusable buffer of predicted positions.
type Trajectory struct {
	Primary   []Vec2
	Alternate []Vec2 // second spread extreme, empty unless Spread
	Spread    bool
	Outcome   Outcome // how the primary path ended
}

// Reset empties the buffers, keeping their capacity.
func (t *Trajectory) Reset() {
	t.Primary = t.Primary[:0]
	t.Alternate = t.Alternate[:0]
	t.Spread = false
	t.Outcome = OutcomeNone
}

// Len returns the number of points in the primary path.
func (t *Trajectory) Len() int { return len(t.Primary) }

// Predict fills traj with the path a launch along dir at power would take
// from the current position. Live state is not touched. For a full power
// launch both spread extremes are traced into Primary and Alternate.
func (p *Projectile) Predict(traj *Trajectory, dir Vec2, power, timeStep, maxTime float64) {
	traj.Reset()
	dir = dir.Normalized()
	power = clamp01(power)
	if dir.IsZero() || timeStep <= 0 {
		return
	}

	if Approx(power, 1) {
		half := p.cfg.MaxPowerSpreadArc / 2
		traj.Spread = true
		traj.Primary, traj.Outcome = p.trace(traj.Primary, dir.Rotate(half), p.cfg.MaxSpeed, p.cfg.MinGravity, timeStep, maxTime)
		traj.Alternate, _ = p.trace(traj.Alternate, dir.Rotate(-half), p.cfg.MaxSpeed, p.cfg.MinGravity, timeStep, maxTime)
		return
	}
	speed, gravity := p.cfg.SpeedAndGravity(power)
	traj.Primary, traj.Outcome = p.trace(traj.Primary, dir, speed, gravity, timeStep, maxTime)
}

func (p *Projectile) trace(dst []Vec2, dir Vec2, speed, gravity, timeStep, maxTime float64) ([]Vec2, Outcome) {
	f := flight{pos: p.f.pos, dir: dir, speed: speed, gravity: gravity}
	dst = append(dst, f.pos)
	var out Outcome
	for t := 0.0; ; {
		res := p.advance(&f, timeStep, LayerAll)
		dst = append(dst, f.pos)
		t += timeStep
		out = res.Outcome
		if t >= maxTime || out != OutcomeNone {
			break
		}
	}
	return dst, out
}

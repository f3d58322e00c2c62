package core

import "math/rand"

// BubbleKind tags the Bubble variant.
type BubbleKind uint8

const (
	KindStatic     BubbleKind = iota // resting in the grid
	KindProjectile                   // queued in the shooter or in flight
)

// String returns the string representation of a bubble kind.
func (k BubbleKind) String() string {
	if k == KindProjectile {
		return "projectile"
	}
	return "static"
}

// Phase is the animation phase of a bubble.
type Phase uint8

const (
	PhaseIdle      Phase = iota // resting, queued or flying
	PhaseAttaching              // snapping from impact point to slot center
	PhasePopping                // match effect
	PhaseFalling                // isolated effect
	PhaseGone                   // finished, reaped on the next update
)

// AnimConfig holds effect timings in seconds.
type AnimConfig struct {
	AttachDuration float64
	PopDuration    float64
	FallDuration   float64
	FallGravity    float64
}

// DefaultAnimConfig returns the stock effect timings.
func DefaultAnimConfig() AnimConfig {
	return AnimConfig{
		AttachDuration: 0.1,
		PopDuration:    0.2,
		FallDuration:   1.0,
		FallGravity:    20,
	}
}

// Bubble is the engine's Object implementation.
type Bubble struct {
	ID    int
	Kind  BubbleKind
	Color Color

	pos      Vec2
	vel      Vec2
	phase    Phase
	attached bool

	destroyed bool
	reason    DestroyReason

	proj  *Projectile
	world ColliderSet

	attachFrom Vec2
	attachTo   Vec2
	elapsed    float64
	anim       AnimConfig
}

// Position returns the current world position.
func (b *Bubble) Position() Vec2 {
	if b.Kind == KindProjectile && b.proj != nil {
		return b.proj.Position()
	}
	return b.pos
}

// Projectile returns the flight body of a projectile bubble, or nil.
func (b *Bubble) Projectile() *Projectile {
	if b.Kind != KindProjectile {
		return nil
	}
	return b.proj
}

// Phase returns the animation phase.
func (b *Bubble) Phase() Phase { return b.phase }

// Attached reports whether the bubble currently belongs to a grid cell.
func (b *Bubble) Attached() bool { return b.attached }

// Destroyed reports whether Destroy has been called and with what reason.
func (b *Bubble) Destroyed() (DestroyReason, bool) { return b.reason, b.destroyed }

// AttachAt pins the bubble to pos. A projectile stops, drops its body and
// becomes static, snapping to pos over the attach duration.
func (b *Bubble) AttachAt(pos Vec2) {
	b.attached = true
	if b.Kind == KindProjectile {
		from := b.Position()
		if b.proj != nil {
			b.proj.Stop()
			if b.world != nil {
				b.world.Remove(b.proj.Body())
			}
		}
		b.proj = nil
		b.Kind = KindStatic
		if b.anim.AttachDuration > 0 && !Approx(from.DistSq(pos), 0) {
			b.pos = from
			b.attachFrom, b.attachTo = from, pos
			b.elapsed = 0
			b.phase = PhaseAttaching
			return
		}
	}
	b.pos = pos
	b.phase = PhaseIdle
}

// Detach marks the bubble as no longer owned by the grid.
func (b *Bubble) Detach() {
	b.attached = false
}

// Destroy starts the effect for reason. Only the first call counts.
func (b *Bubble) Destroy(reason DestroyReason) {
	if b.destroyed {
		return
	}
	b.destroyed = true
	b.reason = reason
	b.attached = false
	if b.phase == PhaseAttaching {
		b.pos = b.attachTo
	}
	if b.proj != nil {
		b.pos = b.proj.Position()
		b.proj.Stop()
		if b.world != nil {
			b.world.Remove(b.proj.Body())
		}
		b.proj = nil
	}
	b.elapsed = 0
	switch reason {
	case DestroyMatch:
		b.phase = PhasePopping
	case DestroyIsolated:
		b.phase = PhaseFalling
		b.vel = Vec2{}
	default:
		b.phase = PhaseGone
	}
}

// Update advances the bubble animation by dt seconds.
func (b *Bubble) Update(dt float64) {
	switch b.phase {
	case PhaseAttaching:
		b.elapsed += dt
		if b.elapsed >= b.anim.AttachDuration {
			b.pos = b.attachTo
			b.phase = PhaseIdle
			return
		}
		b.pos = LerpVec(b.attachFrom, b.attachTo, b.elapsed/b.anim.AttachDuration)
	case PhasePopping:
		b.elapsed += dt
		if b.elapsed >= b.anim.PopDuration {
			b.phase = PhaseGone
		}
	case PhaseFalling:
		b.elapsed += dt
		b.vel.Y -= b.anim.FallGravity * dt
		b.pos = b.pos.Add(b.vel.Scale(dt))
		if b.elapsed >= b.anim.FallDuration {
			b.phase = PhaseGone
		}
	}
}

// BubbleFactory creates bubbles and advances their animations.
type BubbleFactory struct {
	world Caster
	cfg   ProjectileConfig
	anim  AnimConfig
	rng   *rand.Rand

	live      []*Bubble
	nextID    int
	destroyed [3]int
}

// NewBubbleFactory creates a factory. world may be nil for headless use
// without projectiles.
func NewBubbleFactory(world Caster, cfg ProjectileConfig, anim AnimConfig, rng *rand.Rand) *BubbleFactory {
	return &BubbleFactory{world: world, cfg: cfg, anim: anim, rng: rng}
}

// SetProjectileConfig changes the flight parameters of projectiles created
// from now on.
func (f *BubbleFactory) SetProjectileConfig(cfg ProjectileConfig) {
	f.cfg = cfg
}

func (f *BubbleFactory) track(b *Bubble) *Bubble {
	f.nextID++
	b.ID = f.nextID
	b.anim = f.anim
	f.live = append(f.live, b)
	return b
}

// NewObject creates a static bubble. It implements ObjectFactory.
func (f *BubbleFactory) NewObject(c Color) Object {
	return f.track(&Bubble{Kind: KindStatic, Color: c})
}

// NewProjectileBubble creates a stationary projectile bubble at pos with its
// body registered on the target layer.
func (f *BubbleFactory) NewProjectileBubble(c Color, pos Vec2) *Bubble {
	b := &Bubble{Kind: KindProjectile, Color: c, pos: pos}
	var body ColliderID
	if f.world != nil {
		body = f.world.AddCircle(pos, f.cfg.Radius, LayerTarget)
		b.world = f.world
	}
	b.proj = NewProjectile(f.cfg, f.world, f.rng, pos, body)
	return f.track(b)
}

// Update advances every live bubble and drops finished ones.
func (f *BubbleFactory) Update(dt float64) {
	kept := f.live[:0]
	for _, b := range f.live {
		b.Update(dt)
		if b.phase == PhaseGone {
			f.destroyed[b.reason]++
			continue
		}
		kept = append(kept, b)
	}
	clear(f.live[len(kept):])
	f.live = kept
}

// Bubbles returns the live bubbles in creation order.
func (f *BubbleFactory) Bubbles() []*Bubble {
	return f.live
}

// Len returns the number of live bubbles.
func (f *BubbleFactory) Len() int {
	return len(f.live)
}

// Destroyed returns how many bubbles finished with reason.
func (f *BubbleFactory) Destroyed(reason DestroyReason) int {
	if int(reason) >= len(f.destroyed) {
		return 0
	}
	return f.destroyed[reason]
}

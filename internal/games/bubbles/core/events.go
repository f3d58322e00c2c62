package core

// Event is published on a Bus by the grid and the shooter.
type Event interface {
	bubbleEvent()
}

// HitEvent reports the outcome of one resolved hit.
type HitEvent struct {
	At            Coord // slot the new bubble landed in
	MatchCount    int
	IsolatedCount int
	Win           bool
}

func (HitEvent) bubbleEvent() {}

// ExhaustedEvent is published when the last shot resolves without a win.
type ExhaustedEvent struct{}

func (ExhaustedEvent) bubbleEvent() {}

// LostShotEvent is published when a projectile falls onto the floor.
type LostShotEvent struct {
	Shots int // shots left after the loss
}

func (LostShotEvent) bubbleEvent() {}

// Handler receives published events.
type Handler func(Event)

// Bus is a synchronous callback registry.
type Bus struct {
	subs []*Subscription
}

// Subscription is a registered handler. It starts disabled.
type Subscription struct {
	bus     *Bus
	handler Handler
	enabled bool
}

// Subscribe registers fn and returns its disabled subscription.
func (b *Bus) Subscribe(fn Handler) *Subscription {
	return &Subscription{bus: b, handler: fn}
}

// Enable attaches the handler to the bus. Calling it twice is a no-op.
func (s *Subscription) Enable() {
	if s == nil || s.enabled {
		return
	}
	s.enabled = true
	s.bus.subs = append(s.bus.subs, s)
}

// Disable detaches the handler from the bus. Calling it twice is a no-op.
func (s *Subscription) Disable() {
	if s == nil || !s.enabled {
		return
	}
	s.enabled = false
	subs := s.bus.subs
	for i, other := range subs {
		if other == s {
			s.bus.subs = append(subs[:i:i], subs[i+1:]...)
			break
		}
	}
}

// Enabled reports whether the handler is attached.
func (s *Subscription) Enabled() bool {
	return s != nil && s.enabled
}

// Publish delivers e to every enabled handler in subscription order.
func (b *Bus) Publish(e Event) {
	if b == nil || len(b.subs) == 0 {
		return
	}
	// Handlers may enable or disable subscriptions while we iterate.
	subs := append([]*Subscription(nil), b.subs...)
	for _, s := range subs {
		if s.enabled {
			s.handler(e)
		}
	}
}

// Len returns the number of enabled subscriptions.
func (b *Bus) Len() int {
	return len(b.subs)
}

package core_test

import (
	"testing"

	"github.com/vovakirdan/bubble-arcade/internal/games/bubbles/core"
)

func TestBusSubscriptionLifecycle(t *testing.T) {
	var bus core.Bus
	calls := 0
	sub := bus.Subscribe(func(core.Event) { calls++ })

	bus.Publish(core.ExhaustedEvent{})
	if calls != 0 {
		t.Errorf("disabled subscription received %d events", calls)
	}

	sub.Enable()
	sub.Enable()
	bus.Publish(core.ExhaustedEvent{})
	if calls != 1 {
		t.Errorf("calls = %d, expected 1 after double Enable", calls)
	}
	if bus.Len() != 1 || !sub.Enabled() {
		t.Errorf("Len() = %d, Enabled() = %v", bus.Len(), sub.Enabled())
	}

	sub.Disable()
	sub.Disable()
	bus.Publish(core.ExhaustedEvent{})
	if calls != 1 {
		t.Errorf("calls = %d, expected 1 after Disable", calls)
	}
	if bus.Len() != 0 {
		t.Errorf("Len() = %d, expected 0", bus.Len())
	}
}

func TestBusOrderAndReentrancy(t *testing.T) {
	var bus core.Bus
	var order []int
	var second *core.Subscription

	first := bus.Subscribe(func(core.Event) {
		order = append(order, 1)
		second.Disable()
	})
	second = bus.Subscribe(func(core.Event) { order = append(order, 2) })
	first.Enable()
	second.Enable()

	// second is disabled by first during delivery and must not run.
	bus.Publish(core.HitEvent{})
	if len(order) != 1 || order[0] != 1 {
		t.Errorf("order = %v, expected [1]", order)
	}
}

func TestNilSubscriptionIsSafe(t *testing.T) {
	var sub *core.Subscription
	sub.Enable()
	sub.Disable()
	if sub.Enabled() {
		t.Error("nil subscription reports enabled")
	}
	var bus *core.Bus
	bus.Publish(core.ExhaustedEvent{})
}

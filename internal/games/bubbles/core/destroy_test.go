package core_test

import (
	"slices"
	"testing"

	"github.com/vovakirdan/bubble-arcade/internal/games/bubbles/core"
)

func TestDestroyQueueTick(t *testing.T) {
	q := core.NewDestroyQueue(0.1)
	a, b, c := &recObject{}, &recObject{}, &recObject{}
	q.Push(a, core.DestroyMatch)
	q.Push(nil, core.DestroyMatch)
	q.Push(b, core.DestroyIsolated)
	q.Push(c, core.DestroyIsolated)

	if q.Len() != 3 {
		t.Fatalf("Len() = %d, expected 3", q.Len())
	}
	if n := q.Tick(1); n != 0 {
		t.Errorf("Tick() before Restart = %d, expected 0", n)
	}

	q.Restart()
	if n := q.Tick(0.05); n != 0 {
		t.Errorf("Tick(0.05) = %d, expected 0", n)
	}
	if n := q.Tick(0.05); n != 1 {
		t.Errorf("Tick(0.05) = %d, expected 1", n)
	}
	if !slices.Equal(a.destroys, []core.DestroyReason{core.DestroyMatch}) {
		t.Errorf("first destroys = %v, expected [match]", a.destroys)
	}

	if n := q.Tick(0.5); n != 2 {
		t.Errorf("Tick(0.5) = %d, expected 2", n)
	}
	if q.Active() || q.Len() != 0 {
		t.Errorf("queue still active=%v len=%d", q.Active(), q.Len())
	}
	for _, o := range []*recObject{b, c} {
		if !slices.Equal(o.destroys, []core.DestroyReason{core.DestroyIsolated}) {
			t.Errorf("destroys = %v, expected [isolated]", o.destroys)
		}
	}
}

func TestDestroyQueueFlush(t *testing.T) {
	q := core.NewDestroyQueue(0.1)
	a, b := &recObject{}, &recObject{}
	q.Push(a, core.DestroyMatch)
	q.Push(b, core.DestroyIsolated)
	q.Restart()

	if n := q.Flush(); n != 2 {
		t.Errorf("Flush() = %d, expected 2", n)
	}
	for _, o := range []*recObject{a, b} {
		if !slices.Equal(o.destroys, []core.DestroyReason{core.DestroyDispose}) {
			t.Errorf("destroys = %v, expected [dispose]", o.destroys)
		}
	}
	if q.Active() {
		t.Error("queue active after Flush")
	}
	if n := q.Tick(1); n != 0 {
		t.Errorf("Tick() after Flush = %d, expected 0", n)
	}
}

func TestDestroyQueueRestartEmpty(t *testing.T) {
	q := core.NewDestroyQueue(0.1)
	q.Restart()
	if q.Active() {
		t.Error("empty queue should not become active")
	}
}

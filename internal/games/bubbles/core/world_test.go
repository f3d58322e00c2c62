package core_test

import (
	"math"
	"testing"

	"github.com/vovakirdan/bubble-arcade/internal/games/bubbles/core"
)

func approxVec(a, b core.Vec2) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

func TestVecRotate(t *testing.T) {
	tests := []struct {
		name     string
		v        core.Vec2
		deg      float64
		expected core.Vec2
	}{
		{"quarter turn", core.V(1, 0), 90, core.V(0, 1)},
		{"half turn", core.V(1, 2), 180, core.V(-1, -2)},
		{"negative quarter", core.V(0, 1), -90, core.V(1, 0)},
		{"zero", core.V(3, 4), 0, core.V(3, 4)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.v.Rotate(tc.deg); !approxVec(got, tc.expected) {
				t.Errorf("Rotate(%f) = %v, expected %v", tc.deg, got, tc.expected)
			}
		})
	}
}

func TestVecReflect(t *testing.T) {
	got := core.V(1, -0.5).Reflect(core.V(-1, 0))
	if !approxVec(got, core.V(-1, -0.5)) {
		t.Errorf("Reflect() = %v, expected (-1,-0.5)", got)
	}
	if n := core.V(0, 0).Normalized(); n != (core.Vec2{}) {
		t.Errorf("Normalized() of zero = %v, expected zero", n)
	}
}

func TestLayerIn(t *testing.T) {
	mask := core.LayerWall | core.LayerFloor
	if !core.LayerWall.In(mask) || !core.LayerFloor.In(mask) {
		t.Error("wall and floor should be in mask")
	}
	if core.LayerTarget.In(mask) {
		t.Error("target should not be in mask")
	}
	if got := mask.String(); got != "wall|floor" {
		t.Errorf("String() = %q, expected %q", got, "wall|floor")
	}
}

func TestCircleCastPlane(t *testing.T) {
	w := core.NewWorld()
	wall := w.AddPlane(core.V(5, 0), core.V(-1, 0), core.LayerWall)

	hit, ok := w.CircleCast(core.V(0, 0), core.V(1, 0), 0.5, 10, core.LayerAll, core.NoCollider)
	if !ok {
		t.Fatal("expected a hit")
	}
	if hit.ID != wall || !core.Approx(hit.Distance, 4.5) {
		t.Errorf("hit = %+v, expected wall at distance 4.5", hit)
	}
	if !approxVec(hit.Normal, core.V(-1, 0)) {
		t.Errorf("normal = %v, expected (-1,0)", hit.Normal)
	}

	// Too short.
	if _, ok := w.CircleCast(core.V(0, 0), core.V(1, 0), 0.5, 4, core.LayerAll, core.NoCollider); ok {
		t.Error("cast shorter than the gap should miss")
	}
	// Moving away.
	if _, ok := w.CircleCast(core.V(0, 0), core.V(-1, 0), 0.5, 100, core.LayerAll, core.NoCollider); ok {
		t.Error("cast away from the plane should miss")
	}
	// Masked out.
	if _, ok := w.CircleCast(core.V(0, 0), core.V(1, 0), 0.5, 10, core.LayerTarget, core.NoCollider); ok {
		t.Error("wall should be ignored when not in mask")
	}
}

func TestCircleCastCircle(t *testing.T) {
	w := core.NewWorld()
	near := w.AddCircle(core.V(0, 5), 0.5, core.LayerTarget)
	far := w.AddCircle(core.V(0, 8), 0.5, core.LayerTarget)

	hit, ok := w.CircleCast(core.V(0, 0), core.V(0, 1), 0.5, 20, core.LayerAll, core.NoCollider)
	if !ok || hit.ID != near {
		t.Fatalf("hit = %+v, %v; expected near circle", hit, ok)
	}
	if !core.Approx(hit.Distance, 4) {
		t.Errorf("distance = %f, expected 4", hit.Distance)
	}
	if !approxVec(hit.Point, core.V(0, 4)) || !approxVec(hit.Normal, core.V(0, -1)) {
		t.Errorf("point/normal = %v/%v, expected (0,4)/(0,-1)", hit.Point, hit.Normal)
	}

	// Excluding the near circle exposes the far one.
	hit, ok = w.CircleCast(core.V(0, 0), core.V(0, 1), 0.5, 20, core.LayerAll, near)
	if !ok || hit.ID != far {
		t.Errorf("hit = %+v, %v; expected far circle when near is excluded", hit, ok)
	}

	// Offset ray misses both.
	if _, ok := w.CircleCast(core.V(2, 0), core.V(0, 1), 0.5, 20, core.LayerAll, core.NoCollider); ok {
		t.Error("offset cast should miss")
	}
}

func TestCircleCastTieBreaksOnID(t *testing.T) {
	w := core.NewWorld()
	first := w.AddCircle(core.V(-1, 5), 0.5, core.LayerTarget)
	w.AddCircle(core.V(1, 5), 0.5, core.LayerTarget)

	// A wide cast touches both circles at the same distance.
	hit, ok := w.CircleCast(core.V(0, 0), core.V(0, 1), 1, 20, core.LayerAll, core.NoCollider)
	if !ok || hit.ID != first {
		t.Errorf("hit = %+v, expected lower ID %d", hit, first)
	}
}

func TestWorldRemoveAndMove(t *testing.T) {
	w := core.NewWorld()
	a := w.AddCircle(core.V(0, 5), 0.5, core.LayerTarget)
	b := w.AddCircle(core.V(10, 5), 0.5, core.LayerTarget)
	w.Remove(a)
	w.Remove(a) // unknown IDs are ignored

	if w.Len() != 1 {
		t.Fatalf("Len() = %d, expected 1", w.Len())
	}
	if _, ok := w.CircleCast(core.V(0, 0), core.V(0, 1), 0.5, 20, core.LayerAll, core.NoCollider); ok {
		t.Error("removed circle should not be hit")
	}

	w.Move(b, core.V(0, 5))
	hit, ok := w.CircleCast(core.V(0, 0), core.V(0, 1), 0.5, 20, core.LayerAll, core.NoCollider)
	if !ok || hit.ID != b {
		t.Errorf("hit = %+v, %v; expected moved circle", hit, ok)
	}
}

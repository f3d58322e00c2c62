package core_test

import (
	"strings"
	"testing"

	"github.com/vovakirdan/bubble-arcade/internal/games/bubbles/core"
)

func TestGridResetDropsInvalidItems(t *testing.T) {
	g := newTestGrid(10, 10)
	f := &recFactory{}

	items := rows("0123", "45")
	items = append(items,
		core.Item{Coord: core.C(10, 0), Color: 0}, // out of bounds
		core.Item{Coord: core.C(0, -1), Color: 0}, // out of bounds
		core.Item{Coord: core.C(5, 5), Color: 9},  // not in palette
		core.Item{Coord: core.C(1, 0), Color: 2},  // duplicate slot
	)

	dropped := g.Reset(items, core.DefaultPalette(), f)
	if dropped != 4 {
		t.Errorf("Reset() dropped = %d, expected 4", dropped)
	}
	if g.Len() != 6 {
		t.Errorf("Len() = %d, expected 6", g.Len())
	}
	if g.TopRowCount() != 4 {
		t.Errorf("TopRowCount() = %d, expected 4", g.TopRowCount())
	}
	if g.TopRowWinCount() != 1 {
		t.Errorf("TopRowWinCount() = %d, expected 1", g.TopRowWinCount())
	}
	if cell, ok := g.Cell(core.C(1, 0)); !ok || cell.Color != 1 {
		t.Errorf("Cell(1,0) = %+v, %v; expected first item to win the slot", cell, ok)
	}
	if err := g.Verify(); err != nil {
		t.Errorf("Verify() = %v", err)
	}
	for i, o := range f.made {
		if o.attached != 1 {
			t.Errorf("object %d attached %d times, expected 1", i, o.attached)
		}
	}
}

func TestGridResetIsIdempotent(t *testing.T) {
	g := newTestGrid(10, 10)
	items := rows("0011223344", "5.5.5.5.5", "..1")

	first := &recFactory{}
	g.Reset(items, core.DefaultPalette(), first)
	h := g.Hash()

	second := &recFactory{}
	g.Reset(items, core.DefaultPalette(), second)
	if g.Hash() != h {
		t.Errorf("Hash() after second Reset = %x, expected %x", g.Hash(), h)
	}
	if err := g.Verify(); err != nil {
		t.Errorf("Verify() = %v", err)
	}

	// Every object of the first fill is disposed exactly once.
	for i, o := range first.made {
		if len(o.destroys) != 1 || o.destroys[0] != core.DestroyDispose {
			t.Errorf("object %d destroys = %v, expected [dispose]", i, o.destroys)
		}
		if o.detached != 1 {
			t.Errorf("object %d detached %d times, expected 1", i, o.detached)
		}
	}
	for i, o := range second.made {
		if len(o.destroys) != 0 {
			t.Errorf("live object %d destroys = %v, expected none", i, o.destroys)
		}
	}
}

func TestGridMatchThreshold(t *testing.T) {
	tests := []struct {
		name      string
		top       string
		matched   int
		remaining int
	}{
		{"pair does not clear", "0111111111", 0, 11},
		{"triple clears", "0011111111", 3, 8},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGrid(10, 10)
			f := &recFactory{}
			g.Reset(rows(tc.top), core.DefaultPalette(), f)

			shot := &recObject{}
			ev := g.Hit(core.C(0, 0), shot, 0, g.Layout().Center(core.C(0, 1)), false)

			if ev.At != core.C(0, 1) {
				t.Errorf("At = %v, expected (0,1)", ev.At)
			}
			if ev.MatchCount != tc.matched {
				t.Errorf("MatchCount = %d, expected %d", ev.MatchCount, tc.matched)
			}
			if ev.IsolatedCount != 0 || ev.Win {
				t.Errorf("event = %+v, expected no isolation and no win", ev)
			}
			if g.Len() != tc.remaining {
				t.Errorf("Len() = %d, expected %d", g.Len(), tc.remaining)
			}
			if g.Pending() != tc.matched {
				t.Errorf("Pending() = %d, expected %d", g.Pending(), tc.matched)
			}
			if shot.attached != 1 || shot.pos != g.Layout().Center(core.C(0, 1)) {
				t.Errorf("shot attached %d times at %v", shot.attached, shot.pos)
			}
			if err := g.Verify(); err != nil {
				t.Errorf("Verify() = %v", err)
			}
		})
	}
}

func TestGridWinRule(t *testing.T) {
	tests := []struct {
		name     string
		top      string
		win      bool
		matched  int
		isolated int
	}{
		{"remainder at threshold wins", "0000000111", true, 8, 3},
		{"remainder above threshold", "0000001111", false, 7, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGrid(10, 2)
			g.Reset(rows(tc.top), core.DefaultPalette(), &recFactory{})
			if g.TopRowWinCount() != 3 {
				t.Fatalf("TopRowWinCount() = %d, expected 3", g.TopRowWinCount())
			}

			ev := g.Hit(core.C(0, 0), &recObject{}, 0, g.Layout().Center(core.C(0, 1)), false)
			if ev.At != core.C(0, 1) {
				t.Errorf("At = %v, expected (0,1)", ev.At)
			}
			if ev.Win != tc.win {
				t.Errorf("Win = %v, expected %v", ev.Win, tc.win)
			}
			if ev.MatchCount != tc.matched {
				t.Errorf("MatchCount = %d, expected %d", ev.MatchCount, tc.matched)
			}
			if ev.IsolatedCount != tc.isolated {
				t.Errorf("IsolatedCount = %d, expected %d", ev.IsolatedCount, tc.isolated)
			}
			if tc.win && g.Len() != 0 {
				t.Errorf("Len() after win = %d, expected 0", g.Len())
			}
		})
	}
}

func TestGridIsolation(t *testing.T) {
	base := rows(
		"00..1111",
		"000",
		"22",
		"323",
	)

	tests := []struct {
		name     string
		extra    []core.Item
		isolated int
	}{
		{"cut off region falls", nil, 5},
		{"region anchored through a bridge", []core.Item{
			{Coord: core.C(2, 2), Color: 3},
			{Coord: core.C(3, 2), Color: 3},
			{Coord: core.C(4, 1), Color: 3},
		}, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGrid(8, 10)
			f := &recFactory{}
			items := append(append([]core.Item(nil), base...), tc.extra...)
			if dropped := g.Reset(items, core.DefaultPalette(), f); dropped != 0 {
				t.Fatalf("Reset() dropped %d items", dropped)
			}
			before := g.Len()

			ev := g.Hit(core.C(2, 1), &recObject{}, 0, g.Layout().Center(core.C(3, 1)), false)
			if ev.At != core.C(3, 1) {
				t.Errorf("At = %v, expected (3,1)", ev.At)
			}
			if ev.MatchCount != 6 {
				t.Errorf("MatchCount = %d, expected 6", ev.MatchCount)
			}
			if ev.IsolatedCount != tc.isolated {
				t.Errorf("IsolatedCount = %d, expected %d", ev.IsolatedCount, tc.isolated)
			}
			if ev.Win {
				t.Error("Win = true, expected false")
			}
			if want := before + 1 - 6 - tc.isolated; g.Len() != want {
				t.Errorf("Len() = %d, expected %d", g.Len(), want)
			}
			for c := 4; c < 8; c++ {
				if !g.Occupied(core.C(c, 0)) {
					t.Errorf("anchored cell (%d,0) was removed", c)
				}
			}
			if err := g.Verify(); err != nil {
				t.Errorf("Verify() = %v", err)
			}
		})
	}
}

func TestGridHitEmptyOriginPanics(t *testing.T) {
	g := newTestGrid(10, 10)
	defer func() {
		if recover() == nil {
			t.Error("Hit on empty slot did not panic")
		}
	}()
	g.Hit(core.C(3, 3), &recObject{}, 0, core.V(0, 0), false)
}

func TestGridForceReplacesOrigin(t *testing.T) {
	g := newTestGrid(10, 10)
	f := &recFactory{}
	g.Reset(rows("0011111111"), core.DefaultPalette(), f)
	origin := f.made[0]

	ev := g.Hit(core.C(0, 0), &recObject{}, 0, g.Layout().Center(core.C(0, 1)), true)
	if ev.At != core.C(0, 0) {
		t.Errorf("At = %v, expected origin slot", ev.At)
	}
	if ev.MatchCount != 0 {
		t.Errorf("MatchCount = %d, expected 0", ev.MatchCount)
	}
	if len(origin.destroys) != 1 || origin.destroys[0] != core.DestroyMatch {
		t.Errorf("origin destroys = %v, expected [match]", origin.destroys)
	}
	if g.TopRowCount() != 10 {
		t.Errorf("TopRowCount() = %d, expected 10", g.TopRowCount())
	}
}

func TestGridNoFreeNeighborReplacesOrigin(t *testing.T) {
	g := newTestGrid(3, 2)
	g.Reset(rows("012", "120"), core.DefaultPalette(), &recFactory{})

	ev := g.Hit(core.C(1, 0), &recObject{}, 4, core.V(0, 0), false)
	if ev.At != core.C(1, 0) {
		t.Errorf("At = %v, expected origin when no neighbor is free", ev.At)
	}
	if cell, _ := g.Cell(core.C(1, 0)); cell.Color != 4 {
		t.Errorf("origin color = %d, expected 4", cell.Color)
	}
	if g.Len() != 6 {
		t.Errorf("Len() = %d, expected 6", g.Len())
	}
}

func TestGridQueueFlushOnNextHit(t *testing.T) {
	g := newTestGrid(10, 10)
	f := &recFactory{}
	g.Reset(rows("0011111111"), core.DefaultPalette(), f)

	shot := &recObject{}
	g.Hit(core.C(0, 0), shot, 0, g.Layout().Center(core.C(0, 1)), false)
	if n := g.Tick(0.1); n != 1 {
		t.Fatalf("Tick() = %d, expected 1", n)
	}

	g.Hit(core.C(5, 0), &recObject{}, 2, g.Layout().Center(core.C(5, 1)), false)
	if g.Pending() != 0 {
		t.Errorf("Pending() = %d, expected 0", g.Pending())
	}

	counts := map[core.DestroyReason]int{}
	for _, o := range append(f.made, shot) {
		if len(o.destroys) > 1 {
			t.Errorf("object destroyed %d times", len(o.destroys))
		}
		for _, r := range o.destroys {
			counts[r]++
		}
	}
	if counts[core.DestroyMatch] != 1 || counts[core.DestroyDispose] != 2 {
		t.Errorf("destroy reasons = %v, expected 1 match and 2 dispose", counts)
	}
}

func TestGridColliders(t *testing.T) {
	w := core.NewWorld()
	cfg := core.DefaultGridConfig()
	g := core.NewGrid(cfg, w, core.NewCellPool(4))
	g.Reset(rows("0011111111"), core.DefaultPalette(), nil)

	if w.Len() != 10 {
		t.Fatalf("world Len() = %d, expected 10", w.Len())
	}
	cell, _ := g.Cell(core.C(3, 0))
	if at, ok := g.CellByCollider(cell.Collider); !ok || at != core.C(3, 0) {
		t.Errorf("CellByCollider() = %v, %v; expected (3,0)", at, ok)
	}

	first, _ := g.Cell(core.C(0, 0))
	ev, ok := g.HitCollider(first.Collider, nil, 0, g.Layout().Center(core.C(0, 1)), false)
	if !ok || ev.MatchCount != 3 {
		t.Errorf("HitCollider() = %+v, %v; expected 3 matched", ev, ok)
	}
	if w.Len() != 8 {
		t.Errorf("world Len() after match = %d, expected 8", w.Len())
	}
	if _, ok := g.HitCollider(9999, nil, 0, core.V(0, 0), false); ok {
		t.Error("HitCollider() with unknown id should fail")
	}
	if err := g.Verify(); err != nil {
		t.Errorf("Verify() = %v", err)
	}
}

func TestGridPublishesHits(t *testing.T) {
	g := newTestGrid(10, 10)
	g.Reset(rows("0011111111"), core.DefaultPalette(), nil)

	var got []core.HitEvent
	sub := g.Bus().Subscribe(func(e core.Event) {
		if ev, ok := e.(core.HitEvent); ok {
			got = append(got, ev)
		}
	})
	sub.Enable()

	g.Hit(core.C(0, 0), nil, 0, g.Layout().Center(core.C(0, 1)), false)
	if len(got) != 1 || got[0].MatchCount != 3 {
		t.Errorf("published = %+v, expected one hit with 3 matched", got)
	}
}

func TestPlacedColors(t *testing.T) {
	g := newTestGrid(10, 10)
	items := rows("5500", "3")
	items = append(items,
		core.Item{Coord: core.C(0, 0), Color: 1},  // slot taken by 5
		core.Item{Coord: core.C(20, 0), Color: 2}, // out of bounds
	)
	g.Reset(items, core.DefaultPalette(), nil)

	got := g.PlacedColors(items)
	expected := []core.Color{5, 0, 3}
	if len(got) != len(expected) {
		t.Fatalf("PlacedColors() = %v, expected %v", got, expected)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("PlacedColors() = %v, expected %v", got, expected)
		}
	}
}

func TestRenderASCII(t *testing.T) {
	g := newTestGrid(3, 2)
	g.Reset(rows("01.", ".2."), core.DefaultPalette(), nil)

	got := core.RenderASCII(g, core.DefaultPalette())
	expected := strings.Join([]string{
		"Cells: 3 | Top: 2 | Win at: 0 | Pending: 0",
		" R G .",
		". B .",
		"",
	}, "\n")
	if got != expected {
		t.Errorf("RenderASCII() =\n%s\nexpected\n%s", got, expected)
	}
}

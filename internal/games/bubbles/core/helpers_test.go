package core_test

import (
	"github.com/vovakirdan/bubble-arcade/internal/games/bubbles/core"
)

// recObject records every call the grid makes on it.
type recObject struct {
	color    core.Color
	attached int
	pos      core.Vec2
	detached int
	destroys []core.DestroyReason
}

func (o *recObject) AttachAt(pos core.Vec2) {
	o.attached++
	o.pos = pos
}

func (o *recObject) Detach() { o.detached++ }

func (o *recObject) Destroy(r core.DestroyReason) { o.destroys = append(o.destroys, r) }

// recFactory hands out recObjects and remembers them.
type recFactory struct {
	made []*recObject
}

func (f *recFactory) NewObject(c core.Color) core.Object {
	o := &recObject{color: c}
	f.made = append(f.made, o)
	return o
}

// row builds items for one row from a glyph string; '.' leaves a gap.
// Digits are palette indexes.
func row(r int, s string) []core.Item {
	var items []core.Item
	for col, ch := range s {
		if ch == '.' {
			continue
		}
		items = append(items, core.Item{Coord: core.C(col, r), Color: int(ch - '0')})
	}
	return items
}

func rows(lines ...string) []core.Item {
	var items []core.Item
	for r, l := range lines {
		items = append(items, row(r, l)...)
	}
	return items
}

func newTestGrid(cols, rowsN int) *core.Grid {
	cfg := core.DefaultGridConfig()
	cfg.Cols = cols
	cfg.Rows = rowsN
	return core.NewGrid(cfg, nil, nil)
}

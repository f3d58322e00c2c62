package core

import (
	"fmt"
	"hash/fnv"
	"math"
)

// GridConfig defines the board geometry and match rules.
type GridConfig struct {
	Cols         int
	Rows         int
	CellRadius   float64
	Spacing      float64
	Origin       Vec2    // world position of the row 0 column center
	MinMatch     int     // smallest same-color group that clears
	WinFraction  float64 // share of the initial top row that may remain for a win
	DestroyDelay float64 // seconds between queued destroy effects
}

// DefaultGridConfig returns the stock 10x10 board.
func DefaultGridConfig() GridConfig {
	return GridConfig{
		Cols:         10,
		Rows:         10,
		CellRadius:   0.5,
		Spacing:      0.1,
		MinMatch:     3,
		WinFraction:  0.3,
		DestroyDelay: DefaultDestroyDelay,
	}
}

// Layout returns the slot geometry for the config.
func (c GridConfig) Layout() Layout {
	return Layout{
		Origin:     c.Origin,
		Cols:       c.Cols,
		Rows:       c.Rows,
		CellRadius: c.CellRadius,
		Spacing:    c.Spacing,
	}
}

// Item is one level entry: a slot and a palette index.
type Item struct {
	Coord Coord
	Color int
}

// visit states for the shared match resolution mask.
const (
	markNone     uint8 = iota
	markMatched        // same-color group of the new cell
	markFlood          // reached by the region fill in progress
	markAnchored       // region connected to row 0
	markIsolated       // region cut off from row 0
)

// Grid is the hex board: an arena of cells indexed by row*Cols+col with a
// parallel presence bitmap.
type Grid struct {
	cfg    GridConfig
	layout Layout

	cells   []*Cell
	present []bool
	count   int

	topRowCount    int
	topRowWinCount int

	colliders  ColliderSet
	cellPool   CellFactory
	byCollider map[ColliderID]Coord
	queue      *DestroyQueue
	bus        *Bus

	// Scratch buffers reused by every hit.
	mark     []uint8
	boundary []bool
	bfs      []Coord
	nbuf     []Coord
	matched  []Coord
	adjacent []Coord
	isolated []Coord
}

// NewGrid creates an empty grid. colliders may be nil for a headless grid;
// cells defaults to HeapCells.
func NewGrid(cfg GridConfig, colliders ColliderSet, cells CellFactory) *Grid {
	if cfg.MinMatch < 1 {
		cfg.MinMatch = 1
	}
	if cells == nil {
		cells = HeapCells{}
	}
	n := max(0, cfg.Cols*cfg.Rows)
	return &Grid{
		cfg:        cfg,
		layout:     cfg.Layout(),
		cells:      make([]*Cell, n),
		present:    make([]bool, n),
		colliders:  colliders,
		cellPool:   cells,
		byCollider: make(map[ColliderID]Coord),
		queue:      NewDestroyQueue(cfg.DestroyDelay),
		bus:        &Bus{},
		mark:       make([]uint8, n),
		boundary:   make([]bool, n),
		bfs:        make([]Coord, 0, n),
		nbuf:       make([]Coord, 0, 6),
	}
}

// Config returns the grid configuration.
func (g *Grid) Config() GridConfig { return g.cfg }

// Layout returns the slot geometry.
func (g *Grid) Layout() Layout { return g.layout }

// Bus returns the bus HitEvents are published on.
func (g *Grid) Bus() *Bus { return g.bus }

// Len returns the number of occupied slots.
func (g *Grid) Len() int { return g.count }

// TopRowCount returns the number of occupied slots in row 0.
func (g *Grid) TopRowCount() int { return g.topRowCount }

// TopRowWinCount returns the row 0 remainder at or below which a match wins.
func (g *Grid) TopRowWinCount() int { return g.topRowWinCount }

// Pending returns the number of destroy effects still queued.
func (g *Grid) Pending() int { return g.queue.Len() }

func (g *Grid) index(c Coord) int {
	return c.Row*g.cfg.Cols + c.Col
}

func (g *Grid) coordAt(i int) Coord {
	return C(i%g.cfg.Cols, i/g.cfg.Cols)
}

// InBounds reports whether c is a valid slot.
func (g *Grid) InBounds(c Coord) bool {
	return c.InBounds(g.cfg.Cols, g.cfg.Rows)
}

// Occupied reports whether c holds a cell.
func (g *Grid) Occupied(c Coord) bool {
	return g.InBounds(c) && g.present[g.index(c)]
}

// Cell returns a copy of the cell at c.
func (g *Grid) Cell(c Coord) (Cell, bool) {
	if !g.Occupied(c) {
		return Cell{}, false
	}
	return *g.cells[g.index(c)], true
}

// CellByCollider returns the slot owning collider id.
func (g *Grid) CellByCollider(id ColliderID) (Coord, bool) {
	c, ok := g.byCollider[id]
	return c, ok
}

// Cells returns copies of all occupied cells in row-major order.
func (g *Grid) Cells() []Cell {
	out := make([]Cell, 0, g.count)
	for i, ok := range g.present {
		if ok {
			out = append(out, *g.cells[i])
		}
	}
	return out
}

// PlacedColors returns the distinct colors of the items that hold their
// slot on the board, in the order the items are listed.
func (g *Grid) PlacedColors(items []Item) []Color {
	var seen [256]bool
	var out []Color
	for _, it := range items {
		c, ok := g.Cell(it.Coord)
		if !ok || int(c.Color) != it.Color || seen[c.Color] {
			continue
		}
		seen[c.Color] = true
		out = append(out, c.Color)
	}
	return out
}

// Reset disposes every cell and pending effect, then fills the grid from
// items. Items outside the grid, with a color not in palette, or landing on
// an already used slot are dropped. Returns the number of dropped items.
func (g *Grid) Reset(items []Item, palette Palette, objects ObjectFactory) int {
	g.queue.Flush()
	for i, ok := range g.present {
		if !ok {
			continue
		}
		if obj := g.remove(g.coordAt(i)); obj != nil {
			obj.Destroy(DestroyDispose)
		}
	}
	g.topRowCount = 0
	g.topRowWinCount = 0

	dropped := 0
	for _, it := range items {
		if !g.InBounds(it.Coord) || !palette.Contains(it.Color) || g.Occupied(it.Coord) {
			dropped++
			continue
		}
		var obj Object
		if objects != nil {
			obj = objects.NewObject(Color(it.Color))
		}
		g.insert(it.Coord, Color(it.Color), obj)
	}
	g.topRowWinCount = int(math.Floor(float64(g.topRowCount) * g.cfg.WinFraction))
	return dropped
}

// Hit lands obj of the given color next to origin and resolves matches.
//
// Unless force is set the new cell takes the free neighbor of origin whose
// center is closest to approach. When no neighbor is free, or force is
// set, the origin occupant is destroyed and its slot reused.
// Hit panics if origin is empty: callers must pass a live cell.
func (g *Grid) Hit(origin Coord, obj Object, color Color, approach Vec2, force bool) HitEvent {
	if !g.Occupied(origin) {
		panic(fmt.Sprintf("grid: hit on empty cell %v", origin))
	}
	g.queue.Flush()

	target, ok := Coord{}, false
	if !force {
		target, ok = g.nearestFree(origin, approach)
	}
	if !ok {
		if old := g.remove(origin); old != nil {
			old.Destroy(DestroyMatch)
		}
		target = origin
	}

	g.insert(target, color, obj)
	ev := g.resolve(target)
	g.bus.Publish(ev)
	return ev
}

// HitCollider is Hit with origin looked up from a target collider.
func (g *Grid) HitCollider(id ColliderID, obj Object, color Color, approach Vec2, force bool) (HitEvent, bool) {
	origin, ok := g.byCollider[id]
	if !ok {
		return HitEvent{}, false
	}
	return g.Hit(origin, obj, color, approach, force), true
}

// Tick advances queued destroy effects by dt seconds.
func (g *Grid) Tick(dt float64) int {
	return g.queue.Tick(dt)
}

// Flush disposes every queued destroy effect immediately.
func (g *Grid) Flush() int {
	return g.queue.Flush()
}

func (g *Grid) nearestFree(origin Coord, approach Vec2) (Coord, bool) {
	g.nbuf = AppendNeighbors(g.nbuf[:0], origin, g.cfg.Cols, g.cfg.Rows)
	best, found := Coord{}, false
	bestDist := math.Inf(1)
	for _, n := range g.nbuf {
		if g.present[g.index(n)] {
			continue
		}
		if d := g.layout.Center(n).DistSq(approach); d < bestDist {
			best, bestDist, found = n, d, true
		}
	}
	return best, found
}

func (g *Grid) insert(c Coord, color Color, obj Object) {
	i := g.index(c)
	cell := g.cellPool.Acquire()
	cell.Coord = c
	cell.Color = color
	cell.Object = obj

	center := g.layout.Center(c)
	if g.colliders != nil {
		cell.Collider = g.colliders.AddCircle(center, g.cfg.CellRadius, LayerTarget)
		g.byCollider[cell.Collider] = c
	}

	g.cells[i] = cell
	g.present[i] = true
	g.count++
	if c.Row == 0 {
		g.topRowCount++
	}
	if obj != nil {
		obj.AttachAt(center)
	}
}

// remove takes the cell at c out of the arena and detaches its object.
func (g *Grid) remove(c Coord) Object {
	i := g.index(c)
	cell := g.cells[i]
	obj := cell.Object

	if g.colliders != nil && cell.Collider != NoCollider {
		g.colliders.Remove(cell.Collider)
		delete(g.byCollider, cell.Collider)
	}
	g.cells[i] = nil
	g.present[i] = false
	g.count--
	if c.Row == 0 {
		g.topRowCount--
	}
	g.cellPool.Release(cell)

	if obj != nil {
		obj.Detach()
	}
	return obj
}

// resolve runs match and isolation detection rooted at start.
func (g *Grid) resolve(start Coord) HitEvent {
	clear(g.mark)
	clear(g.boundary)
	cols, rows := g.cfg.Cols, g.cfg.Rows
	color := g.cells[g.index(start)].Color

	// Pass 1: same-color flood fill, collecting differently colored
	// neighbors below row 0 as region seeds.
	matched := g.matched[:0]
	adjacent := g.adjacent[:0]
	topMatched := 0
	queue := append(g.bfs[:0], start)
	g.mark[g.index(start)] = markMatched
	for head := 0; head < len(queue); head++ {
		c := queue[head]
		matched = append(matched, c)
		if c.Row == 0 {
			topMatched++
		}
		g.nbuf = AppendNeighbors(g.nbuf[:0], c, cols, rows)
		for _, n := range g.nbuf {
			ni := g.index(n)
			if !g.present[ni] {
				continue
			}
			if g.cells[ni].Color == color {
				if g.mark[ni] == markNone {
					g.mark[ni] = markMatched
					queue = append(queue, n)
				}
				continue
			}
			if n.Row > 0 && !g.boundary[ni] {
				g.boundary[ni] = true
				adjacent = append(adjacent, n)
			}
		}
	}
	g.matched, g.adjacent, g.bfs = matched, adjacent, queue

	ev := HitEvent{At: start}
	if len(matched) < g.cfg.MinMatch {
		return ev
	}

	ev.Win = g.topRowCount-topMatched <= g.topRowWinCount
	isolated := g.isolated[:0]
	if ev.Win {
		for i, ok := range g.present {
			if ok && g.mark[i] == markNone {
				isolated = append(isolated, g.coordAt(i))
			}
		}
	} else {
		// Pass 2: fill each unclassified seed's region through non-matched
		// cells. A region touching row 0, directly or through an already
		// anchored region, stays; any other region is isolated.
		for len(adjacent) > 0 {
			seed := adjacent[len(adjacent)-1]
			adjacent = adjacent[:len(adjacent)-1]
			si := g.index(seed)
			if g.mark[si] != markNone {
				continue
			}

			queue = append(queue[:0], seed)
			g.mark[si] = markFlood
			anchored := false
		flood:
			for head := 0; head < len(queue); head++ {
				c := queue[head]
				if c.Row == 0 {
					anchored = true
					break
				}
				g.nbuf = AppendNeighbors(g.nbuf[:0], c, cols, rows)
				for _, n := range g.nbuf {
					ni := g.index(n)
					if !g.present[ni] {
						continue
					}
					switch g.mark[ni] {
					case markNone:
						g.mark[ni] = markFlood
						queue = append(queue, n)
					case markAnchored:
						anchored = true
						break flood
					}
				}
			}

			final := markIsolated
			if anchored {
				final = markAnchored
			}
			for _, c := range queue {
				g.mark[g.index(c)] = final
			}
			if !anchored {
				isolated = append(isolated, queue...)
			}
		}
		g.bfs = queue
	}
	g.isolated = isolated

	for _, c := range matched {
		g.queue.Push(g.remove(c), DestroyMatch)
	}
	for _, c := range isolated {
		g.queue.Push(g.remove(c), DestroyIsolated)
	}
	g.queue.Restart()

	ev.MatchCount = len(matched)
	ev.IsolatedCount = len(isolated)
	return ev
}

// Hash returns a stable hash of the occupied slots and counters.
func (g *Grid) Hash() uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%dx%d;", g.cfg.Cols, g.cfg.Rows)
	for i, ok := range g.present {
		if ok {
			c := g.cells[i]
			fmt.Fprintf(h, "%d:%d:%d,", c.Coord.Col, c.Coord.Row, c.Color)
		}
	}
	fmt.Fprintf(h, ";N:%d;T:%d;W:%d", g.count, g.topRowCount, g.topRowWinCount)
	return h.Sum64()
}

// Verify checks the arena bookkeeping against a full scan.
func (g *Grid) Verify() error {
	count, top := 0, 0
	for i, ok := range g.present {
		cell := g.cells[i]
		if ok != (cell != nil) {
			return fmt.Errorf("grid: presence mismatch at %v", g.coordAt(i))
		}
		if !ok {
			continue
		}
		if cell.Coord != g.coordAt(i) {
			return fmt.Errorf("grid: cell %v stored at %v", cell.Coord, g.coordAt(i))
		}
		count++
		if cell.Coord.Row == 0 {
			top++
		}
	}
	if count != g.count {
		return fmt.Errorf("grid: count %d, scanned %d", g.count, count)
	}
	if top != g.topRowCount {
		return fmt.Errorf("grid: top row count %d, scanned %d", g.topRowCount, top)
	}
	if g.colliders != nil && len(g.byCollider) != count {
		return fmt.Errorf("grid: %d colliders for %d cells", len(g.byCollider), count)
	}
	return nil
}

package core

import "math"

// Layout converts between grid slots and world positions.
//
// Slots are spaced one interval (2*CellRadius + Spacing) apart. Columns are
// centered around Origin.X, even rows are shifted a quarter interval right,
// odd rows a quarter interval left. Row 0 sits at Origin.Y and each further
// row is one interval lower.
type Layout struct {
	Origin     Vec2
	Cols       int
	Rows       int
	CellRadius float64
	Spacing    float64
}

// Interval returns the center-to-center distance between adjacent slots.
func (l Layout) Interval() float64 {
	return 2*l.CellRadius + l.Spacing
}

func (l Layout) xStart() float64 {
	return -float64(l.Cols-1) / 2
}

func rowOffset(row int) float64 {
	if row%2 == 0 {
		return 0.25
	}
	return -0.25
}

// Center returns the world position of the slot center.
func (l Layout) Center(c Coord) Vec2 {
	iv := l.Interval()
	return l.Origin.Add(Vec2{
		X: iv * (l.xStart() + float64(c.Col) + rowOffset(c.Row)),
		Y: -iv * float64(c.Row),
	})
}

// Nearest returns the in-bounds slot whose center is closest to p.
func (l Layout) Nearest(p Vec2) Coord {
	iv := l.Interval()
	if l.Cols <= 0 || l.Rows <= 0 || iv <= 0 {
		return Coord{}
	}
	guess := int(math.Round((l.Origin.Y - p.Y) / iv))

	best := Coord{}
	bestDist := math.Inf(1)
	for row := guess - 1; row <= guess+1; row++ {
		if row < 0 || row >= l.Rows {
			continue
		}
		col := int(math.Round((p.X-l.Origin.X)/iv - l.xStart() - rowOffset(row)))
		col = max(0, min(l.Cols-1, col))
		c := C(col, row)
		if d := l.Center(c).DistSq(p); d < bestDist {
			best, bestDist = c, d
		}
	}
	if math.IsInf(bestDist, 1) {
		row := max(0, min(l.Rows-1, guess))
		col := int(math.Round((p.X-l.Origin.X)/iv - l.xStart() - rowOffset(row)))
		best = C(max(0, min(l.Cols-1, col)), row)
	}
	return best
}

// Bounds returns the edges of the area covered by the slots, including the
// cell radius: left and right X, top Y of row 0, bottom Y of the last row.
func (l Layout) Bounds() (left, right, top, bottom float64) {
	iv := l.Interval()
	left = l.Origin.X + iv*(l.xStart()-0.25) - l.CellRadius
	right = l.Origin.X + iv*(l.xStart()+float64(l.Cols-1)+0.25) + l.CellRadius
	top = l.Origin.Y + l.CellRadius
	bottom = l.Origin.Y - iv*float64(l.Rows-1) - l.CellRadius
	return left, right, top, bottom
}

package core

import "fmt"

// Coord is a grid slot in offset coordinates.
// Col increases to the right, Row increases downward from the anchor row 0.
type Coord struct {
	Col int
	Row int
}

// C is a convenience constructor for Coord.
func C(col, row int) Coord {
	return Coord{Col: col, Row: row}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
}

// Add returns a new Coord offset by (dc, dr).
func (c Coord) Add(dc, dr int) Coord {
	return Coord{Col: c.Col + dc, Row: c.Row + dr}
}

// InBounds reports whether c lies inside a cols x rows grid.
func (c Coord) InBounds(cols, rows int) bool {
	return c.Col >= 0 && c.Col < cols && c.Row >= 0 && c.Row < rows
}

// EvenRow reports whether c is on an even row.
// Even rows sit a quarter interval to the right, odd rows a quarter to the left.
func (c Coord) EvenRow() bool {
	return c.Row%2 == 0
}

// AppendNeighbors appends the in-bounds hex neighbors of c to dst.
//
// Same-row neighbors are (col-1) and (col+1). On the rows above and below,
// even rows skip the col-1 diagonal and odd rows skip the col+1 diagonal.
// Order is fixed: dy from -1 to 1, then dx from -1 to 1.
func AppendNeighbors(dst []Coord, c Coord, cols, rows int) []Coord {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if dy != 0 {
				if c.EvenRow() && dx == -1 {
					continue
				}
				if !c.EvenRow() && dx == 1 {
					continue
				}
			}
			n := c.Add(dx, dy)
			if n.InBounds(cols, rows) {
				dst = append(dst, n)
			}
		}
	}
	return dst
}

// Neighbors returns the in-bounds hex neighbors of c.
func Neighbors(c Coord, cols, rows int) []Coord {
	return AppendNeighbors(make([]Coord, 0, 6), c, cols, rows)
}

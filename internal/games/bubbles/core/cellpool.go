package core

// Cell is one occupied grid slot.
type Cell struct {
	Coord    Coord
	Color    Color
	Object   Object
	Collider ColliderID
}

func (c *Cell) reset() {
	*c = Cell{}
}

// CellFactory supplies cell records to the grid.
type CellFactory interface {
	Acquire() *Cell
	Release(c *Cell)
}

// HeapCells allocates a fresh cell for every Acquire.
type HeapCells struct{}

// Acquire returns a new zeroed cell.
func (HeapCells) Acquire() *Cell {
	return &Cell{}
}

// Release drops the cell.
func (HeapCells) Release(*Cell) {}

// CellPool recycles released cells through a free list.
type CellPool struct {
	free      []*Cell
	allocated int
}

// NewCellPool creates a pool with capacity cells preallocated.
func NewCellPool(capacity int) *CellPool {
	p := &CellPool{free: make([]*Cell, 0, capacity)}
	for range capacity {
		p.free = append(p.free, &Cell{})
		p.allocated++
	}
	return p
}

// Acquire pops a cell from the free list, allocating if it is empty.
func (p *CellPool) Acquire() *Cell {
	if n := len(p.free); n > 0 {
		c := p.free[n-1]
		p.free = p.free[:n-1]
		return c
	}
	p.allocated++
	return &Cell{}
}

// Release zeroes the cell and returns it to the free list.
func (p *CellPool) Release(c *Cell) {
	if c == nil {
		return
	}
	c.reset()
	p.free = append(p.free, c)
}

// Free returns the number of cells waiting in the free list.
func (p *CellPool) Free() int {
	return len(p.free)
}

// Allocated returns the total number of cells the pool has created.
func (p *CellPool) Allocated() int {
	return p.allocated
}

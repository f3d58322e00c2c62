package core

import "math"

// ColliderID identifies a collider in a World. Zero means "no collider".
type ColliderID uint32

// NoCollider is the zero ColliderID.
const NoCollider ColliderID = 0

// ShapeKind selects the collider geometry.
type ShapeKind uint8

const (
	ShapePlane  ShapeKind = iota // half-plane: solid on the side opposite Normal
	ShapeCircle                  // disc of Radius around Point
)

// Collider is a static shape registered in a World.
type Collider struct {
	ID     ColliderID
	Layer  Layer
	Kind   ShapeKind
	Point  Vec2    // plane anchor or circle center
	Normal Vec2    // plane normal, unit length, pointing into open space
	Radius float64 // circle radius
}

// Hit describes the first contact of a circle cast.
type Hit struct {
	ID       ColliderID
	Layer    Layer
	Distance float64 // distance travelled along the cast direction
	Point    Vec2    // cast circle center at contact
	Normal   Vec2    // surface normal at contact, unit length
}

// ColliderSet is the part of a World the grid needs to register cells.
type ColliderSet interface {
	AddCircle(center Vec2, radius float64, layer Layer) ColliderID
	Remove(id ColliderID)
}

// Caster is the part of a World the projectile needs.
type Caster interface {
	ColliderSet
	CircleCast(from, dir Vec2, radius, maxDist float64, mask Layer, exclude ColliderID) (Hit, bool)
	Move(id ColliderID, center Vec2)
}

// World holds static colliders and answers circle casts against them.
type World struct {
	colliders []Collider
	index     map[ColliderID]int
	nextID    ColliderID
}

// NewWorld creates an empty collision world.
func NewWorld() *World {
	return &World{
		index:  make(map[ColliderID]int),
		nextID: 1,
	}
}

func (w *World) add(c Collider) ColliderID {
	c.ID = w.nextID
	w.nextID++
	w.index[c.ID] = len(w.colliders)
	w.colliders = append(w.colliders, c)
	return c.ID
}

// AddPlane registers a half-plane through point facing normal.
func (w *World) AddPlane(point, normal Vec2, layer Layer) ColliderID {
	return w.add(Collider{
		Layer:  layer,
		Kind:   ShapePlane,
		Point:  point,
		Normal: normal.Normalized(),
	})
}

// AddCircle registers a disc.
func (w *World) AddCircle(center Vec2, radius float64, layer Layer) ColliderID {
	return w.add(Collider{
		Layer:  layer,
		Kind:   ShapeCircle,
		Point:  center,
		Radius: radius,
	})
}

// Move repositions a collider. Unknown IDs are ignored.
func (w *World) Move(id ColliderID, center Vec2) {
	if i, ok := w.index[id]; ok {
		w.colliders[i].Point = center
	}
}

// Remove unregisters a collider. Unknown IDs are ignored.
func (w *World) Remove(id ColliderID) {
	i, ok := w.index[id]
	if !ok {
		return
	}
	last := len(w.colliders) - 1
	if i != last {
		w.colliders[i] = w.colliders[last]
		w.index[w.colliders[i].ID] = i
	}
	w.colliders = w.colliders[:last]
	delete(w.index, id)
}

// Collider returns the collider with the given ID.
func (w *World) Collider(id ColliderID) (Collider, bool) {
	i, ok := w.index[id]
	if !ok {
		return Collider{}, false
	}
	return w.colliders[i], true
}

// Len returns the number of registered colliders.
func (w *World) Len() int {
	return len(w.colliders)
}

// Clear removes every collider. IDs keep increasing.
func (w *World) Clear() {
	w.colliders = w.colliders[:0]
	clear(w.index)
}

// CircleCast sweeps a circle of radius from along dir for up to maxDist and
// returns the closest collider on a layer in mask, ignoring exclude.
// Equal distances resolve to the lower collider ID.
func (w *World) CircleCast(from, dir Vec2, radius, maxDist float64, mask Layer, exclude ColliderID) (Hit, bool) {
	dir = dir.Normalized()
	if dir.IsZero() {
		return Hit{}, false
	}

	var best Hit
	found := false
	for i := range w.colliders {
		c := &w.colliders[i]
		if c.ID == exclude || !c.Layer.In(mask) {
			continue
		}

		var t float64
		var ok bool
		switch c.Kind {
		case ShapePlane:
			t, ok = castPlane(from, dir, radius, c)
		case ShapeCircle:
			t, ok = castCircle(from, dir, radius, c)
		}
		if !ok || t > maxDist {
			continue
		}
		if found && (t > best.Distance || (t == best.Distance && c.ID > best.ID)) {
			continue
		}

		point := from.Add(dir.Scale(t))
		normal := c.Normal
		if c.Kind == ShapeCircle {
			normal = point.Sub(c.Point).Normalized()
			if normal.IsZero() {
				normal = dir.Scale(-1)
			}
		}
		best = Hit{ID: c.ID, Layer: c.Layer, Distance: t, Point: point, Normal: normal}
		found = true
	}
	return best, found
}

// castPlane returns the travel distance at which the circle touches the plane.
func castPlane(from, dir Vec2, radius float64, c *Collider) (float64, bool) {
	approach := dir.Dot(c.Normal)
	if approach >= 0 {
		return 0, false
	}
	gap := from.Sub(c.Point).Dot(c.Normal)
	if gap < 0 {
		// Already behind the plane.
		return 0, false
	}
	t := (gap - radius) / -approach
	return math.Max(0, t), true
}

// castCircle returns the travel distance at which the two circles touch.
func castCircle(from, dir Vec2, radius float64, c *Collider) (float64, bool) {
	r := radius + c.Radius
	m := from.Sub(c.Point)
	b := m.Dot(dir)
	cc := m.LenSq() - r*r
	if cc > 0 && b > 0 {
		return 0, false
	}
	disc := b*b - cc
	if disc < 0 {
		return 0, false
	}
	t := -b - math.Sqrt(disc)
	return math.Max(0, t), true
}

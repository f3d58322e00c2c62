package core

// DestroyReason is the terminal disposition of a grid object.
type DestroyReason uint8

const (
	DestroyMatch    DestroyReason = iota // part of a cleared same-color group
	DestroyIsolated                      // cut off from the anchor row
	DestroyDispose                       // removed silently, no effect
)

// String returns the string representation of a destroy reason.
func (r DestroyReason) String() string {
	switch r {
	case DestroyMatch:
		return "match"
	case DestroyIsolated:
		return "isolated"
	case DestroyDispose:
		return "dispose"
	default:
		return "unknown"
	}
}

// Object is a game object owned by a grid cell.
type Object interface {
	// AttachAt pins the object to a slot center.
	AttachAt(pos Vec2)
	// Detach releases the object from the grid. Called before Destroy.
	Detach()
	// Destroy plays the effect for reason and releases the object.
	Destroy(reason DestroyReason)
}

// ObjectFactory creates grid objects for level items.
type ObjectFactory interface {
	NewObject(c Color) Object
}

// ObjectFactoryFunc adapts a function to ObjectFactory.
type ObjectFactoryFunc func(c Color) Object

// NewObject calls f(c).
func (f ObjectFactoryFunc) NewObject(c Color) Object {
	return f(c)
}

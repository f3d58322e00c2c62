package core

import "strings"

// Layer is a collision layer bitmask.
type Layer uint8

const (
	LayerWall Layer = 1 << iota
	LayerTarget
	LayerFloor

	LayerNone Layer = 0
	LayerAll        = LayerWall | LayerTarget | LayerFloor
)

// In reports whether l is part of mask.
func (l Layer) In(mask Layer) bool {
	return l&mask != 0
}

// String returns a "|" joined list of layer names.
func (l Layer) String() string {
	if l == LayerNone {
		return "none"
	}
	var parts []string
	if l.In(LayerWall) {
		parts = append(parts, "wall")
	}
	if l.In(LayerTarget) {
		parts = append(parts, "target")
	}
	if l.In(LayerFloor) {
		parts = append(parts, "floor")
	}
	return strings.Join(parts, "|")
}

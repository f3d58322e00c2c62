// Package core provides the bubble shooter engine: hex grid matching,
// ballistic projectile simulation and the shooter state machine.
// This package is UI-agnostic and deterministic for a given RNG seed.
package core

import "math"

// Epsilon is the tolerance used for all approximate float comparisons.
const Epsilon = 1e-6

// Vec2 is a 2D vector in world units. Y grows upward.
type Vec2 struct {
	X, Y float64
}

// V is a shorthand constructor for Vec2.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// LenSq returns the squared length of v.
func (v Vec2) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Len returns the length of v.
func (v Vec2) Len() float64 {
	return math.Sqrt(v.LenSq())
}

// IsZero reports whether v has approximately zero length.
func (v Vec2) IsZero() bool {
	return Approx(v.Len(), 0)
}

// Normalized returns v scaled to unit length, or the zero vector if v is ~0.
func (v Vec2) Normalized() Vec2 {
	l := v.Len()
	if Approx(l, 0) {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Rotate returns v rotated counter-clockwise by deg degrees.
func (v Vec2) Rotate(deg float64) Vec2 {
	rad := deg * math.Pi / 180
	sin, cos := math.Sincos(rad)
	return Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Reflect returns v mirrored about the given unit normal.
func (v Vec2) Reflect(normal Vec2) Vec2 {
	return v.Sub(normal.Scale(2 * v.Dot(normal)))
}

// DistSq returns the squared distance between v and o.
func (v Vec2) DistSq(o Vec2) float64 {
	return v.Sub(o).LenSq()
}

// LerpVec interpolates between a and b by t without clamping.
func LerpVec(a, b Vec2, t float64) Vec2 {
	return a.Add(b.Sub(a).Scale(t))
}

// Lerp interpolates between a and b by t, clamping t to [0, 1].
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*clamp01(t)
}

// Approx reports whether a and b differ by less than Epsilon.
func Approx(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

func clamp01(t float64) float64 {
	return math.Max(0, math.Min(1, t))
}

// Package core provides fundamental types and utilities for the breakout
// simulation. It contains no external dependencies (especially no Bubble Tea)
// to keep game logic pure and testable.
package core

import "math"

// Vec2 is a 2D vector in world units. Y grows upward.
type Vec2 struct {
	X, Y float64
}

// V creates a vector.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v * s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Half returns v / 2.
func (v Vec2) Half() Vec2 {
	return v.Scale(0.5)
}

// Len returns the Euclidean length.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns the unit vector in the direction of v.
// The zero vector is returned unchanged.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// Box is an axis-aligned bounding box described by its center and full size.
type Box struct {
	Center Vec2
	Size   Vec2
}

// NewBox creates a box centered at c with full extent size.
func NewBox(c, size Vec2) Box {
	return Box{Center: c, Size: size}
}

// Min returns the bottom-left corner.
func (b Box) Min() Vec2 {
	return b.Center.Sub(b.Size.Half())
}

// Max returns the top-right corner.
func (b Box) Max() Vec2 {
	return b.Center.Add(b.Size.Half())
}

// Collidable is implemented by anything the collision pass can test a ball
// against.
type Collidable interface {
	Bounds() Box
}

// Edge names the side of box B that box A crossed.
type Edge int

const (
	EdgeLeft   Edge = iota // A entered through B's left side
	EdgeRight              // A entered through B's right side
	EdgeTop                // A entered through B's top side
	EdgeBottom             // A entered through B's bottom side
	EdgeInside             // no well-defined exit edge
)

// String returns a human-readable edge name.
func (e Edge) String() string {
	switch e {
	case EdgeLeft:
		return "Left"
	case EdgeRight:
		return "Right"
	case EdgeTop:
		return "Top"
	case EdgeBottom:
		return "Bottom"
	case EdgeInside:
		return "Inside"
	default:
		return "Unknown"
	}
}

// Overlap tests box A (centered at a with full extent aSize) against box B.
// It reports false if the boxes do not intersect; touching edges do not count.
//
// On intersection the returned edge is the side of B that A straddles on
// the axis of least penetration. An axis where A straddles neither side of B
// counts as Inside with infinite depth, so the other axis wins; when both
// axes are Inside the result is EdgeInside.
func Overlap(a, aSize, b, bSize Vec2) (Edge, bool) {
	aMin, aMax := a.Sub(aSize.Half()), a.Add(aSize.Half())
	bMin, bMax := b.Sub(bSize.Half()), b.Add(bSize.Half())

	if !(aMin.X < bMax.X && aMax.X > bMin.X && aMin.Y < bMax.Y && aMax.Y > bMin.Y) {
		return EdgeInside, false
	}

	xEdge, xDepth := EdgeInside, math.Inf(-1)
	switch {
	case aMin.X < bMin.X && aMax.X > bMin.X && aMax.X < bMax.X:
		xEdge, xDepth = EdgeLeft, bMin.X-aMax.X
	case aMin.X > bMin.X && aMin.X < bMax.X && aMax.X > bMax.X:
		xEdge, xDepth = EdgeRight, aMin.X-bMax.X
	}

	yEdge, yDepth := EdgeInside, math.Inf(-1)
	switch {
	case aMin.Y < bMin.Y && aMax.Y > bMin.Y && aMax.Y < bMax.Y:
		yEdge, yDepth = EdgeBottom, bMin.Y-aMax.Y
	case aMin.Y > bMin.Y && aMin.Y < bMax.Y && aMax.Y > bMax.Y:
		yEdge, yDepth = EdgeTop, aMin.Y-bMax.Y
	}

	if math.Abs(yDepth) < math.Abs(xDepth) {
		return yEdge, true
	}
	return xEdge, true
}

// OverlapBoxes is Overlap for two Box values.
func OverlapBoxes(a, b Box) (Edge, bool) {
	return Overlap(a.Center, a.Size, b.Center, b.Size)
}

// Rect represents an axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

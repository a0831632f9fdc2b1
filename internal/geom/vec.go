// Package geom provides the value types the engine does its spatial math with:
// integer tile points, float vectors, quarter-turn rotations, similarity
// transforms and convex hulls. Everything here is a pure value; nothing holds
// mutable state.
package geom

import (
	"fmt"
	"math"
)

// Epsilon is the tolerance used for float comparisons and collinearity tests.
const Epsilon = 1e-9

// Point is an integer 2D vector, used for tile coordinates and tile offsets.
// The y axis grows downward.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p + o.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Sub returns p - o.
func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

// Neg returns -p.
func (p Point) Neg() Point {
	return Point{X: -p.X, Y: -p.Y}
}

// Mul scales p by an integer factor.
func (p Point) Mul(k int) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

// Turn rotates p around the origin by the given quarter-turn rotation.
func (p Point) Turn(r Rotation) Point {
	switch r.normalize() {
	case Right:
		return Point{X: -p.Y, Y: p.X}
	case UpsideDown:
		return Point{X: -p.X, Y: -p.Y}
	case Left:
		return Point{X: p.Y, Y: -p.X}
	default:
		return p
	}
}

// Vec converts p to a float vector.
func (p Point) Vec() Vec {
	return Vec{X: float64(p.X), Y: float64(p.Y)}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Vec is a float 2D vector in screen space (y grows downward).
type Vec struct {
	X, Y float64
}

// V is shorthand for Vec{X: x, Y: y}.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale multiplies both components by k.
func (v Vec) Scale(k float64) Vec {
	return Vec{X: v.X * k, Y: v.Y * k}
}

// Neg returns -v.
func (v Vec) Neg() Vec {
	return Vec{X: -v.X, Y: -v.Y}
}

// Dot returns the dot product of v and o.
func (v Vec) Dot(o Vec) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Cross returns the z component of the 3D cross product of v and o.
func (v Vec) Cross(o Vec) float64 {
	return v.X*o.Y - v.Y*o.X
}

// Len returns the euclidean length of v.
func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns v scaled to unit length. The zero vector stays zero.
func (v Vec) Normalize() Vec {
	l := v.Len()
	if l < Epsilon {
		return Vec{}
	}
	return v.Scale(1 / l)
}

// Rotate rotates v around the origin by angle radians. Positive angles turn
// clockwise on screen because y grows downward.
func (v Vec) Rotate(angle float64) Vec {
	sin, cos := math.Sincos(angle)
	return Vec{X: v.X*cos - v.Y*sin, Y: v.X*sin + v.Y*cos}
}

// Turn rotates v by a quarter-turn rotation without trigonometric error.
func (v Vec) Turn(r Rotation) Vec {
	switch r.normalize() {
	case Right:
		return Vec{X: -v.Y, Y: v.X}
	case UpsideDown:
		return Vec{X: -v.X, Y: -v.Y}
	case Left:
		return Vec{X: v.Y, Y: -v.X}
	default:
		return v
	}
}

// Lerp interpolates between v and o; t=0 yields v, t=1 yields o.
func (v Vec) Lerp(o Vec, t float64) Vec {
	return Vec{X: v.X + (o.X-v.X)*t, Y: v.Y + (o.Y-v.Y)*t}
}

// ApproxEqual reports whether v and o differ by at most Epsilon per axis.
func (v Vec) ApproxEqual(o Vec) bool {
	return math.Abs(v.X-o.X) <= Epsilon && math.Abs(v.Y-o.Y) <= Epsilon
}

func (v Vec) String() string {
	return fmt.Sprintf("(%.3f,%.3f)", v.X, v.Y)
}

package geom

// Rect is an axis-aligned rectangle spanning [Min, Max].
type Rect struct {
	Min, Max Vec
}

// NewRect creates a rectangle from its top-left corner and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{Min: Vec{X: x, Y: y}, Max: Vec{X: x + w, Y: y + h}}
}

// W returns the width of the rectangle.
func (r Rect) W() float64 {
	return r.Max.X - r.Min.X
}

// H returns the height of the rectangle.
func (r Rect) H() float64 {
	return r.Max.Y - r.Min.Y
}

// Intersects returns true if this rectangle overlaps with another.
// Touching edges do not count as overlap.
func (r Rect) Intersects(other Rect) bool {
	if r.Min.X >= other.Max.X || other.Min.X >= r.Max.X {
		return false
	}
	if r.Min.Y >= other.Max.Y || other.Min.Y >= r.Max.Y {
		return false
	}
	return true
}

// Contains returns true if p lies inside the rectangle (edges inclusive,
// with Epsilon slack).
func (r Rect) Contains(p Vec) bool {
	return p.X >= r.Min.X-Epsilon && p.X <= r.Max.X+Epsilon &&
		p.Y >= r.Min.Y-Epsilon && p.Y <= r.Max.Y+Epsilon
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Vec {
	return r.Min.Lerp(r.Max, 0.5)
}

// Corners returns the four corners of the rectangle, clockwise on screen
// starting at Min.
func (r Rect) Corners() []Vec {
	return []Vec{r.Min, {X: r.Max.X, Y: r.Min.Y}, r.Max, {X: r.Min.X, Y: r.Max.Y}}
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampF restricts a float64 value to be within [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
